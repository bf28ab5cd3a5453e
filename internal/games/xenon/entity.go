package xenon

import "github.com/vovakirdan/xenon/internal/core"

// Body is the state every entity shares.
type Body struct {
	Rect   core.FRect
	VX, VY float64
	Alive  bool
}

// IsAlive reports whether the entity takes part in the simulation.
func (b *Body) IsAlive() bool { return b.Alive }

// Kill marks the entity for removal at the end of the frame.
func (b *Body) Kill() { b.Alive = false }

func (b *Body) integrate(dt float64) {
	b.Rect.X += b.VX * dt
	b.Rect.Y += b.VY * dt
}

func (b *Body) center() (float64, float64) {
	return b.Rect.Center()
}

// Animation walks a horizontal strip of equally sized frames.
type Animation struct {
	Src      core.FRect
	Frame    int
	Frames   int
	FrameW   float64
	Timer    float64
	Duration float64
	Loop     bool
}

func newAnimation(frameW, frameH float64, frames int, duration float64, loop bool) Animation {
	return Animation{
		Src:      core.NewFRect(0, 0, frameW, frameH),
		Frames:   max(frames, 1),
		FrameW:   frameW,
		Duration: duration,
		Loop:     loop,
	}
}

// advance steps the animation and reports whether a one-shot strip ran out.
func (a *Animation) advance(dt float64) bool {
	if a.Duration <= 0 {
		return false
	}
	a.Timer += dt
	for a.Timer >= a.Duration {
		a.Timer -= a.Duration
		a.Frame++
		if a.Frame >= a.Frames {
			if !a.Loop {
				return true
			}
			a.Frame = 0
		}
		a.Src.X = float64(a.Frame) * a.FrameW
	}
	return false
}

// Intents are the four movement directions held by the player.
type Intents struct {
	Left, Right, Up, Down bool
}

// Ship is the player craft. There is exactly one per game.
type Ship struct {
	Body
	Intents      Intents
	Speed        float64
	Frame        int
	HasShield    bool
	ShieldTimer  float64
	Invulnerable float64
	WeaponLevel  int
	Cooldown     float64
}

// Missile is a player shot.
type Missile struct {
	Body
	Src core.FRect
}

// EnemyKind distinguishes regular enemies.
type EnemyKind uint8

const (
	EnemyLoner EnemyKind = iota
	EnemyRusher
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyLoner:
		return "loner"
	case EnemyRusher:
		return "rusher"
	default:
		return "unknown"
	}
}

// Enemy is a loner or a rusher.
type Enemy struct {
	Body
	Kind       EnemyKind
	HP         int
	Shoots     bool
	ShootTimer float64
	Src        core.FRect
}

// AsteroidSize is the asteroid class.
type AsteroidSize uint8

const (
	AsteroidSmall AsteroidSize = iota
	AsteroidMedium
	AsteroidLarge
)

func (s AsteroidSize) String() string {
	switch s {
	case AsteroidSmall:
		return "small"
	case AsteroidMedium:
		return "medium"
	case AsteroidLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Asteroid is a falling, animated rock.
type Asteroid struct {
	Body
	Size AsteroidSize
	HP   int
	Anim Animation
}

// EnemyProjectile is a hostile shot from a loner or the boss.
type EnemyProjectile struct {
	Body
	Src core.FRect
}

// PowerUpKind is the effect granted on pickup.
type PowerUpKind uint8

const (
	PowerUpWeapon PowerUpKind = iota
	PowerUpShield
	PowerUpScore
	PowerUpLife
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpWeapon:
		return "weapon"
	case PowerUpShield:
		return "shield"
	case PowerUpScore:
		return "score"
	case PowerUpLife:
		return "life"
	default:
		return "unknown"
	}
}

// PowerUp is a falling pickup.
type PowerUp struct {
	Body
	Kind PowerUpKind
	Anim Animation
}

// Explosion is a one-shot effect; Body.Rect is its destination box.
type Explosion struct {
	Body
	Anim Animation
}

// DustParticle is a background speck. Dust never dies, it wraps.
type DustParticle struct {
	Body
	Layer int
	Image core.Handle
}

// Boss is the end-of-level enemy. There is exactly one per game and it is
// inactive until the score threshold is reached.
type Boss struct {
	Body
	HP         int
	MaxHP      int
	Active     bool
	Spawned    bool
	Entering   bool
	ShootTimer float64
}
