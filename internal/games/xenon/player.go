package xenon

import (
	"github.com/vovakirdan/xenon/internal/config"
	"github.com/vovakirdan/xenon/internal/core"
)

func (g *Game) resetShip() {
	p := g.cfg.Player
	g.ship = Ship{
		Body: Body{
			Rect:  core.NewFRect((g.arenaW-p.Width)/2, g.arenaH-p.Height-p.BottomMargin, p.Width, p.Height),
			Alive: true,
		},
		Speed: p.Speed,
		Frame: p.FrameIdle,
	}
}

func (g *Game) updatePlayer(dt float64) {
	s := &g.ship
	p := g.cfg.Player

	var vx, vy float64
	if s.Intents.Left {
		vx -= s.Speed
	}
	if s.Intents.Right {
		vx += s.Speed
	}
	if s.Intents.Up {
		vy -= s.Speed
	}
	if s.Intents.Down {
		vy += s.Speed
	}
	s.VX, s.VY = vx, vy
	s.integrate(dt)
	s.Rect.X = core.ClampF(s.Rect.X, 0, g.arenaW-s.Rect.W)
	s.Rect.Y = core.ClampF(s.Rect.Y, 0, g.arenaH-s.Rect.H)

	switch {
	case s.VX < -p.BankThreshold:
		s.Frame = p.FrameLeft
	case s.VX > p.BankThreshold:
		s.Frame = p.FrameRight
	default:
		s.Frame = p.FrameIdle
	}

	if s.Cooldown > 0 {
		s.Cooldown = max(s.Cooldown-dt, 0)
	}
	if s.Invulnerable > 0 {
		s.Invulnerable = max(s.Invulnerable-dt, 0)
	}
	if s.HasShield {
		s.ShieldTimer -= dt
		if s.ShieldTimer <= 0 {
			s.ShieldTimer = 0
			s.HasShield = false
		}
	}

	if g.fireTriggered {
		g.fire()
	}
}

// fire launches a missile volley. It returns false while cooling down or
// when no missile image is loaded.
func (g *Game) fire() bool {
	s := &g.ship
	if !g.assets.missile.Valid() || s.Cooldown > 0 {
		return false
	}

	w := g.cfg.Weapons
	cx := s.Rect.X + s.Rect.W/2
	g.spawnMissile(cx, s.Rect.Y, 0)
	for lvl := 1; lvl <= s.WeaponLevel && lvl <= len(w.SpreadSpeeds); lvl++ {
		vx := w.SpreadSpeeds[lvl-1]
		g.spawnMissile(cx, s.Rect.Y, -vx)
		g.spawnMissile(cx, s.Rect.Y, vx)
	}
	s.Cooldown = w.Cooldown
	return true
}

func (g *Game) spawnMissile(cx, top, vx float64) {
	w := g.cfg.Weapons
	g.missiles.Add(Missile{
		Body: Body{
			Rect:  core.NewFRect(cx-w.MissileWidth/2, top-w.MissileHeight, w.MissileWidth, w.MissileHeight),
			VX:    vx,
			VY:    -w.MissileSpeed,
			Alive: true,
		},
		Src: core.NewFRect(0, 0, w.MissileWidth, w.MissileHeight),
	})
}

// onPlayerHit applies one hit to the ship. A consumed shield leaves the ship
// invulnerable like a lost life does, so the rest of the volley passes through.
func (g *Game) onPlayerHit() {
	s := &g.ship
	if s.HasShield {
		if g.cfg.PowerUps.ShieldPolicy != config.ShieldPersist {
			s.HasShield = false
			s.ShieldTimer = 0
			s.Invulnerable = g.cfg.Player.InvulnerableTime
		}
		return
	}

	g.lives--
	cx, cy := s.center()
	g.spawnExplosion(cx, cy, g.cfg.Effects.ExplosionFrameSize)
	if g.lives <= 0 {
		g.lives = 0
		g.evaluateState()
		return
	}
	s.Invulnerable = g.cfg.Player.InvulnerableTime
}

func (g *Game) applyPowerUp(kind PowerUpKind) {
	s := &g.ship
	switch kind {
	case PowerUpWeapon:
		s.WeaponLevel = min(s.WeaponLevel+1, g.cfg.Weapons.MaxLevel)
	case PowerUpShield:
		s.HasShield = true
		s.ShieldTimer = g.cfg.PowerUps.ShieldDuration
	case PowerUpScore:
		g.addScore(g.cfg.PowerUps.ScoreBonus)
	case PowerUpLife:
		g.lives++
	}
}
