package xenon

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Snapshot is a flat view of the simulation used to compare runs.
// It is not a save format.
type Snapshot struct {
	Tick        int
	State       State
	Score       int
	Lives       int
	ShipX       float64
	ShipY       float64
	WeaponLevel int
	HasShield   bool
	BossHP      int
	BossActive  bool

	Missiles   int
	Enemies    int
	Asteroids  int
	Shots      int
	PowerUps   int
	Explosions int

	// Positions packs x, y of every live entity family by family.
	Positions []float64
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        g.ticks,
		State:       g.fsm.Current(),
		Score:       g.score,
		Lives:       g.lives,
		ShipX:       g.ship.Rect.X,
		ShipY:       g.ship.Rect.Y,
		WeaponLevel: g.ship.WeaponLevel,
		HasShield:   g.ship.HasShield,
		BossHP:      g.boss.HP,
		BossActive:  g.boss.Active,
		Missiles:    g.missiles.Alive(),
		Enemies:     g.enemies.Alive(),
		Asteroids:   g.asteroids.Alive(),
		Shots:       g.shots.Alive(),
		PowerUps:    g.powerUps.Alive(),
		Explosions:  g.explosions.Alive(),
	}

	add := func(b *Body) { snap.Positions = append(snap.Positions, b.Rect.X, b.Rect.Y) }
	g.missiles.ForEachAlive(func(m *Missile) { add(&m.Body) })
	g.enemies.ForEachAlive(func(e *Enemy) { add(&e.Body) })
	g.asteroids.ForEachAlive(func(a *Asteroid) { add(&a.Body) })
	g.shots.ForEachAlive(func(s *EnemyProjectile) { add(&s.Body) })
	g.powerUps.ForEachAlive(func(p *PowerUp) { add(&p.Body) })
	for i := range g.dust {
		add(&g.dust[i].Body)
	}
	return snap
}

// Hash digests the snapshot for determinism checks.
func (s Snapshot) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	putI := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v))) //#nosec G115 -- hash computation
		_, _ = d.Write(buf[:])
	}
	putF := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}
	putB := func(v bool) {
		if v {
			putI(1)
		} else {
			putI(0)
		}
	}

	putI(s.Tick)
	putI(int(s.State))
	putI(s.Score)
	putI(s.Lives)
	putF(s.ShipX)
	putF(s.ShipY)
	putI(s.WeaponLevel)
	putB(s.HasShield)
	putI(s.BossHP)
	putB(s.BossActive)
	for _, n := range []int{s.Missiles, s.Enemies, s.Asteroids, s.Shots, s.PowerUps, s.Explosions} {
		putI(n)
	}
	for _, v := range s.Positions {
		putF(v)
	}
	return d.Sum64()
}
