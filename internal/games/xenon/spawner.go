package xenon

import "github.com/vovakirdan/xenon/internal/core"

// spawnTimers are the per-family countdowns.
type spawnTimers struct {
	loner         float64
	rusher        float64
	asteroid      float64
	nextLonerLeft bool
}

func (g *Game) resetSpawner() {
	g.spawn = spawnTimers{
		loner:         g.cfg.Enemies.Loner.FirstSpawn,
		rusher:        g.cfg.Enemies.Rusher.Interval,
		asteroid:      g.rollAsteroidInterval(),
		nextLonerLeft: true,
	}
}

func (g *Game) interval(base float64) float64 {
	return g.diff.Interval(base, g.score, g.ticks)
}

func (g *Game) updateSpawner(dt float64) {
	// regular waves pause while the boss is out
	if g.fsm.Current() == StatePlaying {
		g.spawn.loner -= dt
		if g.spawn.loner <= 0 {
			g.spawnLoner()
			g.spawn.loner = g.interval(g.cfg.Enemies.Loner.Interval)
		}

		g.spawn.rusher -= dt
		if g.spawn.rusher <= 0 {
			g.spawnRusher()
			g.spawn.rusher = g.interval(g.cfg.Enemies.Rusher.Interval)
		}

		if g.assets.asteroid.Valid() {
			g.spawn.asteroid -= dt
			if g.spawn.asteroid <= 0 {
				g.spawnAsteroid()
				g.spawn.asteroid = g.rollAsteroidInterval()
			}
		}
	}

	g.updateEnemyFire(dt)
	g.updateBossFire(dt)
}

func (g *Game) spawnLoner() {
	c := g.cfg.Enemies.Loner
	e := Enemy{
		Body: Body{
			Rect:  core.NewFRect(0, c.Y, c.Width, c.Height),
			VY:    c.SpeedY,
			Alive: true,
		},
		Kind:       EnemyLoner,
		HP:         c.HP,
		Shoots:     true,
		ShootTimer: c.FirstShot,
		Src:        core.NewFRect(0, 0, c.Width, c.Height),
	}
	if g.spawn.nextLonerLeft {
		e.Rect.X = -c.Width
		e.VX = c.SpeedX
	} else {
		e.Rect.X = g.arenaW
		e.VX = -c.SpeedX
	}
	g.spawn.nextLonerLeft = !g.spawn.nextLonerLeft
	g.enemies.Add(e)
}

func (g *Game) spawnRusher() {
	c := g.cfg.Enemies.Rusher
	x := g.rng.Float64() * max(g.arenaW-c.Width, 0)
	g.enemies.Add(Enemy{
		Body: Body{
			Rect:  core.NewFRect(x, -c.Height, c.Width, c.Height),
			VY:    g.diff.Speed(c.Speed, g.score, g.ticks),
			Alive: true,
		},
		Kind: EnemyRusher,
		HP:   c.HP,
		Src:  core.NewFRect(0, 0, c.Width, c.Height),
	})
}

func (g *Game) rollAsteroidInterval() float64 {
	c := g.cfg.Asteroids
	base := c.MinInterval + g.rng.Float64()*(c.MaxInterval-c.MinInterval)
	return g.interval(base)
}

func (g *Game) spawnAsteroid() {
	c := g.cfg.Asteroids
	idx := g.rng.Intn(len(c.Sizes))
	size := c.Sizes[idx]
	x := g.rng.Float64() * max(g.arenaW-size.Size, 0)
	speed := c.MinSpeed + g.rng.Float64()*(c.MaxSpeed-c.MinSpeed)

	g.asteroids.Add(Asteroid{
		Body: Body{
			Rect:  core.NewFRect(x, -size.Size, size.Size, size.Size),
			VY:    g.diff.Speed(speed, g.score, g.ticks),
			Alive: true,
		},
		Size: AsteroidSize(min(idx, int(AsteroidLarge))),
		HP:   size.HP,
		Anim: newAnimation(size.Size, size.Size, c.Frames, c.FrameDuration, true),
	})
}

func (g *Game) updateEnemyFire(dt float64) {
	c := g.cfg.Enemies.Loner
	g.enemies.ForEachAlive(func(e *Enemy) {
		if !e.Shoots {
			return
		}
		e.ShootTimer -= dt
		if e.ShootTimer > 0 {
			return
		}
		cx := e.Rect.X + e.Rect.W/2
		g.spawnEnemyShot(cx, e.Rect.Bottom(), 0, g.cfg.Enemies.Projectile.Speed)
		e.ShootTimer = max(c.MinFireDelay, g.interval(c.Interval))
	})
}

func (g *Game) spawnEnemyShot(cx, top, vx, vy float64) {
	p := g.cfg.Enemies.Projectile
	g.shots.Add(EnemyProjectile{
		Body: Body{
			Rect:  core.NewFRect(cx-p.Width/2, top, p.Width, p.Height),
			VX:    vx,
			VY:    vy,
			Alive: true,
		},
		Src: core.NewFRect(0, 0, p.Width, p.Height),
	})
}

// beginBossFight clears the field and brings the boss in. Called once per
// run on entering StateBossFight.
func (g *Game) beginBossFight() {
	g.enemies.KillAll()
	g.asteroids.KillAll()

	c := g.cfg.Boss
	g.boss = Boss{
		Body: Body{
			Rect:  core.NewFRect((g.arenaW-c.Width)/2, -c.Height, c.Width, c.Height),
			VY:    c.EntrySpeed,
			Alive: true,
		},
		HP:         c.HP,
		MaxHP:      c.HP,
		Active:     true,
		Spawned:    true,
		Entering:   true,
		ShootTimer: c.FireInterval,
	}
}

func (g *Game) updateBossFire(dt float64) {
	b := &g.boss
	if !b.Active || b.Entering {
		return
	}
	b.ShootTimer -= dt
	if b.ShootTimer > 0 {
		return
	}
	cx := b.Rect.X + b.Rect.W/2
	for _, vx := range g.cfg.Boss.ShotSpread {
		g.spawnEnemyShot(cx, b.Rect.Bottom(), vx, g.cfg.Boss.ShotSpeed)
	}
	b.ShootTimer = g.cfg.Boss.FireInterval
}
