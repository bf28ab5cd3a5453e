package xenon

import "github.com/vovakirdan/xenon/internal/core"

// offArena reports whether a body has left the arena in its direction of
// travel. Entities entering from outside are never culled on the way in.
func (g *Game) offArena(b *Body) bool {
	m := g.cfg.Arena.CullMargin
	r := b.Rect
	switch {
	case b.VY < 0 && r.Bottom() < -m:
		return true
	case b.VY > 0 && r.Y > g.arenaH+m:
		return true
	case b.VX < 0 && r.Right() < -m:
		return true
	case b.VX > 0 && r.X > g.arenaW+m:
		return true
	}
	return false
}

func (g *Game) move(b *Body, dt float64) {
	b.integrate(dt)
	if g.offArena(b) {
		b.Kill()
	}
}

func (g *Game) updateMovement(dt float64) {
	g.missiles.ForEachAlive(func(m *Missile) { g.move(&m.Body, dt) })
	g.enemies.ForEachAlive(func(e *Enemy) { g.move(&e.Body, dt) })
	g.asteroids.ForEachAlive(func(a *Asteroid) {
		g.move(&a.Body, dt)
		a.Anim.advance(dt)
	})
	g.shots.ForEachAlive(func(s *EnemyProjectile) { g.move(&s.Body, dt) })
	g.powerUps.ForEachAlive(func(p *PowerUp) {
		g.move(&p.Body, dt)
		p.Anim.advance(dt)
	})
	g.updateBossMotion(dt)
}

// updateBossMotion slides the boss down to its patrol line, then sweeps it
// left and right between the arena edges.
func (g *Game) updateBossMotion(dt float64) {
	b := &g.boss
	if !b.Active {
		return
	}
	c := g.cfg.Boss

	if b.Entering {
		b.Rect.Y += c.EntrySpeed * dt
		if b.Rect.Y >= c.PatrolY {
			b.Rect.Y = c.PatrolY
			b.Entering = false
			b.VY = 0
			b.VX = c.PatrolSpeed
		}
		return
	}

	b.Rect.X += b.VX * dt
	if b.Rect.X <= 0 {
		b.Rect.X = 0
		b.VX = c.PatrolSpeed
	}
	if b.Rect.Right() >= g.arenaW {
		b.Rect.X = g.arenaW - b.Rect.W
		b.VX = -c.PatrolSpeed
	}
}

func (g *Game) updateExplosions(dt float64) {
	g.explosions.ForEachAlive(func(e *Explosion) {
		if e.Anim.advance(dt) {
			e.Kill()
		}
	})
}

func (g *Game) spawnExplosion(cx, cy, size float64) {
	if !g.assets.explosion.Valid() {
		return
	}
	fx := g.cfg.Effects
	frame := fx.ExplosionFrameSize
	g.explosions.Add(Explosion{
		Body: Body{Rect: core.CenteredAt(cx, cy, size, size), Alive: true},
		Anim: newAnimation(frame, frame, fx.ExplosionFrames, 1/fx.ExplosionFPS, false),
	})
}

func (g *Game) initDust() {
	g.dust = g.dust[:0]
	factor := g.cfg.Dust.WidthFactor
	if factor <= 0 {
		factor = 1
	}
	for i, layer := range g.cfg.Dust.Layers {
		h := g.assets.dust[i]
		if !h.Valid() {
			continue
		}
		w := layer.Width * factor
		for range layer.Count {
			x := g.rng.Float64() * max(g.arenaW-w, 0)
			y := g.rng.Float64() * g.arenaH
			g.dust = append(g.dust, DustParticle{
				Body: Body{
					Rect:  core.NewFRect(x, y, w, layer.Height),
					VY:    layer.Speed,
					Alive: true,
				},
				Layer: i,
				Image: h,
			})
		}
	}
}

func (g *Game) updateDust(dt float64) {
	for i := range g.dust {
		d := &g.dust[i]
		d.integrate(dt)
		if d.Rect.Y > g.arenaH {
			d.Rect.Y -= g.arenaH + d.Rect.H
		}
	}
}
