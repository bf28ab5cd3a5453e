package xenon

import "github.com/vovakirdan/xenon/internal/core"

// resolveCollisions runs the overlap passes in a fixed order. A pass that
// ends the run stops the remaining ones.
func (g *Game) resolveCollisions() {
	g.missilesVsEnemies()
	g.missilesVsAsteroids()

	if g.missilesVsBoss() {
		g.evaluateState()
		return
	}

	g.hostilesVsShip()
	if !g.fsm.Simulating() {
		return
	}
	g.powerUpsVsShip()
}

// missilesVsEnemies damages the first live enemy each missile touches.
func (g *Game) missilesVsEnemies() {
	g.missiles.ForEachAlive(func(m *Missile) {
		e := g.enemies.FindAlive(func(e *Enemy) bool { return m.Rect.Overlaps(e.Rect) })
		if e == nil {
			return
		}
		m.Kill()
		e.HP--
		if e.HP > 0 {
			return
		}
		e.Kill()
		cx, cy := e.center()
		g.spawnExplosion(cx, cy, g.cfg.Effects.ExplosionFrameSize)
		g.rollDrop(cx, cy)
		g.addScore(g.cfg.Scoring.Enemy)
	})
}

func (g *Game) missilesVsAsteroids() {
	g.missiles.ForEachAlive(func(m *Missile) {
		a := g.asteroids.FindAlive(func(a *Asteroid) bool { return m.Rect.Overlaps(a.Rect) })
		if a == nil {
			return
		}
		m.Kill()
		a.HP--
		if a.HP > 0 {
			return
		}
		a.Kill()
		cx, cy := a.center()
		g.spawnExplosion(cx, cy, g.cfg.Effects.ExplosionFrameSize)
		g.addScore(g.cfg.Scoring.Asteroid)
	})
}

// missilesVsBoss reports whether the boss was destroyed.
func (g *Game) missilesVsBoss() bool {
	b := &g.boss
	if !b.Active {
		return false
	}
	g.missiles.ForEachAlive(func(m *Missile) {
		if !b.Active || !m.Rect.Overlaps(b.Rect) {
			return
		}
		m.Kill()
		b.HP--
		if b.HP <= 0 {
			b.HP = 0
			b.Active = false
			b.Kill()
			cx, cy := b.center()
			g.spawnExplosion(cx, cy, g.cfg.Effects.BossExplosionSize)
		}
	})
	return !b.Active
}

// hostilesVsShip applies contact with shots, enemies and asteroids. An
// invulnerable ship ignores all of them; hits stop once the run is over.
func (g *Game) hostilesVsShip() {
	ship := g.ship.Rect
	hit := func(r core.FRect) bool {
		return g.ship.Invulnerable <= 0 && g.fsm.Simulating() && r.Overlaps(ship)
	}

	g.shots.ForEachAlive(func(s *EnemyProjectile) {
		if hit(s.Rect) {
			s.Kill()
			g.onPlayerHit()
		}
	})
	g.enemies.ForEachAlive(func(e *Enemy) {
		if hit(e.Rect) {
			e.Kill()
			cx, cy := e.center()
			g.spawnExplosion(cx, cy, g.cfg.Effects.ExplosionFrameSize)
			g.onPlayerHit()
		}
	})
	g.asteroids.ForEachAlive(func(a *Asteroid) {
		if hit(a.Rect) {
			a.Kill()
			cx, cy := a.center()
			g.spawnExplosion(cx, cy, g.cfg.Effects.ExplosionFrameSize)
			g.onPlayerHit()
		}
	})
}

func (g *Game) powerUpsVsShip() {
	g.powerUps.ForEachAlive(func(p *PowerUp) {
		if p.Rect.Overlaps(g.ship.Rect) {
			p.Kill()
			g.applyPowerUp(p.Kind)
		}
	})
}

// rollDrop may leave a power-up where an enemy died.
func (g *Game) rollDrop(cx, cy float64) {
	c := g.cfg.PowerUps
	if !g.assets.powerUp.Valid() || c.DropChance <= 0 {
		return
	}
	if g.rng.Float64() >= c.DropChance {
		return
	}
	g.powerUps.Add(PowerUp{
		Body: Body{
			Rect:  core.CenteredAt(cx, cy, c.Width, c.Height),
			VY:    c.FallSpeed,
			Alive: true,
		},
		Kind: g.rollPowerUpKind(),
		Anim: newAnimation(c.Width, c.Height, c.Frames, c.FrameDuration, true),
	})
}

func (g *Game) rollPowerUpKind() PowerUpKind {
	w := g.cfg.PowerUps.Weights
	total := w.Total()
	if total <= 0 {
		return PowerUpScore
	}

	roll := g.rng.Intn(total)
	cumulative := 0
	weights := []struct {
		kind   PowerUpKind
		weight int
	}{
		{PowerUpWeapon, w.Weapon},
		{PowerUpShield, w.Shield},
		{PowerUpScore, w.Score},
		{PowerUpLife, w.Life},
	}
	for _, entry := range weights {
		cumulative += entry.weight
		if roll < cumulative {
			return entry.kind
		}
	}
	return PowerUpScore
}
