package xenon

import (
	"fmt"

	"github.com/vovakirdan/xenon/internal/core"
)

// Render draws the frame back to front:
// background, dust, asteroids, power-ups, enemies, boss, ship, shield,
// missiles, enemy shots, explosions, HUD and the end-of-run banner.
func (g *Game) Render(ds DrawService) {
	full := core.NewFRect(0, 0, g.arenaW, g.arenaH)
	if g.assets.background.Valid() {
		ds.Draw(g.assets.background, full, full)
	}

	for i := range g.dust {
		d := &g.dust[i]
		ds.Draw(d.Image, core.NewFRect(0, 0, d.Rect.W, d.Rect.H), d.Rect)
	}

	g.asteroids.ForEachAlive(func(a *Asteroid) {
		ds.Draw(g.assets.asteroid, a.Anim.Src, a.Rect)
	})
	g.powerUps.ForEachAlive(func(p *PowerUp) {
		src := p.Anim.Src
		src.Y = float64(p.Kind) * src.H
		ds.Draw(g.assets.powerUp, src, p.Rect)
	})
	g.enemies.ForEachAlive(func(e *Enemy) {
		img := g.assets.loner
		if e.Kind == EnemyRusher {
			img = g.assets.rusher
		}
		ds.Draw(img, e.Src, e.Rect)
	})
	if g.boss.Active {
		ds.Draw(g.assets.boss, core.NewFRect(0, 0, g.boss.Rect.W, g.boss.Rect.H), g.boss.Rect)
	}

	if g.fsm.Current() != StateGameOver {
		s := &g.ship
		src := core.NewFRect(float64(s.Frame)*s.Rect.W, 0, s.Rect.W, s.Rect.H)
		ds.Draw(g.assets.ship, src, s.Rect)
		if s.HasShield && g.assets.shield.Valid() {
			cx, cy := s.center()
			size := max(s.Rect.W, s.Rect.H) * 1.25
			ds.Draw(g.assets.shield, core.NewFRect(0, 0, size, size), core.CenteredAt(cx, cy, size, size))
		}
	}

	g.missiles.ForEachAlive(func(m *Missile) {
		ds.Draw(g.assets.missile, m.Src, m.Rect)
	})
	g.shots.ForEachAlive(func(s *EnemyProjectile) {
		ds.Draw(g.assets.enemyShot, s.Src, s.Rect)
	})
	g.explosions.ForEachAlive(func(e *Explosion) {
		ds.Draw(g.assets.explosion, e.Anim.Src, e.Rect)
	})

	g.renderHUD(ds)
	g.renderBanner(ds)
}

func (g *Game) renderHUD(ds DrawService) {
	h := g.cfg.HUD
	m := h.Margin
	barY := m + 2*(h.FontCellH+4)

	g.drawText(ds, m, m, fmt.Sprintf("SCORE %d  LIVES %d  WEAPON %d", g.score, g.lives, g.ship.WeaponLevel))

	if !g.assets.bar.Valid() {
		return
	}
	unit := core.NewFRect(0, 0, 1, 1)
	if g.ship.HasShield && g.cfg.PowerUps.ShieldDuration > 0 {
		frac := core.ClampF(g.ship.ShieldTimer/g.cfg.PowerUps.ShieldDuration, 0, 1)
		ds.Draw(g.assets.bar, unit, core.NewFRect(m, barY, 100*frac, h.BarHeight))
	}
	if g.fsm.Current() == StateBossFight && g.boss.MaxHP > 0 {
		frac := float64(g.boss.HP) / float64(g.boss.MaxHP)
		x := (g.arenaW - h.BossBarWidth) / 2
		ds.Draw(g.assets.bar, unit, core.NewFRect(x, barY, h.BossBarWidth*frac, h.BarHeight))
	}
}

func (g *Game) renderBanner(ds DrawService) {
	var title string
	switch g.fsm.Current() {
	case StateGameOver:
		title = "GAME OVER"
	case StateVictory:
		title = "VICTORY"
	default:
		return
	}
	prompt := "PRESS R TO RESTART"
	cy := g.arenaH / 2
	g.drawText(ds, (g.arenaW-g.textWidth(title))/2, cy-g.cfg.HUD.FontCellH*2, title)
	g.drawText(ds, (g.arenaW-g.textWidth(prompt))/2, cy+g.cfg.HUD.FontCellH, prompt)
}
