// Package xenon implements the Xenon shoot-em-up simulation: a player ship,
// timed waves of loners, rushers and asteroids, a boss, power-ups and the
// state machine that ties a run together.
//
// The simulation owns no window, terminal or clock. A host calls
// HandleInput, Update(dt) and Render(ds) once per frame and supplies images
// through an AssetLoader. Everything inside a Game is single-threaded.
package xenon

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/xenon/internal/config"
)

// Context carries everything a Game needs from its host.
type Context struct {
	Assets AssetLoader
	Config config.XenonConfig
	Rand   *rand.Rand  // nil seeds from 1
	Logger *log.Logger // nil discards
}

// Game is one Xenon run.
type Game struct {
	cfg    config.XenonConfig
	arenaW float64
	arenaH float64
	rng    *rand.Rand
	log    *log.Logger
	diff   *config.DifficultyManager
	assets assets

	fsm  StateMachine
	ship Ship
	boss Boss

	missiles   Pool[Missile, *Missile]
	enemies    Pool[Enemy, *Enemy]
	asteroids  Pool[Asteroid, *Asteroid]
	shots      Pool[EnemyProjectile, *EnemyProjectile]
	powerUps   Pool[PowerUp, *PowerUp]
	explosions Pool[Explosion, *Explosion]
	dust       []DustParticle

	spawn spawnTimers

	score int
	lives int
	ticks int

	fireTriggered    bool
	restartRequested bool
}

// New validates the configuration, loads assets and builds a game ready to
// play. It fails with ErrMissingAsset when a required image is unavailable.
func New(ctx Context) (*Game, error) {
	if ctx.Assets == nil {
		return nil, fmt.Errorf("xenon: no asset loader")
	}
	if err := ctx.Config.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:    ctx.Config,
		arenaW: ctx.Config.Arena.Width,
		arenaH: ctx.Config.Arena.Height,
		rng:    ctx.Rand,
		log:    ctx.Logger,
		diff:   config.NewDifficultyManager(ctx.Config.Difficulty),
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(1))
	}
	if g.log == nil {
		g.log = log.New(io.Discard)
	}

	a, err := loadAssets(ctx.Assets, g.cfg.Assets, g.cfg.Dust.Layers, g.log)
	if err != nil {
		return nil, err
	}
	g.assets = a

	g.initDust()
	g.resetRun()
	g.log.Debug("game initialized", "arena_w", g.arenaW, "arena_h", g.arenaH,
		"boss", g.assets.boss.Valid(), "asteroids", g.assets.asteroid.Valid())
	return g, nil
}

// HandleInput records the input for the next Update. Movement is held until
// changed; fire and restart are triggers consumed by the next Update. A fire
// trigger that lands on a cooldown is dropped, so hosts that want autofire
// trigger every frame the button is down.
func (g *Game) HandleInput(in Intents, fire, restart bool) {
	g.ship.Intents = in
	if fire {
		g.fireTriggered = true
	}
	if restart {
		g.restartRequested = true
	}
}

// Update advances the simulation by dt seconds. dt is not validated.
func (g *Game) Update(dt float64) {
	if g.restartRequested && g.fsm.Terminal() {
		g.restart()
	}
	g.restartRequested = false

	g.updateDust(dt)
	g.updateExplosions(dt)

	if g.fsm.Simulating() {
		g.ticks++
		g.updatePlayer(dt)
		g.updateSpawner(dt)
		g.updateMovement(dt)
		g.resolveCollisions()
		g.evaluateState()
	}

	g.compact()
	g.fireTriggered = false
}

func (g *Game) evaluateState() {
	next, changed := g.fsm.Evaluate(Conditions{
		Lives:         g.lives,
		BossDefeated:  g.boss.Spawned && g.boss.HP <= 0,
		ScoreReached:  !g.boss.Spawned && g.score >= g.cfg.Boss.ScoreThreshold,
		BossAvailable: g.assets.boss.Valid(),
	})
	if !changed {
		return
	}
	g.log.Info("state changed", "state", next, "score", g.score, "lives", g.lives)
	if next == StateBossFight {
		g.beginBossFight()
	}
}

func (g *Game) compact() {
	g.missiles.Compact()
	g.enemies.Compact()
	g.asteroids.Compact()
	g.shots.Compact()
	g.powerUps.Compact()
	g.explosions.Compact()
}

// restart leaves a terminal state and starts a fresh run. Dust keeps its
// positions; the RNG stream continues.
func (g *Game) restart() {
	g.fsm.Transition(StatePlaying)
	g.resetRun()
	g.log.Info("run restarted")
}

func (g *Game) resetRun() {
	g.missiles.Clear()
	g.enemies.Clear()
	g.asteroids.Clear()
	g.shots.Clear()
	g.powerUps.Clear()
	g.explosions.Clear()

	g.score = 0
	g.lives = g.cfg.Player.Lives
	g.ticks = 0
	g.fireTriggered = false
	g.boss = Boss{}
	g.resetShip()
	g.resetSpawner()
}

func (g *Game) addScore(points int) {
	if points > 0 {
		g.score += points
	}
}

// State returns the current phase.
func (g *Game) State() State { return g.fsm.Current() }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Ship returns a copy of the player ship.
func (g *Game) Ship() Ship { return g.ship }

// Boss returns a copy of the boss.
func (g *Game) Boss() Boss { return g.boss }

// Ticks returns the number of simulated frames in this run.
func (g *Game) Ticks() int { return g.ticks }

// Arena returns the playfield size in pixels.
func (g *Game) Arena() (float64, float64) { return g.arenaW, g.arenaH }
