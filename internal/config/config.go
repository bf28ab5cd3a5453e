// Package config provides YAML-based game configuration loading and
// difficulty management for the Xenon simulation and its hosts.
package config

import (
	"errors"
	"fmt"
)

// XenonConfig contains all tunables of a Xenon run.
type XenonConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Player     PlayerConfig     `yaml:"player"`
	Weapons    WeaponConfig     `yaml:"weapons"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	Asteroids  AsteroidConfig   `yaml:"asteroids"`
	Boss       BossConfig       `yaml:"boss"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Effects    EffectsConfig    `yaml:"effects"`
	Dust       DustConfig       `yaml:"dust"`
	HUD        HUDConfig        `yaml:"hud"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Assets     AssetPaths       `yaml:"assets"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig defines the logical playfield in pixels.
type ArenaConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	CullMargin float64 `yaml:"cull_margin"`
	Title      string  `yaml:"title"`
}

// PlayerConfig defines the ship.
type PlayerConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Speed            float64 `yaml:"speed"`
	BottomMargin     float64 `yaml:"bottom_margin"`
	Lives            int     `yaml:"lives"`
	InvulnerableTime float64 `yaml:"invulnerable_time"`
	BankThreshold    float64 `yaml:"bank_threshold"`
	FrameLeft        int     `yaml:"frame_left"`
	FrameIdle        int     `yaml:"frame_idle"`
	FrameRight       int     `yaml:"frame_right"`
}

// WeaponConfig defines player missiles.
type WeaponConfig struct {
	MissileWidth  float64   `yaml:"missile_width"`
	MissileHeight float64   `yaml:"missile_height"`
	MissileSpeed  float64   `yaml:"missile_speed"`
	Cooldown      float64   `yaml:"cooldown"`
	MaxLevel      int       `yaml:"max_level"`
	SpreadSpeeds  []float64 `yaml:"spread_speeds"` // side missile vx per weapon level
}

// EnemiesConfig groups the regular enemy families and their fire.
type EnemiesConfig struct {
	Loner      LonerConfig      `yaml:"loner"`
	Rusher     RusherConfig     `yaml:"rusher"`
	Projectile ProjectileConfig `yaml:"projectile"`
}

// LonerConfig defines the side-entering shooter.
type LonerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Y            float64 `yaml:"y"`
	SpeedX       float64 `yaml:"speed_x"`
	SpeedY       float64 `yaml:"speed_y"`
	HP           int     `yaml:"hp"`
	Interval     float64 `yaml:"interval"`
	FirstSpawn   float64 `yaml:"first_spawn"`
	FirstShot    float64 `yaml:"first_shot"`
	MinFireDelay float64 `yaml:"min_fire_delay"` // later shots every max(min_fire_delay, interval)
}

// RusherConfig defines the top-entering diver.
type RusherConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"`
	HP       int     `yaml:"hp"`
	Interval float64 `yaml:"interval"`
}

// ProjectileConfig defines hostile shots.
type ProjectileConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// AsteroidConfig defines falling rocks.
type AsteroidConfig struct {
	Sizes         []AsteroidSize `yaml:"sizes"` // small, medium, large
	MinInterval   float64        `yaml:"min_interval"`
	MaxInterval   float64        `yaml:"max_interval"`
	MinSpeed      float64        `yaml:"min_speed"`
	MaxSpeed      float64        `yaml:"max_speed"`
	Frames        int            `yaml:"frames"`
	FrameDuration float64        `yaml:"frame_duration"`
}

// AsteroidSize is one asteroid class.
type AsteroidSize struct {
	Size float64 `yaml:"size"`
	HP   int     `yaml:"hp"`
}

// BossConfig defines the end-of-level boss.
type BossConfig struct {
	Width          float64   `yaml:"width"`
	Height         float64   `yaml:"height"`
	HP             int       `yaml:"hp"`
	ScoreThreshold int       `yaml:"score_threshold"`
	EntrySpeed     float64   `yaml:"entry_speed"`
	PatrolY        float64   `yaml:"patrol_y"`
	PatrolSpeed    float64   `yaml:"patrol_speed"`
	FireInterval   float64   `yaml:"fire_interval"`
	ShotSpeed      float64   `yaml:"shot_speed"`
	ShotSpread     []float64 `yaml:"shot_spread"` // vx of each projectile in a volley
}

// PowerUpConfig defines pickups dropped by destroyed enemies.
type PowerUpConfig struct {
	Width          float64        `yaml:"width"`
	Height         float64        `yaml:"height"`
	FallSpeed      float64        `yaml:"fall_speed"`
	DropChance     float64        `yaml:"drop_chance"`
	Weights        PowerUpWeights `yaml:"weights"`
	ScoreBonus     int            `yaml:"score_bonus"`
	ShieldDuration float64        `yaml:"shield_duration"`
	ShieldPolicy   string         `yaml:"shield_policy"` // "consume" or "persist"
	Frames         int            `yaml:"frames"`
	FrameDuration  float64        `yaml:"frame_duration"`
}

// PowerUpWeights are relative drop weights per kind.
type PowerUpWeights struct {
	Weapon int `yaml:"weapon"`
	Shield int `yaml:"shield"`
	Score  int `yaml:"score"`
	Life   int `yaml:"life"`
}

// Total returns the sum of all weights.
func (w PowerUpWeights) Total() int {
	return w.Weapon + w.Shield + w.Score + w.Life
}

// EffectsConfig defines explosions.
type EffectsConfig struct {
	ExplosionFrameSize float64 `yaml:"explosion_frame_size"`
	ExplosionFrames    int     `yaml:"explosion_frames"`
	ExplosionFPS       float64 `yaml:"explosion_fps"`
	BossExplosionSize  float64 `yaml:"boss_explosion_size"`
}

// DustConfig defines the parallax background layers.
type DustConfig struct {
	WidthFactor float64     `yaml:"width_factor"`
	Layers      []DustLayer `yaml:"layers"`
}

// DustLayer is one parallax plane.
type DustLayer struct {
	Asset  string  `yaml:"asset"`
	Count  int     `yaml:"count"`
	Speed  float64 `yaml:"speed"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// HUDConfig defines the overlay text and bars.
type HUDConfig struct {
	FontCellW    float64 `yaml:"font_cell_w"`
	FontCellH    float64 `yaml:"font_cell_h"`
	FontColumns  int     `yaml:"font_columns"`
	Margin       float64 `yaml:"margin"`
	BarHeight    float64 `yaml:"bar_height"`
	BossBarWidth float64 `yaml:"boss_bar_width"`
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	Enemy    int `yaml:"enemy"`
	Asteroid int `yaml:"asteroid"`
}

// AssetPaths names the image file behind each role.
type AssetPaths struct {
	Dir             string `yaml:"dir"`
	Ship            string `yaml:"ship"`
	Missile         string `yaml:"missile"`
	Loner           string `yaml:"loner"`
	Rusher          string `yaml:"rusher"`
	EnemyProjectile string `yaml:"enemy_projectile"`
	Explosion       string `yaml:"explosion"`
	Asteroid        string `yaml:"asteroid"`
	Boss            string `yaml:"boss"`
	PowerUp         string `yaml:"powerup"`
	Shield          string `yaml:"shield"`
	Background      string `yaml:"background"`
	Font            string `yaml:"font"`
	Bar             string `yaml:"bar"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // added to enemy speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // fraction cut from spawn intervals at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.2
	case DifficultyHard:
		return 0.6
	default:
		return 0.0
	}
}

// MaxWeaponLevel is the widest volley: one straight missile plus two pairs.
const MaxWeaponLevel = 2

// ShieldPolicy values.
const (
	ShieldConsume = "consume"
	ShieldPersist = "persist"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate rejects configurations the simulation cannot run with.
func (c XenonConfig) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{c.Arena.Width > 0 && c.Arena.Height > 0, "arena size must be positive"},
		{c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive"},
		{c.Player.Speed > 0, "player speed must be positive"},
		{c.Player.Lives > 0, "lives must be positive"},
		{c.Weapons.Cooldown > 0, "weapon cooldown must be positive"},
		{c.Weapons.MaxLevel >= 0 && c.Weapons.MaxLevel <= MaxWeaponLevel, "max_level must be within 0..2"},
		{c.Weapons.MaxLevel <= len(c.Weapons.SpreadSpeeds), "max_level exceeds spread_speeds"},
		{c.Enemies.Loner.Interval > 0 && c.Enemies.Rusher.Interval > 0, "enemy intervals must be positive"},
		{c.Enemies.Loner.HP > 0 && c.Enemies.Rusher.HP > 0, "enemy hp must be positive"},
		{len(c.Asteroids.Sizes) > 0, "at least one asteroid size is required"},
		{c.Asteroids.MinInterval > 0 && c.Asteroids.MaxInterval >= c.Asteroids.MinInterval, "asteroid interval range is invalid"},
		{c.Boss.HP > 0, "boss hp must be positive"},
		{c.Effects.ExplosionFrames > 0 && c.Effects.ExplosionFPS > 0, "explosion animation must be positive"},
		{c.PowerUps.ShieldPolicy == ShieldConsume || c.PowerUps.ShieldPolicy == ShieldPersist, "unknown shield policy"},
		{c.PowerUps.DropChance <= 0 || c.PowerUps.Weights.Total() > 0, "drop weights must not all be zero"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.what)
		}
	}
	return nil
}
