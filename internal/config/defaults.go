package config

import (
	_ "embed"
)

//go:embed defaults/xenon.yaml
var defaultXenonYAML []byte

// DefaultXenonConfig returns the built-in configuration. It mirrors
// defaults/xenon.yaml and is used when the embedded file cannot be parsed.
func DefaultXenonConfig() XenonConfig {
	return XenonConfig{
		Arena: ArenaConfig{
			Width:      800,
			Height:     600,
			CullMargin: 16,
			Title:      "Xenon 2000",
		},
		Player: PlayerConfig{
			Width:            64,
			Height:           64,
			Speed:            300,
			BottomMargin:     20,
			Lives:            3,
			InvulnerableTime: 2.0,
			BankThreshold:    5,
			FrameLeft:        1,
			FrameIdle:        3,
			FrameRight:       5,
		},
		Weapons: WeaponConfig{
			MissileWidth:  8,
			MissileHeight: 16,
			MissileSpeed:  500,
			Cooldown:      0.15,
			MaxLevel:      2,
			SpreadSpeeds:  []float64{120, 240},
		},
		Enemies: EnemiesConfig{
			Loner: LonerConfig{
				Width:        64,
				Height:       64,
				Y:            80,
				SpeedX:       80,
				SpeedY:       10,
				HP:           2,
				Interval:     2.0,
				FirstSpawn:   1.0,
				FirstShot:    0.8,
				MinFireDelay: 0.6,
			},
			Rusher: RusherConfig{
				Width:    64,
				Height:   64,
				Speed:    120,
				HP:       1,
				Interval: 5.0,
			},
			Projectile: ProjectileConfig{
				Width:  8,
				Height: 8,
				Speed:  200,
			},
		},
		Asteroids: AsteroidConfig{
			Sizes: []AsteroidSize{
				{Size: 32, HP: 1},
				{Size: 64, HP: 2},
				{Size: 96, HP: 3},
			},
			MinInterval:   1.5,
			MaxInterval:   3.5,
			MinSpeed:      60,
			MaxSpeed:      140,
			Frames:        8,
			FrameDuration: 0.08,
		},
		Boss: BossConfig{
			Width:          128,
			Height:         128,
			HP:             30,
			ScoreThreshold: 3000,
			EntrySpeed:     60,
			PatrolY:        40,
			PatrolSpeed:    100,
			FireInterval:   1.2,
			ShotSpeed:      220,
			ShotSpread:     []float64{-80, 0, 80},
		},
		PowerUps: PowerUpConfig{
			Width:      32,
			Height:     32,
			FallSpeed:  80,
			DropChance: 0.2,
			Weights: PowerUpWeights{
				Weapon: 35,
				Shield: 25,
				Score:  30,
				Life:   10,
			},
			ScoreBonus:     500,
			ShieldDuration: 5.0,
			ShieldPolicy:   ShieldConsume,
			Frames:         8,
			FrameDuration:  0.1,
		},
		Effects: EffectsConfig{
			ExplosionFrameSize: 64,
			ExplosionFrames:    8,
			ExplosionFPS:       30,
			BossExplosionSize:  192,
		},
		Dust: DustConfig{
			WidthFactor: 0.7,
			Layers: []DustLayer{
				{Asset: "graphics/GDust.bmp", Count: 12, Speed: 20, Width: 32, Height: 8},
				{Asset: "graphics/MDust.bmp", Count: 18, Speed: 40, Width: 32, Height: 8},
				{Asset: "graphics/SDust.bmp", Count: 24, Speed: 70, Width: 32, Height: 8},
			},
		},
		HUD: HUDConfig{
			FontCellW:    8,
			FontCellH:    8,
			FontColumns:  16,
			Margin:       10,
			BarHeight:    6,
			BossBarWidth: 300,
		},
		Scoring: ScoringConfig{
			Enemy:    100,
			Asteroid: 50,
		},
		Assets: AssetPaths{
			Dir:             ".",
			Ship:            "graphics/Ship1.bmp",
			Missile:         "graphics/missile.bmp",
			Loner:           "graphics/LonerA.bmp",
			Rusher:          "graphics/rusher.bmp",
			EnemyProjectile: "graphics/EnWeap6.bmp",
			Explosion:       "graphics/explode64.bmp",
			Asteroid:        "graphics/SAster96.bmp",
			Boss:            "graphics/boss.bmp",
			PowerUp:         "graphics/PUWeapon.bmp",
			Shield:          "graphics/shield.bmp",
			Background:      "graphics/galaxy2.bmp",
			Font:            "graphics/font8x8.bmp",
			Bar:             "graphics/bar.bmp",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.5,
				IntervalReduction: 0.4,
			},
		},
	}
}
