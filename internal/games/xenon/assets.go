package xenon

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/xenon/internal/config"
	"github.com/vovakirdan/xenon/internal/core"
)

// AssetLoader resolves an image path to a handle.
type AssetLoader interface {
	Load(path string) (core.Handle, error)
}

// DrawService copies the src region of an image into the dst box.
type DrawService interface {
	Draw(h core.Handle, src, dst core.FRect)
}

// ErrMissingAsset is returned by New when a required image cannot be loaded.
var ErrMissingAsset = errors.New("xenon: missing required asset")

// assets holds every handle the game draws with. Optional handles may be
// zero; the features behind them are disabled.
type assets struct {
	ship       core.Handle
	missile    core.Handle
	loner      core.Handle
	rusher     core.Handle
	enemyShot  core.Handle
	explosion  core.Handle
	asteroid   core.Handle
	boss       core.Handle
	powerUp    core.Handle
	shield     core.Handle
	background core.Handle
	font       core.Handle
	bar        core.Handle
	dust       []core.Handle // one per dust layer, zero when missing
}

type assetSlot struct {
	role string
	path string
	dst  *core.Handle
}

func loadAssets(loader AssetLoader, paths config.AssetPaths, layers []config.DustLayer, logger *log.Logger) (assets, error) {
	var a assets

	required := []assetSlot{
		{"ship", paths.Ship, &a.ship},
		{"missile", paths.Missile, &a.missile},
		{"loner", paths.Loner, &a.loner},
		{"rusher", paths.Rusher, &a.rusher},
		{"enemy projectile", paths.EnemyProjectile, &a.enemyShot},
		{"explosion", paths.Explosion, &a.explosion},
	}
	for _, s := range required {
		h, err := loader.Load(s.path)
		if err != nil {
			return a, fmt.Errorf("%w: %s %q: %v", ErrMissingAsset, s.role, s.path, err)
		}
		*s.dst = h
	}

	optional := []assetSlot{
		{"asteroid", paths.Asteroid, &a.asteroid},
		{"boss", paths.Boss, &a.boss},
		{"powerup", paths.PowerUp, &a.powerUp},
		{"shield", paths.Shield, &a.shield},
		{"background", paths.Background, &a.background},
		{"font", paths.Font, &a.font},
		{"bar", paths.Bar, &a.bar},
	}
	for _, s := range optional {
		*s.dst = loadOptional(loader, s.role, s.path, logger)
	}

	a.dust = make([]core.Handle, len(layers))
	for i, l := range layers {
		a.dust[i] = loadOptional(loader, "dust", l.Asset, logger)
	}
	return a, nil
}

func loadOptional(loader AssetLoader, role, path string, logger *log.Logger) core.Handle {
	if path == "" {
		return 0
	}
	h, err := loader.Load(path)
	if err != nil {
		logger.Warn("optional asset unavailable", "role", role, "path", path, "err", err)
		return 0
	}
	return h
}
