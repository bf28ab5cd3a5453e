package window

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the window options kept between launches.
type Settings struct {
	Scale      float64 `yaml:"scale"`
	Fullscreen bool    `yaml:"fullscreen"`
}

// DefaultSettings returns a 1x windowed setup.
func DefaultSettings() Settings {
	return Settings{Scale: 1}
}

func (s Settings) normalized() Settings {
	if s.Scale < 0.5 || s.Scale > 4 {
		s.Scale = 1
	}
	return s
}

const (
	settingsObject   = "window"
	settingsProperty = "settings"
)

// SettingsStore persists Settings through gdata. A store without a manager
// keeps settings in memory only.
type SettingsStore struct {
	data *gdata.Manager
}

// OpenSettings opens the per-user data directory for app.
func OpenSettings(app string) (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		return &SettingsStore{}, fmt.Errorf("window: open settings: %w", err)
	}
	return &SettingsStore{data: m}, nil
}

// Load returns the saved settings, or the defaults when none are stored.
func (s *SettingsStore) Load() (Settings, error) {
	if s == nil || s.data == nil || !s.data.ObjectPropExists(settingsObject, settingsProperty) {
		return DefaultSettings(), nil
	}
	raw, err := s.data.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return DefaultSettings(), fmt.Errorf("window: load settings: %w", err)
	}
	var st Settings
	if err := yaml.Unmarshal(raw, &st); err != nil {
		return DefaultSettings(), fmt.Errorf("window: parse settings: %w", err)
	}
	return st.normalized(), nil
}

// Save stores st.
func (s *SettingsStore) Save(st Settings) error {
	if s == nil || s.data == nil {
		return nil
	}
	raw, err := yaml.Marshal(st.normalized())
	if err != nil {
		return fmt.Errorf("window: encode settings: %w", err)
	}
	if err := s.data.SaveObjectProp(settingsObject, settingsProperty, raw); err != nil {
		return fmt.Errorf("window: save settings: %w", err)
	}
	return nil
}
