package storage

import (
	"context"
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"svw.info/verdant/internal/domain"
)

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Settings stores presentation preferences as YAML in a gdata object.
// A nil manager keeps preferences in memory only.
type Settings struct {
	manager *gdata.Manager
	log     *zap.Logger
	mem     domain.Settings
}

func NewSettings(m *gdata.Manager, logger *zap.Logger) *Settings {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Settings{manager: m, log: logger, mem: domain.DefaultSettings()}
}

// Open creates the gdata manager for appName. If the platform storage cannot be
// opened the store degrades to memory-only mode and the error is returned
// alongside a usable store.
func Open(appName string, logger *zap.Logger) (*Settings, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewSettings(nil, logger), fmt.Errorf("failed to open settings storage: %w", err)
	}
	return NewSettings(m, logger), nil
}

// Load returns stored settings, or defaults when nothing has been saved. A decode
// failure also yields defaults, together with the error.
func (s *Settings) Load(ctx context.Context) (domain.Settings, error) {
	if s.manager == nil {
		return s.mem, nil
	}
	if !s.manager.ObjectPropExists(settingsObject, settingsProperty) {
		return domain.DefaultSettings(), nil
	}
	data, err := s.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return domain.DefaultSettings(), fmt.Errorf("failed to load settings: %w", err)
	}
	out := domain.DefaultSettings()
	if err := yaml.Unmarshal(data, &out); err != nil {
		s.log.Warn("settings unreadable, using defaults", zap.Error(err))
		return domain.DefaultSettings(), fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if out.Theme != domain.ThemeDark {
		out.Theme = domain.ThemeLight
	}
	return out, nil
}

func (s *Settings) Save(ctx context.Context, v domain.Settings) error {
	if s.manager == nil {
		s.mem = v
		return nil
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := s.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	s.log.Debug("settings saved", zap.String("theme", v.Theme), zap.Bool("rain", v.Rain))
	return nil
}
