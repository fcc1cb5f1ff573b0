package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// PromptProfile overrides the analysis gateway's tunable knobs. The
// response-format contract is not part of the profile: the labeled
// fields and the no-setup sentence cannot be edited away.
type PromptProfile struct {
	Preamble    string   `mapstructure:"preamble"`
	Model       string   `mapstructure:"model"`
	Temperature *float64 `mapstructure:"temperature"`
}

// PromptLoader serves the current prompt profile and hot-reloads it
// when the file changes. A failed reload keeps the previous snapshot.
type PromptLoader struct {
	path   string
	v      *viper.Viper
	logger *zerolog.Logger

	mu       sync.RWMutex
	snapshot PromptProfile
}

// NewPromptLoader reads the profile file and starts watching it.
func NewPromptLoader(path string, logger *zerolog.Logger) (*PromptLoader, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("prompt loader requires a path")
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading prompt profile failed: %w", err)
	}
	loader := &PromptLoader{path: path, v: v, logger: logger}
	if err := loader.reload(); err != nil {
		return nil, err
	}
	v.OnConfigChange(func(evt fsnotify.Event) {
		if err := loader.reload(); err != nil {
			logger.Error().Err(err).Str("file", evt.Name).Msg("prompt profile reload failed")
			return
		}
		logger.Info().Str("file", evt.Name).Msg("prompt profile reloaded")
	})
	v.WatchConfig()
	return loader, nil
}

// Snapshot returns the current profile.
func (l *PromptLoader) Snapshot() PromptProfile {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snapshot
}

func (l *PromptLoader) reload() error {
	var profile PromptProfile
	if err := l.v.Unmarshal(&profile); err != nil {
		return fmt.Errorf("parsing prompt profile failed: %w", err)
	}
	if profile.Temperature != nil && (*profile.Temperature < 0 || *profile.Temperature > 2) {
		return fmt.Errorf("prompt profile temperature %v out of range", *profile.Temperature)
	}
	l.mu.Lock()
	l.snapshot = profile
	l.mu.Unlock()
	return nil
}
