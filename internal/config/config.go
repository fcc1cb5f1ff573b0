package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// envBindings maps config keys to the environment variables that feed
// them.
var envBindings = map[string]string{
	"http.addr":             "HTTP_ADDR",
	"model.api_key":         "MODEL_API_KEY",
	"model.base_url":        "MODEL_BASE_URL",
	"model.name":            "MODEL_NAME",
	"model.timeout_seconds": "MODEL_TIMEOUT_SECONDS",
	"model.prompt_profile":  "PROMPT_PROFILE",
	"journal.db_url":        "JOURNAL_DB_URL",
	"journal.db_user":       "JOURNAL_DB_USER",
	"journal.db_pass":       "JOURNAL_DB_PASS",
	"telegram.bot_token":    "TELEGRAM_BOT_TOKEN",
	"telegram.chat_id":      "TELEGRAM_CHAT_ID",
	"log.level":             "LOG_LEVEL",
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	v := viper.New()
	applyDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = true
	}); err != nil {
		return nil, fmt.Errorf("parsing config failed: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
