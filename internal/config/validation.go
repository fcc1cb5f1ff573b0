package config

import (
	"errors"
	"fmt"
)

// validate asserts the config has sane inputs.
func validate(cfg *Config) error {
	var errs error

	if cfg.Model.APIKey == "" {
		errs = errors.Join(errs, fmt.Errorf("model api key cannot be an empty string"))
	}
	if cfg.Model.Name == "" {
		errs = errors.Join(errs, fmt.Errorf("model name cannot be an empty string"))
	}
	if cfg.Model.TimeoutSeconds <= 0 {
		errs = errors.Join(errs, fmt.Errorf("model timeout must be positive, got %d", cfg.Model.TimeoutSeconds))
	}
	if cfg.HTTP.Addr == "" {
		errs = errors.Join(errs, fmt.Errorf("http addr cannot be an empty string"))
	}
	if (cfg.Journal.DBUser == "") != (cfg.Journal.DBPass == "") {
		errs = errors.Join(errs, fmt.Errorf("journal store user and pass must be set together"))
	}

	return errs
}
