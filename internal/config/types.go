package config

// Config is the full service configuration. Every value is
// environment-provided; there are no CLI flags.
type Config struct {
	HTTP     HTTPConfig     `mapstructure:"http"`
	Model    ModelConfig    `mapstructure:"model"`
	Journal  JournalConfig  `mapstructure:"journal"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Log      LogConfig      `mapstructure:"log"`
}

// HTTPConfig configures the inbound HTTP surface.
type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

// ModelConfig configures the vision model provider.
type ModelConfig struct {
	APIKey         string `mapstructure:"api_key"`
	BaseURL        string `mapstructure:"base_url"`
	Name           string `mapstructure:"name"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	// PromptProfile is an optional path to a hot-reloadable prompt
	// profile file.
	PromptProfile string `mapstructure:"prompt_profile"`
}

// JournalConfig configures the hosted durable store. An empty URL
// disables persistence without disabling the /save endpoint.
type JournalConfig struct {
	DBURL  string `mapstructure:"db_url"`
	DBUser string `mapstructure:"db_user"`
	DBPass string `mapstructure:"db_pass"`
}

// Enabled reports whether a durable store is configured.
func (c JournalConfig) Enabled() bool { return c.DBURL != "" }

// TelegramConfig configures the operator alert channel. Either value
// being empty silently disables notification.
type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   string `mapstructure:"chat_id"`
}

// Enabled reports whether both credentials are present.
func (c TelegramConfig) Enabled() bool { return c.BotToken != "" && c.ChatID != "" }

// LogConfig configures logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
}
