package config

import "github.com/spf13/viper"

const (
	defaultHTTPAddr     = ":8000"
	defaultModelBaseURL = "https://api.groq.com/openai/v1"
	defaultModelName    = "meta-llama/llama-4-scout-17b-16e-instruct"
	defaultModelTimeout = 60
	defaultLogLevel     = "info"
)

func applyDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", defaultHTTPAddr)
	v.SetDefault("model.api_key", "")
	v.SetDefault("model.base_url", defaultModelBaseURL)
	v.SetDefault("model.name", defaultModelName)
	v.SetDefault("model.timeout_seconds", defaultModelTimeout)
	v.SetDefault("model.prompt_profile", "")
	v.SetDefault("journal.db_url", "")
	v.SetDefault("journal.db_user", "")
	v.SetDefault("journal.db_pass", "")
	v.SetDefault("telegram.bot_token", "")
	v.SetDefault("telegram.chat_id", "")
	v.SetDefault("log.level", defaultLogLevel)
}
