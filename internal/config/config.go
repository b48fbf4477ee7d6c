package config

import "github.com/spf13/viper"

// Config holds all runtime configuration for a daylens session.
// Values are populated from .daylens.yaml, DAYLENS_* env vars, and CLI flags.
type Config struct {
	APIBaseURL            string `mapstructure:"api_base_url"`
	Model                 string `mapstructure:"model"`
	RequestTimeoutSeconds int    `mapstructure:"request_timeout_seconds"`
	EnergyChangeThreshold int    `mapstructure:"energy_change_threshold"`
	LexiconPath           string `mapstructure:"lexicon_path"`
	TelemetryPath         string `mapstructure:"telemetry_path"`
	Verbose               bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("api_base_url", "https://api.openai.com/v1")
	viper.SetDefault("model", "gpt-4o-mini")
	viper.SetDefault("request_timeout_seconds", 30)
	viper.SetDefault("energy_change_threshold", 2)
	viper.SetDefault("lexicon_path", "")
	viper.SetDefault("telemetry_path", "")
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
