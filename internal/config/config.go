package config

import "github.com/spf13/viper"

type Config struct {
	ServerPort       string `mapstructure:"SERVER_PORT"`
	AppTitle         string `mapstructure:"APP_TITLE"`
	GeminiAPIKey     string `mapstructure:"GEMINI_API_KEY"`
	GeminiBaseURL    string `mapstructure:"GEMINI_BASE_URL"`
	GeminiModel      string `mapstructure:"GEMINI_MODEL"`
	CaptionPrompt    string `mapstructure:"CAPTION_PROMPT"`
	CaptionTimeoutMs int    `mapstructure:"CAPTION_TIMEOUT_MS"`
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	LogLevel         string `mapstructure:"LOG_LEVEL"`
}

func Load() Config {
	viper.AutomaticEnv()
	viper.SetDefault("SERVER_PORT", ":8080")
	viper.SetDefault("APP_TITLE", "Sociarede")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	viper.SetDefault("CAPTION_PROMPT", "Escreva uma legenda curta, criativa e moderna para esta foto do Instagram em Português do Brasil. Use emojis. Não use hashtags.")
	viper.SetDefault("CAPTION_TIMEOUT_MS", 15000)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("LOG_LEVEL", "info")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
