package config

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server      Server
	Quiz        Quiz
	LogLevel    string
	HomepageURL string
}

type Server struct {
	Port         string
	GinMode      string
	AllowOrigins []string
}

type Quiz struct {
	BankPath string // empty means the embedded bank
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
	viper.SetDefault("HOMEPAGE_URL", "https://rakulife.jp/")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.GinMode = viper.GetString("GIN_MODE")
	config.Server.AllowOrigins = splitList(viper.GetString("CORS_ALLOW_ORIGINS"))
	config.Quiz.BankPath = viper.GetString("QUIZ_BANK_PATH")
	config.LogLevel = viper.GetString("LOG_LEVEL")
	config.HomepageURL = viper.GetString("HOMEPAGE_URL")

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
