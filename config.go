package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func setDefaults() {
	viper.SetDefault("server.address", ":3000")
	viper.SetDefault("server.shutdown_timeout", "5s")
	viper.SetDefault("handler.timeout", "30s")
	viper.SetDefault("storage.full_dir", filepath.Join("images", "full"))
	viper.SetDefault("storage.thumb_dir", filepath.Join("images", "thumb"))
	viper.SetDefault("codec.backend", "imaging")
	viper.SetDefault("limits.max_dimension", 10000)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")
	viper.SetDefault("telegram.bot_token", "")
}

// loadConfig reads config.toml from the working directory if there is one. Every key can be overridden from the
// environment, e.g. THUMBD_SERVER_ADDRESS.
func loadConfig() error {
	setDefaults()

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.SetEnvPrefix("thumbd")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		log.Info().Msg("no config file found, using defaults and environment")
		return nil
	}

	return err
}

func parseLogLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func setupLogging() {
	zerolog.SetGlobalLevel(parseLogLevel(viper.GetString("log.level")))

	if viper.GetString("log.format") == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	zerolog.DefaultContextLogger = &log.Logger
}

func duration(key string) time.Duration {
	d, err := time.ParseDuration(viper.GetString(key))
	if err != nil {
		log.Panic().Err(err).Str("key", key).Msg("invalid duration in config")
	}

	return d
}

func absDir(key string) string {
	dir, err := filepath.Abs(viper.GetString(key))
	if err != nil {
		log.Panic().Err(err).Str("key", key).Msg("invalid directory in config")
	}

	return dir
}
