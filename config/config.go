package config

import (
	"errors"
	"strings"
	"time"

	"github.com/finnews/finner/internal"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// We're bootstrapping so avoid any imports from other packages
var log = logrus.New()

const EnvPrefix = "FINNER"

var defaults = map[string]any{
	"nlp.server_url":              "http://localhost:5557",
	"nlp.language":                "en",
	"nlp.timeout":                 30 * time.Second,
	"nlp.retry_max":               3,
	"nlp.startup_retries":         3,
	"nlp.max_concurrent_requests": 0,
	"dataset.path":                "data/financial_news_dataset.csv",
	"server.host":                 "0.0.0.0",
	"server.port":                 5000,
	"server.extract_timeout":      30 * time.Second,
	"log.level":                   "info",
}

// LoadConfig loads the config file and ENV variables into a Config struct.
// If configFile is empty, ./config.yaml is read when present; its absence is
// not an error and defaults apply.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
	}

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
		log.Debug("config.yaml not found, using defaults")
	}

	// Environment variables take precedence over config file
	loadDotEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadDotEnv loads environment variables from .env file
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Debug(".env file not found or unable to load")
	}
}

// SetLogLevel sets the log level based on the config file. Defaults to INFO if not set or invalid
func SetLogLevel(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	internal.SetLogLevel(level)
	log.Info("Log level set to: ", level)
}
