package config

import "time"

// Config holds the configuration of the application
// Use config.LoadConfig to create a new instance
type Config struct {
	NLP     NLPConfig     `mapstructure:"nlp" yaml:"nlp"`
	Dataset DatasetConfig `mapstructure:"dataset" yaml:"dataset"`
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// NLPConfig configures the spaCy NLP server used for entity extraction.
type NLPConfig struct {
	ServerURL string `mapstructure:"server_url" yaml:"server_url"`
	Language  string `mapstructure:"language" yaml:"language"`
	// Timeout bounds a single HTTP attempt against the NLP server.
	Timeout        time.Duration `mapstructure:"timeout" yaml:"timeout"`
	RetryMax       int           `mapstructure:"retry_max" yaml:"retry_max"`
	StartupRetries int           `mapstructure:"startup_retries" yaml:"startup_retries"`
	// MaxConcurrentRequests limits in-flight extraction calls. 0 is unlimited.
	MaxConcurrentRequests int64 `mapstructure:"max_concurrent_requests" yaml:"max_concurrent_requests"`
}

type DatasetConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

type ServerConfig struct {
	Host           string        `mapstructure:"host" yaml:"host"`
	Port           int           `mapstructure:"port" yaml:"port"`
	ExtractTimeout time.Duration `mapstructure:"extract_timeout" yaml:"extract_timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}
