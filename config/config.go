package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	Locale          string `envconfig:"FAKEGEN_LOCALE" default:"en_US" required:"true"`
	Seed            int64  `envconfig:"FAKEGEN_SEED" default:"0"`
	LocaleCacheSize int    `envconfig:"FAKEGEN_LOCALE_CACHE_SIZE" default:"16"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"error"`
}

func New() *Config {
	return &Config{}
}

// NewConfig returns a configuration populated from the environment
func NewConfig() (*Config, error) {
	cfg := New()
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) LoadFromEnv() error {
	return envconfig.Process("", c)
}
