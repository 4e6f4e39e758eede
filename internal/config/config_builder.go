package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*Config
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Config, 0, 3),
	}
}

// build merges the collected configs in the order they were added. mergo only
// fills fields the destination has not set yet, so earlier sources take
// priority over later ones.
func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(Config)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &Config{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	b.configs = append(b.configs, ParseFlags())
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

func defaultConfig() *Config {
	return &Config{
		Server: Server{
			Address:        ":3000",
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns:   10,
				ConnectTimeout: 5 * time.Second,
			},
		},
		Weather: Weather{
			BaseURL: "https://api.open-meteo.com/v1/forecast",
			APIKey:  "climate",
			Timeout: 15 * time.Second,
		},
		Auth: Auth{
			TokenIssuer:   "climatask",
			TokenDuration: time.Hour,
		},
	}
}
