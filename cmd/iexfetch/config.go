package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the iexfetch configuration file.
type Config struct {
	BaseURL      string        `yaml:"base_url" default:"https://api.iextrading.com/1.0" validate:"required,url"`
	WebsocketURL string        `yaml:"websocket_url" default:"https://ws-api.iextrading.com/1.0" validate:"required,url"`
	Timeout      time.Duration `yaml:"timeout" default:"10s" validate:"gt=0"`
	Format       string        `yaml:"format" default:"json" validate:"oneof=json csv psv"`
	Filter       []string      `yaml:"filter"`
	Log          struct {
		Level   string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
		Console bool   `yaml:"console"`
	} `yaml:"log"`
	Stream struct {
		ReconnectLimit int           `yaml:"reconnect_limit" default:"20" validate:"gte=0"`
		ReconnectDelay time.Duration `yaml:"reconnect_delay" default:"150ms" validate:"gte=0"`
	} `yaml:"stream"`
}

var validate = validator.New()

// LoadConfig reads the YAML file at path on top of the defaults. A missing
// file leaves the defaults in place. IEX_API_BASE_URL and IEX_WS_BASE_URL
// override the file.
func LoadConfig(path string) (*Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("set defaults: %w", err)
	}

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(b, &c); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if v := os.Getenv("IEX_API_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("IEX_WS_BASE_URL"); v != "" {
		c.WebsocketURL = v
	}

	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &c, nil
}
