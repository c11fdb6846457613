package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Defaults applied for any field the config file does not set.
const (
	DefaultImage        = "valmesh/validator"
	DefaultDaemonBinary = "validatord"
	DefaultServicePort  = 8800
	DefaultGossipPort   = 5500
)

// Config holds the tool configuration.
type Config struct {
	// Image is the container image used by the docker backend.
	Image string `mapstructure:"image" yaml:"image"`

	// DaemonBinary is the validator executable used by the daemon backend.
	DaemonBinary string `mapstructure:"daemon_binary" yaml:"daemon_binary"`

	// ServicePort is the client-facing port each node listens on.
	ServicePort int `mapstructure:"service_port" yaml:"service_port"`

	// GossipPort is the peer-discovery port each node listens on.
	GossipPort int `mapstructure:"gossip_port" yaml:"gossip_port"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Image:        DefaultImage,
		DaemonBinary: DefaultDaemonBinary,
		ServicePort:  DefaultServicePort,
		GossipPort:   DefaultGossipPort,
	}
}

// Load reads the configuration from the user's config directory, falling
// back to defaults when no file exists.
func Load() (*Config, error) {
	path, err := xdg.SearchConfigFile("valctl/config.yaml")
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and parses the configuration from a YAML file. Fields the
// file omits keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var rawConfig map[string]interface{}
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	cfg := Default()
	if err := mapstructure.Decode(rawConfig, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values no backend can use.
func (c *Config) Validate() error {
	if c.Image == "" {
		return errors.New("image must not be empty")
	}
	if c.DaemonBinary == "" {
		return errors.New("daemon_binary must not be empty")
	}
	if c.ServicePort <= 0 || c.ServicePort > 65535 {
		return fmt.Errorf("service_port %d out of range", c.ServicePort)
	}
	if c.GossipPort <= 0 || c.GossipPort > 65535 {
		return fmt.Errorf("gossip_port %d out of range", c.GossipPort)
	}
	return nil
}
