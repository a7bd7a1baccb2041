package config

import (
	"fmt"

	"github.com/b2network/b2-hdkey/internal/crypto/bip32"
	"github.com/caarlos0/env/v6"
)

// Config is the global config.
type Config struct {
	Network          string `env:"HDKEY_NETWORK" envDefault:"mainnet"`
	DerivePath       string `env:"HDKEY_DERIVE_PATH" envDefault:"m/44'/0'/0'/0/0"`
	Bech32Prefix     string `env:"HDKEY_BECH32_PREFIX" envDefault:"ethm"`
	LogLevel         string `env:"HDKEY_LOG_LEVEL" envDefault:"info"`
	MultisigRequired int    `env:"HDKEY_MULTISIG_REQUIRED" envDefault:"2"`
}

// LoadConfig load config from environment.
func LoadConfig() (*Config, error) {
	config := Config{}
	if err := env.Parse(&config); err != nil {
		return nil, err
	}
	if _, err := config.Net(); err != nil {
		return nil, err
	}
	if _, err := bip32.ParsePath(config.DerivePath); err != nil {
		return nil, fmt.Errorf("[config] HDKEY_DERIVE_PATH err: %w", err)
	}
	if config.MultisigRequired < 1 {
		return nil, fmt.Errorf("[config] HDKEY_MULTISIG_REQUIRED must be positive, got %d", config.MultisigRequired)
	}
	return &config, nil
}

// Net resolves the configured network name.
func (c *Config) Net() (*bip32.Network, error) {
	net, err := bip32.NetworkByName(c.Network)
	if err != nil {
		return nil, fmt.Errorf("[config] HDKEY_NETWORK err: %w", err)
	}
	return net, nil
}
