package config_test

import (
	"reflect"
	"testing"

	"github.com/b2network/b2-hdkey/internal/config"
	"github.com/b2network/b2-hdkey/internal/crypto/bip32"
	"github.com/stretchr/testify/require"
)

func TestConfigEnv(t *testing.T) {
	t.Setenv("HDKEY_NETWORK", "testnet")
	t.Setenv("HDKEY_DERIVE_PATH", "m/84'/1'/0'/0/0")
	t.Setenv("HDKEY_BECH32_PREFIX", "b2")
	t.Setenv("HDKEY_LOG_LEVEL", "debug")
	t.Setenv("HDKEY_MULTISIG_REQUIRED", "3")
	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg, &config.Config{
		Network:          "testnet",
		DerivePath:       "m/84'/1'/0'/0/0",
		Bech32Prefix:     "b2",
		LogLevel:         "debug",
		MultisigRequired: 3,
	}) {
		t.Fatal("config mismatch")
	}
	net, err := cfg.Net()
	require.NoError(t, err)
	require.Equal(t, bip32.TestNet, net)
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "mainnet", cfg.Network)
	require.Equal(t, "m/44'/0'/0'/0/0", cfg.DerivePath)
	require.Equal(t, 2, cfg.MultisigRequired)
}

func TestConfigInvalid(t *testing.T) {
	t.Run("network", func(t *testing.T) {
		t.Setenv("HDKEY_NETWORK", "regtest")
		_, err := config.LoadConfig()
		require.Error(t, err)
	})
	t.Run("path", func(t *testing.T) {
		t.Setenv("HDKEY_DERIVE_PATH", "m/abc")
		_, err := config.LoadConfig()
		require.ErrorIs(t, err, bip32.ErrInvalidPath)
	})
	t.Run("multisig", func(t *testing.T) {
		t.Setenv("HDKEY_MULTISIG_REQUIRED", "0")
		_, err := config.LoadConfig()
		require.Error(t, err)
	})
}
