package logic_test

import (
	"context"
	"testing"

	"github.com/b2network/b2-hdkey/internal/config"
	"github.com/b2network/b2-hdkey/internal/crypto/bip32"
	"github.com/b2network/b2-hdkey/internal/logic"
	"github.com/b2network/b2-hdkey/internal/seed"
	"github.com/stretchr/testify/require"
)

const abandonMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func mockKeygenService(t *testing.T) *logic.KeygenService {
	cfg := config.Config{
		Network:      "mainnet",
		DerivePath:   "m/44'/60'/0'/0/0",
		Bech32Prefix: "ethm",
	}
	s, err := seed.FromMnemonic(abandonMnemonic, "")
	require.NoError(t, err)
	svc, err := logic.NewKeygenService(&cfg, s)
	require.NoError(t, err)
	return svc
}

func TestAccount(t *testing.T) {
	svc := mockKeygenService(t)
	require.True(t, svc.Root().IsPrivate())

	account, err := svc.Account("")
	require.NoError(t, err)
	require.Equal(t, "m/44'/60'/0'/0/0", account.Path)
	require.Equal(t, "0x9858EfFD232B4033E47d90003D41EC34EcaEda94", account.Eth)
	require.Equal(t, "ethm1npvwllfr9dqr8erajqqr6s0vxnk2ak55j7ufuc", account.Bech32)

	btcAccount, err := svc.Account("m/44'/0'/0'/0/0")
	require.NoError(t, err)
	require.Equal(t, "1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA", btcAccount.P2PKH)

	_, err = svc.Account("m/44'/x")
	require.ErrorIs(t, err, bip32.ErrInvalidPath)
}

func TestAccountsBatch(t *testing.T) {
	svc := mockKeygenService(t)
	accounts, err := svc.Accounts(context.Background(), "m/44'/60'/0'/0", 0, 3)
	require.NoError(t, err)
	require.Len(t, accounts, 3)

	want := []string{
		"0x9858EfFD232B4033E47d90003D41EC34EcaEda94",
		"0x6Fac4D18c912343BF86fa7049364Dd4E424Ab9C0",
		"0xb6716976A3ebe8D39aCEB04372f22Ff8e6802D7A",
	}
	for i, account := range accounts {
		require.Equal(t, want[i], account.Eth)
		require.Equal(t, uint32(i), account.Key.ChildIndex())
	}
	require.Equal(t, "m/44'/60'/0'/0/2", accounts[2].Path)
	require.Equal(t, "ethm1keckja4ra05d8xkwkpph9u30lrngqtt6atgnu8", accounts[2].Bech32)

	// each batch entry matches a single derivation
	single, err := svc.Account(accounts[1].Path)
	require.NoError(t, err)
	require.True(t, single.Key.Equal(accounts[1].Key))
}

func TestAccountsWatchOnly(t *testing.T) {
	svc := mockKeygenService(t)
	account, err := svc.Root().DerivePathString("M/44'/60'/0'")
	require.NoError(t, err)

	watch := logic.NewKeygenServiceFromKey(&config.Config{Bech32Prefix: "ethm"}, account)
	accounts, err := watch.Accounts(context.Background(), "m/0", 0, 2)
	require.NoError(t, err)
	require.Equal(t, "0x9858EfFD232B4033E47d90003D41EC34EcaEda94", accounts[0].Eth)
	require.False(t, accounts[0].Key.IsPrivate())

	_, err = watch.Accounts(context.Background(), "m/0'", 0, 2)
	require.ErrorIs(t, err, bip32.ErrHardenedFromPublicKey)
}

func TestAccountsPublicRoot(t *testing.T) {
	svc := mockKeygenService(t)
	accounts, err := svc.Accounts(context.Background(), "M/44'/60'/0'/0", 0, 2)
	require.NoError(t, err)
	require.Equal(t, "M/44'/60'/0'/0/0", accounts[0].Path)
	require.Equal(t, "0x9858EfFD232B4033E47d90003D41EC34EcaEda94", accounts[0].Eth)
	for _, account := range accounts {
		require.False(t, account.Key.IsPrivate())
	}

	single, err := svc.Account(accounts[1].Path)
	require.NoError(t, err)
	require.False(t, single.Key.IsPrivate())
	require.True(t, single.Key.Equal(accounts[1].Key))
}

func TestAccountsErrors(t *testing.T) {
	svc := mockKeygenService(t)

	_, err := svc.Accounts(context.Background(), "m/0", bip32.HardenedKeyStart-1, 2)
	require.ErrorIs(t, err, bip32.ErrInvalidPathIndex)

	_, err = svc.Accounts(context.Background(), "m/0", 0, logic.MaxBatchSize+1)
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.Accounts(ctx, "m/0", 0, 4)
	require.ErrorIs(t, err, context.Canceled)
}
