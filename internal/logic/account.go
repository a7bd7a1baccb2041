package logic

import (
	"fmt"

	"github.com/b2network/b2-hdkey/internal/btc"
	"github.com/b2network/b2-hdkey/internal/crypto/bip32"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/ethereum/go-ethereum/crypto"
)

// Account is a derived node with the identifiers wallets display for it.
type Account struct {
	Path   string
	Key    *bip32.ExtendedKey
	P2PKH  string
	P2WPKH string
	Eth    string
	Bech32 string
}

func newAccount(path string, key *bip32.ExtendedKey, bech32Prefix string) (*Account, error) {
	p2pkh, err := btc.P2PKHAddress(key)
	if err != nil {
		return nil, fmt.Errorf("[Account] p2pkh err: %w", err)
	}
	p2wpkh, err := btc.P2WPKHAddress(key)
	if err != nil {
		return nil, fmt.Errorf("[Account] p2wpkh err: %w", err)
	}
	eth, err := EthAddress(key)
	if err != nil {
		return nil, err
	}
	b32, err := Bech32Address(bech32Prefix, key)
	if err != nil {
		return nil, err
	}
	return &Account{
		Path:   path,
		Key:    key,
		P2PKH:  p2pkh,
		P2WPKH: p2wpkh,
		Eth:    eth,
		Bech32: b32,
	}, nil
}

// EthAddress returns the checksummed Ethereum address of key.
func EthAddress(key *bip32.ExtendedKey) (string, error) {
	pub, err := crypto.DecompressPubkey(key.PublicKeyBytes())
	if err != nil {
		return "", fmt.Errorf("[EthAddress] decompress err: %w", err)
	}
	return crypto.PubkeyToAddress(*pub).Hex(), nil
}

// Bech32Address encodes the Ethereum address bytes of key with a bech32
// human readable prefix, the account format of ethermint based chains.
func Bech32Address(prefix string, key *bip32.ExtendedKey) (string, error) {
	pub, err := crypto.DecompressPubkey(key.PublicKeyBytes())
	if err != nil {
		return "", fmt.Errorf("[Bech32Address] decompress err: %w", err)
	}
	addr := crypto.PubkeyToAddress(*pub)
	conv, err := bech32.ConvertBits(addr.Bytes(), 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("[Bech32Address] convert bits err: %w", err)
	}
	encoded, err := bech32.Encode(prefix, conv)
	if err != nil {
		return "", fmt.Errorf("[Bech32Address] encode err: %w", err)
	}
	return encoded, nil
}
