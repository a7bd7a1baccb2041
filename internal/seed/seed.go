// Package seed turns BIP39 mnemonics or raw hex into the seed bytes consumed
// by the bip32 package.
package seed

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/b2network/b2-hdkey/internal/crypto/bip32"
	"github.com/tyler-smith/go-bip39"
)

// NewMnemonic returns a fresh mnemonic with the given entropy size: 128 to
// 256 bits in steps of 32.
func NewMnemonic(bits int) (string, error) {
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", fmt.Errorf("[seed] new entropy err: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("[seed] new mnemonic err: %w", err)
	}
	return mnemonic, nil
}

// FromMnemonic validates mnemonic and stretches it with the optional
// passphrase into a 64-byte seed.
func FromMnemonic(mnemonic, passphrase string) ([]byte, error) {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, fmt.Errorf("[seed] invalid mnemonic")
	}
	return bip39.NewSeed(mnemonic, passphrase), nil
}

// FromHex decodes a hex seed and checks its length.
func FromHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	if err != nil {
		return nil, fmt.Errorf("[seed] decode hex err: %w", err)
	}
	if len(b) < bip32.MinSeedBytes || len(b) > bip32.MaxSeedBytes {
		return nil, fmt.Errorf("[seed] %d bytes: %w", len(b), bip32.ErrInvalidSeedLength)
	}
	return b, nil
}
