// Package bip32 derives hierarchical deterministic secp256k1 keys from a
// seed and encodes them in the xprv/xpub extended key format.
package bip32

import (
	"github.com/btcsuite/btcd/btcec/v2"
)

// ECPrivKey returns the private key of a private extended key.
func (k *ExtendedKey) ECPrivKey() (*btcec.PrivateKey, error) {
	if !k.isPrivate {
		return nil, ErrNotPrivate
	}

	privKey, _ := btcec.PrivKeyFromBytes(k.key[1:])
	return privKey, nil
}

// ECPubKey returns the public key of k.
func (k *ExtendedKey) ECPubKey() *btcec.PublicKey {
	return k.pubKey()
}
