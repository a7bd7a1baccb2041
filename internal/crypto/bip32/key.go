package bip32

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
)

const (
	// HardenedKeyStart is the first hardened child index.
	HardenedKeyStart uint32 = 0x80000000

	// MinSeedBytes and MaxSeedBytes bound the seed accepted by NewMasterKey.
	MinSeedBytes = 16
	MaxSeedBytes = 64

	maxDepth = 255
)

// ExtendedKey is a BIP32 node: a private scalar or compressed public point
// together with its chain code and position in the tree. Values are never
// modified after construction; derivation always returns a new key.
type ExtendedKey struct {
	net        *Network
	depth      uint8
	parentFP   [4]byte
	childIndex uint32
	chainCode  [32]byte
	// 0x00 || scalar for private keys, compressed point for public keys.
	key       [33]byte
	isPrivate bool
}

func (k *ExtendedKey) Network() *Network { return k.net }

// Version returns the 4-byte serialization prefix.
func (k *ExtendedKey) Version() [4]byte {
	if k.isPrivate {
		return k.net.private
	}
	return k.net.public
}

func (k *ExtendedKey) Depth() uint8               { return k.depth }
func (k *ExtendedKey) ParentFingerprint() [4]byte { return k.parentFP }
func (k *ExtendedKey) ChildIndex() uint32         { return k.childIndex }
func (k *ExtendedKey) ChainCode() [32]byte        { return k.chainCode }
func (k *ExtendedKey) IsPrivate() bool            { return k.isPrivate }
func (k *ExtendedKey) IsForNet(net *Network) bool { return k.net == net }
func (k *ExtendedKey) IsHardened() bool           { return k.childIndex >= HardenedKeyStart }

// PublicKeyBytes returns the compressed public key.
func (k *ExtendedKey) PublicKeyBytes() []byte {
	if !k.isPrivate {
		out := make([]byte, len(k.key))
		copy(out, k.key[:])
		return out
	}
	return k.pubKey().SerializeCompressed()
}

// PrivateKeyBytes returns the 32-byte private scalar.
func (k *ExtendedKey) PrivateKeyBytes() ([]byte, error) {
	if !k.isPrivate {
		return nil, ErrNotPrivate
	}
	out := make([]byte, 32)
	copy(out, k.key[1:])
	return out, nil
}

// Fingerprint returns the first four bytes of HASH160 of the public key, the
// value children record as their parent fingerprint.
func (k *ExtendedKey) Fingerprint() [4]byte {
	var fp [4]byte
	copy(fp[:], btcutil.Hash160(k.PublicKeyBytes()))
	return fp
}

// IsChildOf reports whether k sits directly below parent: one level deeper
// and recording parent's fingerprint. Fingerprints are four bytes, so a
// match is strong evidence, not proof.
func (k *ExtendedKey) IsChildOf(parent *ExtendedKey) bool {
	if parent == nil || int(k.depth) != int(parent.depth)+1 {
		return false
	}
	return k.parentFP == parent.Fingerprint()
}

// Equal reports field-for-field equality.
func (k *ExtendedKey) Equal(other *ExtendedKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	return *k == *other
}

// pubKey returns the public point. The scalar and point held by a
// constructed key are always valid.
func (k *ExtendedKey) pubKey() *btcec.PublicKey {
	if k.isPrivate {
		var s btcec.ModNScalar
		s.SetByteSlice(k.key[1:])
		return pointFromScalar(&s)
	}
	pub, _ := btcec.ParsePubKey(k.key[:])
	return pub
}
