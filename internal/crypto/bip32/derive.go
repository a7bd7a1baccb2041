package bip32

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/pkg/errors"
)

var masterHMACKey = []byte("Bitcoin seed")

// NewMasterKey computes the root private key for seed on net. A nil net
// selects MainNet; any other value must be MainNet or TestNet.
//
// ErrInvalidMasterKey means the seed is unusable and a new one must be
// generated.
func NewMasterKey(seed []byte, net *Network) (*ExtendedKey, error) {
	if len(seed) < MinSeedBytes || len(seed) > MaxSeedBytes {
		return nil, ErrInvalidSeedLength
	}
	if net == nil {
		net = MainNet
	}
	if !registered(net) {
		return nil, errors.Wrapf(ErrUnknownVersion, "network %s is not registered", net)
	}

	il, ir := hmacSplit(masterHMACKey, seed)
	if _, ok := parseScalar(il); !ok {
		return nil, ErrInvalidMasterKey
	}

	master := &ExtendedKey{net: net, isPrivate: true}
	copy(master.key[1:], il)
	copy(master.chainCode[:], ir)
	return master, nil
}

// Child derives the child at index. Indexes at or above HardenedKeyStart
// request hardened derivation, which needs a private parent.
//
// ErrInvalidChildKey is returned for the rare indexes whose derived key is
// invalid; the index is not skipped automatically.
func (k *ExtendedKey) Child(index uint32) (*ExtendedKey, error) {
	hardened := index >= HardenedKeyStart
	if hardened && !k.isPrivate {
		return nil, ErrHardenedFromPublicKey
	}
	if k.depth == maxDepth {
		return nil, ErrDepthOverflow
	}

	parentPub := k.pubKey()
	parentPubBytes := parentPub.SerializeCompressed()

	// hardened:   0x00 || ser256(k) || ser32(i)
	// normal:     serP(K) || ser32(i)
	data := make([]byte, 0, len(k.key)+4)
	if hardened {
		data = append(data, k.key[:]...)
	} else {
		data = append(data, parentPubBytes...)
	}
	data = binary.BigEndian.AppendUint32(data, index)

	il, ir := hmacSplit(k.chainCode[:], data)

	var tweak btcec.ModNScalar
	if overflow := tweak.SetByteSlice(il); overflow {
		return nil, errors.Wrapf(ErrInvalidChildKey, "index %d", index)
	}

	child := &ExtendedKey{
		net:        k.net,
		depth:      k.depth + 1,
		childIndex: index,
		isPrivate:  k.isPrivate,
	}
	copy(child.chainCode[:], ir)
	copy(child.parentFP[:], btcutil.Hash160(parentPubBytes)[:4])

	if k.isPrivate {
		var parentScalar btcec.ModNScalar
		parentScalar.SetByteSlice(k.key[1:])
		sum, ok := addScalars(&tweak, &parentScalar)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidChildKey, "index %d", index)
		}
		scalar := sum.Bytes()
		copy(child.key[1:], scalar[:])
		return child, nil
	}

	point, ok := addTweak(&tweak, parentPub)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidChildKey, "index %d", index)
	}
	copy(child.key[:], point.SerializeCompressed())
	return child, nil
}

// Public returns the public counterpart of k, keeping its position in the
// tree. Public keys are returned as is.
func (k *ExtendedKey) Public() *ExtendedKey {
	if !k.isPrivate {
		return k
	}
	pub := &ExtendedKey{
		net:        k.net,
		depth:      k.depth,
		parentFP:   k.parentFP,
		childIndex: k.childIndex,
		chainCode:  k.chainCode,
	}
	copy(pub.key[:], k.pubKey().SerializeCompressed())
	return pub
}

// DerivePath walks path from k. The first failing step is reported as a
// *PathError; no intermediate key is returned.
func (k *ExtendedKey) DerivePath(path Path) (*ExtendedKey, error) {
	current := k
	for i, el := range path {
		if el.Index >= HardenedKeyStart {
			return nil, &PathError{Position: i, Element: el, Err: ErrInvalidPathIndex}
		}
		next, err := current.Child(el.ChildIndex())
		if err != nil {
			return nil, &PathError{Position: i, Element: el, Err: err}
		}
		current = next
	}
	return current, nil
}

// DerivePathString parses a textual path such as m/44'/0'/0'/0/1 and derives
// it from k. A path rooted at M returns the public key of the final node.
func (k *ExtendedKey) DerivePathString(path string) (*ExtendedKey, error) {
	p, public, err := ParsePathRoot(path)
	if err != nil {
		return nil, err
	}
	child, err := k.DerivePath(p)
	if err != nil {
		return nil, err
	}
	if public {
		return child.Public(), nil
	}
	return child, nil
}
