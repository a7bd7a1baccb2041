package bip32

import (
	"bytes"
	"encoding/binary"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/pkg/errors"
)

const (
	// SerializedKeyLen is the length of the binary extended key payload.
	SerializedKeyLen = 4 + 1 + 4 + 4 + 32 + 33
	checksumLen      = 4

	base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
)

// Serialize returns the 78-byte payload:
// version || depth || parent fingerprint || child index || chain code || key.
func (k *ExtendedKey) Serialize() [SerializedKeyLen]byte {
	var out [SerializedKeyLen]byte
	version := k.Version()
	copy(out[0:4], version[:])
	out[4] = k.depth
	copy(out[5:9], k.parentFP[:])
	binary.BigEndian.PutUint32(out[9:13], k.childIndex)
	copy(out[13:45], k.chainCode[:])
	copy(out[45:78], k.key[:])
	return out
}

// String returns the base58check form, e.g. xprv... or tpub....
func (k *ExtendedKey) String() string {
	payload := k.Serialize()
	buf := make([]byte, 0, SerializedKeyLen+checksumLen)
	buf = append(buf, payload[:]...)
	buf = append(buf, chainhash.DoubleHashB(payload[:])[:checksumLen]...)
	return base58.Encode(buf)
}

// ParseKey decodes a base58check extended key and validates every field.
func ParseKey(text string) (*ExtendedKey, error) {
	for i := 0; i < len(text); i++ {
		if strings.IndexByte(base58Alphabet, text[i]) < 0 {
			return nil, errors.Wrapf(ErrInvalidEncoding, "character %q at %d", text[i], i)
		}
	}

	decoded := base58.Decode(text)
	if len(decoded) != SerializedKeyLen+checksumLen {
		return nil, errors.Wrapf(ErrInvalidLength, "got %d bytes", len(decoded))
	}
	payload := decoded[:SerializedKeyLen]
	checksum := decoded[SerializedKeyLen:]
	if !bytes.Equal(chainhash.DoubleHashB(payload)[:checksumLen], checksum) {
		return nil, ErrChecksumMismatch
	}

	var version [4]byte
	copy(version[:], payload[0:4])
	net, isPrivate, err := lookupVersion(version)
	if err != nil {
		return nil, err
	}

	k := &ExtendedKey{
		net:        net,
		depth:      payload[4],
		childIndex: binary.BigEndian.Uint32(payload[9:13]),
		isPrivate:  isPrivate,
	}
	copy(k.parentFP[:], payload[5:9])
	copy(k.chainCode[:], payload[13:45])

	if k.depth == 0 && (k.parentFP != [4]byte{} || k.childIndex != 0) {
		return nil, ErrInvalidRootKey
	}

	material := payload[45:78]
	if isPrivate {
		if material[0] != 0x00 {
			return nil, errors.Wrap(ErrInvalidKeyMaterial, "private key prefix")
		}
		if _, ok := parseScalar(material[1:]); !ok {
			return nil, errors.Wrap(ErrInvalidKeyMaterial, "private scalar out of range")
		}
		copy(k.key[:], material)
		return k, nil
	}

	pub, ok := parseCompressed(material)
	if !ok {
		return nil, errors.Wrap(ErrInvalidKeyMaterial, "public key is not a compressed curve point")
	}
	copy(k.key[:], pub.SerializeCompressed())
	return k, nil
}
