package bip32

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidSeedLength is returned when the seed is not 128 to 512 bits.
	ErrInvalidSeedLength = errors.New("seed length must be between 128 and 512 bits")
	// ErrInvalidMasterKey is returned when the seed hashes to an unusable
	// master scalar. The caller must pick another seed.
	ErrInvalidMasterKey = errors.New("seed produced an invalid master key")
	// ErrHardenedFromPublicKey is returned when a hardened child is requested
	// from a public extended key.
	ErrHardenedFromPublicKey = errors.New("cannot derive a hardened child from a public key")
	// ErrInvalidChildKey is returned when the child scalar or point is invalid
	// for the requested index. The caller may retry with the next index.
	ErrInvalidChildKey = errors.New("derived child key is invalid")
	// ErrDepthOverflow is returned when deriving below depth 255.
	ErrDepthOverflow = errors.New("cannot derive past depth 255")

	ErrInvalidEncoding    = errors.New("extended key contains invalid base58 characters")
	ErrInvalidLength      = errors.New("extended key has invalid length")
	ErrChecksumMismatch   = errors.New("extended key checksum mismatch")
	ErrUnknownVersion     = errors.New("unknown extended key version")
	ErrInvalidKeyMaterial = errors.New("extended key holds invalid key material")
	ErrInvalidRootKey     = errors.New("zero depth key with non-zero parent fingerprint or child index")

	ErrInvalidPath      = errors.New("invalid derivation path")
	ErrInvalidPathIndex = errors.New("derivation path index out of range")
	ErrNotPrivate       = errors.New("extended key is not private")
)

// PathError reports the first failing step of a path derivation.
type PathError struct {
	Position int
	Element  PathElement
	Err      error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("derive step %d (%s): %v", e.Position, e.Element, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }
