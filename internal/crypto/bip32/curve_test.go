package bip32

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/require"
)

const curveOrderHex = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"

func scalarBytes(t *testing.T, h string) []byte {
	t.Helper()
	b, err := hex.DecodeString(h)
	require.NoError(t, err)
	return b
}

func TestParseScalar(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ok   bool
	}{
		{"zero", "0000000000000000000000000000000000000000000000000000000000000000", false},
		{"one", "0000000000000000000000000000000000000000000000000000000000000001", true},
		{"order minus one", "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140", true},
		{"order", curveOrderHex, false},
		{"order plus one", "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364142", false},
		{"max", "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := parseScalar(scalarBytes(t, tt.in))
			require.Equal(t, tt.ok, ok)
			if ok {
				b := s.Bytes()
				require.Equal(t, tt.in, hex.EncodeToString(b[:]))
			}
		})
	}
}

func TestAddScalarsZero(t *testing.T) {
	var seven, negSeven btcec.ModNScalar
	seven.SetInt(7)
	negSeven.NegateVal(&seven)

	_, ok := addScalars(&seven, &negSeven)
	require.False(t, ok)

	sum, ok := addScalars(&seven, &seven)
	require.True(t, ok)
	var fourteen btcec.ModNScalar
	fourteen.SetInt(14)
	require.True(t, sum.Equals(&fourteen))
}

func TestAddTweakInfinity(t *testing.T) {
	var seven btcec.ModNScalar
	seven.SetInt(7)

	// -7G is 7G with the other y parity
	compressed := pointFromScalar(&seven).SerializeCompressed()
	compressed[0] ^= 0x01
	negPoint, ok := parseCompressed(compressed)
	require.True(t, ok)

	_, ok = addTweak(&seven, negPoint)
	require.False(t, ok)

	sum, ok := addTweak(&seven, pointFromScalar(&seven))
	require.True(t, ok)
	var fourteen btcec.ModNScalar
	fourteen.SetInt(14)
	require.True(t, sum.IsEqual(pointFromScalar(&fourteen)))
}

func TestParseCompressed(t *testing.T) {
	var one btcec.ModNScalar
	one.SetInt(1)
	g := pointFromScalar(&one).SerializeCompressed()

	_, ok := parseCompressed(g)
	require.True(t, ok)

	uncompressed := pointFromScalar(&one).SerializeUncompressed()
	_, ok = parseCompressed(uncompressed)
	require.False(t, ok)

	bad := append([]byte{}, g...)
	bad[0] = 0x04
	_, ok = parseCompressed(bad)
	require.False(t, ok)

	// x = 5 has no point on the curve
	offCurve := make([]byte, 33)
	offCurve[0] = 0x02
	offCurve[32] = 0x05
	_, ok = parseCompressed(offCurve)
	require.False(t, ok)
}
