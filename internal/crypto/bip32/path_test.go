package bip32_test

import (
	"testing"

	"github.com/b2network/b2-hdkey/internal/crypto/bip32"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func hard(i uint32) bip32.PathElement { return bip32.PathElement{Index: i, Hardened: true} }
func norm(i uint32) bip32.PathElement { return bip32.PathElement{Index: i} }

func TestParsePath(t *testing.T) {
	tests := []struct {
		in   string
		want bip32.Path
		out  string
	}{
		{"m", bip32.Path{}, "m"},
		{"M", bip32.Path{}, "m"},
		{"m/0'/0/5/1'", bip32.Path{hard(0), norm(0), norm(5), hard(1)}, "m/0'/0/5/1'"},
		{"m/44h/60H/0'/0/0", bip32.Path{hard(44), hard(60), hard(0), norm(0), norm(0)}, "m/44'/60'/0'/0/0"},
		{"0/1", bip32.Path{norm(0), norm(1)}, "m/0/1"},
		{" m/2147483647' ", bip32.Path{hard(2147483647)}, "m/2147483647'"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := bip32.ParsePath(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.out, got.String())
		})
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"m/",
		"m//1",
		"m/'",
		"m/-1",
		"m/+1",
		"m/2147483648",
		"m/2147483648'",
		"m/1''",
		"m/0x10",
		"x/1",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := bip32.ParsePath(in)
			require.ErrorIs(t, err, bip32.ErrInvalidPath)
		})
	}
}

func TestPathFromChildIndexes(t *testing.T) {
	indexes := []uint32{bip32.HardenedKeyStart + 44, bip32.HardenedKeyStart, 0, 7}
	path := bip32.PathFromChildIndexes(indexes...)
	require.Equal(t, "m/44'/0'/0/7", path.String())
	require.Equal(t, indexes, path.ChildIndexes())
}

func TestPathStringRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		path := drawPath(t, "path")
		parsed, err := bip32.ParsePath(path.String())
		if err != nil {
			t.Fatalf("parse %q: %v", path.String(), err)
		}
		if len(parsed) != len(path) {
			t.Fatalf("length %d != %d", len(parsed), len(path))
		}
		for i := range path {
			if parsed[i] != path[i] {
				t.Fatalf("element %d: %v != %v", i, parsed[i], path[i])
			}
		}
	})
}
