package bip32

import (
	"crypto/hmac"
	"crypto/sha512"

	"github.com/btcsuite/btcd/btcec/v2"
)

// hmacSplit returns the two 32-byte halves of HMAC-SHA512(key, data).
func hmacSplit(key, data []byte) (il, ir []byte) {
	mac := hmac.New(sha512.New, key)
	_, _ = mac.Write(data)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}

// parseScalar interprets b as a big-endian scalar and reports false when it
// is zero or not below the curve order.
func parseScalar(b []byte) (*btcec.ModNScalar, bool) {
	var s btcec.ModNScalar
	if overflow := s.SetByteSlice(b); overflow || s.IsZero() {
		return nil, false
	}
	return &s, true
}

// addScalars returns a + b mod n and reports false when the sum is zero.
func addScalars(a, b *btcec.ModNScalar) (*btcec.ModNScalar, bool) {
	var sum btcec.ModNScalar
	sum.Add2(a, b)
	if sum.IsZero() {
		return nil, false
	}
	return &sum, true
}

func pointFromScalar(s *btcec.ModNScalar) *btcec.PublicKey {
	priv := &btcec.PrivateKey{Key: *s}
	return priv.PubKey()
}

// addTweak computes point(tweak) + pub. It reports false when the sum is the
// point at infinity.
func addTweak(tweak *btcec.ModNScalar, pub *btcec.PublicKey) (*btcec.PublicKey, bool) {
	var (
		pubJacobian    btcec.JacobianPoint
		tweakJacobian  btcec.JacobianPoint
		resultJacobian btcec.JacobianPoint
	)
	btcec.ScalarBaseMultNonConst(tweak, &tweakJacobian)
	pub.AsJacobian(&pubJacobian)
	btcec.AddNonConst(&tweakJacobian, &pubJacobian, &resultJacobian)

	if (resultJacobian.X.IsZero() && resultJacobian.Y.IsZero()) || resultJacobian.Z.IsZero() {
		return nil, false
	}
	resultJacobian.ToAffine()
	return btcec.NewPublicKey(&resultJacobian.X, &resultJacobian.Y), true
}

// parseCompressed decodes a 33-byte compressed point, checking that it lies
// on the curve.
func parseCompressed(b []byte) (*btcec.PublicKey, bool) {
	if len(b) != btcec.PubKeyBytesLenCompressed {
		return nil, false
	}
	if b[0] != 0x02 && b[0] != 0x03 {
		return nil, false
	}
	pub, err := btcec.ParsePubKey(b)
	if err != nil {
		return nil, false
	}
	return pub, true
}
