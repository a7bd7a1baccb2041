package btc

import (
	"crypto/sha256"
	"fmt"

	"github.com/b2network/b2-hdkey/internal/crypto/bip32"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
)

// P2PKHAddress returns the legacy pay-to-pubkey-hash address of key.
func P2PKHAddress(key *bip32.ExtendedKey) (string, error) {
	addr, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(key.PublicKeyBytes()), key.Network().Params())
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

// P2WPKHAddress returns the native segwit v0 address of key.
func P2WPKHAddress(key *bip32.ExtendedKey) (string, error) {
	addr, err := btcutil.NewAddressWitnessPubKeyHash(btcutil.Hash160(key.PublicKeyBytes()), key.Network().Params())
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

// GenerateMultiSigScript derives path under every extended key and builds a
// minSignNum-of-n P2WSH multisig from the resulting public keys. All keys
// must belong to the same network and path must not contain hardened steps
// when the keys are public.
func GenerateMultiSigScript(xkeys []*bip32.ExtendedKey, path bip32.Path, minSignNum int) (string, []byte, error) {
	if len(xkeys) == 0 {
		return "", nil, fmt.Errorf("[multisig] no extended keys")
	}
	if minSignNum < 1 || minSignNum > len(xkeys) {
		return "", nil, fmt.Errorf("[multisig] invalid min sign num %d of %d", minSignNum, len(xkeys))
	}
	net := xkeys[0].Network()

	var allPubKeys []*btcutil.AddressPubKey
	for i, xkey := range xkeys {
		if !xkey.IsForNet(net) {
			return "", nil, fmt.Errorf("[multisig] key %d is for %s, want %s", i, xkey.Network(), net)
		}
		child, err := xkey.DerivePath(path)
		if err != nil {
			return "", nil, fmt.Errorf("[multisig] derive key %d err: %w", i, err)
		}
		addressPubKey, err := btcutil.NewAddressPubKey(child.PublicKeyBytes(), net.Params())
		if err != nil {
			return "", nil, err
		}
		allPubKeys = append(allPubKeys, addressPubKey)
	}
	builder := txscript.NewScriptBuilder()
	builder.AddInt64(int64(minSignNum))
	for _, key := range allPubKeys {
		builder.AddData(key.ScriptAddress())
	}
	builder.AddInt64(int64(len(allPubKeys)))
	builder.AddOp(txscript.OP_CHECKMULTISIG)
	script, err := builder.Script()
	if err != nil {
		return "", nil, err
	}
	h256 := sha256.Sum256(script)
	witnessProg := h256[:]
	address, err := btcutil.NewAddressWitnessScriptHash(witnessProg, net.Params())
	if err != nil {
		return "", nil, err
	}
	return address.EncodeAddress(), script, nil
}
