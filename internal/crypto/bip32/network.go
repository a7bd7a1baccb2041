package bip32

import (
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/pkg/errors"
)

// Network pairs the private and public version bytes of one chain with the
// chain parameters used to render addresses. The only values are MainNet
// and TestNet; their fields cannot be changed after package init.
type Network struct {
	name    string
	private [4]byte
	public  [4]byte
	params  *chaincfg.Params
}

var (
	// MainNet serializes as xprv/xpub.
	MainNet = &Network{
		name:    "mainnet",
		private: chaincfg.MainNetParams.HDPrivateKeyID,
		public:  chaincfg.MainNetParams.HDPublicKeyID,
		params:  &chaincfg.MainNetParams,
	}
	// TestNet serializes as tprv/tpub.
	TestNet = &Network{
		name:    "testnet",
		private: chaincfg.TestNet3Params.HDPrivateKeyID,
		public:  chaincfg.TestNet3Params.HDPublicKeyID,
		params:  &chaincfg.TestNet3Params,
	}

	networks = []*Network{MainNet, TestNet}
)

func (n *Network) Name() string             { return n.name }
func (n *Network) PrivateVersion() [4]byte  { return n.private }
func (n *Network) PublicVersion() [4]byte   { return n.public }
func (n *Network) Params() *chaincfg.Params { return n.params }

// NetworkByName resolves "mainnet" or "testnet".
func NetworkByName(name string) (*Network, error) {
	for _, n := range networks {
		if strings.EqualFold(n.name, name) {
			return n, nil
		}
	}
	return nil, errors.Errorf("unknown network %q", name)
}

// registered reports whether net is one of the package networks. Copies are
// rejected so that every key parses back to the same *Network.
func registered(net *Network) bool {
	for _, n := range networks {
		if n == net {
			return true
		}
	}
	return false
}

// lookupVersion returns the network owning version and whether it is the
// private variant.
func lookupVersion(version [4]byte) (*Network, bool, error) {
	for _, n := range networks {
		switch version {
		case n.private:
			return n, true, nil
		case n.public:
			return n, false, nil
		}
	}
	return nil, false, errors.Wrapf(ErrUnknownVersion, "%x", version)
}

func (n *Network) String() string { return n.name }
