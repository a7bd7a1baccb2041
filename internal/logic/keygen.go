package logic

import (
	"context"
	"fmt"
	"strings"

	"github.com/b2network/b2-hdkey/internal/config"
	"github.com/b2network/b2-hdkey/internal/crypto/bip32"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultBatchWorkers bounds the goroutines used by Accounts.
	DefaultBatchWorkers = 8
	// MaxBatchSize bounds a single Accounts call.
	MaxBatchSize = 10_000
)

// KeygenService derives accounts below a single root key.
type KeygenService struct {
	cfg  *config.Config
	root *bip32.ExtendedKey
}

// NewKeygenService builds the master key for seed on the configured network.
func NewKeygenService(cfg *config.Config, seed []byte) (*KeygenService, error) {
	net, err := cfg.Net()
	if err != nil {
		return nil, err
	}
	master, err := bip32.NewMasterKey(seed, net)
	if err != nil {
		return nil, fmt.Errorf("[KeygenService] master key err: %w", err)
	}
	log.WithField("network", net).Debug("master key created")
	return &KeygenService{cfg: cfg, root: master}, nil
}

// NewKeygenServiceFromKey roots the service at an existing extended key,
// which may be public for watch-only use.
func NewKeygenServiceFromKey(cfg *config.Config, root *bip32.ExtendedKey) *KeygenService {
	return &KeygenService{cfg: cfg, root: root}
}

func (s *KeygenService) Root() *bip32.ExtendedKey {
	return s.root
}

// Account derives path from the root. An empty path uses the configured
// default.
func (s *KeygenService) Account(path string) (*Account, error) {
	if path == "" {
		path = s.cfg.DerivePath
	}
	key, err := s.root.DerivePathString(path)
	if err != nil {
		return nil, fmt.Errorf("[KeygenService] derive %s err: %w", path, err)
	}
	log.WithFields(log.Fields{
		"path":  path,
		"depth": key.Depth(),
		"index": key.ChildIndex(),
	}).Debug("derived account")
	return newAccount(path, key, s.cfg.Bech32Prefix)
}

// Accounts derives basePath once and then the count consecutive
// non-hardened children starting at start, in parallel. A base rooted at M
// yields public children.
func (s *KeygenService) Accounts(ctx context.Context, basePath string, start uint32, count int) ([]*Account, error) {
	if count < 0 || count > MaxBatchSize {
		return nil, fmt.Errorf("[KeygenService] batch size %d out of range", count)
	}
	if uint64(start)+uint64(count) > uint64(bip32.HardenedKeyStart) {
		return nil, fmt.Errorf("[KeygenService] batch end %d: %w", uint64(start)+uint64(count), bip32.ErrInvalidPathIndex)
	}
	prefix, public, err := bip32.ParsePathRoot(basePath)
	if err != nil {
		return nil, fmt.Errorf("[KeygenService] base path err: %w", err)
	}
	base, err := s.root.DerivePath(prefix)
	if err != nil {
		return nil, fmt.Errorf("[KeygenService] derive %s err: %w", basePath, err)
	}
	// an M root labels and returns public children, as Account does
	if public {
		base = base.Public()
	}

	accounts := make([]*Account, count)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultBatchWorkers)
	for i := 0; i < count; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			index := start + uint32(i)
			child, err := base.Child(index)
			if err != nil {
				return fmt.Errorf("[KeygenService] child %d err: %w", index, err)
			}
			path := append(append(bip32.Path{}, prefix...), bip32.PathElement{Index: index}).String()
			if public {
				path = "M" + strings.TrimPrefix(path, "m")
			}
			account, err := newAccount(path, child, s.cfg.Bech32Prefix)
			if err != nil {
				return err
			}
			accounts[i] = account
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"base": basePath, "start": start, "count": count}).Debug("derived account batch")
	return accounts, nil
}
