// Package service orchestrates provider fetches and metrics assembly for
// wrapped snapshot requests.
package service

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/wallet-wrapped/internal/logging"
	"github.com/wallet-wrapped/internal/metrics"
	"github.com/wallet-wrapped/internal/models"
	"github.com/wallet-wrapped/internal/types"
)

// Provider interfaces for dependency injection

// WalletDataProvider supplies the wallet-level inputs the metrics core
// consumes.
type WalletDataProvider interface {
	GetWalletProfitability(ctx context.Context, address string, chain types.ChainID) ([]models.TokenTradeRecord, error)
	GetWalletTokenBalances(ctx context.Context, address string, chain types.ChainID) ([]models.TokenHolding, error)
	GetWalletStats(ctx context.Context, address string, chain types.ChainID) (*models.WalletStats, error)
	GetProfitabilitySummary(ctx context.Context, address string, chain types.ChainID) (*models.TradeSummary, error)
	GetWalletChains(ctx context.Context, address string, chains []types.ChainID) (*models.ChainActivity, error)
	GetNetWorth(ctx context.Context, address string, chains []types.ChainID) (*models.NetWorth, error)
}

// IdentityProvider resolves a Farcaster ID to a wallet address.
type IdentityProvider interface {
	ResolveWallet(ctx context.Context, fid int64) (string, error)
}

// NFTProvider looks up the wallet's identity NFT.
type NFTProvider interface {
	GetWarpletNFT(ctx context.Context, owner string) (*models.WalletNFT, error)
}

// SnapshotCache caches computed snapshots per wallet per chain.
type SnapshotCache interface {
	Get(ctx context.Context, address string, chain types.ChainID) (*models.MetricsSnapshot, error)
	Set(ctx context.Context, address string, chain types.ChainID, snapshot *models.MetricsSnapshot) error
}

// WrappedService produces wrapped metrics snapshots for wallets.
type WrappedService struct {
	data     WalletDataProvider
	identity IdentityProvider
	nft      NFTProvider
	cache    SnapshotCache
	logger   *logging.Logger
}

// NewWrappedService creates a wrapped service. The NFT provider and the
// cache may be nil; both are optional collaborators.
func NewWrappedService(
	data WalletDataProvider,
	identity IdentityProvider,
	nft NFTProvider,
	cache SnapshotCache,
	logger *logging.Logger,
) *WrappedService {
	return &WrappedService{
		data:     data,
		identity: identity,
		nft:      nft,
		cache:    cache,
		logger:   logger,
	}
}

// GetWrapped returns the metrics snapshot for a wallet on a chain,
// computing and caching it on a miss.
//
// Trade records and holdings are required inputs: if either fetch fails
// the request fails. Every other source is optional; a failure there is
// logged and the snapshot is assembled without it.
func (s *WrappedService) GetWrapped(ctx context.Context, address string, chain types.ChainID) (*models.MetricsSnapshot, error) {
	address = strings.ToLower(address)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, address, chain)
		if err != nil {
			s.logger.WithError(err).Warn("snapshot cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	in, err := s.fetchInputs(ctx, address, chain)
	if err != nil {
		return nil, err
	}

	snapshot := metrics.Assemble(*in)

	if s.cache != nil {
		if err := s.cache.Set(ctx, address, chain, snapshot); err != nil {
			s.logger.WithError(err).Warn("snapshot cache write failed")
		}
	}

	return snapshot, nil
}

// GetWrappedByFID resolves a Farcaster ID to a wallet address and returns
// that wallet's snapshot.
func (s *WrappedService) GetWrappedByFID(ctx context.Context, fid int64, chain types.ChainID) (*models.MetricsSnapshot, string, error) {
	address, err := s.identity.ResolveWallet(ctx, fid)
	if err != nil {
		return nil, "", err
	}

	snapshot, err := s.GetWrapped(ctx, address, chain)
	if err != nil {
		return nil, "", err
	}
	return snapshot, strings.ToLower(address), nil
}

// fetchInputs resolves all provider inputs concurrently. Each goroutine
// writes a distinct field, so no locking is needed; optional fetch
// errors are swallowed after logging, leaving the field nil.
func (s *WrappedService) fetchInputs(ctx context.Context, address string, chain types.ChainID) (*metrics.Inputs, error) {
	in := &metrics.Inputs{}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		records, err := s.data.GetWalletProfitability(ctx, address, chain)
		if err != nil {
			return err
		}
		in.TradeRecords = records
		return nil
	})

	g.Go(func() error {
		holdings, err := s.data.GetWalletTokenBalances(ctx, address, chain)
		if err != nil {
			return err
		}
		in.Holdings = holdings
		return nil
	})

	g.Go(func() error {
		stats, err := s.data.GetWalletStats(ctx, address, chain)
		if err != nil {
			s.optional(err, "wallet stats")
			return nil
		}
		in.Stats = stats
		return nil
	})

	g.Go(func() error {
		summary, err := s.data.GetProfitabilitySummary(ctx, address, chain)
		if err != nil {
			s.optional(err, "profitability summary")
			return nil
		}
		in.Summary = summary
		return nil
	})

	g.Go(func() error {
		chains, err := s.data.GetWalletChains(ctx, address, types.SupportedChains)
		if err != nil {
			s.optional(err, "chain activity")
			return nil
		}
		in.Chains = chains
		return nil
	})

	g.Go(func() error {
		netWorth, err := s.data.GetNetWorth(ctx, address, []types.ChainID{chain})
		if err != nil {
			s.optional(err, "net worth")
			return nil
		}
		in.NetWorth = netWorth
		return nil
	})

	if s.nft != nil {
		g.Go(func() error {
			nft, err := s.nft.GetWarpletNFT(ctx, address)
			if err != nil {
				s.optional(err, "wallet nft")
				return nil
			}
			in.NFT = nft
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return in, nil
}

func (s *WrappedService) optional(err error, source string) {
	s.logger.WithError(err).WithField("source", source).Warn("optional input unavailable")
}
