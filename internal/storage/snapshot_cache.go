package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/wallet-wrapped/internal/models"
	"github.com/wallet-wrapped/internal/types"
)

// SnapshotCache stores computed metrics snapshots per wallet per chain.
// Freshness is a blunt TTL: snapshots are cheap to recompute and the
// upstream data itself is cached by the providers.
type SnapshotCache struct {
	cache *RedisCache
	ttl   time.Duration
}

// NewSnapshotCache creates a snapshot cache with the given TTL.
func NewSnapshotCache(cache *RedisCache, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{cache: cache, ttl: ttl}
}

func snapshotKey(address string, chain types.ChainID) string {
	return fmt.Sprintf("wrapped:%s:%s", strings.ToLower(address), chain)
}

// Get returns the cached snapshot for a wallet on a chain, or (nil, nil)
// on a miss.
func (s *SnapshotCache) Get(ctx context.Context, address string, chain types.ChainID) (*models.MetricsSnapshot, error) {
	raw, err := s.cache.Get(ctx, snapshotKey(address, chain))
	if err != nil {
		if IsMiss(err) {
			return nil, nil
		}
		return nil, err
	}

	var snapshot models.MetricsSnapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		// A corrupt entry is dropped and treated as a miss.
		_ = s.cache.Del(ctx, snapshotKey(address, chain))
		return nil, nil
	}
	return &snapshot, nil
}

// Set stores a snapshot for a wallet on a chain.
func (s *SnapshotCache) Set(ctx context.Context, address string, chain types.ChainID, snapshot *models.MetricsSnapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, snapshotKey(address, chain), raw, s.ttl)
}

// Invalidate drops the cached snapshot for a wallet on a chain.
func (s *SnapshotCache) Invalidate(ctx context.Context, address string, chain types.ChainID) error {
	return s.cache.Del(ctx, snapshotKey(address, chain))
}
