package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "agenthub-backend/internal/errors"
	"agenthub-backend/internal/keys"
	"agenthub-backend/internal/logger"
	"agenthub-backend/internal/models"
	"agenthub-backend/internal/repository"
)

// MarketStatsService serves market statistics through a read-through cache
// backed by the document store. Fresh snapshots are served from the store;
// stale ones trigger a provider refetch with write-back, falling back to the
// stale copy when the provider is down.
type MarketStatsService struct {
	store    repository.Store
	provider MarketDataClient
	ttl      time.Duration

	// NowFunc supplies the current time; replaced in tests.
	NowFunc func() time.Time
}

// NewMarketStatsService creates a new market stats service
func NewMarketStatsService(store repository.Store, provider MarketDataClient, ttl time.Duration) *MarketStatsService {
	return &MarketStatsService{
		store:    store,
		provider: provider,
		ttl:      ttl,
		NowFunc:  time.Now,
	}
}

// MarketStatsResponse represents the response for market stats operations
type MarketStatsResponse struct {
	AreaCode            string  `json:"area_code"`
	MedianPrice         int64   `json:"median_price"`
	AverageDaysOnMarket float64 `json:"average_days_on_market"`
	ActiveListings      int     `json:"active_listings"`
	FetchedAt           string  `json:"fetched_at"`
}

// Get returns statistics for an area, refreshing the cached snapshot when it
// is older than the configured TTL.
func (s *MarketStatsService) Get(ctx context.Context, callerID, areaCode string) (*MarketStatsResponse, error) {
	if callerID == "" {
		return nil, apperrors.ErrNotAuthenticated
	}
	areaCode = strings.ToUpper(strings.TrimSpace(areaCode))
	if areaCode == "" {
		return nil, apperrors.NewValidationError("area_code", "area code is required")
	}

	now := s.NowFunc().UTC()

	var cached models.MarketStats
	err := s.store.Get(ctx, keys.MarketStats(areaCode), &cached)
	switch {
	case err == nil && !cached.IsStale(now, s.ttl):
		return toMarketStatsResponse(&cached), nil
	case err != nil && !apperrors.IsNotFound(err):
		return nil, fmt.Errorf("failed to load cached market stats: %w", err)
	}
	haveCached := err == nil

	fresh, fetchErr := s.provider.FetchStats(ctx, areaCode)
	if fetchErr != nil {
		if haveCached {
			// Provider outage; a stale snapshot beats an error.
			logger.WithContext(ctx).WithField("area_code", areaCode).WithError(fetchErr).
				Warn("market data provider unavailable, serving stale snapshot")
			return toMarketStatsResponse(&cached), nil
		}
		return nil, fmt.Errorf("failed to fetch market stats: %w", fetchErr)
	}
	fresh.AreaCode = areaCode
	fresh.FetchedAt = now

	statsKey := keys.MarketStats(areaCode)
	err = s.store.Put(ctx, keys.Projected{PK: statsKey.PK, SK: statsKey.SK}, models.EntityTypeMarketStats, fresh)
	if err != nil {
		// Write-back is an optimization; the fetched data is still good.
		logger.WithContext(ctx).WithField("area_code", areaCode).WithError(err).
			Warn("failed to cache market stats")
	}
	return toMarketStatsResponse(fresh), nil
}

// toMarketStatsResponse converts a market stats model to response
func toMarketStatsResponse(stats *models.MarketStats) *MarketStatsResponse {
	return &MarketStatsResponse{
		AreaCode:            stats.AreaCode,
		MedianPrice:         stats.MedianPrice,
		AverageDaysOnMarket: stats.AverageDaysOnMarket,
		ActiveListings:      stats.ActiveListings,
		FetchedAt:           stats.FetchedAt.Format(time.RFC3339),
	}
}
