package models

import "time"

// MarketStats is a cached snapshot of market statistics for an area. Reads
// past the configured TTL trigger a provider refetch and write-back; a stale
// copy is still served when the provider is unavailable.
type MarketStats struct {
	AreaCode            string    `json:"area_code" dynamodbav:"AreaCode"`
	MedianPrice         int64     `json:"median_price" dynamodbav:"MedianPrice"`
	AverageDaysOnMarket float64   `json:"average_days_on_market" dynamodbav:"AverageDaysOnMarket"`
	ActiveListings      int       `json:"active_listings" dynamodbav:"ActiveListings"`
	FetchedAt           time.Time `json:"fetched_at" dynamodbav:"FetchedAt"`
}

// IsStale reports whether the snapshot is older than ttl at the given instant.
func (m *MarketStats) IsStale(now time.Time, ttl time.Duration) bool {
	return now.Sub(m.FetchedAt) >= ttl
}

// EntityTypeMarketStats is the stored document type discriminator.
const EntityTypeMarketStats = "MarketStats"
