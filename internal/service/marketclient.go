package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"agenthub-backend/internal/models"
)

//go:generate mockgen -source=marketclient.go -destination=../mocks/marketclient_mocks.go -package=mocks

// MarketDataClient fetches current market statistics for an area from the
// external provider.
type MarketDataClient interface {
	FetchStats(ctx context.Context, areaCode string) (*models.MarketStats, error)
}

// HTTPMarketDataClient calls the market data provider's REST API.
type HTTPMarketDataClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPMarketDataClient creates a new market data client
func NewHTTPMarketDataClient(baseURL, apiKey string) *HTTPMarketDataClient {
	return &HTTPMarketDataClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type marketStatsPayload struct {
	AreaCode            string  `json:"area_code"`
	MedianPrice         int64   `json:"median_price"`
	AverageDaysOnMarket float64 `json:"average_days_on_market"`
	ActiveListings      int     `json:"active_listings"`
}

// FetchStats retrieves the provider's current snapshot for an area.
func (c *HTTPMarketDataClient) FetchStats(ctx context.Context, areaCode string) (*models.MarketStats, error) {
	reqURL := fmt.Sprintf("%s/v1/areas/%s/stats", c.baseURL, url.PathEscape(areaCode))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create market stats request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("market stats request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("market stats request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var payload marketStatsPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode market stats response: %w", err)
	}

	return &models.MarketStats{
		AreaCode:            payload.AreaCode,
		MedianPrice:         payload.MedianPrice,
		AverageDaysOnMarket: payload.AverageDaysOnMarket,
		ActiveListings:      payload.ActiveListings,
		FetchedAt:           time.Now().UTC(),
	}, nil
}
