package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "agenthub-backend/internal/errors"
	"agenthub-backend/internal/keys"
	"agenthub-backend/internal/mocks"
	"agenthub-backend/internal/models"
	"agenthub-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MarketStatsServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockStore    *mocks.MockStore
	mockProvider *mocks.MockMarketDataClient
	service      *service.MarketStatsService
	ctx          context.Context
	now          time.Time
}

func (suite *MarketStatsServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockStore = mocks.NewMockStore(suite.ctrl)
	suite.mockProvider = mocks.NewMockMarketDataClient(suite.ctrl)
	suite.service = service.NewMarketStatsService(suite.mockStore, suite.mockProvider, time.Hour)
	suite.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	suite.service.NowFunc = func() time.Time { return suite.now }
	suite.ctx = context.Background()
}

func (suite *MarketStatsServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MarketStatsServiceTestSuite) expectCached(stats models.MarketStats) {
	suite.mockStore.EXPECT().
		Get(suite.ctx, keys.MarketStats(stats.AreaCode), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ keys.Primary, out interface{}) error {
			*out.(*models.MarketStats) = stats
			return nil
		})
}

func (suite *MarketStatsServiceTestSuite) TestGetServesFreshSnapshotWithoutProviderCall() {
	suite.expectCached(models.MarketStats{
		AreaCode:       "SW1A",
		MedianPrice:    750000,
		ActiveListings: 42,
		FetchedAt:      suite.now.Add(-30 * time.Minute),
	})

	resp, err := suite.service.Get(suite.ctx, "user-1", "sw1a")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "SW1A", resp.AreaCode)
	assert.Equal(suite.T(), int64(750000), resp.MedianPrice)
}

func (suite *MarketStatsServiceTestSuite) TestGetRefreshesStaleSnapshot() {
	suite.expectCached(models.MarketStats{
		AreaCode:    "SW1A",
		MedianPrice: 700000,
		FetchedAt:   suite.now.Add(-2 * time.Hour),
	})
	suite.mockProvider.EXPECT().
		FetchStats(suite.ctx, "SW1A").
		Return(&models.MarketStats{MedianPrice: 760000, ActiveListings: 40}, nil)

	suite.mockStore.EXPECT().
		Put(suite.ctx, gomock.Any(), models.EntityTypeMarketStats, gomock.Any()).
		DoAndReturn(func(_ context.Context, key keys.Projected, _ string, item interface{}) error {
			stats := item.(*models.MarketStats)
			assert.Equal(suite.T(), "SW1A", stats.AreaCode)
			assert.Equal(suite.T(), suite.now, stats.FetchedAt)
			assert.Equal(suite.T(), "MARKET#SW1A", key.PK)
			return nil
		})

	resp, err := suite.service.Get(suite.ctx, "user-1", "SW1A")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(760000), resp.MedianPrice)
	assert.Equal(suite.T(), suite.now.Format(time.RFC3339), resp.FetchedAt)
}

func (suite *MarketStatsServiceTestSuite) TestGetFetchesWhenNotCached() {
	suite.mockStore.EXPECT().
		Get(suite.ctx, keys.MarketStats("SW1A"), gomock.Any()).
		Return(apperrors.ErrMarketStatsNotFound)
	suite.mockProvider.EXPECT().
		FetchStats(suite.ctx, "SW1A").
		Return(&models.MarketStats{MedianPrice: 760000}, nil)
	suite.mockStore.EXPECT().
		Put(suite.ctx, gomock.Any(), models.EntityTypeMarketStats, gomock.Any()).
		Return(nil)

	resp, err := suite.service.Get(suite.ctx, "user-1", "SW1A")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(760000), resp.MedianPrice)
}

func (suite *MarketStatsServiceTestSuite) TestGetServesStaleSnapshotOnProviderOutage() {
	suite.expectCached(models.MarketStats{
		AreaCode:    "SW1A",
		MedianPrice: 700000,
		FetchedAt:   suite.now.Add(-2 * time.Hour),
	})
	suite.mockProvider.EXPECT().
		FetchStats(suite.ctx, "SW1A").
		Return(nil, errors.New("provider timeout"))

	resp, err := suite.service.Get(suite.ctx, "user-1", "SW1A")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(700000), resp.MedianPrice)
}

func (suite *MarketStatsServiceTestSuite) TestGetFailsWhenProviderDownAndNothingCached() {
	suite.mockStore.EXPECT().
		Get(suite.ctx, keys.MarketStats("SW1A"), gomock.Any()).
		Return(apperrors.ErrMarketStatsNotFound)
	suite.mockProvider.EXPECT().
		FetchStats(suite.ctx, "SW1A").
		Return(nil, errors.New("provider timeout"))

	resp, err := suite.service.Get(suite.ctx, "user-1", "SW1A")

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
}

func (suite *MarketStatsServiceTestSuite) TestGetToleratesWriteBackFailure() {
	suite.mockStore.EXPECT().
		Get(suite.ctx, keys.MarketStats("SW1A"), gomock.Any()).
		Return(apperrors.ErrMarketStatsNotFound)
	suite.mockProvider.EXPECT().
		FetchStats(suite.ctx, "SW1A").
		Return(&models.MarketStats{MedianPrice: 760000}, nil)
	suite.mockStore.EXPECT().
		Put(suite.ctx, gomock.Any(), models.EntityTypeMarketStats, gomock.Any()).
		Return(errors.New("throttled"))

	resp, err := suite.service.Get(suite.ctx, "user-1", "SW1A")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(760000), resp.MedianPrice)
}

func (suite *MarketStatsServiceTestSuite) TestGetRequiresAreaCode() {
	resp, err := suite.service.Get(suite.ctx, "user-1", "   ")

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func TestMarketStatsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MarketStatsServiceTestSuite))
}
