package service_test

import (
	"context"
	"testing"
	"time"

	apperrors "agenthub-backend/internal/errors"
	"agenthub-backend/internal/keys"
	"agenthub-backend/internal/mocks"
	"agenthub-backend/internal/models"
	"agenthub-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OpenHouseServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockStore *mocks.MockStore
	service   *service.OpenHouseService
	ctx       context.Context
}

func (suite *OpenHouseServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockStore = mocks.NewMockStore(suite.ctrl)
	suite.service = service.NewOpenHouseService(suite.mockStore, validator.New())
	suite.ctx = context.Background()
}

func (suite *OpenHouseServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OpenHouseServiceTestSuite) expectCallerInOrg(callerID, orgID string) {
	suite.mockStore.EXPECT().
		Get(suite.ctx, keys.UserProfile(callerID), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ keys.Primary, out interface{}) error {
			*out.(*models.UserProfile) = models.UserProfile{UserID: callerID, OrganizationID: orgID}
			return nil
		})
}

func (suite *OpenHouseServiceTestSuite) expectSession(orgID, sessionID string, session models.OpenHouseSession) {
	suite.mockStore.EXPECT().
		Get(suite.ctx, keys.OpenHouse(orgID, sessionID), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ keys.Primary, out interface{}) error {
			*out.(*models.OpenHouseSession) = session
			return nil
		})
}

func (suite *OpenHouseServiceTestSuite) TestStartCreatesRunningSession() {
	callerID := "agent-1"
	suite.expectCallerInOrg(callerID, "org-1")

	suite.mockStore.EXPECT().
		Create(suite.ctx, gomock.Any(), models.EntityTypeOpenHouseSession, gomock.Any()).
		DoAndReturn(func(_ context.Context, key keys.Projected, _ string, item interface{}) error {
			session := item.(*models.OpenHouseSession)
			assert.Equal(suite.T(), "org-1", session.OrganizationID)
			assert.Equal(suite.T(), callerID, session.AgentID)
			assert.Nil(suite.T(), session.EndedAt)
			assert.Equal(suite.T(), "ORG#org-1", key.PK)
			return nil
		})

	resp, err := suite.service.Start(suite.ctx, callerID, &service.StartOpenHouseRequest{
		PropertyAddress: "12 Harbour View Road",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "12 Harbour View Road", resp.PropertyAddress)
	assert.Empty(suite.T(), resp.EndedAt)
}

func (suite *OpenHouseServiceTestSuite) TestStartRequiresOrganization() {
	suite.mockStore.EXPECT().
		Get(suite.ctx, keys.UserProfile("agent-1"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ keys.Primary, out interface{}) error {
			*out.(*models.UserProfile) = models.UserProfile{UserID: "agent-1"}
			return nil
		})

	resp, err := suite.service.Start(suite.ctx, "agent-1", &service.StartOpenHouseRequest{
		PropertyAddress: "12 Harbour View Road",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNoOrganization)
}

func (suite *OpenHouseServiceTestSuite) TestUpdateAppliesVisitorCountAndNotes() {
	callerID := "agent-1"
	suite.expectCallerInOrg(callerID, "org-1")
	suite.expectSession("org-1", "sess-1", models.OpenHouseSession{
		ID: "sess-1", OrganizationID: "org-1", AgentID: callerID, PropertyAddress: "12 Harbour View Road",
	})

	suite.mockStore.EXPECT().
		Update(suite.ctx, keys.OpenHouse("org-1", "sess-1"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ keys.Primary, fields map[string]interface{}) error {
			assert.Equal(suite.T(), 9, fields["VisitorCount"])
			assert.Equal(suite.T(), "busy afternoon", fields["Notes"])
			return nil
		})

	visitors := 9
	resp, err := suite.service.Update(suite.ctx, callerID, "sess-1", &service.UpdateOpenHouseRequest{
		VisitorCount: &visitors,
		Notes:        "busy afternoon",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 9, resp.VisitorCount)
	assert.Equal(suite.T(), "busy afternoon", resp.Notes)
}

func (suite *OpenHouseServiceTestSuite) TestUpdateRejectsEndedSession() {
	callerID := "agent-1"
	ended := time.Date(2025, 6, 1, 17, 0, 0, 0, time.UTC)
	suite.expectCallerInOrg(callerID, "org-1")
	suite.expectSession("org-1", "sess-1", models.OpenHouseSession{
		ID: "sess-1", OrganizationID: "org-1", EndedAt: &ended,
	})

	resp, err := suite.service.Update(suite.ctx, callerID, "sess-1", &service.UpdateOpenHouseRequest{Notes: "late note"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOpenHouseEnded)
}

func (suite *OpenHouseServiceTestSuite) TestEndStampsEndedAt() {
	callerID := "agent-1"
	suite.expectCallerInOrg(callerID, "org-1")
	suite.expectSession("org-1", "sess-1", models.OpenHouseSession{
		ID: "sess-1", OrganizationID: "org-1",
	})

	suite.mockStore.EXPECT().
		Update(suite.ctx, keys.OpenHouse("org-1", "sess-1"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ keys.Primary, fields map[string]interface{}) error {
			assert.NotNil(suite.T(), fields["EndedAt"])
			return nil
		})

	resp, err := suite.service.End(suite.ctx, callerID, "sess-1")

	require.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), resp.EndedAt)
}

func (suite *OpenHouseServiceTestSuite) TestEndIsIdempotent() {
	callerID := "agent-1"
	ended := time.Date(2025, 6, 1, 17, 0, 0, 0, time.UTC)
	suite.expectCallerInOrg(callerID, "org-1")
	suite.expectSession("org-1", "sess-1", models.OpenHouseSession{
		ID: "sess-1", OrganizationID: "org-1", EndedAt: &ended,
	})

	resp, err := suite.service.End(suite.ctx, callerID, "sess-1")

	require.NoError(suite.T(), err)
	// the original end time survives
	assert.Equal(suite.T(), ended.Format(time.RFC3339), resp.EndedAt)
}

func (suite *OpenHouseServiceTestSuite) TestListReturnsOrganizationSessions() {
	callerID := "agent-1"
	suite.expectCallerInOrg(callerID, "org-1")
	suite.mockStore.EXPECT().
		Query(suite.ctx, "ORG#org-1", "OPENHOUSE#", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, out interface{}) error {
			*out.(*[]models.OpenHouseSession) = []models.OpenHouseSession{
				{ID: "sess-1", OrganizationID: "org-1"},
				{ID: "sess-2", OrganizationID: "org-1"},
			}
			return nil
		})

	resp, err := suite.service.List(suite.ctx, callerID)

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
}

func TestOpenHouseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OpenHouseServiceTestSuite))
}
