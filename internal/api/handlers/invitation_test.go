package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"agenthub-backend/internal/api/handlers"
	apperrors "agenthub-backend/internal/errors"
	"agenthub-backend/internal/mocks"
	"agenthub-backend/internal/service"
	"agenthub-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InvitationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockInvitationServiceInterface
	http        *testutils.HTTPTestSuite
}

func (suite *InvitationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockInvitationServiceInterface(suite.ctrl)
	suite.http = testutils.SetupHTTPTest()
	handler := handlers.NewInvitationHandler(suite.mockService)
	group := suite.http.Router.Group("/api/v1", authAs("admin-1", "admin@test.com"))
	group.POST("/invitations", handler.InviteTeamMember)
	group.GET("/invitations", handler.ListPendingInvitations)
	group.POST("/invitations/accept", handler.AcceptInvitation)
	group.DELETE("/invitations/:id", handler.CancelInvitation)
}

func (suite *InvitationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *InvitationHandlerTestSuite) TestInviteTeamMemberReturnsCreated() {
	suite.mockService.EXPECT().
		Invite(gomock.Any(), "admin-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req *service.InviteTeamMemberRequest) (*service.InvitationResponse, error) {
			assert.Equal(suite.T(), "agent@example.com", req.Email)
			assert.Equal(suite.T(), "member", req.Role)
			return &service.InvitationResponse{ID: "inv-1", Email: req.Email, Status: "pending"}, nil
		})

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/invitations", gin.H{
		"email": "agent@example.com",
		"role":  "member",
	})

	var resp service.InvitationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
	assert.Equal(suite.T(), "inv-1", resp.ID)
}

func (suite *InvitationHandlerTestSuite) TestInviteTeamMemberMapsDuplicatePending() {
	suite.mockService.EXPECT().
		Invite(gomock.Any(), "admin-1", gomock.Any()).
		Return(nil, apperrors.ErrPendingInvitationExists)

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/invitations", gin.H{
		"email": "agent@example.com",
		"role":  "member",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "")
}

func (suite *InvitationHandlerTestSuite) TestListPendingInvitations() {
	suite.mockService.EXPECT().
		ListPending(gomock.Any(), "admin-1").
		Return([]service.InvitationResponse{{ID: "inv-1", Status: "pending"}}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/invitations", nil)

	var resp []service.InvitationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Len(suite.T(), resp, 1)
}

func (suite *InvitationHandlerTestSuite) TestCancelInvitationReturnsNoContent() {
	suite.mockService.EXPECT().
		Cancel(gomock.Any(), "admin-1", "inv-1").
		Return(nil)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/api/v1/invitations/inv-1", nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *InvitationHandlerTestSuite) TestCancelInvitationMapsAlreadyUsed() {
	suite.mockService.EXPECT().
		Cancel(gomock.Any(), "admin-1", "inv-1").
		Return(apperrors.ErrInvitationAlreadyUsed)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/api/v1/invitations/inv-1", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "")
}

func (suite *InvitationHandlerTestSuite) TestAcceptInvitation() {
	suite.mockService.EXPECT().
		Accept(gomock.Any(), "admin-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req *service.AcceptInvitationRequest) (*service.InvitationResponse, error) {
			assert.Equal(suite.T(), "org-1", req.OrganizationID)
			assert.Equal(suite.T(), "inv-1", req.InvitationID)
			return &service.InvitationResponse{ID: req.InvitationID, Status: "accepted"}, nil
		})

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/invitations/accept", gin.H{
		"organization_id": "org-1",
		"invitation_id":   "inv-1",
		"token":           "deadbeef",
	})

	var resp service.InvitationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), "accepted", resp.Status)
}

func (suite *InvitationHandlerTestSuite) TestAcceptInvitationMapsExpired() {
	suite.mockService.EXPECT().
		Accept(gomock.Any(), "admin-1", gomock.Any()).
		Return(nil, apperrors.ErrInvitationExpired)

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/invitations/accept", gin.H{
		"organization_id": "org-1",
		"invitation_id":   "inv-1",
		"token":           "deadbeef",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "")
}

func (suite *InvitationHandlerTestSuite) TestAcceptInvitationMapsTokenMismatch() {
	suite.mockService.EXPECT().
		Accept(gomock.Any(), "admin-1", gomock.Any()).
		Return(nil, apperrors.ErrInvitationNotFound)

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/invitations/accept", gin.H{
		"organization_id": "org-1",
		"invitation_id":   "inv-1",
		"token":           "deadbeef",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "")
}

func TestInvitationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InvitationHandlerTestSuite))
}
