package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"agenthub-backend/internal/auth"
	"agenthub-backend/internal/email"
	apperrors "agenthub-backend/internal/errors"
	"agenthub-backend/internal/keys"
	"agenthub-backend/internal/mocks"
	"agenthub-backend/internal/models"
	"agenthub-backend/internal/repository"
	"agenthub-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InvitationServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockStore  *mocks.MockStore
	mockAuthz  *mocks.MockAuthorizer
	mockMailer *mocks.MockSender
	service    *service.InvitationService
	ctx        context.Context
	now        time.Time
}

func (suite *InvitationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockStore = mocks.NewMockStore(suite.ctrl)
	suite.mockAuthz = mocks.NewMockAuthorizer(suite.ctrl)
	suite.mockMailer = mocks.NewMockSender(suite.ctrl)
	suite.service = service.NewInvitationService(
		suite.mockStore, suite.mockAuthz, suite.mockMailer,
		validator.New(), "http://localhost:3000", 7*24*time.Hour)
	suite.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	suite.service.NowFunc = func() time.Time { return suite.now }
	suite.ctx = context.Background()
}

func (suite *InvitationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *InvitationServiceTestSuite) expectAdminInOrg(callerID, orgID string) {
	suite.mockAuthz.EXPECT().
		CheckAdminStatus(suite.ctx, callerID).
		Return(&auth.AdminStatus{IsAdmin: true, Role: "admin"}, nil)
	suite.mockStore.EXPECT().
		Get(suite.ctx, keys.UserProfile(callerID), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ keys.Primary, out interface{}) error {
			*out.(*models.UserProfile) = models.UserProfile{
				UserID: callerID, IsAdmin: true, OrganizationID: orgID,
			}
			return nil
		})
}

func (suite *InvitationServiceTestSuite) TestInviteCreatesPendingInvitation() {
	callerID := "admin-1"
	orgID := "org-1"
	suite.expectAdminInOrg(callerID, orgID)

	suite.mockStore.EXPECT().
		QueryIndex(suite.ctx, repository.IndexGSI2, "EMAIL#agent@example.com", "", gomock.Any()).
		Return(nil)

	var capturedKey keys.Projected
	var captured *models.Invitation
	suite.mockStore.EXPECT().
		Create(suite.ctx, gomock.Any(), models.EntityTypeInvitation, gomock.Any()).
		DoAndReturn(func(_ context.Context, key keys.Projected, _ string, item interface{}) error {
			capturedKey = key
			captured = item.(*models.Invitation)
			return nil
		})

	suite.mockStore.EXPECT().
		Get(suite.ctx, keys.Organization(orgID), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ keys.Primary, out interface{}) error {
			*out.(*models.Organization) = models.Organization{ID: orgID, Name: "Skyline Realty"}
			return nil
		})
	suite.mockStore.EXPECT().
		Get(suite.ctx, keys.UserProfile(callerID), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ keys.Primary, out interface{}) error {
			*out.(*models.UserProfile) = models.UserProfile{UserID: callerID, DisplayName: "Dana Admin"}
			return nil
		})

	var sentMail email.InvitationEmail
	suite.mockMailer.EXPECT().
		SendInvitationEmail(gomock.Any()).
		DoAndReturn(func(invite email.InvitationEmail) error {
			sentMail = invite
			return nil
		})

	resp, err := suite.service.Invite(suite.ctx, callerID, &service.InviteTeamMemberRequest{
		Email: "Agent@Example.com",
		Role:  "member",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "agent@example.com", resp.Email)
	assert.Equal(suite.T(), string(models.InvitationPending), resp.Status)
	assert.Equal(suite.T(), suite.now.Add(7*24*time.Hour).Format(time.RFC3339), resp.ExpiresAt)

	require.NotNil(suite.T(), captured)
	assert.Len(suite.T(), captured.Token, 64)
	assert.Equal(suite.T(), "EMAIL#agent@example.com", capturedKey.GSI2PK)
	assert.Equal(suite.T(), "ORG#org-1", capturedKey.PK)

	assert.Equal(suite.T(), "agent@example.com", sentMail.To)
	assert.Equal(suite.T(), "Dana Admin", sentMail.InviterName)
	assert.Equal(suite.T(), "Skyline Realty", sentMail.OrganizationName)
	assert.Contains(suite.T(), sentMail.InvitationLink, captured.Token)
}

func (suite *InvitationServiceTestSuite) TestInviteRejectsDuplicatePending() {
	callerID := "admin-1"
	orgID := "org-1"
	suite.expectAdminInOrg(callerID, orgID)

	suite.mockStore.EXPECT().
		QueryIndex(suite.ctx, repository.IndexGSI2, "EMAIL#agent@example.com", "", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _ string, out interface{}) error {
			*out.(*[]models.Invitation) = []models.Invitation{{
				ID:             "inv-1",
				OrganizationID: orgID,
				Email:          "agent@example.com",
				Status:         models.InvitationPending,
				ExpiresAt:      suite.now.Add(time.Hour),
			}}
			return nil
		})

	resp, err := suite.service.Invite(suite.ctx, callerID, &service.InviteTeamMemberRequest{
		Email: "agent@example.com",
		Role:  "member",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPendingInvitationExists)
}

func (suite *InvitationServiceTestSuite) TestInviteIgnoresExpiredPending() {
	callerID := "admin-1"
	orgID := "org-1"
	suite.expectAdminInOrg(callerID, orgID)

	suite.mockStore.EXPECT().
		QueryIndex(suite.ctx, repository.IndexGSI2, "EMAIL#agent@example.com", "", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _ string, out interface{}) error {
			*out.(*[]models.Invitation) = []models.Invitation{{
				ID:             "inv-old",
				OrganizationID: orgID,
				Email:          "agent@example.com",
				Status:         models.InvitationPending,
				ExpiresAt:      suite.now.Add(-time.Hour),
			}}
			return nil
		})
	suite.mockStore.EXPECT().
		Create(suite.ctx, gomock.Any(), models.EntityTypeInvitation, gomock.Any()).
		Return(nil)
	suite.mockStore.EXPECT().
		Get(suite.ctx, keys.Organization(orgID), gomock.Any()).
		Return(apperrors.ErrOrganizationNotFound)
	suite.mockStore.EXPECT().
		Get(suite.ctx, keys.UserProfile(callerID), gomock.Any()).
		Return(apperrors.ErrProfileNotFound)
	suite.mockMailer.EXPECT().SendInvitationEmail(gomock.Any()).Return(nil)

	resp, err := suite.service.Invite(suite.ctx, callerID, &service.InviteTeamMemberRequest{
		Email: "agent@example.com",
		Role:  "member",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), string(models.InvitationPending), resp.Status)
}

func (suite *InvitationServiceTestSuite) TestInviteIgnoresPendingInOtherOrganization() {
	callerID := "admin-1"
	suite.expectAdminInOrg(callerID, "org-1")

	suite.mockStore.EXPECT().
		QueryIndex(suite.ctx, repository.IndexGSI2, "EMAIL#agent@example.com", "", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _ string, out interface{}) error {
			*out.(*[]models.Invitation) = []models.Invitation{{
				ID:             "inv-other",
				OrganizationID: "org-other",
				Email:          "agent@example.com",
				Status:         models.InvitationPending,
				ExpiresAt:      suite.now.Add(time.Hour),
			}}
			return nil
		})
	suite.mockStore.EXPECT().
		Create(suite.ctx, gomock.Any(), models.EntityTypeInvitation, gomock.Any()).
		Return(nil)
	suite.mockStore.EXPECT().
		Get(suite.ctx, keys.Organization("org-1"), gomock.Any()).
		Return(apperrors.ErrOrganizationNotFound)
	suite.mockStore.EXPECT().
		Get(suite.ctx, keys.UserProfile(callerID), gomock.Any()).
		Return(apperrors.ErrProfileNotFound)
	suite.mockMailer.EXPECT().SendInvitationEmail(gomock.Any()).Return(nil)

	_, err := suite.service.Invite(suite.ctx, callerID, &service.InviteTeamMemberRequest{
		Email: "agent@example.com",
		Role:  "admin",
	})

	assert.NoError(suite.T(), err)
}

func (suite *InvitationServiceTestSuite) TestInviteSucceedsWhenEmailDeliveryFails() {
	callerID := "admin-1"
	orgID := "org-1"
	suite.expectAdminInOrg(callerID, orgID)

	suite.mockStore.EXPECT().
		QueryIndex(suite.ctx, repository.IndexGSI2, "EMAIL#agent@example.com", "", gomock.Any()).
		Return(nil)
	suite.mockStore.EXPECT().
		Create(suite.ctx, gomock.Any(), models.EntityTypeInvitation, gomock.Any()).
		Return(nil)
	suite.mockStore.EXPECT().
		Get(suite.ctx, keys.Organization(orgID), gomock.Any()).
		Return(apperrors.ErrOrganizationNotFound)
	suite.mockStore.EXPECT().
		Get(suite.ctx, keys.UserProfile(callerID), gomock.Any()).
		Return(apperrors.ErrProfileNotFound)
	suite.mockMailer.EXPECT().
		SendInvitationEmail(gomock.Any()).
		Return(errors.New("smtp relay down"))

	resp, err := suite.service.Invite(suite.ctx, callerID, &service.InviteTeamMemberRequest{
		Email: "agent@example.com",
		Role:  "member",
	})

	require.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
}

func (suite *InvitationServiceTestSuite) TestInviteRejectsNonAdmin() {
	suite.mockAuthz.EXPECT().
		CheckAdminStatus(suite.ctx, "member-1").
		Return(&auth.AdminStatus{IsAdmin: false, Role: "member"}, nil)

	resp, err := suite.service.Invite(suite.ctx, "member-1", &service.InviteTeamMemberRequest{
		Email: "agent@example.com",
		Role:  "member",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotAuthorized)
}

func (suite *InvitationServiceTestSuite) TestInviteRejectsOwnerRole() {
	resp, err := suite.service.Invite(suite.ctx, "admin-1", &service.InviteTeamMemberRequest{
		Email: "agent@example.com",
		Role:  "owner",
	})

	assert.Nil(suite.T(), resp)
	var validationErrors validator.ValidationErrors
	assert.ErrorAs(suite.T(), err, &validationErrors)
}

func (suite *InvitationServiceTestSuite) TestListPendingFiltersExpiredAndNonPending() {
	callerID := "admin-1"
	orgID := "org-1"
	suite.expectAdminInOrg(callerID, orgID)

	suite.mockStore.EXPECT().
		QueryIndex(suite.ctx, repository.IndexGSI1, "ORG#org-1", "INVITE#", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _ string, out interface{}) error {
			*out.(*[]models.Invitation) = []models.Invitation{
				{ID: "inv-live", Status: models.InvitationPending, ExpiresAt: suite.now.Add(time.Hour)},
				{ID: "inv-expired", Status: models.InvitationPending, ExpiresAt: suite.now.Add(-time.Hour)},
				{ID: "inv-cancelled", Status: models.InvitationCancelled, ExpiresAt: suite.now.Add(time.Hour)},
				{ID: "inv-accepted", Status: models.InvitationAccepted, ExpiresAt: suite.now.Add(time.Hour)},
			}
			return nil
		})

	resp, err := suite.service.ListPending(suite.ctx, callerID)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), resp, 1)
	assert.Equal(suite.T(), "inv-live", resp[0].ID)
}

func (suite *InvitationServiceTestSuite) expectInvitation(orgID, invitationID string, invitation models.Invitation) {
	key := keys.Primary{PK: keys.OrgPrefix + orgID, SK: keys.InvitePrefix + invitationID}
	suite.mockStore.EXPECT().
		Get(suite.ctx, key, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ keys.Primary, out interface{}) error {
			*out.(*models.Invitation) = invitation
			return nil
		})
}

func (suite *InvitationServiceTestSuite) TestCancelMarksPendingCancelled() {
	callerID := "admin-1"
	orgID := "org-1"
	suite.expectAdminInOrg(callerID, orgID)
	suite.expectInvitation(orgID, "inv-1", models.Invitation{
		ID: "inv-1", OrganizationID: orgID, Status: models.InvitationPending,
	})

	key := keys.Primary{PK: "ORG#org-1", SK: "INVITE#inv-1"}
	suite.mockStore.EXPECT().
		Update(suite.ctx, key, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ keys.Primary, fields map[string]interface{}) error {
			assert.Equal(suite.T(), models.InvitationCancelled, fields["Status"])
			return nil
		})

	err := suite.service.Cancel(suite.ctx, callerID, "inv-1")

	assert.NoError(suite.T(), err)
}

func (suite *InvitationServiceTestSuite) TestCancelIsIdempotentForCancelled() {
	callerID := "admin-1"
	orgID := "org-1"
	suite.expectAdminInOrg(callerID, orgID)
	suite.expectInvitation(orgID, "inv-1", models.Invitation{
		ID: "inv-1", OrganizationID: orgID, Status: models.InvitationCancelled,
	})

	err := suite.service.Cancel(suite.ctx, callerID, "inv-1")

	assert.NoError(suite.T(), err)
}

func (suite *InvitationServiceTestSuite) TestCancelRejectsAcceptedInvitation() {
	callerID := "admin-1"
	orgID := "org-1"
	suite.expectAdminInOrg(callerID, orgID)
	suite.expectInvitation(orgID, "inv-1", models.Invitation{
		ID: "inv-1", OrganizationID: orgID, Status: models.InvitationAccepted,
	})

	err := suite.service.Cancel(suite.ctx, callerID, "inv-1")

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationAlreadyUsed)
}

const testToken = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func (suite *InvitationServiceTestSuite) pendingInvitation(orgID string) models.Invitation {
	return models.Invitation{
		ID:             "inv-1",
		OrganizationID: orgID,
		Email:          "agent@example.com",
		Role:           models.RoleMember,
		Status:         models.InvitationPending,
		Token:          testToken,
		ExpiresAt:      suite.now.Add(time.Hour),
		CreatedAt:      suite.now.Add(-time.Hour),
	}
}

func (suite *InvitationServiceTestSuite) acceptRequest() *service.AcceptInvitationRequest {
	return &service.AcceptInvitationRequest{
		OrganizationID: "org-1",
		InvitationID:   "inv-1",
		Token:          testToken,
	}
}

func (suite *InvitationServiceTestSuite) TestAcceptJoinsOrganizationAtomically() {
	callerID := "invitee-1"
	suite.expectInvitation("org-1", "inv-1", suite.pendingInvitation("org-1"))
	suite.mockStore.EXPECT().
		Get(suite.ctx, keys.UserProfile(callerID), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ keys.Primary, out interface{}) error {
			*out.(*models.UserProfile) = models.UserProfile{UserID: callerID}
			return nil
		})

	var captured []repository.TransactOp
	suite.mockStore.EXPECT().
		TransactWrite(suite.ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ops ...repository.TransactOp) error {
			captured = ops
			return nil
		})

	resp, err := suite.service.Accept(suite.ctx, callerID, suite.acceptRequest())

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), string(models.InvitationAccepted), resp.Status)

	require.Len(suite.T(), captured, 3)
	assert.True(suite.T(), captured[0].IsUpdate())
	assert.Equal(suite.T(), models.InvitationAccepted, captured[0].Fields()["Status"])

	assert.True(suite.T(), captured[1].IsCreate())
	member, ok := captured[1].Item().(*models.TeamMember)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), callerID, member.UserID)
	assert.Equal(suite.T(), models.RoleMember, member.Role)
	assert.Equal(suite.T(), models.MemberStatusActive, member.Status)

	assert.True(suite.T(), captured[2].IsUpdate())
	assert.Equal(suite.T(), keys.UserProfile(callerID), captured[2].Key())
	assert.Equal(suite.T(), "org-1", captured[2].Fields()["OrganizationID"])
}

func (suite *InvitationServiceTestSuite) TestAcceptRejectsTokenMismatch() {
	suite.expectInvitation("org-1", "inv-1", suite.pendingInvitation("org-1"))

	req := suite.acceptRequest()
	req.Token = "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"
	resp, err := suite.service.Accept(suite.ctx, "invitee-1", req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationNotFound)
}

func (suite *InvitationServiceTestSuite) TestAcceptRejectsExpiredInvitation() {
	invitation := suite.pendingInvitation("org-1")
	invitation.ExpiresAt = suite.now.Add(-time.Minute)
	suite.expectInvitation("org-1", "inv-1", invitation)

	resp, err := suite.service.Accept(suite.ctx, "invitee-1", suite.acceptRequest())

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationExpired)
}

func (suite *InvitationServiceTestSuite) TestAcceptRejectsCancelledInvitation() {
	invitation := suite.pendingInvitation("org-1")
	invitation.Status = models.InvitationCancelled
	suite.expectInvitation("org-1", "inv-1", invitation)

	resp, err := suite.service.Accept(suite.ctx, "invitee-1", suite.acceptRequest())

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationNotFound)
}

func (suite *InvitationServiceTestSuite) TestAcceptRejectsUsedInvitation() {
	invitation := suite.pendingInvitation("org-1")
	invitation.Status = models.InvitationAccepted
	suite.expectInvitation("org-1", "inv-1", invitation)

	resp, err := suite.service.Accept(suite.ctx, "invitee-1", suite.acceptRequest())

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationAlreadyUsed)
}

func (suite *InvitationServiceTestSuite) TestAcceptRejectsCallerAlreadyInOrganization() {
	callerID := "invitee-1"
	suite.expectInvitation("org-1", "inv-1", suite.pendingInvitation("org-1"))
	suite.mockStore.EXPECT().
		Get(suite.ctx, keys.UserProfile(callerID), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ keys.Primary, out interface{}) error {
			*out.(*models.UserProfile) = models.UserProfile{UserID: callerID, OrganizationID: "org-other"}
			return nil
		})

	resp, err := suite.service.Accept(suite.ctx, callerID, suite.acceptRequest())

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadyInOrganization)
}

func (suite *InvitationServiceTestSuite) TestAcceptMapsMembershipConflict() {
	callerID := "invitee-1"
	suite.expectInvitation("org-1", "inv-1", suite.pendingInvitation("org-1"))
	suite.mockStore.EXPECT().
		Get(suite.ctx, keys.UserProfile(callerID), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ keys.Primary, out interface{}) error {
			*out.(*models.UserProfile) = models.UserProfile{UserID: callerID}
			return nil
		})
	suite.mockStore.EXPECT().
		TransactWrite(suite.ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(apperrors.ErrItemExists)

	resp, err := suite.service.Accept(suite.ctx, callerID, suite.acceptRequest())

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMemberExists)
}

func TestInvitationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvitationServiceTestSuite))
}
