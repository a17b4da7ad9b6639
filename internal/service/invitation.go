package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/url"
	"time"

	"agenthub-backend/internal/auth"
	"agenthub-backend/internal/email"
	apperrors "agenthub-backend/internal/errors"
	"agenthub-backend/internal/keys"
	"agenthub-backend/internal/logger"
	"agenthub-backend/internal/models"
	"agenthub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// InvitationService handles the invitation lifecycle: pending → accepted or
// cancelled, with expiry derived from ExpiresAt at read time and never
// written back.
type InvitationService struct {
	store     repository.Store
	authz     auth.Authorizer
	mailer    email.Sender
	validator *validator.Validate
	baseURL   string
	inviteTTL time.Duration

	// NowFunc supplies the current time; replaced in tests.
	NowFunc func() time.Time
}

// NewInvitationService creates a new invitation service
func NewInvitationService(store repository.Store, authz auth.Authorizer, mailer email.Sender, validator *validator.Validate, baseURL string, inviteTTL time.Duration) *InvitationService {
	return &InvitationService{
		store:     store,
		authz:     authz,
		mailer:    mailer,
		validator: validator,
		baseURL:   baseURL,
		inviteTTL: inviteTTL,
		NowFunc:   time.Now,
	}
}

// InviteTeamMemberRequest represents the request to invite a team member
type InviteTeamMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=member admin"`
}

// AcceptInvitationRequest represents the redemption of an invitation link
type AcceptInvitationRequest struct {
	OrganizationID string `json:"organization_id" validate:"required"`
	InvitationID   string `json:"invitation_id" validate:"required"`
	Token          string `json:"token" validate:"required"`
}

// InvitationResponse represents the response for invitation operations
type InvitationResponse struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organization_id"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	Status         string `json:"status"`
	InvitedBy      string `json:"invited_by"`
	ExpiresAt      string `json:"expires_at"`
	CreatedAt      string `json:"created_at"`
}

// Invite creates a pending invitation and notifies the invitee by email.
// At most one pending, non-expired invitation may exist per email per
// organization; the guard holds for serialized calls only — two concurrent
// calls can both pass the query, which is a tolerated anomaly, not a
// correctness requirement. Email delivery is best-effort and never rolls
// back the invitation write: the link can still be shared manually.
func (s *InvitationService) Invite(ctx context.Context, callerID string, req *InviteTeamMemberRequest) (*InvitationResponse, error) {
	if callerID == "" {
		return nil, apperrors.ErrNotAuthenticated
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	orgID, err := s.requireAdminWithOrganization(ctx, callerID)
	if err != nil {
		return nil, err
	}

	now := s.NowFunc().UTC()
	normalized := keys.NormalizeEmail(req.Email)

	var existing []models.Invitation
	if err := s.store.QueryIndex(ctx, repository.IndexGSI2, keys.EmailPrefix+normalized, "", &existing); err != nil {
		return nil, fmt.Errorf("failed to check existing invitations: %w", err)
	}
	for i := range existing {
		if existing[i].OrganizationID != orgID {
			continue
		}
		if existing[i].Status == models.InvitationPending && !existing[i].IsExpired(now) {
			return nil, apperrors.ErrPendingInvitationExists
		}
	}

	token, err := newInvitationToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation token: %w", err)
	}
	invitation := &models.Invitation{
		ID:             uuid.NewString(),
		OrganizationID: orgID,
		Email:          normalized,
		Role:           models.MemberRole(req.Role),
		Status:         models.InvitationPending,
		InvitedBy:      callerID,
		Token:          token,
		ExpiresAt:      now.Add(s.inviteTTL),
		CreatedAt:      now,
	}

	key := keys.Invitation(orgID, invitation.ID, normalized, now)
	if err := s.store.Create(ctx, key, models.EntityTypeInvitation, invitation); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	s.notifyInvitee(ctx, callerID, orgID, invitation)

	return toInvitationResponse(invitation), nil
}

// ListPending returns the organization's pending, non-expired invitations.
// Expiry is computed against the current time; no write happens on this path,
// so callers around the expiry boundary may see different results for the
// same invitation.
func (s *InvitationService) ListPending(ctx context.Context, callerID string) ([]InvitationResponse, error) {
	if callerID == "" {
		return nil, apperrors.ErrNotAuthenticated
	}

	orgID, err := s.requireAdminWithOrganization(ctx, callerID)
	if err != nil {
		return nil, err
	}

	var invitations []models.Invitation
	if err := s.store.QueryIndex(ctx, repository.IndexGSI1, keys.OrgPrefix+orgID, keys.InvitePrefix, &invitations); err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}

	now := s.NowFunc().UTC()
	responses := make([]InvitationResponse, 0, len(invitations))
	for i := range invitations {
		if invitations[i].Status != models.InvitationPending || invitations[i].IsExpired(now) {
			continue
		}
		responses = append(responses, *toInvitationResponse(&invitations[i]))
	}
	return responses, nil
}

// Cancel marks a pending invitation cancelled. Cancelling an already
// cancelled invitation succeeds silently; cancelling an accepted one fails
// with a conflict. There is no way to reopen a cancelled invitation.
func (s *InvitationService) Cancel(ctx context.Context, callerID, invitationID string) error {
	if callerID == "" {
		return apperrors.ErrNotAuthenticated
	}
	if invitationID == "" {
		return apperrors.NewValidationError("invitation_id", "invitation id is required")
	}

	orgID, err := s.requireAdminWithOrganization(ctx, callerID)
	if err != nil {
		return err
	}

	key := keys.Primary{PK: keys.OrgPrefix + orgID, SK: keys.InvitePrefix + invitationID}
	var invitation models.Invitation
	if err := s.store.Get(ctx, key, &invitation); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.ErrInvitationNotFound
		}
		return fmt.Errorf("failed to load invitation: %w", err)
	}

	switch invitation.Status {
	case models.InvitationCancelled:
		return nil
	case models.InvitationAccepted:
		return apperrors.ErrInvitationAlreadyUsed
	}

	if err := s.store.Update(ctx, key, map[string]interface{}{
		"Status": models.InvitationCancelled,
	}); err != nil {
		return fmt.Errorf("failed to cancel invitation: %w", err)
	}
	return nil
}

// Accept redeems an invitation for the calling user: the invitation is
// marked accepted, the membership record is created and the caller's profile
// back-reference is set, all in one transactional batch.
func (s *InvitationService) Accept(ctx context.Context, callerID string, req *AcceptInvitationRequest) (*InvitationResponse, error) {
	if callerID == "" {
		return nil, apperrors.ErrNotAuthenticated
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	key := keys.Primary{PK: keys.OrgPrefix + req.OrganizationID, SK: keys.InvitePrefix + req.InvitationID}
	var invitation models.Invitation
	if err := s.store.Get(ctx, key, &invitation); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to load invitation: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(invitation.Token), []byte(req.Token)) != 1 {
		return nil, apperrors.ErrInvitationNotFound
	}
	switch invitation.Status {
	case models.InvitationAccepted:
		return nil, apperrors.ErrInvitationAlreadyUsed
	case models.InvitationCancelled:
		return nil, apperrors.ErrInvitationNotFound
	}
	now := s.NowFunc().UTC()
	if invitation.IsExpired(now) {
		return nil, apperrors.ErrInvitationExpired
	}

	var profile models.UserProfile
	if err := s.store.Get(ctx, keys.UserProfile(callerID), &profile); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load caller profile: %w", err)
	}
	if profile.OrganizationID != "" {
		return nil, apperrors.ErrAlreadyInOrganization
	}

	member := &models.TeamMember{
		UserID:         callerID,
		OrganizationID: invitation.OrganizationID,
		Role:           invitation.Role,
		Status:         models.MemberStatusActive,
		JoinedAt:       now,
		UpdatedAt:      now,
	}
	err := s.store.TransactWrite(ctx,
		repository.TransactUpdate(key, map[string]interface{}{
			"Status": models.InvitationAccepted,
		}),
		repository.TransactCreate(keys.TeamMember(invitation.OrganizationID, callerID), models.EntityTypeTeamMember, member),
		repository.TransactUpdate(keys.UserProfile(callerID), map[string]interface{}{
			"OrganizationID": invitation.OrganizationID,
			"UpdatedAt":      now,
		}),
	)
	if err != nil {
		if apperrors.IsConflict(err) {
			return nil, apperrors.ErrMemberExists
		}
		return nil, fmt.Errorf("failed to accept invitation: %w", err)
	}

	invitation.Status = models.InvitationAccepted
	return toInvitationResponse(&invitation), nil
}

// notifyInvitee sends the invitation email. Failures are logged, never
// propagated: the invitation already exists and can be redeemed via a
// manually shared link.
func (s *InvitationService) notifyInvitee(ctx context.Context, callerID, orgID string, invitation *models.Invitation) {
	log := logger.WithContext(ctx)

	orgName := "your organization"
	var org models.Organization
	if err := s.store.Get(ctx, keys.Organization(orgID), &org); err == nil && org.Name != "" {
		orgName = org.Name
	}

	inviterName := callerID
	var inviter models.UserProfile
	if err := s.store.Get(ctx, keys.UserProfile(callerID), &inviter); err == nil && inviter.DisplayName != "" {
		inviterName = inviter.DisplayName
	}

	link := fmt.Sprintf("%s/invitations/accept?org=%s&invite=%s&token=%s",
		s.baseURL,
		url.QueryEscape(orgID),
		url.QueryEscape(invitation.ID),
		url.QueryEscape(invitation.Token),
	)

	err := s.mailer.SendInvitationEmail(email.InvitationEmail{
		To:               invitation.Email,
		InviterName:      inviterName,
		OrganizationName: orgName,
		InvitationLink:   link,
		Role:             string(invitation.Role),
	})
	if err != nil {
		log.WithField("invitation_id", invitation.ID).WithError(err).Warn("failed to send invitation email")
	}
}

// requireAdminWithOrganization checks admin privilege and resolves the
// caller's organization id.
func (s *InvitationService) requireAdminWithOrganization(ctx context.Context, callerID string) (string, error) {
	status, err := s.authz.CheckAdminStatus(ctx, callerID)
	if err != nil {
		return "", fmt.Errorf("failed to check admin status: %w", err)
	}
	if !status.IsAdmin {
		return "", apperrors.ErrNotAuthorized
	}

	var profile models.UserProfile
	if err := s.store.Get(ctx, keys.UserProfile(callerID), &profile); err != nil {
		if apperrors.IsNotFound(err) {
			return "", apperrors.ErrNoOrganization
		}
		return "", fmt.Errorf("failed to load caller profile: %w", err)
	}
	if profile.OrganizationID == "" {
		return "", apperrors.ErrNoOrganization
	}
	return profile.OrganizationID, nil
}

// newInvitationToken generates the opaque redemption credential.
func newInvitationToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

// toInvitationResponse converts an invitation model to response
func toInvitationResponse(invitation *models.Invitation) *InvitationResponse {
	return &InvitationResponse{
		ID:             invitation.ID,
		OrganizationID: invitation.OrganizationID,
		Email:          invitation.Email,
		Role:           string(invitation.Role),
		Status:         string(invitation.Status),
		InvitedBy:      invitation.InvitedBy,
		ExpiresAt:      invitation.ExpiresAt.Format(time.RFC3339),
		CreatedAt:      invitation.CreatedAt.Format(time.RFC3339),
	}
}
