package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"agenthub-backend/internal/auth"
	apperrors "agenthub-backend/internal/errors"
	"agenthub-backend/internal/keys"
	"agenthub-backend/internal/models"
	"agenthub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// MemberService handles business logic for team membership records.
type MemberService struct {
	store     repository.Store
	authz     auth.Authorizer
	validator *validator.Validate
}

// NewMemberService creates a new member service
func NewMemberService(store repository.Store, authz auth.Authorizer, validator *validator.Validate) *MemberService {
	return &MemberService{
		store:     store,
		authz:     authz,
		validator: validator,
	}
}

// UpdateMemberRoleRequest represents the request to change a member's role
type UpdateMemberRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=member admin"`
}

// TeamMemberResponse represents a membership record enriched with profile data
type TeamMemberResponse struct {
	UserID         string `json:"user_id"`
	OrganizationID string `json:"organization_id"`
	Email          string `json:"email,omitempty"`
	DisplayName    string `json:"display_name,omitempty"`
	Role           string `json:"role"`
	Status         string `json:"status"`
	JoinedAt       string `json:"joined_at"`
}

// List returns an organization's members enriched with profile display data.
// Admin-gated. The target organization is organizationID when given, otherwise
// the caller's own. Profiles are fetched in one batch; members whose profile
// is missing still appear, with the display fields empty.
func (s *MemberService) List(ctx context.Context, callerID, organizationID string) ([]TeamMemberResponse, error) {
	if callerID == "" {
		return nil, apperrors.ErrNotAuthenticated
	}

	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	orgID := organizationID
	if orgID == "" {
		var err error
		orgID, err = s.resolveOrganizationID(ctx, callerID)
		if err != nil {
			return nil, err
		}
	}

	var members []models.TeamMember
	if err := s.store.Query(ctx, keys.OrgPrefix+orgID, keys.MemberPrefix, &members); err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	profileKeys := make([]keys.Primary, len(members))
	for i := range members {
		profileKeys[i] = keys.UserProfile(members[i].UserID)
	}
	var profiles []models.UserProfile
	if len(profileKeys) > 0 {
		if err := s.store.GetBatch(ctx, profileKeys, &profiles); err != nil {
			return nil, fmt.Errorf("failed to load member profiles: %w", err)
		}
	}
	profilesByID := make(map[string]*models.UserProfile, len(profiles))
	for i := range profiles {
		profilesByID[profiles[i].UserID] = &profiles[i]
	}

	responses := make([]TeamMemberResponse, len(members))
	for i := range members {
		resp := TeamMemberResponse{
			UserID:         members[i].UserID,
			OrganizationID: members[i].OrganizationID,
			Role:           string(members[i].Role),
			Status:         string(members[i].Status),
			JoinedAt:       members[i].JoinedAt.Format(time.RFC3339),
		}
		if profile, ok := profilesByID[members[i].UserID]; ok {
			resp.Email = profile.Email
			resp.DisplayName = profile.DisplayName
		}
		responses[i] = resp
	}
	sort.Slice(responses, func(i, j int) bool { return responses[i].JoinedAt < responses[j].JoinedAt })
	return responses, nil
}

// UpdateRole changes a member's role between member and admin. The owner
// record cannot be changed; ownership transfer does not exist.
func (s *MemberService) UpdateRole(ctx context.Context, callerID, userID string, req *UpdateMemberRoleRequest) (*TeamMemberResponse, error) {
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

	member, err := s.getMember(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	if member.Role == models.RoleOwner {
		return nil, apperrors.ErrOwnerImmutable
	}

	now := time.Now().UTC()
	memberKey := keys.TeamMember(orgID, userID)
	err = s.store.Update(ctx, keys.Primary{PK: memberKey.PK, SK: memberKey.SK}, map[string]interface{}{
		"Role":      models.MemberRole(req.Role),
		"UpdatedAt": now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update member role: %w", err)
	}

	member.Role = models.MemberRole(req.Role)
	member.UpdatedAt = now
	return &TeamMemberResponse{
		UserID:         member.UserID,
		OrganizationID: member.OrganizationID,
		Role:           string(member.Role),
		Status:         string(member.Status),
		JoinedAt:       member.JoinedAt.Format(time.RFC3339),
	}, nil
}

// Remove deletes a membership record and clears the removed user's profile
// back-reference in one transactional batch. The owner cannot be removed and
// admins cannot remove themselves.
func (s *MemberService) Remove(ctx context.Context, callerID, userID string) error {
	if callerID == "" {
		return apperrors.ErrNotAuthenticated
	}
	if userID == callerID {
		return apperrors.ErrSelfRemoval
	}

	orgID, err := s.requireAdminWithOrganization(ctx, callerID)
	if err != nil {
		return err
	}

	member, err := s.getMember(ctx, orgID, userID)
	if err != nil {
		return err
	}
	if member.Role == models.RoleOwner {
		return apperrors.ErrOwnerImmutable
	}

	memberKey := keys.TeamMember(orgID, userID)
	err = s.store.TransactWrite(ctx,
		repository.TransactDelete(keys.Primary{PK: memberKey.PK, SK: memberKey.SK}),
		repository.TransactUpdate(keys.UserProfile(userID), map[string]interface{}{
			"OrganizationID": nil,
			"UpdatedAt":      time.Now().UTC(),
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}

func (s *MemberService) getMember(ctx context.Context, orgID, userID string) (*models.TeamMember, error) {
	memberKey := keys.TeamMember(orgID, userID)
	var member models.TeamMember
	if err := s.store.Get(ctx, keys.Primary{PK: memberKey.PK, SK: memberKey.SK}, &member); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("failed to load member: %w", err)
	}
	return &member, nil
}

// requireAdmin checks the caller's admin privilege.
func (s *MemberService) requireAdmin(ctx context.Context, callerID string) error {
	status, err := s.authz.CheckAdminStatus(ctx, callerID)
	if err != nil {
		return fmt.Errorf("failed to check admin status: %w", err)
	}
	if !status.IsAdmin {
		return apperrors.ErrNotAuthorized
	}
	return nil
}

// requireAdminWithOrganization checks admin privilege and resolves the
// caller's organization id.
func (s *MemberService) requireAdminWithOrganization(ctx context.Context, callerID string) (string, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return "", err
	}
	return s.resolveOrganizationID(ctx, callerID)
}

// resolveOrganizationID reads the caller's organization back-reference.
func (s *MemberService) resolveOrganizationID(ctx context.Context, callerID string) (string, error) {
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
