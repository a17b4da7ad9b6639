package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"agenthub-backend/internal/auth"
	apperrors "agenthub-backend/internal/errors"
	"agenthub-backend/internal/keys"
	"agenthub-backend/internal/models"
	"agenthub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	store     repository.Store
	authz     auth.Authorizer
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(store repository.Store, authz auth.Authorizer, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		store:     store,
		authz:     authz,
		validator: validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description,omitempty" validate:"max=1000"`
	Website     string `json:"website,omitempty" validate:"omitempty,url"`
}

// UpdateOrganizationSettingsRequest represents the request to update
// organization settings. The settings object is replaced as a whole.
type UpdateOrganizationSettingsRequest struct {
	Name               string `json:"name" validate:"required,min=1,max=100"`
	Description        string `json:"description,omitempty" validate:"max=1000"`
	Website            string `json:"website,omitempty" validate:"omitempty,url"`
	AllowMemberInvites bool   `json:"allow_member_invites"`
	RequireApproval    bool   `json:"require_approval"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID          string                      `json:"id"`
	Name        string                      `json:"name"`
	Description string                      `json:"description"`
	Website     string                      `json:"website"`
	OwnerID     string                      `json:"owner_id"`
	Settings    models.OrganizationSettings `json:"settings"`
	CreatedAt   string                      `json:"created_at"`
	UpdatedAt   string                      `json:"updated_at"`
}

// Create creates an organization for the calling admin. The organization
// document, the owner membership record and the caller's profile
// back-reference are written in a single transactional batch so a crash can
// never leave the trio partially applied.
func (s *OrganizationService) Create(ctx context.Context, callerID string, req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	if callerID == "" {
		return nil, apperrors.ErrNotAuthenticated
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status, err := s.authz.CheckAdminStatus(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check admin status: %w", err)
	}
	if !status.IsAdmin {
		return nil, apperrors.ErrNotAuthorized
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

	now := time.Now().UTC()
	org := &models.Organization{
		ID:          newOrganizationID(now),
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		OwnerID:     callerID,
		Settings: models.OrganizationSettings{
			AllowMemberInvites: false,
			RequireApproval:    false,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	owner := &models.TeamMember{
		UserID:         callerID,
		OrganizationID: org.ID,
		Role:           models.RoleOwner,
		Status:         models.MemberStatusActive,
		JoinedAt:       now,
		UpdatedAt:      now,
	}

	orgKey := keys.Organization(org.ID)
	err = s.store.TransactWrite(ctx,
		repository.TransactCreate(keys.Projected{PK: orgKey.PK, SK: orgKey.SK}, models.EntityTypeOrganization, org),
		repository.TransactCreate(keys.TeamMember(org.ID, callerID), models.EntityTypeTeamMember, owner),
		repository.TransactUpdate(keys.UserProfile(callerID), map[string]interface{}{
			"OrganizationID": org.ID,
			"UpdatedAt":      now,
		}),
	)
	if err != nil {
		if apperrors.IsConflict(err) {
			return nil, apperrors.ErrAlreadyInOrganization
		}
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	return toOrganizationResponse(org), nil
}

// UpdateSettings updates the caller's organization. Top-level fields and the
// nested settings object are replaced; settings keys not present in the
// request reset to their zero values.
func (s *OrganizationService) UpdateSettings(ctx context.Context, callerID string, req *UpdateOrganizationSettingsRequest) (*OrganizationResponse, error) {
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

	var org models.Organization
	if err := s.store.Get(ctx, keys.Organization(orgID), &org); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to load organization: %w", err)
	}

	now := time.Now().UTC()
	settings := models.OrganizationSettings{
		AllowMemberInvites: req.AllowMemberInvites,
		RequireApproval:    req.RequireApproval,
	}
	err = s.store.Update(ctx, keys.Organization(orgID), map[string]interface{}{
		"Name":        req.Name,
		"Description": req.Description,
		"Website":     req.Website,
		"Settings":    settings,
		"UpdatedAt":   now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	org.Name = req.Name
	org.Description = req.Description
	org.Website = req.Website
	org.Settings = settings
	org.UpdatedAt = now
	return toOrganizationResponse(&org), nil
}

// GetCurrent returns the caller's organization.
func (s *OrganizationService) GetCurrent(ctx context.Context, callerID string) (*OrganizationResponse, error) {
	if callerID == "" {
		return nil, apperrors.ErrNotAuthenticated
	}

	orgID, err := s.resolveOrganizationID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	var org models.Organization
	if err := s.store.Get(ctx, keys.Organization(orgID), &org); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to load organization: %w", err)
	}
	return toOrganizationResponse(&org), nil
}

// ListAll returns every organization. Super-admin console surface; the
// full-table scan is acceptable at that volume.
func (s *OrganizationService) ListAll(ctx context.Context, callerID string) ([]OrganizationResponse, error) {
	if callerID == "" {
		return nil, apperrors.ErrNotAuthenticated
	}

	status, err := s.authz.CheckAdminStatus(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check admin status: %w", err)
	}
	if !status.IsAdmin {
		return nil, apperrors.ErrNotAuthorized
	}

	var orgs []models.Organization
	if err := s.store.Scan(ctx, models.EntityTypeOrganization, &orgs); err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	responses := make([]OrganizationResponse, len(orgs))
	for i := range orgs {
		responses[i] = *toOrganizationResponse(&orgs[i])
	}
	return responses, nil
}

// requireAdminWithOrganization checks admin privilege and resolves the
// caller's organization id.
func (s *OrganizationService) requireAdminWithOrganization(ctx context.Context, callerID string) (string, error) {
	status, err := s.authz.CheckAdminStatus(ctx, callerID)
	if err != nil {
		return "", fmt.Errorf("failed to check admin status: %w", err)
	}
	if !status.IsAdmin {
		return "", apperrors.ErrNotAuthorized
	}
	return s.resolveOrganizationID(ctx, callerID)
}

// resolveOrganizationID reads the caller's organization back-reference.
func (s *OrganizationService) resolveOrganizationID(ctx context.Context, callerID string) (string, error) {
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

// newOrganizationID generates an organization id from the creation time plus
// a random suffix. Collisions are possible in principle; the conditional
// create turns one into a conflict instead of an overwrite.
func newOrganizationID(now time.Time) string {
	suffix := make([]byte, 4)
	_, _ = rand.Read(suffix)
	return fmt.Sprintf("%d-%s", now.UnixMilli(), hex.EncodeToString(suffix))
}

// toOrganizationResponse converts an organization model to response
func toOrganizationResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:          org.ID,
		Name:        org.Name,
		Description: org.Description,
		Website:     org.Website,
		OwnerID:     org.OwnerID,
		Settings:    org.Settings,
		CreatedAt:   org.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   org.UpdatedAt.Format(time.RFC3339),
	}
}
