package service

import (
	"context"
	"fmt"
	"time"

	apperrors "agenthub-backend/internal/errors"
	"agenthub-backend/internal/keys"
	"agenthub-backend/internal/models"
	"agenthub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// ProfileService handles business logic for user profiles.
type ProfileService struct {
	store     repository.Store
	validator *validator.Validate
}

// NewProfileService creates a new profile service
func NewProfileService(store repository.Store, validator *validator.Validate) *ProfileService {
	return &ProfileService{store: store, validator: validator}
}

// UpdateProfileRequest represents the request to update the caller's profile
type UpdateProfileRequest struct {
	DisplayName   string `json:"display_name" validate:"required,min=1,max=100"`
	LicenseNumber string `json:"license_number,omitempty" validate:"max=50"`
}

// ProfileResponse represents the response for profile operations
type ProfileResponse struct {
	UserID         string `json:"user_id"`
	Email          string `json:"email"`
	DisplayName    string `json:"display_name"`
	OrganizationID string `json:"organization_id,omitempty"`
	IsAdmin        bool   `json:"is_admin"`
	LicenseNumber  string `json:"license_number,omitempty"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// Get returns the caller's profile.
func (s *ProfileService) Get(ctx context.Context, callerID string) (*ProfileResponse, error) {
	if callerID == "" {
		return nil, apperrors.ErrNotAuthenticated
	}

	var profile models.UserProfile
	if err := s.store.Get(ctx, keys.UserProfile(callerID), &profile); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return toProfileResponse(&profile), nil
}

// Update modifies the caller's own display fields. Organization membership
// and the admin flag are managed elsewhere and cannot be changed here.
func (s *ProfileService) Update(ctx context.Context, callerID string, req *UpdateProfileRequest) (*ProfileResponse, error) {
	if callerID == "" {
		return nil, apperrors.ErrNotAuthenticated
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var profile models.UserProfile
	if err := s.store.Get(ctx, keys.UserProfile(callerID), &profile); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	now := time.Now().UTC()
	err := s.store.Update(ctx, keys.UserProfile(callerID), map[string]interface{}{
		"DisplayName":   req.DisplayName,
		"LicenseNumber": req.LicenseNumber,
		"UpdatedAt":     now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	profile.DisplayName = req.DisplayName
	profile.LicenseNumber = req.LicenseNumber
	profile.UpdatedAt = now
	return toProfileResponse(&profile), nil
}

// Ensure creates the caller's profile if it does not exist yet and returns
// it. Called on first authenticated contact so later flows can rely on the
// profile document being present.
func (s *ProfileService) Ensure(ctx context.Context, callerID, email string) (*ProfileResponse, error) {
	if callerID == "" {
		return nil, apperrors.ErrNotAuthenticated
	}

	var profile models.UserProfile
	err := s.store.Get(ctx, keys.UserProfile(callerID), &profile)
	if err == nil {
		return toProfileResponse(&profile), nil
	}
	if !apperrors.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	now := time.Now().UTC()
	profile = models.UserProfile{
		UserID:    callerID,
		Email:     keys.NormalizeEmail(email),
		CreatedAt: now,
		UpdatedAt: now,
	}
	profileKey := keys.UserProfile(callerID)
	err = s.store.Create(ctx, keys.Projected{PK: profileKey.PK, SK: profileKey.SK}, models.EntityTypeUserProfile, &profile)
	if err != nil {
		// Lost a create race; the winner's document is authoritative.
		if apperrors.IsConflict(err) {
			if err := s.store.Get(ctx, profileKey, &profile); err != nil {
				return nil, fmt.Errorf("failed to load profile: %w", err)
			}
			return toProfileResponse(&profile), nil
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return toProfileResponse(&profile), nil
}

// toProfileResponse converts a profile model to response
func toProfileResponse(profile *models.UserProfile) *ProfileResponse {
	return &ProfileResponse{
		UserID:         profile.UserID,
		Email:          profile.Email,
		DisplayName:    profile.DisplayName,
		OrganizationID: profile.OrganizationID,
		IsAdmin:        profile.IsAdmin,
		LicenseNumber:  profile.LicenseNumber,
		CreatedAt:      profile.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      profile.UpdatedAt.Format(time.RFC3339),
	}
}
