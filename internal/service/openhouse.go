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
	"github.com/google/uuid"
)

// OpenHouseService manages open house sessions within an organization.
type OpenHouseService struct {
	store     repository.Store
	validator *validator.Validate
}

// NewOpenHouseService creates a new open house service
func NewOpenHouseService(store repository.Store, validator *validator.Validate) *OpenHouseService {
	return &OpenHouseService{store: store, validator: validator}
}

// StartOpenHouseRequest represents the request to start an open house session
type StartOpenHouseRequest struct {
	PropertyAddress string `json:"property_address" validate:"required,min=5,max=300"`
	Notes           string `json:"notes,omitempty" validate:"max=2000"`
}

// UpdateOpenHouseRequest represents the request to update a running session
type UpdateOpenHouseRequest struct {
	VisitorCount *int   `json:"visitor_count,omitempty" validate:"omitempty,min=0"`
	Notes        string `json:"notes,omitempty" validate:"max=2000"`
}

// OpenHouseResponse represents the response for open house operations
type OpenHouseResponse struct {
	ID              string `json:"id"`
	OrganizationID  string `json:"organization_id"`
	AgentID         string `json:"agent_id"`
	PropertyAddress string `json:"property_address"`
	StartsAt        string `json:"starts_at"`
	EndedAt         string `json:"ended_at,omitempty"`
	VisitorCount    int    `json:"visitor_count"`
	Notes           string `json:"notes,omitempty"`
	CreatedAt       string `json:"created_at"`
}

// Start creates a new open house session run by the caller.
func (s *OpenHouseService) Start(ctx context.Context, callerID string, req *StartOpenHouseRequest) (*OpenHouseResponse, error) {
	if callerID == "" {
		return nil, apperrors.ErrNotAuthenticated
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	orgID, err := s.resolveOrganizationID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &models.OpenHouseSession{
		ID:              uuid.NewString(),
		OrganizationID:  orgID,
		AgentID:         callerID,
		PropertyAddress: req.PropertyAddress,
		StartsAt:        now,
		Notes:           req.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	sessionKey := keys.OpenHouse(orgID, session.ID)
	err = s.store.Create(ctx, keys.Projected{PK: sessionKey.PK, SK: sessionKey.SK}, models.EntityTypeOpenHouseSession, session)
	if err != nil {
		return nil, fmt.Errorf("failed to start open house session: %w", err)
	}
	return toOpenHouseResponse(session), nil
}

// Update modifies a running session's visitor count and notes. Ended sessions
// are read-only.
func (s *OpenHouseService) Update(ctx context.Context, callerID, sessionID string, req *UpdateOpenHouseRequest) (*OpenHouseResponse, error) {
	if callerID == "" {
		return nil, apperrors.ErrNotAuthenticated
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	orgID, err := s.resolveOrganizationID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	session, err := s.getSession(ctx, orgID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.EndedAt != nil {
		return nil, apperrors.ErrOpenHouseEnded
	}

	now := time.Now().UTC()
	fields := map[string]interface{}{
		"UpdatedAt": now,
	}
	if req.VisitorCount != nil {
		fields["VisitorCount"] = *req.VisitorCount
		session.VisitorCount = *req.VisitorCount
	}
	if req.Notes != "" {
		fields["Notes"] = req.Notes
		session.Notes = req.Notes
	}
	if err := s.store.Update(ctx, keys.OpenHouse(orgID, sessionID), fields); err != nil {
		return nil, fmt.Errorf("failed to update open house session: %w", err)
	}
	session.UpdatedAt = now
	return toOpenHouseResponse(session), nil
}

// End closes a session by stamping EndedAt. Ending an already ended session
// succeeds silently and leaves the original end time in place.
func (s *OpenHouseService) End(ctx context.Context, callerID, sessionID string) (*OpenHouseResponse, error) {
	if callerID == "" {
		return nil, apperrors.ErrNotAuthenticated
	}

	orgID, err := s.resolveOrganizationID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	session, err := s.getSession(ctx, orgID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.EndedAt != nil {
		return toOpenHouseResponse(session), nil
	}

	now := time.Now().UTC()
	err = s.store.Update(ctx, keys.OpenHouse(orgID, sessionID), map[string]interface{}{
		"EndedAt":   now,
		"UpdatedAt": now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to end open house session: %w", err)
	}
	session.EndedAt = &now
	session.UpdatedAt = now
	return toOpenHouseResponse(session), nil
}

// List returns the organization's open house sessions.
func (s *OpenHouseService) List(ctx context.Context, callerID string) ([]OpenHouseResponse, error) {
	if callerID == "" {
		return nil, apperrors.ErrNotAuthenticated
	}

	orgID, err := s.resolveOrganizationID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	var sessions []models.OpenHouseSession
	if err := s.store.Query(ctx, keys.OrgPrefix+orgID, keys.OpenHousePrefix, &sessions); err != nil {
		return nil, fmt.Errorf("failed to list open house sessions: %w", err)
	}

	responses := make([]OpenHouseResponse, len(sessions))
	for i := range sessions {
		responses[i] = *toOpenHouseResponse(&sessions[i])
	}
	return responses, nil
}

func (s *OpenHouseService) getSession(ctx context.Context, orgID, sessionID string) (*models.OpenHouseSession, error) {
	var session models.OpenHouseSession
	if err := s.store.Get(ctx, keys.OpenHouse(orgID, sessionID), &session); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrOpenHouseNotFound
		}
		return nil, fmt.Errorf("failed to load open house session: %w", err)
	}
	return &session, nil
}

// resolveOrganizationID reads the caller's organization back-reference.
func (s *OpenHouseService) resolveOrganizationID(ctx context.Context, callerID string) (string, error) {
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

// toOpenHouseResponse converts an open house session model to response
func toOpenHouseResponse(session *models.OpenHouseSession) *OpenHouseResponse {
	resp := &OpenHouseResponse{
		ID:              session.ID,
		OrganizationID:  session.OrganizationID,
		AgentID:         session.AgentID,
		PropertyAddress: session.PropertyAddress,
		StartsAt:        session.StartsAt.Format(time.RFC3339),
		VisitorCount:    session.VisitorCount,
		Notes:           session.Notes,
		CreatedAt:       session.CreatedAt.Format(time.RFC3339),
	}
	if session.EndedAt != nil {
		resp.EndedAt = session.EndedAt.Format(time.RFC3339)
	}
	return resp
}
