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

// LessonPlanService generates and manages AI-authored training lessons for
// agents.
type LessonPlanService struct {
	store     repository.Store
	ai        AIClient
	validator *validator.Validate
}

// NewLessonPlanService creates a new lesson plan service
func NewLessonPlanService(store repository.Store, ai AIClient, validator *validator.Validate) *LessonPlanService {
	return &LessonPlanService{
		store:     store,
		ai:        ai,
		validator: validator,
	}
}

// GenerateLessonPlanRequest represents the request to generate a lesson plan
type GenerateLessonPlanRequest struct {
	Topic           string `json:"topic" validate:"required,min=3,max=200"`
	Audience        string `json:"audience" validate:"required,oneof=new_agents experienced_agents team_leads"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=15,max=240"`
}

// LessonPlanResponse represents the response for lesson plan operations
type LessonPlanResponse struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	OrganizationID  string `json:"organization_id"`
	Topic           string `json:"topic"`
	Audience        string `json:"audience"`
	DurationMinutes int    `json:"duration_minutes"`
	Content         string `json:"content"`
	Model           string `json:"model"`
	CreatedAt       string `json:"created_at"`
}

const lessonPlanSystemPrompt = "You are a real estate training coach. " +
	"Write a structured lesson plan with learning objectives, a timed agenda, " +
	"discussion prompts and a short knowledge check. Use plain text headings."

// Generate produces a lesson plan via the AI provider and stores it under
// the calling user.
func (s *LessonPlanService) Generate(ctx context.Context, callerID string, req *GenerateLessonPlanRequest) (*LessonPlanResponse, error) {
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

	userPrompt := fmt.Sprintf("Topic: %s\nAudience: %s\nDuration: %d minutes",
		req.Topic, req.Audience, req.DurationMinutes)
	content, err := s.ai.Complete(ctx, lessonPlanSystemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate lesson plan: %w", err)
	}

	now := time.Now().UTC()
	plan := &models.LessonPlan{
		ID:              uuid.NewString(),
		UserID:          callerID,
		OrganizationID:  orgID,
		Topic:           req.Topic,
		Audience:        req.Audience,
		DurationMinutes: req.DurationMinutes,
		Content:         content,
		Model:           s.ai.ModelName(),
		CreatedAt:       now,
	}
	key := keys.LessonPlan(callerID, orgID, plan.ID, now)
	if err := s.store.Create(ctx, key, models.EntityTypeLessonPlan, plan); err != nil {
		return nil, fmt.Errorf("failed to store lesson plan: %w", err)
	}
	return toLessonPlanResponse(plan), nil
}

// List returns the caller's lesson plans.
func (s *LessonPlanService) List(ctx context.Context, callerID string) ([]LessonPlanResponse, error) {
	if callerID == "" {
		return nil, apperrors.ErrNotAuthenticated
	}

	var plans []models.LessonPlan
	if err := s.store.Query(ctx, keys.UserPrefix+callerID, keys.LessonPrefix, &plans); err != nil {
		return nil, fmt.Errorf("failed to list lesson plans: %w", err)
	}

	responses := make([]LessonPlanResponse, len(plans))
	for i := range plans {
		responses[i] = *toLessonPlanResponse(&plans[i])
	}
	return responses, nil
}

// ListForOrganization returns every lesson plan in the caller's organization,
// newest last. Served by the chronological index projection.
func (s *LessonPlanService) ListForOrganization(ctx context.Context, callerID string) ([]LessonPlanResponse, error) {
	if callerID == "" {
		return nil, apperrors.ErrNotAuthenticated
	}

	orgID, err := s.resolveOrganizationID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	var plans []models.LessonPlan
	if err := s.store.QueryIndex(ctx, repository.IndexGSI1, keys.OrgPrefix+orgID, keys.LessonPrefix, &plans); err != nil {
		return nil, fmt.Errorf("failed to list organization lesson plans: %w", err)
	}

	responses := make([]LessonPlanResponse, len(plans))
	for i := range plans {
		responses[i] = *toLessonPlanResponse(&plans[i])
	}
	return responses, nil
}

// Get returns one of the caller's lesson plans.
func (s *LessonPlanService) Get(ctx context.Context, callerID, planID string) (*LessonPlanResponse, error) {
	if callerID == "" {
		return nil, apperrors.ErrNotAuthenticated
	}

	var plan models.LessonPlan
	key := keys.Primary{PK: keys.UserPrefix + callerID, SK: keys.LessonPrefix + planID}
	if err := s.store.Get(ctx, key, &plan); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrLessonPlanNotFound
		}
		return nil, fmt.Errorf("failed to load lesson plan: %w", err)
	}
	return toLessonPlanResponse(&plan), nil
}

// Delete removes one of the caller's lesson plans. Deleting a plan that does
// not exist succeeds silently.
func (s *LessonPlanService) Delete(ctx context.Context, callerID, planID string) error {
	if callerID == "" {
		return apperrors.ErrNotAuthenticated
	}

	key := keys.Primary{PK: keys.UserPrefix + callerID, SK: keys.LessonPrefix + planID}
	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete lesson plan: %w", err)
	}
	return nil
}

// resolveOrganizationID reads the caller's organization back-reference.
func (s *LessonPlanService) resolveOrganizationID(ctx context.Context, callerID string) (string, error) {
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

// toLessonPlanResponse converts a lesson plan model to response
func toLessonPlanResponse(plan *models.LessonPlan) *LessonPlanResponse {
	return &LessonPlanResponse{
		ID:              plan.ID,
		UserID:          plan.UserID,
		OrganizationID:  plan.OrganizationID,
		Topic:           plan.Topic,
		Audience:        plan.Audience,
		DurationMinutes: plan.DurationMinutes,
		Content:         plan.Content,
		Model:           plan.Model,
		CreatedAt:       plan.CreatedAt.Format(time.RFC3339),
	}
}
