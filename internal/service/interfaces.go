package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(ctx context.Context, callerID string, req *CreateOrganizationRequest) (*OrganizationResponse, error)
	UpdateSettings(ctx context.Context, callerID string, req *UpdateOrganizationSettingsRequest) (*OrganizationResponse, error)
	GetCurrent(ctx context.Context, callerID string) (*OrganizationResponse, error)
	ListAll(ctx context.Context, callerID string) ([]OrganizationResponse, error)
}

// InvitationServiceInterface defines the interface for invitation service
type InvitationServiceInterface interface {
	Invite(ctx context.Context, callerID string, req *InviteTeamMemberRequest) (*InvitationResponse, error)
	ListPending(ctx context.Context, callerID string) ([]InvitationResponse, error)
	Cancel(ctx context.Context, callerID, invitationID string) error
	Accept(ctx context.Context, callerID string, req *AcceptInvitationRequest) (*InvitationResponse, error)
}

// MemberServiceInterface defines the interface for member service
type MemberServiceInterface interface {
	List(ctx context.Context, callerID, organizationID string) ([]TeamMemberResponse, error)
	UpdateRole(ctx context.Context, callerID, userID string, req *UpdateMemberRoleRequest) (*TeamMemberResponse, error)
	Remove(ctx context.Context, callerID, userID string) error
}

// ProfileServiceInterface defines the interface for profile service
type ProfileServiceInterface interface {
	Get(ctx context.Context, callerID string) (*ProfileResponse, error)
	Update(ctx context.Context, callerID string, req *UpdateProfileRequest) (*ProfileResponse, error)
	Ensure(ctx context.Context, callerID, email string) (*ProfileResponse, error)
}

// LessonPlanServiceInterface defines the interface for lesson plan service
type LessonPlanServiceInterface interface {
	Generate(ctx context.Context, callerID string, req *GenerateLessonPlanRequest) (*LessonPlanResponse, error)
	List(ctx context.Context, callerID string) ([]LessonPlanResponse, error)
	ListForOrganization(ctx context.Context, callerID string) ([]LessonPlanResponse, error)
	Get(ctx context.Context, callerID, planID string) (*LessonPlanResponse, error)
	Delete(ctx context.Context, callerID, planID string) error
}

// OpenHouseServiceInterface defines the interface for open house service
type OpenHouseServiceInterface interface {
	Start(ctx context.Context, callerID string, req *StartOpenHouseRequest) (*OpenHouseResponse, error)
	Update(ctx context.Context, callerID, sessionID string, req *UpdateOpenHouseRequest) (*OpenHouseResponse, error)
	End(ctx context.Context, callerID, sessionID string) (*OpenHouseResponse, error)
	List(ctx context.Context, callerID string) ([]OpenHouseResponse, error)
}

// MarketStatsServiceInterface defines the interface for market stats service
type MarketStatsServiceInterface interface {
	Get(ctx context.Context, callerID, areaCode string) (*MarketStatsResponse, error)
}

var (
	_ OrganizationServiceInterface = (*OrganizationService)(nil)
	_ InvitationServiceInterface   = (*InvitationService)(nil)
	_ MemberServiceInterface       = (*MemberService)(nil)
	_ ProfileServiceInterface      = (*ProfileService)(nil)
	_ LessonPlanServiceInterface   = (*LessonPlanService)(nil)
	_ OpenHouseServiceInterface    = (*OpenHouseService)(nil)
	_ MarketStatsServiceInterface  = (*MarketStatsService)(nil)
)
