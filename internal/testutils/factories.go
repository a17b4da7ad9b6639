package testutils

import (
	"time"

	"agenthub-backend/internal/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	now := time.Now().UTC()
	return &models.Organization{
		ID:          uuid.NewString(),
		Name:        "Test Realty Group",
		Description: "A test organization",
		Website:     "https://test-realty.example.com",
		OwnerID:     uuid.NewString(),
		Settings: models.OrganizationSettings{
			AllowMemberInvites: false,
			RequireApproval:    false,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// WithOwner sets a custom owner for the organization
func (f *OrganizationFactory) WithOwner(ownerID string) *models.Organization {
	org := f.Create()
	org.OwnerID = ownerID
	return org
}

// ProfileFactory provides methods to create test UserProfile data
type ProfileFactory struct{}

// NewProfileFactory creates a new ProfileFactory
func NewProfileFactory() *ProfileFactory {
	return &ProfileFactory{}
}

// Create creates a test UserProfile with default values
func (f *ProfileFactory) Create() *models.UserProfile {
	now := time.Now().UTC()
	id := uuid.NewString()
	return &models.UserProfile{
		UserID:      id,
		Email:       "agent-" + id[:8] + "@test.com",
		DisplayName: "Test Agent",
		IsAdmin:     false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Admin creates a test profile with admin privilege
func (f *ProfileFactory) Admin() *models.UserProfile {
	profile := f.Create()
	profile.IsAdmin = true
	return profile
}

// InOrganization creates a test profile belonging to an organization
func (f *ProfileFactory) InOrganization(orgID string) *models.UserProfile {
	profile := f.Create()
	profile.OrganizationID = orgID
	return profile
}

// InvitationFactory provides methods to create test Invitation data
type InvitationFactory struct{}

// NewInvitationFactory creates a new InvitationFactory
func NewInvitationFactory() *InvitationFactory {
	return &InvitationFactory{}
}

// Create creates a pending test Invitation with default values
func (f *InvitationFactory) Create(orgID string) *models.Invitation {
	now := time.Now().UTC()
	return &models.Invitation{
		ID:             uuid.NewString(),
		OrganizationID: orgID,
		Email:          "invitee@test.com",
		Role:           models.RoleMember,
		Status:         models.InvitationPending,
		InvitedBy:      uuid.NewString(),
		Token:          "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef",
		ExpiresAt:      now.Add(7 * 24 * time.Hour),
		CreatedAt:      now,
	}
}

// Expired creates an invitation whose expiry has already passed
func (f *InvitationFactory) Expired(orgID string) *models.Invitation {
	invitation := f.Create(orgID)
	invitation.ExpiresAt = time.Now().UTC().Add(-time.Hour)
	invitation.CreatedAt = time.Now().UTC().Add(-8 * 24 * time.Hour)
	return invitation
}

// MemberFactory provides methods to create test TeamMember data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates an active test TeamMember with default values
func (f *MemberFactory) Create(orgID, userID string) *models.TeamMember {
	now := time.Now().UTC()
	return &models.TeamMember{
		UserID:         userID,
		OrganizationID: orgID,
		Role:           models.RoleMember,
		Status:         models.MemberStatusActive,
		JoinedAt:       now,
		UpdatedAt:      now,
	}
}

// Owner creates the owner membership record for an organization
func (f *MemberFactory) Owner(orgID, userID string) *models.TeamMember {
	member := f.Create(orgID, userID)
	member.Role = models.RoleOwner
	return member
}
