package models

import "time"

// MemberRole defines the role of a team member within an organization
type MemberRole string

const (
	RoleOwner  MemberRole = "owner"
	RoleAdmin  MemberRole = "admin"
	RoleMember MemberRole = "member"
)

// IsValid checks if the MemberRole is valid
func (r MemberRole) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}

// MemberStatus defines the status of a membership record
type MemberStatus string

const (
	MemberStatusActive  MemberStatus = "active"
	MemberStatusPending MemberStatus = "pending"
)

// TeamMember links a user to an organization. There is exactly one record per
// (organization, user) pair; the owner record is created with the organization
// and is exempt from removal and role changes.
type TeamMember struct {
	UserID         string       `json:"user_id" dynamodbav:"UserID"`
	OrganizationID string       `json:"organization_id" dynamodbav:"OrganizationID"`
	Role           MemberRole   `json:"role" dynamodbav:"Role"`
	Status         MemberStatus `json:"status" dynamodbav:"Status"`
	JoinedAt       time.Time    `json:"joined_at" dynamodbav:"JoinedAt"`
	UpdatedAt      time.Time    `json:"updated_at" dynamodbav:"UpdatedAt"`
}

// EntityTypeTeamMember is the stored document type discriminator.
const EntityTypeTeamMember = "TeamMember"
