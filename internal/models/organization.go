package models

import "time"

// OrganizationSettings is the nested settings object on an organization.
// Updates replace the whole object rather than merging individual keys.
type OrganizationSettings struct {
	AllowMemberInvites bool `json:"allow_member_invites" dynamodbav:"AllowMemberInvites"`
	RequireApproval    bool `json:"require_approval" dynamodbav:"RequireApproval"`
}

// Organization represents the root entity for multi-tenancy. The owner is
// immutable once set; organizations are never hard-deleted.
type Organization struct {
	ID          string               `json:"id" dynamodbav:"ID"`
	Name        string               `json:"name" dynamodbav:"Name"`
	Description string               `json:"description" dynamodbav:"Description"`
	Website     string               `json:"website" dynamodbav:"Website"`
	OwnerID     string               `json:"owner_id" dynamodbav:"OwnerID"`
	Settings    OrganizationSettings `json:"settings" dynamodbav:"Settings"`
	CreatedAt   time.Time            `json:"created_at" dynamodbav:"CreatedAt"`
	UpdatedAt   time.Time            `json:"updated_at" dynamodbav:"UpdatedAt"`
}

// EntityTypeOrganization is the stored document type discriminator.
const EntityTypeOrganization = "Organization"
