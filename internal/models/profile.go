package models

import "time"

// UserProfile is owned by the auth/profile subsystem. This service reads it
// for display enrichment and updates OrganizationID as memberships change.
type UserProfile struct {
	UserID         string    `json:"user_id" dynamodbav:"UserID"`
	Email          string    `json:"email" dynamodbav:"Email"`
	DisplayName    string    `json:"display_name" dynamodbav:"DisplayName"`
	OrganizationID string    `json:"organization_id,omitempty" dynamodbav:"OrganizationID,omitempty"`
	IsAdmin        bool      `json:"is_admin" dynamodbav:"IsAdmin"`
	LicenseNumber  string    `json:"license_number,omitempty" dynamodbav:"LicenseNumber,omitempty"`
	CreatedAt      time.Time `json:"created_at" dynamodbav:"CreatedAt"`
	UpdatedAt      time.Time `json:"updated_at" dynamodbav:"UpdatedAt"`
}

// EntityTypeUserProfile is the stored document type discriminator.
const EntityTypeUserProfile = "UserProfile"
