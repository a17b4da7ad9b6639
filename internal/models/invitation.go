package models

import "time"

// InvitationStatus defines the stored lifecycle state of an invitation.
// "expired" is never written; it is derived from ExpiresAt at read time.
type InvitationStatus string

const (
	InvitationPending   InvitationStatus = "pending"
	InvitationAccepted  InvitationStatus = "accepted"
	InvitationCancelled InvitationStatus = "cancelled"
)

// Invitation is a pending offer for an email address to join an organization
// at a given role, redeemable via its token until expiry. At most one pending
// invitation may exist per (email, organization) pair; the guard is enforced
// for serialized calls only.
type Invitation struct {
	ID             string           `json:"id" dynamodbav:"ID"`
	OrganizationID string           `json:"organization_id" dynamodbav:"OrganizationID"`
	Email          string           `json:"email" dynamodbav:"Email"`
	Role           MemberRole       `json:"role" dynamodbav:"Role"`
	Status         InvitationStatus `json:"status" dynamodbav:"Status"`
	InvitedBy      string           `json:"invited_by" dynamodbav:"InvitedBy"`
	Token          string           `json:"-" dynamodbav:"Token"`
	ExpiresAt      time.Time        `json:"expires_at" dynamodbav:"ExpiresAt"`
	CreatedAt      time.Time        `json:"created_at" dynamodbav:"CreatedAt"`
}

// IsExpired reports whether the invitation is past its expiry at the given
// instant. Pure; no write-back occurs anywhere on this path.
func (i *Invitation) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// EntityTypeInvitation is the stored document type discriminator.
const EntityTypeInvitation = "Invitation"
