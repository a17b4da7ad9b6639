package models

import "time"

// OpenHouseSession tracks a single open-house event run by an agent.
// A session is ended by setting EndedAt; ending twice is a no-op.
type OpenHouseSession struct {
	ID              string     `json:"id" dynamodbav:"ID"`
	OrganizationID  string     `json:"organization_id" dynamodbav:"OrganizationID"`
	AgentID         string     `json:"agent_id" dynamodbav:"AgentID"`
	PropertyAddress string     `json:"property_address" dynamodbav:"PropertyAddress"`
	StartsAt        time.Time  `json:"starts_at" dynamodbav:"StartsAt"`
	EndedAt         *time.Time `json:"ended_at,omitempty" dynamodbav:"EndedAt,omitempty"`
	VisitorCount    int        `json:"visitor_count" dynamodbav:"VisitorCount"`
	Notes           string     `json:"notes,omitempty" dynamodbav:"Notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at" dynamodbav:"CreatedAt"`
	UpdatedAt       time.Time  `json:"updated_at" dynamodbav:"UpdatedAt"`
}

// EntityTypeOpenHouseSession is the stored document type discriminator.
const EntityTypeOpenHouseSession = "OpenHouseSession"
