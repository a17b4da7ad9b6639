package models

import "time"

// LessonPlan is an AI-generated training lesson for an agent.
type LessonPlan struct {
	ID              string    `json:"id" dynamodbav:"ID"`
	UserID          string    `json:"user_id" dynamodbav:"UserID"`
	OrganizationID  string    `json:"organization_id" dynamodbav:"OrganizationID"`
	Topic           string    `json:"topic" dynamodbav:"Topic"`
	Audience        string    `json:"audience" dynamodbav:"Audience"`
	DurationMinutes int       `json:"duration_minutes" dynamodbav:"DurationMinutes"`
	Content         string    `json:"content" dynamodbav:"Content"`
	Model           string    `json:"model" dynamodbav:"Model"`
	CreatedAt       time.Time `json:"created_at" dynamodbav:"CreatedAt"`
}

// EntityTypeLessonPlan is the stored document type discriminator.
const EntityTypeLessonPlan = "LessonPlan"
