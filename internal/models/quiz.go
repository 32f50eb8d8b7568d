package models

import "time"

type Quiz struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description" json:"description"`
	DurationMinutes int       `bson:"duration_minutes" json:"duration_minutes"`
	CreatedBy       string    `bson:"created_by" json:"created_by"`
	IsActive        bool      `bson:"is_active" json:"is_active"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}
