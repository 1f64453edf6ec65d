package models

import (
	"time"

	"github.com/google/uuid"
)

// Studio groups the users allowed through the login gate and points at the
// portfolio they work in.
type Studio struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	PortfolioCode string    `gorm:"not null;index" json:"portfolioCode"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// StudioUser is a membership record. Email is the match key and is stored
// lowercased.
type StudioUser struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StudioID       uuid.UUID `gorm:"type:uuid;not null;index" json:"studioId"`
	Email          string    `gorm:"not null;index" json:"email"`
	Role           string    `gorm:"type:varchar(32)" json:"role,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
