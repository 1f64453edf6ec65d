package models

import (
	"time"

	"github.com/google/uuid"
)

// KBDocument is a knowledge-base entry scoped to one product. No lifecycle,
// plain CRUD.
type KBDocument struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title         string    `gorm:"not null" json:"title"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	PortfolioCode string    `gorm:"index" json:"portfolioCode"`
	ProductCode   string    `gorm:"index" json:"productCode"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
