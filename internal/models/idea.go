package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ValidationStatus describes how proven an idea's hypothesis is. The string
// values are part of the persisted format and the API contract.
type ValidationStatus string

const (
	StatusBacklog     ValidationStatus = "backlog"
	StatusFirstLevel  ValidationStatus = "firstLevel"
	StatusSecondLevel ValidationStatus = "secondLevel"
	StatusScaling     ValidationStatus = "scaling"
	StatusFailed      ValidationStatus = "failed"
)

// KnownStatuses lists the five statuses in funnel order.
var KnownStatuses = []ValidationStatus{
	StatusBacklog,
	StatusFirstLevel,
	StatusSecondLevel,
	StatusScaling,
	StatusFailed,
}

var statusRank = map[ValidationStatus]int{
	StatusBacklog:     0,
	StatusFirstLevel:  1,
	StatusSecondLevel: 2,
	StatusScaling:     3,
	StatusFailed:      4,
}

// Known reports whether s is one of the five recognized statuses. Legacy or
// empty values are not: they sort last and are excluded from funnel buckets.
func (s ValidationStatus) Known() bool {
	_, ok := statusRank[s]
	return ok
}

// Rank returns the fixed funnel rank of s; unknown statuses rank 999.
func (s ValidationStatus) Rank() int {
	if r, ok := statusRank[s]; ok {
		return r
	}
	return 999
}

// Source records where an idea came from.
type Source string

const (
	SourceCustomerFeedback   Source = "customerFeedback"
	SourceTeamBrainstorm     Source = "teamBrainstorm"
	SourceCompetitorAnalysis Source = "competitorAnalysis"
	SourceUserResearch       Source = "userResearch"
	SourceMarketTrend        Source = "marketTrend"
	SourceInternalRequest    Source = "internalRequest"
	SourceOther              Source = "other"
)

var knownSources = map[Source]bool{
	SourceCustomerFeedback:   true,
	SourceTeamBrainstorm:     true,
	SourceCompetitorAnalysis: true,
	SourceUserResearch:       true,
	SourceMarketTrend:        true,
	SourceInternalRequest:    true,
	SourceOther:              true,
}

// Known reports whether s is a recognized source value.
func (s Source) Known() bool { return knownSources[s] }

// Idea is a backlog entry tracked through the validation lifecycle.
// IdeaNumber is unique only within one (PortfolioCode, ProductCode) scope.
type Idea struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	IdeaNumber       int              `gorm:"not null;index:idx_ideas_scope" json:"ideaNumber"`
	Name             string           `gorm:"not null" json:"name"`
	Hypothesis       string           `gorm:"type:text;not null" json:"hypothesis"`
	ValidationStatus ValidationStatus `gorm:"type:varchar(32);index" json:"validationStatus"`
	StatusHistory    datatypes.JSON   `gorm:"type:jsonb" json:"statusHistory"`
	Upvotes          int              `gorm:"not null;default:0" json:"upvotes"`
	Source           Source           `gorm:"type:varchar(32)" json:"source,omitempty"`
	PortfolioCode    string           `gorm:"not null;index:idx_ideas_scope" json:"portfolioCode"`
	ProductCode      string           `gorm:"not null;index:idx_ideas_scope;index" json:"productCode"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// NextIdeaNumber returns the number for a new idea in the scope the given
// ideas were fetched from: 1 for an empty scope, else max+1. Gaps left by
// deletions are never reused. Callers must pass ideas from exactly one
// (portfolioCode, productCode) scope.
func NextIdeaNumber(ideas []Idea) int {
	max := 0
	for _, i := range ideas {
		if i.IdeaNumber > max {
			max = i.IdeaNumber
		}
	}
	return max + 1
}
