package entity

import (
	"time"

	"github.com/google/uuid"
)

// Article is a generated blog draft.
type Article struct {
	Id             uuid.UUID
	OrganizationId uuid.UUID
	SessionId      uuid.UUID
	Title          string
	Slug           string
	Summary        string
	Content        string
	Status         string
	IsAiGenerated  bool
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// QnaEntry is a generated Q&A draft.
type QnaEntry struct {
	Id             uuid.UUID
	OrganizationId uuid.UUID
	SessionId      uuid.UUID
	Question       string
	Answer         string
	Status         string
	IsAiGenerated  bool
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// CaseStudy is a generated case-study draft.
type CaseStudy struct {
	Id             uuid.UUID
	OrganizationId uuid.UUID
	SessionId      uuid.UUID
	Title          string
	Slug           string
	Summary        string
	Content        string
	Status         string
	IsAiGenerated  bool
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// ContentLink ties a generated row back to its session (generated_from) or
// to one of the content units used for it (source_unit, with the ranking score).
type ContentLink struct {
	Id            uuid.UUID
	Kind          string
	ContentType   string
	ContentId     uuid.UUID
	SessionId     uuid.UUID
	ContentUnitId *uuid.UUID
	Score         float64
	CreatedAt     time.Time
}
