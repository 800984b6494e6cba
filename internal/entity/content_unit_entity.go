package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContentUnit is a ranked fragment of prior content attached to a session.
// Read-only input for synthesis; the score orders units but never filters them.
type ContentUnit struct {
	Id             uuid.UUID
	SessionId      uuid.UUID
	SectionKey     string
	Title          string
	Body           string
	SortOrder      int
	RelevanceScore float64
	CreatedAt      time.Time
}
