package entity

import (
	"time"

	"github.com/google/uuid"
)

// GenerationJob is the durable record of one derived-content attempt. It is
// created before the provider call so a crash mid-call still leaves an audit
// trail; on failure the row stays in its last-known state.
type GenerationJob struct {
	Id              uuid.UUID
	OrganizationId  uuid.UUID
	SessionId       uuid.UUID
	ContentType     string
	TargetContentId *uuid.UUID
	ProviderCalls   int
	CostUSD         float64
	Status          string
	FailureReason   *string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
