package model

import (
	"time"

	"github.com/google/uuid"
)

type GenerationJob struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationId  uuid.UUID  `gorm:"type:uuid;not null;index"`
	SessionId       uuid.UUID  `gorm:"type:uuid;not null;index"`
	ContentType     string     `gorm:"type:varchar(32);not null"`
	TargetContentId *uuid.UUID `gorm:"type:uuid"`
	ProviderCalls   int        `gorm:"not null;default:0"`
	CostUSD         float64    `gorm:"not null;default:0"`
	Status          string     `gorm:"type:varchar(16);not null;default:'pending'"`
	FailureReason   *string    `gorm:"type:text"`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime"`

	// Relationships
	Session *InterviewSession `gorm:"foreignKey:SessionId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (GenerationJob) TableName() string {
	return "generation_jobs"
}
