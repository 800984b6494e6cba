package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CitationRecord struct {
	Id               uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId        uuid.UUID      `gorm:"type:uuid;not null;index"`
	Model            string         `gorm:"type:varchar(128);not null"`
	PromptTokens     int            `gorm:"not null;default:0"`
	CompletionTokens int            `gorm:"not null;default:0"`
	TotalTokens      int            `gorm:"not null;default:0"`
	Sources          datatypes.JSON `gorm:"not null"` // []entity.CitationSource
	Metadata         datatypes.JSONMap
	CreatedAt        time.Time `gorm:"autoCreateTime"`

	// Relationships
	Session *InterviewSession `gorm:"foreignKey:SessionId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (CitationRecord) TableName() string {
	return "citation_records"
}
