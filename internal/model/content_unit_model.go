package model

import (
	"time"

	"github.com/google/uuid"
)

type ContentUnit struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId      uuid.UUID `gorm:"type:uuid;not null;index"`
	SectionKey     string    `gorm:"type:varchar(64);not null"`
	Title          string    `gorm:"type:text;not null"`
	Body           string    `gorm:"type:text;not null"`
	SortOrder      int       `gorm:"not null;default:0"`
	RelevanceScore float64   `gorm:"not null;default:0"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`

	// Relationships
	Session *InterviewSession `gorm:"foreignKey:SessionId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (ContentUnit) TableName() string {
	return "content_units"
}
