package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type InterviewSession struct {
	Id               uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationId   uuid.UUID         `gorm:"type:uuid;not null;index"`
	UserId           uuid.UUID         `gorm:"type:uuid;not null;index"` // User ownership for data isolation
	ContentType      string            `gorm:"type:varchar(32);not null"`
	Status           string            `gorm:"type:varchar(16);not null;default:'draft'"`
	Answers          datatypes.JSONMap `gorm:"not null"` // question id -> answer text
	GeneratedContent *string           `gorm:"type:text"`
	CreatedAt        time.Time         `gorm:"autoCreateTime"`
	UpdatedAt        time.Time         `gorm:"autoUpdateTime"`
	DeletedAt        gorm.DeletedAt    `gorm:"index"`
}

func (InterviewSession) TableName() string {
	return "interview_sessions"
}
