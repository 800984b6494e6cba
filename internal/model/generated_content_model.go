package model

import (
	"time"

	"github.com/google/uuid"
)

type Article struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationId uuid.UUID `gorm:"type:uuid;not null;index"`
	SessionId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title          string    `gorm:"type:text;not null"`
	Slug           string    `gorm:"type:varchar(255);not null;index"`
	Summary        string    `gorm:"type:text"`
	Content        string    `gorm:"type:text;not null"`
	Status         string    `gorm:"type:varchar(16);not null;default:'draft'"`
	IsAiGenerated  bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Article) TableName() string {
	return "articles"
}

type QnaEntry struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationId uuid.UUID `gorm:"type:uuid;not null;index"`
	SessionId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Question       string    `gorm:"type:text;not null"`
	Answer         string    `gorm:"type:text;not null"`
	Status         string    `gorm:"type:varchar(16);not null;default:'draft'"`
	IsAiGenerated  bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (QnaEntry) TableName() string {
	return "qna_entries"
}

type CaseStudy struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationId uuid.UUID `gorm:"type:uuid;not null;index"`
	SessionId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title          string    `gorm:"type:text;not null"`
	Slug           string    `gorm:"type:varchar(255);not null;index"`
	Summary        string    `gorm:"type:text"`
	Content        string    `gorm:"type:text;not null"`
	Status         string    `gorm:"type:varchar(16);not null;default:'draft'"`
	IsAiGenerated  bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (CaseStudy) TableName() string {
	return "case_studies"
}

type ContentLink struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Kind          string     `gorm:"type:varchar(32);not null;index"`
	ContentType   string     `gorm:"type:varchar(32);not null"`
	ContentId     uuid.UUID  `gorm:"type:uuid;not null;index"`
	SessionId     uuid.UUID  `gorm:"type:uuid;not null;index"`
	ContentUnitId *uuid.UUID `gorm:"type:uuid;index"`
	Score         float64    `gorm:"not null;default:0"`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
}

func (ContentLink) TableName() string {
	return "content_links"
}
