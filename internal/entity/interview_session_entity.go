package entity

import (
	"time"

	"github.com/google/uuid"
)

type InterviewSession struct {
	Id               uuid.UUID
	OrganizationId   uuid.UUID
	UserId           uuid.UUID
	ContentType      string
	Status           string
	Answers          map[string]string
	GeneratedContent *string
	CreatedAt        time.Time
	UpdatedAt        *time.Time
	DeletedAt        *time.Time
	IsDeleted        bool
}
