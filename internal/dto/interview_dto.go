package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	ContentType string   `json:"content_type" validate:"required,oneof=service product faq case_study"`
	QuestionIds []string `json:"question_ids" validate:"required,min=1,dive,required"`
}

type CreateSessionResponse struct {
	Id uuid.UUID `json:"id"`
}

type SaveAnswerRequest struct {
	QuestionId string `json:"question_id" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
}

type SaveAnswerResponse struct {
	SessionId   uuid.UUID `json:"session_id"`
	QuestionId  string    `json:"question_id"`
	MaskedText  string    `json:"masked_text"`
	ContainsPII bool      `json:"contains_pii"`
	Warnings    []string  `json:"warnings,omitempty"`
	Status      string    `json:"status"`
}

type FinalizeSessionResponse struct {
	SessionId        uuid.UUID `json:"session_id"`
	Status           string    `json:"status"`
	GeneratedContent string    `json:"generated_content"`
	UsedFallback     bool      `json:"used_fallback"`
}

type SessionResponse struct {
	Id               uuid.UUID         `json:"id"`
	OrganizationId   uuid.UUID         `json:"organization_id"`
	UserId           uuid.UUID         `json:"user_id"`
	ContentType      string            `json:"content_type"`
	Status           string            `json:"status"`
	Answers          map[string]string `json:"answers"`
	GeneratedContent *string           `json:"generated_content"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        *time.Time        `json:"updated_at"`
}

type ListSessionsQuery struct {
	Status   string `query:"status" validate:"omitempty,oneof=draft in_progress completed"`
	Page     int    `query:"page" validate:"omitempty,min=1"`
	PageSize int    `query:"page_size" validate:"omitempty,min=1,max=100"`
}

type SessionSummaryResponse struct {
	Id          uuid.UUID  `json:"id"`
	ContentType string     `json:"content_type"`
	Status      string     `json:"status"`
	Answered    int        `json:"answered"`
	Questions   int        `json:"questions"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
