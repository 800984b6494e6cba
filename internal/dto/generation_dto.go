package dto

import (
	"time"

	"github.com/google/uuid"
)

type GenerateContentRequest struct {
	ContentType string `json:"content_type" validate:"required,oneof=blog qna case_study"`
}

type GenerateContentResponse struct {
	JobId         uuid.UUID `json:"job_id"`
	ContentType   string    `json:"content_type"`
	ContentId     uuid.UUID `json:"content_id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug,omitempty"`
	ProviderCalls int       `json:"provider_calls"`
	CostUSD       float64   `json:"cost_usd"`
}

type GenerationJobResponse struct {
	Id              uuid.UUID  `json:"id"`
	SessionId       uuid.UUID  `json:"session_id"`
	ContentType     string     `json:"content_type"`
	TargetContentId *uuid.UUID `json:"target_content_id"`
	ProviderCalls   int        `json:"provider_calls"`
	CostUSD         float64    `json:"cost_usd"`
	Status          string     `json:"status"`
	FailureReason   *string    `json:"failure_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}
