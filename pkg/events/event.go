package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "PII_DETECTED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent helps embed common logic if needed,
// strictly creating valid implementations is preferred though.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewPIIDetectedEvent is emitted when the sanitizer masks an answer. The
// payload never carries the raw text, only the question reference.
func NewPIIDetectedEvent(sessionId uuid.UUID, questionId string, warnings []string) Event {
	return BaseEvent{
		Type: "PII_DETECTED",
		Data: map[string]interface{}{
			"session_id":  sessionId.String(),
			"question_id": questionId,
			"warnings":    warnings,
		},
		OccurredAt: time.Now(),
	}
}

// NewSessionFinalizedEvent is emitted after a successful finalize.
func NewSessionFinalizedEvent(sessionId uuid.UUID, usedFallback bool) Event {
	return BaseEvent{
		Type: "SESSION_FINALIZED",
		Data: map[string]interface{}{
			"session_id":    sessionId.String(),
			"used_fallback": usedFallback,
		},
		OccurredAt: time.Now(),
	}
}

// NewContentGeneratedEvent is emitted when a derived-content draft is saved.
func NewContentGeneratedEvent(sessionId, contentId uuid.UUID, contentType string) Event {
	return BaseEvent{
		Type: "CONTENT_GENERATED",
		Data: map[string]interface{}{
			"session_id":   sessionId.String(),
			"content_id":   contentId.String(),
			"content_type": contentType,
		},
		OccurredAt: time.Now(),
	}
}
