package entity

import (
	"time"

	"github.com/google/uuid"
)

// CitationSource is one weighted provenance item inside a CitationRecord.
// SourceRef holds either a content unit id or a question id.
type CitationSource struct {
	SourceRef   string  `json:"source_ref"`
	Weight      float64 `json:"weight"`
	QuotedChars int     `json:"quoted_chars"`
	TokenCount  int     `json:"token_count"`
}

// CitationRecord links one synthesized response back to its sources.
// Written once per provider call, never mutated afterwards.
type CitationRecord struct {
	Id               uuid.UUID
	SessionId        uuid.UUID
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	Sources          []CitationSource
	Metadata         map[string]interface{}
	CreatedAt        time.Time
}
