package mapper

import (
	"encoding/json"
	"time"

	"interview-content-be/internal/entity"
	"interview-content-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type InterviewMapper struct{}

func NewInterviewMapper() *InterviewMapper {
	return &InterviewMapper{}
}

// Session Mappers

func (m *InterviewMapper) SessionToEntity(s *model.InterviewSession) *entity.InterviewSession {
	if s == nil {
		return nil
	}

	var deletedAt *time.Time
	if s.DeletedAt.Valid {
		t := s.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	answers := make(map[string]string, len(s.Answers))
	for k, v := range s.Answers {
		if str, ok := v.(string); ok {
			answers[k] = str
		}
	}

	return &entity.InterviewSession{
		Id:               s.Id,
		OrganizationId:   s.OrganizationId,
		UserId:           s.UserId,
		ContentType:      s.ContentType,
		Status:           s.Status,
		Answers:          answers,
		GeneratedContent: s.GeneratedContent,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        updatedAt,
		DeletedAt:        deletedAt,
		IsDeleted:        s.DeletedAt.Valid,
	}
}

func (m *InterviewMapper) SessionToModel(s *entity.InterviewSession) *model.InterviewSession {
	if s == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if s.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *s.DeletedAt, Valid: true}
	} else if s.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	answers := make(datatypes.JSONMap, len(s.Answers))
	for k, v := range s.Answers {
		answers[k] = v
	}

	return &model.InterviewSession{
		Id:               s.Id,
		OrganizationId:   s.OrganizationId,
		UserId:           s.UserId,
		ContentType:      s.ContentType,
		Status:           s.Status,
		Answers:          answers,
		GeneratedContent: s.GeneratedContent,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        updatedAt,
		DeletedAt:        deletedAt,
	}
}

// Content Unit Mappers

func (m *InterviewMapper) ContentUnitToEntity(u *model.ContentUnit) *entity.ContentUnit {
	if u == nil {
		return nil
	}
	return &entity.ContentUnit{
		Id:             u.Id,
		SessionId:      u.SessionId,
		SectionKey:     u.SectionKey,
		Title:          u.Title,
		Body:           u.Body,
		SortOrder:      u.SortOrder,
		RelevanceScore: u.RelevanceScore,
		CreatedAt:      u.CreatedAt,
	}
}

func (m *InterviewMapper) ContentUnitToModel(u *entity.ContentUnit) *model.ContentUnit {
	if u == nil {
		return nil
	}
	return &model.ContentUnit{
		Id:             u.Id,
		SessionId:      u.SessionId,
		SectionKey:     u.SectionKey,
		Title:          u.Title,
		Body:           u.Body,
		SortOrder:      u.SortOrder,
		RelevanceScore: u.RelevanceScore,
		CreatedAt:      u.CreatedAt,
	}
}

// Citation Mappers

func (m *InterviewMapper) CitationToEntity(c *model.CitationRecord) *entity.CitationRecord {
	if c == nil {
		return nil
	}

	var sources []entity.CitationSource
	if len(c.Sources) > 0 {
		// Sources column is trusted JSON written by this package
		_ = json.Unmarshal(c.Sources, &sources)
	}

	return &entity.CitationRecord{
		Id:               c.Id,
		SessionId:        c.SessionId,
		Model:            c.Model,
		PromptTokens:     c.PromptTokens,
		CompletionTokens: c.CompletionTokens,
		TotalTokens:      c.TotalTokens,
		Sources:          sources,
		Metadata:         map[string]interface{}(c.Metadata),
		CreatedAt:        c.CreatedAt,
	}
}

func (m *InterviewMapper) CitationToModel(c *entity.CitationRecord) *model.CitationRecord {
	if c == nil {
		return nil
	}

	raw, err := json.Marshal(c.Sources)
	if err != nil {
		raw = []byte("[]")
	}

	return &model.CitationRecord{
		Id:               c.Id,
		SessionId:        c.SessionId,
		Model:            c.Model,
		PromptTokens:     c.PromptTokens,
		CompletionTokens: c.CompletionTokens,
		TotalTokens:      c.TotalTokens,
		Sources:          datatypes.JSON(raw),
		Metadata:         datatypes.JSONMap(c.Metadata),
		CreatedAt:        c.CreatedAt,
	}
}
