package mapper

import (
	"time"

	"interview-content-be/internal/entity"
	"interview-content-be/internal/model"
)

type GenerationMapper struct{}

func NewGenerationMapper() *GenerationMapper {
	return &GenerationMapper{}
}

// Job Mappers

func (m *GenerationMapper) JobToEntity(j *model.GenerationJob) *entity.GenerationJob {
	if j == nil {
		return nil
	}

	var updatedAt *time.Time
	if !j.UpdatedAt.IsZero() {
		t := j.UpdatedAt
		updatedAt = &t
	}

	return &entity.GenerationJob{
		Id:              j.Id,
		OrganizationId:  j.OrganizationId,
		SessionId:       j.SessionId,
		ContentType:     j.ContentType,
		TargetContentId: j.TargetContentId,
		ProviderCalls:   j.ProviderCalls,
		CostUSD:         j.CostUSD,
		Status:          j.Status,
		FailureReason:   j.FailureReason,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *GenerationMapper) JobToModel(j *entity.GenerationJob) *model.GenerationJob {
	if j == nil {
		return nil
	}

	var updatedAt time.Time
	if j.UpdatedAt != nil {
		updatedAt = *j.UpdatedAt
	}

	return &model.GenerationJob{
		Id:              j.Id,
		OrganizationId:  j.OrganizationId,
		SessionId:       j.SessionId,
		ContentType:     j.ContentType,
		TargetContentId: j.TargetContentId,
		ProviderCalls:   j.ProviderCalls,
		CostUSD:         j.CostUSD,
		Status:          j.Status,
		FailureReason:   j.FailureReason,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

// Generated Content Mappers

func (m *GenerationMapper) ArticleToEntity(a *model.Article) *entity.Article {
	if a == nil {
		return nil
	}
	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}
	return &entity.Article{
		Id:             a.Id,
		OrganizationId: a.OrganizationId,
		SessionId:      a.SessionId,
		Title:          a.Title,
		Slug:           a.Slug,
		Summary:        a.Summary,
		Content:        a.Content,
		Status:         a.Status,
		IsAiGenerated:  a.IsAiGenerated,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *GenerationMapper) ArticleToModel(a *entity.Article) *model.Article {
	if a == nil {
		return nil
	}
	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}
	return &model.Article{
		Id:             a.Id,
		OrganizationId: a.OrganizationId,
		SessionId:      a.SessionId,
		Title:          a.Title,
		Slug:           a.Slug,
		Summary:        a.Summary,
		Content:        a.Content,
		Status:         a.Status,
		IsAiGenerated:  a.IsAiGenerated,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *GenerationMapper) QnaEntryToEntity(q *model.QnaEntry) *entity.QnaEntry {
	if q == nil {
		return nil
	}
	var updatedAt *time.Time
	if !q.UpdatedAt.IsZero() {
		t := q.UpdatedAt
		updatedAt = &t
	}
	return &entity.QnaEntry{
		Id:             q.Id,
		OrganizationId: q.OrganizationId,
		SessionId:      q.SessionId,
		Question:       q.Question,
		Answer:         q.Answer,
		Status:         q.Status,
		IsAiGenerated:  q.IsAiGenerated,
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *GenerationMapper) QnaEntryToModel(q *entity.QnaEntry) *model.QnaEntry {
	if q == nil {
		return nil
	}
	var updatedAt time.Time
	if q.UpdatedAt != nil {
		updatedAt = *q.UpdatedAt
	}
	return &model.QnaEntry{
		Id:             q.Id,
		OrganizationId: q.OrganizationId,
		SessionId:      q.SessionId,
		Question:       q.Question,
		Answer:         q.Answer,
		Status:         q.Status,
		IsAiGenerated:  q.IsAiGenerated,
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *GenerationMapper) CaseStudyToEntity(c *model.CaseStudy) *entity.CaseStudy {
	if c == nil {
		return nil
	}
	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}
	return &entity.CaseStudy{
		Id:             c.Id,
		OrganizationId: c.OrganizationId,
		SessionId:      c.SessionId,
		Title:          c.Title,
		Slug:           c.Slug,
		Summary:        c.Summary,
		Content:        c.Content,
		Status:         c.Status,
		IsAiGenerated:  c.IsAiGenerated,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *GenerationMapper) CaseStudyToModel(c *entity.CaseStudy) *model.CaseStudy {
	if c == nil {
		return nil
	}
	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}
	return &model.CaseStudy{
		Id:             c.Id,
		OrganizationId: c.OrganizationId,
		SessionId:      c.SessionId,
		Title:          c.Title,
		Slug:           c.Slug,
		Summary:        c.Summary,
		Content:        c.Content,
		Status:         c.Status,
		IsAiGenerated:  c.IsAiGenerated,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

// Link Mappers

func (m *GenerationMapper) LinkToEntity(l *model.ContentLink) *entity.ContentLink {
	if l == nil {
		return nil
	}
	return &entity.ContentLink{
		Id:            l.Id,
		Kind:          l.Kind,
		ContentType:   l.ContentType,
		ContentId:     l.ContentId,
		SessionId:     l.SessionId,
		ContentUnitId: l.ContentUnitId,
		Score:         l.Score,
		CreatedAt:     l.CreatedAt,
	}
}

func (m *GenerationMapper) LinkToModel(l *entity.ContentLink) *model.ContentLink {
	if l == nil {
		return nil
	}
	return &model.ContentLink{
		Id:            l.Id,
		Kind:          l.Kind,
		ContentType:   l.ContentType,
		ContentId:     l.ContentId,
		SessionId:     l.SessionId,
		ContentUnitId: l.ContentUnitId,
		Score:         l.Score,
		CreatedAt:     l.CreatedAt,
	}
}
