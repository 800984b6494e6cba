package service

import (
	"context"
	"time"

	"interview-content-be/internal/apperror"
	"interview-content-be/internal/constant"
	"interview-content-be/internal/dto"
	"interview-content-be/internal/entity"
	"interview-content-be/internal/pkg/logger"
	"interview-content-be/internal/repository/specification"
	"interview-content-be/internal/repository/unitofwork"
	"interview-content-be/pkg/events"
	"interview-content-be/pkg/nats"
	"interview-content-be/pkg/synthesis"

	"github.com/google/uuid"
)

// IGenerationService produces derived drafts (blog, Q&A, case study) from a
// completed interview session.
type IGenerationService interface {
	GenerateDerivedContent(ctx context.Context, orgId, sessionId uuid.UUID, req *dto.GenerateContentRequest) (*dto.GenerateContentResponse, error)
	ListJobs(ctx context.Context, orgId, sessionId uuid.UUID) ([]*dto.GenerationJobResponse, error)
}

type generationService struct {
	uowFactory  unitofwork.RepositoryFactory
	synthesizer *synthesis.Synthesizer
	sysLogger   logger.ILogger
	natsPub     *nats.Publisher
}

func NewGenerationService(
	uowFactory unitofwork.RepositoryFactory,
	synthesizer *synthesis.Synthesizer,
	sysLogger logger.ILogger,
	natsPub *nats.Publisher,
) IGenerationService {
	return &generationService{
		uowFactory:  uowFactory,
		synthesizer: synthesizer,
		sysLogger:   sysLogger,
		natsPub:     natsPub,
	}
}

func systemPromptFor(contentType string) (string, bool) {
	switch contentType {
	case constant.GenerationTypeBlog:
		return constant.GenerationSystemPromptBlog, true
	case constant.GenerationTypeQna:
		return constant.GenerationSystemPromptQna, true
	case constant.GenerationTypeCaseStudy:
		return constant.GenerationSystemPromptCaseStudy, true
	default:
		return "", false
	}
}

// GenerateDerivedContent runs one derived-content attempt. The job row is
// created before the provider call, so a crash mid-call still leaves an
// auditable record; on failure the job stays as the durable trace.
func (s *generationService) GenerateDerivedContent(ctx context.Context, orgId, sessionId uuid.UUID, req *dto.GenerateContentRequest) (*dto.GenerateContentResponse, error) {
	systemPrompt, ok := systemPromptFor(req.ContentType)
	if !ok {
		return nil, apperror.NewValidationError("unsupported content type: %s", req.ContentType)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Soft-deleted sessions are filtered by the repository scope
	session, err := uow.InterviewSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.OwnedByOrganization{OrganizationID: orgId},
	)
	if err != nil {
		s.logError(sessionId, "generate_content", err)
		return nil, err
	}
	if session == nil {
		return nil, &apperror.NotFoundError{Resource: "interview session", Id: sessionId.String()}
	}
	if session.Status != constant.SessionStatusCompleted {
		return nil, apperror.NewInvalidStateError("session %s is not completed, cannot generate content", sessionId)
	}

	units, err := uow.ContentUnitRepository().FindAll(ctx,
		specification.ForSession{SessionID: sessionId},
		specification.RankedByRelevance{},
		specification.Limit{N: constant.MaxSourceUnits},
	)
	if err != nil {
		s.logError(sessionId, "generate_content", err)
		return nil, err
	}

	pairs := answeredPairs(session.Answers)
	promptUnits := make([]synthesis.Unit, len(units))
	for i, u := range units {
		promptUnits[i] = synthesis.Unit{Title: u.Title, Body: u.Body}
	}
	userPrompt := synthesis.BuildDraftPrompt(pairs, promptUnits)

	job := entity.GenerationJob{
		Id:             uuid.New(),
		OrganizationId: session.OrganizationId,
		SessionId:      sessionId,
		ContentType:    req.ContentType,
		Status:         constant.GenerationJobStatusPending,
		CreatedAt:      time.Now(),
	}
	if err := uow.GenerationJobRepository().Create(ctx, &job); err != nil {
		s.logError(sessionId, "generate_content", err)
		return nil, &apperror.PersistenceError{Op: "create_generation_job", Err: err}
	}

	out, err := s.synthesizer.Synthesize(ctx, &synthesis.Request{
		System: systemPrompt,
		User:   userPrompt,
	}, synthesis.FailOnError)
	if err != nil {
		s.failJob(ctx, uow, &job, err.Error())
		s.logError(sessionId, "generate_content", err)
		return nil, &apperror.GenerationError{Message: "derived content generation failed", Err: err}
	}

	draft := synthesis.ParseDraft(out.Text)
	if draft.Title == "" || draft.Content == "" {
		s.failJob(ctx, uow, &job, "unparseable provider response")
		return nil, &apperror.GenerationError{Message: "provider response could not be parsed into a draft"}
	}

	// Draft, links and the completed job row commit or roll back together,
	// so a mid-sequence failure never strands a draft behind a failed job
	contentId, err := s.persistDraft(ctx, uow, session, req.ContentType, draft, units, out, &job)
	if err != nil {
		s.failJob(ctx, uow, &job, err.Error())
		s.logError(sessionId, "generate_content", err)
		return nil, err
	}

	// Provenance is best-effort: a citation failure never blocks the result
	record := buildDerivedCitationRecord(sessionId, out, pairs, units, req.ContentType)
	if err := uow.CitationRecordRepository().Create(ctx, record); err != nil {
		s.sysLogger.Error("generation", "citation record write failed", map[string]interface{}{
			"session_id": sessionId.String(),
			"operation":  "generate_content",
			"error":      err.Error(),
		})
	}

	s.publish(ctx, events.NewContentGeneratedEvent(sessionId, contentId, req.ContentType))

	return &dto.GenerateContentResponse{
		JobId:         job.Id,
		ContentType:   req.ContentType,
		ContentId:     contentId,
		Title:         draft.Title,
		Slug:          draft.Slug,
		ProviderCalls: job.ProviderCalls,
		CostUSD:       job.CostUSD,
	}, nil
}

// persistDraft writes the draft row, its content links and the completed job
// update as one transaction. A failure anywhere rolls the whole sequence back
// and leaves only the pending job row behind.
func (s *generationService) persistDraft(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	session *entity.InterviewSession,
	contentType string,
	draft *synthesis.Draft,
	units []*entity.ContentUnit,
	out *synthesis.Output,
	job *entity.GenerationJob,
) (uuid.UUID, error) {
	if err := uow.Begin(ctx); err != nil {
		return uuid.Nil, &apperror.PersistenceError{Op: "begin_generation", Err: err}
	}
	defer uow.Rollback()

	contentId, err := s.saveDraft(ctx, uow, session, contentType, draft)
	if err != nil {
		return uuid.Nil, &apperror.PersistenceError{Op: "save_draft", Err: err}
	}

	// Linkage: one generated_from to the session plus one source_unit per
	// content unit used, in ranking order
	links := []*entity.ContentLink{{
		Id:          uuid.New(),
		Kind:        constant.ContentLinkKindGeneratedFrom,
		ContentType: contentType,
		ContentId:   contentId,
		SessionId:   session.Id,
		CreatedAt:   time.Now(),
	}}
	for _, u := range units {
		unitId := u.Id
		links = append(links, &entity.ContentLink{
			Id:            uuid.New(),
			Kind:          constant.ContentLinkKindSourceUnit,
			ContentType:   contentType,
			ContentId:     contentId,
			SessionId:     session.Id,
			ContentUnitId: &unitId,
			Score:         u.RelevanceScore,
			CreatedAt:     time.Now(),
		})
	}
	if err := uow.ContentLinkRepository().CreateBulk(ctx, links); err != nil {
		return uuid.Nil, &apperror.PersistenceError{Op: "create_content_links", Err: err}
	}

	now := time.Now()
	job.TargetContentId = &contentId
	job.ProviderCalls = 1
	job.CostUSD = synthesis.CostUSD(out.Usage)
	job.Status = constant.GenerationJobStatusCompleted
	job.UpdatedAt = &now
	if err := uow.GenerationJobRepository().Update(ctx, job); err != nil {
		return uuid.Nil, &apperror.PersistenceError{Op: "update_generation_job", Err: err}
	}

	if err := uow.Commit(); err != nil {
		return uuid.Nil, &apperror.PersistenceError{Op: "commit_generation", Err: err}
	}

	return contentId, nil
}

// ListJobs returns the generation attempts for a session, newest first.
func (s *generationService) ListJobs(ctx context.Context, orgId, sessionId uuid.UUID) ([]*dto.GenerationJobResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	jobs, err := uow.GenerationJobRepository().FindAll(ctx,
		specification.ForSession{SessionID: sessionId},
		specification.OwnedByOrganization{OrganizationID: orgId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		s.logError(sessionId, "list_jobs", err)
		return nil, err
	}

	response := make([]*dto.GenerationJobResponse, 0, len(jobs))
	for _, j := range jobs {
		response = append(response, &dto.GenerationJobResponse{
			Id:              j.Id,
			SessionId:       j.SessionId,
			ContentType:     j.ContentType,
			TargetContentId: j.TargetContentId,
			ProviderCalls:   j.ProviderCalls,
			CostUSD:         j.CostUSD,
			Status:          j.Status,
			FailureReason:   j.FailureReason,
			CreatedAt:       j.CreatedAt,
		})
	}

	return response, nil
}

func (s *generationService) saveDraft(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.InterviewSession, contentType string, draft *synthesis.Draft) (uuid.UUID, error) {
	now := time.Now()

	switch contentType {
	case constant.GenerationTypeBlog:
		article := entity.Article{
			Id:             uuid.New(),
			OrganizationId: session.OrganizationId,
			SessionId:      session.Id,
			Title:          draft.Title,
			Slug:           draft.Slug,
			Summary:        draft.Summary,
			Content:        draft.Content,
			Status:         constant.GeneratedContentStatusDraft,
			IsAiGenerated:  true,
			CreatedAt:      now,
		}
		if err := uow.ArticleRepository().Create(ctx, &article); err != nil {
			return uuid.Nil, err
		}
		return article.Id, nil

	case constant.GenerationTypeQna:
		entry := entity.QnaEntry{
			Id:             uuid.New(),
			OrganizationId: session.OrganizationId,
			SessionId:      session.Id,
			Question:       draft.Title,
			Answer:         draft.Content,
			Status:         constant.GeneratedContentStatusDraft,
			IsAiGenerated:  true,
			CreatedAt:      now,
		}
		if err := uow.QnaEntryRepository().Create(ctx, &entry); err != nil {
			return uuid.Nil, err
		}
		return entry.Id, nil

	default: // case_study, guarded by systemPromptFor
		study := entity.CaseStudy{
			Id:             uuid.New(),
			OrganizationId: session.OrganizationId,
			SessionId:      session.Id,
			Title:          draft.Title,
			Slug:           draft.Slug,
			Summary:        draft.Summary,
			Content:        draft.Content,
			Status:         constant.GeneratedContentStatusDraft,
			IsAiGenerated:  true,
			CreatedAt:      now,
		}
		if err := uow.CaseStudyRepository().Create(ctx, &study); err != nil {
			return uuid.Nil, err
		}
		return study.Id, nil
	}
}

// failJob records the failure on the job row, outside any rolled-back
// transaction. The row itself is the durable trace of the attempt, so a
// failed update is only logged.
func (s *generationService) failJob(ctx context.Context, uow unitofwork.UnitOfWork, job *entity.GenerationJob, reason string) {
	now := time.Now()
	job.Status = constant.GenerationJobStatusFailed
	job.FailureReason = &reason
	job.TargetContentId = nil
	job.ProviderCalls = 1
	job.UpdatedAt = &now
	if err := uow.GenerationJobRepository().Update(ctx, job); err != nil {
		s.sysLogger.Error("generation", "failed to mark job as failed", map[string]interface{}{
			"job_id": job.Id.String(),
			"error":  err.Error(),
		})
	}
}

func (s *generationService) logError(sessionId uuid.UUID, op string, err error) {
	s.sysLogger.Error("generation", "operation failed", map[string]interface{}{
		"session_id": sessionId.String(),
		"operation":  op,
		"error":      err.Error(),
	})
}

func (s *generationService) publish(ctx context.Context, event events.Event) {
	if s.natsPub == nil {
		return
	}
	if err := s.natsPub.Publish(ctx, event); err != nil {
		s.sysLogger.Warn("generation", "event publish failed", map[string]interface{}{
			"event": event.EventType(),
			"error": err.Error(),
		})
	}
}

// buildDerivedCitationRecord weights sources equally across answered
// questions and the content units embedded in the prompt.
func buildDerivedCitationRecord(sessionId uuid.UUID, out *synthesis.Output, pairs []synthesis.QA, units []*entity.ContentUnit, contentType string) *entity.CitationRecord {
	total := len(pairs) + len(units)
	if total == 0 {
		total = 1
	}
	weight := 1.0 / float64(total)

	sources := make([]entity.CitationSource, 0, total)
	for _, p := range pairs {
		sources = append(sources, entity.CitationSource{
			SourceRef:   p.QuestionId,
			Weight:      weight,
			QuotedChars: len(p.Answer),
			TokenCount:  synthesis.EstimateTokens(p.Answer),
		})
	}
	for _, u := range units {
		sources = append(sources, entity.CitationSource{
			SourceRef:   u.Id.String(),
			Weight:      weight,
			QuotedChars: len(u.Body),
			TokenCount:  synthesis.EstimateTokens(u.Body),
		})
	}

	return &entity.CitationRecord{
		Id:               uuid.New(),
		SessionId:        sessionId,
		Model:            out.Model,
		PromptTokens:     out.Usage.PromptTokens,
		CompletionTokens: out.Usage.CompletionTokens,
		TotalTokens:      out.Usage.TotalTokens,
		Sources:          sources,
		Metadata: map[string]interface{}{
			"source_feature": "derived_content",
			"content_type":   contentType,
			"answer_count":   len(pairs),
			"unit_count":     len(units),
		},
		CreatedAt: time.Now(),
	}
}
