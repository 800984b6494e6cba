package service

import (
	"context"
	"strings"
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
	"interview-content-be/pkg/sanitizer"
	"interview-content-be/pkg/synthesis"

	"github.com/google/uuid"
)

// IInterviewService defines the interview session lifecycle
type IInterviewService interface {
	CreateSession(ctx context.Context, orgId, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	SaveAnswer(ctx context.Context, orgId, sessionId uuid.UUID, req *dto.SaveAnswerRequest) (*dto.SaveAnswerResponse, error)
	Finalize(ctx context.Context, orgId, sessionId uuid.UUID) (*dto.FinalizeSessionResponse, error)
	Get(ctx context.Context, orgId, sessionId uuid.UUID) (*dto.SessionResponse, error)
	ListByUser(ctx context.Context, orgId, userId uuid.UUID, query *dto.ListSessionsQuery) ([]*dto.SessionSummaryResponse, error)
}

type interviewService struct {
	uowFactory  unitofwork.RepositoryFactory
	sanitizer   *sanitizer.Sanitizer
	synthesizer *synthesis.Synthesizer
	sysLogger   logger.ILogger
	natsPub     *nats.Publisher
}

func NewInterviewService(
	uowFactory unitofwork.RepositoryFactory,
	answerSanitizer *sanitizer.Sanitizer,
	synthesizer *synthesis.Synthesizer,
	sysLogger logger.ILogger,
	natsPub *nats.Publisher,
) IInterviewService {
	return &interviewService{
		uowFactory:  uowFactory,
		sanitizer:   answerSanitizer,
		synthesizer: synthesizer,
		sysLogger:   sysLogger,
		natsPub:     natsPub,
	}
}

// CreateSession opens a new interview session with every question id seeded
// to an empty answer.
func (s *interviewService) CreateSession(ctx context.Context, orgId, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	if len(req.QuestionIds) == 0 {
		return nil, apperror.NewValidationError("at least one question id is required")
	}

	answers := make(map[string]string, len(req.QuestionIds))
	for _, qid := range req.QuestionIds {
		answers[qid] = ""
	}

	session := entity.InterviewSession{
		Id:             uuid.New(),
		OrganizationId: orgId,
		UserId:         userId,
		ContentType:    req.ContentType,
		Status:         constant.SessionStatusDraft,
		Answers:        answers,
		CreatedAt:      time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.InterviewSessionRepository().Create(ctx, &session); err != nil {
		s.logError(session.Id, "create_session", err)
		return nil, &apperror.PersistenceError{Op: "create_session", Err: err}
	}

	return &dto.CreateSessionResponse{Id: session.Id}, nil
}

// SaveAnswer runs the sanitizer gate, merges the masked answer and moves the
// session to in_progress. Completed sessions reject further writes.
func (s *interviewService) SaveAnswer(ctx context.Context, orgId, sessionId uuid.UUID, req *dto.SaveAnswerRequest) (*dto.SaveAnswerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.InterviewSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.OwnedByOrganization{OrganizationID: orgId},
	)
	if err != nil {
		s.logError(sessionId, "save_answer", err)
		return nil, err
	}
	if session == nil {
		return nil, &apperror.NotFoundError{Resource: "interview session", Id: sessionId.String()}
	}
	if session.Status == constant.SessionStatusCompleted {
		return nil, apperror.NewInvalidStateError("session %s is completed, answers are frozen", sessionId)
	}

	result := s.sanitizer.ValidateAndMask(req.Answer)
	if !result.IsValid {
		return nil, &apperror.ValidationError{
			Message:  "answer rejected by validation",
			Warnings: result.Warnings,
		}
	}

	// Last write wins per question key; no cross-key conflict resolution
	session.Answers[req.QuestionId] = result.MaskedText
	session.Status = constant.SessionStatusInProgress

	if err := uow.InterviewSessionRepository().Update(ctx, session); err != nil {
		s.logError(sessionId, "save_answer", err)
		return nil, &apperror.PersistenceError{Op: "save_answer", Err: err}
	}

	if result.ContainsPII {
		s.sysLogger.Warn("interview", "pii detected in answer, masked before save", map[string]interface{}{
			"session_id":  sessionId.String(),
			"question_id": req.QuestionId,
			"warnings":    result.Warnings,
		})
		s.publish(ctx, events.NewPIIDetectedEvent(sessionId, req.QuestionId, result.Warnings))
	}

	return &dto.SaveAnswerResponse{
		SessionId:   sessionId,
		QuestionId:  req.QuestionId,
		MaskedText:  result.MaskedText,
		ContainsPII: result.ContainsPII,
		Warnings:    result.Warnings,
		Status:      session.Status,
	}, nil
}

// Finalize synthesizes the summary and moves the session to completed.
// Repeated calls return the stored content without re-synthesizing.
func (s *interviewService) Finalize(ctx context.Context, orgId, sessionId uuid.UUID) (*dto.FinalizeSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.InterviewSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.OwnedByOrganization{OrganizationID: orgId},
	)
	if err != nil {
		s.logError(sessionId, "finalize", err)
		return nil, err
	}
	if session == nil {
		return nil, &apperror.NotFoundError{Resource: "interview session", Id: sessionId.String()}
	}

	// Idempotency: a second finalize is a pure read
	if session.Status == constant.SessionStatusCompleted {
		content := ""
		if session.GeneratedContent != nil {
			content = *session.GeneratedContent
		}
		return &dto.FinalizeSessionResponse{
			SessionId:        sessionId,
			Status:           session.Status,
			GeneratedContent: content,
		}, nil
	}

	pairs := answeredPairs(session.Answers)
	if len(pairs) == 0 {
		return nil, apperror.NewValidationError("session %s has no answers to summarize", sessionId)
	}

	out, err := s.synthesizer.Synthesize(ctx, &synthesis.Request{
		User:     synthesis.BuildSummaryPrompt(pairs, session.ContentType),
		Fallback: synthesis.FallbackSummary(constant.FallbackBanner, pairs, s.synthesizer.Now()),
	}, synthesis.FallbackOnError)
	if err != nil {
		// FallbackOnError never surfaces provider failures
		s.logError(sessionId, "finalize", err)
		return nil, err
	}
	if out.UsedFallback {
		s.sysLogger.Warn("interview", "provider unavailable, fallback summary used", map[string]interface{}{
			"session_id": sessionId.String(),
		})
	}

	// Provenance is best-effort: a citation failure never blocks the result
	record := buildCitationRecord(sessionId, out, pairs, map[string]interface{}{
		"source_feature": "interview_finalize",
		"content_type":   session.ContentType,
		"answer_count":   len(pairs),
	})
	if err := uow.CitationRecordRepository().Create(ctx, record); err != nil {
		s.sysLogger.Error("interview", "citation record write failed", map[string]interface{}{
			"session_id": sessionId.String(),
			"operation":  "finalize",
			"error":      err.Error(),
		})
	}

	session.Status = constant.SessionStatusCompleted
	session.GeneratedContent = &out.Text
	if err := uow.InterviewSessionRepository().Update(ctx, session); err != nil {
		// Session stays non-completed in the store; retry is safe
		s.logError(sessionId, "finalize", err)
		return nil, &apperror.PersistenceError{Op: "finalize", Err: err}
	}

	s.publish(ctx, events.NewSessionFinalizedEvent(sessionId, out.UsedFallback))

	return &dto.FinalizeSessionResponse{
		SessionId:        sessionId,
		Status:           session.Status,
		GeneratedContent: out.Text,
		UsedFallback:     out.UsedFallback,
	}, nil
}

// Get returns the session, or nil when it does not exist or belongs to
// another organization.
func (s *interviewService) Get(ctx context.Context, orgId, sessionId uuid.UUID) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.InterviewSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.OwnedByOrganization{OrganizationID: orgId},
	)
	if err != nil {
		s.logError(sessionId, "get_session", err)
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	return &dto.SessionResponse{
		Id:               session.Id,
		OrganizationId:   session.OrganizationId,
		UserId:           session.UserId,
		ContentType:      session.ContentType,
		Status:           session.Status,
		Answers:          session.Answers,
		GeneratedContent: session.GeneratedContent,
		CreatedAt:        session.CreatedAt,
		UpdatedAt:        session.UpdatedAt,
	}, nil
}

// ListByUser returns the user's sessions within their organization, most
// recent first, optionally filtered by status.
func (s *interviewService) ListByUser(ctx context.Context, orgId, userId uuid.UUID, query *dto.ListSessionsQuery) ([]*dto.SessionSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	page, pageSize := 1, 20
	if query != nil && query.Page > 0 {
		page = query.Page
	}
	if query != nil && query.PageSize > 0 {
		pageSize = query.PageSize
	}

	specs := []specification.Specification{
		specification.OwnedByOrganization{OrganizationID: orgId},
		specification.OwnedByUser{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: pageSize, Offset: (page - 1) * pageSize},
	}
	if query != nil && query.Status != "" {
		specs = append(specs, specification.WithStatus{Status: query.Status})
	}

	sessions, err := uow.InterviewSessionRepository().FindAll(ctx, specs...)
	if err != nil {
		s.sysLogger.Error("interview", "list sessions failed", map[string]interface{}{
			"user_id":   userId.String(),
			"operation": "list_by_user",
			"error":     err.Error(),
		})
		return nil, err
	}

	response := make([]*dto.SessionSummaryResponse, 0, len(sessions))
	for _, sess := range sessions {
		answered := 0
		for _, a := range sess.Answers {
			if strings.TrimSpace(a) != "" {
				answered++
			}
		}
		response = append(response, &dto.SessionSummaryResponse{
			Id:          sess.Id,
			ContentType: sess.ContentType,
			Status:      sess.Status,
			Answered:    answered,
			Questions:   len(sess.Answers),
			CreatedAt:   sess.CreatedAt,
			UpdatedAt:   sess.UpdatedAt,
		})
	}

	return response, nil
}

func (s *interviewService) logError(sessionId uuid.UUID, op string, err error) {
	s.sysLogger.Error("interview", "operation failed", map[string]interface{}{
		"session_id": sessionId.String(),
		"operation":  op,
		"error":      err.Error(),
	})
}

func (s *interviewService) publish(ctx context.Context, event events.Event) {
	if s.natsPub == nil {
		return
	}
	if err := s.natsPub.Publish(ctx, event); err != nil {
		s.sysLogger.Warn("interview", "event publish failed", map[string]interface{}{
			"event": event.EventType(),
			"error": err.Error(),
		})
	}
}

// answeredPairs extracts non-blank answers in sorted question-id order.
func answeredPairs(answers map[string]string) []synthesis.QA {
	pairs := make([]synthesis.QA, 0, len(answers))
	for qid, answer := range answers {
		if strings.TrimSpace(answer) == "" {
			continue
		}
		pairs = append(pairs, synthesis.QA{QuestionId: qid, Answer: answer})
	}
	synthesis.SortPairs(pairs)
	return pairs
}

// buildCitationRecord splits provenance weight equally across the answered
// questions that fed the synthesis.
func buildCitationRecord(sessionId uuid.UUID, out *synthesis.Output, pairs []synthesis.QA, metadata map[string]interface{}) *entity.CitationRecord {
	weight := 1.0 / float64(len(pairs))
	sources := make([]entity.CitationSource, len(pairs))
	for i, p := range pairs {
		sources[i] = entity.CitationSource{
			SourceRef:   p.QuestionId,
			Weight:      weight,
			QuotedChars: len(p.Answer),
			TokenCount:  synthesis.EstimateTokens(p.Answer),
		}
	}

	return &entity.CitationRecord{
		Id:               uuid.New(),
		SessionId:        sessionId,
		Model:            out.Model,
		PromptTokens:     out.Usage.PromptTokens,
		CompletionTokens: out.Usage.CompletionTokens,
		TotalTokens:      out.Usage.TotalTokens,
		Sources:          sources,
		Metadata:         metadata,
		CreatedAt:        time.Now(),
	}
}
