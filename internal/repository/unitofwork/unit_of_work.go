package unitofwork

import (
	"context"

	"interview-content-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	InterviewSessionRepository() contract.InterviewSessionRepository
	ContentUnitRepository() contract.ContentUnitRepository
	CitationRecordRepository() contract.CitationRecordRepository
	GenerationJobRepository() contract.GenerationJobRepository
	ArticleRepository() contract.ArticleRepository
	QnaEntryRepository() contract.QnaEntryRepository
	CaseStudyRepository() contract.CaseStudyRepository
	ContentLinkRepository() contract.ContentLinkRepository
}
