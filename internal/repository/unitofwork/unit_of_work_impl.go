package unitofwork

import (
	"context"
	"fmt"

	"interview-content-be/internal/repository/contract"
	"interview-content-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) InterviewSessionRepository() contract.InterviewSessionRepository {
	return implementation.NewInterviewSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ContentUnitRepository() contract.ContentUnitRepository {
	return implementation.NewContentUnitRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CitationRecordRepository() contract.CitationRecordRepository {
	return implementation.NewCitationRecordRepository(u.getDB())
}

func (u *UnitOfWorkImpl) GenerationJobRepository() contract.GenerationJobRepository {
	return implementation.NewGenerationJobRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ArticleRepository() contract.ArticleRepository {
	return implementation.NewArticleRepository(u.getDB())
}

func (u *UnitOfWorkImpl) QnaEntryRepository() contract.QnaEntryRepository {
	return implementation.NewQnaEntryRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CaseStudyRepository() contract.CaseStudyRepository {
	return implementation.NewCaseStudyRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ContentLinkRepository() contract.ContentLinkRepository {
	return implementation.NewContentLinkRepository(u.getDB())
}
