package contract

import (
	"context"

	"interview-content-be/internal/entity"
	"interview-content-be/internal/repository/specification"
)

type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Article, error)
}

type QnaEntryRepository interface {
	Create(ctx context.Context, entry *entity.QnaEntry) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.QnaEntry, error)
}

type CaseStudyRepository interface {
	Create(ctx context.Context, study *entity.CaseStudy) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CaseStudy, error)
}

type ContentLinkRepository interface {
	CreateBulk(ctx context.Context, links []*entity.ContentLink) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContentLink, error)
}
