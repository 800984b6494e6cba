package implementation

import (
	"context"
	"errors"

	"interview-content-be/internal/entity"
	"interview-content-be/internal/mapper"
	"interview-content-be/internal/model"
	"interview-content-be/internal/repository/contract"
	"interview-content-be/internal/repository/specification"

	"gorm.io/gorm"
)

func applySpecs(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Articles

type ArticleRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GenerationMapper
}

func NewArticleRepository(db *gorm.DB) contract.ArticleRepository {
	return &ArticleRepositoryImpl{db: db, mapper: mapper.NewGenerationMapper()}
}

func (r *ArticleRepositoryImpl) Create(ctx context.Context, article *entity.Article) error {
	m := r.mapper.ArticleToModel(article)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*article = *r.mapper.ArticleToEntity(m)
	return nil
}

func (r *ArticleRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Article, error) {
	var m model.Article
	if err := applySpecs(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ArticleToEntity(&m), nil
}

// Q&A Entries

type QnaEntryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GenerationMapper
}

func NewQnaEntryRepository(db *gorm.DB) contract.QnaEntryRepository {
	return &QnaEntryRepositoryImpl{db: db, mapper: mapper.NewGenerationMapper()}
}

func (r *QnaEntryRepositoryImpl) Create(ctx context.Context, entry *entity.QnaEntry) error {
	m := r.mapper.QnaEntryToModel(entry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.QnaEntryToEntity(m)
	return nil
}

func (r *QnaEntryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.QnaEntry, error) {
	var m model.QnaEntry
	if err := applySpecs(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.QnaEntryToEntity(&m), nil
}

// Case Studies

type CaseStudyRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GenerationMapper
}

func NewCaseStudyRepository(db *gorm.DB) contract.CaseStudyRepository {
	return &CaseStudyRepositoryImpl{db: db, mapper: mapper.NewGenerationMapper()}
}

func (r *CaseStudyRepositoryImpl) Create(ctx context.Context, study *entity.CaseStudy) error {
	m := r.mapper.CaseStudyToModel(study)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*study = *r.mapper.CaseStudyToEntity(m)
	return nil
}

func (r *CaseStudyRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CaseStudy, error) {
	var m model.CaseStudy
	if err := applySpecs(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CaseStudyToEntity(&m), nil
}

// Content Links

type ContentLinkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GenerationMapper
}

func NewContentLinkRepository(db *gorm.DB) contract.ContentLinkRepository {
	return &ContentLinkRepositoryImpl{db: db, mapper: mapper.NewGenerationMapper()}
}

func (r *ContentLinkRepositoryImpl) CreateBulk(ctx context.Context, links []*entity.ContentLink) error {
	if len(links) == 0 {
		return nil
	}
	models := make([]*model.ContentLink, len(links))
	for i, l := range links {
		models[i] = r.mapper.LinkToModel(l)
	}
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*links[i] = *r.mapper.LinkToEntity(m)
	}
	return nil
}

func (r *ContentLinkRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContentLink, error) {
	var models []*model.ContentLink
	if err := applySpecs(r.db.WithContext(ctx), specs...).Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ContentLink, len(models))
	for i, m := range models {
		entities[i] = r.mapper.LinkToEntity(m)
	}
	return entities, nil
}
