package implementation

import (
	"context"

	"interview-content-be/internal/entity"
	"interview-content-be/internal/mapper"
	"interview-content-be/internal/model"
	"interview-content-be/internal/repository/contract"
	"interview-content-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CitationRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InterviewMapper
}

func NewCitationRecordRepository(db *gorm.DB) contract.CitationRecordRepository {
	return &CitationRecordRepositoryImpl{
		db:     db,
		mapper: mapper.NewInterviewMapper(),
	}
}

func (r *CitationRecordRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CitationRecordRepositoryImpl) Create(ctx context.Context, record *entity.CitationRecord) error {
	m := r.mapper.CitationToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.CitationToEntity(m)
	return nil
}

func (r *CitationRecordRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CitationRecord, error) {
	var models []*model.CitationRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.CitationRecord, len(models))
	for i, m := range models {
		entities[i] = r.mapper.CitationToEntity(m)
	}
	return entities, nil
}

func (r *CitationRecordRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CitationRecord{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
