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

type ContentUnitRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InterviewMapper
}

func NewContentUnitRepository(db *gorm.DB) contract.ContentUnitRepository {
	return &ContentUnitRepositoryImpl{
		db:     db,
		mapper: mapper.NewInterviewMapper(),
	}
}

func (r *ContentUnitRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ContentUnitRepositoryImpl) CreateBulk(ctx context.Context, units []*entity.ContentUnit) error {
	if len(units) == 0 {
		return nil
	}
	models := make([]*model.ContentUnit, len(units))
	for i, u := range units {
		models[i] = r.mapper.ContentUnitToModel(u)
	}
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*units[i] = *r.mapper.ContentUnitToEntity(m)
	}
	return nil
}

func (r *ContentUnitRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContentUnit, error) {
	var models []*model.ContentUnit
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ContentUnit, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ContentUnitToEntity(m)
	}
	return entities, nil
}

func (r *ContentUnitRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ContentUnit{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
