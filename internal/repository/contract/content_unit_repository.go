package contract

import (
	"context"

	"interview-content-be/internal/entity"
	"interview-content-be/internal/repository/specification"
)

// ContentUnitRepository is read-mostly: units are seeded by the content
// ingestion surface, this subsystem only ranks and reads them.
type ContentUnitRepository interface {
	CreateBulk(ctx context.Context, units []*entity.ContentUnit) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContentUnit, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
