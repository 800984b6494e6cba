package contract

import (
	"context"

	"interview-content-be/internal/entity"
	"interview-content-be/internal/repository/specification"
)

// CitationRecordRepository persists provenance records. Records are append-only.
type CitationRecordRepository interface {
	Create(ctx context.Context, record *entity.CitationRecord) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CitationRecord, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
