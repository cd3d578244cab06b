package interfaces

import (
	"context"

	"ridercritic/internal/models"
	"ridercritic/internal/utils"
)

// ComparisonRepository is append-only; comparisons are never updated or
// deleted once written.
type ComparisonRepository interface {
	Create(ctx context.Context, comparison *models.Comparison) error
	GetByID(ctx context.Context, id string) (*models.Comparison, error)
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Comparison, int64, error)
	ListByCreator(ctx context.Context, uid string, params *utils.PaginationParams) ([]*models.Comparison, int64, error)
}
