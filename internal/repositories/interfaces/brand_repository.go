package interfaces

import (
	"context"

	"ridercritic/internal/models"
	"ridercritic/internal/utils"
)

type BrandRepository interface {
	Create(ctx context.Context, brand *models.Brand) error
	GetByID(ctx context.Context, id string) (*models.Brand, error)
	Update(ctx context.Context, brand *models.Brand) error
	Delete(ctx context.Context, id string) error

	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Brand, int64, error)

	// GetAll is the full-collection scan used by the suggestion ranker.
	GetAll(ctx context.Context) ([]*models.Brand, error)
}
