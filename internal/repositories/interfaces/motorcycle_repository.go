package interfaces

import (
	"context"

	"ridercritic/internal/models"
	"ridercritic/internal/utils"
)

type MotorcycleRepository interface {
	Create(ctx context.Context, motorcycle *models.Motorcycle) error
	GetByID(ctx context.Context, id string) (*models.Motorcycle, error)
	Update(ctx context.Context, motorcycle *models.Motorcycle) error
	Delete(ctx context.Context, id string) error

	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Motorcycle, int64, error)
	GetByBrand(ctx context.Context, brand string, params *utils.PaginationParams) ([]*models.Motorcycle, int64, error)

	// GetPublished is the bounded scan used by the suggestion ranker.
	GetPublished(ctx context.Context, limit int) ([]*models.Motorcycle, error)
}
