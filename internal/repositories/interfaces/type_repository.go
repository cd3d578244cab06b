package interfaces

import (
	"context"

	"ridercritic/internal/models"
	"ridercritic/internal/utils"
)

type TypeRepository interface {
	Create(ctx context.Context, motoType *models.MotorcycleType) error
	GetByID(ctx context.Context, id string) (*models.MotorcycleType, error)
	Update(ctx context.Context, motoType *models.MotorcycleType) error
	Delete(ctx context.Context, id string) error

	List(ctx context.Context, params *utils.PaginationParams) ([]*models.MotorcycleType, int64, error)
}
