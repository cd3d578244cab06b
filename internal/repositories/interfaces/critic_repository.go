package interfaces

import (
	"context"

	"ridercritic/internal/models"
	"ridercritic/internal/utils"
)

type CriticRepository interface {
	Create(ctx context.Context, critic *models.Critic) error
	GetByID(ctx context.Context, id string) (*models.Critic, error)
	Update(ctx context.Context, critic *models.Critic) error
	UpdateStatus(ctx context.Context, id string, status models.ApprovalStatus) error
	Delete(ctx context.Context, id string) error

	List(ctx context.Context, kind models.CriticKind, status models.ApprovalStatus, params *utils.PaginationParams) ([]*models.Critic, int64, error)

	// GetApproved is the bounded scan used by the suggestion ranker.
	GetApproved(ctx context.Context, limit int) ([]*models.Critic, error)
}
