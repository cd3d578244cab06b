package interfaces

import (
	"context"

	"ridercritic/internal/models"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	// GetByCriticID returns comments newest-first. Implementations may need
	// a composite index for the ordered query and must fall back to an
	// unordered scan with in-memory sorting when the index is absent.
	GetByCriticID(ctx context.Context, criticID string, limit int) ([]*models.Comment, error)
	Delete(ctx context.Context, id string) error
}
