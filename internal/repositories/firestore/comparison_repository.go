package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"ridercritic/internal/models"
	"ridercritic/internal/repositories/interfaces"
	"ridercritic/internal/utils"
)

const comparisonsCollection = "comparisons"

type comparisonRepository struct {
	client *firestore.Client
}

func NewComparisonRepository(client *firestore.Client) interfaces.ComparisonRepository {
	return &comparisonRepository{client: client}
}

func (r *comparisonRepository) Create(ctx context.Context, comparison *models.Comparison) error {
	comparison.ID = uuid.NewString()
	comparison.CreatedAt = time.Now()

	_, err := r.client.Collection(comparisonsCollection).Doc(comparison.ID).Set(ctx, comparison)
	if err != nil {
		return fmt.Errorf("failed to create comparison: %w", err)
	}

	return nil
}

func (r *comparisonRepository) GetByID(ctx context.Context, id string) (*models.Comparison, error) {
	doc, err := r.client.Collection(comparisonsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get comparison: %w", err)
	}

	var comparison models.Comparison
	if err := doc.DataTo(&comparison); err != nil {
		return nil, fmt.Errorf("failed to parse comparison: %w", err)
	}

	return &comparison, nil
}

func (r *comparisonRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Comparison, int64, error) {
	return r.list(ctx, r.client.Collection(comparisonsCollection).Query, params)
}

func (r *comparisonRepository) ListByCreator(ctx context.Context, uid string, params *utils.PaginationParams) ([]*models.Comparison, int64, error) {
	q := r.client.Collection(comparisonsCollection).Where("created_by", "==", uid)
	return r.list(ctx, q, params)
}

func (r *comparisonRepository) list(ctx context.Context, q firestore.Query, params *utils.PaginationParams) ([]*models.Comparison, int64, error) {
	total, err := countDocs(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count comparisons: %w", err)
	}

	var comparisons []*models.Comparison
	err = iterDocs(ctx, params.ApplyToQuery(q), func(doc *firestore.DocumentSnapshot) error {
		var comparison models.Comparison
		if err := doc.DataTo(&comparison); err != nil {
			return fmt.Errorf("failed to parse comparison %s: %w", doc.Ref.ID, err)
		}
		comparisons = append(comparisons, &comparison)
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list comparisons: %w", err)
	}

	return comparisons, total, nil
}
