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
	"ridercritic/pkg/cache"
)

const motorcyclesCollection = "motorcycles"

const publishedMotorcyclesCacheKey = "motorcycles_published"

type motorcycleRepository struct {
	client *firestore.Client
	cache  cache.Cache
}

func NewMotorcycleRepository(client *firestore.Client, c cache.Cache) interfaces.MotorcycleRepository {
	return &motorcycleRepository{
		client: client,
		cache:  c,
	}
}

func (r *motorcycleRepository) Create(ctx context.Context, motorcycle *models.Motorcycle) error {
	motorcycle.ID = uuid.NewString()
	motorcycle.CreatedAt = time.Now()
	motorcycle.UpdatedAt = motorcycle.CreatedAt

	_, err := r.client.Collection(motorcyclesCollection).Doc(motorcycle.ID).Set(ctx, motorcycle)
	if err != nil {
		return fmt.Errorf("failed to create motorcycle: %w", err)
	}

	r.invalidate(ctx)

	return nil
}

func (r *motorcycleRepository) GetByID(ctx context.Context, id string) (*models.Motorcycle, error) {
	doc, err := r.client.Collection(motorcyclesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get motorcycle: %w", err)
	}

	var motorcycle models.Motorcycle
	if err := doc.DataTo(&motorcycle); err != nil {
		return nil, fmt.Errorf("failed to parse motorcycle: %w", err)
	}

	return &motorcycle, nil
}

// Update re-saves the full document, mirroring the admin form that always
// submits the complete record. Last write wins.
func (r *motorcycleRepository) Update(ctx context.Context, motorcycle *models.Motorcycle) error {
	motorcycle.UpdatedAt = time.Now()

	_, err := r.client.Collection(motorcyclesCollection).Doc(motorcycle.ID).Set(ctx, motorcycle)
	if err != nil {
		return fmt.Errorf("failed to update motorcycle: %w", err)
	}

	r.invalidate(ctx)

	return nil
}

func (r *motorcycleRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(motorcyclesCollection).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete motorcycle: %w", err)
	}

	r.invalidate(ctx)

	return nil
}

func (r *motorcycleRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Motorcycle, int64, error) {
	return r.list(ctx, r.client.Collection(motorcyclesCollection).Query, params)
}

func (r *motorcycleRepository) GetByBrand(ctx context.Context, brand string, params *utils.PaginationParams) ([]*models.Motorcycle, int64, error) {
	q := r.client.Collection(motorcyclesCollection).Where("brand", "==", brand)
	return r.list(ctx, q, params)
}

func (r *motorcycleRepository) list(ctx context.Context, q firestore.Query, params *utils.PaginationParams) ([]*models.Motorcycle, int64, error) {
	total, err := countDocs(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count motorcycles: %w", err)
	}

	var motorcycles []*models.Motorcycle
	err = iterDocs(ctx, params.ApplyToQuery(q), func(doc *firestore.DocumentSnapshot) error {
		var motorcycle models.Motorcycle
		if err := doc.DataTo(&motorcycle); err != nil {
			return fmt.Errorf("failed to parse motorcycle %s: %w", doc.Ref.ID, err)
		}
		motorcycles = append(motorcycles, &motorcycle)
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list motorcycles: %w", err)
	}

	return motorcycles, total, nil
}

func (r *motorcycleRepository) GetPublished(ctx context.Context, limit int) ([]*models.Motorcycle, error) {
	if r.cache != nil {
		var cached []*models.Motorcycle
		if err := r.cache.Get(ctx, publishedMotorcyclesCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	q := r.client.Collection(motorcyclesCollection).
		Where("status", "==", string(models.MotorcycleStatusPublished)).
		Limit(limit)

	var motorcycles []*models.Motorcycle
	err := iterDocs(ctx, q, func(doc *firestore.DocumentSnapshot) error {
		var motorcycle models.Motorcycle
		if err := doc.DataTo(&motorcycle); err != nil {
			return fmt.Errorf("failed to parse motorcycle %s: %w", doc.Ref.ID, err)
		}
		motorcycles = append(motorcycles, &motorcycle)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get published motorcycles: %w", err)
	}

	if r.cache != nil {
		_ = r.cache.Set(ctx, publishedMotorcyclesCacheKey, motorcycles, 5*time.Minute)
	}

	return motorcycles, nil
}

func (r *motorcycleRepository) invalidate(ctx context.Context) {
	if r.cache != nil {
		_ = r.cache.Delete(ctx, publishedMotorcyclesCacheKey)
	}
}
