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

const brandsCollection = "brands"

const brandsCacheKey = "brands_all"

type brandRepository struct {
	client *firestore.Client
	cache  cache.Cache
}

func NewBrandRepository(client *firestore.Client, c cache.Cache) interfaces.BrandRepository {
	return &brandRepository{
		client: client,
		cache:  c,
	}
}

func (r *brandRepository) Create(ctx context.Context, brand *models.Brand) error {
	brand.ID = uuid.NewString()
	brand.CreatedAt = time.Now()
	brand.UpdatedAt = brand.CreatedAt

	_, err := r.client.Collection(brandsCollection).Doc(brand.ID).Set(ctx, brand)
	if err != nil {
		return fmt.Errorf("failed to create brand: %w", err)
	}

	r.invalidate(ctx)

	return nil
}

func (r *brandRepository) GetByID(ctx context.Context, id string) (*models.Brand, error) {
	doc, err := r.client.Collection(brandsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}

	var brand models.Brand
	if err := doc.DataTo(&brand); err != nil {
		return nil, fmt.Errorf("failed to parse brand: %w", err)
	}

	return &brand, nil
}

// Update replaces the whole document. Last write wins; there is no
// optimistic concurrency on admin records.
func (r *brandRepository) Update(ctx context.Context, brand *models.Brand) error {
	brand.UpdatedAt = time.Now()

	_, err := r.client.Collection(brandsCollection).Doc(brand.ID).Set(ctx, brand)
	if err != nil {
		return fmt.Errorf("failed to update brand: %w", err)
	}

	r.invalidate(ctx)

	return nil
}

func (r *brandRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(brandsCollection).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete brand: %w", err)
	}

	r.invalidate(ctx)

	return nil
}

func (r *brandRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Brand, int64, error) {
	col := r.client.Collection(brandsCollection)

	total, err := countDocs(ctx, col.Query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count brands: %w", err)
	}

	var brands []*models.Brand
	err = iterDocs(ctx, params.ApplyToQuery(col.Query), func(doc *firestore.DocumentSnapshot) error {
		var brand models.Brand
		if err := doc.DataTo(&brand); err != nil {
			return fmt.Errorf("failed to parse brand %s: %w", doc.Ref.ID, err)
		}
		brands = append(brands, &brand)
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list brands: %w", err)
	}

	return brands, total, nil
}

func (r *brandRepository) GetAll(ctx context.Context) ([]*models.Brand, error) {
	if r.cache != nil {
		var cached []*models.Brand
		if err := r.cache.Get(ctx, brandsCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	var brands []*models.Brand
	err := iterDocs(ctx, r.client.Collection(brandsCollection).Query, func(doc *firestore.DocumentSnapshot) error {
		var brand models.Brand
		if err := doc.DataTo(&brand); err != nil {
			return fmt.Errorf("failed to parse brand %s: %w", doc.Ref.ID, err)
		}
		brands = append(brands, &brand)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get brands: %w", err)
	}

	if r.cache != nil {
		_ = r.cache.Set(ctx, brandsCacheKey, brands, 5*time.Minute)
	}

	return brands, nil
}

func (r *brandRepository) invalidate(ctx context.Context) {
	if r.cache != nil {
		_ = r.cache.Delete(ctx, brandsCacheKey)
	}
}
