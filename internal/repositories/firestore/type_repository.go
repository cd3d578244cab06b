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

const typesCollection = "types"

type typeRepository struct {
	client *firestore.Client
}

func NewTypeRepository(client *firestore.Client) interfaces.TypeRepository {
	return &typeRepository{client: client}
}

func (r *typeRepository) Create(ctx context.Context, motoType *models.MotorcycleType) error {
	motoType.ID = uuid.NewString()
	motoType.CreatedAt = time.Now()
	motoType.UpdatedAt = motoType.CreatedAt

	_, err := r.client.Collection(typesCollection).Doc(motoType.ID).Set(ctx, motoType)
	if err != nil {
		return fmt.Errorf("failed to create type: %w", err)
	}

	return nil
}

func (r *typeRepository) GetByID(ctx context.Context, id string) (*models.MotorcycleType, error) {
	doc, err := r.client.Collection(typesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get type: %w", err)
	}

	var motoType models.MotorcycleType
	if err := doc.DataTo(&motoType); err != nil {
		return nil, fmt.Errorf("failed to parse type: %w", err)
	}

	return &motoType, nil
}

func (r *typeRepository) Update(ctx context.Context, motoType *models.MotorcycleType) error {
	motoType.UpdatedAt = time.Now()

	_, err := r.client.Collection(typesCollection).Doc(motoType.ID).Set(ctx, motoType)
	if err != nil {
		return fmt.Errorf("failed to update type: %w", err)
	}

	return nil
}

func (r *typeRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(typesCollection).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete type: %w", err)
	}

	return nil
}

func (r *typeRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.MotorcycleType, int64, error) {
	col := r.client.Collection(typesCollection)

	total, err := countDocs(ctx, col.Query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count types: %w", err)
	}

	var types []*models.MotorcycleType
	err = iterDocs(ctx, params.ApplyToQuery(col.Query), func(doc *firestore.DocumentSnapshot) error {
		var motoType models.MotorcycleType
		if err := doc.DataTo(&motoType); err != nil {
			return fmt.Errorf("failed to parse type %s: %w", doc.Ref.ID, err)
		}
		types = append(types, &motoType)
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list types: %w", err)
	}

	return types, total, nil
}
