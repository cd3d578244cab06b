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

const criticsCollection = "critics"

type criticRepository struct {
	client *firestore.Client
}

func NewCriticRepository(client *firestore.Client) interfaces.CriticRepository {
	return &criticRepository{client: client}
}

func (r *criticRepository) Create(ctx context.Context, critic *models.Critic) error {
	critic.ID = uuid.NewString()
	critic.Status = models.ApprovalStatusPending
	critic.CreatedAt = time.Now()
	critic.UpdatedAt = critic.CreatedAt

	_, err := r.client.Collection(criticsCollection).Doc(critic.ID).Set(ctx, critic)
	if err != nil {
		return fmt.Errorf("failed to create critic: %w", err)
	}

	return nil
}

func (r *criticRepository) GetByID(ctx context.Context, id string) (*models.Critic, error) {
	doc, err := r.client.Collection(criticsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get critic: %w", err)
	}

	var critic models.Critic
	if err := doc.DataTo(&critic); err != nil {
		return nil, fmt.Errorf("failed to parse critic: %w", err)
	}

	return &critic, nil
}

func (r *criticRepository) Update(ctx context.Context, critic *models.Critic) error {
	critic.UpdatedAt = time.Now()

	_, err := r.client.Collection(criticsCollection).Doc(critic.ID).Set(ctx, critic)
	if err != nil {
		return fmt.Errorf("failed to update critic: %w", err)
	}

	return nil
}

func (r *criticRepository) UpdateStatus(ctx context.Context, id string, approvalStatus models.ApprovalStatus) error {
	_, err := r.client.Collection(criticsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(approvalStatus)},
		{Path: "updated_at", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return interfaces.ErrNotFound
		}
		return fmt.Errorf("failed to update critic status: %w", err)
	}

	return nil
}

func (r *criticRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(criticsCollection).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete critic: %w", err)
	}

	return nil
}

func (r *criticRepository) List(ctx context.Context, kind models.CriticKind, approvalStatus models.ApprovalStatus, params *utils.PaginationParams) ([]*models.Critic, int64, error) {
	q := r.client.Collection(criticsCollection).Query
	if kind != "" {
		q = q.Where("kind", "==", string(kind))
	}
	if approvalStatus != "" {
		q = q.Where("status", "==", string(approvalStatus))
	}

	total, err := countDocs(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count critics: %w", err)
	}

	var critics []*models.Critic
	err = iterDocs(ctx, params.ApplyToQuery(q), func(doc *firestore.DocumentSnapshot) error {
		var critic models.Critic
		if err := doc.DataTo(&critic); err != nil {
			return fmt.Errorf("failed to parse critic %s: %w", doc.Ref.ID, err)
		}
		critics = append(critics, &critic)
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list critics: %w", err)
	}

	return critics, total, nil
}

func (r *criticRepository) GetApproved(ctx context.Context, limit int) ([]*models.Critic, error) {
	q := r.client.Collection(criticsCollection).
		Where("status", "==", string(models.ApprovalStatusApproved)).
		Limit(limit)

	var critics []*models.Critic
	err := iterDocs(ctx, q, func(doc *firestore.DocumentSnapshot) error {
		var critic models.Critic
		if err := doc.DataTo(&critic); err != nil {
			return fmt.Errorf("failed to parse critic %s: %w", doc.Ref.ID, err)
		}
		critics = append(critics, &critic)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get approved critics: %w", err)
	}

	return critics, nil
}
