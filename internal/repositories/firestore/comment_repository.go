package firestore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"ridercritic/internal/models"
	"ridercritic/internal/repositories/interfaces"
)

const commentsCollection = "comments"

type commentRepository struct {
	client *firestore.Client
}

func NewCommentRepository(client *firestore.Client) interfaces.CommentRepository {
	return &commentRepository{client: client}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	comment.ID = uuid.NewString()
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt

	_, err := r.client.Collection(commentsCollection).Doc(comment.ID).Set(ctx, comment)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

// GetByCriticID tries the indexed query first. Filtering by critic_id and
// ordering by created_at needs a composite index; when the index is missing
// Firestore rejects the query with FailedPrecondition and we fall back to an
// unordered scan sorted in memory.
func (r *commentRepository) GetByCriticID(ctx context.Context, criticID string, limit int) ([]*models.Comment, error) {
	q := r.client.Collection(commentsCollection).
		Where("critic_id", "==", criticID).
		OrderBy("created_at", firestore.Desc).
		Limit(limit)

	comments, err := r.readComments(ctx, q)
	if err == nil {
		return comments, nil
	}
	if status.Code(err) != codes.FailedPrecondition {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	fallback := r.client.Collection(commentsCollection).Where("critic_id", "==", criticID)
	comments, err = r.readComments(ctx, fallback)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	return SortAndLimitComments(comments, limit), nil
}

func (r *commentRepository) readComments(ctx context.Context, q firestore.Query) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := iterDocs(ctx, q, func(doc *firestore.DocumentSnapshot) error {
		var comment models.Comment
		if err := doc.DataTo(&comment); err != nil {
			return fmt.Errorf("failed to parse comment %s: %w", doc.Ref.ID, err)
		}
		comments = append(comments, &comment)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(commentsCollection).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return nil
}

// SortAndLimitComments orders comments newest-first and truncates to limit.
// It is the in-memory half of the composite index fallback.
func SortAndLimitComments(comments []*models.Comment, limit int) []*models.Comment {
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	if limit > 0 && len(comments) > limit {
		comments = comments[:limit]
	}
	return comments
}
