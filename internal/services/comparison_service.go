package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"ridercritic/internal/models"
	"ridercritic/internal/repositories/interfaces"
	"ridercritic/pkg/logger"
)

type ComparisonService interface {
	Create(ctx context.Context, leftID, rightID, createdBy string) (*models.Comparison, error)
}

type comparisonService struct {
	comparisonRepo interfaces.ComparisonRepository
	motorcycleRepo interfaces.MotorcycleRepository
	logger         *logger.Logger
}

func NewComparisonService(
	comparisonRepo interfaces.ComparisonRepository,
	motorcycleRepo interfaces.MotorcycleRepository,
	logger *logger.Logger,
) ComparisonService {
	return &comparisonService{
		comparisonRepo: comparisonRepo,
		motorcycleRepo: motorcycleRepo,
		logger:         logger,
	}
}

// Create snapshots both motorcycles at save time. The snapshots keep the
// source document IDs, so later edits or deletes of the motorcycles leave
// saved comparisons readable.
func (s *comparisonService) Create(ctx context.Context, leftID, rightID, createdBy string) (*models.Comparison, error) {
	if leftID == rightID {
		return nil, fmt.Errorf("cannot compare a motorcycle with itself")
	}

	var left, right *models.Motorcycle

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		left, err = s.motorcycleRepo.GetByID(gctx, leftID)
		return err
	})
	g.Go(func() error {
		var err error
		right, err = s.motorcycleRepo.GetByID(gctx, rightID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load motorcycles: %w", err)
	}

	comparison := &models.Comparison{
		Left:      snapshotOf(left),
		Right:     snapshotOf(right),
		CreatedBy: createdBy,
	}

	if err := s.comparisonRepo.Create(ctx, comparison); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"comparison_id": comparison.ID,
		"left":          leftID,
		"right":         rightID,
	}).Info("Comparison saved")

	return comparison, nil
}

func snapshotOf(m *models.Motorcycle) models.MotorcycleSnapshot {
	return models.MotorcycleSnapshot{
		MotorcycleID: m.ID,
		Brand:        m.Brand,
		ModelName:    m.ModelName,
		ModelYear:    m.ModelYear,
		Category:     m.Category,
		CoverImage:   m.Images.Cover,
	}
}
