package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridercritic/internal/models"
	"ridercritic/internal/repositories/interfaces"
	"ridercritic/pkg/logger"
)

type stubMotorcycleLookup struct {
	interfaces.MotorcycleRepository
	byID map[string]*models.Motorcycle
}

func (s *stubMotorcycleLookup) GetByID(ctx context.Context, id string) (*models.Motorcycle, error) {
	m, ok := s.byID[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	return m, nil
}

type capturingComparisonRepo struct {
	interfaces.ComparisonRepository
	saved *models.Comparison
}

func (r *capturingComparisonRepo) Create(ctx context.Context, c *models.Comparison) error {
	r.saved = c
	return nil
}

func TestComparisonCreateSnapshotsBothSides(t *testing.T) {
	motorcycles := &stubMotorcycleLookup{byID: map[string]*models.Motorcycle{
		"left": {ID: "left", Brand: "Honda", ModelName: "CBR650R", ModelYear: 2024, Category: "Sport"},
		"right": {ID: "right", Brand: "Kawasaki", ModelName: "Ninja 650", ModelYear: 2023, Category: "Sport",
			Images: models.MotorcycleImages{Cover: "covers/ninja.jpg"}},
	}}
	repo := &capturingComparisonRepo{}
	svc := NewComparisonService(repo, motorcycles, logger.NewNop())

	comparison, err := svc.Create(context.Background(), "left", "right", "user-1")
	require.NoError(t, err)
	require.NotNil(t, repo.saved)

	assert.Equal(t, "left", comparison.Left.MotorcycleID)
	assert.Equal(t, "Honda", comparison.Left.Brand)
	assert.Equal(t, "right", comparison.Right.MotorcycleID)
	assert.Equal(t, "covers/ninja.jpg", comparison.Right.CoverImage)
	assert.Equal(t, "user-1", comparison.CreatedBy)
}

func TestComparisonCreateRejectsSameMotorcycle(t *testing.T) {
	svc := NewComparisonService(&capturingComparisonRepo{}, &stubMotorcycleLookup{}, logger.NewNop())

	_, err := svc.Create(context.Background(), "same", "same", "user-1")
	require.Error(t, err)
}

func TestComparisonCreateFailsWhenMotorcycleMissing(t *testing.T) {
	motorcycles := &stubMotorcycleLookup{byID: map[string]*models.Motorcycle{
		"left": {ID: "left", Brand: "Honda", ModelName: "CBR650R"},
	}}
	svc := NewComparisonService(&capturingComparisonRepo{}, motorcycles, logger.NewNop())

	_, err := svc.Create(context.Background(), "left", "missing", "user-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}
