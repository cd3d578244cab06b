package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridercritic/internal/models"
	"ridercritic/internal/repositories/interfaces"
	"ridercritic/pkg/logger"
)

type recordingMotorcycleRepo struct {
	interfaces.MotorcycleRepository
	created   *models.Motorcycle
	deleted   []string
	deleteErr map[string]error
}

func (r *recordingMotorcycleRepo) Create(ctx context.Context, m *models.Motorcycle) error {
	r.created = m
	return nil
}

func (r *recordingMotorcycleRepo) Update(ctx context.Context, m *models.Motorcycle) error {
	return nil
}

func (r *recordingMotorcycleRepo) Delete(ctx context.Context, id string) error {
	if err, ok := r.deleteErr[id]; ok {
		return err
	}
	r.deleted = append(r.deleted, id)
	return nil
}

func TestCompletionPercentageEmpty(t *testing.T) {
	assert.Equal(t, 0.0, CompletionPercentage(&models.Motorcycle{}))
}

func TestCompletionPercentageGrowsWithFilledFields(t *testing.T) {
	sparse := &models.Motorcycle{Brand: "Honda", ModelName: "CB350"}
	fuller := &models.Motorcycle{
		Brand:     "Honda",
		ModelName: "CB350",
		Variant:   "DLX Pro",
		ModelYear: 2024,
		Category:  "Classic",
	}

	sparseScore := CompletionPercentage(sparse)
	fullerScore := CompletionPercentage(fuller)

	assert.Greater(t, sparseScore, 0.0)
	assert.Greater(t, fullerScore, sparseScore)
	assert.Less(t, fullerScore, 100.0)
}

func TestCreateDefaultsStatusAndRecomputesCompletion(t *testing.T) {
	repo := &recordingMotorcycleRepo{}
	svc := NewMotorcycleService(repo, logger.NewNop())

	m := &models.Motorcycle{
		Brand:     "Yamaha",
		ModelName: "MT-07",
		// Clients cannot set their own completion figure.
		DataCompletionPercentage: 99.9,
	}

	require.NoError(t, svc.Create(context.Background(), m))
	require.NotNil(t, repo.created)

	assert.Equal(t, models.MotorcycleStatusDraft, repo.created.Status)
	assert.NotEqual(t, 99.9, repo.created.DataCompletionPercentage)
	assert.Equal(t, CompletionPercentage(m), repo.created.DataCompletionPercentage)
}

func TestBulkDeleteRemovesAll(t *testing.T) {
	repo := &recordingMotorcycleRepo{}
	svc := NewMotorcycleService(repo, logger.NewNop())

	require.NoError(t, svc.BulkDelete(context.Background(), []string{"a", "b", "c"}))
	assert.ElementsMatch(t, []string{"a", "b", "c"}, repo.deleted)
}

func TestBulkDeleteReportsFailure(t *testing.T) {
	repo := &recordingMotorcycleRepo{
		deleteErr: map[string]error{"b": errors.New("permission denied")},
	}
	svc := NewMotorcycleService(repo, logger.NewNop())

	err := svc.BulkDelete(context.Background(), []string{"a", "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bulk delete failed")
}
