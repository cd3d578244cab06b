package services

import (
	"context"
	"fmt"

	"ridercritic/internal/models"
	"ridercritic/internal/repositories/interfaces"
	"ridercritic/pkg/logger"
)

type CriticService interface {
	Create(ctx context.Context, critic *models.Critic) error
	SetStatus(ctx context.Context, id string, status models.ApprovalStatus) error
}

type criticService struct {
	criticRepo interfaces.CriticRepository
	logger     *logger.Logger
}

func NewCriticService(criticRepo interfaces.CriticRepository, logger *logger.Logger) CriticService {
	return &criticService{
		criticRepo: criticRepo,
		logger:     logger,
	}
}

func (s *criticService) Create(ctx context.Context, critic *models.Critic) error {
	if critic.Kind == "" {
		critic.Kind = models.CriticKindReview
	}

	if err := s.criticRepo.Create(ctx, critic); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"critic_id": critic.ID,
		"kind":      string(critic.Kind),
	}).Info("Critic submitted")

	return nil
}

func (s *criticService) SetStatus(ctx context.Context, id string, status models.ApprovalStatus) error {
	switch status {
	case models.ApprovalStatusApproved, models.ApprovalStatusRejected, models.ApprovalStatusPending:
	default:
		return fmt.Errorf("invalid approval status: %s", status)
	}

	if err := s.criticRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"critic_id": id,
		"status":    string(status),
	}).Info("Critic status updated")

	return nil
}
