package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"ridercritic/internal/models"
	"ridercritic/internal/repositories/interfaces"
	"ridercritic/pkg/logger"
)

type MotorcycleService interface {
	Create(ctx context.Context, motorcycle *models.Motorcycle) error
	Update(ctx context.Context, motorcycle *models.Motorcycle) error
	BulkDelete(ctx context.Context, ids []string) error
}

type motorcycleService struct {
	motorcycleRepo interfaces.MotorcycleRepository
	logger         *logger.Logger
}

func NewMotorcycleService(motorcycleRepo interfaces.MotorcycleRepository, logger *logger.Logger) MotorcycleService {
	return &motorcycleService{
		motorcycleRepo: motorcycleRepo,
		logger:         logger,
	}
}

func (s *motorcycleService) Create(ctx context.Context, motorcycle *models.Motorcycle) error {
	if motorcycle.Status == "" {
		motorcycle.Status = models.MotorcycleStatusDraft
	}
	motorcycle.DataCompletionPercentage = CompletionPercentage(motorcycle)

	if err := s.motorcycleRepo.Create(ctx, motorcycle); err != nil {
		return err
	}

	s.logger.WithField("motorcycle_id", motorcycle.ID).Info("Motorcycle created")
	return nil
}

func (s *motorcycleService) Update(ctx context.Context, motorcycle *models.Motorcycle) error {
	if motorcycle.Status == "" {
		motorcycle.Status = models.MotorcycleStatusDraft
	}
	motorcycle.DataCompletionPercentage = CompletionPercentage(motorcycle)

	return s.motorcycleRepo.Update(ctx, motorcycle)
}

// BulkDelete fans out one delete per document and aborts on the first
// failure. Deleted documents stay deleted; an undo that re-creates records
// under fresh IDs would dangle every comparison snapshot pointing at the
// old ID, so none is offered.
func (s *motorcycleService) BulkDelete(ctx context.Context, ids []string) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			return s.motorcycleRepo.Delete(gctx, id)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("bulk delete failed: %w", err)
	}

	s.logger.WithField("count", len(ids)).Info("Motorcycles bulk deleted")
	return nil
}

// CompletionPercentage is the share of trackable specification fields that
// are filled in, as shown on the admin form. It is recomputed on every save
// and never accepted from the client.
func CompletionPercentage(m *models.Motorcycle) float64 {
	checks := []bool{
		m.Brand != "",
		m.ModelName != "",
		m.Variant != "",
		m.ModelYear > 0,
		m.Category != "",

		m.Engine.Type != "",
		m.Engine.Displacement > 0,
		m.Engine.BoreStroke != "",
		m.Engine.CompressionRatio != "",
		m.Engine.ValvesPerCyl > 0,
		m.Engine.Cooling != "",
		m.Engine.FuelSystem != "",
		m.Engine.Ignition != "",
		m.Engine.Starter != "",

		m.Performance.MaxPower != "",
		m.Performance.MaxTorque != "",
		m.Performance.TopSpeed > 0,
		m.Performance.Mileage > 0,
		m.Performance.Acceleration != "",

		m.Transmission.Gearbox != "",
		m.Transmission.Clutch != "",
		m.Transmission.FinalDrive != "",

		len(m.Electronics.RidingModes) > 0,
		m.Electronics.Display != "",
		m.Electronics.Connectivity != "",

		m.Chassis.FrameType != "",
		m.Chassis.FrontSuspension != "",
		m.Chassis.RearSuspension != "",
		m.Chassis.FrontTyre != "",
		m.Chassis.RearTyre != "",
		m.Chassis.WheelType != "",

		m.Brakes.FrontBrake != "",
		m.Brakes.RearBrake != "",
		m.Brakes.ABS != "",

		m.Dimensions.Length > 0,
		m.Dimensions.Width > 0,
		m.Dimensions.Height > 0,
		m.Dimensions.Wheelbase > 0,
		m.Dimensions.GroundClearance > 0,
		m.Dimensions.SeatHeight > 0,
		m.Dimensions.KerbWeight > 0,
		m.Dimensions.FuelCapacity > 0,

		m.Pricing.ExShowroomPrice > 0,
		m.Pricing.Currency != "",

		len(m.Colors) > 0,
		m.Images.Cover != "",
		len(m.Images.Gallery) > 0,
		len(m.Features) > 0,

		m.Summary != "",
		m.MetaTitle != "",
		m.MetaDescription != "",
	}

	filled := 0
	for _, ok := range checks {
		if ok {
			filled++
		}
	}

	return float64(filled) / float64(len(checks)) * 100
}
