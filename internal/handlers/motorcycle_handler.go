package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ridercritic/internal/models"
	"ridercritic/internal/repositories/interfaces"
	"ridercritic/internal/services"
	"ridercritic/internal/utils"
	"ridercritic/internal/validators"
	"ridercritic/pkg/logger"
)

type MotorcycleHandler struct {
	motorcycleService services.MotorcycleService
	motorcycleRepo    interfaces.MotorcycleRepository
	logger            *logger.Logger
}

func NewMotorcycleHandler(
	motorcycleService services.MotorcycleService,
	motorcycleRepo interfaces.MotorcycleRepository,
	logger *logger.Logger,
) *MotorcycleHandler {
	return &MotorcycleHandler{
		motorcycleService: motorcycleService,
		motorcycleRepo:    motorcycleRepo,
		logger:            logger,
	}
}

func (h *MotorcycleHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	var (
		motorcycles []*models.Motorcycle
		total       int64
		err         error
	)

	if brand := c.Query("brand"); brand != "" {
		motorcycles, total, err = h.motorcycleRepo.GetByBrand(c.Request.Context(), brand, params)
	} else {
		motorcycles, total, err = h.motorcycleRepo.List(c.Request.Context(), params)
	}

	if err != nil {
		h.logger.WithError(err).Error("Failed to list motorcycles")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Motorcycles retrieved", motorcycles, &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
	})
}

func (h *MotorcycleHandler) Get(c *gin.Context) {
	motorcycle, err := h.motorcycleRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			utils.NotFoundResponse(c, "Motorcycle")
			return
		}
		h.logger.WithError(err).Error("Failed to load motorcycle")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Motorcycle retrieved", motorcycle)
}

func (h *MotorcycleHandler) Create(c *gin.Context) {
	var motorcycle models.Motorcycle
	if err := c.ShouldBindJSON(&motorcycle); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if errs := validators.ValidateStruct(&motorcycle); errs != nil {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	if err := h.motorcycleService.Create(c.Request.Context(), &motorcycle); err != nil {
		h.logger.WithError(err).Error("Failed to create motorcycle")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.CreatedResponse(c, "Motorcycle created", motorcycle)
}

func (h *MotorcycleHandler) Update(c *gin.Context) {
	var motorcycle models.Motorcycle
	if err := c.ShouldBindJSON(&motorcycle); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}
	motorcycle.ID = c.Param("id")

	if errs := validators.ValidateStruct(&motorcycle); errs != nil {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	if err := h.motorcycleService.Update(c.Request.Context(), &motorcycle); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			utils.NotFoundResponse(c, "Motorcycle")
			return
		}
		h.logger.WithError(err).Error("Failed to update motorcycle")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Motorcycle updated", motorcycle)
}

func (h *MotorcycleHandler) Delete(c *gin.Context) {
	if err := h.motorcycleRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			utils.NotFoundResponse(c, "Motorcycle")
			return
		}
		h.logger.WithError(err).Error("Failed to delete motorcycle")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.NoContentResponse(c)
}

type bulkDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// BulkDelete removes the selected documents. The operation is permanent.
func (h *MotorcycleHandler) BulkDelete(c *gin.Context) {
	var request bulkDeleteRequest
	if err := c.ShouldBindJSON(&request); err != nil || len(request.IDs) == 0 {
		utils.BadRequestResponse(c, "ids is required")
		return
	}

	if err := h.motorcycleService.BulkDelete(c.Request.Context(), request.IDs); err != nil {
		h.logger.WithError(err).Error("Bulk delete failed")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Motorcycles deleted", gin.H{"deleted": len(request.IDs)})
}
