package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ridercritic/internal/middleware"
	"ridercritic/internal/repositories/interfaces"
	"ridercritic/internal/services"
	"ridercritic/internal/utils"
	"ridercritic/pkg/logger"
)

type ComparisonHandler struct {
	comparisonService services.ComparisonService
	comparisonRepo    interfaces.ComparisonRepository
	logger            *logger.Logger
}

func NewComparisonHandler(
	comparisonService services.ComparisonService,
	comparisonRepo interfaces.ComparisonRepository,
	logger *logger.Logger,
) *ComparisonHandler {
	return &ComparisonHandler{
		comparisonService: comparisonService,
		comparisonRepo:    comparisonRepo,
		logger:            logger,
	}
}

type createComparisonRequest struct {
	LeftID  string `json:"left_id" validate:"required"`
	RightID string `json:"right_id" validate:"required"`
}

// Create snapshots the two motorcycles and stores the comparison. Saved
// comparisons are immutable.
func (h *ComparisonHandler) Create(c *gin.Context) {
	var request createComparisonRequest
	if err := c.ShouldBindJSON(&request); err != nil || request.LeftID == "" || request.RightID == "" {
		utils.BadRequestResponse(c, "left_id and right_id are required")
		return
	}

	createdBy := c.GetString(middleware.ContextUserUID)

	comparison, err := h.comparisonService.Create(c.Request.Context(), request.LeftID, request.RightID, createdBy)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			utils.NotFoundResponse(c, "Motorcycle")
			return
		}
		h.logger.WithError(err).Warn("Failed to create comparison")
		utils.BadRequestResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, "Comparison saved", comparison)
}

func (h *ComparisonHandler) Get(c *gin.Context) {
	comparison, err := h.comparisonRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			utils.NotFoundResponse(c, "Comparison")
			return
		}
		h.logger.WithError(err).Error("Failed to load comparison")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Comparison retrieved", comparison)
}

func (h *ComparisonHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	comparisons, total, err := h.comparisonRepo.List(c.Request.Context(), params)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list comparisons")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Comparisons retrieved", comparisons, &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
	})
}

// ListMine returns the comparisons saved by the authenticated user.
func (h *ComparisonHandler) ListMine(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	uid := c.GetString(middleware.ContextUserUID)

	comparisons, total, err := h.comparisonRepo.ListByCreator(c.Request.Context(), uid, params)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list user comparisons")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Comparisons retrieved", comparisons, &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
	})
}
