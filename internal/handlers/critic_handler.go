package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ridercritic/internal/middleware"
	"ridercritic/internal/models"
	"ridercritic/internal/repositories/interfaces"
	"ridercritic/internal/services"
	"ridercritic/internal/utils"
	"ridercritic/internal/validators"
	"ridercritic/pkg/logger"
)

type CriticHandler struct {
	criticService services.CriticService
	criticRepo    interfaces.CriticRepository
	logger        *logger.Logger
}

func NewCriticHandler(criticService services.CriticService, criticRepo interfaces.CriticRepository, logger *logger.Logger) *CriticHandler {
	return &CriticHandler{
		criticService: criticService,
		criticRepo:    criticRepo,
		logger:        logger,
	}
}

// List filters by the optional kind and status query params. Public
// listings should pass status=approved; the admin panel lists everything.
func (h *CriticHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	kind := models.CriticKind(c.Query("kind"))
	status := models.ApprovalStatus(c.Query("status"))

	critics, total, err := h.criticRepo.List(c.Request.Context(), kind, status, params)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list critics")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Critics retrieved", critics, &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
	})
}

func (h *CriticHandler) Get(c *gin.Context) {
	critic, err := h.criticRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			utils.NotFoundResponse(c, "Critic")
			return
		}
		h.logger.WithError(err).Error("Failed to load critic")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Critic retrieved", critic)
}

// Create accepts public submissions. New entries always start pending
// regardless of the submitted status.
func (h *CriticHandler) Create(c *gin.Context) {
	var critic models.Critic
	if err := c.ShouldBindJSON(&critic); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if critic.Kind == "" {
		critic.Kind = models.CriticKindReview
	}
	if uid := c.GetString(middleware.ContextUserUID); uid != "" {
		critic.AuthorUID = uid
	}

	if errs := validators.ValidateStruct(&critic); errs != nil {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	if err := h.criticService.Create(c.Request.Context(), &critic); err != nil {
		h.logger.WithError(err).Error("Failed to create critic")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.CreatedResponse(c, "Submission received and pending review", critic)
}

func (h *CriticHandler) Update(c *gin.Context) {
	var critic models.Critic
	if err := c.ShouldBindJSON(&critic); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}
	critic.ID = c.Param("id")

	if errs := validators.ValidateStruct(&critic); errs != nil {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	if err := h.criticRepo.Update(c.Request.Context(), &critic); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			utils.NotFoundResponse(c, "Critic")
			return
		}
		h.logger.WithError(err).Error("Failed to update critic")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Critic updated", critic)
}

type setStatusRequest struct {
	Status models.ApprovalStatus `json:"status" validate:"required"`
}

// SetStatus moves a submission through the moderation pipeline.
func (h *CriticHandler) SetStatus(c *gin.Context) {
	var request setStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil || request.Status == "" {
		utils.BadRequestResponse(c, "status is required")
		return
	}

	if err := h.criticService.SetStatus(c.Request.Context(), c.Param("id"), request.Status); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			utils.NotFoundResponse(c, "Critic")
			return
		}
		utils.BadRequestResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, "Status updated", gin.H{"id": c.Param("id"), "status": request.Status})
}

func (h *CriticHandler) Delete(c *gin.Context) {
	if err := h.criticRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			utils.NotFoundResponse(c, "Critic")
			return
		}
		h.logger.WithError(err).Error("Failed to delete critic")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.NoContentResponse(c)
}
