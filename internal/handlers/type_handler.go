package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ridercritic/internal/models"
	"ridercritic/internal/repositories/interfaces"
	"ridercritic/internal/utils"
	"ridercritic/internal/validators"
	"ridercritic/pkg/logger"
)

type TypeHandler struct {
	typeRepo interfaces.TypeRepository
	logger   *logger.Logger
}

func NewTypeHandler(typeRepo interfaces.TypeRepository, logger *logger.Logger) *TypeHandler {
	return &TypeHandler{
		typeRepo: typeRepo,
		logger:   logger,
	}
}

func (h *TypeHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	types, total, err := h.typeRepo.List(c.Request.Context(), params)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list types")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Types retrieved", types, &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
	})
}

func (h *TypeHandler) Get(c *gin.Context) {
	motoType, err := h.typeRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			utils.NotFoundResponse(c, "Type")
			return
		}
		h.logger.WithError(err).Error("Failed to load type")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Type retrieved", motoType)
}

func (h *TypeHandler) Create(c *gin.Context) {
	var motoType models.MotorcycleType
	if err := c.ShouldBindJSON(&motoType); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if errs := validators.ValidateStruct(&motoType); errs != nil {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	if err := h.typeRepo.Create(c.Request.Context(), &motoType); err != nil {
		h.logger.WithError(err).Error("Failed to create type")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.CreatedResponse(c, "Type created", motoType)
}

func (h *TypeHandler) Update(c *gin.Context) {
	var motoType models.MotorcycleType
	if err := c.ShouldBindJSON(&motoType); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}
	motoType.ID = c.Param("id")

	if errs := validators.ValidateStruct(&motoType); errs != nil {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	if err := h.typeRepo.Update(c.Request.Context(), &motoType); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			utils.NotFoundResponse(c, "Type")
			return
		}
		h.logger.WithError(err).Error("Failed to update type")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Type updated", motoType)
}

func (h *TypeHandler) Delete(c *gin.Context) {
	if err := h.typeRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			utils.NotFoundResponse(c, "Type")
			return
		}
		h.logger.WithError(err).Error("Failed to delete type")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.NoContentResponse(c)
}
