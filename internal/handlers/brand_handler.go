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

type BrandHandler struct {
	brandRepo interfaces.BrandRepository
	logger    *logger.Logger
}

func NewBrandHandler(brandRepo interfaces.BrandRepository, logger *logger.Logger) *BrandHandler {
	return &BrandHandler{
		brandRepo: brandRepo,
		logger:    logger,
	}
}

func (h *BrandHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	brands, total, err := h.brandRepo.List(c.Request.Context(), params)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list brands")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Brands retrieved", brands, &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
	})
}

func (h *BrandHandler) Get(c *gin.Context) {
	brand, err := h.brandRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			utils.NotFoundResponse(c, "Brand")
			return
		}
		h.logger.WithError(err).Error("Failed to load brand")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Brand retrieved", brand)
}

func (h *BrandHandler) Create(c *gin.Context) {
	var brand models.Brand
	if err := c.ShouldBindJSON(&brand); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if errs := validators.ValidateStruct(&brand); errs != nil {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	if err := h.brandRepo.Create(c.Request.Context(), &brand); err != nil {
		h.logger.WithError(err).Error("Failed to create brand")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.CreatedResponse(c, "Brand created", brand)
}

func (h *BrandHandler) Update(c *gin.Context) {
	var brand models.Brand
	if err := c.ShouldBindJSON(&brand); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}
	brand.ID = c.Param("id")

	if errs := validators.ValidateStruct(&brand); errs != nil {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	if err := h.brandRepo.Update(c.Request.Context(), &brand); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			utils.NotFoundResponse(c, "Brand")
			return
		}
		h.logger.WithError(err).Error("Failed to update brand")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Brand updated", brand)
}

func (h *BrandHandler) Delete(c *gin.Context) {
	if err := h.brandRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			utils.NotFoundResponse(c, "Brand")
			return
		}
		h.logger.WithError(err).Error("Failed to delete brand")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.NoContentResponse(c)
}
