package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ridercritic/internal/models"
	"ridercritic/internal/repositories/interfaces"
	"ridercritic/internal/utils"
	"ridercritic/pkg/logger"
)

type UserHandler struct {
	userRepo interfaces.UserRepository
	logger   *logger.Logger
}

func NewUserHandler(userRepo interfaces.UserRepository, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (h *UserHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, total, err := h.userRepo.List(c.Request.Context(), params)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list users")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Users retrieved", users, &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
	})
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userRepo.GetByUID(c.Request.Context(), c.Param("uid"))
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			utils.NotFoundResponse(c, "User")
			return
		}
		h.logger.WithError(err).Error("Failed to load user")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "User retrieved", user)
}

type updateRoleRequest struct {
	Role    models.Role    `json:"role" validate:"required"`
	SubRole models.SubRole `json:"sub_role"`
}

// UpdateRole changes a user's role. Both values are validated against the
// closed enums; free-form role strings are rejected.
func (h *UserHandler) UpdateRole(c *gin.Context) {
	var request updateRoleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if !models.ValidRole(request.Role) {
		utils.BadRequestResponse(c, "Unknown role: "+string(request.Role))
		return
	}
	if request.SubRole != "" && !models.ValidSubRole(request.SubRole) {
		utils.BadRequestResponse(c, "Unknown sub role: "+string(request.SubRole))
		return
	}

	user, err := h.userRepo.GetByUID(c.Request.Context(), c.Param("uid"))
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			utils.NotFoundResponse(c, "User")
			return
		}
		h.logger.WithError(err).Error("Failed to load user")
		utils.InternalServerErrorResponse(c)
		return
	}

	user.Role = request.Role
	if request.SubRole != "" {
		user.SubRole = request.SubRole
	}

	if err := h.userRepo.Update(c.Request.Context(), user); err != nil {
		h.logger.WithError(err).Error("Failed to update user role")
		utils.InternalServerErrorResponse(c)
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"uid":  user.UID,
		"role": string(user.Role),
	}).Info("User role updated")

	utils.SuccessResponse(c, "Role updated", user)
}
