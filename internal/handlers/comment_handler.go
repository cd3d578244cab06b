package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"ridercritic/internal/middleware"
	"ridercritic/internal/models"
	"ridercritic/internal/repositories/interfaces"
	"ridercritic/internal/utils"
	"ridercritic/internal/validators"
	"ridercritic/pkg/logger"
)

const defaultCommentLimit = 50

type CommentHandler struct {
	commentRepo interfaces.CommentRepository
	logger      *logger.Logger
}

func NewCommentHandler(commentRepo interfaces.CommentRepository, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// ListByCritic returns the newest comments on a critic.
func (h *CommentHandler) ListByCritic(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultCommentLimit)))
	if limit <= 0 || limit > utils.MaxPageSize {
		limit = defaultCommentLimit
	}

	comments, err := h.commentRepo.GetByCriticID(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list comments")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Comments retrieved", comments, &utils.Meta{
		Count: len(comments),
	})
}

func (h *CommentHandler) Create(c *gin.Context) {
	var comment models.Comment
	if err := c.ShouldBindJSON(&comment); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}
	comment.CriticID = c.Param("id")
	if uid := c.GetString(middleware.ContextUserUID); uid != "" {
		comment.UserUID = uid
	}

	if errs := validators.ValidateStruct(&comment); errs != nil {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	if err := h.commentRepo.Create(c.Request.Context(), &comment); err != nil {
		h.logger.WithError(err).Error("Failed to create comment")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.CreatedResponse(c, "Comment posted", comment)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.commentRepo.Delete(c.Request.Context(), c.Param("commentId")); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			utils.NotFoundResponse(c, "Comment")
			return
		}
		h.logger.WithError(err).Error("Failed to delete comment")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.NoContentResponse(c)
}
