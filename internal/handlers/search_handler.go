package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridercritic/internal/models"
	"ridercritic/internal/services"
	"ridercritic/pkg/logger"
)

type SearchHandler struct {
	suggestService services.SuggestService
	logger         *logger.Logger
}

func NewSearchHandler(suggestService services.SuggestService, logger *logger.Logger) *SearchHandler {
	return &SearchHandler{
		suggestService: suggestService,
		logger:         logger,
	}
}

type suggestResponse struct {
	Suggestions []models.Suggestion `json:"suggestions"`
	Error       string              `json:"error,omitempty"`
}

// Suggest serves the search box dropdown. The endpoint always answers 200:
// on a backend failure the client gets an empty list with an error marker
// so the search box degrades instead of breaking.
func (h *SearchHandler) Suggest(c *gin.Context) {
	query := c.Query("q")

	suggestions, err := h.suggestService.Suggest(c.Request.Context(), query)
	if err != nil {
		h.logger.WithError(err).WithField("query", query).Error("Suggestion lookup failed")
		c.JSON(http.StatusOK, suggestResponse{
			Suggestions: []models.Suggestion{},
			Error:       "failed",
		})
		return
	}

	c.JSON(http.StatusOK, suggestResponse{Suggestions: suggestions})
}
