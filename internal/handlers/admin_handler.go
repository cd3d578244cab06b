package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"ridercritic/internal/clients/adminapi"
	"ridercritic/internal/utils"
	"ridercritic/pkg/logger"
)

// AdminHandler bridges the admin panel to the external REST backend. The
// caller's bearer token is forwarded as-is; this service never mints
// tokens for the remote API.
type AdminHandler struct {
	client *adminapi.Client
	logger *logger.Logger
}

func NewAdminHandler(client *adminapi.Client, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		client: client,
		logger: logger,
	}
}

type adminTokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AdminHandler) GetToken(c *gin.Context) {
	var request adminTokenRequest
	if err := c.ShouldBindJSON(&request); err != nil || request.Username == "" || request.Password == "" {
		utils.BadRequestResponse(c, "username and password are required")
		return
	}

	token, err := h.client.GetToken(c.Request.Context(), request.Username, request.Password)
	if err != nil {
		h.forwardError(c, err, "Failed to obtain admin token")
		return
	}

	utils.SuccessResponse(c, "Token issued", token)
}

func (h *AdminHandler) Me(c *gin.Context) {
	info, err := h.client.Me(c.Request.Context(), bearerFrom(c))
	if err != nil {
		h.forwardError(c, err, "Failed to load admin account")
		return
	}

	utils.SuccessResponse(c, "Account retrieved", info)
}

func (h *AdminHandler) ListResource(c *gin.Context) {
	params := adminapi.ListParams{
		Skip:  queryInt(c, "skip", 0),
		Limit: queryInt(c, "limit", utils.DefaultPageSize),
	}

	var (
		result json.RawMessage
		err    error
	)
	switch c.Param("resource") {
	case "brands":
		result, err = h.client.ListBrands(c.Request.Context(), bearerFrom(c), params)
	case "types":
		result, err = h.client.ListTypes(c.Request.Context(), bearerFrom(c), params)
	case "motorcycles":
		result, err = h.client.ListMotorcycles(c.Request.Context(), bearerFrom(c), params)
	default:
		utils.NotFoundResponse(c, "Resource")
		return
	}

	if err != nil {
		h.forwardError(c, err, "Failed to list admin resources")
		return
	}

	utils.SuccessResponse(c, "Resources retrieved", result)
}

func (h *AdminHandler) CreateResource(c *gin.Context) {
	path, ok := resourcePath(c.Param("resource"))
	if !ok {
		utils.NotFoundResponse(c, "Resource")
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	result, err := h.client.CreateResource(c.Request.Context(), path, bearerFrom(c), body)
	if err != nil {
		h.forwardError(c, err, "Failed to create admin resource")
		return
	}

	utils.CreatedResponse(c, "Resource created", result)
}

func (h *AdminHandler) UpdateResource(c *gin.Context) {
	path, ok := resourcePath(c.Param("resource"))
	if !ok {
		utils.NotFoundResponse(c, "Resource")
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	result, err := h.client.UpdateResource(c.Request.Context(), path+"/"+c.Param("id"), bearerFrom(c), body)
	if err != nil {
		h.forwardError(c, err, "Failed to update admin resource")
		return
	}

	utils.SuccessResponse(c, "Resource updated", result)
}

func (h *AdminHandler) DeleteResource(c *gin.Context) {
	path, ok := resourcePath(c.Param("resource"))
	if !ok {
		utils.NotFoundResponse(c, "Resource")
		return
	}

	if err := h.client.DeleteResource(c.Request.Context(), path+"/"+c.Param("id"), bearerFrom(c)); err != nil {
		h.forwardError(c, err, "Failed to delete admin resource")
		return
	}

	utils.NoContentResponse(c)
}

// forwardError maps upstream status codes onto our envelope instead of
// collapsing everything to 500.
func (h *AdminHandler) forwardError(c *gin.Context, err error, logMsg string) {
	var apiErr *adminapi.APIError
	if errors.As(err, &apiErr) {
		h.logger.WithError(err).Warn(logMsg)
		utils.ErrorResponse(c, apiErr.StatusCode, "UPSTREAM_ERROR", http.StatusText(apiErr.StatusCode))
		return
	}

	h.logger.WithError(err).Error(logMsg)
	utils.ErrorResponse(c, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", "Admin backend unavailable")
}

func resourcePath(resource string) (string, bool) {
	switch resource {
	case "brands", "types", "motorcycles":
		return "/api/" + resource, true
	}
	return "", false
}

func bearerFrom(c *gin.Context) string {
	return strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
}

func queryInt(c *gin.Context, key string, fallback int) int {
	value, err := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return value
}
