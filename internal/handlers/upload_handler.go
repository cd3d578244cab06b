package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ridercritic/internal/utils"
	"ridercritic/pkg/logger"
	"ridercritic/pkg/storage"
)

type UploadHandler struct {
	storage storage.Provider
	logger  *logger.Logger
}

func NewUploadHandler(provider storage.Provider, logger *logger.Logger) *UploadHandler {
	return &UploadHandler{
		storage: provider,
		logger:  logger,
	}
}

type uploadResult struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Key          string `json:"key"`
	Size         int64  `json:"size"`
}

// UploadImage stores an image and its generated thumbnail. Only JPEG and
// PNG are accepted, up to 5MB.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "file is required")
		return
	}

	if fileHeader.Size > utils.MaxImageSize {
		utils.BadRequestResponse(c, "File exceeds the 5MB limit")
		return
	}
	if !utils.IsAllowedImageExt(fileHeader.Filename) {
		utils.BadRequestResponse(c, "Only JPEG and PNG images are accepted")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.WithError(err).Error("Failed to open uploaded file")
		utils.InternalServerErrorResponse(c)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.WithError(err).Error("Failed to read uploaded file")
		utils.InternalServerErrorResponse(c)
		return
	}

	folder := c.DefaultPostForm("folder", "images")
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	key := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), ext)

	uploaded, err := h.storage.Upload(c.Request.Context(), &storage.UploadRequest{
		Key:          key,
		Reader:       bytes.NewReader(data),
		ContentType:  contentTypeForExt(ext),
		CacheControl: "public, max-age=31536000",
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to store image")
		utils.InternalServerErrorResponse(c)
		return
	}

	result := uploadResult{
		URL:  uploaded.URL,
		Key:  uploaded.Key,
		Size: fileHeader.Size,
	}

	// Thumbnail failures are non-fatal; the full-size image is already up.
	thumb, err := utils.MakeThumbnail(bytes.NewReader(data), fileHeader.Filename, utils.ThumbnailMaxWidth, utils.ThumbnailMaxHeight)
	if err != nil {
		if !errors.Is(err, utils.ErrUnsupportedImageFormat) {
			h.logger.WithError(err).Warn("Thumbnail generation failed")
		}
	} else {
		thumbKey := fmt.Sprintf("%s/thumbs/%s.jpg", folder, strings.TrimSuffix(filepath.Base(key), ext))
		thumbUploaded, err := h.storage.Upload(c.Request.Context(), &storage.UploadRequest{
			Key:          thumbKey,
			Reader:       bytes.NewReader(thumb),
			ContentType:  "image/jpeg",
			CacheControl: "public, max-age=31536000",
		})
		if err != nil {
			h.logger.WithError(err).Warn("Failed to store thumbnail")
		} else {
			result.ThumbnailURL = thumbUploaded.URL
		}
	}

	utils.CreatedResponse(c, "Image uploaded", result)
}

// DeleteImage removes an object by its storage key.
func (h *UploadHandler) DeleteImage(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		utils.BadRequestResponse(c, "key is required")
		return
	}

	if err := h.storage.Delete(c.Request.Context(), key); err != nil {
		h.logger.WithError(err).WithField("key", key).Error("Failed to delete object")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.NoContentResponse(c)
}

func contentTypeForExt(ext string) string {
	switch ext {
	case ".png":
		return "image/png"
	default:
		return "image/jpeg"
	}
}
