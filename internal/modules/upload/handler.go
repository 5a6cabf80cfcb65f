package upload

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/folio-space/core/internal/pkg/response"
	"github.com/folio-space/core/internal/pkg/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxImageSize = 10 << 20 // 10 MiB

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
}

type Handler struct {
	uploader storage.Uploader
	logger   *zap.Logger
}

func NewHandler(uploader storage.Uploader, logger *zap.Logger) *Handler {
	return &Handler{uploader: uploader, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/upload-image", authMW, h.uploadImage)
}

func (h *Handler) uploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	if fileHeader.Size > maxImageSize {
		response.BadRequest(c, "file too large")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	ext, ok := allowedTypes[strings.ToLower(contentType)]
	if !ok {
		response.BadRequest(c, "Only JPEG and PNG images are allowed")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "cannot read uploaded file")
		return
	}
	defer file.Close()

	payload, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		h.logger.Error("read upload", zap.Error(err))
		response.InternalError(c)
		return
	}
	if len(payload) > maxImageSize {
		response.BadRequest(c, "file too large")
		return
	}

	if orig := filepath.Ext(fileHeader.Filename); strings.EqualFold(orig, ".jpeg") {
		ext = ".jpeg"
	}
	name := uuid.NewString() + ext

	url, err := h.uploader.Upload(c.Request.Context(), name, payload, contentType)
	if err != nil {
		h.logger.Error("store upload", zap.String("name", name), zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"url": url})
}
