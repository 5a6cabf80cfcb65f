package certificate

import (
	"errors"
	"fmt"

	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    *Service
	logger *zap.Logger
}

func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	certs := rg.Group("/certificates")
	certs.GET("", h.list)
	certs.POST("/upload", authMW, h.upload)
}

func (h *Handler) list(c *gin.Context) {
	rows, err := h.svc.List()
	if err != nil {
		h.logger.Error("list certificates", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, rows)
}

func (h *Handler) upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "cannot read uploaded file")
		return
	}
	defer file.Close()

	inserted, err := h.svc.ImportCSV(file)
	if err != nil {
		if errors.Is(err, ErrBadCSV) {
			response.BadRequest(c, "invalid CSV file")
			return
		}
		h.logger.Error("import certificates", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"msg": fmt.Sprintf("Uploaded %d certificates", inserted)})
}
