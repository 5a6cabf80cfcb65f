package stats

import (
	"github.com/folio-space/core/internal/pkg/pagination"
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
	rg.GET("/stats", h.summary)
	rg.GET("/analytics", authMW, h.list)
}

func (h *Handler) summary(c *gin.Context) {
	out, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		h.logger.Error("aggregate stats", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, out)
}

func (h *Handler) list(c *gin.Context) {
	rows, page, err := h.svc.List(pagination.FromContext(c))
	if err != nil {
		h.logger.Error("list analytics", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Paged(c, rows, page)
}
