package about

import (
	"github.com/folio-space/core/internal/models"
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
	rg.GET("/about-content", h.get)
	rg.PUT("/about-content", authMW, h.update)
}

func (h *Handler) get(c *gin.Context) {
	content, err := h.svc.Get()
	if err != nil {
		h.logger.Error("get about content", zap.Error(err))
		response.InternalError(c)
		return
	}
	if content == nil {
		response.OK(c, models.AboutContentModel{})
		return
	}
	response.OK(c, content)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateAboutContentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	content, err := h.svc.Upsert(&dto)
	if err != nil {
		h.logger.Error("update about content", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, content)
}
