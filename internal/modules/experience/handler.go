package experience

import (
	"strconv"

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
	experiences := rg.Group("/experiences")
	experiences.GET("", h.list)

	authed := experiences.Group("", authMW)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	views, err := h.svc.List()
	if err != nil {
		h.logger.Error("list experiences", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, views)
}

func (h *Handler) create(c *gin.Context) {
	var dto ExperienceDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	row, err := h.svc.Create(&dto)
	if err != nil {
		h.logger.Error("create experience", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, row)
}

func (h *Handler) update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid experience id")
		return
	}
	var dto ExperienceDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	row, err := h.svc.Update(uint(id), &dto)
	if err != nil {
		h.logger.Error("update experience", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, row)
}

func (h *Handler) delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid experience id")
		return
	}
	if err := h.svc.Delete(uint(id)); err != nil {
		h.logger.Error("delete experience", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"ok": true})
}
