package service

import (
	"strconv"

	"github.com/folio-space/core/internal/middleware"
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
	services := rg.Group("/services")
	services.GET("", h.list)

	authed := services.Group("", authMW)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	includeInactive := c.Query("all") == "true" && middleware.IsAuthenticated(c)
	services, err := h.svc.List(includeInactive)
	if err != nil {
		h.logger.Error("list services", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, services)
}

func (h *Handler) create(c *gin.Context) {
	var dto ServiceDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	svc, err := h.svc.Create(&dto)
	if err != nil {
		h.logger.Error("create service", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, svc)
}

func (h *Handler) update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid service id")
		return
	}
	var dto ServiceDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	svc, err := h.svc.Update(uint(id), &dto)
	if err != nil {
		h.logger.Error("update service", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, svc)
}

func (h *Handler) delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid service id")
		return
	}
	if err := h.svc.Delete(uint(id)); err != nil {
		h.logger.Error("delete service", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"ok": true})
}
