package testimonial

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
	testimonials := rg.Group("/testimonials")
	testimonials.GET("", h.list)

	authed := testimonials.Group("", authMW)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	rows, err := h.svc.List()
	if err != nil {
		h.logger.Error("list testimonials", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, rows)
}

func (h *Handler) create(c *gin.Context) {
	var dto TestimonialDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	row, err := h.svc.Create(&dto)
	if err != nil {
		h.logger.Error("create testimonial", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, row)
}

func (h *Handler) update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid testimonial id")
		return
	}
	var dto TestimonialDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	row, err := h.svc.Update(uint(id), &dto)
	if err != nil {
		h.logger.Error("update testimonial", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, row)
}

func (h *Handler) delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid testimonial id")
		return
	}
	if err := h.svc.Delete(uint(id)); err != nil {
		h.logger.Error("delete testimonial", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"ok": true})
}
