package message

import (
	"errors"
	"strconv"

	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	svc    *Service
	logger *zap.Logger
}

func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// RegisterRoutes mounts the public contact endpoint behind its own throttle;
// the rest of the API stays unlimited.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, throttleMW gin.HandlerFunc) {
	rg.POST("/contact", throttleMW, h.contact)

	messages := rg.Group("/messages", authMW)
	messages.GET("", h.list)
	messages.PATCH("/:id/read", h.markRead)
	messages.DELETE("/:id", h.delete)
}

func (h *Handler) contact(c *gin.Context) {
	var dto ContactDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	row, err := h.svc.Submit(&dto)
	if err != nil {
		h.logger.Error("persist contact message", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"ok": true, "id": row.ID})
}

func (h *Handler) list(c *gin.Context) {
	rows, err := h.svc.List()
	if err != nil {
		h.logger.Error("list messages", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, rows)
}

func (h *Handler) markRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid message id")
		return
	}
	row, err := h.svc.MarkRead(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Message not found")
			return
		}
		h.logger.Error("mark message read", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, row)
}

func (h *Handler) delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid message id")
		return
	}
	if err := h.svc.Delete(uint(id)); err != nil {
		h.logger.Error("delete message", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"ok": true})
}
