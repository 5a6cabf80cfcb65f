package profile

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
	rg.GET("/profile", h.get)
	rg.PUT("/profile", authMW, h.update)
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.Get()
	if err != nil {
		h.logger.Error("get profile", zap.Error(err))
		response.InternalError(c)
		return
	}
	if p == nil {
		// No row yet: serve placeholder content so the public page renders.
		response.OK(c, models.ProfileModel{
			Name:     "Your Name",
			Bio:      "Full Stack Engineer",
			Role:     "Developer",
			Location: "Somewhere",
			Status:   "Available",
		})
		return
	}
	response.OK(c, p)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateProfileDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.svc.Upsert(&dto)
	if err != nil {
		h.logger.Error("update profile", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, p)
}
