package project

import (
	"strconv"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/markdown"
	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// projectDetail is the single-project payload: the row plus the rendered
// description for the detail page.
type projectDetail struct {
	models.ProjectModel
	TextHTML string `json:"text_html"`
}

type Handler struct {
	svc    *Service
	logger *zap.Logger
}

func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	projects := rg.Group("/projects")
	projects.GET("", h.list)
	projects.GET("/:slug", h.getBySlug)

	authed := projects.Group("", authMW)
	authed.POST("", h.create)
	authed.PUT("/:slug", h.update)    // :slug carries the numeric id here
	authed.DELETE("/:slug", h.delete) // gin requires one param name per segment
}

func (h *Handler) list(c *gin.Context) {
	featured := c.Query("featured") == "true"
	projects, err := h.svc.List(featured)
	if err != nil {
		h.logger.Error("list projects", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, projects)
}

func (h *Handler) getBySlug(c *gin.Context) {
	p, err := h.svc.GetBySlug(c.Param("slug"))
	if err != nil {
		h.logger.Error("get project", zap.Error(err))
		response.InternalError(c)
		return
	}
	if p == nil {
		response.NotFound(c, "Project not found")
		return
	}

	html, err := markdown.ToHTML(p.DetailedDescription)
	if err != nil {
		h.logger.Warn("render project description", zap.Error(err))
	}
	response.OK(c, projectDetail{ProjectModel: *p, TextHTML: html})
}

func (h *Handler) create(c *gin.Context) {
	var dto ProjectDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.svc.Create(&dto)
	if err != nil {
		h.logger.Error("create project", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, p)
}

func (h *Handler) update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("slug"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}
	var dto ProjectDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.svc.Update(uint(id), &dto)
	if err != nil {
		h.logger.Error("update project", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, p)
}

func (h *Handler) delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("slug"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}
	if err := h.svc.Delete(uint(id)); err != nil {
		h.logger.Error("delete project", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"ok": true})
}
