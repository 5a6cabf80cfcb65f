package skills

import (
	"errors"
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
	sk := rg.Group("/skills")
	sk.GET("", h.listSkills)
	sk.GET("/grouped", h.grouped)

	skAuthed := sk.Group("", authMW)
	skAuthed.POST("", h.createSkill)
	skAuthed.PUT("/:id", h.updateSkill)
	skAuthed.DELETE("/:id", h.deleteSkill)

	cats := rg.Group("/skill-categories")
	cats.GET("", h.listCategories)

	catsAuthed := cats.Group("", authMW)
	catsAuthed.POST("", h.createCategory)
	catsAuthed.PUT("/:id", h.updateCategory)
	catsAuthed.DELETE("/:id", h.deleteCategory)
}

func (h *Handler) listSkills(c *gin.Context) {
	views, err := h.svc.ListSkills()
	if err != nil {
		h.logger.Error("list skills", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, views)
}

func (h *Handler) grouped(c *gin.Context) {
	groups, err := h.svc.Grouped()
	if err != nil {
		h.logger.Error("group skills", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, groups)
}

func (h *Handler) createSkill(c *gin.Context) {
	var dto SkillDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	view, err := h.svc.CreateSkill(&dto)
	if err != nil {
		h.logger.Error("create skill", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, view)
}

func (h *Handler) updateSkill(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid skill id")
		return
	}
	var dto SkillDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	view, err := h.svc.UpdateSkill(uint(id), &dto)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, "Skill not found")
			return
		}
		h.logger.Error("update skill", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, view)
}

func (h *Handler) deleteSkill(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid skill id")
		return
	}
	if err := h.svc.DeleteSkill(uint(id)); err != nil {
		h.logger.Error("delete skill", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"ok": true})
}

func (h *Handler) listCategories(c *gin.Context) {
	categories, err := h.svc.ListCategories()
	if err != nil {
		h.logger.Error("list skill categories", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, categories)
}

func (h *Handler) createCategory(c *gin.Context) {
	var dto CategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cat, err := h.svc.CreateCategory(&dto)
	if err != nil {
		h.logger.Error("create skill category", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, cat)
}

func (h *Handler) updateCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}
	var dto CategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cat, err := h.svc.UpdateCategory(uint(id), &dto)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, "Category not found")
			return
		}
		h.logger.Error("update skill category", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, cat)
}

func (h *Handler) deleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}
	if err := h.svc.DeleteCategory(uint(id)); err != nil {
		h.logger.Error("delete skill category", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"ok": true})
}
