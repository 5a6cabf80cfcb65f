package auth

import (
	"errors"

	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type Handler struct {
	svc    *Service
	logger *zap.Logger
}

func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// RegisterRoutes mounts /token at both the root and the API prefix; the admin
// UI's fetch helpers historically used both.
func (h *Handler) RegisterRoutes(root, api *gin.RouterGroup) {
	root.POST("/token", h.token)
	root.POST("/setup-admin", h.setupAdmin)
	api.POST("/token", h.token)
}

func (h *Handler) token(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		response.UnauthorizedMsg(c, "Incorrect username or password")
		return
	}

	token, err := h.svc.Login(username, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.UnauthorizedMsg(c, "Incorrect username or password")
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *Handler) setupAdmin(c *gin.Context) {
	var dto SetupAdminDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if _, err := h.svc.SetupAdmin(&dto); err != nil {
		if errors.Is(err, ErrAdminExists) {
			response.BadRequest(c, "Admin already exists")
			return
		}
		h.logger.Error("setup admin failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"msg": "Admin created"})
}
