package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/folio-space/core/internal/middleware"
	"github.com/folio-space/core/internal/modules/about"
	"github.com/folio-space/core/internal/modules/auth"
	"github.com/folio-space/core/internal/modules/certificate"
	"github.com/folio-space/core/internal/modules/experience"
	"github.com/folio-space/core/internal/modules/message"
	"github.com/folio-space/core/internal/modules/profile"
	"github.com/folio-space/core/internal/modules/project"
	"github.com/folio-space/core/internal/modules/service"
	"github.com/folio-space/core/internal/modules/skills"
	"github.com/folio-space/core/internal/modules/stats"
	"github.com/folio-space/core/internal/modules/testimonial"
	"github.com/folio-space/core/internal/modules/timeline"
	"github.com/folio-space/core/internal/modules/upload"
	"github.com/folio-space/core/internal/pkg/response"
	"github.com/folio-space/core/internal/pkg/storage"
)

func (a *App) registerRoutes() {
	r := a.router
	db := a.db
	logger := a.logger
	authMW := middleware.Auth()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Not Found")
	})
	r.NoMethod(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, gin.H{"detail": "Method Not Allowed"})
	})

	if local, ok := a.uploader.(*storage.Local); ok {
		r.Static("/uploads", local.Dir())
	}

	statsSvc := stats.NewService(db, a.rdb, a.cfg.AnalyticsSalt, logger)

	root := r.Group("")

	api := r.Group("/api")
	api.Use(stats.Tracker(statsSvc))

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth.NewHandler(auth.NewService(db), logger).RegisterRoutes(root, api)

	profile.NewHandler(profile.NewService(db), logger).RegisterRoutes(api, authMW)
	about.NewHandler(about.NewService(db), logger).RegisterRoutes(api, authMW)
	project.NewHandler(project.NewService(db), logger).RegisterRoutes(api, authMW)
	service.NewHandler(service.NewService(db), logger).RegisterRoutes(api, authMW)
	experience.NewHandler(experience.NewService(db), logger).RegisterRoutes(api, authMW)
	timeline.NewHandler(timeline.NewService(db), logger).RegisterRoutes(api, authMW)
	skills.NewHandler(skills.NewService(db), logger).RegisterRoutes(api, authMW)
	testimonial.NewHandler(testimonial.NewService(db), logger).RegisterRoutes(api, authMW)
	certificate.NewHandler(certificate.NewService(db), logger).RegisterRoutes(api, authMW)

	messageSvc := message.NewService(db, a.mailer, a.cfg.Mail.To, logger)
	contactThrottle := middleware.Throttle(10, time.Minute)
	message.NewHandler(messageSvc, logger).RegisterRoutes(api, authMW, contactThrottle)

	upload.NewHandler(a.uploader, logger).RegisterRoutes(api, authMW)
	stats.NewHandler(statsSvc, logger).RegisterRoutes(api, authMW)
}
