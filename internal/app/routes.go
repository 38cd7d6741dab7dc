package app

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/middleware"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/modules/auth"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/modules/contact"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/modules/content/certification"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/modules/content/course"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/modules/content/heroslide"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/modules/content/page"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/modules/content/partner"
	contentservice "github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/modules/content/service"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/modules/registration"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/modules/storage/file"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/modules/user"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/response"
)

const contactRateMax = 5 // submissions per minute per IP

func (a *App) registerRoutes() error {
	r := a.router
	db := a.db

	store, err := a.buildStore()
	if err != nil {
		return err
	}
	mailer := a.buildMailer()
	proj := a.buildProjector()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	// Locally stored uploads; S3-backed files are served from the bucket.
	uploads := r.Group("/uploads", func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age=31536000, immutable")
	})
	uploads.Static("/", store.Dir())

	r.Use(middleware.RateLimit(a.rdb))

	authMW := middleware.Auth()

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		status := "ok"
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status = "degraded"
		}
		response.OK(c, gin.H{"status": status, "time": time.Now().UTC()})
	})

	// Services
	authSvc := auth.NewService(db, mailer, a.cfg.BaseURL, a.cfg.SiteName)
	heroSvc := heroslide.NewService(db, store)
	courseSvc := course.NewService(db, store)
	serviceSvc := contentservice.NewService(db, store)
	certSvc := certification.NewService(db, store)
	partnerSvc := partner.NewService(db, store)
	pageSvc := page.NewService(db)
	contactSvc := contact.NewService(db, mailer, a.cfg.AdminEmail, a.cfg.SiteName, a.logger)
	regSvc := registration.NewService(db, mailer, a.cfg.SiteName, a.logger)
	userSvc := user.NewService(db)

	// Handlers
	authH := auth.NewHandler(authSvc)
	heroH := heroslide.NewHandler(heroSvc, store, proj)
	courseH := course.NewHandler(courseSvc, store, proj)
	serviceH := contentservice.NewHandler(serviceSvc, store, proj)
	certH := certification.NewHandler(certSvc, store, proj)
	partnerH := partner.NewHandler(partnerSvc, store, proj)
	pageH := page.NewHandler(pageSvc, proj)
	contactH := contact.NewHandler(contactSvc)
	regH := registration.NewHandler(regSvc, proj)
	userH := user.NewHandler(userSvc)
	fileH := file.NewHandler(store, proj)

	// Public + authenticated user surface
	authH.RegisterRoutes(api, authMW)
	heroH.RegisterRoutes(api)
	courseH.RegisterRoutes(api)
	serviceH.RegisterRoutes(api)
	certH.RegisterRoutes(api)
	partnerH.RegisterRoutes(api)
	pageH.RegisterRoutes(api)
	contactH.RegisterRoutes(api, middleware.RateLimitStrict(a.rdb, contactRateMax, time.Minute))
	regH.RegisterRoutes(api, authMW)

	// Admin surface
	admin := api.Group("/admin", authMW, middleware.RequireAdmin())
	heroH.RegisterAdminRoutes(admin)
	courseH.RegisterAdminRoutes(admin)
	serviceH.RegisterAdminRoutes(admin)
	certH.RegisterAdminRoutes(admin)
	partnerH.RegisterAdminRoutes(admin)
	pageH.RegisterAdminRoutes(admin)
	contactH.RegisterAdminRoutes(admin)
	regH.RegisterAdminRoutes(admin)
	userH.RegisterAdminRoutes(admin)
	fileH.RegisterAdminRoutes(admin)

	return nil
}
