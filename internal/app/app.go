package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/config"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/database"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/middleware"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/jwt"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/mail"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/markdown"
	pkgredis "github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/redis"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/upload"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/view"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	db     *gorm.DB
	rdb    *redis.Client
	logger *zap.Logger
}

// New initializes the application: config → DB → Redis → routes.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	if cfg.JWT.AccessSecret == "" || cfg.JWT.RefreshSecret == "" {
		return nil, errors.New("jwt secrets are not configured")
	}
	jwt.SetSecrets(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret)

	db, err := database.Connect(cfg, true)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	rdb, err := pkgredis.Connect(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 && cfg.IsProduction() {
		origins := cfg.AllowedOrigins
		corsConfig.AllowOriginFunc = func(origin string) bool {
			for _, o := range origins {
				if strings.EqualFold(o, origin) {
					return true
				}
			}
			return false
		}
	} else {
		corsConfig.AllowOriginFunc = func(string) bool { return true }
	}
	router.Use(cors.New(corsConfig))

	app := &App{cfg: cfg, router: router, db: db, rdb: rdb, logger: logger}
	if err := app.registerRoutes(); err != nil {
		return nil, err
	}
	return app, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown releases held connections.
func (a *App) Shutdown() {
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
}

func (a *App) buildStore() (*upload.Store, error) {
	s3c, err := upload.NewS3(
		a.cfg.S3.Endpoint,
		a.cfg.S3.Region,
		a.cfg.S3.AccessKeyID,
		a.cfg.S3.SecretAccessKey,
		a.cfg.S3.Bucket,
		a.cfg.S3.PublicURL,
	)
	if err != nil {
		return nil, fmt.Errorf("s3: %w", err)
	}
	return upload.NewStore(a.cfg.UploadDir, s3c, a.logger), nil
}

func (a *App) buildMailer() *mail.Sender {
	return mail.New(mail.Config{
		Enable: a.cfg.Mail.Enable,
		Host:   a.cfg.Mail.Host,
		Port:   a.cfg.Mail.Port,
		User:   a.cfg.Mail.User,
		Pass:   a.cfg.Mail.Pass,
		From:   a.cfg.Mail.From,
	})
}

func (a *App) buildProjector() *view.Projector {
	return view.New(a.cfg.BaseURL).WithMarkdown(markdown.Render)
}
