package v1

import (
	"net/http"

	"portfolio-contact-api/config"
	_ "portfolio-contact-api/docs" // Important for Swagger
	"portfolio-contact-api/internal/delivery/http/middleware"
	"portfolio-contact-api/internal/domain"
	"portfolio-contact-api/internal/usecase"
	"portfolio-contact-api/pkg/apperror"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	HealthUC  usecase.HealthUsecase
	Logger    *zap.Logger
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.Config{Stage: config.StageDev}
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true

	// Global Middlewares
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(logger.Named("http")))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))
	r.Use(middleware.SecurityHeadersMiddleware(cfg.IsProduction()))
	r.Use(middleware.ErrorHandler(logger))

	r.NoRoute(func(c *gin.Context) {
		c.Error(apperror.NotFound("Not found"))
	})
	r.NoMethod(func(c *gin.Context) {
		c.Error(apperror.New(http.StatusMethodNotAllowed, "Method not allowed", nil))
	})

	// The site's own route, kept at the path the front end already posts to
	api := r.Group("/api")
	v1 := r.Group("/v1")

	NewHealthHandler(v1, deps.HealthUC)
	NewContactHandler(deps.ContactUC, api, v1)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
