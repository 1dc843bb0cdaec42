package v1

import (
	"net/http"

	"fluxcapital-backend/config"
	"fluxcapital-backend/internal/delivery/http/middleware"
	"fluxcapital-backend/internal/delivery/http/response"
	"fluxcapital-backend/internal/domain"
	"fluxcapital-backend/internal/ratelimiter"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC       domain.ContactUsecase
	Site            domain.SiteConfig
	ContactLimiter  ratelimiter.Limiter
	FallbackLimiter ratelimiter.Limiter // used when ContactLimiter's store errors
	Config          *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational")
	})

	contactRateLimit := middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		Limiter:  deps.ContactLimiter,
		Fallback: deps.FallbackLimiter,
	})

	NewContactHandler(api, deps.ContactUC, contactRateLimit)
	NewSiteHandler(api, deps.Site)

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
