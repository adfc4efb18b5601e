package handlers

import (
	"log"
	"time"

	portssvc "github.com/finassoc/association_finance_app/internal/core/ports/services"
	"github.com/finassoc/association_finance_app/internal/middleware"
	"github.com/finassoc/association_finance_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// Version is the build version reported by the /version endpoint.
// Overridden at build time via -ldflags.
var Version = "dev"

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	r.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{"version": Version})
	})

	// Public authentication routes, with the login route rate limited by IP
	registerAuthRoutes(r, services.Auth, services.User, newLoginRateLimiter(cfg))

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (not available in production)
	setupSwaggerRoutes(r, cfg)
}

// newLoginRateLimiter builds the per-IP rate limiting middleware for the login route.
func newLoginRateLimiter(cfg *config.Config) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		log.Printf("Warning: Invalid LOGIN_RATE_LIMIT (%q). Defaulting to 5 per minute.\n", cfg.LoginRateLimit)
		rate = limiter.Rate{Period: time.Minute, Limit: 5}
	}
	return middleware.RateLimit(limiter.New(memory.NewStore(), rate))
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, services.Auth))

	registerProtectedAuthRoutes(v1, services.Auth, services.User)
	registerAccountRoutes(v1, services.Account, services.Ledger)
	registerLedgerRoutes(v1, services.Ledger)
	registerObligationRoutes(v1, services.Obligation)
	registerDonationRoutes(v1, services.Donation)
	registerPartyRoutes(v1, services.Party)
	registerBeneficiaryRoutes(v1, services.Beneficiary)
	registerCategoryRoutes(v1, services.Category)
	registerUserRoutes(v1, services.User)
	registerReportingRoutes(v1, services.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
