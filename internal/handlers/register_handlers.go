package handlers

import (
	"github.com/SscSPs/pix_wallet/cmd/docs"
	portssvc "github.com/SscSPs/pix_wallet/internal/core/ports/services"
	"github.com/SscSPs/pix_wallet/internal/middleware"
	"github.com/SscSPs/pix_wallet/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	loginLimiter *limiter.Limiter,
) {
	RegisterValidations()

	r.GET("/health", getHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authMiddleware := middleware.AuthMiddleware(cfg.JWTSecret)

	// Public login, admin-only registration
	registerAuthRoutes(r, services.Auth, loginLimiter, authMiddleware)

	setupAPIV1Routes(r, authMiddleware, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	authMiddleware gin.HandlerFunc,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", authMiddleware)

	registerWalletRoutes(v1, services.Wallet, services.PixKey)
	registerPixRoutes(v1, services.PixTransfer, services.PixWebhook)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
