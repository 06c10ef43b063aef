package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ar_payment_tracker/cmd/docs"
	portssvc "github.com/SscSPs/ar_payment_tracker/internal/core/ports/services"
	"github.com/SscSPs/ar_payment_tracker/internal/middleware"
	"github.com/SscSPs/ar_payment_tracker/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// HealthCheck reports whether a dependency such as the database is reachable.
type HealthCheck func(ctx context.Context) error

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// loginLimit and health may be nil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	loginLimit gin.HandlerFunc,
	health HealthCheck,
) {
	r.GET("/health", func(c *gin.Context) {
		if health != nil {
			if err := health(c.Request.Context()); err != nil {
				middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", slog.String("error", err.Error()))
				c.String(http.StatusServiceUnavailable, "UNAVAILABLE")
				return
			}
		}
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := r.Group("/api/v1")
	RegisterAuthRoutes(public, services.Identity, services.TokenService, loginLimit)
	RegisterGoogleOAuthRoutes(public, services.GoogleOAuthHandler, services.Identity, services.TokenService)

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 group. Everything
// except session and admin routes also requires a selected, granted A/R entity.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	RegisterSessionRoutes(v1, services.Identity, services.TokenService)
	RegisterAdminRoutes(v1, services.Identity)

	scoped := v1.Group("", middleware.ScopeMiddleware(services.Identity))
	RegisterClientRoutes(scoped, services.Client, services.Query)
	RegisterInvoiceRoutes(scoped, services.Invoice, services.Payment, services.Query)
	RegisterSearchRoutes(scoped, services.Query)
	RegisterExportRoutes(scoped, services.Query, services.Payment)
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
