package middleware

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/ar_payment_tracker/internal/apperrors"
	portssvc "github.com/SscSPs/ar_payment_tracker/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// ScopeMiddleware resolves the session into a domain.Scope. It must run after
// AuthMiddleware. The user and the grant are re-checked on every request, so a
// revoked grant takes effect without waiting for the token to expire.
func ScopeMiddleware(resolver portssvc.ScopeResolverSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSessionFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrNotAuthenticated.Error()})
			return
		}

		scope, err := resolver.ResolveScope(c.Request.Context(), session)
		if err != nil {
			status := apperrors.StatusCode(err)
			logger := GetLoggerFromCtx(c.Request.Context())
			if status >= http.StatusInternalServerError {
				logger.Error("Failed to resolve scope", slog.String("error", err.Error()))
			} else {
				logger.Warn("Scope rejected", slog.String("error", err.Error()))
			}
			c.AbortWithStatusJSON(status, gin.H{"error": apperrors.Message(err, "Failed to resolve session")})
			return
		}

		logger := GetLoggerFromCtx(c.Request.Context()).With(slog.Int64("ar_id", scope.ARID))
		c.Request = c.Request.WithContext(WithLogger(c.Request.Context(), logger))
		c.Set(string(scopeKey), scope)

		c.Next()
	}
}
