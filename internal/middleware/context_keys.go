package middleware

import (
	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	sessionKey = contextKey("session")
	scopeKey   = contextKey("scope")
)

// GetSessionFromContext retrieves the session decoded by AuthMiddleware.
func GetSessionFromContext(c *gin.Context) (domain.Session, bool) {
	val, exists := c.Get(string(sessionKey))
	if !exists {
		if s, ok := c.Request.Context().Value(sessionKey).(domain.Session); ok {
			return s, true
		}
		return domain.Session{}, false
	}
	session, ok := val.(domain.Session)
	return session, ok
}

// GetScopeFromContext retrieves the scope resolved by ScopeMiddleware.
func GetScopeFromContext(c *gin.Context) (domain.Scope, bool) {
	val, exists := c.Get(string(scopeKey))
	if !exists {
		return domain.Scope{}, false
	}
	scope, ok := val.(domain.Scope)
	return scope, ok
}
