package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/ar_payment_tracker/internal/apperrors"
	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	"github.com/SscSPs/ar_payment_tracker/internal/dto"
	"github.com/SscSPs/ar_payment_tracker/internal/middleware"
	"github.com/SscSPs/ar_payment_tracker/internal/utils"
	"github.com/gin-gonic/gin"
)

// respondError writes err with the status its taxonomy maps to. Server errors
// are logged and answered with fallback so internals never leak.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := apperrors.StatusCode(err)

	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, dto.ErrorResponse{Error: fallback})
		return
	}

	logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	resp := dto.ErrorResponse{Error: apperrors.Message(err, fallback)}
	var invErr *apperrors.InvariantError
	if errors.As(err, &invErr) {
		resp.Reason = string(invErr.Kind)
		if invErr.Limit != nil {
			limit := utils.FormatMoney(*invErr.Limit)
			resp.Limit = &limit
		}
	}
	c.JSON(status, resp)
}

// respondBindError answers a request whose body or query failed to bind.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	if details := middleware.ValidationDetails(err); details != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Request validation failed", Details: details})
		return
	}
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
}

// pathID parses a positive int64 path parameter, answering 400 when it is not one.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + name})
		return 0, false
	}
	return id, true
}

// requireScope returns the scope resolved by ScopeMiddleware.
func requireScope(c *gin.Context) (domain.Scope, bool) {
	scope, ok := middleware.GetScopeFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Scope not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return domain.Scope{}, false
	}
	return scope, true
}

// requireSession returns the session decoded by AuthMiddleware.
func requireSession(c *gin.Context) (domain.Session, bool) {
	session, ok := middleware.GetSessionFromContext(c)
	if !ok || !session.IsAuthenticated() {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Session not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return domain.Session{}, false
	}
	return session, true
}
