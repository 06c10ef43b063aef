package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/ar_payment_tracker/internal/apperrors"
	portssvc "github.com/SscSPs/ar_payment_tracker/internal/core/ports/services"
	"github.com/SscSPs/ar_payment_tracker/internal/dto"
	"github.com/SscSPs/ar_payment_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// googleOAuthHandler signs in existing users whose email Google has verified.
// Google sign-in never creates accounts.
type googleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	identityService    portssvc.IdentitySvcFacade
	tokenService       portssvc.TokenSvcFacade
}

// RegisterGoogleOAuthRoutes registers the Google OAuth routes when Google sign-in is configured.
func RegisterGoogleOAuthRoutes(
	rg *gin.RouterGroup,
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade,
	identityService portssvc.IdentitySvcFacade,
	tokenService portssvc.TokenSvcFacade,
) {
	if googleOAuthService == nil || !googleOAuthService.Enabled() {
		return
	}
	h := &googleOAuthHandler{
		googleOAuthService: googleOAuthService,
		identityService:    identityService,
		tokenService:       tokenService,
	}
	googleRoutes := rg.Group("/auth/google")
	{
		googleRoutes.GET("/login", h.loginURL)
		googleRoutes.POST("/exchange-code", h.exchangeCode)
	}
}

// loginURL godoc
// @Summary Google consent URL
// @Description Returns the Google consent URL and the state value the client must verify on return.
// @Tags oauth
// @Produce json
// @Success 200 {object} dto.GoogleLoginResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/google/login [get]
func (h *googleOAuthHandler) loginURL(c *gin.Context) {
	ctx := c.Request.Context()
	state, err := h.googleOAuthService.GenerateStateString(ctx)
	if err != nil {
		respondError(c, err, "Failed to start Google sign-in")
		return
	}
	c.JSON(http.StatusOK, dto.GoogleLoginResponse{
		URL:   h.googleOAuthService.GetGoogleLoginURL(ctx, state),
		State: state,
	})
}

// exchangeCode godoc
// @Summary Exchange authorization code for a session token
// @Description Exchanges a Google authorization code, validates the ID token and signs in the user with that verified email.
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid authorization code"
// @Failure 401 {object} dto.ErrorResponse "Unknown or unverified email"
// @Failure 504 {object} dto.ErrorResponse "Google could not be reached"
// @Router /auth/google/exchange-code [post]
func (h *googleOAuthHandler) exchangeCode(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		lower := strings.ToLower(err.Error())
		if strings.Contains(lower, "invalid_grant") || strings.Contains(lower, "bad request") {
			respondError(c, apperrors.NewValidationFailedError("Invalid or expired authorization code"), "")
			return
		}
		respondError(c, apperrors.NewAppError(http.StatusGatewayTimeout, "Failed to communicate with Google", err), "Failed to communicate with Google")
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Error("ID token not found in Google's token response")
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "Failed to retrieve ID token from Google"})
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid Google ID token"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	emailVerified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || !emailVerified {
		logger.Warn("Google account has no verified email", slog.String("google_user_id", payload.Subject))
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Google account email is not verified"})
		return
	}

	user, err := h.identityService.AuthenticateByEmail(ctx, email)
	if err != nil {
		respondError(c, err, "Failed to sign in")
		return
	}

	issueSessionToken(c, h.identityService, h.tokenService, user)
}
