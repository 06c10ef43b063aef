package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/ar_payment_tracker/internal/core/ports/services"
	"github.com/SscSPs/ar_payment_tracker/internal/dto"
	"github.com/SscSPs/ar_payment_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles registration and password sign-in.
type authHandler struct {
	identityService portssvc.IdentitySvcFacade
	tokenService    portssvc.TokenSvcFacade
}

func newAuthHandler(identityService portssvc.IdentitySvcFacade, tokenService portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{
		identityService: identityService,
		tokenService:    tokenService,
	}
}

// RegisterAuthRoutes sets up the public authentication routes. loginLimit may be nil.
func RegisterAuthRoutes(rg *gin.RouterGroup, identityService portssvc.IdentitySvcFacade, tokenService portssvc.TokenSvcFacade, loginLimit gin.HandlerFunc) {
	h := newAuthHandler(identityService, tokenService)

	login := []gin.HandlerFunc{h.login}
	if loginLimit != nil {
		login = append([]gin.HandlerFunc{loginLimit}, login...)
	}

	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", login...)
	}
}

// register godoc
// @Summary Register new user
// @Description Creates an account. The first account ever registered becomes the administrator.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.identityService.Register(c.Request.Context(), domain.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err, "Failed to register user")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User registered", slog.Int64("user_id", user.UserID), slog.Bool("is_admin", user.IsAdmin))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns a session token bound to their first A/R entity by name.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.identityService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Failed to sign in")
		return
	}

	issueSessionToken(c, h.identityService, h.tokenService, user)
}

// issueSessionToken signs a token for user with their default A/R entity selected.
func issueSessionToken(c *gin.Context, resolver portssvc.ScopeResolverSvc, tokenService portssvc.TokenSvcFacade, user *domain.User) {
	ctx := c.Request.Context()

	session := domain.Session{UserID: user.UserID}
	entity, err := resolver.DefaultAREntity(ctx, user.UserID)
	if err != nil {
		respondError(c, err, "Failed to sign in")
		return
	}
	resp := dto.TokenResponse{}
	if entity != nil {
		session.ARID = entity.ARID
		resp.ARID = &entity.ARID
	}

	resp.Token, resp.ExpiresAt, err = tokenService.GenerateSessionToken(ctx, session)
	if err != nil {
		respondError(c, err, "Failed to generate token")
		return
	}

	middleware.GetLoggerFromCtx(ctx).Info("Session token issued", slog.Int64("user_id", user.UserID), slog.Int64("ar_id", session.ARID))
	c.JSON(http.StatusOK, resp)
}
