package handlers

import (
	"errors"
	"net/http"

	"github.com/SscSPs/ar_payment_tracker/internal/apperrors"
	portssvc "github.com/SscSPs/ar_payment_tracker/internal/core/ports/services"
	"github.com/SscSPs/ar_payment_tracker/internal/dto"
	"github.com/gin-gonic/gin"
)

type sessionHandler struct {
	identityService portssvc.IdentitySvcFacade
	tokenService    portssvc.TokenSvcFacade
}

// RegisterSessionRoutes registers routes that need a signed-in user but no selected A/R entity.
func RegisterSessionRoutes(rg *gin.RouterGroup, identityService portssvc.IdentitySvcFacade, tokenService portssvc.TokenSvcFacade) {
	h := &sessionHandler{identityService: identityService, tokenService: tokenService}

	session := rg.Group("/session")
	{
		session.GET("", h.getSession)
		session.POST("/ar", h.switchAREntity)
	}
}

// getSession godoc
// @Summary Current session
// @Description Returns the signed-in user, the selected A/R entity and every entity the user may switch to.
// @Tags session
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /session [get]
func (h *sessionHandler) getSession(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	user, err := h.identityService.GetUser(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			err = apperrors.ErrNotAuthenticated
		}
		respondError(c, err, "Failed to load session")
		return
	}
	allowed, err := h.identityService.ListAllowedAREntities(ctx, session.UserID)
	if err != nil {
		respondError(c, err, "Failed to load session")
		return
	}

	resp := dto.SessionResponse{
		User:              dto.ToUserResponse(user),
		AllowedAREntities: dto.ToListAREntityResponse(allowed),
	}
	for _, e := range allowed {
		if e.ARID == session.ARID {
			selected := dto.ToAREntityResponse(e)
			resp.SelectedAREntity = &selected
			break
		}
	}
	c.JSON(http.StatusOK, resp)
}

// switchAREntity godoc
// @Summary Switch A/R entity
// @Description Selects another A/R entity the user is granted and returns a new session token for it.
// @Tags session
// @Accept json
// @Produce json
// @Param request body dto.SwitchARRequest true "Entity to select"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Entity not granted"
// @Security BearerAuth
// @Router /session/ar [post]
func (h *sessionHandler) switchAREntity(c *gin.Context) {
	current, ok := requireSession(c)
	if !ok {
		return
	}
	var req dto.SwitchARRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ctx := c.Request.Context()

	next, err := h.identityService.SwitchAREntity(ctx, current.UserID, req.ARID)
	if err != nil {
		respondError(c, err, "Failed to switch A/R entity")
		return
	}

	resp := dto.TokenResponse{ARID: &next.ARID}
	resp.Token, resp.ExpiresAt, err = h.tokenService.GenerateSessionToken(ctx, next)
	if err != nil {
		respondError(c, err, "Failed to generate token")
		return
	}
	c.JSON(http.StatusOK, resp)
}
