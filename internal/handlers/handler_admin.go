package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ar_payment_tracker/internal/core/ports/services"
	"github.com/SscSPs/ar_payment_tracker/internal/dto"
	"github.com/SscSPs/ar_payment_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type adminHandler struct {
	identityService portssvc.AccessAdminSvc
}

// RegisterAdminRoutes registers the access-grant administration routes. The
// service rejects callers that are not administrators.
func RegisterAdminRoutes(rg *gin.RouterGroup, identityService portssvc.AccessAdminSvc) {
	h := &adminHandler{identityService: identityService}

	admin := rg.Group("/admin")
	{
		admin.GET("/users", h.listUsersWithAccess)
		admin.PUT("/users/:userID/access/:arID", h.setAccess)
	}
}

// listUsersWithAccess godoc
// @Summary Access matrix
// @Description Lists every user with the A/R entities they are granted, plus all entities.
// @Tags admin
// @Produce json
// @Success 200 {object} dto.AccessMatrixResponse
// @Failure 403 {object} dto.ErrorResponse "Caller is not an administrator"
// @Security BearerAuth
// @Router /admin/users [get]
func (h *adminHandler) listUsersWithAccess(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	access, err := h.identityService.ListUsersWithAccess(ctx, session.UserID)
	if err != nil {
		respondError(c, err, "Failed to list users")
		return
	}
	entities, err := h.identityService.ListAREntities(ctx, session.UserID)
	if err != nil {
		respondError(c, err, "Failed to list A/R entities")
		return
	}

	c.JSON(http.StatusOK, dto.AccessMatrixResponse{
		Users:      dto.ToUserAccessResponse(access),
		AREntities: dto.ToListAREntityResponse(entities),
	})
}

// setAccess godoc
// @Summary Grant or revoke access
// @Description Grants (allow=true) or revokes a user's access to an A/R entity. Idempotent.
// @Tags admin
// @Accept json
// @Param userID path int true "User ID"
// @Param arID path int true "A/R entity ID"
// @Param request body dto.AccessGrantRequest true "Grant or revoke"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Caller is not an administrator"
// @Failure 404 {object} dto.ErrorResponse "User or entity not found"
// @Security BearerAuth
// @Router /admin/users/{userID}/access/{arID} [put]
func (h *adminHandler) setAccess(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	targetUserID, ok := pathID(c, "userID")
	if !ok {
		return
	}
	arID, ok := pathID(c, "arID")
	if !ok {
		return
	}
	var req dto.AccessGrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.identityService.GrantAccess(c.Request.Context(), session.UserID, targetUserID, arID, *req.Allow); err != nil {
		respondError(c, err, "Failed to update access")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Access updated",
		slog.Int64("target_user_id", targetUserID), slog.Int64("target_ar_id", arID), slog.Bool("allow", *req.Allow))
	c.Status(http.StatusNoContent)
}
