package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shubham06102003/home-inventory-api/internal/dto"
	apierrors "github.com/Shubham06102003/home-inventory-api/internal/errors"
	"github.com/Shubham06102003/home-inventory-api/internal/middleware"
	"github.com/Shubham06102003/home-inventory-api/internal/services"
)

// InvitationHandler coordinates the invitation workflow HTTP handlers.
type InvitationHandler struct {
	invitationService *services.InvitationService
}

// NewInvitationHandler creates a new InvitationHandler.
func NewInvitationHandler(invitationService *services.InvitationService) *InvitationHandler {
	return &InvitationHandler{invitationService: invitationService}
}

// RequestJoin records a pending join request against an invite code.
func (h *InvitationHandler) RequestJoin(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type JoinRequest struct {
		InviteCode string `json:"invite_code" binding:"required"`
	}

	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invite code is required")
		return
	}

	invitation, err := h.invitationService.RequestJoin(identity, req.InviteCode)
	if err != nil {
		respondInvitationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"invitation": dto.ToInvitationDTO(*invitation),
	})
}

// ListPending returns the pending invitations of the acting admin's family.
func (h *InvitationHandler) ListPending(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	invitations, err := h.invitationService.ListPending(identity.UserID)
	if err != nil {
		respondInvitationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"invitations": dto.ToInvitationDTOs(invitations),
	})
}

// GetStatus returns only the invitation status; applicants poll this while
// waiting for a decision.
func (h *InvitationHandler) GetStatus(c *gin.Context) {
	invitationID := c.Query("id")
	if invitationID == "" {
		apierrors.BadRequest(c, "Invitation ID required")
		return
	}

	status, err := h.invitationService.GetStatus(invitationID)
	if err != nil {
		respondInvitationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}

// Accept approves a pending invitation and adds the applicant as a member.
func (h *InvitationHandler) Accept(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	invitationID, ok := bindInvitationID(c)
	if !ok {
		return
	}

	member, err := h.invitationService.Accept(identity.UserID, invitationID)
	if err != nil {
		respondInvitationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"member":  dto.ToMemberDTO(*member),
	})
}

// Reject declines a pending invitation.
func (h *InvitationHandler) Reject(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	invitationID, ok := bindInvitationID(c)
	if !ok {
		return
	}

	if err := h.invitationService.Reject(identity.UserID, invitationID); err != nil {
		respondInvitationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func bindInvitationID(c *gin.Context) (string, bool) {
	type InvitationRequest struct {
		InvitationID string `json:"invitation_id" binding:"required"`
	}

	var req InvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invitation ID required")
		return "", false
	}
	return req.InvitationID, true
}

func respondInvitationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInviteCodeRequired),
		errors.Is(err, services.ErrAlreadyFamilyMember),
		errors.Is(err, services.ErrInvitationAlreadyPending):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotFamilyAdmin):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrInvalidInviteCode),
		errors.Is(err, services.ErrInvitationNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		slog.Error("invitation operation failed", "error", err)
		apierrors.InternalError(c)
	}
}
