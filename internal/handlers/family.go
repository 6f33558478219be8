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

// FamilyHandler coordinates family, membership and succession HTTP handlers.
type FamilyHandler struct {
	familyService *services.FamilyService
}

// NewFamilyHandler creates a new FamilyHandler.
func NewFamilyHandler(familyService *services.FamilyService) *FamilyHandler {
	return &FamilyHandler{familyService: familyService}
}

// CreateFamily creates a family with the caller as admin.
func (h *FamilyHandler) CreateFamily(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateFamilyRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req CreateFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Family name is required")
		return
	}

	family, member, err := h.familyService.CreateFamily(identity, req.Name)
	if err != nil {
		respondFamilyError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"family": dto.ToFamilyDTO(*family),
		"member": dto.ToMemberDTO(*member),
	})
}

// GetUserFamily returns the caller's family and member list, or nulls when
// the caller belongs to no family.
func (h *FamilyHandler) GetUserFamily(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	family, members, membership, err := h.familyService.GetFamilyForUser(identity.UserID)
	if err != nil {
		respondFamilyError(c, err)
		return
	}

	if family == nil {
		c.JSON(http.StatusOK, gin.H{"family": nil, "members": []dto.MemberDTO{}})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"family":    dto.ToFamilyDTO(*family),
		"members":   dto.ToMemberDTOs(members),
		"your_role": membership.Role,
	})
}

// RemoveMember removes a member from the acting admin's family.
func (h *FamilyHandler) RemoveMember(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type RemoveMemberRequest struct {
		MemberID string `json:"member_id" binding:"required"`
	}

	var req RemoveMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Member ID required")
		return
	}

	if err := h.familyService.RemoveMember(identity.UserID, req.MemberID); err != nil {
		respondFamilyError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Leave removes the caller's own membership.
func (h *FamilyHandler) Leave(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.familyService.Leave(identity.UserID); err != nil {
		respondFamilyError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// TransferAdminAndLeave hands the admin role to another member and removes
// the caller.
func (h *FamilyHandler) TransferAdminAndLeave(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type TransferAdminRequest struct {
		NewAdminID string `json:"new_admin_id" binding:"required"`
	}

	var req TransferAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "New admin ID required")
		return
	}

	if err := h.familyService.TransferAdminAndLeave(identity.UserID, req.NewAdminID); err != nil {
		respondFamilyError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteAndLeave dissolves the caller's family when the caller is its sole
// remaining member.
func (h *FamilyHandler) DeleteAndLeave(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.familyService.DeleteAndLeave(identity.UserID); err != nil {
		respondFamilyError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func respondFamilyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrFamilyNameRequired),
		errors.Is(err, services.ErrNotFamilyMember),
		errors.Is(err, services.ErrAdminCannotLeave),
		errors.Is(err, services.ErrCannotRemoveSelf),
		errors.Is(err, services.ErrInvalidNewAdmin),
		errors.Is(err, services.ErrFamilyHasOtherMembers):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotFamilyAdmin):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrMemberNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		slog.Error("family operation failed", "error", err)
		apierrors.InternalError(c)
	}
}
