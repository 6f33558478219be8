package dto

import (
	"time"

	"github.com/Shubham06102003/home-inventory-api/internal/models"
)

// InvitationDTO is the client-facing shape of a join request.
type InvitationDTO struct {
	ID          string                  `json:"id"`
	FamilyID    string                  `json:"family_id"`
	UserID      string                  `json:"user_id"`
	UserName    string                  `json:"user_name"`
	UserEmail   string                  `json:"user_email"`
	Status      models.InvitationStatus `json:"status"`
	RequestedAt time.Time               `json:"requested_at"`
	HandledAt   *time.Time              `json:"handled_at,omitempty"`
}

// ToInvitationDTO converts an invitation to its DTO.
func ToInvitationDTO(invitation models.Invitation) InvitationDTO {
	return InvitationDTO{
		ID:          invitation.ID,
		FamilyID:    invitation.FamilyID,
		UserID:      invitation.UserID,
		UserName:    invitation.UserName,
		UserEmail:   invitation.UserEmail,
		Status:      invitation.Status,
		RequestedAt: invitation.RequestedAt,
		HandledAt:   invitation.HandledAt,
	}
}

// ToInvitationDTOs converts an invitation list.
func ToInvitationDTOs(invitations []models.Invitation) []InvitationDTO {
	dtos := make([]InvitationDTO, len(invitations))
	for i, invitation := range invitations {
		dtos[i] = ToInvitationDTO(invitation)
	}
	return dtos
}
