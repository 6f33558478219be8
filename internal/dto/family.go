package dto

import (
	"time"

	"github.com/Shubham06102003/home-inventory-api/internal/models"
)

// FamilyDTO is the client-facing shape of a family.
type FamilyDTO struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CreatedBy  string    `json:"created_by"`
	InviteCode string    `json:"invite_code"`
	CreatedAt  time.Time `json:"created_at"`
}

// MemberDTO is the client-facing shape of a family membership.
type MemberDTO struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	UserName  string            `json:"user_name"`
	UserEmail string            `json:"user_email"`
	Role      models.FamilyRole `json:"role"`
	JoinedAt  time.Time         `json:"joined_at"`
}

// ToFamilyDTO converts a family to its DTO.
func ToFamilyDTO(family models.Family) FamilyDTO {
	return FamilyDTO{
		ID:         family.ID,
		Name:       family.Name,
		CreatedBy:  family.CreatedBy,
		InviteCode: family.InviteCode,
		CreatedAt:  family.CreatedAt,
	}
}

// ToMemberDTO converts a membership to its DTO.
func ToMemberDTO(member models.FamilyMember) MemberDTO {
	return MemberDTO{
		ID:        member.ID,
		UserID:    member.UserID,
		UserName:  member.UserName,
		UserEmail: member.UserEmail,
		Role:      member.Role,
		JoinedAt:  member.JoinedAt,
	}
}

// ToMemberDTOs converts a member list, placing the admin first. Admin-first
// ordering is presentation only; the ledger returns join order.
func ToMemberDTOs(members []models.FamilyMember) []MemberDTO {
	dtos := make([]MemberDTO, 0, len(members))
	for _, member := range members {
		if member.Role == models.RoleAdmin {
			dtos = append([]MemberDTO{ToMemberDTO(member)}, dtos...)
			continue
		}
		dtos = append(dtos, ToMemberDTO(member))
	}
	return dtos
}
