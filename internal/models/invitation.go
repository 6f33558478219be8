package models

import "time"

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationRejected InvitationStatus = "rejected"
)

// Invitation is a request to join a family, awaiting an admin decision.
// Accepted and rejected are terminal; handled invitations are kept as history
// and never deleted.
type Invitation struct {
	ID          string           `gorm:"type:varchar(36);primarykey" json:"id"`
	FamilyID    string           `gorm:"type:varchar(36);index;not null" json:"family_id"`
	UserID      string           `gorm:"type:varchar(64);index;not null" json:"user_id"`
	UserName    string           `gorm:"type:varchar(255)" json:"user_name"`
	UserEmail   string           `gorm:"type:varchar(255)" json:"user_email"`
	Status      InvitationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	RequestedAt time.Time        `json:"requested_at"`
	HandledAt   *time.Time       `json:"handled_at,omitempty"`
}
