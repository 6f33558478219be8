package models

import "time"

type FamilyRole string

const (
	RoleAdmin  FamilyRole = "admin"
	RoleMember FamilyRole = "member"
)

// FamilyMember binds a user to a family. UserName and UserEmail are a
// snapshot of the identity at join time, not a live reference.
type FamilyMember struct {
	ID        string     `gorm:"type:varchar(36);primarykey" json:"id"`
	FamilyID  string     `gorm:"type:varchar(36);index;not null" json:"family_id"`
	UserID    string     `gorm:"type:varchar(64);index;not null" json:"user_id"`
	UserName  string     `gorm:"type:varchar(255)" json:"user_name"`
	UserEmail string     `gorm:"type:varchar(255)" json:"user_email"`
	Role      FamilyRole `gorm:"type:varchar(20);not null" json:"role"`
	JoinedAt  time.Time  `json:"joined_at"`

	// Relations
	Family Family `gorm:"foreignKey:FamilyID" json:"family,omitempty"`
}
