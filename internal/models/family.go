package models

import "time"

type Family struct {
	ID         string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedBy  string    `gorm:"type:varchar(64);not null" json:"created_by"`
	InviteCode string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"invite_code"`
	CreatedAt  time.Time `json:"created_at"`

	// Relations
	Members []FamilyMember `gorm:"foreignKey:FamilyID" json:"members,omitempty"`
	Items   []Item         `gorm:"foreignKey:FamilyID" json:"items,omitempty"`
}
