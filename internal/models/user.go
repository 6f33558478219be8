package models

import "time"

// User is the locally stored snapshot of an identity-provider profile,
// refreshed on every authenticated request.
type User struct {
	UserID    string    `gorm:"type:varchar(64);primarykey" json:"user_id"`
	FullName  string    `gorm:"type:varchar(255)" json:"full_name"`
	Email     string    `gorm:"type:varchar(255)" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
