package models

import "time"

type Item struct {
	ID            string    `gorm:"type:varchar(36);primarykey" json:"id"`
	FamilyID      string    `gorm:"type:varchar(36);index;not null" json:"family_id"`
	AddedBy       string    `gorm:"type:varchar(64);not null" json:"added_by"`
	AddedByName   string    `gorm:"type:varchar(255)" json:"added_by_name"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	ItemImageURL  string    `gorm:"type:varchar(1024)" json:"item_image_url"`
	PlaceImageURL string    `gorm:"type:varchar(1024)" json:"place_image_url"`
	Tags          string    `gorm:"type:varchar(512)" json:"tags"`
	Location      string    `gorm:"type:varchar(512)" json:"location"`
	CreatedAt     time.Time `json:"created_at"`
}
