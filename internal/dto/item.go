package dto

import (
	"time"

	"github.com/Shubham06102003/home-inventory-api/internal/models"
)

// ItemDTO is the client-facing shape of an inventory item.
type ItemDTO struct {
	ID            string    `json:"id"`
	FamilyID      string    `json:"family_id"`
	AddedBy       string    `json:"added_by"`
	AddedByName   string    `json:"added_by_name"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	ItemImageURL  string    `json:"item_image_url"`
	PlaceImageURL string    `json:"place_image_url"`
	Tags          string    `json:"tags"`
	Location      string    `json:"location"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToItemDTO converts an item to its DTO.
func ToItemDTO(item models.Item) ItemDTO {
	return ItemDTO{
		ID:            item.ID,
		FamilyID:      item.FamilyID,
		AddedBy:       item.AddedBy,
		AddedByName:   item.AddedByName,
		Name:          item.Name,
		Description:   item.Description,
		ItemImageURL:  item.ItemImageURL,
		PlaceImageURL: item.PlaceImageURL,
		Tags:          item.Tags,
		Location:      item.Location,
		CreatedAt:     item.CreatedAt,
	}
}

// ToItemDTOs converts an item list.
func ToItemDTOs(items []models.Item) []ItemDTO {
	dtos := make([]ItemDTO, len(items))
	for i, item := range items {
		dtos[i] = ToItemDTO(item)
	}
	return dtos
}
