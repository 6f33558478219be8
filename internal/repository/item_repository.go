package repository

import (
	"github.com/Shubham06102003/home-inventory-api/internal/models"
	"gorm.io/gorm"
)

// GormItemRepository is a GORM implementation of ItemRepository
type GormItemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &GormItemRepository{db: db}
}

// Create creates a new item
func (r *GormItemRepository) Create(item *models.Item) error {
	return r.db.Create(item).Error
}

// FindByID finds an item by ID
func (r *GormItemRepository) FindByID(id string) (*models.Item, error) {
	var item models.Item
	if err := r.db.Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByFamily lists a family's items newest-first; limit <= 0 means all
func (r *GormItemRepository) ListByFamily(familyID string, limit int) ([]models.Item, error) {
	query := r.db.Where("family_id = ?", familyID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var items []models.Item
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Search lists a family's items matching the query, newest-first
func (r *GormItemRepository) Search(familyID, query string) ([]models.Item, error) {
	db := r.db.Where("family_id = ?", familyID)
	if query != "" {
		pattern := "%" + query + "%"
		db = db.Where(
			"name LIKE ? OR description LIKE ? OR tags LIKE ? OR location LIKE ? OR added_by_name LIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		)
	}

	var items []models.Item
	if err := db.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Update updates an item scoped to a family. Returns gorm.ErrRecordNotFound
// when the item does not exist in that family. Existence is checked with a
// read rather than RowsAffected: MySQL reports rows changed, not rows
// matched, so a save that modifies nothing would otherwise read as missing.
func (r *GormItemRepository) Update(item *models.Item) error {
	var existing models.Item
	if err := r.db.Where("id = ? AND family_id = ?", item.ID, item.FamilyID).
		First(&existing).Error; err != nil {
		return err
	}

	return r.db.Model(&existing).Updates(map[string]interface{}{
		"name":            item.Name,
		"description":     item.Description,
		"item_image_url":  item.ItemImageURL,
		"place_image_url": item.PlaceImageURL,
		"tags":            item.Tags,
		"location":        item.Location,
	}).Error
}

// Delete deletes an item scoped to a family
func (r *GormItemRepository) Delete(itemID, familyID string) error {
	result := r.db.Where("id = ? AND family_id = ?", itemID, familyID).
		Delete(&models.Item{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
