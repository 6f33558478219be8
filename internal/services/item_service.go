package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Shubham06102003/home-inventory-api/internal/auth"
	"github.com/Shubham06102003/home-inventory-api/internal/models"
	"github.com/Shubham06102003/home-inventory-api/internal/repository"
)

var (
	ErrItemNameRequired  = errors.New("item name is required")
	ErrNotMemberOfFamily = errors.New("you are not a member of this family")
	ErrItemNotFound      = errors.New("item not found")
)

// ItemService provides the inventory item catalogue. Every family-scoped
// operation verifies the caller's membership first.
type ItemService struct {
	itemRepo   repository.ItemRepository
	familyRepo repository.FamilyRepository
}

// NewItemService creates a new ItemService.
func NewItemService(itemRepo repository.ItemRepository, familyRepo repository.FamilyRepository) *ItemService {
	return &ItemService{
		itemRepo:   itemRepo,
		familyRepo: familyRepo,
	}
}

// ItemInput carries the writable fields of an item.
type ItemInput struct {
	Name          string
	Description   string
	ItemImageURL  string
	PlaceImageURL string
	Tags          string
	Location      string
}

// AddItem creates an item in the given family on behalf of the caller.
func (s *ItemService) AddItem(identity auth.Identity, familyID string, input ItemInput) (*models.Item, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrItemNameRequired
	}

	if err := s.requireMembership(familyID, identity.UserID); err != nil {
		return nil, err
	}

	addedByName := identity.Name
	if addedByName == "" {
		addedByName = identity.Email
	}

	item := &models.Item{
		ID:            uuid.NewString(),
		FamilyID:      familyID,
		AddedBy:       identity.UserID,
		AddedByName:   addedByName,
		Name:          strings.TrimSpace(input.Name),
		Description:   strings.TrimSpace(input.Description),
		ItemImageURL:  input.ItemImageURL,
		PlaceImageURL: input.PlaceImageURL,
		Tags:          strings.TrimSpace(input.Tags),
		Location:      strings.TrimSpace(input.Location),
		CreatedAt:     time.Now(),
	}

	if err := s.itemRepo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return item, nil
}

// EditItem updates an item within a family the caller belongs to.
func (s *ItemService) EditItem(userID, itemID, familyID string, input ItemInput) (*models.Item, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrItemNameRequired
	}

	if err := s.requireMembership(familyID, userID); err != nil {
		return nil, err
	}

	item := &models.Item{
		ID:            itemID,
		FamilyID:      familyID,
		Name:          strings.TrimSpace(input.Name),
		Description:   strings.TrimSpace(input.Description),
		ItemImageURL:  input.ItemImageURL,
		PlaceImageURL: input.PlaceImageURL,
		Tags:          strings.TrimSpace(input.Tags),
		Location:      strings.TrimSpace(input.Location),
	}

	if err := s.itemRepo.Update(item); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	updated, err := s.itemRepo.FindByID(itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload item: %w", err)
	}
	return updated, nil
}

// DeleteItem removes an item within a family the caller belongs to.
func (s *ItemService) DeleteItem(userID, itemID, familyID string) error {
	if err := s.requireMembership(familyID, userID); err != nil {
		return err
	}

	if err := s.itemRepo.Delete(itemID, familyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("failed to delete item: %w", err)
	}

	return nil
}

// ListFamilyItems lists a family's items newest-first. A limit of 0 returns
// everything.
func (s *ItemService) ListFamilyItems(userID, familyID string, limit int) ([]models.Item, error) {
	if err := s.requireMembership(familyID, userID); err != nil {
		return nil, err
	}

	items, err := s.itemRepo.ListByFamily(familyID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// SearchItems lists a family's items matching the query.
func (s *ItemService) SearchItems(userID, familyID, query string) ([]models.Item, error) {
	if err := s.requireMembership(familyID, userID); err != nil {
		return nil, err
	}

	items, err := s.itemRepo.Search(familyID, strings.TrimSpace(query))
	if err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}
	return items, nil
}

// GetItem fetches a single item by ID.
func (s *ItemService) GetItem(itemID string) (*models.Item, error) {
	item, err := s.itemRepo.FindByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find item: %w", err)
	}
	return item, nil
}

// FamilyWithItems returns the caller's family together with its full item
// list in one round trip. Both are nil/empty when the user has no family.
func (s *ItemService) FamilyWithItems(userID string) (*models.Family, []models.Item, error) {
	membership, err := s.familyRepo.FindMembershipByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to find membership: %w", err)
	}

	family, err := s.familyRepo.FindByID(membership.FamilyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to find family: %w", err)
	}

	items, err := s.itemRepo.ListByFamily(family.ID, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list items: %w", err)
	}

	return family, items, nil
}

func (s *ItemService) requireMembership(familyID, userID string) error {
	if _, err := s.familyRepo.FindMembership(familyID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotMemberOfFamily
		}
		return fmt.Errorf("failed to verify membership: %w", err)
	}
	return nil
}
