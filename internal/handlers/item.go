package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shubham06102003/home-inventory-api/internal/constants"
	"github.com/Shubham06102003/home-inventory-api/internal/dto"
	apierrors "github.com/Shubham06102003/home-inventory-api/internal/errors"
	"github.com/Shubham06102003/home-inventory-api/internal/middleware"
	"github.com/Shubham06102003/home-inventory-api/internal/services"
)

// ItemHandler coordinates the inventory item HTTP handlers.
type ItemHandler struct {
	itemService *services.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(itemService *services.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

type itemRequest struct {
	FamilyID      string `json:"family_id" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	ItemImageURL  string `json:"item_image_url"`
	PlaceImageURL string `json:"place_image_url"`
	Tags          string `json:"tags"`
	Location      string `json:"location"`
}

func (r itemRequest) input() services.ItemInput {
	return services.ItemInput{
		Name:          r.Name,
		Description:   r.Description,
		ItemImageURL:  r.ItemImageURL,
		PlaceImageURL: r.PlaceImageURL,
		Tags:          r.Tags,
		Location:      r.Location,
	}
}

// AddItem creates an item in the caller's family.
func (h *ItemHandler) AddItem(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Name and family ID are required")
		return
	}

	item, err := h.itemService.AddItem(identity, req.FamilyID, req.input())
	if err != nil {
		respondItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": dto.ToItemDTO(*item)})
}

// EditItem updates an item.
func (h *ItemHandler) EditItem(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	itemID := c.Param("id")

	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Item ID, name, and family ID are required")
		return
	}

	item, err := h.itemService.EditItem(identity.UserID, itemID, req.FamilyID, req.input())
	if err != nil {
		respondItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": dto.ToItemDTO(*item)})
}

// DeleteItem removes an item. The family scope comes from the X-Family-ID
// header.
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	itemID := c.Param("id")
	familyID := c.GetHeader("X-Family-ID")
	if familyID == "" {
		apierrors.BadRequest(c, "Item ID and family ID required")
		return
	}

	if err := h.itemService.DeleteItem(identity.UserID, itemID, familyID); err != nil {
		respondItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListFamilyItems lists a family's items, newest first.
func (h *ItemHandler) ListFamilyItems(c *gin.Context) {
	h.listFamilyItems(c, 0)
}

// ListLatestFamilyItems lists the newest items of a family.
func (h *ItemHandler) ListLatestFamilyItems(c *gin.Context) {
	h.listFamilyItems(c, constants.LatestItemsLimit)
}

func (h *ItemHandler) listFamilyItems(c *gin.Context, limit int) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	familyID := c.Param("familyId")

	items, err := h.itemService.ListFamilyItems(identity.UserID, familyID, limit)
	if err != nil {
		respondItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": dto.ToItemDTOs(items)})
}

// SearchItems lists a family's items matching the query.
func (h *ItemHandler) SearchItems(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	familyID := c.Query("family_id")
	if familyID == "" {
		apierrors.BadRequest(c, "Family ID is required")
		return
	}

	items, err := h.itemService.SearchItems(identity.UserID, familyID, c.Query("query"))
	if err != nil {
		respondItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": dto.ToItemDTOs(items)})
}

// GetItem fetches a single item by ID.
func (h *ItemHandler) GetItem(c *gin.Context) {
	itemID := c.Query("id")
	if itemID == "" {
		apierrors.BadRequest(c, "Item id is required")
		return
	}

	item, err := h.itemService.GetItem(itemID)
	if err != nil {
		respondItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": dto.ToItemDTO(*item)})
}

// FamilyWithItems returns the caller's family and its full item list in one
// response.
func (h *ItemHandler) FamilyWithItems(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	family, items, err := h.itemService.FamilyWithItems(identity.UserID)
	if err != nil {
		respondItemError(c, err)
		return
	}

	if family == nil {
		c.JSON(http.StatusOK, gin.H{"family": nil, "items": []dto.ItemDTO{}})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"family": dto.ToFamilyDTO(*family),
		"items":  dto.ToItemDTOs(items),
	})
}

func respondItemError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrItemNameRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotMemberOfFamily):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrItemNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		slog.Error("item operation failed", "error", err)
		apierrors.InternalError(c)
	}
}
