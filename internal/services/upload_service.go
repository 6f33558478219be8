package services

import (
	"context"
	"fmt"

	"github.com/Shubham06102003/home-inventory-api/internal/objectstore"
)

// UploadService hands out upload slots on the external object storage. The
// API never carries image bytes itself.
type UploadService struct {
	store *objectstore.Store
}

// NewUploadService creates a new UploadService.
func NewUploadService(store *objectstore.Store) *UploadService {
	return &UploadService{store: store}
}

// CreateImageUploadURL returns a presigned PUT URL and the storage key it
// will live under.
func (s *UploadService) CreateImageUploadURL(ctx context.Context) (*objectstore.UploadTarget, error) {
	target, err := s.store.PresignPut(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload url: %w", err)
	}
	return target, nil
}
