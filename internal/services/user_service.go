package services

import (
	"fmt"
	"time"

	"github.com/Shubham06102003/home-inventory-api/internal/auth"
	"github.com/Shubham06102003/home-inventory-api/internal/models"
	"github.com/Shubham06102003/home-inventory-api/internal/repository"
)

// UserService keeps the local identity snapshots in sync with the identity
// provider.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// SyncProfile upserts the caller's profile snapshot. Invoked once per
// authenticated request before any domain operation runs.
func (s *UserService) SyncProfile(identity auth.Identity) error {
	now := time.Now()
	user := &models.User{
		UserID:    identity.UserID,
		FullName:  identity.Name,
		Email:     identity.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.userRepo.Upsert(user); err != nil {
		return fmt.Errorf("failed to sync profile: %w", err)
	}
	return nil
}
