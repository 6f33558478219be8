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
	"github.com/Shubham06102003/home-inventory-api/internal/utils"
)

var (
	ErrFamilyNameRequired         = errors.New("family name is required")
	ErrInviteCodeGenerationFailed = errors.New("failed to generate invite code")
	ErrNotFamilyAdmin             = errors.New("only the family admin can perform this action")
	ErrNotFamilyMember            = errors.New("you are not a member of any family")
	ErrAdminCannotLeave           = errors.New("admin cannot leave the family directly")
	ErrCannotRemoveSelf           = errors.New("admin cannot remove themselves")
	ErrMemberNotFound             = errors.New("member not found")
	ErrInvalidNewAdmin            = errors.New("invalid new admin selection")
	ErrFamilyHasOtherMembers      = errors.New("family has other members, transfer admin first")
)

// FamilyService owns family records, the membership ledger and the admin
// succession protocol. The invariant it protects: every existing family has
// exactly one admin membership.
type FamilyService struct {
	familyRepo repository.FamilyRepository
}

// NewFamilyService creates a new FamilyService.
func NewFamilyService(familyRepo repository.FamilyRepository) *FamilyService {
	return &FamilyService{familyRepo: familyRepo}
}

// CreateFamily creates a family with a fresh invite code and installs the
// creator as its admin.
func (s *FamilyService) CreateFamily(identity auth.Identity, name string) (*models.Family, *models.FamilyMember, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil, ErrFamilyNameRequired
	}

	inviteCode, err := utils.GenerateInviteCode()
	if err != nil {
		return nil, nil, ErrInviteCodeGenerationFailed
	}

	family := &models.Family{
		ID:         uuid.NewString(),
		Name:       name,
		CreatedBy:  identity.UserID,
		InviteCode: inviteCode,
		CreatedAt:  time.Now(),
	}

	admin := &models.FamilyMember{
		ID:        uuid.NewString(),
		UserID:    identity.UserID,
		UserName:  identity.Name,
		UserEmail: identity.Email,
		Role:      models.RoleAdmin,
		JoinedAt:  time.Now(),
	}

	if err := s.familyRepo.Create(family, admin); err != nil {
		return nil, nil, fmt.Errorf("failed to create family: %w", err)
	}

	return family, admin, nil
}

// GetFamilyForUser returns the caller's family, its member list and the
// caller's own membership. All values are nil when the user belongs to no
// family.
func (s *FamilyService) GetFamilyForUser(userID string) (*models.Family, []models.FamilyMember, *models.FamilyMember, error) {
	membership, err := s.familyRepo.FindMembershipByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, nil
		}
		return nil, nil, nil, fmt.Errorf("failed to find membership: %w", err)
	}

	family, err := s.familyRepo.FindByID(membership.FamilyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Membership row outlived its family; treat as no family.
			return nil, nil, nil, nil
		}
		return nil, nil, nil, fmt.Errorf("failed to find family: %w", err)
	}

	members, err := s.familyRepo.ListMembers(family.ID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list members: %w", err)
	}

	return family, members, membership, nil
}

// RemoveMember removes a member from the acting admin's family. The admin
// cannot remove their own row; departures of the admin go through the
// succession protocol.
func (s *FamilyService) RemoveMember(actorUserID, memberID string) error {
	admin, err := s.familyRepo.FindAdminMembership(actorUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFamilyAdmin
		}
		return fmt.Errorf("failed to find admin membership: %w", err)
	}

	if admin.ID == memberID {
		return ErrCannotRemoveSelf
	}

	if err := s.familyRepo.RemoveMember(admin.FamilyID, memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to remove member: %w", err)
	}

	return nil
}

// Leave removes the caller's own membership. Admins must transfer the role or
// dissolve the family instead.
func (s *FamilyService) Leave(userID string) error {
	membership, err := s.familyRepo.FindMembershipByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFamilyMember
		}
		return fmt.Errorf("failed to find membership: %w", err)
	}

	if membership.Role == models.RoleAdmin {
		return ErrAdminCannotLeave
	}

	if err := s.familyRepo.RemoveMemberByID(membership.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFamilyMember
		}
		return fmt.Errorf("failed to leave family: %w", err)
	}

	return nil
}

// TransferAdminAndLeave promotes another member of the caller's family to
// admin and removes the caller's membership. The family keeps exactly one
// admin across the transition.
func (s *FamilyService) TransferAdminAndLeave(actorUserID, newAdminMemberID string) error {
	admin, err := s.familyRepo.FindAdminMembership(actorUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFamilyAdmin
		}
		return fmt.Errorf("failed to find admin membership: %w", err)
	}

	if err := s.familyRepo.TransferAdmin(admin.FamilyID, admin.ID, newAdminMemberID); err != nil {
		switch {
		case errors.Is(err, repository.ErrMemberNotPromotable):
			return ErrInvalidNewAdmin
		case errors.Is(err, repository.ErrAdminRowChanged):
			return ErrNotFamilyAdmin
		default:
			return fmt.Errorf("failed to transfer admin: %w", err)
		}
	}

	return nil
}

// DeleteAndLeave dissolves the caller's family. Only allowed while the admin
// is the sole remaining member.
func (s *FamilyService) DeleteAndLeave(actorUserID string) error {
	admin, err := s.familyRepo.FindAdminMembership(actorUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFamilyAdmin
		}
		return fmt.Errorf("failed to find admin membership: %w", err)
	}

	if err := s.familyRepo.DeleteWithSoleMember(admin.FamilyID, admin.ID); err != nil {
		switch {
		case errors.Is(err, repository.ErrFamilyNotEmpty):
			return ErrFamilyHasOtherMembers
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrNotFamilyAdmin
		default:
			return fmt.Errorf("failed to delete family: %w", err)
		}
	}

	return nil
}
