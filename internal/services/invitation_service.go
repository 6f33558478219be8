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
	ErrInviteCodeRequired       = errors.New("invite code is required")
	ErrInvalidInviteCode        = errors.New("invalid invite code")
	ErrAlreadyFamilyMember      = errors.New("you are already a member of this family")
	ErrInvitationAlreadyPending = errors.New("you already have a pending invitation for this family")
	ErrInvitationNotFound       = errors.New("invitation not found or already handled")
)

// InvitationService runs the invitation state machine: pending is the initial
// state, accepted and rejected are terminal. Accepting materializes a member
// membership from the invitation's identity snapshot.
type InvitationService struct {
	familyRepo     repository.FamilyRepository
	invitationRepo repository.InvitationRepository
}

// NewInvitationService creates a new InvitationService.
func NewInvitationService(familyRepo repository.FamilyRepository, invitationRepo repository.InvitationRepository) *InvitationService {
	return &InvitationService{
		familyRepo:     familyRepo,
		invitationRepo: invitationRepo,
	}
}

// RequestJoin records a pending invitation for the family behind the invite
// code. Codes are matched case-insensitively.
func (s *InvitationService) RequestJoin(identity auth.Identity, inviteCode string) (*models.Invitation, error) {
	code := strings.ToUpper(strings.TrimSpace(inviteCode))
	if code == "" {
		return nil, ErrInviteCodeRequired
	}

	family, err := s.familyRepo.FindByInviteCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidInviteCode
		}
		return nil, fmt.Errorf("failed to find family by invite code: %w", err)
	}

	if _, err := s.familyRepo.FindMembership(family.ID, identity.UserID); err == nil {
		return nil, ErrAlreadyFamilyMember
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to verify membership: %w", err)
	}

	if _, err := s.invitationRepo.FindPending(family.ID, identity.UserID); err == nil {
		return nil, ErrInvitationAlreadyPending
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check pending invitations: %w", err)
	}

	invitation := &models.Invitation{
		ID:          uuid.NewString(),
		FamilyID:    family.ID,
		UserID:      identity.UserID,
		UserName:    identity.Name,
		UserEmail:   identity.Email,
		Status:      models.InvitationPending,
		RequestedAt: time.Now(),
	}

	if err := s.invitationRepo.Create(invitation); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	return invitation, nil
}

// ListPending returns the pending invitations of the acting admin's family.
func (s *InvitationService) ListPending(actorUserID string) ([]models.Invitation, error) {
	admin, err := s.familyRepo.FindAdminMembership(actorUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFamilyAdmin
		}
		return nil, fmt.Errorf("failed to find admin membership: %w", err)
	}

	invitations, err := s.invitationRepo.ListPending(admin.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}

	return invitations, nil
}

// GetStatus returns only the status of an invitation; applicants poll this
// while waiting for the admin's decision.
func (s *InvitationService) GetStatus(invitationID string) (models.InvitationStatus, error) {
	invitation, err := s.invitationRepo.FindByID(invitationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvitationNotFound
		}
		return "", fmt.Errorf("failed to find invitation: %w", err)
	}

	return invitation.Status, nil
}

// Accept moves a pending invitation of the acting admin's family to accepted
// and creates the member membership from the invitation's snapshot. A lost
// race against another decision surfaces as ErrInvitationNotFound, never as a
// second mutation.
func (s *InvitationService) Accept(actorUserID, invitationID string) (*models.FamilyMember, error) {
	admin, invitation, err := s.pendingForAdmin(actorUserID, invitationID)
	if err != nil {
		return nil, err
	}

	member := &models.FamilyMember{
		ID:        uuid.NewString(),
		FamilyID:  invitation.FamilyID,
		UserID:    invitation.UserID,
		UserName:  invitation.UserName,
		UserEmail: invitation.UserEmail,
		Role:      models.RoleMember,
		JoinedAt:  time.Now(),
	}

	if err := s.invitationRepo.Accept(invitation.ID, admin.FamilyID, member); err != nil {
		if errors.Is(err, repository.ErrInvitationHandled) {
			return nil, ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to accept invitation: %w", err)
	}

	return member, nil
}

// Reject moves a pending invitation of the acting admin's family to rejected.
func (s *InvitationService) Reject(actorUserID, invitationID string) error {
	admin, invitation, err := s.pendingForAdmin(actorUserID, invitationID)
	if err != nil {
		return err
	}

	if err := s.invitationRepo.Reject(invitation.ID, admin.FamilyID); err != nil {
		if errors.Is(err, repository.ErrInvitationHandled) {
			return ErrInvitationNotFound
		}
		return fmt.Errorf("failed to reject invitation: %w", err)
	}

	return nil
}

// pendingForAdmin resolves the acting admin and the invitation, verifying the
// invitation belongs to the admin's family and still reads as pending. The
// repository re-checks the pending state on write.
func (s *InvitationService) pendingForAdmin(actorUserID, invitationID string) (*models.FamilyMember, *models.Invitation, error) {
	admin, err := s.familyRepo.FindAdminMembership(actorUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFamilyAdmin
		}
		return nil, nil, fmt.Errorf("failed to find admin membership: %w", err)
	}

	invitation, err := s.invitationRepo.FindByID(invitationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvitationNotFound
		}
		return nil, nil, fmt.Errorf("failed to find invitation: %w", err)
	}

	if invitation.FamilyID != admin.FamilyID || invitation.Status != models.InvitationPending {
		return nil, nil, ErrInvitationNotFound
	}

	return admin, invitation, nil
}
