package repository

import (
	"errors"
	"time"

	"github.com/Shubham06102003/home-inventory-api/internal/models"
	"gorm.io/gorm"
)

// ErrInvitationHandled is returned when a status transition finds the
// invitation no longer pending. Accepted and rejected are terminal states.
var ErrInvitationHandled = errors.New("invitation repository: invitation already handled")

// GormInvitationRepository is a GORM implementation of InvitationRepository
type GormInvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new InvitationRepository
func NewInvitationRepository(db *gorm.DB) InvitationRepository {
	return &GormInvitationRepository{db: db}
}

// Create inserts a new pending invitation
func (r *GormInvitationRepository) Create(invitation *models.Invitation) error {
	return r.db.Create(invitation).Error
}

// FindByID finds an invitation by ID
func (r *GormInvitationRepository) FindByID(id string) (*models.Invitation, error) {
	var invitation models.Invitation
	if err := r.db.Where("id = ?", id).First(&invitation).Error; err != nil {
		return nil, err
	}
	return &invitation, nil
}

// FindPending finds the pending invitation for a (family, user) pair
func (r *GormInvitationRepository) FindPending(familyID, userID string) (*models.Invitation, error) {
	var invitation models.Invitation
	if err := r.db.Where("family_id = ? AND user_id = ? AND status = ?",
		familyID, userID, models.InvitationPending).
		First(&invitation).Error; err != nil {
		return nil, err
	}
	return &invitation, nil
}

// ListPending lists all pending invitations for a family
func (r *GormInvitationRepository) ListPending(familyID string) ([]models.Invitation, error) {
	var invitations []models.Invitation
	if err := r.db.Where("family_id = ? AND status = ?", familyID, models.InvitationPending).
		Order("requested_at ASC").
		Find(&invitations).Error; err != nil {
		return nil, err
	}
	return invitations, nil
}

// Accept flips the invitation to accepted and creates the membership in one
// transaction. The update is guarded on status=pending and verified through
// RowsAffected, so two admins racing the same invitation produce exactly one
// membership.
func (r *GormInvitationRepository) Accept(invitationID, familyID string, member *models.FamilyMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := markHandled(tx, invitationID, familyID, models.InvitationAccepted); err != nil {
			return err
		}
		return tx.Create(member).Error
	})
}

// Reject flips the invitation to rejected, guarded on status=pending
func (r *GormInvitationRepository) Reject(invitationID, familyID string) error {
	return markHandled(r.db, invitationID, familyID, models.InvitationRejected)
}

func markHandled(db *gorm.DB, invitationID, familyID string, status models.InvitationStatus) error {
	now := time.Now()
	result := db.Model(&models.Invitation{}).
		Where("id = ? AND family_id = ? AND status = ?", invitationID, familyID, models.InvitationPending).
		Updates(map[string]interface{}{
			"status":     status,
			"handled_at": &now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInvitationHandled
	}
	return nil
}
