package repository

import (
	"errors"

	"github.com/Shubham06102003/home-inventory-api/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrMemberNotPromotable is returned when the incoming admin is not a
	// role=member row of the same family at write time.
	ErrMemberNotPromotable = errors.New("family repository: member not promotable to admin")
	// ErrAdminRowChanged is returned when the outgoing admin's row was
	// concurrently modified or removed during a transfer.
	ErrAdminRowChanged = errors.New("family repository: admin membership changed concurrently")
	// ErrFamilyNotEmpty is returned when a delete-and-leave runs against a
	// family that still has other members.
	ErrFamilyNotEmpty = errors.New("family repository: family has other members")
)

// GormFamilyRepository is a GORM implementation of FamilyRepository
type GormFamilyRepository struct {
	db *gorm.DB
}

// NewFamilyRepository creates a new FamilyRepository
func NewFamilyRepository(db *gorm.DB) FamilyRepository {
	return &GormFamilyRepository{db: db}
}

// Create creates a family and its admin membership in one transaction
func (r *GormFamilyRepository) Create(family *models.Family, admin *models.FamilyMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(family).Error; err != nil {
			return err
		}
		admin.FamilyID = family.ID
		return tx.Create(admin).Error
	})
}

// FindByID finds a family by ID
func (r *GormFamilyRepository) FindByID(id string) (*models.Family, error) {
	var family models.Family
	if err := r.db.Where("id = ?", id).First(&family).Error; err != nil {
		return nil, err
	}
	return &family, nil
}

// FindByInviteCode finds a family by its canonical invite code
func (r *GormFamilyRepository) FindByInviteCode(code string) (*models.Family, error) {
	var family models.Family
	if err := r.db.Where("invite_code = ?", code).First(&family).Error; err != nil {
		return nil, err
	}
	return &family, nil
}

// FindMembership finds the membership of a user within a family
func (r *GormFamilyRepository) FindMembership(familyID, userID string) (*models.FamilyMember, error) {
	var member models.FamilyMember
	if err := r.db.Where("family_id = ? AND user_id = ?", familyID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// FindMembershipByUser finds any membership of the user
func (r *GormFamilyRepository) FindMembershipByUser(userID string) (*models.FamilyMember, error) {
	var member models.FamilyMember
	if err := r.db.Where("user_id = ?", userID).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// FindAdminMembership finds the user's membership with role=admin
func (r *GormFamilyRepository) FindAdminMembership(userID string) (*models.FamilyMember, error) {
	var member models.FamilyMember
	if err := r.db.Where("user_id = ? AND role = ?", userID, models.RoleAdmin).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// ListMembers lists all members of a family in join order
func (r *GormFamilyRepository) ListMembers(familyID string) ([]models.FamilyMember, error) {
	var members []models.FamilyMember
	if err := r.db.Where("family_id = ?", familyID).
		Order("joined_at ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// RemoveMember deletes a membership row scoped to a family. Returns
// gorm.ErrRecordNotFound when no row matched.
func (r *GormFamilyRepository) RemoveMember(familyID, memberID string) error {
	result := r.db.Where("id = ? AND family_id = ?", memberID, familyID).
		Delete(&models.FamilyMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RemoveMemberByID deletes a membership row by ID
func (r *GormFamilyRepository) RemoveMemberByID(memberID string) error {
	result := r.db.Where("id = ?", memberID).Delete(&models.FamilyMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// TransferAdmin promotes the incoming member and deletes the outgoing admin
// row in one transaction. Both writes are guarded on the role still holding
// its expected value, so a concurrent transfer loses cleanly instead of
// leaving the family with zero or two admins.
func (r *GormFamilyRepository) TransferAdmin(familyID, outgoingMemberID, incomingMemberID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		promote := tx.Model(&models.FamilyMember{}).
			Where("id = ? AND family_id = ? AND role = ?", incomingMemberID, familyID, models.RoleMember).
			Update("role", models.RoleAdmin)
		if promote.Error != nil {
			return promote.Error
		}
		if promote.RowsAffected == 0 {
			return ErrMemberNotPromotable
		}

		demote := tx.Where("id = ? AND family_id = ? AND role = ?", outgoingMemberID, familyID, models.RoleAdmin).
			Delete(&models.FamilyMember{})
		if demote.Error != nil {
			return demote.Error
		}
		if demote.RowsAffected == 0 {
			return ErrAdminRowChanged
		}

		return nil
	})
}

// DeleteWithSoleMember deletes the family, its last membership and any
// remaining items. The member count is re-checked inside the transaction so
// a join racing the delete fails it rather than being orphaned.
func (r *GormFamilyRepository) DeleteWithSoleMember(familyID, memberID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.FamilyMember{}).
			Where("family_id = ?", familyID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 1 {
			return ErrFamilyNotEmpty
		}

		removal := tx.Where("id = ? AND family_id = ?", memberID, familyID).
			Delete(&models.FamilyMember{})
		if removal.Error != nil {
			return removal.Error
		}
		if removal.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("family_id = ?", familyID).Delete(&models.Item{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", familyID).Delete(&models.Family{}).Error
	})
}
