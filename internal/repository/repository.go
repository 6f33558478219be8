package repository

import (
	"github.com/Shubham06102003/home-inventory-api/internal/models"
)

// FamilyRepository defines the interface for family and membership data access.
type FamilyRepository interface {
	// Create creates a family and its admin membership in one transaction
	Create(family *models.Family, admin *models.FamilyMember) error

	// FindByID finds a family by ID
	FindByID(id string) (*models.Family, error)

	// FindByInviteCode finds a family by its canonical (upper-case) invite code
	FindByInviteCode(code string) (*models.Family, error)

	// FindMembership finds the membership of a user within a family
	FindMembership(familyID, userID string) (*models.FamilyMember, error)

	// FindMembershipByUser finds any membership of the user
	FindMembershipByUser(userID string) (*models.FamilyMember, error)

	// FindAdminMembership finds the user's membership with role=admin
	FindAdminMembership(userID string) (*models.FamilyMember, error)

	// ListMembers lists all members of a family in join order
	ListMembers(familyID string) ([]models.FamilyMember, error)

	// RemoveMember deletes a membership row scoped to a family
	RemoveMember(familyID, memberID string) error

	// RemoveMemberByID deletes a membership row by ID
	RemoveMemberByID(memberID string) error

	// TransferAdmin promotes one member to admin and deletes the outgoing
	// admin's row in a single guarded transaction
	TransferAdmin(familyID, outgoingMemberID, incomingMemberID string) error

	// DeleteWithSoleMember deletes the family, its last membership and any
	// remaining items, verifying inside the transaction that the given
	// membership is the only one left
	DeleteWithSoleMember(familyID, memberID string) error
}

// InvitationRepository defines the interface for invitation data access.
// Invitations are never deleted; handled ones are kept as history.
type InvitationRepository interface {
	// Create inserts a new pending invitation
	Create(invitation *models.Invitation) error

	// FindByID finds an invitation by ID
	FindByID(id string) (*models.Invitation, error)

	// FindPending finds the pending invitation for a (family, user) pair
	FindPending(familyID, userID string) (*models.Invitation, error)

	// ListPending lists all pending invitations for a family
	ListPending(familyID string) ([]models.Invitation, error)

	// Accept flips the invitation to accepted and creates the membership.
	// The status update is guarded on status=pending; a lost race returns
	// ErrInvitationHandled and creates nothing.
	Accept(invitationID, familyID string, member *models.FamilyMember) error

	// Reject flips the invitation to rejected, guarded on status=pending
	Reject(invitationID, familyID string) error
}

// ItemRepository defines the interface for inventory item data access.
type ItemRepository interface {
	// Create creates a new item
	Create(item *models.Item) error

	// FindByID finds an item by ID
	FindByID(id string) (*models.Item, error)

	// ListByFamily lists a family's items newest-first; limit <= 0 means all
	ListByFamily(familyID string, limit int) ([]models.Item, error)

	// Search lists a family's items matching the query across name,
	// description, tags, location and adder name, newest-first
	Search(familyID, query string) ([]models.Item, error)

	// Update updates an item scoped to a family
	Update(item *models.Item) error

	// Delete deletes an item scoped to a family
	Delete(itemID, familyID string) error
}

// UserRepository defines the interface for identity snapshot access.
type UserRepository interface {
	// Upsert inserts or refreshes the profile snapshot for a user
	Upsert(user *models.User) error
}
