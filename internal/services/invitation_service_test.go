package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Shubham06102003/home-inventory-api/internal/models"
)

func TestInvitationService_RequestJoin_CanonicalizesCode(t *testing.T) {
	env := setupServiceTestEnv(t)

	family, _, err := env.familyService.CreateFamily(testIdentity("admin-1", "Alice"), "The Smiths")
	require.NoError(t, err)

	// Lower-cased, whitespace-padded input still resolves the family.
	padded := "  " + strings.ToLower(family.InviteCode) + "  "
	invitation, err := env.invitationService.RequestJoin(testIdentity("user-2", "Bob"), padded)
	require.NoError(t, err)
	require.Equal(t, family.ID, invitation.FamilyID)
	require.Equal(t, models.InvitationPending, invitation.Status)
	require.Equal(t, "Bob", invitation.UserName)
	require.Equal(t, "Bob@example.com", invitation.UserEmail)
}

func TestInvitationService_RequestJoin_InvalidCode(t *testing.T) {
	env := setupServiceTestEnv(t)

	_, err := env.invitationService.RequestJoin(testIdentity("user-2", "Bob"), "NO-SUCH-0000")
	require.ErrorIs(t, err, ErrInvalidInviteCode)

	_, err = env.invitationService.RequestJoin(testIdentity("user-2", "Bob"), "   ")
	require.ErrorIs(t, err, ErrInviteCodeRequired)
}

func TestInvitationService_RequestJoin_AlreadyMember(t *testing.T) {
	env := setupServiceTestEnv(t)

	family, _, err := env.familyService.CreateFamily(testIdentity("admin-1", "Alice"), "Home")
	require.NoError(t, err)

	_, err = env.invitationService.RequestJoin(testIdentity("admin-1", "Alice"), family.InviteCode)
	require.ErrorIs(t, err, ErrAlreadyFamilyMember)
}

func TestInvitationService_RequestJoin_DuplicatePending(t *testing.T) {
	env := setupServiceTestEnv(t)

	family, _, err := env.familyService.CreateFamily(testIdentity("admin-1", "Alice"), "Home")
	require.NoError(t, err)

	_, err = env.invitationService.RequestJoin(testIdentity("user-2", "Bob"), family.InviteCode)
	require.NoError(t, err)

	_, err = env.invitationService.RequestJoin(testIdentity("user-2", "Bob"), family.InviteCode)
	require.ErrorIs(t, err, ErrInvitationAlreadyPending)
}

func TestInvitationService_ListPending(t *testing.T) {
	env := setupServiceTestEnv(t)

	family, _, err := env.familyService.CreateFamily(testIdentity("admin-1", "Alice"), "Home")
	require.NoError(t, err)

	_, err = env.invitationService.ListPending("user-2")
	require.ErrorIs(t, err, ErrNotFamilyAdmin)

	_, err = env.invitationService.RequestJoin(testIdentity("user-2", "Bob"), family.InviteCode)
	require.NoError(t, err)

	invitations, err := env.invitationService.ListPending("admin-1")
	require.NoError(t, err)
	require.Len(t, invitations, 1)
	require.Equal(t, "user-2", invitations[0].UserID)
}

func TestInvitationService_Accept(t *testing.T) {
	env := setupServiceTestEnv(t)

	family, _, err := env.familyService.CreateFamily(testIdentity("admin-1", "Alice"), "Home")
	require.NoError(t, err)

	invitation, err := env.invitationService.RequestJoin(testIdentity("user-2", "Bob"), family.InviteCode)
	require.NoError(t, err)

	status, err := env.invitationService.GetStatus(invitation.ID)
	require.NoError(t, err)
	require.Equal(t, models.InvitationPending, status)

	member, err := env.invitationService.Accept("admin-1", invitation.ID)
	require.NoError(t, err)
	require.Equal(t, family.ID, member.FamilyID)
	require.Equal(t, models.RoleMember, member.Role)
	require.Equal(t, "Bob", member.UserName)
	require.Equal(t, "Bob@example.com", member.UserEmail)

	status, err = env.invitationService.GetStatus(invitation.ID)
	require.NoError(t, err)
	require.Equal(t, models.InvitationAccepted, status)
}

func TestInvitationService_Accept_Authorization(t *testing.T) {
	env := setupServiceTestEnv(t)

	family, _, err := env.familyService.CreateFamily(testIdentity("admin-1", "Alice"), "Home")
	require.NoError(t, err)

	_, _, err = env.familyService.CreateFamily(testIdentity("admin-2", "Eve"), "Other")
	require.NoError(t, err)

	invitation, err := env.invitationService.RequestJoin(testIdentity("user-2", "Bob"), family.InviteCode)
	require.NoError(t, err)

	// Not an admin at all.
	_, err = env.invitationService.Accept("user-2", invitation.ID)
	require.ErrorIs(t, err, ErrNotFamilyAdmin)

	// Admin of a different family.
	_, err = env.invitationService.Accept("admin-2", invitation.ID)
	require.ErrorIs(t, err, ErrInvitationNotFound)
}

func TestInvitationService_TerminalStatesAreFinal(t *testing.T) {
	env := setupServiceTestEnv(t)

	family, _, err := env.familyService.CreateFamily(testIdentity("admin-1", "Alice"), "Home")
	require.NoError(t, err)

	invitation, err := env.invitationService.RequestJoin(testIdentity("user-2", "Bob"), family.InviteCode)
	require.NoError(t, err)

	_, err = env.invitationService.Accept("admin-1", invitation.ID)
	require.NoError(t, err)

	// A handled invitation cannot be accepted or rejected again.
	_, err = env.invitationService.Accept("admin-1", invitation.ID)
	require.ErrorIs(t, err, ErrInvitationNotFound)
	require.ErrorIs(t, env.invitationService.Reject("admin-1", invitation.ID), ErrInvitationNotFound)

	status, err := env.invitationService.GetStatus(invitation.ID)
	require.NoError(t, err)
	require.Equal(t, models.InvitationAccepted, status)

	// Exactly one membership was materialized.
	var count int64
	require.NoError(t, env.db.Model(&models.FamilyMember{}).
		Where("family_id = ? AND user_id = ?", family.ID, "user-2").
		Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestInvitationService_Reject(t *testing.T) {
	env := setupServiceTestEnv(t)

	family, _, err := env.familyService.CreateFamily(testIdentity("admin-1", "Alice"), "Home")
	require.NoError(t, err)

	invitation, err := env.invitationService.RequestJoin(testIdentity("user-2", "Bob"), family.InviteCode)
	require.NoError(t, err)

	require.NoError(t, env.invitationService.Reject("admin-1", invitation.ID))

	status, err := env.invitationService.GetStatus(invitation.ID)
	require.NoError(t, err)
	require.Equal(t, models.InvitationRejected, status)

	// No membership was created.
	var count int64
	require.NoError(t, env.db.Model(&models.FamilyMember{}).
		Where("family_id = ? AND user_id = ?", family.ID, "user-2").
		Count(&count).Error)
	require.EqualValues(t, 0, count)

	// Rejection keeps the invitation as history.
	var invitations int64
	require.NoError(t, env.db.Model(&models.Invitation{}).
		Where("id = ?", invitation.ID).
		Count(&invitations).Error)
	require.EqualValues(t, 1, invitations)
}

func TestInvitationService_GetStatus_Unknown(t *testing.T) {
	env := setupServiceTestEnv(t)

	_, err := env.invitationService.GetStatus("missing")
	require.ErrorIs(t, err, ErrInvitationNotFound)
}
