package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Shubham06102003/home-inventory-api/internal/models"
)

func setupMockInvitationRepo(t *testing.T) (InvitationRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return NewInvitationRepository(gormDB), mock
}

func TestInvitationRepository_Reject(t *testing.T) {
	repo, mock := setupMockInvitationRepo(t)

	mock.ExpectExec(".*").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Reject("inv-1", "fam-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInvitationRepository_Reject_AlreadyHandled(t *testing.T) {
	repo, mock := setupMockInvitationRepo(t)

	// The guarded update matches no rows once the invitation left pending.
	mock.ExpectExec(".*").WillReturnResult(sqlmock.NewResult(0, 0))

	require.ErrorIs(t, repo.Reject("inv-1", "fam-1"), ErrInvitationHandled)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInvitationRepository_Accept(t *testing.T) {
	repo, mock := setupMockInvitationRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(".*").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(".*").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	member := &models.FamilyMember{
		ID:       "mem-1",
		FamilyID: "fam-1",
		UserID:   "user-1",
		UserName: "Bob",
		Role:     models.RoleMember,
		JoinedAt: time.Now(),
	}
	require.NoError(t, repo.Accept("inv-1", "fam-1", member))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInvitationRepository_Accept_AlreadyHandled(t *testing.T) {
	repo, mock := setupMockInvitationRepo(t)

	// The transaction rolls back without inserting the membership.
	mock.ExpectBegin()
	mock.ExpectExec(".*").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	member := &models.FamilyMember{ID: "mem-1", FamilyID: "fam-1", UserID: "user-1"}
	require.ErrorIs(t, repo.Accept("inv-1", "fam-1", member), ErrInvitationHandled)
	require.NoError(t, mock.ExpectationsWereMet())
}
