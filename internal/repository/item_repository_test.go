package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Shubham06102003/home-inventory-api/internal/models"
)

func setupMockItemRepo(t *testing.T) (ItemRepository, sqlmock.Sqlmock) {
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

	return NewItemRepository(gormDB), mock
}

func TestItemRepository_Update_UnchangedValues(t *testing.T) {
	repo, mock := setupMockItemRepo(t)

	mock.ExpectQuery("SELECT .*").WillReturnRows(
		sqlmock.NewRows([]string{"id", "family_id", "name"}).
			AddRow("item-1", "fam-1", "Drill"))
	// MySQL reports zero rows changed when the new values equal the old
	// ones; the save must still succeed.
	mock.ExpectExec("UPDATE .*").WillReturnResult(sqlmock.NewResult(0, 0))

	item := &models.Item{ID: "item-1", FamilyID: "fam-1", Name: "Drill"}
	require.NoError(t, repo.Update(item))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_Update_NotFound(t *testing.T) {
	repo, mock := setupMockItemRepo(t)

	mock.ExpectQuery("SELECT .*").WillReturnRows(
		sqlmock.NewRows([]string{"id", "family_id", "name"}))

	item := &models.Item{ID: "missing", FamilyID: "fam-1", Name: "Drill"}
	require.ErrorIs(t, repo.Update(item), gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
