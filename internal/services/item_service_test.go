package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestItemService_AddItem(t *testing.T) {
	env := setupServiceTestEnv(t)

	family, _, err := env.familyService.CreateFamily(testIdentity("admin-1", "Alice"), "Home")
	require.NoError(t, err)

	item, err := env.itemService.AddItem(testIdentity("admin-1", "Alice"), family.ID, ItemInput{
		Name:     "  Drill  ",
		Tags:     "tools",
		Location: "garage",
	})
	require.NoError(t, err)
	require.Equal(t, "Drill", item.Name)
	require.Equal(t, "Alice", item.AddedByName)

	// Non-members cannot add.
	_, err = env.itemService.AddItem(testIdentity("stranger", "Eve"), family.ID, ItemInput{Name: "Saw"})
	require.ErrorIs(t, err, ErrNotMemberOfFamily)

	_, err = env.itemService.AddItem(testIdentity("admin-1", "Alice"), family.ID, ItemInput{Name: "   "})
	require.ErrorIs(t, err, ErrItemNameRequired)
}

func TestItemService_EditAndDelete(t *testing.T) {
	env := setupServiceTestEnv(t)

	family, _, err := env.familyService.CreateFamily(testIdentity("admin-1", "Alice"), "Home")
	require.NoError(t, err)

	item, err := env.itemService.AddItem(testIdentity("admin-1", "Alice"), family.ID, ItemInput{Name: "Drill"})
	require.NoError(t, err)

	updated, err := env.itemService.EditItem("admin-1", item.ID, family.ID, ItemInput{
		Name:        "Cordless Drill",
		Description: "18V",
	})
	require.NoError(t, err)
	require.Equal(t, "Cordless Drill", updated.Name)
	require.Equal(t, "18V", updated.Description)

	// Saving the form again without changing anything is not an error.
	same, err := env.itemService.EditItem("admin-1", item.ID, family.ID, ItemInput{
		Name:        "Cordless Drill",
		Description: "18V",
	})
	require.NoError(t, err)
	require.Equal(t, "Cordless Drill", same.Name)

	_, err = env.itemService.EditItem("admin-1", "missing", family.ID, ItemInput{Name: "X"})
	require.ErrorIs(t, err, ErrItemNotFound)

	require.NoError(t, env.itemService.DeleteItem("admin-1", item.ID, family.ID))
	require.ErrorIs(t, env.itemService.DeleteItem("admin-1", item.ID, family.ID), ErrItemNotFound)
}

func TestItemService_SearchItems(t *testing.T) {
	env := setupServiceTestEnv(t)

	family, _, err := env.familyService.CreateFamily(testIdentity("admin-1", "Alice"), "Home")
	require.NoError(t, err)

	identity := testIdentity("admin-1", "Alice")
	for _, name := range []string{"Drill", "Hammer", "Drill bits"} {
		_, err := env.itemService.AddItem(identity, family.ID, ItemInput{Name: name, Location: "garage"})
		require.NoError(t, err)
	}

	items, err := env.itemService.SearchItems("admin-1", family.ID, "drill")
	require.NoError(t, err)
	require.Len(t, items, 2)

	items, err = env.itemService.SearchItems("admin-1", family.ID, "garage")
	require.NoError(t, err)
	require.Len(t, items, 3)

	_, err = env.itemService.SearchItems("stranger", family.ID, "drill")
	require.ErrorIs(t, err, ErrNotMemberOfFamily)
}

func TestItemService_FamilyWithItems(t *testing.T) {
	env := setupServiceTestEnv(t)

	family, items, err := env.itemService.FamilyWithItems("nobody")
	require.NoError(t, err)
	require.Nil(t, family)
	require.Nil(t, items)

	created, _, err := env.familyService.CreateFamily(testIdentity("admin-1", "Alice"), "Home")
	require.NoError(t, err)

	_, err = env.itemService.AddItem(testIdentity("admin-1", "Alice"), created.ID, ItemInput{Name: "Drill"})
	require.NoError(t, err)

	family, items, err = env.itemService.FamilyWithItems("admin-1")
	require.NoError(t, err)
	require.Equal(t, created.ID, family.ID)
	require.Len(t, items, 1)
}
