package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Shubham06102003/home-inventory-api/internal/auth"
	"github.com/Shubham06102003/home-inventory-api/internal/constants"
	"github.com/Shubham06102003/home-inventory-api/internal/dto"
	"github.com/Shubham06102003/home-inventory-api/internal/models"
	"github.com/Shubham06102003/home-inventory-api/internal/repository"
	"github.com/Shubham06102003/home-inventory-api/internal/services"
)

type handlerTestEnv struct {
	db                *gorm.DB
	familyHandler     *FamilyHandler
	invitationHandler *InvitationHandler
	familyService     *services.FamilyService
	invitationService *services.InvitationService
}

func setupHandlerTestEnv(t *testing.T) handlerTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Family{},
		&models.FamilyMember{},
		&models.Invitation{},
		&models.Item{},
	)
	require.NoError(t, err)

	familyRepo := repository.NewFamilyRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)

	familyService := services.NewFamilyService(familyRepo)
	invitationService := services.NewInvitationService(familyRepo, invitationRepo)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return handlerTestEnv{
		db:                db,
		familyHandler:     NewFamilyHandler(familyService),
		invitationHandler: NewInvitationHandler(invitationService),
		familyService:     familyService,
		invitationService: invitationService,
	}
}

func authedTestContext(method, url string, body []byte, identity auth.Identity) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyIdentity, identity)

	return c, w
}

func handlerIdentity(userID, name string) auth.Identity {
	return auth.Identity{
		UserID: userID,
		Name:   name,
		Email:  name + "@example.com",
	}
}

func TestFamilyHandler_CreateFamily(t *testing.T) {
	env := setupHandlerTestEnv(t)

	body, err := json.Marshal(map[string]string{"name": "The Smiths"})
	require.NoError(t, err)

	c, w := authedTestContext(http.MethodPost, "/api/family/create", body, handlerIdentity("user-1", "Alice"))

	env.familyHandler.CreateFamily(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Family dto.FamilyDTO `json:"family"`
		Member dto.MemberDTO `json:"member"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "The Smiths", response.Family.Name)
	require.Regexp(t, `^[A-Z]+-[A-Z]+-\d{4}$`, response.Family.InviteCode)
	require.Equal(t, models.RoleAdmin, response.Member.Role)
	require.Equal(t, "Alice", response.Member.UserName)
}

func TestFamilyHandler_CreateFamily_MissingName(t *testing.T) {
	env := setupHandlerTestEnv(t)

	c, w := authedTestContext(http.MethodPost, "/api/family/create", []byte(`{}`), handlerIdentity("user-1", "Alice"))

	env.familyHandler.CreateFamily(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "error")
}

func TestFamilyHandler_GetUserFamily_NoFamily(t *testing.T) {
	env := setupHandlerTestEnv(t)

	c, w := authedTestContext(http.MethodGet, "/api/family/user", nil, handlerIdentity("user-1", "Alice"))

	env.familyHandler.GetUserFamily(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "null", string(response["family"]))
}

func TestFamilyHandler_RemoveMember_NotAdmin(t *testing.T) {
	env := setupHandlerTestEnv(t)

	body, err := json.Marshal(map[string]string{"member_id": "some-id"})
	require.NoError(t, err)

	c, w := authedTestContext(http.MethodPost, "/api/family/members/remove", body, handlerIdentity("user-1", "Alice"))

	env.familyHandler.RemoveMember(c)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestFamilyHandler_DeleteAndLeave(t *testing.T) {
	env := setupHandlerTestEnv(t)

	_, _, err := env.familyService.CreateFamily(handlerIdentity("user-1", "Alice"), "Solo")
	require.NoError(t, err)

	c, w := authedTestContext(http.MethodPost, "/api/family/delete-and-leave", nil, handlerIdentity("user-1", "Alice"))

	env.familyHandler.DeleteAndLeave(c)

	require.Equal(t, http.StatusOK, w.Code)

	c, w = authedTestContext(http.MethodGet, "/api/family/user", nil, handlerIdentity("user-1", "Alice"))
	env.familyHandler.GetUserFamily(c)

	var response map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "null", string(response["family"]))
}
