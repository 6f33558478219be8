package middleware

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Shubham06102003/home-inventory-api/internal/auth"
	"github.com/Shubham06102003/home-inventory-api/internal/constants"
	apierrors "github.com/Shubham06102003/home-inventory-api/internal/errors"
	"github.com/Shubham06102003/home-inventory-api/internal/services"
)

// RequireAuth validates the Bearer token issued by the identity provider and
// stores the asserted identity in the request context.
func RequireAuth(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			apierrors.Unauthorized(c, auth.ErrMissingToken.Error())
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		identity, err := jwtManager.Validate(parts[1])
		if err != nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyIdentity, *identity)
		c.Next()
	}
}

// SyncIdentity refreshes the caller's profile snapshot once per request,
// before any domain operation runs. A failed sync is logged but does not fail
// the request; the snapshot is advisory.
func SyncIdentity(userService *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity, ok := GetIdentity(c); ok {
			if err := userService.SyncProfile(identity); err != nil {
				slog.Warn("identity sync failed", "user_id", identity.UserID, "error", err)
			}
		}
		c.Next()
	}
}

// GetIdentity retrieves the authenticated identity from the context.
func GetIdentity(c *gin.Context) (auth.Identity, bool) {
	value, exists := c.Get(constants.ContextKeyIdentity)
	if !exists {
		return auth.Identity{}, false
	}
	identity, ok := value.(auth.Identity)
	return identity, ok
}
