package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/luct-reporting/api/authz"
	"github.com/luct-reporting/api/model"
	"github.com/luct-reporting/api/utils/auth"
	"github.com/luct-reporting/api/utils/response"
	"gorm.io/gorm"
)

const identityKey = "identity"

// AuthMiddleware authenticates requests and resolves the caller's identity.
// The permission and scope checks downstream key off name and faculty, so
// those always come from the user row, not from token claims.
type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	db         *gorm.DB
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtManager *auth.JWTManager, db *gorm.DB) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		db:         db,
	}
}

// Required rejects requests without a valid bearer token. On success the
// resolved identity is stored in the request context.
func (m *AuthMiddleware) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "Missing authorization token")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return response.Unauthorized(c, "Invalid authorization format")
		}

		claims, err := m.jwtManager.ValidateToken(parts[1])
		if err != nil {
			if err == auth.ErrExpiredToken {
				return response.Unauthorized(c, "Token has expired")
			}
			return response.Unauthorized(c, "Invalid token")
		}

		var user model.User
		if err := m.db.First(&user, claims.UserID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return response.Unauthorized(c, "User not found")
			}
			return response.InternalServerError(c, "Failed to load user")
		}

		c.Locals(identityKey, authz.Identity{
			UserID:  user.ID,
			Role:    user.Role,
			Name:    user.Name,
			Faculty: user.Faculty,
		})

		return c.Next()
	}
}

// GetIdentity extracts the authenticated identity from the request context
func GetIdentity(c *fiber.Ctx) (authz.Identity, bool) {
	id, ok := c.Locals(identityKey).(authz.Identity)
	return id, ok
}
