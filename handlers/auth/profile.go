package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/luct-reporting/api/model"
	"github.com/luct-reporting/api/utils/middleware"
	"github.com/luct-reporting/api/utils/response"
	"gorm.io/gorm"
)

// Profile handles GET /api/profile
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	var user model.User
	if err := h.db.First(&user, ident.UserID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "User not found")
		}
		log.Println("profile:", err)
		return response.InternalServerError(c, "Failed to load profile")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user": UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			Name:      user.Name,
			Role:      user.Role,
			Faculty:   user.Faculty,
			CreatedAt: user.CreatedAt,
		},
	})
}
