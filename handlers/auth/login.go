package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/luct-reporting/api/model"
	authutil "github.com/luct-reporting/api/utils/auth"
	"github.com/luct-reporting/api/utils/response"
	"github.com/luct-reporting/api/utils/validation"
	"gorm.io/gorm"
)

// LoginRequest represents a user login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /api/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationFailed(c, validation.FormatValidationErrors(err))
	}

	ip := c.IP()

	var user model.User
	if err := h.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Println("login:", err)
			return response.InternalServerError(c, "Failed to load user")
		}
		// Failed attempts count even when the account does not exist, so
		// probing for valid emails costs the same as guessing passwords.
		if h.bruteForceProtection != nil {
			h.bruteForceProtection.RecordFailedAttempt(c, ip)
		}
		return response.Unauthorized(c, "Invalid credentials")
	}

	if err := authutil.VerifyPassword(user.PasswordHash, req.Password); err != nil {
		if h.bruteForceProtection != nil {
			h.bruteForceProtection.RecordFailedAttempt(c, ip)
		}
		return response.Unauthorized(c, "Invalid credentials")
	}

	if h.bruteForceProtection != nil {
		h.bruteForceProtection.RecordSuccessfulAttempt(c, ip)
	}

	token, err := h.jwtManager.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		log.Println("login:", err)
		return response.InternalServerError(c, "Failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
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
