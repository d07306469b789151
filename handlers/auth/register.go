package auth

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/luct-reporting/api/model"
	authutil "github.com/luct-reporting/api/utils/auth"
	"github.com/luct-reporting/api/utils/middleware"
	"github.com/luct-reporting/api/utils/response"
	"github.com/luct-reporting/api/utils/validation"
	"gorm.io/gorm"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	db                   *gorm.DB
	jwtManager           *authutil.JWTManager
	bruteForceProtection *middleware.BruteForceProtection
	validator            *validation.Validator
}

// NewAuthHandler creates a new auth handler. bruteForceProtection may be
// nil when Redis is unavailable.
func NewAuthHandler(db *gorm.DB, jwtManager *authutil.JWTManager, bruteForceProtection *middleware.BruteForceProtection) *AuthHandler {
	return &AuthHandler{
		db:                   db,
		jwtManager:           jwtManager,
		bruteForceProtection: bruteForceProtection,
		validator:            validation.NewValidator(),
	}
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=student lecturer principal_lecturer program_leader"`
	Faculty  string `json:"faculty"`
}

// UserResponse represents user data in responses
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Faculty   string    `json:"faculty,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Register handles POST /api/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationFailed(c, validation.FormatValidationErrors(err))
	}

	var existing model.User
	if err := h.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return response.Conflict(c, "User already exists")
	}

	hashed, err := authutil.HashPassword(req.Password)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	user := model.User{
		Email:        req.Email,
		PasswordHash: hashed,
		Name:         req.Name,
		Role:         req.Role,
		Faculty:      req.Faculty,
	}

	if err := h.db.Create(&user).Error; err != nil {
		log.Println("register:", err)
		return response.InternalServerError(c, "Failed to create user")
	}

	return response.Created(c, "User registered successfully", UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		Faculty:   user.Faculty,
		CreatedAt: user.CreatedAt,
	})
}
