package handlers

import (
	"log"

	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/middleware"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/models"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication and account management.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes. Register and login are
// open; the profile routes carry the auth middleware per route so nothing
// leaks onto sibling paths.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)

	authRoutes.Get("/profile", auth, h.HandleGetProfile)
	authRoutes.Put("/profile", auth, h.HandleUpdateProfile)
	authRoutes.Put("/password", auth, h.HandleChangePassword)
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := h.validate.Struct(user); err != nil {
		return failValidation(c, err)
	}

	if err := h.authService.Register(&user); err != nil {
		log.Printf("Error registering user: %v", err)
		return failService(c, "Registration failed", err)
	}

	// For security, do not return the password hash
	user.Password = ""
	return created(c, user)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles user login and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	token, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		log.Printf("Error during login for %s: %v", req.Email, err)
		return failService(c, "Authentication failed", err)
	}

	user.Password = ""
	return ok(c, fiber.Map{"token": token, "user": user})
}

// HandleGetProfile returns the caller's account record.
func (h *AuthHandler) HandleGetProfile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	profile, err := h.authService.GetProfile(user.ID)
	if err != nil {
		return failService(c, "Could not load profile", err)
	}
	profile.Password = ""
	return ok(c, profile)
}

// ProfileUpdateRequest represents the mutable profile fields.
type ProfileUpdateRequest struct {
	Name    string `json:"name" validate:"omitempty,min=2,max=100"`
	Phone   string `json:"phone" validate:"omitempty,min=7,max=20"`
	Address string `json:"address" validate:"omitempty,max=255"`
}

// HandleUpdateProfile updates the caller's own profile fields.
func (h *AuthHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var req ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	user := middleware.CurrentUser(c)
	updated, err := h.authService.UpdateProfile(user.ID, req.Name, req.Phone, req.Address)
	if err != nil {
		return failService(c, "Could not update profile", err)
	}
	updated.Password = ""
	return ok(c, updated)
}

// PasswordChangeRequest represents a password change.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// HandleChangePassword verifies the current password and stores a new one.
func (h *AuthHandler) HandleChangePassword(c *fiber.Ctx) error {
	var req PasswordChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	user := middleware.CurrentUser(c)
	if err := h.authService.ChangePassword(user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return failService(c, "Could not change password", err)
	}
	return okMessage(c, "Password updated")
}
