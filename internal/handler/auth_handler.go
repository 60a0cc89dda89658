package handler

import (
	"strings"

	"go-products-api/internal/middleware"
	"go-products-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// LoginPath is the login entry point; auth failures redirect here
const LoginPath = "/api/v1/auth/login"

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents the login request body (JSON or form encoded)
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// LoginForm handles the login entry point for reads.
// GET /api/v1/auth/login
// An already-authenticated requester gets told so; anyone else gets
// the form descriptor.
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	if token := bearerToken(c); token != "" {
		if _, err := h.authService.ValidateSession(token); err == nil {
			return c.JSON(fiber.Map{"message": "Already logged in"})
		}
	}

	return c.JSON(fiber.Map{
		"form": fiber.Map{
			"fields": []fiber.Map{
				{"name": "username", "type": "text", "required": true},
				{"name": "password", "type": "password", "required": true},
			},
		},
	})
}

// Login handles credential submission.
// POST /api/v1/auth/login
// On failure the client is sent back to the login entry point with the
// error; no session is established.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Username and password are required"})
	}

	response, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		c.Set("Location", LoginPath)
		return c.Status(fiber.StatusFound).JSON(fiber.Map{"error": "Invalid username or password"})
	}

	return c.JSON(fiber.Map{
		"message":    "Login successful",
		"token":      response.Token,
		"user":       response.User,
		"privileges": response.Privileges,
	})
}

// Logout destroys the session and sends the client back to the login
// entry point. Registered for every method; the original behaved the
// same way.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	userID, err := uuid.Parse(getUserID(c))
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	if err := h.authService.Logout(userID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to terminate session"})
	}

	return c.Redirect(LoginPath, fiber.StatusFound)
}

// bearerToken extracts the token from the Authorization header,
// returning "" when absent or malformed.
func bearerToken(c *fiber.Ctx) string {
	parts := strings.Split(c.Get("Authorization"), " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return parts[1]
}

// Helpers to read user info from the request context (set by RequireAuth)
func getUserID(c *fiber.Ctx) string {
	userID := c.Locals(middleware.LocalUserID)
	if userID == nil {
		return ""
	}
	return userID.(string)
}

func getUsername(c *fiber.Ctx) string {
	username := c.Locals(middleware.LocalUsername)
	if username == nil {
		return ""
	}
	return username.(string)
}
