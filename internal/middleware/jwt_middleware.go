package middleware

import (
	"fmt"
	"log"
	"strings"

	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/models"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/services"

	"github.com/gofiber/fiber/v2"
)

// userKey is where AuthRequired stashes the resolved user in the request
// locals. Handlers read it back through CurrentUser.
const userKey = "current_user"

// AuthRequired is a Fiber middleware that verifies the bearer token and
// attaches the resolved user to the request. Every failure is a 401; the
// message distinguishes the reason for the client and the server log.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "not authorized, no token")
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return unauthorized(c, "not authorized, no token")
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return unauthorized(c, "token failed")
		}

		user, err := authService.ResolveSubject(claims)
		if err != nil {
			log.Printf("Token subject resolution failed: %v", err)
			return unauthorized(c, "user not found")
		}

		c.Locals(userKey, user)
		return c.Next()
	}
}

// RequireRoles gates a route group to the given roles. It must be mounted
// after AuthRequired. Unknown role names are a wiring mistake, caught at
// startup rather than per request.
func RequireRoles(roles ...models.Role) fiber.Handler {
	allowed := make(map[models.Role]bool, len(roles))
	for _, role := range roles {
		if !role.Valid() {
			panic(fmt.Sprintf("middleware: unknown role %q in RequireRoles", role))
		}
		allowed[role] = true
	}

	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if !allowed[user.Role] {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": fmt.Sprintf("role not authorized: %s", user.Role),
			})
		}
		return c.Next()
	}
}

// CurrentUser returns the user AuthRequired attached to this request. Calling
// it on a route that is not behind AuthRequired is a programming error and
// panics rather than silently passing.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, ok := c.Locals(userKey).(*models.User)
	if !ok || user == nil {
		panic("middleware: CurrentUser called without AuthRequired")
	}
	return user
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
