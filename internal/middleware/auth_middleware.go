package middleware

import (
	"strings"

	"go-stockme/internal/authz"
	"go-stockme/internal/repository"
	"go-stockme/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the JWT bearer token and sets user info in context
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromHeader(c, userRepo)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
		}

		setUserLocals(c, claims)
		return c.Next()
	}
}

// OptionalAuth sets user info when a valid bearer token is present but never
// rejects the call; an absent or invalid credential degrades to guest.
func OptionalAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromHeader(c, userRepo)
		if err == nil {
			setUserLocals(c, claims)
		}
		return c.Next()
	}
}

// RequireRole consults the authorization gate for actions that are purely
// role gated (no ownership component).
func RequireRole(action authz.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		if !authz.Allowed(authz.Role(role), action, false) {
			return c.Status(403).JSON(fiber.Map{
				"success": false,
				"error":   "Forbidden: role '" + role + "' may not perform '" + string(action) + "'",
			})
		}
		return c.Next()
	}
}

func claimsFromHeader(c *fiber.Ctx, userRepo repository.UserRepository) (*jwt.Claims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, jwt.ErrMissingToken
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return nil, jwt.ErrInvalidToken
	}

	claims, err := jwt.ValidateToken(parts[1])
	if err != nil {
		return nil, err
	}

	// The token must still map to a live account.
	if _, err := userRepo.FindByID(claims.UserID); err != nil {
		return nil, jwt.ErrInvalidToken
	}

	return claims, nil
}

func setUserLocals(c *fiber.Ctx, claims *jwt.Claims) {
	c.Locals("user_id", claims.UserID.String())
	c.Locals("user_email", claims.Email)
	c.Locals("user_name", claims.Name)
	c.Locals("user_role", string(claims.Role))
}
