package middleware

import (
	"errors"
	"strings"
	"todo-backend/internal/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	localUserID    = "userID"
	localUserEmail = "userEmail"
)

// RequireAuth validates the bearer token and stores the authenticated subject
// on the request context.
func RequireAuth(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "Not authenticated",
			})
		}

		claims, err := auth.Decode(secret, strings.TrimPrefix(header, "Bearer "))
		if errors.Is(err, auth.ErrExpiredToken) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "Token has expired",
			})
		}
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "Invalid token",
			})
		}

		// Parse into a canonical UUID so the ownership comparison cannot be
		// tripped up by case or formatting differences.
		subject, err := uuid.Parse(claims.Subject)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "Invalid token: missing user ID",
			})
		}

		c.Locals(localUserID, subject)
		c.Locals(localUserEmail, claims.Email)
		return c.Next()
	}
}

// RequireOwner compares the token subject against the :userId path segment.
// Must run after RequireAuth.
func RequireOwner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		subject, ok := c.Locals(localUserID).(uuid.UUID)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "Authentication required",
			})
		}

		pathID, err := uuid.Parse(c.Params("userId"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"detail": "Invalid user ID format",
			})
		}

		if subject != pathID {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"detail": "Access denied: you can only access your own resources",
			})
		}
		return c.Next()
	}
}

// Subject returns the authenticated user id stored by RequireAuth.
func Subject(c *fiber.Ctx) (uuid.UUID, bool) {
	subject, ok := c.Locals(localUserID).(uuid.UUID)
	return subject, ok
}
