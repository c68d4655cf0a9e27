package handler

import (
	"go-stockme/internal/authz"
	"go-stockme/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Helpers for reading user identity from context (set by auth middleware)
func getUserID(c *fiber.Ctx) uuid.UUID {
	raw, _ := c.Locals("user_id").(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func getUserRole(c *fiber.Ctx) authz.Role {
	raw, ok := c.Locals("user_role").(string)
	if !ok || raw == "" {
		return authz.RoleGuest
	}
	return authz.Role(raw)
}

func parseIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

// fail maps a service error onto the error envelope.
func fail(c *fiber.Ctx, err error) error {
	return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}

func ok(c *fiber.Ctx, data interface{}) error {
	return c.Status(200).JSON(fiber.Map{"success": true, "data": data})
}

func created(c *fiber.Ctx, data interface{}) error {
	return c.Status(201).JSON(fiber.Map{"success": true, "data": data})
}

// okList adds the count field the list contract carries.
func okList(c *fiber.Ctx, count int, data interface{}) error {
	return c.Status(200).JSON(fiber.Map{"success": true, "count": count, "data": data})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(400).JSON(fiber.Map{"success": false, "error": message})
}
