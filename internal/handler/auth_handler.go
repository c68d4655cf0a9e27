package handler

import (
	"go-stockme/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input service.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	resp, err := h.service.Register(&input)
	if err != nil {
		return fail(c, err)
	}
	return created(c, resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	resp, err := h.service.Login(body.Email, body.Password)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, resp)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.service.Me(getUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, user)
}
