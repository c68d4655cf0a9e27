package handler

import (
	"go-stockme/internal/service"

	"github.com/gofiber/fiber/v2"
)

type RequestHandler struct {
	service service.RequestService
}

func NewRequestHandler(s service.RequestService) *RequestHandler {
	return &RequestHandler{service: s}
}

func (h *RequestHandler) GetRequests(c *fiber.Ctx) error {
	requests, err := h.service.List(getUserRole(c), getUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return okList(c, len(requests), requests)
}

func (h *RequestHandler) GetRequest(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid request id")
	}

	request, err := h.service.Get(id, getUserRole(c), getUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, request)
}

func (h *RequestHandler) CreateRequest(c *fiber.Ctx) error {
	var input service.CreateRequestInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	request, err := h.service.Create(getUserID(c), getUserRole(c), &input)
	if err != nil {
		return fail(c, err)
	}
	return created(c, request)
}

func (h *RequestHandler) UpdateRequest(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid request id")
	}

	var input service.UpdateRequestInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	request, err := h.service.Update(id, getUserRole(c), getUserID(c), &input)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, request)
}

func (h *RequestHandler) DeleteRequest(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid request id")
	}

	if err := h.service.Delete(id, getUserRole(c), getUserID(c)); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{})
}

func (h *RequestHandler) CancelRequest(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid request id")
	}

	request, err := h.service.Cancel(id, getUserRole(c), getUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, request)
}

func (h *RequestHandler) ApproveRequest(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid request id")
	}

	request, err := h.service.Approve(id, getUserRole(c), getUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, request)
}

func (h *RequestHandler) RejectRequest(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid request id")
	}

	var body struct {
		RejectionReason string `json:"rejection_reason"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	request, err := h.service.Reject(id, getUserRole(c), getUserID(c), body.RejectionReason)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, request)
}
