package handler

import (
	"go-stockme/internal/model"
	"go-stockme/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.CatalogService
}

func NewProductHandler(s service.CatalogService) *ProductHandler {
	return &ProductHandler{service: s}
}

func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.List(getUserRole(c))
	if err != nil {
		return fail(c, err)
	}
	return okList(c, len(products), products)
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	product, err := h.service.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, product)
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	if err := h.service.Create(&product); err != nil {
		return fail(c, err)
	}
	return created(c, product)
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	var input service.ProductUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	product, err := h.service.Update(id, &input)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, product)
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	if err := h.service.SoftDelete(id); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{})
}

func (h *ProductHandler) UpdateStock(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	var body struct {
		StockQuantity int `json:"stock_quantity"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	product, err := h.service.SetStock(id, body.StockQuantity)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, product)
}
