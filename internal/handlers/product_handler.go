package handlers

import (
	"github.com/gofiber/fiber/v2"

	"loja/internal/apperrors"
	"loja/internal/services"
	"loja/internal/validators"
)

// ProductHandler handles HTTP requests for produtos.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber router.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/produtos")
	productRoutes.Get("/estoque/baixo", h.HandleLowStock)
	productRoutes.Get("/", h.HandleList)
	productRoutes.Post("/", h.HandleCreate)
	productRoutes.Get("/:id", h.HandleGet)
	productRoutes.Put("/:id", h.HandleUpdate)
	productRoutes.Delete("/:id", h.HandleDelete)
	productRoutes.Patch("/:id/estoque", h.HandleUpdateStock)
	productRoutes.Get("/:id/estoque/disponibilidade", h.HandleCheckStock)
}

// HandleList returns a paginated, searchable product listing.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	params, err := validators.ParseListParams(
		c.Query("page"), c.Query("limit"), c.Query("search"),
	)
	if err != nil {
		return fail(c, err)
	}

	page, err := h.service.List(c.Context(), params)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "products retrieved successfully", page)
}

// HandleGet returns a single product by id.
func (h *ProductHandler) HandleGet(c *fiber.Ctx) error {
	id, err := validators.ParseID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	product, err := h.service.Get(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "product retrieved successfully", product)
}

// HandleCreate creates a new product.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var input validators.ProductCreateInput
	if err := c.BodyParser(&input); err != nil {
		return badBody(c, err)
	}

	product, err := h.service.Create(c.Context(), input)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusCreated, "product created successfully", product)
}

// HandleUpdate applies a partial update to a product.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := validators.ParseID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	var input validators.ProductUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return badBody(c, err)
	}

	product, err := h.service.Update(c.Context(), id, input)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "product updated successfully", product)
}

// HandleDelete removes a product.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := validators.ParseID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "product deleted successfully", nil)
}

// HandleLowStock lists products at or below the limite query threshold.
func (h *ProductHandler) HandleLowStock(c *fiber.Ctx) error {
	threshold, err := validators.ParseThreshold(c.Query("limite"))
	if err != nil {
		return fail(c, err)
	}

	products, err := h.service.FindWithLowStock(c.Context(), threshold)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "low-stock products retrieved successfully",
		fiber.Map{"produtos": products})
}

// HandleUpdateStock writes a new stock level for a product.
func (h *ProductHandler) HandleUpdateStock(c *fiber.Ctx) error {
	id, err := validators.ParseID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	var body struct {
		Quantity *int `json:"quantidade"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badBody(c, err)
	}
	if body.Quantity == nil {
		return fail(c, apperrors.Validation("quantidade is required"))
	}

	product, err := h.service.UpdateStock(c.Context(), id, *body.Quantity)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "stock updated successfully", product)
}

// HandleCheckStock reports whether the product can cover the requested
// quantity (default 1).
func (h *ProductHandler) HandleCheckStock(c *fiber.Ctx) error {
	id, err := validators.ParseID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	quantity, err := validators.ParseQuantity(c.Query("quantidade"), 1)
	if err != nil {
		return fail(c, err)
	}

	available, err := h.service.CheckStockAvailability(c.Context(), id, quantity)
	if err != nil {
		return fail(c, err)
	}

	message := "stock available"
	if !available {
		message = "insufficient stock"
	}
	return success(c, fiber.StatusOK, message, fiber.Map{
		"disponivel": available,
		"quantidade": quantity,
	})
}
