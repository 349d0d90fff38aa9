package handlers

import (
	"github.com/gofiber/fiber/v2"

	"loja/internal/services"
	"loja/internal/validators"
)

// CustomerHandler handles HTTP requests for clientes.
type CustomerHandler struct {
	service *services.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(service *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		service: service,
	}
}

// RegisterRoutes registers the customer routes with the Fiber router.
func (h *CustomerHandler) RegisterRoutes(router fiber.Router) {
	customerRoutes := router.Group("/clientes")
	customerRoutes.Get("/email/:email", h.HandleFindByEmail)
	customerRoutes.Get("/", h.HandleList)
	customerRoutes.Post("/", h.HandleCreate)
	customerRoutes.Get("/:id", h.HandleGet)
	customerRoutes.Put("/:id", h.HandleUpdate)
	customerRoutes.Delete("/:id", h.HandleDelete)
}

// HandleList returns a paginated, searchable customer listing.
func (h *CustomerHandler) HandleList(c *fiber.Ctx) error {
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
	return success(c, fiber.StatusOK, "customers retrieved successfully", page)
}

// HandleGet returns a single customer by id.
func (h *CustomerHandler) HandleGet(c *fiber.Ctx) error {
	id, err := validators.ParseID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	customer, err := h.service.Get(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "customer retrieved successfully", customer)
}

// HandleCreate creates a new customer.
func (h *CustomerHandler) HandleCreate(c *fiber.Ctx) error {
	var input validators.CustomerCreateInput
	if err := c.BodyParser(&input); err != nil {
		return badBody(c, err)
	}

	customer, err := h.service.Create(c.Context(), input)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusCreated, "customer created successfully", customer)
}

// HandleUpdate applies a partial update to a customer.
func (h *CustomerHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := validators.ParseID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	var input validators.CustomerUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return badBody(c, err)
	}

	customer, err := h.service.Update(c.Context(), id, input)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "customer updated successfully", customer)
}

// HandleDelete removes a customer.
func (h *CustomerHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := validators.ParseID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "customer deleted successfully", nil)
}

// HandleFindByEmail returns the customer registered under the given email.
func (h *CustomerHandler) HandleFindByEmail(c *fiber.Ctx) error {
	customer, err := h.service.FindByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "customer retrieved successfully", customer)
}
