package handlers

import (
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/models"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// MenuHandler handles HTTP requests for the menu catalog.
type MenuHandler struct {
	service  *services.MenuService
	validate *validator.Validate
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(service *services.MenuService) *MenuHandler {
	return &MenuHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers public reads and admin-only writes.
func (h *MenuHandler) RegisterRoutes(router fiber.Router, auth, adminOnly fiber.Handler) {
	router.Get("/menu", h.HandleList)
	router.Get("/menu/:id", h.HandleGet)

	router.Post("/menu", auth, adminOnly, h.HandleCreate)
	router.Put("/menu/:id", auth, adminOnly, h.HandleUpdate)
	router.Delete("/menu/:id", auth, adminOnly, h.HandleDelete)
}

// HandleList returns the menu. Customers see available items only; passing
// ?all=true includes unavailable ones (the admin console uses this through
// the same public route, the data is not sensitive).
func (h *MenuHandler) HandleList(c *fiber.Ctx) error {
	includeUnavailable := c.Query("all") == "true"
	items, err := h.service.List(c.UserContext(), includeUnavailable)
	if err != nil {
		return failService(c, "Could not retrieve menu", err)
	}
	return ok(c, items)
}

// HandleGet returns a single menu item.
func (h *MenuHandler) HandleGet(c *fiber.Ctx) error {
	item, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return failService(c, "Could not retrieve menu item", err)
	}
	return ok(c, item)
}

// HandleCreate adds a menu item.
func (h *MenuHandler) HandleCreate(c *fiber.Ctx) error {
	var item models.MenuItem
	if err := c.BodyParser(&item); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := h.validate.Struct(item); err != nil {
		return failValidation(c, err)
	}
	if err := h.service.Create(c.UserContext(), &item); err != nil {
		return failService(c, "Could not create menu item", err)
	}
	return created(c, item)
}

// HandleUpdate overwrites a menu item.
func (h *MenuHandler) HandleUpdate(c *fiber.Ctx) error {
	var item models.MenuItem
	if err := c.BodyParser(&item); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	item.ID = c.Params("id")
	if err := h.validate.Struct(item); err != nil {
		return failValidation(c, err)
	}
	if err := h.service.Update(c.UserContext(), &item); err != nil {
		return failService(c, "Could not update menu item", err)
	}
	return ok(c, item)
}

// HandleDelete removes a menu item.
func (h *MenuHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return failService(c, "Could not delete menu item", err)
	}
	return okMessage(c, "Menu item deleted")
}
