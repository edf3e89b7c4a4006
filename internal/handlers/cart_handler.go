package handlers

import (
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/middleware"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the caller's cart. Every route
// requires authentication; the cart is always the caller's own.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes. The auth middleware sits on the
// /cart group; its prefix is distinct so no sibling route inherits it.
func (h *CartHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	cartRoutes := router.Group("/cart", auth)
	cartRoutes.Get("/", h.HandleGet)
	cartRoutes.Post("/", h.HandleAddItem)
	cartRoutes.Put("/:itemId", h.HandleUpdateItem)
	cartRoutes.Delete("/:itemId", h.HandleRemoveItem)
	cartRoutes.Delete("/", h.HandleClear)
}

// HandleGet returns the caller's cart with derived count and total.
func (h *CartHandler) HandleGet(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	view, err := h.service.Get(user.ID)
	if err != nil {
		return failService(c, "Could not retrieve cart", err)
	}
	return ok(c, view)
}

// AddItemRequest represents the body for adding an item to the cart.
type AddItemRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required,uuid"`
	Quantity   int    `json:"quantity" validate:"omitempty,gte=1"`
}

// HandleAddItem adds (or merges) an item into the caller's cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	user := middleware.CurrentUser(c)
	view, err := h.service.AddItem(user.ID, req.MenuItemID, req.Quantity)
	if err != nil {
		return failService(c, "Could not add item to cart", err)
	}
	return ok(c, view)
}

// UpdateItemRequest represents the body for setting a line's quantity.
type UpdateItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// HandleUpdateItem sets a line's quantity exactly. Quantity 0 removes it.
func (h *CartHandler) HandleUpdateItem(c *fiber.Ctx) error {
	var req UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	user := middleware.CurrentUser(c)
	view, err := h.service.UpdateItem(user.ID, c.Params("itemId"), req.Quantity)
	if err != nil {
		return failService(c, "Could not update cart item", err)
	}
	return ok(c, view)
}

// HandleRemoveItem removes a line. Removing an already-absent line succeeds.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	view, err := h.service.RemoveItem(user.ID, c.Params("itemId"))
	if err != nil {
		return failService(c, "Could not remove cart item", err)
	}
	return ok(c, view)
}

// HandleClear empties the caller's cart.
func (h *CartHandler) HandleClear(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if err := h.service.Clear(user.ID); err != nil {
		return failService(c, "Could not clear cart", err)
	}
	return okMessage(c, "Cart cleared")
}
