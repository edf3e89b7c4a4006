package handlers

import (
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/middleware"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/models"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles checkout and the order lifecycle routes.
type OrderHandler struct {
	orderService    *services.OrderService
	checkoutService *services.CheckoutService
	validate        *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService *services.OrderService, checkoutService *services.CheckoutService) *OrderHandler {
	return &OrderHandler{
		orderService:    orderService,
		checkoutService: checkoutService,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the checkout and order routes. staffOnly gates
// worker/admin routes, adminOnly the admin ones; both run after auth.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, auth, staffOnly, adminOnly fiber.Handler) {
	router.Post("/checkout", auth, h.HandleCheckout)

	router.Get("/orders/myorders", auth, h.HandleMyOrders)
	router.Get("/orders/:id", auth, h.HandleGetOrder)
	router.Put("/orders/:id/cancel", auth, h.HandleCancelOrder)

	router.Get("/orders", auth, staffOnly, h.HandleGetOrders)
	router.Put("/orders/:id/status", auth, staffOnly, h.HandleUpdateStatus)
	router.Put("/orders/:id/payment", auth, staffOnly, h.HandleUpdatePayment)

	router.Delete("/orders/:id", auth, adminOnly, h.HandleDeleteOrder)
}

// HandleCheckout converts the caller's cart into an order. The payment proof
// file, if any, was already stored by the upload collaborator; only its
// reference travels here.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	var req services.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	user := middleware.CurrentUser(c)
	order, err := h.checkoutService.Checkout(user.ID, req)
	if err != nil {
		return failService(c, "Checkout failed", err)
	}
	return created(c, order)
}

// HandleGetOrders retrieves all orders (staff view).
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.GetAll()
	if err != nil {
		return failService(c, "Could not retrieve orders", err)
	}
	return ok(c, orders)
}

// HandleMyOrders retrieves the caller's own orders.
func (h *OrderHandler) HandleMyOrders(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	orders, err := h.orderService.GetByUser(user.ID)
	if err != nil {
		return failService(c, "Could not retrieve orders", err)
	}
	return ok(c, orders)
}

// HandleGetOrder retrieves one order; customers only see their own.
func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	order, err := h.orderService.Get(c.Params("id"), user)
	if err != nil {
		return failService(c, "Could not retrieve order", err)
	}
	return ok(c, order)
}

// StatusUpdateRequest represents a delivery-status transition.
type StatusUpdateRequest struct {
	Status models.OrderStatus `json:"status" validate:"required"`
}

// HandleUpdateStatus advances an order along the lifecycle graph.
func (h *OrderHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	var req StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	order, err := h.orderService.UpdateStatus(c.Params("id"), req.Status)
	if err != nil {
		return failService(c, "Could not update order status", err)
	}
	return ok(c, order)
}

// PaymentUpdateRequest represents a payment-status change with an optional
// receipt reference.
type PaymentUpdateRequest struct {
	PaymentStatus  models.PaymentStatus `json:"payment_status" validate:"required"`
	PaymentReceipt string               `json:"payment_receipt"`
}

// HandleUpdatePayment sets the payment status independently of delivery
// status.
func (h *OrderHandler) HandleUpdatePayment(c *fiber.Ctx) error {
	var req PaymentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	order, err := h.orderService.UpdatePaymentStatus(c.Params("id"), req.PaymentStatus, req.PaymentReceipt)
	if err != nil {
		return failService(c, "Could not update payment status", err)
	}
	return ok(c, order)
}

// HandleCancelOrder lets the owning customer cancel a still-pending order.
func (h *OrderHandler) HandleCancelOrder(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	order, err := h.orderService.Cancel(c.Params("id"), user)
	if err != nil {
		return failService(c, "Could not cancel order", err)
	}
	return ok(c, order)
}

// HandleDeleteOrder hard-deletes an order.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	if err := h.orderService.Delete(c.Params("id")); err != nil {
		return failService(c, "Could not delete order", err)
	}
	return okMessage(c, "Order deleted")
}
