package handlers

import (
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/models"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CouponHandler handles coupon validation and the admin CRUD over coupons.
type CouponHandler struct {
	service  *services.CouponService
	validate *validator.Validate
}

// NewCouponHandler creates a new CouponHandler.
func NewCouponHandler(service *services.CouponService) *CouponHandler {
	return &CouponHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers coupon routes. Validation is open to any
// authenticated customer; apply is for staff reconciliation; CRUD is admin.
func (h *CouponHandler) RegisterRoutes(router fiber.Router, auth, staffOnly, adminOnly fiber.Handler) {
	router.Post("/coupons/validate", auth, h.HandleValidate)

	router.Post("/coupons/:id/apply", auth, staffOnly, h.HandleApply)

	router.Get("/coupons", auth, adminOnly, h.HandleGetAll)
	router.Post("/coupons", auth, adminOnly, h.HandleCreate)
	router.Put("/coupons/:id", auth, adminOnly, h.HandleUpdate)
	router.Delete("/coupons/:id", auth, adminOnly, h.HandleDelete)
}

// ValidateRequest represents a coupon validation check.
type ValidateRequest struct {
	Code     string  `json:"code" validate:"required"`
	Subtotal float64 `json:"subtotal" validate:"gte=0"`
}

// HandleValidate checks a code and returns the discount it would grant.
func (h *CouponHandler) HandleValidate(c *fiber.Ctx) error {
	var req ValidateRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	coupon, discount, err := h.service.Validate(req.Code, req.Subtotal)
	if err != nil {
		return failService(c, "Coupon validation failed", err)
	}
	return ok(c, fiber.Map{"coupon": coupon, "discount": discount})
}

// ApplyRequest represents a manual coupon application to an order.
type ApplyRequest struct {
	OrderID  string  `json:"order_id" validate:"required,uuid"`
	Subtotal float64 `json:"subtotal" validate:"gte=0"`
}

// HandleApply consumes a usage slot for an order. Re-applying the same coupon
// to the same order is a no-op.
func (h *CouponHandler) HandleApply(c *fiber.Ctx) error {
	var req ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	coupon, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return failService(c, "Could not apply coupon", err)
	}
	discount, err := h.service.Apply(coupon.Code, req.OrderID, req.Subtotal)
	if err != nil {
		return failService(c, "Could not apply coupon", err)
	}
	return ok(c, fiber.Map{"discount": discount})
}

// HandleGetAll returns every coupon for the admin console.
func (h *CouponHandler) HandleGetAll(c *fiber.Ctx) error {
	coupons, err := h.service.GetAll()
	if err != nil {
		return failService(c, "Could not retrieve coupons", err)
	}
	return ok(c, coupons)
}

// HandleCreate stores a new coupon.
func (h *CouponHandler) HandleCreate(c *fiber.Ctx) error {
	var coupon models.Coupon
	if err := c.BodyParser(&coupon); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := h.validate.Struct(coupon); err != nil {
		return failValidation(c, err)
	}
	if err := h.service.Create(&coupon); err != nil {
		return failService(c, "Could not create coupon", err)
	}
	return created(c, coupon)
}

// HandleUpdate overwrites a coupon.
func (h *CouponHandler) HandleUpdate(c *fiber.Ctx) error {
	var coupon models.Coupon
	if err := c.BodyParser(&coupon); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	coupon.ID = c.Params("id")
	if err := h.validate.Struct(coupon); err != nil {
		return failValidation(c, err)
	}
	if err := h.service.Update(&coupon); err != nil {
		return failService(c, "Could not update coupon", err)
	}
	return ok(c, coupon)
}

// HandleDelete removes a coupon.
func (h *CouponHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return failService(c, "Could not delete coupon", err)
	}
	return okMessage(c, "Coupon deleted")
}
