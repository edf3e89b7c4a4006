package handlers

import (
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/middleware"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/models"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles customer reviews and their moderation.
type ReviewHandler struct {
	service  *services.ReviewService
	validate *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers review routes. The public listing only ever
// serves approved reviews.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router, auth, adminOnly fiber.Handler) {
	router.Get("/reviews", h.HandleList)

	router.Post("/reviews", auth, h.HandleCreate)

	router.Put("/reviews/:id/approve", auth, adminOnly, h.HandleApprove)
	router.Delete("/reviews/:id", auth, adminOnly, h.HandleDelete)
}

// HandleList returns approved reviews.
func (h *ReviewHandler) HandleList(c *fiber.Ctx) error {
	reviews, err := h.service.List(true)
	if err != nil {
		return failService(c, "Could not retrieve reviews", err)
	}
	return ok(c, reviews)
}

// HandleCreate stores a new review for moderation.
func (h *ReviewHandler) HandleCreate(c *fiber.Ctx) error {
	var review models.Review
	if err := c.BodyParser(&review); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	review.UserID = middleware.CurrentUser(c).ID
	if err := h.validate.Struct(review); err != nil {
		return failValidation(c, err)
	}
	if err := h.service.Create(&review); err != nil {
		return failService(c, "Could not create review", err)
	}
	return created(c, review)
}

// HandleApprove marks a review as publicly visible.
func (h *ReviewHandler) HandleApprove(c *fiber.Ctx) error {
	review, err := h.service.Approve(c.Params("id"))
	if err != nil {
		return failService(c, "Could not approve review", err)
	}
	return ok(c, review)
}

// HandleDelete removes a review.
func (h *ReviewHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return failService(c, "Could not delete review", err)
	}
	return okMessage(c, "Review deleted")
}

// ContentHandler handles home-page content blocks and payment methods.
type ContentHandler struct {
	service  *services.ContentService
	validate *validator.Validate
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(service *services.ContentService) *ContentHandler {
	return &ContentHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers public reads and admin CRUD for content blocks and
// payment methods.
func (h *ContentHandler) RegisterRoutes(router fiber.Router, auth, adminOnly fiber.Handler) {
	router.Get("/content", h.HandleListBlocks)
	router.Get("/content/:key", h.HandleGetBlock)
	router.Get("/payment-methods", h.HandleListPaymentMethods)

	router.Post("/content", auth, adminOnly, h.HandleCreateBlock)
	router.Put("/content/:id", auth, adminOnly, h.HandleUpdateBlock)
	router.Delete("/content/:id", auth, adminOnly, h.HandleDeleteBlock)
	router.Post("/payment-methods", auth, adminOnly, h.HandleCreatePaymentMethod)
	router.Put("/payment-methods/:id", auth, adminOnly, h.HandleUpdatePaymentMethod)
	router.Delete("/payment-methods/:id", auth, adminOnly, h.HandleDeletePaymentMethod)
}

// HandleListBlocks returns all content blocks.
func (h *ContentHandler) HandleListBlocks(c *fiber.Ctx) error {
	blocks, err := h.service.ListBlocks()
	if err != nil {
		return failService(c, "Could not retrieve content", err)
	}
	return ok(c, blocks)
}

// HandleGetBlock returns a content block by key.
func (h *ContentHandler) HandleGetBlock(c *fiber.Ctx) error {
	block, err := h.service.GetBlock(c.Params("key"))
	if err != nil {
		return failService(c, "Could not retrieve content", err)
	}
	return ok(c, block)
}

// HandleCreateBlock stores a new content block.
func (h *ContentHandler) HandleCreateBlock(c *fiber.Ctx) error {
	var block models.ContentBlock
	if err := c.BodyParser(&block); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := h.validate.Struct(block); err != nil {
		return failValidation(c, err)
	}
	if err := h.service.CreateBlock(&block); err != nil {
		return failService(c, "Could not create content block", err)
	}
	return created(c, block)
}

// HandleUpdateBlock overwrites a content block.
func (h *ContentHandler) HandleUpdateBlock(c *fiber.Ctx) error {
	var block models.ContentBlock
	if err := c.BodyParser(&block); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	block.ID = c.Params("id")
	if err := h.validate.Struct(block); err != nil {
		return failValidation(c, err)
	}
	if err := h.service.UpdateBlock(&block); err != nil {
		return failService(c, "Could not update content block", err)
	}
	return ok(c, block)
}

// HandleDeleteBlock removes a content block.
func (h *ContentHandler) HandleDeleteBlock(c *fiber.Ctx) error {
	if err := h.service.DeleteBlock(c.Params("id")); err != nil {
		return failService(c, "Could not delete content block", err)
	}
	return okMessage(c, "Content block deleted")
}

// HandleListPaymentMethods returns active payment methods.
func (h *ContentHandler) HandleListPaymentMethods(c *fiber.Ctx) error {
	methods, err := h.service.ListPaymentMethods(true)
	if err != nil {
		return failService(c, "Could not retrieve payment methods", err)
	}
	return ok(c, methods)
}

// HandleCreatePaymentMethod stores a new payment method.
func (h *ContentHandler) HandleCreatePaymentMethod(c *fiber.Ctx) error {
	var method models.PaymentMethod
	if err := c.BodyParser(&method); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := h.validate.Struct(method); err != nil {
		return failValidation(c, err)
	}
	if err := h.service.CreatePaymentMethod(&method); err != nil {
		return failService(c, "Could not create payment method", err)
	}
	return created(c, method)
}

// HandleUpdatePaymentMethod overwrites a payment method.
func (h *ContentHandler) HandleUpdatePaymentMethod(c *fiber.Ctx) error {
	var method models.PaymentMethod
	if err := c.BodyParser(&method); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	method.ID = c.Params("id")
	if err := h.validate.Struct(method); err != nil {
		return failValidation(c, err)
	}
	if err := h.service.UpdatePaymentMethod(&method); err != nil {
		return failService(c, "Could not update payment method", err)
	}
	return ok(c, method)
}

// HandleDeletePaymentMethod removes a payment method.
func (h *ContentHandler) HandleDeletePaymentMethod(c *fiber.Ctx) error {
	if err := h.service.DeletePaymentMethod(c.Params("id")); err != nil {
		return failService(c, "Could not delete payment method", err)
	}
	return okMessage(c, "Payment method deleted")
}
