package handlers

import (
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/models"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// EventHandler handles catering inquiry routes.
type EventHandler struct {
	service  *services.EventService
	validate *validator.Validate
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(service *services.EventService) *EventHandler {
	return &EventHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers event routes. Anyone may submit an inquiry; staff
// works the queue; only admin deletes.
func (h *EventHandler) RegisterRoutes(router fiber.Router, auth, staffOnly, adminOnly fiber.Handler) {
	router.Post("/events", h.HandleCreate)

	router.Get("/events", auth, staffOnly, h.HandleGetAll)
	router.Get("/events/:id", auth, staffOnly, h.HandleGet)
	router.Put("/events/:id/status", auth, staffOnly, h.HandleUpdateStatus)

	router.Delete("/events/:id", auth, adminOnly, h.HandleDelete)
}

// HandleCreate records a new catering inquiry.
func (h *EventHandler) HandleCreate(c *fiber.Ctx) error {
	var event models.Event
	if err := c.BodyParser(&event); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := h.validate.Struct(event); err != nil {
		return failValidation(c, err)
	}
	if err := h.service.Create(&event); err != nil {
		return failService(c, "Could not submit inquiry", err)
	}
	return created(c, event)
}

// HandleGetAll returns all inquiries for the staff queue.
func (h *EventHandler) HandleGetAll(c *fiber.Ctx) error {
	events, err := h.service.GetAll()
	if err != nil {
		return failService(c, "Could not retrieve events", err)
	}
	return ok(c, events)
}

// HandleGet returns one inquiry.
func (h *EventHandler) HandleGet(c *fiber.Ctx) error {
	event, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return failService(c, "Could not retrieve event", err)
	}
	return ok(c, event)
}

// EventStatusRequest represents an inquiry status change.
type EventStatusRequest struct {
	Status models.EventStatus `json:"status" validate:"required"`
}

// HandleUpdateStatus moves an inquiry to a new status.
func (h *EventHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	var req EventStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	event, err := h.service.UpdateStatus(c.Params("id"), req.Status)
	if err != nil {
		return failService(c, "Could not update event status", err)
	}
	return ok(c, event)
}

// HandleDelete removes an inquiry.
func (h *EventHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return failService(c, "Could not delete event", err)
	}
	return okMessage(c, "Event deleted")
}
