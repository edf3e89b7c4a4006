package services

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/models"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/repositories"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/pkg/rabbitmq"
)

// EventService handles catering inquiries. Their lifecycle is independent of
// the order lifecycle.
type EventService struct {
	eventRepo repositories.EventRepository
	mqClient  *rabbitmq.Client
}

// NewEventService creates a new EventService.
func NewEventService(eventRepo repositories.EventRepository, mqClient *rabbitmq.Client) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		mqClient:  mqClient,
	}
}

// Create records a new inquiry and notifies the dispatcher collaborator.
func (s *EventService) Create(event *models.Event) error {
	event.Status = models.EventPending
	if err := s.eventRepo.Create(event); err != nil {
		return err
	}

	if s.mqClient != nil {
		payload := map[string]interface{}{
			"eventID":    event.ID,
			"email":      event.Email,
			"eventDate":  event.EventDate,
			"guestCount": event.GuestCount,
		}
		body, err := json.Marshal(payload)
		if err != nil {
			log.Printf("Failed to marshal event.inquiry_received payload: %v", err)
		} else if err := s.mqClient.Publish("event.inquiry_received", body); err != nil {
			log.Printf("Warning: failed to publish event.inquiry_received for event %s: %v", event.ID, err)
		}
	}
	return nil
}

// GetAll retrieves all inquiries (staff view).
func (s *EventService) GetAll() ([]models.Event, error) {
	return s.eventRepo.GetAll()
}

// GetByID retrieves one inquiry.
func (s *EventService) GetByID(id string) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: event %s", ErrNotFound, id)
	}
	return event, nil
}

// UpdateStatus moves an inquiry to a new status.
func (s *EventService) UpdateStatus(id string, status models.EventStatus) (*models.Event, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown event status %q", ErrInvalidTransition, status)
	}
	if err := s.eventRepo.UpdateStatus(id, status); err != nil {
		return nil, fmt.Errorf("%w: event %s", ErrNotFound, id)
	}
	return s.GetByID(id)
}

// Delete removes an inquiry. Admin only; the handler enforces the role.
func (s *EventService) Delete(id string) error {
	if err := s.eventRepo.Delete(id); err != nil {
		return fmt.Errorf("%w: event %s", ErrNotFound, id)
	}
	return nil
}
