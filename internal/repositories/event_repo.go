package repositories

import "github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/models"

// EventRepository defines the interface for catering inquiry data access.
type EventRepository interface {
	Create(event *models.Event) error
	GetAll() ([]models.Event, error)
	GetByID(id string) (*models.Event, error)
	UpdateStatus(id string, status models.EventStatus) error
	Delete(id string) error
}
