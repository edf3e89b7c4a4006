package models

import (
	"time"

	"gorm.io/gorm"
)

// EventStatus is the lifecycle state of a catering inquiry. It is independent
// of the order lifecycle.
type EventStatus string

const (
	EventPending    EventStatus = "pending"
	EventConfirmed  EventStatus = "confirmed"
	EventProcessing EventStatus = "processing"
	EventCompleted  EventStatus = "completed"
	EventCancelled  EventStatus = "cancelled"
)

// Valid reports whether s is a known event status.
func (s EventStatus) Valid() bool {
	switch s {
	case EventPending, EventConfirmed, EventProcessing, EventCompleted, EventCancelled:
		return true
	}
	return false
}

// Event is a catering inquiry submitted by a customer.
type Event struct {
	ID          string      `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string      `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Email       string      `json:"email" gorm:"type:varchar(255)" validate:"required,email"`
	Phone       string      `json:"phone" gorm:"type:varchar(20)" validate:"required,min=7,max=20"`
	EventDate   time.Time   `json:"event_date" validate:"required"`
	GuestCount  int         `json:"guest_count" validate:"required,gte=1"`
	Message     string      `json:"message" gorm:"type:varchar(1000)" validate:"omitempty,max=1000"`
	Status      EventStatus `json:"status" gorm:"type:varchar(20);default:pending"`
	FlyerURL    string      `json:"flyer_url" gorm:"type:varchar(255)"` // reference to an uploaded flyer, stored by a collaborator
	gorm.Model
}
