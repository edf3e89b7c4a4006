package repositories

import "github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/models"

// OrderRepository defines the interface for order data access.
//
// UpdateStatusFrom writes the new status conditionally on the current status
// still matching, so two concurrent transitions cannot both succeed against a
// stale read.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	GetAll() ([]models.Order, error)
	GetByUserID(userID string) ([]models.Order, error)
	// UpdateStatusFrom reports whether the conditional write took effect.
	UpdateStatusFrom(id string, from, to models.OrderStatus) (bool, error)
	UpdatePaymentStatus(id string, status models.PaymentStatus, receiptRef string) error
	Delete(id string) error
}
