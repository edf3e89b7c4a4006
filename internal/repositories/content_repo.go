package repositories

import "github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/models"

// ContentRepository defines the interface for home-page content blocks.
type ContentRepository interface {
	Create(block *models.ContentBlock) error
	Update(block *models.ContentBlock) error
	Delete(id string) error
	GetAll() ([]models.ContentBlock, error)
	GetByKey(key string) (*models.ContentBlock, error)
}

// PaymentMethodRepository defines the interface for payment method data access.
type PaymentMethodRepository interface {
	Create(method *models.PaymentMethod) error
	Update(method *models.PaymentMethod) error
	Delete(id string) error
	// List returns payment methods; when activeOnly is true only active
	// methods are returned.
	List(activeOnly bool) ([]models.PaymentMethod, error)
	GetByID(id string) (*models.PaymentMethod, error)
	GetByName(name string) (*models.PaymentMethod, error)
}
