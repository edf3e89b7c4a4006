package repositories

import "github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/models"

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	Create(review *models.Review) error
	// List returns reviews; when approvedOnly is true only approved reviews
	// are returned.
	List(approvedOnly bool) ([]models.Review, error)
	GetByID(id string) (*models.Review, error)
	SetApproved(id string, approved bool) error
	Delete(id string) error
}
