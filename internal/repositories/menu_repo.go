package repositories

import "github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/models"

// MenuRepository defines the interface for menu item data access.
type MenuRepository interface {
	// List returns menu items; when includeUnavailable is false only items
	// currently flagged available are returned.
	List(includeUnavailable bool) ([]models.MenuItem, error)
	GetByID(id string) (*models.MenuItem, error)
	Create(item *models.MenuItem) error
	Update(item *models.MenuItem) error
	Delete(id string) error
}
