package repositories

import "github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/models"

// CartRepository defines the interface for cart data access.
//
// IncrementQuantity must be atomic at the storage layer (a single
// read-modify-write round trip) so two concurrent adds of the same item are
// both reflected rather than one being lost.
type CartRepository interface {
	// GetOrCreate returns the user's cart, creating an empty one if needed.
	GetOrCreate(userID string) (*models.Cart, error)
	// IncrementQuantity adds qty to the existing line for menuItemID and
	// reports whether such a line existed.
	IncrementQuantity(cartID, menuItemID string, qty int) (bool, error)
	InsertItem(item *models.CartItem) error
	// SetQuantity sets the quantity of a line exactly (not additive).
	SetQuantity(cartID, itemID string, qty int) error
	// RemoveItem deletes a line. Removing an absent line is a no-op.
	RemoveItem(cartID, itemID string) error
	Clear(cartID string) error
}
