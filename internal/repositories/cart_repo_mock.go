package repositories

import (
	"fmt"
	"sync"

	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/models"

	"github.com/google/uuid"
)

// MockCartRepository is an in-memory implementation of CartRepository.
type MockCartRepository struct {
	carts map[string]*models.Cart // keyed by user ID
	mu    sync.Mutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		carts: make(map[string]*models.Cart),
	}
}

// GetOrCreate returns the user's cart, creating an empty one if needed.
func (r *MockCartRepository) GetOrCreate(userID string) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cart, ok := r.carts[userID]; ok {
		copied := *cart
		copied.Items = append([]models.CartItem(nil), cart.Items...)
		return &copied, nil
	}
	cart := &models.Cart{ID: uuid.New().String(), UserID: userID}
	r.carts[userID] = cart
	copied := *cart
	return &copied, nil
}

func (r *MockCartRepository) findCart(cartID string) *models.Cart {
	for _, cart := range r.carts {
		if cart.ID == cartID {
			return cart
		}
	}
	return nil
}

// IncrementQuantity adds qty to an existing line, reporting whether it existed.
func (r *MockCartRepository) IncrementQuantity(cartID, menuItemID string, qty int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart := r.findCart(cartID)
	if cart == nil {
		return false, fmt.Errorf("cart with ID %s not found", cartID)
	}
	for i := range cart.Items {
		if cart.Items[i].MenuItemID == menuItemID {
			cart.Items[i].Quantity += qty
			return true, nil
		}
	}
	return false, nil
}

// InsertItem adds a new line to a cart.
func (r *MockCartRepository) InsertItem(item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart := r.findCart(item.CartID)
	if cart == nil {
		return fmt.Errorf("cart with ID %s not found", item.CartID)
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	cart.Items = append(cart.Items, *item)
	return nil
}

// SetQuantity sets the quantity of a line exactly.
func (r *MockCartRepository) SetQuantity(cartID, itemID string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart := r.findCart(cartID)
	if cart == nil {
		return fmt.Errorf("cart with ID %s not found", cartID)
	}
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items[i].Quantity = qty
			return nil
		}
	}
	return fmt.Errorf("cart item with ID %s not found for update", itemID)
}

// RemoveItem deletes a line from a cart. Removing an absent line is a no-op.
func (r *MockCartRepository) RemoveItem(cartID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart := r.findCart(cartID)
	if cart == nil {
		return fmt.Errorf("cart with ID %s not found", cartID)
	}
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			return nil
		}
	}
	return nil
}

// Clear removes every line from a cart.
func (r *MockCartRepository) Clear(cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart := r.findCart(cartID)
	if cart == nil {
		return fmt.Errorf("cart with ID %s not found", cartID)
	}
	cart.Items = nil
	return nil
}
