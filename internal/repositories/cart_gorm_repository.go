package repositories

import (
	"fmt"

	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetOrCreate returns the user's cart with its items, creating an empty cart
// on first use. The unique index on user_id keeps this to one cart per user
// even if two first requests race.
func (r *GORMCartRepository) GetOrCreate(userID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Preload("Items").First(&cart, "user_id = ?", userID).Error
	if err == nil {
		return &cart, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}

	cart = models.Cart{ID: uuid.New().String(), UserID: userID}
	if err := r.db.Create(&cart).Error; err != nil {
		// Lost the race: another request created the cart first.
		if fetchErr := r.db.Preload("Items").First(&cart, "user_id = ?", userID).Error; fetchErr == nil {
			return &cart, nil
		}
		return nil, fmt.Errorf("failed to create cart for user %s: %w", userID, err)
	}
	return &cart, nil
}

// IncrementQuantity atomically adds qty to an existing line in a single
// UPDATE, avoiding the lost-update window of a read-then-write pair.
// It reports whether a line for menuItemID existed.
func (r *GORMCartRepository) IncrementQuantity(cartID, menuItemID string, qty int) (bool, error) {
	res := r.db.Model(&models.CartItem{}).
		Where("cart_id = ? AND menu_item_id = ?", cartID, menuItemID).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", qty))
	if res.Error != nil {
		return false, fmt.Errorf("failed to increment quantity: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// InsertItem adds a new line to a cart.
func (r *GORMCartRepository) InsertItem(item *models.CartItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to insert cart item: %w", err)
	}
	return nil
}

// SetQuantity sets the quantity of a line exactly.
func (r *GORMCartRepository) SetQuantity(cartID, itemID string, qty int) error {
	res := r.db.Model(&models.CartItem{}).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		UpdateColumn("quantity", qty)
	if res.Error != nil {
		return fmt.Errorf("failed to set quantity: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item with ID %s not found for update", itemID)
	}
	return nil
}

// RemoveItem deletes a line from a cart. Removing an absent line is a no-op.
func (r *GORMCartRepository) RemoveItem(cartID, itemID string) error {
	res := r.db.Delete(&models.CartItem{}, "id = ? AND cart_id = ?", itemID, cartID)
	if res.Error != nil {
		return fmt.Errorf("failed to remove cart item: %w", res.Error)
	}
	return nil
}

// Clear removes every line from a cart.
func (r *GORMCartRepository) Clear(cartID string) error {
	if err := r.db.Delete(&models.CartItem{}, "cart_id = ?", cartID).Error; err != nil {
		return fmt.Errorf("failed to clear cart %s: %w", cartID, err)
	}
	return nil
}
