package models

import "time"

// Cart is the per-user in-progress collection of menu items. Each user has at
// most one cart, enforced by the unique index on UserID.
type Cart struct {
	ID        string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string     `json:"user_id" gorm:"uniqueIndex;type:varchar(36)"`
	Items     []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is a (menu item, quantity) pair inside a cart. At most one row per
// distinct menu item in a given cart; adding an existing item increments the
// quantity instead of inserting a duplicate row.
type CartItem struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CartID     string    `json:"cart_id" gorm:"index:idx_cart_menu_item,unique;type:varchar(36)"`
	MenuItemID string    `json:"menu_item_id" gorm:"index:idx_cart_menu_item,unique;type:varchar(36)" validate:"required,uuid"`
	Quantity   int       `json:"quantity" validate:"gte=1"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CartView is the cart joined with current catalog prices. Totals are derived
// from the live menu, which is why checkout re-snapshots prices into the order.
type CartView struct {
	Cart  Cart           `json:"cart"`
	Lines []CartViewLine `json:"lines"`
	Count int            `json:"count"`
	Total float64        `json:"total"`
}

// CartViewLine is one cart item priced against the current catalog.
type CartViewLine struct {
	ItemID     string  `json:"item_id"`
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
	Available  bool    `json:"available"`
	LineTotal  float64 `json:"line_total"`
}
