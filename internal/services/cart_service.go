package services

import (
	"fmt"

	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/models"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/repositories"
)

// CartService maintains the per-user cart aggregate. Quantities for a line
// are merged rather than duplicated, and totals are always derived from the
// current catalog price; checkout snapshots prices separately.
type CartService struct {
	cartRepo repositories.CartRepository
	menuRepo repositories.MenuRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, menuRepo repositories.MenuRepository) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		menuRepo: menuRepo,
	}
}

// Get returns the user's cart priced against the current catalog. Lines
// whose menu item has since been deleted remain visible with a zero price
// and Available == false so the customer can remove them.
func (s *CartService) Get(userID string) (*models.CartView, error) {
	cart, err := s.cartRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	view := &models.CartView{Cart: *cart, Lines: make([]models.CartViewLine, 0, len(cart.Items))}
	for _, item := range cart.Items {
		line := models.CartViewLine{
			ItemID:     item.ID,
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		}
		if menuItem, err := s.menuRepo.GetByID(item.MenuItemID); err == nil {
			line.Name = menuItem.Name
			line.UnitPrice = menuItem.Price
			line.Available = menuItem.Available
			line.LineTotal = menuItem.Price * float64(item.Quantity)
		}
		view.Count += item.Quantity
		view.Total += line.LineTotal
		view.Lines = append(view.Lines, line)
	}
	return view, nil
}

// AddItem puts qty of a menu item into the cart. If a line for the item
// already exists its quantity is incremented atomically at the storage layer;
// otherwise a new line is inserted.
func (s *CartService) AddItem(userID, menuItemID string, qty int) (*models.CartView, error) {
	if qty < 1 {
		qty = 1
	}
	menuItem, err := s.menuRepo.GetByID(menuItemID)
	if err != nil {
		return nil, fmt.Errorf("%w: menu item %s", ErrNotFound, menuItemID)
	}
	if !menuItem.Available {
		return nil, fmt.Errorf("%w: %s", ErrItemUnavailable, menuItem.Name)
	}

	cart, err := s.cartRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	incremented, err := s.cartRepo.IncrementQuantity(cart.ID, menuItemID, qty)
	if err != nil {
		return nil, err
	}
	if !incremented {
		item := &models.CartItem{CartID: cart.ID, MenuItemID: menuItemID, Quantity: qty}
		if err := s.cartRepo.InsertItem(item); err != nil {
			// A concurrent add may have inserted the line between the
			// UPDATE and the INSERT; fold into it.
			if retried, retryErr := s.cartRepo.IncrementQuantity(cart.ID, menuItemID, qty); retryErr != nil || !retried {
				return nil, err
			}
		}
	}
	return s.Get(userID)
}

// UpdateItem sets a line's quantity exactly. A quantity below one removes
// the line.
func (s *CartService) UpdateItem(userID, itemID string, qty int) (*models.CartView, error) {
	cart, err := s.cartRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if qty < 1 {
		if err := s.cartRepo.RemoveItem(cart.ID, itemID); err != nil {
			return nil, err
		}
		return s.Get(userID)
	}
	if err := s.cartRepo.SetQuantity(cart.ID, itemID, qty); err != nil {
		return nil, fmt.Errorf("%w: cart item %s", ErrNotFound, itemID)
	}
	return s.Get(userID)
}

// RemoveItem deletes a line from the cart. Removing a line that is not there
// is a no-op, so retried deletes stay safe.
func (s *CartService) RemoveItem(userID, itemID string) (*models.CartView, error) {
	cart, err := s.cartRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.RemoveItem(cart.ID, itemID); err != nil {
		return nil, err
	}
	return s.Get(userID)
}

// Clear empties the cart. Checkout calls this after the order is persisted.
func (s *CartService) Clear(userID string) error {
	cart, err := s.cartRepo.GetOrCreate(userID)
	if err != nil {
		return err
	}
	return s.cartRepo.Clear(cart.ID)
}
