package services_test

import (
	"testing"

	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/models"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/repositories"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/services"

	"github.com/stretchr/testify/assert"
)

func newCartFixture(t *testing.T) (*services.CartService, *repositories.MockMenuRepository) {
	t.Helper()
	menuRepo := repositories.NewMockMenuRepository()
	cartRepo := repositories.NewMockCartRepository()
	return services.NewCartService(cartRepo, menuRepo), menuRepo
}

func seedMenuItem(t *testing.T, repo *repositories.MockMenuRepository, name string, price float64, available bool) *models.MenuItem {
	t.Helper()
	item := &models.MenuItem{Name: name, Price: price, Category: "drinks", Available: available}
	assert.NoError(t, repo.Create(item))
	return item
}

func TestCartService_AddItemMergesDuplicates(t *testing.T) {
	cartService, menuRepo := newCartFixture(t)
	latte := seedMenuItem(t, menuRepo, "Latte", 4.00, true)

	view, err := cartService.AddItem("user-1", latte.ID, 1)
	assert.NoError(t, err)
	assert.Len(t, view.Lines, 1)

	// Adding the same item again increments quantity instead of duplicating
	view, err = cartService.AddItem("user-1", latte.ID, 1)
	assert.NoError(t, err)
	assert.Len(t, view.Lines, 1)
	assert.Equal(t, 2, view.Lines[0].Quantity)
	assert.Equal(t, 2, view.Count)
	assert.InDelta(t, 8.00, view.Total, 0.001)
}

func TestCartService_AddUnknownOrUnavailableItem(t *testing.T) {
	cartService, menuRepo := newCartFixture(t)
	stale := seedMenuItem(t, menuRepo, "Day-old Scone", 1.00, false)

	_, err := cartService.AddItem("user-1", "00000000-0000-0000-0000-000000000000", 1)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = cartService.AddItem("user-1", stale.ID, 1)
	assert.ErrorIs(t, err, services.ErrItemUnavailable)
}

func TestCartService_UpdateItemZeroRemoves(t *testing.T) {
	cartService, menuRepo := newCartFixture(t)
	latte := seedMenuItem(t, menuRepo, "Latte", 4.00, true)

	view, err := cartService.AddItem("user-1", latte.ID, 2)
	assert.NoError(t, err)
	itemID := view.Lines[0].ItemID

	view, err = cartService.UpdateItem("user-1", itemID, 0)
	assert.NoError(t, err)
	assert.Len(t, view.Lines, 0)
	assert.Equal(t, 0, view.Count)
}

func TestCartService_UpdateItemSetsExactQuantity(t *testing.T) {
	cartService, menuRepo := newCartFixture(t)
	latte := seedMenuItem(t, menuRepo, "Latte", 4.00, true)

	view, err := cartService.AddItem("user-1", latte.ID, 2)
	assert.NoError(t, err)
	itemID := view.Lines[0].ItemID

	// Set, not add: 2 -> 5, not 7
	view, err = cartService.UpdateItem("user-1", itemID, 5)
	assert.NoError(t, err)
	assert.Equal(t, 5, view.Lines[0].Quantity)

	// Updating an unknown line is a not-found error
	_, err = cartService.UpdateItem("user-1", "missing-line", 3)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCartService_RemoveItemIsIdempotent(t *testing.T) {
	cartService, menuRepo := newCartFixture(t)
	latte := seedMenuItem(t, menuRepo, "Latte", 4.00, true)

	view, err := cartService.AddItem("user-1", latte.ID, 1)
	assert.NoError(t, err)
	itemID := view.Lines[0].ItemID

	view, err = cartService.RemoveItem("user-1", itemID)
	assert.NoError(t, err)
	assert.Len(t, view.Lines, 0)

	// Removing it again is a no-op, not an error
	view, err = cartService.RemoveItem("user-1", itemID)
	assert.NoError(t, err)
	assert.Len(t, view.Lines, 0)
}

func TestCartService_TotalTracksCurrentCatalogPrice(t *testing.T) {
	cartService, menuRepo := newCartFixture(t)
	latte := seedMenuItem(t, menuRepo, "Latte", 4.00, true)

	view, err := cartService.AddItem("user-1", latte.ID, 2)
	assert.NoError(t, err)
	assert.InDelta(t, 8.00, view.Total, 0.001)

	// A price change is reflected in the cart (unlike orders, which snapshot)
	latte.Price = 5.00
	assert.NoError(t, menuRepo.Update(latte))

	view, err = cartService.Get("user-1")
	assert.NoError(t, err)
	assert.InDelta(t, 10.00, view.Total, 0.001)
}

func TestCartService_CartsAreScopedPerUser(t *testing.T) {
	cartService, menuRepo := newCartFixture(t)
	latte := seedMenuItem(t, menuRepo, "Latte", 4.00, true)

	_, err := cartService.AddItem("user-1", latte.ID, 3)
	assert.NoError(t, err)

	view, err := cartService.Get("user-2")
	assert.NoError(t, err)
	assert.Equal(t, 0, view.Count)
}
