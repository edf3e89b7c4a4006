package services_test

import (
	"testing"

	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/models"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/repositories"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/services"

	"github.com/stretchr/testify/assert"
)

func seedOrder(t *testing.T, repo *repositories.MockOrderRepository, userID string, status models.OrderStatus) *models.Order {
	t.Helper()
	order := &models.Order{
		UserID:        userID,
		Status:        status,
		PaymentStatus: models.PaymentPending,
		Lines:         []models.OrderLine{{MenuItemID: "item-1", Name: "Latte", UnitPrice: 4.00, Quantity: 1}},
		TotalAmount:   4.32,
	}
	assert.NoError(t, repo.Create(order))
	return order
}

var (
	customer = &models.User{ID: "cust-1", Role: models.RoleCustomer}
	stranger = &models.User{ID: "cust-2", Role: models.RoleCustomer}
	worker   = &models.User{ID: "staff-1", Role: models.RoleWorker}
)

func TestOrderService_HappyPathTransitions(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	orderService := services.NewOrderService(repo, nil)
	order := seedOrder(t, repo, customer.ID, models.OrderPending)

	for _, next := range []models.OrderStatus{
		models.OrderConfirmed, models.OrderPreparing, models.OrderReady, models.OrderDelivered,
	} {
		updated, err := orderService.UpdateStatus(order.ID, next)
		assert.NoError(t, err)
		assert.Equal(t, next, updated.Status)
	}
}

func TestOrderService_InvalidTransitionsRejected(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	orderService := services.NewOrderService(repo, nil)

	// Skipping a step is not reachable in the graph
	order := seedOrder(t, repo, customer.ID, models.OrderPending)
	_, err := orderService.UpdateStatus(order.ID, models.OrderReady)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)

	// Delivered is terminal
	done := seedOrder(t, repo, customer.ID, models.OrderDelivered)
	_, err = orderService.UpdateStatus(done.ID, models.OrderPending)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)

	// Unknown status string
	_, err = orderService.UpdateStatus(order.ID, models.OrderStatus("teleported"))
	assert.ErrorIs(t, err, services.ErrInvalidTransition)

	// Status unchanged after the failures
	stored, getErr := repo.GetByID(order.ID)
	assert.NoError(t, getErr)
	assert.Equal(t, models.OrderPending, stored.Status)
}

func TestOrderService_CancelOnlyWhilePending(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	orderService := services.NewOrderService(repo, nil)

	pending := seedOrder(t, repo, customer.ID, models.OrderPending)
	cancelled, err := orderService.Cancel(pending.ID, customer)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderCancelled, cancelled.Status)

	confirmed := seedOrder(t, repo, customer.ID, models.OrderConfirmed)
	_, err = orderService.Cancel(confirmed.ID, customer)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)

	stored, getErr := repo.GetByID(confirmed.ID)
	assert.NoError(t, getErr)
	assert.Equal(t, models.OrderConfirmed, stored.Status, "a failed cancel must leave status unchanged")
}

func TestOrderService_CancelRequiresOwnership(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	orderService := services.NewOrderService(repo, nil)
	order := seedOrder(t, repo, customer.ID, models.OrderPending)

	_, err := orderService.Cancel(order.ID, stranger)
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestOrderService_GetRestrictsCustomersToOwnOrders(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	orderService := services.NewOrderService(repo, nil)
	order := seedOrder(t, repo, customer.ID, models.OrderPending)

	got, err := orderService.Get(order.ID, customer)
	assert.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	_, err = orderService.Get(order.ID, stranger)
	assert.ErrorIs(t, err, services.ErrForbidden)

	// Staff can see any order
	got, err = orderService.Get(order.ID, worker)
	assert.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestOrderService_PaymentStatusIndependentOfDelivery(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	orderService := services.NewOrderService(repo, nil)
	order := seedOrder(t, repo, customer.ID, models.OrderDelivered)

	// Cash-on-delivery: delivered first, paid later
	updated, err := orderService.UpdatePaymentStatus(order.ID, models.PaymentPaid, "receipt-42")
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, updated.PaymentStatus)
	assert.Equal(t, "receipt-42", updated.PaymentReceipt)
	assert.Equal(t, models.OrderDelivered, updated.Status)

	_, err = orderService.UpdatePaymentStatus(order.ID, models.PaymentStatus("iou"), "")
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
}

func TestOrderService_ConcurrentTransitionConflict(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	orderService := services.NewOrderService(repo, nil)
	order := seedOrder(t, repo, customer.ID, models.OrderPending)

	// First transition wins
	_, err := orderService.UpdateStatus(order.ID, models.OrderConfirmed)
	assert.NoError(t, err)

	// A request that raced on the stale pending state loses: cancelling a
	// now-confirmed order is an invalid transition
	_, err = orderService.Cancel(order.ID, customer)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
}
