package services

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/models"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/repositories"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/pkg/rabbitmq"
)

// OrderService owns the order lifecycle: who may move which status field, and
// which transitions the graph allows. Order creation lives in CheckoutService.
type OrderService struct {
	orderRepo repositories.OrderRepository
	mqClient  *rabbitmq.Client
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		mqClient:  mqClient,
	}
}

// GetAll retrieves all orders (staff view).
func (s *OrderService) GetAll() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetByUser retrieves the caller's own orders.
func (s *OrderService) GetByUser(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

// Get retrieves one order, restricted to its owner unless the caller is
// staff.
func (s *OrderService) Get(orderID string, caller *models.User) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, orderID)
	}
	if caller.Role == models.RoleCustomer && order.UserID != caller.ID {
		return nil, fmt.Errorf("%w: order %s belongs to another customer", ErrForbidden, orderID)
	}
	return order, nil
}

// UpdateStatus advances an order along the lifecycle graph. The write is
// conditional on the status the caller saw, so a concurrent transition makes
// the second request fail with ErrStatusConflict instead of silently
// overwriting.
func (s *OrderService) UpdateStatus(orderID string, newStatus models.OrderStatus) (*models.Order, error) {
	if !newStatus.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, newStatus)
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, orderID)
	}
	if !order.Status.CanTransitionTo(newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, newStatus)
	}

	ok, err := s.orderRepo.UpdateStatusFrom(orderID, order.Status, newStatus)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: order %s", ErrStatusConflict, orderID)
	}

	order.Status = newStatus
	s.publishStatusUpdated(order)
	return order, nil
}

// UpdatePaymentStatus sets the payment status, independent of delivery
// status. An optional receipt reference is recorded alongside.
func (s *OrderService) UpdatePaymentStatus(orderID string, status models.PaymentStatus, receiptRef string) (*models.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown payment status %q", ErrInvalidTransition, status)
	}
	if err := s.orderRepo.UpdatePaymentStatus(orderID, status, receiptRef); err != nil {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, orderID)
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, orderID)
	}
	return order, nil
}

// Cancel lets the owning customer cancel an order that is still pending.
// Cancelling any other state is an invalid transition and leaves the order
// unchanged.
func (s *OrderService) Cancel(orderID string, caller *models.User) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, orderID)
	}
	if order.UserID != caller.ID {
		return nil, fmt.Errorf("%w: order %s belongs to another customer", ErrForbidden, orderID)
	}
	if order.Status != models.OrderPending {
		return nil, fmt.Errorf("%w: cannot cancel order in status %s", ErrInvalidTransition, order.Status)
	}

	ok, err := s.orderRepo.UpdateStatusFrom(orderID, models.OrderPending, models.OrderCancelled)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: order %s", ErrStatusConflict, orderID)
	}

	order.Status = models.OrderCancelled
	s.publishStatusUpdated(order)
	return order, nil
}

// Delete hard-deletes an order. Admin only; the handler enforces the role.
func (s *OrderService) Delete(orderID string) error {
	if err := s.orderRepo.Delete(orderID); err != nil {
		return fmt.Errorf("%w: order %s", ErrNotFound, orderID)
	}
	return nil
}

func (s *OrderService) publishStatusUpdated(order *models.Order) {
	if s.mqClient == nil {
		return
	}
	payload := map[string]interface{}{
		"orderID": order.ID,
		"userID":  order.UserID,
		"status":  order.Status,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal order.status_updated payload: %v", err)
		return
	}
	if err := s.mqClient.Publish("order.status_updated", body); err != nil {
		log.Printf("Warning: failed to publish order.status_updated for order %s: %v", order.ID, err)
	}
}
