package services

import (
	"encoding/json"
	"fmt"
	"log"
	"math"

	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/models"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/repositories"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/pkg/rabbitmq"

	"github.com/google/uuid"
)

// CheckoutRequest carries the customer's choices at checkout. The payment
// receipt is a reference to a file already stored by the upload collaborator.
type CheckoutRequest struct {
	OrderType      models.OrderType `json:"order_type" validate:"required,oneof=pickup delivery"`
	PaymentMethod  string           `json:"payment_method" validate:"required"`
	PaymentReceipt string           `json:"payment_receipt"`
	CouponCode     string           `json:"coupon_code"`
}

// CheckoutService converts a user's cart into a persisted order. Prices are
// snapshotted per line at this point; the cart is cleared only after the
// order is durably saved, so a crash in between loses nothing but a stale
// cart, which self-corrects on retry.
type CheckoutService struct {
	cartService   *CartService
	orderRepo     repositories.OrderRepository
	menuRepo      repositories.MenuRepository
	couponService *CouponService
	paymentRepo   repositories.PaymentMethodRepository
	mqClient      *rabbitmq.Client
	taxRate       float64
	deliveryFee   float64
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(
	cartService *CartService,
	orderRepo repositories.OrderRepository,
	menuRepo repositories.MenuRepository,
	couponService *CouponService,
	paymentRepo repositories.PaymentMethodRepository,
	mqClient *rabbitmq.Client,
	taxRate, deliveryFee float64,
) *CheckoutService {
	return &CheckoutService{
		cartService:   cartService,
		orderRepo:     orderRepo,
		menuRepo:      menuRepo,
		couponService: couponService,
		paymentRepo:   paymentRepo,
		mqClient:      mqClient,
		taxRate:       taxRate,
		deliveryFee:   deliveryFee,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Checkout validates the cart, snapshots prices, computes the totals
// (discount before tax), persists the order and clears the cart.
//
// Any missing or unavailable menu item aborts the whole checkout and leaves
// the cart untouched so the customer can adjust it.
func (s *CheckoutService) Checkout(userID string, req CheckoutRequest) (*models.Order, error) {
	view, err := s.cartService.Get(userID)
	if err != nil {
		return nil, err
	}
	if len(view.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	method, err := s.paymentRepo.GetByName(req.PaymentMethod)
	if err != nil || !method.Active {
		return nil, fmt.Errorf("%w: %s", ErrPaymentMethodInvalid, req.PaymentMethod)
	}

	var subtotal float64
	lines := make([]models.OrderLine, 0, len(view.Lines))
	for _, cartLine := range view.Lines {
		menuItem, err := s.menuRepo.GetByID(cartLine.MenuItemID)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrItemUnavailable, cartLine.Name)
		}
		if !menuItem.Available {
			return nil, fmt.Errorf("%w: %s", ErrItemUnavailable, menuItem.Name)
		}
		lines = append(lines, models.OrderLine{
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			UnitPrice:  menuItem.Price, // frozen here, never re-derived
			Quantity:   cartLine.Quantity,
		})
		subtotal += menuItem.Price * float64(cartLine.Quantity)
	}
	subtotal = round2(subtotal)

	orderID := uuid.New().String()

	// Validate only at this point. The usage slot is consumed after the order
	// is durable, so a failed create cannot leak a redemption.
	var discount float64
	if req.CouponCode != "" {
		_, discount, err = s.couponService.Validate(req.CouponCode, subtotal)
		if err != nil {
			return nil, err
		}
		discount = round2(discount)
	}

	tax := round2(s.taxRate * (subtotal - discount))
	var deliveryFee float64
	if req.OrderType == models.OrderTypeDelivery {
		deliveryFee = s.deliveryFee
	}

	order := &models.Order{
		ID:             orderID,
		UserID:         userID,
		Lines:          lines,
		Subtotal:       subtotal,
		Discount:       discount,
		Tax:            tax,
		DeliveryFee:    deliveryFee,
		TotalAmount:    round2(subtotal - discount + tax + deliveryFee),
		OrderType:      req.OrderType,
		Status:         models.OrderPending,
		PaymentStatus:  models.PaymentPending,
		PaymentMethod:  method.Name,
		PaymentReceipt: req.PaymentReceipt,
		CouponCode:     req.CouponCode,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if req.CouponCode != "" {
		if _, err := s.couponService.Apply(req.CouponCode, orderID, subtotal); err != nil {
			// Lost the last usage slot between validate and apply. Undo the
			// order so the customer can retry without the coupon.
			if delErr := s.orderRepo.Delete(orderID); delErr != nil {
				log.Printf("Warning: order %s not rolled back after coupon apply failure: %v", orderID, delErr)
			}
			return nil, err
		}
	}

	// Order is durable; clearing the cart after this point is safe. A leftover
	// cart from a crash here self-corrects on the next checkout attempt.
	if err := s.cartService.Clear(userID); err != nil {
		log.Printf("Warning: order %s created but cart for user %s not cleared: %v", order.ID, userID, err)
	}

	s.publishOrderCreated(order)

	return order, nil
}

// publishOrderCreated notifies the dispatcher collaborator about the new
// order. Publish failures are logged, not surfaced; the order stands.
func (s *CheckoutService) publishOrderCreated(order *models.Order) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping order.created publication.")
		return
	}
	payload := map[string]interface{}{
		"orderID": order.ID,
		"userID":  order.UserID,
		"status":  order.Status,
		"total":   order.TotalAmount,
		"type":    order.OrderType,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal order.created payload: %v", err)
		return
	}
	if err := s.mqClient.Publish("order.created", body); err != nil {
		log.Printf("Warning: failed to publish order.created for order %s: %v", order.ID, err)
	}
}
