package models

import "time"

// OrderStatus is the delivery-side lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// PaymentStatus tracks payment independently of delivery status. An order can
// be delivered while payment is still pending (cash on pickup/delivery).
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// OrderType selects pickup or delivery fulfilment.
type OrderType string

const (
	OrderTypePickup   OrderType = "pickup"
	OrderTypeDelivery OrderType = "delivery"
)

// OrderLine is a single line of an order. Name and UnitPrice are snapshots
// taken at checkout time; later catalog edits never alter historical orders.
type OrderLine struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID    string  `json:"order_id" gorm:"index;type:varchar(36)"`
	MenuItemID string  `json:"menu_item_id" gorm:"type:varchar(36)"`
	Name       string  `json:"name" gorm:"type:varchar(100)"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
}

// Order is a snapshot of a cart at checkout time plus its lifecycle fields.
// TotalAmount == Subtotal - Discount + Tax + DeliveryFee.
type Order struct {
	ID             string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID         string        `json:"user_id" gorm:"index;type:varchar(36)"`
	Lines          []OrderLine   `json:"lines" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Subtotal       float64       `json:"subtotal"`
	Discount       float64       `json:"discount"`
	Tax            float64       `json:"tax"`
	DeliveryFee    float64       `json:"delivery_fee"`
	TotalAmount    float64       `json:"total_amount"`
	OrderType      OrderType     `json:"order_type" gorm:"type:varchar(20)"`
	Status         OrderStatus   `json:"status" gorm:"type:varchar(20);index"`
	PaymentStatus  PaymentStatus `json:"payment_status" gorm:"type:varchar(20)"`
	PaymentMethod  string        `json:"payment_method" gorm:"type:varchar(50)"`
	PaymentReceipt string        `json:"payment_receipt" gorm:"type:varchar(255)"` // reference to an uploaded proof, stored by a collaborator
	CouponCode     string        `json:"coupon_code" gorm:"type:varchar(50)"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// nextStatuses is the order-status transition graph. The happy path is linear;
// cancelled is reachable from pending only.
var nextStatuses = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderPreparing},
	OrderPreparing: {OrderReady},
	OrderReady:     {OrderDelivered},
	OrderDelivered: {},
	OrderCancelled: {},
}

// CanTransitionTo reports whether to is reachable from the current status.
func (s OrderStatus) CanTransitionTo(to OrderStatus) bool {
	for _, n := range nextStatuses[s] {
		if n == to {
			return true
		}
	}
	return false
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	_, ok := nextStatuses[s]
	return ok
}

// Valid reports whether p is a known payment status.
func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return true
	}
	return false
}

// Valid reports whether t is a known order type.
func (t OrderType) Valid() bool {
	return t == OrderTypePickup || t == OrderTypeDelivery
}
