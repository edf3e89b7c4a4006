package models

import "time"

// DiscountType selects how a coupon's value is interpreted.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Coupon is a promotional discount code with an active window and a usage cap.
type Coupon struct {
	ID            string       `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Code          string       `json:"code" gorm:"uniqueIndex;type:varchar(50)" validate:"required,min=3,max=50"`
	DiscountType  DiscountType `json:"discount_type" gorm:"type:varchar(20)" validate:"required,oneof=percentage fixed"`
	DiscountValue float64      `json:"discount_value" validate:"required,gt=0"`
	ActiveFrom    time.Time    `json:"active_from"`
	ActiveUntil   time.Time    `json:"active_until"`
	UsageLimit    int          `json:"usage_limit" validate:"gte=1"`
	UsageCount    int          `json:"usage_count" validate:"gte=0"`
	Active        bool         `json:"active" gorm:"default:true"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// DiscountFor computes the discount this coupon grants on a subtotal.
// Fixed discounts are capped at the subtotal so totals never go negative.
func (c *Coupon) DiscountFor(subtotal float64) float64 {
	switch c.DiscountType {
	case DiscountPercentage:
		return subtotal * c.DiscountValue / 100
	case DiscountFixed:
		if c.DiscountValue > subtotal {
			return subtotal
		}
		return c.DiscountValue
	}
	return 0
}

// CouponRedemption records that a coupon was applied to an order. The unique
// (coupon, order) pair makes Apply idempotent per order.
type CouponRedemption struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CouponID  string    `json:"coupon_id" gorm:"index:idx_coupon_order,unique;type:varchar(36)"`
	OrderID   string    `json:"order_id" gorm:"index:idx_coupon_order,unique;type:varchar(36)"`
	CreatedAt time.Time `json:"created_at"`
}
