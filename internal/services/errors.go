package services

import "errors"

// Sentinel errors for the conditions handlers must translate into distinct
// HTTP statuses. Services wrap these with context; handlers match with
// errors.Is.
var (
	// ErrNotFound covers any referenced entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned for any login failure; it never
	// reveals whether the email exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned when registering with an email already in use.
	ErrEmailTaken = errors.New("email already registered")

	// ErrForbidden is returned when an authenticated user acts on a resource
	// they do not own.
	ErrForbidden = errors.New("not allowed")

	// ErrEmptyCart is returned by checkout when the cart holds no items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrItemUnavailable is returned by checkout when a cart line references
	// a deleted or unavailable menu item. The cart is left untouched.
	ErrItemUnavailable = errors.New("menu item unavailable")

	// ErrInvalidTransition is returned when an order status change is not
	// permitted by the lifecycle graph.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrStatusConflict is returned when a conditional status write lost to a
	// concurrent transition.
	ErrStatusConflict = errors.New("order status changed concurrently")

	// ErrCouponExpired is returned when a coupon is inactive or outside its
	// active window.
	ErrCouponExpired = errors.New("coupon expired")

	// ErrCouponExhausted is returned when a coupon's usage limit is reached.
	ErrCouponExhausted = errors.New("coupon usage limit reached")

	// ErrPaymentMethodInvalid is returned by checkout for an unknown or
	// inactive payment method.
	ErrPaymentMethodInvalid = errors.New("payment method not accepted")
)
