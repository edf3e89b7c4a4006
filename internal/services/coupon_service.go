package services

import (
	"fmt"
	"time"

	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/models"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/repositories"
)

// CouponService validates and applies promotional discount codes, and exposes
// the admin CRUD over them.
type CouponService struct {
	couponRepo repositories.CouponRepository
	now        func() time.Time
}

// NewCouponService creates a new CouponService.
func NewCouponService(couponRepo repositories.CouponRepository) *CouponService {
	return &CouponService{
		couponRepo: couponRepo,
		now:        time.Now,
	}
}

// Validate checks a code against its active window and usage cap and returns
// the coupon with the discount it grants on the given subtotal.
func (s *CouponService) Validate(code string, subtotal float64) (*models.Coupon, float64, error) {
	coupon, err := s.couponRepo.GetByCode(code)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: coupon %s", ErrNotFound, code)
	}
	now := s.now()
	if !coupon.Active || now.Before(coupon.ActiveFrom) || now.After(coupon.ActiveUntil) {
		return nil, 0, fmt.Errorf("%w: %s", ErrCouponExpired, code)
	}
	if coupon.UsageCount >= coupon.UsageLimit {
		return nil, 0, fmt.Errorf("%w: %s", ErrCouponExhausted, code)
	}
	return coupon, coupon.DiscountFor(subtotal), nil
}

// Apply re-validates the code and consumes one usage slot for the given
// order. Applying the same code to the same order twice is a no-op: the
// redemption record keyed by (coupon, order) is the idempotency guard, and
// usage is only counted when that record is newly created.
func (s *CouponService) Apply(code, orderID string, subtotal float64) (float64, error) {
	coupon, discount, err := s.Validate(code, subtotal)
	if err != nil {
		return 0, err
	}

	created, err := s.couponRepo.CreateRedemption(&models.CouponRedemption{
		CouponID: coupon.ID,
		OrderID:  orderID,
	})
	if err != nil {
		return 0, err
	}
	if !created {
		// Already applied to this order
		return discount, nil
	}

	ok, err := s.couponRepo.IncrementUsage(coupon.ID)
	if err != nil {
		return 0, err
	}
	if !ok {
		// Lost the last slot to a concurrent apply; release the redemption.
		_ = s.couponRepo.DeleteRedemption(coupon.ID, orderID)
		return 0, fmt.Errorf("%w: %s", ErrCouponExhausted, code)
	}
	return discount, nil
}

// GetAll returns every coupon for the admin console.
func (s *CouponService) GetAll() ([]models.Coupon, error) {
	return s.couponRepo.GetAll()
}

// Create stores a new coupon.
func (s *CouponService) Create(coupon *models.Coupon) error {
	if coupon.ActiveUntil.Before(coupon.ActiveFrom) {
		return fmt.Errorf("active window ends before it starts")
	}
	return s.couponRepo.Create(coupon)
}

// Update overwrites a coupon.
func (s *CouponService) Update(coupon *models.Coupon) error {
	if err := s.couponRepo.Update(coupon); err != nil {
		return fmt.Errorf("%w: coupon %s", ErrNotFound, coupon.ID)
	}
	return nil
}

// Delete removes a coupon.
func (s *CouponService) Delete(id string) error {
	if err := s.couponRepo.Delete(id); err != nil {
		return fmt.Errorf("%w: coupon %s", ErrNotFound, id)
	}
	return nil
}

// GetByID returns a single coupon.
func (s *CouponService) GetByID(id string) (*models.Coupon, error) {
	coupon, err := s.couponRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: coupon %s", ErrNotFound, id)
	}
	return coupon, nil
}
