package repositories

import (
	"fmt"
	"sync"

	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/models"

	"github.com/google/uuid"
)

// MockCouponRepository is an in-memory implementation of CouponRepository.
type MockCouponRepository struct {
	coupons     map[string]models.Coupon
	redemptions map[string]models.CouponRedemption // keyed by couponID+"/"+orderID
	mu          sync.Mutex
}

// NewMockCouponRepository creates a new instance of MockCouponRepository.
func NewMockCouponRepository() *MockCouponRepository {
	return &MockCouponRepository{
		coupons:     make(map[string]models.Coupon),
		redemptions: make(map[string]models.CouponRedemption),
	}
}

// Create adds a new coupon.
func (r *MockCouponRepository) Create(coupon *models.Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if coupon.ID == "" {
		coupon.ID = uuid.New().String()
	}
	r.coupons[coupon.ID] = *coupon
	return nil
}

// Update modifies an existing coupon.
func (r *MockCouponRepository) Update(coupon *models.Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.coupons[coupon.ID]; !ok {
		return fmt.Errorf("coupon with ID %s not found for update", coupon.ID)
	}
	r.coupons[coupon.ID] = *coupon
	return nil
}

// Delete removes a coupon by its ID.
func (r *MockCouponRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.coupons[id]; !ok {
		return fmt.Errorf("coupon with ID %s not found for deletion", id)
	}
	delete(r.coupons, id)
	return nil
}

// GetAll returns all coupons.
func (r *MockCouponRepository) GetAll() ([]models.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	couponList := make([]models.Coupon, 0, len(r.coupons))
	for _, c := range r.coupons {
		couponList = append(couponList, c)
	}
	return couponList, nil
}

// GetByID returns a coupon by its ID.
func (r *MockCouponRepository) GetByID(id string) (*models.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	coupon, ok := r.coupons[id]
	if !ok {
		return nil, fmt.Errorf("coupon with ID %s not found", id)
	}
	return &coupon, nil
}

// GetByCode returns a coupon by its code.
func (r *MockCouponRepository) GetByCode(code string) (*models.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.coupons {
		if c.Code == code {
			coupon := c
			return &coupon, nil
		}
	}
	return nil, fmt.Errorf("coupon with code %s not found", code)
}

// IncrementUsage bumps usage count unless the limit is reached.
func (r *MockCouponRepository) IncrementUsage(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	coupon, ok := r.coupons[id]
	if !ok || coupon.UsageCount >= coupon.UsageLimit {
		return false, nil
	}
	coupon.UsageCount++
	r.coupons[id] = coupon
	return true, nil
}

// CreateRedemption records a (coupon, order) pair, reporting false on a
// duplicate.
func (r *MockCouponRepository) CreateRedemption(redemption *models.CouponRedemption) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := redemption.CouponID + "/" + redemption.OrderID
	if _, ok := r.redemptions[key]; ok {
		return false, nil
	}
	if redemption.ID == "" {
		redemption.ID = uuid.New().String()
	}
	r.redemptions[key] = *redemption
	return true, nil
}

// DeleteRedemption removes a (coupon, order) pair.
func (r *MockCouponRepository) DeleteRedemption(couponID, orderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.redemptions, couponID+"/"+orderID)
	return nil
}
