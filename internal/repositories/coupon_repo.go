package repositories

import "github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/models"

// CouponRepository defines the interface for coupon data access.
//
// IncrementUsage must be a single conditional UPDATE guarded by the usage
// limit, so two concurrent applies of a nearly-exhausted coupon cannot both
// slip through.
type CouponRepository interface {
	Create(coupon *models.Coupon) error
	Update(coupon *models.Coupon) error
	Delete(id string) error
	GetAll() ([]models.Coupon, error)
	GetByID(id string) (*models.Coupon, error)
	GetByCode(code string) (*models.Coupon, error)
	// IncrementUsage reports whether the increment took effect (false when
	// the usage limit is already reached).
	IncrementUsage(id string) (bool, error)
	// CreateRedemption records a (coupon, order) pair, reporting false when
	// the pair already exists.
	CreateRedemption(redemption *models.CouponRedemption) (bool, error)
	DeleteRedemption(couponID, orderID string) error
}
