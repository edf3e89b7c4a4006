package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCouponRepository is a GORM implementation of CouponRepository.
type GORMCouponRepository struct {
	db *gorm.DB
}

// NewGORMCouponRepository creates a new instance of GORMCouponRepository.
func NewGORMCouponRepository(db *gorm.DB) *GORMCouponRepository {
	return &GORMCouponRepository{
		db: db,
	}
}

// Create creates a new coupon in the database.
func (r *GORMCouponRepository) Create(coupon *models.Coupon) error {
	if coupon.ID == "" {
		coupon.ID = uuid.New().String()
	}
	if err := r.db.Create(coupon).Error; err != nil {
		return fmt.Errorf("failed to create coupon: %w", err)
	}
	return nil
}

// Update updates an existing coupon in the database.
func (r *GORMCouponRepository) Update(coupon *models.Coupon) error {
	res := r.db.Save(coupon)
	if res.Error != nil {
		return fmt.Errorf("failed to update coupon: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("coupon with ID %s not found for update", coupon.ID)
	}
	return nil
}

// Delete deletes a coupon by its ID from the database.
func (r *GORMCouponRepository) Delete(id string) error {
	res := r.db.Delete(&models.Coupon{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete coupon: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("coupon with ID %s not found for deletion", id)
	}
	return nil
}

// GetAll retrieves all coupons.
func (r *GORMCouponRepository) GetAll() ([]models.Coupon, error) {
	var coupons []models.Coupon
	if err := r.db.Find(&coupons).Error; err != nil {
		return nil, fmt.Errorf("failed to get all coupons: %w", err)
	}
	return coupons, nil
}

// GetByID retrieves a coupon by its ID.
func (r *GORMCouponRepository) GetByID(id string) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.db.First(&coupon, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("coupon with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get coupon by ID %s: %w", id, err)
	}
	return &coupon, nil
}

// GetByCode retrieves a coupon by its code.
func (r *GORMCouponRepository) GetByCode(code string) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.db.First(&coupon, "code = ?", code).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("coupon with code %s not found", code)
		}
		return nil, fmt.Errorf("failed to get coupon by code %s: %w", code, err)
	}
	return &coupon, nil
}

// IncrementUsage bumps usage_count in a single conditional UPDATE. The
// usage_count < usage_limit guard makes concurrent applies of the last slot
// resolve to exactly one winner.
func (r *GORMCouponRepository) IncrementUsage(id string) (bool, error) {
	res := r.db.Model(&models.Coupon{}).
		Where("id = ? AND usage_count < usage_limit", id).
		UpdateColumn("usage_count", gorm.Expr("usage_count + 1"))
	if res.Error != nil {
		return false, fmt.Errorf("failed to increment usage for coupon %s: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// CreateRedemption records a (coupon, order) pair. The unique index makes a
// duplicate insert fail, which is reported as created == false.
func (r *GORMCouponRepository) CreateRedemption(redemption *models.CouponRedemption) (bool, error) {
	if redemption.ID == "" {
		redemption.ID = uuid.New().String()
	}
	err := r.db.Create(redemption).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(strings.ToLower(err.Error()), "unique") {
			return false, nil
		}
		return false, fmt.Errorf("failed to create coupon redemption: %w", err)
	}
	return true, nil
}

// DeleteRedemption removes a (coupon, order) pair.
func (r *GORMCouponRepository) DeleteRedemption(couponID, orderID string) error {
	if err := r.db.Delete(&models.CouponRedemption{}, "coupon_id = ? AND order_id = ?", couponID, orderID).Error; err != nil {
		return fmt.Errorf("failed to delete coupon redemption: %w", err)
	}
	return nil
}
