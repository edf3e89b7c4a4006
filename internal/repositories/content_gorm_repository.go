package repositories

import (
	"fmt"

	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMContentRepository is a GORM implementation of ContentRepository.
type GORMContentRepository struct {
	db *gorm.DB
}

// NewGORMContentRepository creates a new instance of GORMContentRepository.
func NewGORMContentRepository(db *gorm.DB) *GORMContentRepository {
	return &GORMContentRepository{
		db: db,
	}
}

// Create creates a new content block.
func (r *GORMContentRepository) Create(block *models.ContentBlock) error {
	if block.ID == "" {
		block.ID = uuid.New().String()
	}
	if err := r.db.Create(block).Error; err != nil {
		return fmt.Errorf("failed to create content block: %w", err)
	}
	return nil
}

// Update updates an existing content block.
func (r *GORMContentRepository) Update(block *models.ContentBlock) error {
	res := r.db.Save(block)
	if res.Error != nil {
		return fmt.Errorf("failed to update content block: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("content block with ID %s not found for update", block.ID)
	}
	return nil
}

// Delete removes a content block.
func (r *GORMContentRepository) Delete(id string) error {
	res := r.db.Delete(&models.ContentBlock{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete content block: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("content block with ID %s not found for deletion", id)
	}
	return nil
}

// GetAll retrieves all content blocks.
func (r *GORMContentRepository) GetAll() ([]models.ContentBlock, error) {
	var blocks []models.ContentBlock
	if err := r.db.Order("key").Find(&blocks).Error; err != nil {
		return nil, fmt.Errorf("failed to get all content blocks: %w", err)
	}
	return blocks, nil
}

// GetByKey retrieves a content block by its stable key.
func (r *GORMContentRepository) GetByKey(key string) (*models.ContentBlock, error) {
	var block models.ContentBlock
	if err := r.db.First(&block, "key = ?", key).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("content block with key %s not found", key)
		}
		return nil, fmt.Errorf("failed to get content block by key %s: %w", key, err)
	}
	return &block, nil
}

// GORMPaymentMethodRepository is a GORM implementation of PaymentMethodRepository.
type GORMPaymentMethodRepository struct {
	db *gorm.DB
}

// NewGORMPaymentMethodRepository creates a new instance of GORMPaymentMethodRepository.
func NewGORMPaymentMethodRepository(db *gorm.DB) *GORMPaymentMethodRepository {
	return &GORMPaymentMethodRepository{
		db: db,
	}
}

// Create creates a new payment method.
func (r *GORMPaymentMethodRepository) Create(method *models.PaymentMethod) error {
	if method.ID == "" {
		method.ID = uuid.New().String()
	}
	if err := r.db.Create(method).Error; err != nil {
		return fmt.Errorf("failed to create payment method: %w", err)
	}
	return nil
}

// Update updates an existing payment method.
func (r *GORMPaymentMethodRepository) Update(method *models.PaymentMethod) error {
	res := r.db.Save(method)
	if res.Error != nil {
		return fmt.Errorf("failed to update payment method: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("payment method with ID %s not found for update", method.ID)
	}
	return nil
}

// Delete removes a payment method.
func (r *GORMPaymentMethodRepository) Delete(id string) error {
	res := r.db.Delete(&models.PaymentMethod{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete payment method: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("payment method with ID %s not found for deletion", id)
	}
	return nil
}

// List retrieves payment methods, optionally restricted to active ones.
func (r *GORMPaymentMethodRepository) List(activeOnly bool) ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	q := r.db
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	if err := q.Order("name").Find(&methods).Error; err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	return methods, nil
}

// GetByID retrieves a payment method by its ID.
func (r *GORMPaymentMethodRepository) GetByID(id string) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	if err := r.db.First(&method, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("payment method with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get payment method by ID %s: %w", id, err)
	}
	return &method, nil
}

// GetByName retrieves a payment method by its unique name.
func (r *GORMPaymentMethodRepository) GetByName(name string) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	if err := r.db.First(&method, "name = ?", name).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("payment method with name %s not found", name)
		}
		return nil, fmt.Errorf("failed to get payment method by name %s: %w", name, err)
	}
	return &method, nil
}
