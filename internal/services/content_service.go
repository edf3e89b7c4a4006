package services

import (
	"fmt"

	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/models"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/repositories"
)

// ReviewService handles customer reviews and their moderation.
type ReviewService struct {
	repo repositories.ReviewRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(repo repositories.ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo}
}

// Create stores a new review. Reviews start unapproved and only show up
// publicly after moderation.
func (s *ReviewService) Create(review *models.Review) error {
	review.Approved = false
	return s.repo.Create(review)
}

// List returns reviews; non-staff callers only ever see approved ones.
func (s *ReviewService) List(approvedOnly bool) ([]models.Review, error) {
	return s.repo.List(approvedOnly)
}

// Approve marks a review as publicly visible.
func (s *ReviewService) Approve(id string) (*models.Review, error) {
	if err := s.repo.SetApproved(id, true); err != nil {
		return nil, fmt.Errorf("%w: review %s", ErrNotFound, id)
	}
	return s.repo.GetByID(id)
}

// Delete removes a review.
func (s *ReviewService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("%w: review %s", ErrNotFound, id)
	}
	return nil
}

// ContentService handles home-page content blocks and payment methods, both
// plain admin CRUD with a public read surface.
type ContentService struct {
	contentRepo repositories.ContentRepository
	paymentRepo repositories.PaymentMethodRepository
}

// NewContentService creates a new ContentService.
func NewContentService(contentRepo repositories.ContentRepository, paymentRepo repositories.PaymentMethodRepository) *ContentService {
	return &ContentService{
		contentRepo: contentRepo,
		paymentRepo: paymentRepo,
	}
}

// ListBlocks returns all content blocks.
func (s *ContentService) ListBlocks() ([]models.ContentBlock, error) {
	return s.contentRepo.GetAll()
}

// GetBlock returns a content block by its key.
func (s *ContentService) GetBlock(key string) (*models.ContentBlock, error) {
	block, err := s.contentRepo.GetByKey(key)
	if err != nil {
		return nil, fmt.Errorf("%w: content block %s", ErrNotFound, key)
	}
	return block, nil
}

// CreateBlock stores a new content block.
func (s *ContentService) CreateBlock(block *models.ContentBlock) error {
	return s.contentRepo.Create(block)
}

// UpdateBlock overwrites a content block.
func (s *ContentService) UpdateBlock(block *models.ContentBlock) error {
	if err := s.contentRepo.Update(block); err != nil {
		return fmt.Errorf("%w: content block %s", ErrNotFound, block.ID)
	}
	return nil
}

// DeleteBlock removes a content block.
func (s *ContentService) DeleteBlock(id string) error {
	if err := s.contentRepo.Delete(id); err != nil {
		return fmt.Errorf("%w: content block %s", ErrNotFound, id)
	}
	return nil
}

// ListPaymentMethods returns payment methods; customers only see active ones.
func (s *ContentService) ListPaymentMethods(activeOnly bool) ([]models.PaymentMethod, error) {
	return s.paymentRepo.List(activeOnly)
}

// CreatePaymentMethod stores a new payment method.
func (s *ContentService) CreatePaymentMethod(method *models.PaymentMethod) error {
	return s.paymentRepo.Create(method)
}

// UpdatePaymentMethod overwrites a payment method.
func (s *ContentService) UpdatePaymentMethod(method *models.PaymentMethod) error {
	if err := s.paymentRepo.Update(method); err != nil {
		return fmt.Errorf("%w: payment method %s", ErrNotFound, method.ID)
	}
	return nil
}

// DeletePaymentMethod removes a payment method.
func (s *ContentService) DeletePaymentMethod(id string) error {
	if err := s.paymentRepo.Delete(id); err != nil {
		return fmt.Errorf("%w: payment method %s", ErrNotFound, id)
	}
	return nil
}
