package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/models"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/repositories"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/pkg/cache"
)

const menuCachePrefix = "menu:"

// MenuService handles the public catalog and the admin CRUD over it. Listings
// go through a Redis cache when one is configured; every mutation invalidates
// the whole menu keyspace. Cache trouble is never an error, only a fallthrough
// to the database.
type MenuService struct {
	repo  repositories.MenuRepository
	cache *cache.Cache
}

// NewMenuService creates a new MenuService. cache may be nil.
func NewMenuService(repo repositories.MenuRepository, c *cache.Cache) *MenuService {
	return &MenuService{
		repo:  repo,
		cache: c,
	}
}

// List retrieves menu items, serving from cache when possible.
func (s *MenuService) List(ctx context.Context, includeUnavailable bool) ([]models.MenuItem, error) {
	key := menuCachePrefix + "list:available"
	if includeUnavailable {
		key = menuCachePrefix + "list:all"
	}

	if s.cache != nil {
		if data, err := s.cache.Get(ctx, key); err == nil {
			var items []models.MenuItem
			if err := json.Unmarshal(data, &items); err == nil {
				return items, nil
			}
		}
	}

	items, err := s.repo.List(includeUnavailable)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, items); err != nil {
			log.Printf("Warning: failed to cache menu listing: %v", err)
		}
	}
	return items, nil
}

// GetByID retrieves a single menu item.
func (s *MenuService) GetByID(id string) (*models.MenuItem, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: menu item %s", ErrNotFound, id)
	}
	return item, nil
}

// Create stores a new menu item and invalidates cached listings.
func (s *MenuService) Create(ctx context.Context, item *models.MenuItem) error {
	if err := s.repo.Create(item); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Update overwrites a menu item and invalidates cached listings.
func (s *MenuService) Update(ctx context.Context, item *models.MenuItem) error {
	if err := s.repo.Update(item); err != nil {
		return fmt.Errorf("%w: menu item %s", ErrNotFound, item.ID)
	}
	s.invalidate(ctx)
	return nil
}

// Delete removes a menu item and invalidates cached listings.
func (s *MenuService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("%w: menu item %s", ErrNotFound, id)
	}
	s.invalidate(ctx)
	return nil
}

func (s *MenuService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPrefix(ctx, menuCachePrefix); err != nil {
		log.Printf("Warning: failed to invalidate menu cache: %v", err)
	}
}
