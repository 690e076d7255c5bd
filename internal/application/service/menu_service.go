package service

import (
	"context"

	"github.com/dustore/pos-admin-api/internal/domain/entity"
	"github.com/dustore/pos-admin-api/internal/domain/repository"
)

// MenuService serves the cashier's read-only view of the menu catalog.
type MenuService struct {
	menuRepo repository.MenuRepository
}

// NewMenuService creates a new menu service
func NewMenuService(menuRepo repository.MenuRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo}
}

// ListVisible returns the catalog entries shown on the cashier screen.
func (s *MenuService) ListVisible(ctx context.Context) ([]entity.Menu, error) {
	return s.menuRepo.List(ctx, true)
}
