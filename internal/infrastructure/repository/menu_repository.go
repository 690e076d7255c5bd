package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dustore/pos-admin-api/internal/domain/entity"
	domainRepo "github.com/dustore/pos-admin-api/internal/domain/repository"
)

type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *gorm.DB) domainRepo.MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) List(ctx context.Context, visibleOnly bool) ([]entity.Menu, error) {
	var menus []entity.Menu
	query := r.db.WithContext(ctx).Order("name ASC")
	if visibleOnly {
		query = query.Where("visible = ?", true)
	}
	err := query.Find(&menus).Error
	return menus, err
}

func (r *menuRepository) GetByIDs(ctx context.Context, ids []int64) ([]entity.Menu, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var menus []entity.Menu
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&menus).Error
	return menus, err
}
