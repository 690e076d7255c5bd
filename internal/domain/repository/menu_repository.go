package repository

import (
	"context"

	"github.com/dustore/pos-admin-api/internal/domain/entity"
)

// MenuRepository is the read side of the menu catalog. Catalog writes are
// owned by the external admin tooling.
type MenuRepository interface {
	List(ctx context.Context, visibleOnly bool) ([]entity.Menu, error)
	GetByIDs(ctx context.Context, ids []int64) ([]entity.Menu, error)
}
