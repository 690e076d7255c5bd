package repository

import (
	"context"

	"github.com/dustore/pos-admin-api/internal/domain/entity"
)

// OrderRepository defines the order store boundary. The table view consumes
// List as a read-only snapshot; sorting and paging happen in memory on top
// of it, never inside the store.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetWithItems(ctx context.Context, id int64) (*entity.Order, error)
	// List returns every order with its nested items, oldest first.
	List(ctx context.Context) ([]entity.Order, error)
}
