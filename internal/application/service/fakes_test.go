package service_test

import (
	"context"

	"github.com/dustore/pos-admin-api/internal/domain/entity"
)

// fakeOrderRepo is an in-memory OrderRepository for service tests.
type fakeOrderRepo struct {
	orders  []entity.Order
	err     error
	created []*entity.Order
}

func (f *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	if f.err != nil {
		return f.err
	}
	order.ID = int64(len(f.orders) + len(f.created) + 1)
	f.created = append(f.created, order)
	return nil
}

func (f *fakeOrderRepo) GetWithItems(_ context.Context, id int64) (*entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.orders {
		if f.orders[i].ID == id {
			return &f.orders[i], nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) List(_ context.Context) ([]entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.orders, nil
}

// fakeMenuRepo is an in-memory MenuRepository for service tests.
type fakeMenuRepo struct {
	menus []entity.Menu
	err   error
}

func (f *fakeMenuRepo) List(_ context.Context, visibleOnly bool) ([]entity.Menu, error) {
	if f.err != nil {
		return nil, f.err
	}
	if !visibleOnly {
		return f.menus, nil
	}
	var visible []entity.Menu
	for _, m := range f.menus {
		if m.Visible {
			visible = append(visible, m)
		}
	}
	return visible, nil
}

func (f *fakeMenuRepo) GetByIDs(_ context.Context, ids []int64) ([]entity.Menu, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Menu
	for _, id := range ids {
		for _, m := range f.menus {
			if m.ID == id {
				out = append(out, m)
				break
			}
		}
	}
	return out, nil
}
