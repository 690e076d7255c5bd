package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustore/pos-admin-api/internal/domain/entity"
	"github.com/dustore/pos-admin-api/internal/domain/repository"
	"github.com/dustore/pos-admin-api/pkg/apperror"
	"github.com/dustore/pos-admin-api/pkg/table"
)

// OrderService handles order history, checkout and the order table view.
type OrderService struct {
	orderRepo repository.OrderRepository
	menuRepo  repository.MenuRepository
	columns   []table.Column[entity.Order]
	pageSize  int
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	menuRepo repository.MenuRepository,
	pageSize int,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
		columns:   orderColumns(),
		pageSize:  pageSize,
	}
}

// orderColumns is the fixed column set of the order table.
func orderColumns() []table.Column[entity.Order] {
	return []table.Column[entity.Order]{
		{
			ID:       "id",
			Title:    "No ID",
			Kind:     table.KindPaddedID,
			Sortable: true,
			Value: func(o entity.Order) table.Cell {
				return table.Cell{Number: o.ID}
			},
		},
		{
			ID:    "items",
			Title: "Menu Pesanan",
			Kind:  table.KindComputed,
			Value: func(o entity.Order) table.Cell {
				return table.Cell{Text: itemSummary(o.Items)}
			},
		},
		{
			ID:       "created_at",
			Title:    "Date",
			Kind:     table.KindDate,
			Sortable: true,
			Value: func(o entity.Order) table.Cell {
				return table.Cell{Time: o.CreatedAt}
			},
		},
		{
			ID:       "total_price",
			Title:    "Total",
			Kind:     table.KindCurrency,
			Sortable: true,
			Value: func(o entity.Order) table.Cell {
				return table.Cell{Number: o.TotalPrice}
			},
		},
	}
}

// itemSummary renders the one-line item summary cell, e.g.
// "Nasi Goreng (2), Es Teh (1)".
func itemSummary(items []entity.OrderItem) string {
	if len(items) == 0 {
		return "No items"
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprintf("%s (%d)", item.Name, item.Quantity)
	}
	return strings.Join(parts, ", ")
}

// Columns exposes the fixed column set, mainly for state transitions.
func (s *OrderService) Columns() []table.Column[entity.Order] {
	return s.columns
}

// NewTableState returns the initial view state with the configured page size.
func (s *OrderService) NewTableState() table.State {
	return table.NewState(s.pageSize)
}

// TableView fetches the current order snapshot and projects the visible
// page for the given state. The returned state carries the clamped page
// index and is what the caller should hold on to.
func (s *OrderService) TableView(ctx context.Context, state table.State) (table.Page[entity.Order], table.State, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return table.Page[entity.Order]{}, state, err
	}
	page, next := table.View(orders, s.columns, state)
	return page, next, nil
}

// GetOrder returns one order with its items.
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// CheckoutItem references a menu entry and a quantity.
type CheckoutItem struct {
	MenuID   int64
	Quantity int
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	CustomerName string
	Items        []CheckoutItem
}

// CreateOrder creates an order from cashier checkout input. Item name and
// price are copied from the catalog at checkout time and the total is
// computed here, once; after that the stored record is the source of truth.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Order must contain at least one item")
	}

	// Batch fetch all menus in one query (prevents N+1)
	menuIDs := make([]int64, len(input.Items))
	for i, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be positive")
		}
		menuIDs[i] = item.MenuID
	}

	menus, err := s.menuRepo.GetByIDs(ctx, menuIDs)
	if err != nil {
		return nil, err
	}
	menuMap := make(map[int64]*entity.Menu, len(menus))
	for i := range menus {
		menuMap[menus[i].ID] = &menus[i]
	}

	order := &entity.Order{CustomerName: input.CustomerName}
	for _, item := range input.Items {
		menu, ok := menuMap[item.MenuID]
		if !ok {
			return nil, apperror.NewNotFoundError("Menu")
		}
		line := entity.OrderItem{
			Name:     menu.Name,
			Price:    menu.Price,
			Quantity: item.Quantity,
		}
		order.Items = append(order.Items, line)
		order.TotalPrice += line.LineTotal()
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
