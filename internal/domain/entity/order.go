package entity

import "time"

// Order is a completed sale. TotalPrice is stored in whole Rupiah and is
// owned by the store: downstream formatting renders it verbatim and never
// recomputes it from the line items.
type Order struct {
	ID           int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName string      `gorm:"size:255" json:"customer_name"`
	TotalPrice   int64       `gorm:"not null;default:0" json:"total_price"`
	CreatedAt    *time.Time  `gorm:"autoCreateTime" json:"created_at,omitempty"`
	Items        []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_items"`
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one product line within an order. Items are immutable once
// attached; their slice order is the order they were rung up in and is
// preserved through every projection (table cells, receipt, message).
type OrderItem struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID  int64  `gorm:"not null;index" json:"order_id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Price    int64  `gorm:"not null" json:"price"`
	Quantity int    `gorm:"not null" json:"quantity"`
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// LineTotal returns price * quantity for this item.
func (i OrderItem) LineTotal() int64 {
	return i.Price * int64(i.Quantity)
}
