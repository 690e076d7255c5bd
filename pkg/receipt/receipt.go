// Package receipt derives the canonical printable content of an order and
// renders it to an A6 PDF document. The content derivation is the single
// source both the PDF and the WhatsApp message are projected from, so the
// two can never disagree on what was sold, only on how it is laid out.
package receipt

import (
	"errors"

	"github.com/dustore/pos-admin-api/internal/domain/entity"
	"github.com/dustore/pos-admin-api/pkg/money"
)

var (
	// ErrMissingOrderID means the order record arrived without an id.
	// Orders always carry one, so this is a programmer error upstream.
	ErrMissingOrderID = errors.New("receipt: order has no id")

	// ErrRenderFailure wraps any failure while building the PDF document.
	ErrRenderFailure = errors.New("receipt: document render failed")
)

// DateFormat is the layout for the receipt date line.
const DateFormat = "02/01/2006 15:04"

// idWidth is the zero-pad width for receipt order numbers.
const idWidth = 3

// StoreInfo is the static store identity printed on every receipt.
// It comes from configuration, never from the order.
type StoreInfo struct {
	Name    string
	Address string
	Phone   string
	Footer  string
}

// Line is one item row on a receipt.
type Line struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Total     int64  `json:"total"`
}

// Content is the canonical receipt of one order. It is derived on demand
// and never stored.
type Content struct {
	Store    StoreInfo `json:"-"`
	OrderNo  string    `json:"order_no"`
	Date     string    `json:"date"`
	Customer string    `json:"customer"`
	Lines    []Line    `json:"lines"`
	Total    int64     `json:"total"`
	Footer   string    `json:"footer"`
}

// Build derives the receipt content for an order. Line rows follow the
// order's item sequence exactly and the grand total is taken verbatim from
// the order, trusting the store's own invariant.
func Build(store StoreInfo, order entity.Order) (*Content, error) {
	if order.ID <= 0 {
		return nil, ErrMissingOrderID
	}

	content := &Content{
		Store:    store,
		OrderNo:  money.PadID(order.ID, idWidth),
		Date:     "-",
		Customer: order.CustomerName,
		Total:    order.TotalPrice,
		Footer:   store.Footer,
	}
	if order.CreatedAt != nil {
		content.Date = order.CreatedAt.Format(DateFormat)
	}

	for _, item := range order.Items {
		content.Lines = append(content.Lines, Line{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
			Total:     item.LineTotal(),
		})
	}
	return content, nil
}
