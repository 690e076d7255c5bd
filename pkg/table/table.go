// Package table implements a generic, data-agnostic sort/pagination engine
// for tabular views. Callers describe their columns once, keep the view
// state as a plain value, and ask the engine for the currently visible page.
package table

import (
	"sort"
	"strings"
	"time"

	"github.com/dustore/pos-admin-api/pkg/money"
)

// Kind identifies how a column's cell value is compared and rendered.
type Kind int

const (
	KindText Kind = iota
	KindCurrency
	KindDate
	KindPaddedID
	KindComputed
)

// DateFormat is the rendering layout for KindDate cells.
const DateFormat = "02/01/2006 15:04"

// idWidth is the zero-pad width for KindPaddedID cells.
const idWidth = 3

// Cell is a column's projection of one record. Which field is meaningful
// depends on the column Kind: Text for KindText/KindComputed, Number for
// KindCurrency/KindPaddedID, Time for KindDate.
type Cell struct {
	Text   string
	Number int64
	Time   *time.Time
}

// Column describes one column of a table view. The column set is fixed for
// the lifetime of a table instance. Value must be total over every record
// shape in the set; it must not fail on absent optional fields.
type Column[T any] struct {
	ID       string
	Title    string
	Kind     Kind
	Sortable bool
	Value    func(T) Cell
}

// Render formats a cell according to the column kind.
func (c Column[T]) Render(record T) string {
	cell := c.Value(record)
	switch c.Kind {
	case KindCurrency:
		return money.Rupiah(cell.Number)
	case KindPaddedID:
		return money.PadID(cell.Number, idWidth)
	case KindDate:
		if cell.Time == nil {
			return "-"
		}
		return cell.Time.Format(DateFormat)
	default:
		return cell.Text
	}
}

// Page is the rendered window of a table view. Records holds the raw
// records behind the rendered rows, in the same order.
type Page[T any] struct {
	Headers   []string   `json:"headers"`
	Rows      [][]string `json:"rows"`
	Records   []T        `json:"records"`
	Index     int        `json:"page"`
	PageCount int        `json:"page_count"`
	Total     int        `json:"total"`
}

// View sorts the full record set per state, clamps the page window and
// renders the visible rows. The input slice is never mutated. The returned
// state carries the clamped page index so callers always hold a valid value.
func View[T any](records []T, columns []Column[T], state State) (Page[T], State) {
	ordered := records
	if col, ok := sortColumn(columns, state.Sort); ok {
		ordered = sortRecords(records, col, state.Sort.Direction)
	}

	total := len(ordered)
	count := PageCount(total, state.Page.Size)
	state.Page.Index = clampIndex(state.Page.Index, count)

	start := state.Page.Index * state.Page.Size
	end := start + state.Page.Size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	page := Page[T]{
		Headers:   make([]string, len(columns)),
		Rows:      make([][]string, 0, end-start),
		Records:   ordered[start:end],
		Index:     state.Page.Index,
		PageCount: count,
		Total:     total,
	}
	for i, col := range columns {
		page.Headers[i] = col.Title
	}
	for _, record := range ordered[start:end] {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = col.Render(record)
		}
		page.Rows = append(page.Rows, row)
	}
	return page, state
}

// sortColumn resolves the active sort column. Sort state naming an unknown
// or non-sortable column is ignored rather than treated as an error.
func sortColumn[T any](columns []Column[T], s SortState) (Column[T], bool) {
	if s.Direction == DirectionNone || s.Column == "" {
		return Column[T]{}, false
	}
	for _, col := range columns {
		if col.ID == s.Column && col.Sortable {
			return col, true
		}
	}
	return Column[T]{}, false
}

// sortRecords returns a stably sorted copy: records comparing equal keep
// their relative input order regardless of direction.
func sortRecords[T any](records []T, col Column[T], dir Direction) []T {
	out := make([]T, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		cmp := compareCells(col.Value(out[i]), col.Value(out[j]), col.Kind)
		if dir == DirectionDescending {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

func compareCells(a, b Cell, kind Kind) int {
	switch kind {
	case KindCurrency, KindPaddedID:
		switch {
		case a.Number < b.Number:
			return -1
		case a.Number > b.Number:
			return 1
		}
		return 0
	case KindDate:
		// Absent dates sort before any present date.
		switch {
		case a.Time == nil && b.Time == nil:
			return 0
		case a.Time == nil:
			return -1
		case b.Time == nil:
			return 1
		case a.Time.Before(*b.Time):
			return -1
		case a.Time.After(*b.Time):
			return 1
		}
		return 0
	default:
		return strings.Compare(a.Text, b.Text)
	}
}
