package table_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dustore/pos-admin-api/pkg/table"
)

type row struct {
	id    int64
	name  string
	total int64
	at    *time.Time
}

func testColumns() []table.Column[row] {
	return []table.Column[row]{
		{
			ID: "id", Title: "No ID", Kind: table.KindPaddedID, Sortable: true,
			Value: func(r row) table.Cell { return table.Cell{Number: r.id} },
		},
		{
			ID: "name", Title: "Name", Kind: table.KindText,
			Value: func(r row) table.Cell { return table.Cell{Text: r.name} },
		},
		{
			ID: "at", Title: "Date", Kind: table.KindDate, Sortable: true,
			Value: func(r row) table.Cell { return table.Cell{Time: r.at} },
		},
		{
			ID: "total", Title: "Total", Kind: table.KindCurrency, Sortable: true,
			Value: func(r row) table.Cell { return table.Cell{Number: r.total} },
		},
	}
}

func idsOf(page table.Page[row]) []int64 {
	ids := make([]int64, len(page.Records))
	for i, r := range page.Records {
		ids[i] = r.id
	}
	return ids
}

func TestView_SortStability(t *testing.T) {
	// Three rows share the same total; their relative input order must
	// survive both sort directions.
	records := []row{
		{id: 1, total: 5000},
		{id: 2, total: 15000},
		{id: 3, total: 5000},
		{id: 4, total: 5000},
		{id: 5, total: 10000},
	}
	cols := testColumns()
	state := table.NewState(10)
	state.Sort = table.SortState{Column: "total", Direction: table.DirectionAscending}

	page, _ := table.View(records, cols, state)
	assert.Equal(t, []int64{1, 3, 4, 5, 2}, idsOf(page))

	state.Sort.Direction = table.DirectionDescending
	page, _ = table.View(records, cols, state)
	assert.Equal(t, []int64{2, 5, 1, 3, 4}, idsOf(page))
}

func TestView_DirectionNoneKeepsInputOrder(t *testing.T) {
	records := []row{{id: 3}, {id: 1}, {id: 2}}
	state := table.NewState(10)
	state.Sort = table.SortState{Column: "id", Direction: table.DirectionNone}

	page, _ := table.View(records, testColumns(), state)
	assert.Equal(t, []int64{3, 1, 2}, idsOf(page))
}

func TestView_UnknownAndUnsortableColumnsIgnored(t *testing.T) {
	records := []row{{id: 3, name: "c"}, {id: 1, name: "a"}, {id: 2, name: "b"}}
	state := table.NewState(10)

	state.Sort = table.SortState{Column: "name", Direction: table.DirectionAscending}
	page, _ := table.View(records, testColumns(), state)
	assert.Equal(t, []int64{3, 1, 2}, idsOf(page), "non-sortable column must not reorder")

	state.Sort = table.SortState{Column: "missing", Direction: table.DirectionAscending}
	page, _ = table.View(records, testColumns(), state)
	assert.Equal(t, []int64{3, 1, 2}, idsOf(page))
}

func TestView_DateSortAbsentFirst(t *testing.T) {
	early := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	late := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	records := []row{
		{id: 1, at: &late},
		{id: 2},
		{id: 3, at: &early},
	}
	state := table.NewState(10)
	state.Sort = table.SortState{Column: "at", Direction: table.DirectionAscending}

	page, _ := table.View(records, testColumns(), state)
	assert.Equal(t, []int64{2, 3, 1}, idsOf(page))
}

func TestToggleSort_Cycle(t *testing.T) {
	cols := testColumns()
	s := table.NewState(10)

	s = table.ToggleSort(cols, s, "total")
	assert.Equal(t, table.DirectionAscending, s.Sort.Direction)

	s = table.ToggleSort(cols, s, "total")
	assert.Equal(t, table.DirectionDescending, s.Sort.Direction)

	s = table.ToggleSort(cols, s, "total")
	assert.Equal(t, table.DirectionNone, s.Sort.Direction)
	assert.Empty(t, s.Sort.Column)

	s = table.ToggleSort(cols, s, "total")
	assert.Equal(t, table.DirectionAscending, s.Sort.Direction)
}

func TestToggleSort_SwitchingColumnStartsAscending(t *testing.T) {
	cols := testColumns()
	s := table.NewState(10)

	s = table.ToggleSort(cols, s, "total")
	s = table.ToggleSort(cols, s, "total")
	require.Equal(t, table.DirectionDescending, s.Sort.Direction)

	s = table.ToggleSort(cols, s, "id")
	assert.Equal(t, "id", s.Sort.Column)
	assert.Equal(t, table.DirectionAscending, s.Sort.Direction)
}

func TestToggleSort_ResetsPageIndex(t *testing.T) {
	cols := testColumns()
	s := table.NewState(2)
	s = table.NextPage(s, 10)
	require.Equal(t, 1, s.Page.Index)

	s = table.ToggleSort(cols, s, "total")
	assert.Equal(t, 0, s.Page.Index)
}

func TestToggleSort_UnsortableColumnNoOp(t *testing.T) {
	cols := testColumns()
	s := table.NewState(2)
	s = table.NextPage(s, 10)

	got := table.ToggleSort(cols, s, "name")
	assert.Equal(t, s, got)
}

func TestPagination_Bounds(t *testing.T) {
	s := table.NewState(2)
	total := 5 // pages 0..2

	assert.Equal(t, 3, table.PageCount(total, 2))

	// Next at the last page is a no-op.
	s = table.SetPage(s, 2, total)
	s = table.NextPage(s, total)
	assert.Equal(t, 2, s.Page.Index)

	// Prev at page zero is a no-op.
	s = table.SetPage(s, 0, total)
	s = table.PrevPage(s)
	assert.Equal(t, 0, s.Page.Index)

	// Out-of-range jumps clamp on both sides.
	s = table.SetPage(s, 99, total)
	assert.Equal(t, 2, s.Page.Index)
	s = table.SetPage(s, -1, total)
	assert.Equal(t, 0, s.Page.Index)
}

func TestView_PageWindow(t *testing.T) {
	records := make([]row, 5)
	for i := range records {
		records[i] = row{id: int64(i + 1)}
	}
	state := table.NewState(2)
	state = table.SetPage(state, 2, len(records))

	page, next := table.View(records, testColumns(), state)
	assert.Equal(t, []int64{5}, idsOf(page))
	assert.Equal(t, 2, page.Index)
	assert.Equal(t, 3, page.PageCount)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 2, next.Page.Index)
}

func TestView_ClampsStaleIndex(t *testing.T) {
	records := []row{{id: 1}, {id: 2}, {id: 3}}
	state := table.NewState(2)
	state.Page.Index = 40

	page, next := table.View(records, testColumns(), state)
	assert.Equal(t, 1, page.Index)
	assert.Equal(t, 1, next.Page.Index)
	assert.Equal(t, []int64{3}, idsOf(page))
}

func TestView_EmptySet(t *testing.T) {
	page, next := table.View(nil, testColumns(), table.NewState(10))
	assert.Empty(t, page.Rows)
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 1, page.PageCount)
	assert.Equal(t, 0, next.Page.Index)
}

func TestView_RendersCellsByKind(t *testing.T) {
	at := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	records := []row{{id: 7, name: "Nasi Goreng (2)", total: 45000, at: &at}}

	page, _ := table.View(records, testColumns(), table.NewState(10))
	require.Len(t, page.Rows, 1)
	assert.Equal(t, []string{"007", "Nasi Goreng (2)", "01/05/2024 09:30", "Rp 45.000"}, page.Rows[0])
	assert.Equal(t, []string{"No ID", "Name", "Date", "Total"}, page.Headers)
}

func TestView_AbsentDateRendersPlaceholder(t *testing.T) {
	page, _ := table.View([]row{{id: 1}}, testColumns(), table.NewState(10))
	require.Len(t, page.Rows, 1)
	assert.Equal(t, "-", page.Rows[0][2])
}
