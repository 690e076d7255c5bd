package table

// Direction is a tri-state sort direction.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionAscending
	DirectionDescending
)

// ParseDirection maps the query-string form of a direction. Anything
// unrecognized is treated as no sort.
func ParseDirection(s string) Direction {
	switch s {
	case "asc":
		return DirectionAscending
	case "desc":
		return DirectionDescending
	}
	return DirectionNone
}

func (d Direction) String() string {
	switch d {
	case DirectionAscending:
		return "asc"
	case DirectionDescending:
		return "desc"
	}
	return "none"
}

// SortState holds the single active sort key, if any.
type SortState struct {
	Column    string    `json:"column"`
	Direction Direction `json:"direction"`
}

// PageState holds the zero-based page index and the fixed page size.
// The size is constant for the lifetime of a table view.
type PageState struct {
	Index int `json:"index"`
	Size  int `json:"size"`
}

// State is the full, caller-owned view state. Every transition below is a
// pure function: it returns a new state and never touches shared context.
type State struct {
	Sort SortState `json:"sort"`
	Page PageState `json:"page"`
}

// NewState returns an unsorted state at page zero with the given page size.
func NewState(pageSize int) State {
	if pageSize < 1 {
		pageSize = 1
	}
	return State{Page: PageState{Size: pageSize}}
}

// ToggleSort cycles the sort on columnID: ascending, descending, none.
// Toggling a different column starts a fresh ascending sort. Any sort change
// resets the page index to zero so the caller cannot land past the end of a
// reordered set. Unknown or non-sortable columns leave the state untouched.
func ToggleSort[T any](columns []Column[T], s State, columnID string) State {
	sortable := false
	for _, col := range columns {
		if col.ID == columnID {
			sortable = col.Sortable
			break
		}
	}
	if !sortable {
		return s
	}

	if s.Sort.Column != columnID {
		s.Sort = SortState{Column: columnID, Direction: DirectionAscending}
	} else {
		switch s.Sort.Direction {
		case DirectionAscending:
			s.Sort.Direction = DirectionDescending
		case DirectionDescending:
			s.Sort = SortState{}
		default:
			s.Sort = SortState{Column: columnID, Direction: DirectionAscending}
		}
	}
	s.Page.Index = 0
	return s
}

// NextPage advances one page; at the last page it is a no-op.
func NextPage(s State, total int) State {
	s.Page.Index = clampIndex(s.Page.Index+1, PageCount(total, s.Page.Size))
	return s
}

// PrevPage steps back one page; at page zero it is a no-op.
func PrevPage(s State) State {
	if s.Page.Index > 0 {
		s.Page.Index--
	}
	return s
}

// SetPage jumps to the given page index, clamped to the valid range.
func SetPage(s State, index, total int) State {
	s.Page.Index = clampIndex(index, PageCount(total, s.Page.Size))
	return s
}

// PageCount derives the number of pages for a record count. An empty set
// still has one (empty) page so the index range is never empty.
func PageCount(total, size int) int {
	if size < 1 {
		return 1
	}
	count := (total + size - 1) / size
	if count < 1 {
		count = 1
	}
	return count
}

func clampIndex(index, pageCount int) int {
	if index < 0 {
		return 0
	}
	if index > pageCount-1 {
		return pageCount - 1
	}
	return index
}
