package uistate

// SortDirection of a table column.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAsc
	SortDesc
)

// TableView is the display state of a sortable, pageable results table,
// mirroring what the table plugin keeps client-side: current page, page
// size, and the sorted column.
type TableView struct {
	RowCount int
	PageSize int

	Page       int
	SortColumn string
	Direction  SortDirection
}

// NewTableView builds a view on page zero. A non-positive pageSize shows
// everything on one page.
func NewTableView(rowCount, pageSize int) *TableView {
	return &TableView{RowCount: rowCount, PageSize: pageSize}
}

// PageCount reports how many pages the table spans; always at least one.
func (t *TableView) PageCount() int {
	if t == nil || t.PageSize <= 0 || t.RowCount <= 0 {
		return 1
	}
	pages := t.RowCount / t.PageSize
	if t.RowCount%t.PageSize != 0 {
		pages++
	}
	return pages
}

// Goto clamps the requested page into range and reports the page shown.
func (t *TableView) Goto(page int) int {
	last := t.PageCount() - 1
	if page < 0 {
		page = 0
	}
	if page > last {
		page = last
	}
	t.Page = page
	return t.Page
}

// Next advances one page; it reports whether the page changed.
func (t *TableView) Next() bool {
	before := t.Page
	return t.Goto(before+1) != before
}

// Prev steps back one page; it reports whether the page changed.
func (t *TableView) Prev() bool {
	before := t.Page
	return t.Goto(before-1) != before
}

// Sort sorts by the named column, toggling direction when the column is
// already sorted ascending.
func (t *TableView) Sort(column string) {
	if t.SortColumn == column && t.Direction == SortAsc {
		t.Direction = SortDesc
		return
	}
	t.SortColumn = column
	t.Direction = SortAsc
}

// Bounds returns the half-open row range [from, to) for the current page.
func (t *TableView) Bounds() (int, int) {
	if t == nil || t.RowCount <= 0 {
		return 0, 0
	}
	if t.PageSize <= 0 {
		return 0, t.RowCount
	}
	from := t.Page * t.PageSize
	to := from + t.PageSize
	if to > t.RowCount {
		to = t.RowCount
	}
	return from, to
}
