package components

// Grid is a scrollable cursor over a row-major sequence of cells. It owns
// only navigation state; callers render the cells themselves.
type Grid struct {
	Count    int
	Columns  int
	PageRows int
	Cursor   int
	offset   int // first visible row
}

// NewGrid creates a grid with the given column count and visible row count.
func NewGrid(columns, pageRows int) *Grid {
	if columns < 1 {
		columns = 1
	}
	if pageRows < 1 {
		pageRows = 1
	}
	return &Grid{Columns: columns, PageRows: pageRows}
}

// SetCount replaces the cell count and resets the cursor.
func (g *Grid) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	g.Count = n
	g.Cursor = 0
	g.offset = 0
}

// SetColumns changes the column count, keeping the cursor on the same cell.
func (g *Grid) SetColumns(columns int) {
	if columns < 1 {
		columns = 1
	}
	g.Columns = columns
	g.offset = 0
	g.scrollToCursor()
}

// Left moves the cursor one cell back.
func (g *Grid) Left() {
	if g.Cursor > 0 {
		g.Cursor--
		g.scrollToCursor()
	}
}

// Right moves the cursor one cell forward.
func (g *Grid) Right() {
	if g.Cursor < g.Count-1 {
		g.Cursor++
		g.scrollToCursor()
	}
}

// Up moves the cursor one row up, staying in the same column.
func (g *Grid) Up() {
	if g.Cursor-g.Columns >= 0 {
		g.Cursor -= g.Columns
		g.scrollToCursor()
	}
}

// Down moves the cursor one row down, clamping to the last cell when the
// bottom row is ragged.
func (g *Grid) Down() {
	next := g.Cursor + g.Columns
	if next >= g.Count {
		if g.rowOf(g.Cursor) < g.lastRow() {
			next = g.Count - 1
		} else {
			return
		}
	}
	g.Cursor = next
	g.scrollToCursor()
}

// Selected returns the index of the cell under the cursor.
func (g *Grid) Selected() int {
	return g.Cursor
}

// IsSelected returns true if the given absolute index is the cursor.
func (g *Grid) IsSelected(absIdx int) bool {
	return absIdx == g.Cursor
}

// VisibleRange returns the half-open cell range of the visible page.
func (g *Grid) VisibleRange() (int, int) {
	start := g.offset * g.Columns
	end := start + g.PageRows*g.Columns
	if start > g.Count {
		start = g.Count
	}
	if end > g.Count {
		end = g.Count
	}
	return start, end
}

func (g *Grid) rowOf(idx int) int {
	return idx / g.Columns
}

func (g *Grid) lastRow() int {
	if g.Count == 0 {
		return 0
	}
	return (g.Count - 1) / g.Columns
}

func (g *Grid) scrollToCursor() {
	row := g.rowOf(g.Cursor)
	if row < g.offset {
		g.offset = row
	}
	if row >= g.offset+g.PageRows {
		g.offset = row - g.PageRows + 1
	}
}
