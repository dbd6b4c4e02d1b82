package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridRowNavigation(t *testing.T) {
	g := NewGrid(3, 2)
	g.SetCount(7) // rows: [0 1 2] [3 4 5] [6]

	g.Down()
	assert.Equal(t, 3, g.Selected())
	g.Right()
	assert.Equal(t, 4, g.Selected())
	g.Down()
	assert.Equal(t, 6, g.Selected(), "ragged bottom row clamps to last cell")
	g.Down()
	assert.Equal(t, 6, g.Selected())
	g.Up()
	assert.Equal(t, 3, g.Selected())
	g.Up()
	assert.Equal(t, 0, g.Selected())
	g.Up()
	assert.Equal(t, 0, g.Selected())
}

func TestGridLeftRightClamp(t *testing.T) {
	g := NewGrid(3, 2)
	g.SetCount(4)

	g.Left()
	assert.Equal(t, 0, g.Selected())
	for i := 0; i < 10; i++ {
		g.Right()
	}
	assert.Equal(t, 3, g.Selected())
}

func TestGridScrollsPageWithCursor(t *testing.T) {
	g := NewGrid(2, 2)
	g.SetCount(10) // 5 rows, 2 visible

	start, end := g.VisibleRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, 4, end)

	g.Down()
	g.Down() // cursor row 2, must scroll
	start, end = g.VisibleRange()
	assert.Equal(t, 2, start)
	assert.Equal(t, 6, end)
	assert.True(t, g.IsSelected(4))

	g.Up()
	g.Up()
	g.Up() // back to top
	start, _ = g.VisibleRange()
	assert.Equal(t, 0, start)
}

func TestGridSetCountResets(t *testing.T) {
	g := NewGrid(3, 2)
	g.SetCount(9)
	g.Down()
	g.Right()

	g.SetCount(2)
	assert.Equal(t, 0, g.Selected())
	start, end := g.VisibleRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, end)
}

func TestGridEmpty(t *testing.T) {
	g := NewGrid(4, 3)
	g.SetCount(0)
	g.Down()
	g.Right()
	assert.Equal(t, 0, g.Selected())
	start, end := g.VisibleRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}
