// Package gridmodel holds the immutable grid, cell, path, and occupancy
// types shared by the enumerator and the tiling solver.
package gridmodel

import (
	"fmt"
)

// Letter is a single normalized uppercase character, A-Z.
type Letter byte

// Cell is a zero-based (row, col) coordinate into a Grid.
type Cell struct {
	Row int
	Col int
}

// neighborOffsets is the fixed 8-neighbor traversal order the enumerator
// and any code that needs to reproduce its visit order must use.
var neighborOffsets = [8]Cell{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// NeighborOffsets returns the fixed 8-neighbor offset order.
func NeighborOffsets() [8]Cell {
	return neighborOffsets
}

// Grid is an immutable rectangular array of Letters.
type Grid struct {
	rows    int
	cols    int
	letters []Letter
}

// NewGrid validates and builds a Grid from rows of raw bytes.
// Each row must be the same length, 1 <= R,C <= 20, and every byte must
// be an uppercase letter A-Z. Anything else is an InvalidGrid error.
func NewGrid(rows [][]byte) (*Grid, error) {
	r := len(rows)
	if r < 1 || r > 20 {
		return nil, fmt.Errorf("gridmodel: invalid grid: row count %d out of [1,20]", r)
	}
	c := len(rows[0])
	if c < 1 || c > 20 {
		return nil, fmt.Errorf("gridmodel: invalid grid: col count %d out of [1,20]", c)
	}
	letters := make([]Letter, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("gridmodel: invalid grid: row %d has %d cols, want %d", i, len(row), c)
		}
		for j, b := range row {
			if b < 'A' || b > 'Z' {
				return nil, fmt.Errorf("gridmodel: invalid grid: cell (%d,%d) = %q is not A-Z", i, j, b)
			}
			letters = append(letters, Letter(b))
		}
	}
	return &Grid{rows: r, cols: c, letters: letters}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns R*C, the total cell count.
func (g *Grid) Size() int { return g.rows * g.cols }

// InBounds reports whether c falls within the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the letter at c. The caller must ensure c is in bounds.
func (g *Grid) At(c Cell) Letter {
	return g.letters[c.Row*g.cols+c.Col]
}

// Index returns the flat row-major index of c.
func (g *Grid) Index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// CellAt returns the Cell for a flat row-major index.
func (g *Grid) CellAt(index int) Cell {
	return Cell{Row: index / g.cols, Col: index % g.cols}
}

// IsCorner reports whether c is one of the grid's four corners.
func (g *Grid) IsCorner(c Cell) bool {
	rowEdge := c.Row == 0 || c.Row == g.rows-1
	colEdge := c.Col == 0 || c.Col == g.cols-1
	return rowEdge && colEdge
}

// IsEdge reports whether c is a non-corner border cell.
func (g *Grid) IsEdge(c Cell) bool {
	if g.IsCorner(c) {
		return false
	}
	return c.Row == 0 || c.Row == g.rows-1 || c.Col == 0 || c.Col == g.cols-1
}

// Neighbors appends c's 8-neighbors that are in bounds, in the fixed
// traversal order, into dst and returns the extended slice.
func (g *Grid) Neighbors(c Cell, dst []Cell) []Cell {
	for _, off := range neighborOffsets {
		n := Cell{Row: c.Row + off.Row, Col: c.Col + off.Col}
		if g.InBounds(n) {
			dst = append(dst, n)
		}
	}
	return dst
}
