package gridmodel

import "testing"

func TestNewGrid(t *testing.T) {
	testCases := []struct {
		description string
		rows        [][]byte
		wantErr     bool
	}{
		{"valid 2x2", [][]byte{{'C', 'A'}, {'T', 'S'}}, false},
		{"valid 1x1", [][]byte{{'A'}}, false},
		{"empty rows", [][]byte{}, true},
		{"row too long", makeRows(21, 1), true},
		{"col too long", makeRows(1, 21), true},
		{"ragged rows", [][]byte{{'A', 'B'}, {'C'}}, true},
		{"non-letter cell", [][]byte{{'A', '1'}}, true},
		{"lowercase cell", [][]byte{{'a', 'b'}}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			_, err := NewGrid(tc.rows)
			if (err != nil) != tc.wantErr {
				t.Errorf("NewGrid(%v) error = %v, wantErr %v", tc.rows, err, tc.wantErr)
			}
		})
	}
}

func makeRows(r, c int) [][]byte {
	rows := make([][]byte, r)
	for i := range rows {
		row := make([]byte, c)
		for j := range row {
			row[j] = 'A'
		}
		rows[i] = row
	}
	return rows
}

func TestGridCornerAndEdge(t *testing.T) {
	g, err := NewGrid([][]byte{
		{'A', 'B', 'C'},
		{'D', 'E', 'F'},
		{'G', 'H', 'I'},
	})
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	testCases := []struct {
		description string
		cell        Cell
		isCorner    bool
		isEdge      bool
	}{
		{"top-left is corner", Cell{0, 0}, true, false},
		{"top-right is corner", Cell{0, 2}, true, false},
		{"bottom-left is corner", Cell{2, 0}, true, false},
		{"bottom-right is corner", Cell{2, 2}, true, false},
		{"top-middle is edge", Cell{0, 1}, false, true},
		{"middle-left is edge", Cell{1, 0}, false, true},
		{"center is interior", Cell{1, 1}, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := g.IsCorner(tc.cell); got != tc.isCorner {
				t.Errorf("IsCorner(%v) = %v, want %v", tc.cell, got, tc.isCorner)
			}
			if got := g.IsEdge(tc.cell); got != tc.isEdge {
				t.Errorf("IsEdge(%v) = %v, want %v", tc.cell, got, tc.isEdge)
			}
		})
	}
}

func TestGridNeighborsFixedOrder(t *testing.T) {
	g, err := NewGrid([][]byte{
		{'A', 'B', 'C'},
		{'D', 'E', 'F'},
		{'G', 'H', 'I'},
	})
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	want := []Cell{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}
	got := g.Neighbors(Cell{1, 1}, nil)
	if len(got) != len(want) {
		t.Fatalf("Neighbors(center) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Neighbors(center)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestGridIndexRoundTrip(t *testing.T) {
	g, err := NewGrid(makeRows(4, 5))
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			c := Cell{Row: row, Col: col}
			idx := g.Index(c)
			if got := g.CellAt(idx); got != c {
				t.Errorf("CellAt(Index(%v)) = %v, want %v", c, got, c)
			}
		}
	}
}
