package enumerate

import (
	"testing"

	"github.com/bastiangx/strandsolve/pkg/griddict"
	"github.com/bastiangx/strandsolve/pkg/gridmodel"
)

func buildGrid(t *testing.T, rows []string) *gridmodel.Grid {
	t.Helper()
	raw := make([][]byte, len(rows))
	for i, row := range rows {
		raw[i] = []byte(row)
	}
	g, err := gridmodel.NewGrid(raw)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

// TestEnumeratePrefixPruning covers spec scenario 1: only words that
// survive prefix pruning and exist in the dictionary are returned.
func TestEnumeratePrefixPruning(t *testing.T) {
	grid := buildGrid(t, []string{"CA", "TS"})
	dict := griddict.Build([]string{"CATS", "DOG", "DOGS"})
	occupied := gridmodel.NewOccupancyMask(grid.Size())

	results := Enumerate(grid, dict, gridmodel.Cell{Row: 0, Col: 0}, occupied, nil, 4, 15)

	if len(results) != 1 {
		t.Fatalf("Enumerate() returned %d candidates, want 1", len(results))
	}
	if results[0].Word != "CATS" {
		t.Fatalf("Enumerate()[0].Word = %q, want %q", results[0].Word, "CATS")
	}
	want := gridmodel.Path{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	if len(results[0].Path) != len(want) {
		t.Fatalf("Enumerate()[0].Path = %v, want %v", results[0].Path, want)
	}
	for i := range want {
		if results[0].Path[i] != want[i] {
			t.Fatalf("Enumerate()[0].Path = %v, want %v", results[0].Path, want)
		}
	}
}

// TestEnumerateLongestPathTieBreak covers spec scenario 2: no shorter
// cyclic revisit of the same word is ever reported.
func TestEnumerateLongestPathTieBreak(t *testing.T) {
	grid := buildGrid(t, []string{"ABAB"})
	dict := griddict.Build([]string{"ABAB"})
	occupied := gridmodel.NewOccupancyMask(grid.Size())

	results := Enumerate(grid, dict, gridmodel.Cell{Row: 0, Col: 0}, occupied, nil, 4, 15)

	if len(results) != 1 {
		t.Fatalf("Enumerate() returned %d candidates, want 1", len(results))
	}
	if len(results[0].Path) != 4 {
		t.Fatalf("Enumerate()[0].Path has %d cells, want 4", len(results[0].Path))
	}
}

// TestEnumerateDisjointFromOccupied covers spec scenario 3.
func TestEnumerateDisjointFromOccupied(t *testing.T) {
	grid := buildGrid(t, []string{"ABCDE"})
	dict := griddict.Build([]string{"ABCD", "BCDE"})
	occupied := gridmodel.NewOccupancyMask(grid.Size())
	occupied.Set(grid.Index(gridmodel.Cell{Row: 0, Col: 0}))

	results := Enumerate(grid, dict, gridmodel.Cell{Row: 0, Col: 1}, occupied, nil, 4, 15)

	words := make(map[string]bool)
	for _, c := range results {
		words[c.Word] = true
	}
	if !words["BCDE"] {
		t.Error("expected BCDE to be reachable from (0,1) with (0,0) occupied")
	}
	if words["ABCD"] {
		t.Error("ABCD should be unreachable: it requires the occupied cell (0,0)")
	}
}

func TestEnumerateOutOfBoundsStartIsEmpty(t *testing.T) {
	grid := buildGrid(t, []string{"AB", "CD"})
	dict := griddict.Build([]string{"ABCD"})
	occupied := gridmodel.NewOccupancyMask(grid.Size())

	results := Enumerate(grid, dict, gridmodel.Cell{Row: 5, Col: 5}, occupied, nil, 4, 15)
	if results != nil {
		t.Errorf("Enumerate() from out-of-bounds start = %v, want nil", results)
	}
}

func TestEnumerateStartAlreadyOccupiedIsEmpty(t *testing.T) {
	grid := buildGrid(t, []string{"AB", "CD"})
	dict := griddict.Build([]string{"ABCD"})
	occupied := gridmodel.NewOccupancyMask(grid.Size())
	start := gridmodel.Cell{Row: 0, Col: 0}
	occupied.Set(grid.Index(start))

	if results := Enumerate(grid, dict, start, occupied, nil, 4, 15); results != nil {
		t.Errorf("Enumerate() from occupied start = %v, want nil", results)
	}
}

func TestEnumerateMinLenExceedsMaxLenIsEmpty(t *testing.T) {
	grid := buildGrid(t, []string{"ABCD"})
	dict := griddict.Build([]string{"ABCD"})
	occupied := gridmodel.NewOccupancyMask(grid.Size())

	if results := Enumerate(grid, dict, gridmodel.Cell{Row: 0, Col: 0}, occupied, nil, 10, 4); results != nil {
		t.Errorf("Enumerate() with min_len > max_len = %v, want nil", results)
	}
}

func TestEnumerateBlacklistExcludesWord(t *testing.T) {
	grid := buildGrid(t, []string{"CA", "TS"})
	dict := griddict.Build([]string{"CATS"})
	occupied := gridmodel.NewOccupancyMask(grid.Size())
	blacklist := griddict.NewBlacklist()
	blacklist.Add("CATS")

	results := Enumerate(grid, dict, gridmodel.Cell{Row: 0, Col: 0}, occupied, blacklist, 4, 15)
	if len(results) != 0 {
		t.Errorf("Enumerate() with CATS blacklisted = %v, want empty", results)
	}
}

// TestEnumerateSortedByLengthDescending covers invariant E4.
func TestEnumerateSortedByLengthDescending(t *testing.T) {
	grid := buildGrid(t, []string{"CATSUP"})
	dict := griddict.Build([]string{"CATS", "CATSUP"})
	occupied := gridmodel.NewOccupancyMask(grid.Size())

	results := Enumerate(grid, dict, gridmodel.Cell{Row: 0, Col: 0}, occupied, nil, 4, 15)

	for i := 1; i < len(results); i++ {
		if len(results[i-1].Word) < len(results[i].Word) {
			t.Errorf("results not sorted by length descending: %q before %q", results[i-1].Word, results[i].Word)
		}
	}
}

func TestCollectOverGridRowMajorOrder(t *testing.T) {
	grid := buildGrid(t, []string{"CA", "TS"})
	dict := griddict.Build([]string{"CATS", "ACTS"})
	occupied := gridmodel.NewOccupancyMask(grid.Size())

	results := CollectOverGrid(grid, dict, occupied, nil, 4, 15)
	if len(results) == 0 {
		t.Fatal("expected at least one candidate across the whole grid")
	}
	for i := 1; i < len(results); i++ {
		prev, cur := grid.Index(results[i-1].Path[0]), grid.Index(results[i].Path[0])
		if prev > cur {
			t.Errorf("results not in row-major start-cell order: %q from %v before %q from %v",
				results[i-1].Word, results[i-1].Path[0], results[i].Word, results[i].Path[0])
		}
	}
}
