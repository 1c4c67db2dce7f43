/*
Package enumerate implements the word enumerator: depth-first search from
a single start cell that yields every dictionary word reachable by a
simple 8-connected path, each paired with the longest path that spells it.

The prefix test against the dictionary trie is the load-bearing prune —
without it, enumerating every simple 8-path from a cell is exponential in
path length. Bounding recursion to live trie prefixes keeps grids up to
20x20 and dictionaries of a few hundred thousand words tractable.

	cands := enumerate.Enumerate(grid, dict, gridmodel.Cell{Row: 0, Col: 0},
		occupied, blacklist, 4, 15)
*/
package enumerate

import (
	"sort"

	"github.com/bastiangx/strandsolve/internal/logger"
	"github.com/bastiangx/strandsolve/pkg/gridmodel"
	"github.com/bastiangx/strandsolve/pkg/griddict"
)

var log = logger.Default("enumerate")

// Candidate pairs a dictionary word with one path that spells it.
type Candidate struct {
	Word string
	Path gridmodel.Path
}

// dfsState carries the mutable search state through recursion: the
// growing path and a visited set equal to that path's cells.
type dfsState struct {
	grid      *gridmodel.Grid
	dict      *griddict.Dictionary
	occupied  gridmodel.OccupancyMask
	blacklist *griddict.Blacklist
	minLen    int
	maxLen    int

	path    gridmodel.Path
	visited map[gridmodel.Cell]bool
	word    []byte

	best  map[string]gridmodel.Path
	order []string // first-discovery order, for the final stable sort
}

// Enumerate returns every dictionary word reachable by a simple 8-path
// from start, each paired with its longest such path, sorted by word
// length descending then by discovery order.
//
// If start is out of bounds or already occupied, the result is empty.
func Enumerate(
	grid *gridmodel.Grid,
	dict *griddict.Dictionary,
	start gridmodel.Cell,
	occupied gridmodel.OccupancyMask,
	blacklist *griddict.Blacklist,
	minLen, maxLen int,
) []Candidate {
	if grid == nil || dict == nil {
		return nil
	}
	if !grid.InBounds(start) {
		log.Debugf("enumerate: start %v out of bounds", start)
		return nil
	}
	if minLen > maxLen {
		return nil
	}
	if occupied.HasCell(grid, start) {
		return nil
	}

	st := &dfsState{
		grid:      grid,
		dict:      dict,
		occupied:  occupied,
		blacklist: blacklist,
		minLen:    minLen,
		maxLen:    maxLen,
		path:      make(gridmodel.Path, 0, maxLen),
		visited:   make(map[gridmodel.Cell]bool, maxLen),
		word:      make([]byte, 0, maxLen),
		best:      make(map[string]gridmodel.Path),
	}

	st.push(start)
	st.search()
	st.pop()

	return st.results()
}

func (st *dfsState) push(c gridmodel.Cell) {
	st.path = append(st.path, c)
	st.visited[c] = true
	st.word = append(st.word, byte(st.grid.At(c)))
}

func (st *dfsState) pop() {
	last := len(st.path) - 1
	c := st.path[last]
	st.path = st.path[:last]
	delete(st.visited, c)
	st.word = st.word[:len(st.word)-1]
}

func (st *dfsState) search() {
	word := string(st.word)

	if len(word) >= st.minLen &&
		st.dict.Contains(word) &&
		(st.blacklist == nil || !st.blacklist.Contains(word)) {
		st.record(word)
	}

	if len(word) >= st.maxLen {
		return
	}
	if !st.dict.HasPrefix(word) {
		return
	}

	cur := st.path[len(st.path)-1]
	var neighbors [8]gridmodel.Cell
	ns := st.grid.Neighbors(cur, neighbors[:0])
	for _, n := range ns {
		if st.occupied.HasCell(st.grid, n) || st.visited[n] {
			continue
		}
		st.push(n)
		st.search()
		st.pop()
	}
}

// record keeps the longest path seen so far for word, per spec.md §4.2
// postcondition 2: ties broken by the first max-length path encountered
// under the fixed neighbor order.
func (st *dfsState) record(word string) {
	existing, ok := st.best[word]
	if !ok {
		st.best[word] = st.path.Clone()
		st.order = append(st.order, word)
		return
	}
	if len(st.path) > len(existing) {
		st.best[word] = st.path.Clone()
	}
}

func (st *dfsState) results() []Candidate {
	out := make([]Candidate, 0, len(st.order))
	for _, w := range st.order {
		out = append(out, Candidate{Word: w, Path: st.best[w]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].Word) > len(out[j].Word)
	})
	return out
}
