/*
Package tiling implements the tiling solver: given a pool of (word, path)
candidates and any pre-placed words, find a disjoint subset whose paths
partition the grid, or the best partial coverage found within a budget.

The search is a classical backtracking walk over a priority-ordered pool.
Longer words are tried first (they collapse branching fastest), and
within equal length, cells on corners and edges are preferred, since those
are statistically the hardest to cover later. The order is fixed once per
solve; the `j >= i` index rule during recursion makes each pool entry
usable at most once and skips permutations of the same subset.

	result := tiling.Solve(pool, committed, grid, progress, cancel, 100000)
*/
package tiling

import (
	"sort"

	"github.com/bastiangx/strandsolve/internal/logger"
	"github.com/bastiangx/strandsolve/pkg/enumerate"
	"github.com/bastiangx/strandsolve/pkg/gridmodel"
)

var log = logger.Default("tiling")

// progressInterval is the fixed number of backtracking attempts between
// progress/cancel polls, per spec.
const progressInterval = 1000

// ProgressFunc is invoked every progressInterval attempts with the
// current attempt count, placed-candidate count, and coverage percent.
// Successive calls within one Solve report non-decreasing coverage.
type ProgressFunc func(attempts, placedCount int, coveragePercent float64)

// CancelFunc is polled alongside ProgressFunc; once it returns true the
// solver unwinds and returns the best placement seen so far.
type CancelFunc func() bool

type outcome int

const (
	outcomeExhaust outcome = iota
	outcomeSuccess
	outcomeCancel
	outcomeBudget
)

type searchState struct {
	grid        *gridmodel.Grid
	pool        []enumerate.Candidate
	progress    ProgressFunc
	cancel      CancelFunc
	maxAttempts int

	attempts int
	occupied gridmodel.OccupancyMask
	current  []enumerate.Candidate

	bestCoverage int
	best         []enumerate.Candidate
}

// Solve searches for a disjoint subset of pool (plus the fixed prefix
// committed) whose paths partition grid's cells.
//
//  1. If a complete placement is found, it is returned.
//  2. Else, if any partial placement during search covered more cells
//     than committed, that best placement is returned.
//  3. Else, committed is returned (or nil if committed is empty too).
//
// progress and cancel are polled every 1000 attempts; maxAttempts bounds
// the total number of recursive steps.
func Solve(
	pool []enumerate.Candidate,
	committed []enumerate.Candidate,
	grid *gridmodel.Grid,
	progress ProgressFunc,
	cancel CancelFunc,
	maxAttempts int,
) []enumerate.Candidate {
	occupied := gridmodel.NewOccupancyMask(grid.Size())
	for _, c := range committed {
		occupied.SetPath(grid, c.Path)
	}

	if occupied.Full() {
		return cloneCandidates(committed)
	}

	prioritized := prioritize(pool, grid)

	st := &searchState{
		grid:         grid,
		pool:         prioritized,
		progress:     progress,
		cancel:       cancel,
		maxAttempts:  maxAttempts,
		occupied:     occupied,
		current:      cloneCandidates(committed),
		bestCoverage: occupied.Count(),
		best:         cloneCandidates(committed),
	}

	if st.solve(0) == outcomeSuccess {
		return cloneCandidates(st.current)
	}
	// st.best starts as a clone of committed and is only replaced when a
	// partial placement's coverage strictly exceeds it, so this already
	// implements return semantics 2 and 3 of spec.md §4.3.
	return cloneCandidates(st.best)
}

func (st *searchState) solve(i int) outcome {
	st.attempts++

	if st.attempts%progressInterval == 0 {
		st.updateBestIfBetter(st.occupied.Count())
		if st.progress != nil {
			st.progress(st.attempts, len(st.current), percent(st.bestCoverage, st.grid.Size()))
		}
		if st.cancel != nil && st.cancel() {
			return outcomeCancel
		}
	}

	if st.occupied.Full() {
		st.updateBestIfBetter(st.occupied.Count())
		return outcomeSuccess
	}

	if st.attempts > st.maxAttempts {
		return outcomeBudget
	}

	for j := i; j < len(st.pool); j++ {
		cand := st.pool[j]
		if !st.occupied.DisjointFromPath(st.grid, cand.Path) {
			continue
		}

		st.current = append(st.current, cand)
		st.occupied.SetPath(st.grid, cand.Path)
		st.updateBestIfBetter(st.occupied.Count())

		switch st.solve(j + 1) {
		case outcomeSuccess:
			return outcomeSuccess
		case outcomeCancel:
			st.occupied.ClearPath(st.grid, cand.Path)
			st.current = st.current[:len(st.current)-1]
			return outcomeCancel
		case outcomeBudget:
			st.occupied.ClearPath(st.grid, cand.Path)
			st.current = st.current[:len(st.current)-1]
			return outcomeBudget
		}

		st.occupied.ClearPath(st.grid, cand.Path)
		st.current = st.current[:len(st.current)-1]
	}

	return outcomeExhaust
}

// updateBestIfBetter snapshots st.current as the new best whenever
// coverage strictly improves. This is load-bearing, not an optimization:
// best must be a deep copy, or a later backtrack mutates it in place.
func (st *searchState) updateBestIfBetter(coverage int) {
	if coverage <= st.bestCoverage {
		return
	}
	st.bestCoverage = coverage
	st.best = cloneCandidates(st.current)
}

func percent(coverage, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(coverage) / float64(total)
}

func cloneCandidates(cands []enumerate.Candidate) []enumerate.Candidate {
	if len(cands) == 0 {
		return nil
	}
	out := make([]enumerate.Candidate, len(cands))
	for i, c := range cands {
		out[i] = enumerate.Candidate{Word: c.Word, Path: c.Path.Clone()}
	}
	return out
}

// prioritize sorts a copy of pool by ascending priority score (most
// negative first): -length*1000 - positionScore, where positionScore
// sums 4 per corner cell, 2 per edge cell, 1 per interior cell in the
// candidate's path. The order is fixed for the duration of a solve.
func prioritize(pool []enumerate.Candidate, grid *gridmodel.Grid) []enumerate.Candidate {
	type scored struct {
		cand  enumerate.Candidate
		score int
	}
	items := make([]scored, len(pool))
	for i, c := range pool {
		items[i] = scored{cand: c, score: priorityScore(c, grid)}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].score < items[j].score
	})

	out := make([]enumerate.Candidate, len(items))
	for i, it := range items {
		out[i] = it.cand
	}
	return out
}

func priorityScore(c enumerate.Candidate, grid *gridmodel.Grid) int {
	position := 0
	for _, cell := range c.Path {
		switch {
		case grid.IsCorner(cell):
			position += 4
		case grid.IsEdge(cell):
			position += 2
		default:
			position += 1
		}
	}
	return -len(c.Word)*1000 - position
}
