package enumerate

import (
	"runtime"
	"sync"

	"github.com/bastiangx/strandsolve/pkg/gridmodel"
	"github.com/bastiangx/strandsolve/pkg/griddict"
)

// cellJob describes one Enumerate call to run against a start cell.
type cellJob struct {
	index int
	start gridmodel.Cell
}

// CollectOverGrid concatenates Enumerate over every in-bounds cell,
// returning results in row-major cell order (ties within a cell still
// broken by length descending then discovery order, per Enumerate).
// Results are not deduplicated across start cells: the same word can
// appear once for every cell it is reachable from.
//
// The per-cell searches are independent and run across a small worker
// pool (grounded on the same job/pool shape used elsewhere in the
// retrieval pack for CPU-bound fan-out), but the result is always
// reassembled in deterministic row-major order before it's returned —
// the concurrency is an internal speedup, not something a caller can
// observe or depend on for ordering.
func CollectOverGrid(
	grid *gridmodel.Grid,
	dict *griddict.Dictionary,
	occupied gridmodel.OccupancyMask,
	blacklist *griddict.Blacklist,
	minLen, maxLen int,
) []Candidate {
	if grid == nil || dict == nil {
		return nil
	}

	cellCount := grid.Size()
	jobs := make(chan cellJob, cellCount)
	results := make([][]Candidate, cellCount)

	workers := runtime.GOMAXPROCS(0)
	if workers > cellCount {
		workers = cellCount
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for job := range jobs {
				results[job.index] = Enumerate(grid, dict, job.start, occupied, blacklist, minLen, maxLen)
			}
		}()
	}

	for i := 0; i < cellCount; i++ {
		jobs <- cellJob{index: i, start: grid.CellAt(i)}
	}
	close(jobs)
	wg.Wait()

	out := make([]Candidate, 0, cellCount*2)
	for _, cellResults := range results {
		out = append(out, cellResults...)
	}
	return out
}
