package puzzleserver

import (
	"errors"
	"fmt"

	"github.com/bastiangx/strandsolve/pkg/enumerate"
	"github.com/bastiangx/strandsolve/pkg/griddict"
	"github.com/bastiangx/strandsolve/pkg/gridmodel"
)

// asInt coerces a msgpack-decoded numeric value (int64 or float64,
// depending on how the client encoded it) into an int.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int64:
		return int(n), true
	case int:
		return n, true
	case float64:
		return int(n), true
	case uint64:
		return int(n), true
	default:
		return 0, false
	}
}

func asCellWire(v any) (CellWire, bool) {
	pair, ok := v.([]any)
	if !ok || len(pair) != 2 {
		return CellWire{}, false
	}
	row, ok1 := asInt(pair[0])
	col, ok2 := asInt(pair[1])
	if !ok1 || !ok2 {
		return CellWire{}, false
	}
	return CellWire{row, col}, true
}

// parseGridWireAny converts a raw msgpack grid (rows of single-letter
// strings) into a *gridmodel.Grid.
func parseGridWireAny(rows []any) (*gridmodel.Grid, error) {
	if len(rows) == 0 {
		return nil, errors.New("puzzleserver: missing or empty grid")
	}
	letters := make([][]byte, len(rows))
	for r, rowAny := range rows {
		cols, ok := rowAny.([]any)
		if !ok {
			return nil, fmt.Errorf("puzzleserver: grid row %d is not an array", r)
		}
		row := make([]byte, len(cols))
		for c, cell := range cols {
			s, ok := cell.(string)
			if !ok || len(s) != 1 {
				return nil, fmt.Errorf("puzzleserver: grid cell [%d][%d] is not a single-letter string", r, c)
			}
			row[c] = s[0]
		}
		letters[r] = row
	}
	return gridmodel.NewGrid(letters)
}

// parseGridRequest pulls the common enumerate/collect fields (grid,
// occupied mask, blacklist, length bounds) out of a decoded request map.
func (s *Server) parseGridRequest(raw map[string]any) (*gridmodel.Grid, gridmodel.OccupancyMask, *griddict.Blacklist, int, int, error) {
	gridWire, _ := raw["grid"].([]any)
	grid, err := parseGridWireAny(gridWire)
	if err != nil {
		return nil, gridmodel.OccupancyMask{}, nil, 0, 0, err
	}

	occupied := gridmodel.NewOccupancyMask(grid.Size())
	if occWire, ok := raw["occupied"].([]any); ok {
		for _, cellAny := range occWire {
			cw, ok := asCellWire(cellAny)
			if !ok {
				continue
			}
			cell := gridmodel.Cell{Row: cw[0], Col: cw[1]}
			if grid.InBounds(cell) {
				occupied.Set(grid.Index(cell))
			}
		}
	}

	blacklist := griddict.NewBlacklist()
	if blWire, ok := raw["blacklist"].([]any); ok {
		for _, wAny := range blWire {
			if w, ok := wAny.(string); ok {
				blacklist.Add(w)
			}
		}
	}

	minLen := s.cfg.Solver.MinLen
	maxLen := s.cfg.Solver.MaxLen
	if v, ok := asInt(raw["min_len"]); ok && v > 0 {
		minLen = v
	}
	if v, ok := asInt(raw["max_len"]); ok && v > 0 {
		maxLen = v
	}

	return grid, occupied, blacklist, minLen, maxLen, nil
}

// decodeCandidateWires converts a raw msgpack array field into
// []CandidateWire, tolerating its absence (nil raw value).
func decodeCandidateWires(raw any) ([]CandidateWire, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, nil
	}
	out := make([]CandidateWire, 0, len(items))
	for _, itemAny := range items {
		item, ok := itemAny.(map[string]any)
		if !ok {
			return nil, errors.New("puzzleserver: candidate entry is not an object")
		}
		word, _ := item["word"].(string)
		pathAny, _ := item["path"].([]any)
		path := make([]CellWire, 0, len(pathAny))
		for _, cellAny := range pathAny {
			cw, ok := asCellWire(cellAny)
			if !ok {
				return nil, fmt.Errorf("puzzleserver: malformed path cell in candidate %q", word)
			}
			path = append(path, cw)
		}
		out = append(out, CandidateWire{Word: word, Path: path})
	}
	return out, nil
}

func fromCandidateWires(wires []CandidateWire) []enumerate.Candidate {
	out := make([]enumerate.Candidate, 0, len(wires))
	for _, w := range wires {
		path := make(gridmodel.Path, 0, len(w.Path))
		for _, cw := range w.Path {
			path = append(path, gridmodel.Cell{Row: cw[0], Col: cw[1]})
		}
		out = append(out, enumerate.Candidate{Word: w.Word, Path: path})
	}
	return out
}

func toCandidateWires(candidates []enumerate.Candidate) []CandidateWire {
	out := make([]CandidateWire, 0, len(candidates))
	for _, c := range candidates {
		path := make([]CellWire, 0, len(c.Path))
		for _, cell := range c.Path {
			path = append(path, CellWire{cell.Row, cell.Col})
		}
		out = append(out, CandidateWire{Word: c.Word, Path: path})
	}
	return out
}
