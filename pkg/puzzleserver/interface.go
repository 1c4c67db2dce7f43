/*
Package puzzleserver implements msgpack IPC for the grid-tiling solver.

The server operates on a request/response model: clients send structured
messages on stdin and receive responses on stdout, both MessagePack
encoded. Every message carries an "id" field plus an "op" naming one of
the four external operations (spec §6):

	{"id": "r1", "op": "enumerate", "grid": [["C","A"],["T","S"]],
	 "row": 0, "col": 0, "occupied": [], "blacklist": [],
	 "min_len": 4, "max_len": 15}
	{"id": "r1", "candidates": [{"word": "CATS", "path": [[0,0],[0,1],[1,0],[1,1]]}]}

	{"id": "r2", "op": "solve", "grid": [...], "pool": [...], "committed": [...],
	 "max_attempts": 100000}
	{"id": "r2", "status": "success", "placement": [...], "coverage_percent": 100.0}

A running solve is interrupted by a client message {"op":"cancel","id":"r2"};
the server rejects a second concurrent solve with a "busy" status rather
than queuing it, per spec §5's single-flight requirement. Progress frames
are pushed on the same stdout stream tagged {"type":"progress", ...} every
1000 attempts, the solver's fixed interval (the progress_interval config
key is not read).
*/
package puzzleserver

// CellWire is the wire form of a gridmodel.Cell: a two-element [row, col].
type CellWire [2]int

// CandidateWire is the wire form of an enumerate.Candidate.
type CandidateWire struct {
	Word string     `msgpack:"word"`
	Path []CellWire `msgpack:"path"`
}

// EnumerateRequest lists dictionary words reachable from one cell.
type EnumerateRequest struct {
	ID        string     `msgpack:"id"`
	Grid      [][]string `msgpack:"grid,omitempty"`
	Row       int        `msgpack:"row"`
	Col       int        `msgpack:"col"`
	Occupied  []CellWire `msgpack:"occupied,omitempty"`
	Blacklist []string   `msgpack:"blacklist,omitempty"`
	MinLen    int        `msgpack:"min_len,omitempty"`
	MaxLen    int        `msgpack:"max_len,omitempty"`
}

// EnumerateResponse answers an EnumerateRequest.
type EnumerateResponse struct {
	ID         string          `msgpack:"id"`
	Candidates []CandidateWire `msgpack:"candidates"`
	Error      string          `msgpack:"error,omitempty"`
}

// CollectRequest runs enumerate over every in-bounds cell, row-major.
type CollectRequest struct {
	ID        string     `msgpack:"id"`
	Grid      [][]string `msgpack:"grid,omitempty"`
	Occupied  []CellWire `msgpack:"occupied,omitempty"`
	Blacklist []string   `msgpack:"blacklist,omitempty"`
	MinLen    int        `msgpack:"min_len,omitempty"`
	MaxLen    int        `msgpack:"max_len,omitempty"`
}

// CollectResponse answers a CollectRequest.
type CollectResponse struct {
	ID         string          `msgpack:"id"`
	Candidates []CandidateWire `msgpack:"candidates"`
	Error      string          `msgpack:"error,omitempty"`
}

// SolveRequest asks the solver for a placement given a candidate pool.
type SolveRequest struct {
	ID          string          `msgpack:"id"`
	Grid        [][]string      `msgpack:"grid,omitempty"`
	Pool        []CandidateWire `msgpack:"pool"`
	Committed   []CandidateWire `msgpack:"committed,omitempty"`
	MaxAttempts int             `msgpack:"max_attempts,omitempty"`
}

// SolveResponse answers a SolveRequest. Status is one of "success",
// "partial", "no_solution", "cancelled", or "busy".
type SolveResponse struct {
	ID              string          `msgpack:"id"`
	Status          string          `msgpack:"status"`
	Placement       []CandidateWire `msgpack:"placement,omitempty"`
	CoveragePercent float64         `msgpack:"coverage_percent"`
	Error           string          `msgpack:"error,omitempty"`
}

// ProgressFrame is pushed unsolicited on stdout while a solve runs.
type ProgressFrame struct {
	Type            string  `msgpack:"type"`
	ID              string  `msgpack:"id"`
	Attempts        int     `msgpack:"attempts"`
	PlacedCount     int     `msgpack:"placed_count"`
	CoveragePercent float64 `msgpack:"coverage_percent"`
}

// CancelRequest asks a running solve to stop at its next poll.
type CancelRequest struct {
	ID string `msgpack:"id"`
	Op string `msgpack:"op"`
}

// CancelResponse acknowledges a CancelRequest.
type CancelResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
}
