package puzzleserver

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/bastiangx/strandsolve/internal/logger"
	"github.com/bastiangx/strandsolve/pkg/config"
	"github.com/bastiangx/strandsolve/pkg/enumerate"
	"github.com/bastiangx/strandsolve/pkg/griddict"
	"github.com/bastiangx/strandsolve/pkg/gridmodel"
	"github.com/bastiangx/strandsolve/pkg/tiling"
	"github.com/vmihailenco/msgpack/v5"
)

var log = logger.Default("puzzleserver")

// Server handles enumerate/solve/collect requests over MessagePack IPC.
type Server struct {
	dict       *griddict.Dictionary
	cfg        *config.Config
	configPath string

	decoder      *msgpack.Decoder
	writeMutex   sync.Mutex
	requestCount int64

	solving    atomic.Bool
	cancelFlag atomic.Bool
	activeID   string
	activeMu   sync.Mutex
}

// NewServer creates a server bound to a dictionary and config.
func NewServer(dict *griddict.Dictionary, cfg *config.Config, configPath string) *Server {
	return &Server{
		dict:       dict,
		cfg:        cfg,
		configPath: configPath,
		decoder:    msgpack.NewDecoder(os.Stdin),
	}
}

func (s *Server) reloadConfig() {
	newCfg, err := config.LoadConfig(s.configPath)
	if err != nil {
		log.Warnf("failed to reload config, keeping current: %v", err)
		return
	}
	s.cfg = newCfg
	log.Debugf("config reloaded from: %s", s.configPath)
}

// Start launches the stdin reader and the sequential dispatcher that
// runs enumerate/collect/solve requests one at a time, in order. It
// returns nil on client disconnect (io.EOF) and the decode error on any
// other read failure.
func (s *Server) Start() error {
	log.Debug("starting msgpack puzzle server")

	requests := make(chan map[string]any, 16)
	readErr := make(chan error, 1)
	go s.readLoop(requests, readErr)

	for raw := range requests {
		if err := s.dispatch(raw); err != nil {
			log.Errorf("request error: %v", err)
		}
	}

	if err := <-readErr; err != io.EOF {
		return err
	}
	log.Debug("client disconnected")
	return nil
}

// readLoop decodes requests off stdin as they arrive and forwards them
// to dispatch. "cancel" is handled inline here rather than queued,
// since the dispatcher below blocks for the duration of an active
// solve and would never see a queued cancel until it returned. A
// "solve" that arrives while another solve is running is answered
// "busy" here instead of being queued.
func (s *Server) readLoop(requests chan<- map[string]any, errc chan<- error) {
	defer close(requests)
	for {
		var raw map[string]any
		if err := s.decoder.Decode(&raw); err != nil {
			errc <- err
			return
		}

		op, _ := raw["op"].(string)
		if op == "cancel" {
			id, _ := raw["id"].(string)
			if err := s.handleCancel(id); err != nil {
				log.Errorf("cancel error: %v", err)
			}
			continue
		}
		if op == "solve" && s.solving.Load() {
			id, _ := raw["id"].(string)
			if err := s.sendResponse(&SolveResponse{ID: id, Status: "busy"}); err != nil {
				log.Errorf("busy response error: %v", err)
			}
			continue
		}
		requests <- raw
	}
}

func (s *Server) dispatch(raw map[string]any) error {
	s.requestCount++
	if s.requestCount%100 == 0 {
		s.reloadConfig()
	}

	op, _ := raw["op"].(string)
	id, _ := raw["id"].(string)

	switch op {
	case "enumerate":
		return s.handleEnumerate(id, raw)
	case "collect":
		return s.handleCollect(id, raw)
	case "solve":
		return s.handleSolve(id, raw)
	default:
		return s.sendResponse(&EnumerateResponse{ID: id, Error: fmt.Sprintf("unknown op: %q", op)})
	}
}

func (s *Server) handleEnumerate(id string, raw map[string]any) error {
	grid, occupied, blacklist, minLen, maxLen, err := s.parseGridRequest(raw)
	if err != nil {
		return s.sendResponse(&EnumerateResponse{ID: id, Error: err.Error()})
	}

	row, _ := asInt(raw["row"])
	col, _ := asInt(raw["col"])
	start := gridmodel.Cell{Row: row, Col: col}
	if !grid.InBounds(start) {
		return s.sendResponse(&EnumerateResponse{ID: id, Candidates: []CandidateWire{}})
	}

	results := enumerate.Enumerate(grid, s.dict, start, occupied, blacklist, minLen, maxLen)
	return s.sendResponse(&EnumerateResponse{ID: id, Candidates: toCandidateWires(results)})
}

func (s *Server) handleCollect(id string, raw map[string]any) error {
	grid, occupied, blacklist, minLen, maxLen, err := s.parseGridRequest(raw)
	if err != nil {
		return s.sendResponse(&CollectResponse{ID: id, Error: err.Error()})
	}
	results := enumerate.CollectOverGrid(grid, s.dict, occupied, blacklist, minLen, maxLen)
	return s.sendResponse(&CollectResponse{ID: id, Candidates: toCandidateWires(results)})
}

func (s *Server) handleSolve(id string, raw map[string]any) error {
	if !s.solving.CompareAndSwap(false, true) {
		return s.sendResponse(&SolveResponse{ID: id, Status: "busy"})
	}
	defer s.solving.Store(false)

	s.activeMu.Lock()
	s.activeID = id
	s.activeMu.Unlock()
	s.cancelFlag.Store(false)

	gridWire, _ := raw["grid"].([]any)
	grid, err := parseGridWireAny(gridWire)
	if err != nil {
		return s.sendResponse(&SolveResponse{ID: id, Error: err.Error()})
	}

	poolWire, err := decodeCandidateWires(raw["pool"])
	if err != nil {
		return s.sendResponse(&SolveResponse{ID: id, Error: err.Error()})
	}
	committedWire, err := decodeCandidateWires(raw["committed"])
	if err != nil {
		return s.sendResponse(&SolveResponse{ID: id, Error: err.Error()})
	}

	pool := fromCandidateWires(poolWire)
	committed := fromCandidateWires(committedWire)

	maxAttempts := s.cfg.Solver.MaxAttempts
	if v, ok := asInt(raw["max_attempts"]); ok && v > 0 {
		maxAttempts = v
	}
	if maxAttempts > s.cfg.Server.MaxAttemptsCap {
		maxAttempts = s.cfg.Server.MaxAttemptsCap
	}

	progress := func(attempts, placedCount int, coveragePercent float64) {
		s.sendResponse(&ProgressFrame{
			Type:            "progress",
			ID:              id,
			Attempts:        attempts,
			PlacedCount:     placedCount,
			CoveragePercent: coveragePercent,
		})
	}
	cancel := func() bool { return s.cancelFlag.Load() }

	result := tiling.Solve(pool, committed, grid, progress, cancel, maxAttempts)

	covered := 0
	occupied := gridmodel.NewOccupancyMask(grid.Size())
	for _, c := range result {
		occupied.SetPath(grid, c.Path)
	}
	covered = occupied.Count()
	coveragePercent := 100 * float64(covered) / float64(grid.Size())

	status := "partial"
	switch {
	case covered == grid.Size() && grid.Size() > 0:
		status = "success"
	case s.cancelFlag.Load():
		status = "cancelled"
	case len(result) == 0:
		status = "no_solution"
	}

	return s.sendResponse(&SolveResponse{
		ID:              id,
		Status:          status,
		Placement:       toCandidateWires(result),
		CoveragePercent: coveragePercent,
	})
}

func (s *Server) handleCancel(id string) error {
	s.activeMu.Lock()
	active := s.activeID
	s.activeMu.Unlock()
	if active == id && s.solving.Load() {
		s.cancelFlag.Store(true)
	}
	return s.sendResponse(&CancelResponse{ID: id, Status: "ok"})
}

// sendResponse encodes and writes a response atomically, mirroring the
// single writeMutex-guarded encode+flush discipline used across the pack.
func (s *Server) sendResponse(response any) error {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()

	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).Encode(response); err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}
