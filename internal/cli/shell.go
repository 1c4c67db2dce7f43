// Package cli provides an interactive terminal shell for manually
// driving enumeration and solving against a loaded grid, for debugging
// and exploration outside of the msgpack server.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bastiangx/strandsolve/internal/logger"
	"github.com/bastiangx/strandsolve/internal/utils"
	"github.com/bastiangx/strandsolve/pkg/config"
	"github.com/bastiangx/strandsolve/pkg/enumerate"
	"github.com/bastiangx/strandsolve/pkg/griddict"
	"github.com/bastiangx/strandsolve/pkg/gridmodel"
	"github.com/bastiangx/strandsolve/pkg/tiling"
	"github.com/charmbracelet/lipgloss"
)

var log = logger.Default("cli")

var (
	wordStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
	barFull    = lipgloss.NewStyle().Background(lipgloss.Color("76"))
	barEmpty   = lipgloss.NewStyle().Background(lipgloss.Color("238"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// Shell drives manual enumerate/solve/blacklist commands against a
// single in-process grid and dictionary.
type Shell struct {
	grid       *gridmodel.Grid
	dict       *griddict.Dictionary
	blacklist  *griddict.Blacklist
	cfg        *config.Config
	configPath string

	occupied     gridmodel.OccupancyMask
	committed    []enumerate.Candidate
	requestCount int
}

// NewShell builds a shell over an already-loaded grid and dictionary.
func NewShell(grid *gridmodel.Grid, dict *griddict.Dictionary, cfg *config.Config, configPath string) *Shell {
	return &Shell{
		grid:       grid,
		dict:       dict,
		blacklist:  griddict.NewBlacklist(),
		cfg:        cfg,
		configPath: configPath,
		occupied:   gridmodel.NewOccupancyMask(grid.Size()),
	}
}

// Start begins the read-eval-print loop. It returns nil on EOF (Ctrl+D)
// and any scanner error otherwise.
func (sh *Shell) Start() error {
	log.Print("strandsolve CLI [debug]")
	log.Print("commands: enumerate ROW COL | solve | blacklist WORD | reset | config | quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sh.handleLine(line)
	}
}

func (sh *Shell) handleLine(line string) {
	sh.requestCount++
	if sh.requestCount%50 == 0 {
		if newCfg, err := config.LoadConfig(sh.configPath); err == nil {
			sh.cfg = newCfg
		}
	}

	fields := strings.Fields(line)
	switch fields[0] {
	case "enumerate":
		sh.handleEnumerate(fields[1:])
	case "solve":
		sh.handleSolve()
	case "blacklist":
		sh.handleBlacklist(fields[1:])
	case "reset":
		sh.occupied = gridmodel.NewOccupancyMask(sh.grid.Size())
		sh.committed = nil
		log.Print("occupancy and committed placement cleared")
	case "config":
		sh.handleConfig()
	case "quit", "exit":
		os.Exit(0)
	default:
		fmt.Println(errorStyle.Render(fmt.Sprintf("unknown command: %s", fields[0])))
	}
}

func (sh *Shell) handleEnumerate(args []string) {
	if len(args) != 2 {
		fmt.Println(errorStyle.Render("usage: enumerate ROW COL"))
		return
	}
	row, err1 := strconv.Atoi(args[0])
	col, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		fmt.Println(errorStyle.Render("row/col must be integers"))
		return
	}
	start := gridmodel.Cell{Row: row, Col: col}
	if !sh.grid.InBounds(start) {
		fmt.Println(errorStyle.Render("cell out of bounds"))
		return
	}

	results := enumerate.Enumerate(sh.grid, sh.dict, start, sh.occupied, sh.blacklist,
		sh.cfg.CLI.DefaultMinLen, sh.cfg.CLI.DefaultMaxLen)
	if len(results) == 0 {
		log.Warnf("no candidates from (%d,%d)", row, col)
		return
	}
	log.Printf("found %d candidates from (%d,%d):", len(results), row, col)
	for i, c := range results {
		fmt.Printf("%2d. %-20s %s\n", i+1, wordStyle.Render(c.Word), pathString(c.Path))
	}
}

func (sh *Shell) handleSolve() {
	pool := enumerate.CollectOverGrid(sh.grid, sh.dict, sh.occupied, sh.blacklist,
		sh.cfg.Solver.MinLen, sh.cfg.Solver.MaxLen)

	progress := func(attempts, placedCount int, coveragePercent float64) {
		log.Debugf("attempt %s: %d words placed, %s", utils.FormatWithCommas(attempts), placedCount, coverageBar(coveragePercent))
	}
	cancel := func() bool { return false }

	result := tiling.Solve(pool, sh.committed, sh.grid, progress, cancel, sh.cfg.Solver.MaxAttempts)

	occupied := gridmodel.NewOccupancyMask(sh.grid.Size())
	for _, c := range result {
		occupied.SetPath(sh.grid, c.Path)
	}
	coveragePercent := 100 * float64(occupied.Count()) / float64(sh.grid.Size())

	log.Printf("solve finished: %d words placed, %s", len(result), coverageBar(coveragePercent))
	for i, c := range result {
		fmt.Printf("%2d. %-20s %s\n", i+1, wordStyle.Render(c.Word), pathString(c.Path))
	}
}

func (sh *Shell) handleBlacklist(args []string) {
	if len(args) != 1 {
		fmt.Println(errorStyle.Render("usage: blacklist WORD"))
		return
	}
	sh.blacklist.Add(args[0])
	log.Printf("blacklisted %q", strings.ToUpper(args[0]))
}

// handleConfig prints the raw solver/server/cli sections from the config
// file on disk, or an error if the file cannot be read or decoded.
func (sh *Shell) handleConfig() {
	data, err := utils.ParseTOMLWithRecovery(sh.configPath)
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("could not read config: %v", err)))
		return
	}
	for _, section := range []string{"solver", "server", "cli"} {
		fields, ok := utils.ExtractSection(data, section)
		if !ok {
			continue
		}
		fmt.Printf("[%s]\n", section)
		for key, val := range fields {
			if n, ok := utils.ExtractInt64(fields, key); ok {
				fmt.Printf("  %s = %d\n", key, n)
				continue
			}
			fmt.Printf("  %s = %v\n", key, val)
		}
	}
}

func pathString(path gridmodel.Path) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return strings.Join(parts, "->")
}

// coverageBar renders a 20-cell lipgloss bar proportional to percent.
func coverageBar(percent float64) string {
	const width = 20
	filled := int(percent / 100 * width)
	if filled > width {
		filled = width
	}
	var b strings.Builder
	for i := 0; i < width; i++ {
		if i < filled {
			b.WriteString(barFull.Render(" "))
		} else {
			b.WriteString(barEmpty.Render(" "))
		}
	}
	return fmt.Sprintf("%s %.1f%%", b.String(), percent)
}
