/*
Package main implements the strandsolve server and commandline interface.

strandsolve tiles an NYT-Strands-style letter grid with dictionary words
using a prefix-trie-pruned depth-first enumerator and a priority-ordered
backtracking solver. It can operate as a MessagePack IPC server for
editor/client integrations, or as an interactive CLI shell for manual
exploration and debugging.

# Server Mode

The server reads a word list and a grid file at startup, then answers
enumerate/collect/solve requests over stdin/stdout MessagePack frames.

# CLI Mode

The CLI provides an interactive shell (`enumerate ROW COL`, `solve`,
`blacklist WORD`) against the same loaded grid and dictionary.

# Data Files

`-dict` names a newline-delimited word list (one word per line, case and
punctuation tolerated — normalization happens on load). `-grid` names a
text file of equal-length letter rows, one row per line.

# Config

Runtime configuration is managed via a `config.toml` file, which supports
settings for the solver, server, and CLI. A default configuration is
created automatically if one does not exist.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bastiangx/strandsolve/internal/cli"
	"github.com/bastiangx/strandsolve/internal/utils"
	"github.com/bastiangx/strandsolve/pkg/config"
	"github.com/bastiangx/strandsolve/pkg/griddict"
	"github.com/bastiangx/strandsolve/pkg/gridmodel"
	"github.com/bastiangx/strandsolve/pkg/puzzleserver"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0-beta"
	AppName = "strandsolve"
	gh      = "https://github.com/bastiangx/strandsolve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configFile := flag.String("config", "", "Path to custom config.toml file")
	dictFile := flag.String("dict", "", "Path to a newline-delimited word list")
	gridFile := flag.String("grid", "", "Path to a grid file (equal-length letter rows)")
	debugMode := flag.Bool("v", false, "Toggle verbose mode")
	serverMode := flag.Bool("server", false, "Run the msgpack IPC server")
	cliMode := flag.Bool("cli", false, "Run the interactive debugging shell")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	resolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("failed to resolve paths: %v", err)
	}

	configPath := *configFile
	if configPath == "" {
		configPath, err = resolver.GetConfigPath("config.toml")
		if err != nil {
			log.Fatalf("failed to resolve config path: %v", err)
		}
	}
	appConfig, err := config.InitConfig(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	log.Debugf("using config file: %s", configPath)

	dict := loadDictionary(resolver, *dictFile)
	grid := loadGrid(resolver, *gridFile)

	if *cliMode {
		log.SetReportTimestamp(false)
		shell := cli.NewShell(grid, dict, appConfig, configPath)
		if err := shell.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	if *serverMode {
		srv := puzzleserver.NewServer(dict, appConfig, configPath)
		showStartupInfo(grid, dict)
		if err := srv.Start(); err != nil {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	fmt.Println("specify -server or -cli; see -help")
	os.Exit(1)
}

// loadDictionary reads a newline-delimited word list. A missing or empty
// path yields an empty dictionary rather than failing, matching §4.1's
// "construction accepts empty input" contract.
func loadDictionary(resolver *utils.PathResolver, path string) *griddict.Dictionary {
	if path == "" {
		log.Warn("no -dict specified, starting with an empty dictionary")
		return griddict.Build(nil)
	}
	resolved, err := resolver.ResolveInputPath(path)
	if err != nil {
		log.Warnf("could not locate dictionary file %s: %v, starting empty", path, err)
		return griddict.Build(nil)
	}
	file, err := os.Open(resolved)
	if err != nil {
		log.Warnf("failed to open dictionary file %s: %v, starting empty", resolved, err)
		return griddict.Build(nil)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	dict := griddict.Build(lines)
	log.Debugf("loaded dictionary: %d words from %s", dict.Len(), path)
	return dict
}

// loadGrid reads a text grid of equal-length letter rows. An empty path
// (no -grid flag) falls back to a single placeholder cell, since cmd/ must
// always hold a constructible *gridmodel.Grid to start the server/CLI; a
// grid file that cannot be found, opened or parsed is fatal.
func loadGrid(resolver *utils.PathResolver, path string) *gridmodel.Grid {
	if path == "" {
		log.Warn("no -grid specified, starting with a 1x1 placeholder grid")
		grid, err := gridmodel.NewGrid([][]byte{{'A'}})
		if err != nil {
			log.Fatalf("failed to build placeholder grid: %v", err)
		}
		return grid
	}
	resolved, err := resolver.ResolveInputPath(path)
	if err != nil {
		log.Fatalf("could not locate grid file %s: %v", path, err)
	}
	file, err := os.Open(resolved)
	if err != nil {
		log.Fatalf("failed to open grid file %s: %v", resolved, err)
	}
	defer file.Close()

	var rows [][]byte
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rows = append(rows, []byte(strings.ToUpper(line)))
	}
	grid, err := gridmodel.NewGrid(rows)
	if err != nil {
		log.Fatalf("invalid grid in %s: %v", path, err)
	}
	return grid
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[strandsolve] tiles letter grids with dictionary words")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use --help to see available options")
	logger.Print("")
	logger.Print("Find out more at", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(grid *gridmodel.Grid, dict *griddict.Dictionary) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===============")
	println(" strandsolve ")
	println("===============")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("grid: %dx%d", grid.Rows(), grid.Cols())
	log.Infof("dictionary: %d words", dict.Len())
	log.Info("status: ready")
	println("===============")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
