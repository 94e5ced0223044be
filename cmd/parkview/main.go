package main

import (
	"flag"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"parkview/internal/api"
	"parkview/internal/config"
	"parkview/internal/db"
	"parkview/internal/models"
	"parkview/internal/ui"
)

const version = "1.0.0"

// Read-history entries older than this are pruned at startup.
const historyRetention = 90 * 24 * time.Hour

func main() {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()

	// Parse command line flags
	configFlag := flag.String("config", "", "Path to config file (default ~/.config/parkview/config.toml)")
	boardFlag := flag.String("board", "", "Board to open at startup (by name)")
	pickFlag := flag.Bool("pick", false, "Choose the startup board interactively")
	dumpFlag := flag.Bool("dump", false, "Print the board listing to stdout and exit")
	refreshFlag := flag.Int("refresh", 0, "Refresh interval in seconds (0 = use config)")
	dbFlag := flag.String("db", "", "Path to the read-history database")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	// Also accept the board as a positional argument
	if *boardFlag == "" && flag.NArg() > 0 {
		*boardFlag = flag.Arg(0)
	}

	if *versionFlag {
		fmt.Printf("parkview %s\n", version)
		return
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		ui.PrintError(fmt.Sprintf("Failed to load config: %v", err))
		os.Exit(1)
	}
	if *refreshFlag > 0 {
		cfg.RefreshInterval = time.Duration(*refreshFlag) * time.Second
	}

	logger := api.NewFileLogger(cfg.DataDir)

	client := api.NewClient(cfg.BaseURL, logger)
	if cfg.UserAgent != "" {
		client.SetUserAgent(cfg.UserAgent)
	}

	// Dump mode: fetch once, print the listing, exit
	if *dumpFlag {
		board := resolveBoard(cfg.Boards, *boardFlag, 0)
		rows, skipped, err := ui.FetchRowsWithSpinner(client, cfg.Boards[board])
		if err != nil {
			ui.PrintError(fmt.Sprintf("Failed to fetch %s: %v", cfg.Boards[board].Name, err))
			os.Exit(1)
		}
		ui.PrintRowTable(cfg.Boards[board], rows, skipped)
		return
	}

	dbPath := cfg.DBPath()
	if *dbFlag != "" {
		dbPath = *dbFlag
	}

	// The reader works without history; start degraded rather than exit
	store, err := db.Open(dbPath)
	if err != nil {
		ui.PrintError(fmt.Sprintf("Read history unavailable: %v", err))
		store = nil
	}
	if store != nil {
		defer store.Close()
		if _, err := store.PruneSeenBefore(time.Now().Add(-historyRetention)); err != nil && logger != nil {
			logger.Error("prune read history", "error", err)
		}
	}

	startBoard := startupBoard(cfg.Boards, *boardFlag, store)

	if *pickFlag {
		picked, err := ui.RunBoardPicker(cfg.Boards, startBoard)
		if err != nil {
			ui.PrintError(fmt.Sprintf("Board selection failed: %v", err))
			os.Exit(1)
		}
		startBoard = picked
	}

	// Show splash screen before entering the reader
	ui.ShowSplash()

	lastBoard, err := ui.RunReader(client, store, logger, cfg.Boards, startBoard, cfg.RefreshInterval)
	if err != nil {
		ui.PrintError(fmt.Sprintf("Reader failed: %v", err))
		os.Exit(1)
	}

	// Remember where the session ended for the next launch
	if store != nil && lastBoard >= 0 && lastBoard < len(cfg.Boards) {
		if err := store.SetLastBoard(cfg.Boards[lastBoard].Path); err != nil && logger != nil {
			logger.Error("save last board", "error", err)
		}
	}
}

// startupBoard picks the board to open first: the -board flag wins, then the
// previous session's board, then the first registry entry.
func startupBoard(boards []models.Board, name string, store *db.Store) int {
	if name != "" {
		return resolveBoard(boards, name, 0)
	}
	if store != nil {
		if last, err := store.LastBoard(); err == nil && last != "" {
			for i, b := range boards {
				if b.Path == last {
					return i
				}
			}
		}
	}
	return 0
}

// resolveBoard finds a board by name, path, or path slug, falling back when
// unknown.
func resolveBoard(boards []models.Board, name string, fallback int) int {
	if name == "" {
		return fallback
	}
	for i, b := range boards {
		if strings.EqualFold(b.Name, name) || b.Path == name || strings.EqualFold(path.Base(b.Path), name) {
			return i
		}
	}
	ui.PrintError(fmt.Sprintf("Unknown board %q; using %s", name, boards[fallback].Name))
	return fallback
}
