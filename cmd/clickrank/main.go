package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mmcdole/clickrank/internal/config"
	"github.com/mmcdole/clickrank/internal/domain"
	"github.com/mmcdole/clickrank/internal/log"
	"github.com/mmcdole/clickrank/internal/service"
	"github.com/mmcdole/clickrank/internal/store"
	"github.com/mmcdole/clickrank/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

type options struct {
	status  bool
	clicks  int
	reset   bool
	rank    string
	memory  bool
	initCfg bool
}

// errNegativeClicks is returned for -click values below zero
var errNegativeClicks = errors.New("-click must not be negative")

func main() {
	var showVersion bool
	var opts options
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&opts.status, "status", false, "print current progress and exit")
	flag.IntVar(&opts.clicks, "click", 0, "click `n` times without the UI")
	flag.BoolVar(&opts.reset, "reset", false, "clear saved progress")
	flag.StringVar(&opts.rank, "rank", "", "show how far away the rank matching `name` is")
	flag.BoolVar(&opts.memory, "memory", false, "do not persist progress")
	flag.BoolVar(&opts.initCfg, "init-config", false, "write the default config file and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("clickrank %s\n", Version)
		return
	}

	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, errNegativeClicks) {
			flag.Usage()
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(opts options, out io.Writer) error {
	if opts.clicks < 0 {
		return fmt.Errorf("%w: got %d", errNegativeClicks, opts.clicks)
	}
	if opts.initCfg {
		return initConfig(out)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, logFile, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	} else {
		defer logFile.Close()
	}
	slog.SetDefault(logger)

	logger.Info("starting clickrank", "version", Version)

	ladder, err := cfg.Ladder()
	if err != nil {
		return fmt.Errorf("failed to build rank ladder: %w", err)
	}

	storePath := cfg.Storage.Path
	if opts.memory {
		storePath = ""
	}
	kv, err := store.Open(storePath)
	if err != nil {
		return fmt.Errorf("failed to open progress store: %w", err)
	}
	defer kv.Close()

	tracker := service.NewProgressService(kv, ladder, logger)

	switch {
	case opts.reset:
		if err := tracker.Reset(); err != nil {
			return fmt.Errorf("failed to reset progress: %w", err)
		}
		fmt.Fprintln(out, "Progress cleared.")
		return nil

	case opts.rank != "":
		return printRankDistance(out, tracker, opts.rank)

	case opts.clicks > 0:
		for i := 0; i < opts.clicks; i++ {
			if _, err := tracker.Increment(); err != nil {
				return fmt.Errorf("failed to save progress: %w", err)
			}
		}
		printStatus(out, tracker.Snapshot())
		return nil

	case opts.status || !term.IsTerminal(int(os.Stdout.Fd())):
		printStatus(out, tracker.Snapshot())
		return nil
	}

	model := tui.NewModel(tracker, tui.Options{
		AnimationDelay: time.Duration(cfg.UI.AnimationMs) * time.Millisecond,
		ShowRobot:      cfg.UI.ShowRobot,
		ShowProgress:   cfg.UI.ShowProgress,
		BarWidth:       cfg.UI.BarWidth,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	logger.Info("starting TUI", "clicks", tracker.Clicks())

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down", "clicks", tracker.Clicks())
	return nil
}

// initConfig writes the default configuration unless a config file exists
func initConfig(out io.Writer) error {
	path := config.ConfigFile()
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(out, "Config already exists at %s\n", path)
		return nil
	}

	if err := config.SaveConfig(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}

// printStatus writes the headless view of a snapshot
func printStatus(out io.Writer, s domain.Snapshot) {
	fmt.Fprintf(out, "Clicks:   %d\n", s.Clicks)
	fmt.Fprintf(out, "Rank:     %s\n", s.Rank.Name)
	fmt.Fprintf(out, "Progress: %.1f%%\n", s.Progress)
	if s.Next != nil {
		fmt.Fprintf(out, "Next:     %s in %d clicks\n", s.Next.Name, s.Remaining)
	}
}

// printRankDistance reports how many clicks separate the player from a rank
func printRankDistance(out io.Writer, tracker *service.ProgressService, query string) error {
	rank, err := service.FindRank(tracker.Ladder(), query)
	if err != nil {
		return err
	}

	clicks := tracker.Clicks()
	if clicks >= rank.Threshold {
		fmt.Fprintf(out, "%s (%d) already reached.\n", rank.Name, rank.Threshold)
		return nil
	}
	fmt.Fprintf(out, "%s (%d): %d clicks to go.\n", rank.Name, rank.Threshold, rank.Threshold-clicks)
	return nil
}
