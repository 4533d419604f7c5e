// Package main is the entry point for the cutline timeline engine.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dshills/cutline/internal/config"
	"github.com/dshills/cutline/internal/engine"
	"github.com/dshills/cutline/internal/store"
	"github.com/dshills/cutline/internal/timeline"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	ConfigPath string
	ProjectDir string
	ProjectID  string
	LogLevel   string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	log := newLogger(opts.LogLevel)
	slog.SetDefault(log)

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fs, err := store.NewFileStore(opts.ProjectDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	doc, err := fs.Load(opts.ProjectID)
	switch {
	case err == nil:
		log.Info("opened project", "project", opts.ProjectID, "tracks", len(doc.Tracks))
	case errors.Is(err, store.ErrNotFound):
		doc = timeline.NewDocument(cfg.DefaultFPS)
		log.Info("created project", "project", opts.ProjectID, "fps", cfg.DefaultFPS)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	eng := engine.New(
		engine.WithDocument(doc),
		engine.WithMaxHistoryEntries(cfg.MaxUndoEntries),
	)

	watcher, err := store.WatchFile(fs.Path(opts.ProjectID), func() {
		log.Warn("project file changed on disk", "project", opts.ProjectID)
	})
	var projectStore store.Store = fs
	if err != nil {
		log.Warn("file watch unavailable", "error", err)
	} else {
		defer watcher.Close()
		// Route saves through the watcher mark so our own writes do
		// not trigger the external-change warning.
		projectStore = selfMarkingStore{Store: fs, watcher: watcher}
	}

	saver := store.NewAutosaver(projectStore, opts.ProjectID, cfg.AutosaveDebounce(), log)
	sub := eng.Subscribe(saver.HandleChange)
	defer eng.Unsubscribe(sub)
	defer saver.Close()

	printSummary(eng)

	// Persist the initial state so a fresh project exists on disk, then
	// wait for a signal. Edit operations arrive through the engine API;
	// this binary just hosts the project session.
	if err := projectStore.Save(opts.ProjectID, eng.Document()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals

	if err := saver.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// selfMarkingStore marks the watcher before every save so the process's
// own writes are not reported as external changes.
type selfMarkingStore struct {
	store.Store
	watcher *store.Watcher
}

func (s selfMarkingStore) Save(projectID string, doc *timeline.Document) error {
	s.watcher.MarkSelfWrite()
	return s.Store.Save(projectID, doc)
}

func printSummary(eng *engine.Engine) {
	doc := eng.Document()
	fmt.Printf("Project: %d fps, %d tracks, duration %s\n",
		doc.FPS, len(doc.Tracks), doc.Duration())
	for _, tr := range doc.Tracks {
		flags := ""
		if tr.Muted {
			flags += " [muted]"
		}
		if tr.Locked {
			flags += " [locked]"
		}
		fmt.Printf("  %s (%s)%s: %d elements\n", tr.Name, tr.Kind, flags, len(tr.Elements))
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", defaultConfigPath(), "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", defaultConfigPath(), "Path to configuration file (shorthand)")
	flag.StringVar(&opts.ProjectDir, "dir", "projects", "Project directory")
	flag.StringVar(&opts.ProjectID, "project", "untitled", "Project ID to open or create")
	flag.StringVar(&opts.ProjectID, "p", "untitled", "Project ID to open or create (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Cutline - multi-track timeline editing engine\n\n")
		fmt.Fprintf(os.Stderr, "Usage: cutline [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  cutline                     Open the default project\n")
		fmt.Fprintf(os.Stderr, "  cutline -p demo             Open or create project \"demo\"\n")
		fmt.Fprintf(os.Stderr, "  cutline -dir ~/edits -p cut Open a project in another directory\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Cutline %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "cutline.toml"
	}
	return filepath.Join(home, ".config", "cutline", "cutline.toml")
}
