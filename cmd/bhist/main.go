package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/vidyasagar/bhist/internal/app"
	"github.com/vidyasagar/bhist/internal/logger"
	"github.com/vidyasagar/bhist/internal/menu"
	"github.com/vidyasagar/bhist/internal/session"
	"github.com/vidyasagar/bhist/internal/storage"
	"github.com/vidyasagar/bhist/internal/theme"
)

var (
	version = "0.1.0"
)

func main() {
	var (
		configPath  string
		themeName   string
		plain       bool
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "", "config file (default: config.yaml in the user config dir)")
	flag.StringVar(&themeName, "theme", "", "color theme ("+strings.Join(theme.List(), ", ")+")")
	flag.BoolVar(&plain, "plain", false, "use the numbered line menu even on a terminal")
	flag.BoolVar(&showVersion, "version", false, "show version")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "bhist - a browser history manager\n\n")
		fmt.Fprintf(os.Stderr, "Usage: bhist [flags] [url]\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  bhist                     # interactive session\n")
		fmt.Fprintf(os.Stderr, "  bhist example.com         # start on a page\n")
		fmt.Fprintf(os.Stderr, "  bhist -plain < cmds.txt   # scripted line menu\n")
		fmt.Fprintf(os.Stderr, "  bhist -theme nord         # use the nord theme\n")
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("bhist %s\n", version)
		os.Exit(0)
	}

	cfg, err := storage.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		def := storage.DefaultConfig()
		cfg = &def
	}

	if themeName == "" {
		themeName = cfg.Theme
	}
	if !theme.Set(themeName) {
		fmt.Fprintf(os.Stderr, "Unknown theme: %s\nAvailable: %s\n", themeName, strings.Join(theme.List(), ", "))
		os.Exit(1)
	}

	rootLog, err := logger.New(logConfig(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (logging to stderr)\n", err)
	}
	log := rootLog.With("session_id", uuid.NewString())

	sess := session.New(
		session.WithClock(session.SystemClock{Layout: cfg.TimestampLayout}),
		session.WithLogger(log),
	)

	var startURL string
	if flag.NArg() > 0 {
		startURL = flag.Arg(0)
	}

	if plain || !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Info("session started", "driver", "menu")
		if startURL != "" {
			sess.Visit(startURL)
		}
		err := menu.New(sess, os.Stdin, os.Stdout, cfg.ExportFile, log).Run()
		rootLog.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	log.Info("session started", "driver", "tui")

	var watcher *storage.ConfigWatcher
	if cfg.Path() != "" {
		watcher, err = storage.WatchConfig(cfg.Path())
		if err != nil {
			log.Warn("config hot reload disabled", "error", err)
		}
	}

	m := app.New(sess, app.Options{
		StartURL: startURL,
		Config:   cfg,
		Logger:   log,
		Watcher:  watcher,
	})
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	if watcher != nil {
		watcher.Close()
	}
	if err != nil {
		log.Error("tui exited", "error", err)
	}
	rootLog.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// logConfig defaults the log output to a file in the data dir, since both
// drivers own stdout.
func logConfig(cfg *storage.Config) logger.Config {
	lc := logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}
	if lc.Output == "" {
		if dir, err := storage.DataDir(); err == nil {
			lc.Output = filepath.Join(dir, "bhist.log")
		}
	}
	return lc
}
