package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/firsthome/firsthome/internal/client"
	"github.com/firsthome/firsthome/internal/localstore"
	"github.com/firsthome/firsthome/internal/tui"
)

type config struct {
	APIURL   string     `env:"API_URL" envDefault:"http://localhost:8080"`
	DataDir  string     `env:"DATA_DIR"`
	LogFile  string     `env:"LOG_FILE"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := env.ParseAs[config]()
	if err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}

	// Logs go to a file when asked for; stdout belongs to the TUI.
	var logOut io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	dir := cfg.DataDir
	if dir == "" {
		dir, err = localstore.DefaultDir()
		if err != nil {
			return fmt.Errorf("resolving data directory: %w", err)
		}
	}
	store := localstore.New(dir, logger)
	api := client.New(cfg.APIURL, logger)

	p := tea.NewProgram(tui.New(store, api, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tracker: %w", err)
	}
	return nil
}
