package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/llehouerou/aria/internal/app"
	"github.com/llehouerou/aria/internal/config"
	"github.com/llehouerou/aria/internal/errmsg"
	"github.com/llehouerou/aria/internal/library"
	"github.com/llehouerou/aria/internal/playback"
	"github.com/llehouerou/aria/internal/player"
	"github.com/llehouerou/aria/internal/settings"
	"github.com/llehouerou/aria/internal/stderr"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
}

func run() error {
	closeLog := setupLogging()
	defer closeLog()

	// ALSA writes warnings straight to fd 2, which would tear the TUI.
	if err := stderr.Start(); err != nil {
		log.Warn("stderr capture unavailable", "err", err)
	}
	defer stderr.Stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := settings.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	p := player.New()
	lib := library.New(store, cfg.RecentLimit())
	session := playback.New(p, lib, store, store.Volume(), store.RepeatMode())

	program := tea.NewProgram(app.New(lib, session, cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	p.Stop()
	return nil
}

// setupLogging sends the default logger to a state file. Stdout belongs
// to the TUI, so logs would corrupt the screen.
func setupLogging() func() {
	logPath, err := xdg.StateFile(filepath.Join("aria", "aria.log"))
	if err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}
	log.SetOutput(f)
	log.SetReportTimestamp(true)
	return func() { f.Close() }
}
