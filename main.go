package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/llehouerou/netwaves/internal/app"
	"github.com/llehouerou/netwaves/internal/artwork"
	"github.com/llehouerou/netwaves/internal/config"
	"github.com/llehouerou/netwaves/internal/icons"
	"github.com/llehouerou/netwaves/internal/logging"
	"github.com/llehouerou/netwaves/internal/metadata"
	"github.com/llehouerou/netwaves/internal/mpris"
	"github.com/llehouerou/netwaves/internal/notify"
	"github.com/llehouerou/netwaves/internal/player"
	"github.com/llehouerou/netwaves/internal/state"
	"github.com/llehouerou/netwaves/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFile, err := logging.OpenFile(cfg.Log.File)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	logger, err := logging.NewLogger(logFile, cfg.Log.Level)
	if err != nil {
		return err
	}
	// The audio backend writes to fd 2, which would corrupt the screen.
	if restore, err := logging.CaptureStderr(logger); err != nil {
		logger.Warn("stderr capture unavailable", "err", err)
	} else {
		defer restore()
	}

	icons.Init(cfg.UI.Icons)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpClient := metadata.NewHTTPClient(cfg.API.BaseURL, cfg.Timeout(), cfg.API.RequestsPerSecond,
		logging.Component(logger, "metadata"))
	client := metadata.NewCache(httpClient, metadata.DefaultCacheTTL)

	store, err := state.Open(cfg.State.Path, logging.Component(logger, "state"))
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}
	defer store.Close()

	engine := player.New(httpClient.StreamURL, cfg.Timeout(), logging.Component(logger, "player"))

	core := app.New(ctx, app.Options{
		Engine:       engine,
		Client:       client,
		Store:        store,
		Notifier:     notifier(cfg, logger),
		Covers:       notify.NewCoverCache(""),
		Logger:       logger,
		Mode:         cfg.PlaybackMode(),
		Workers:      cfg.Network.Workers,
		RequestTTL:   cfg.RequestTTL(),
		FetchTimeout: cfg.Timeout(),
		FetchRate:    cfg.API.RequestsPerSecond,
	})

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	coreErr := make(chan error, 1)
	go func() { coreErr <- core.Run(runCtx) }()

	if adapter, err := mpris.New(core, logging.Component(logger, "mpris")); err != nil {
		logger.Warn("media keys unavailable", "err", err)
	} else {
		defer adapter.Close()
	}

	p := tea.NewProgram(
		tui.New(core, tui.Options{Images: artwork.KittySupported()}),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, uiErr := p.Run()

	cancel()
	if err := <-coreErr; err != nil {
		logger.Error("core stopped with error", "err", err)
	}
	<-core.Done()

	if uiErr != nil && ctx.Err() == nil {
		return fmt.Errorf("run ui: %w", uiErr)
	}
	logger.Info("bye")
	return nil
}

func notifier(cfg *config.Config, logger *log.Logger) notify.Notifier {
	if !cfg.NotificationsEnabled() {
		return notify.Disabled()
	}
	n, err := notify.New()
	if err != nil {
		logger.Warn("desktop notifications unavailable", "err", err)
		return notify.Disabled()
	}
	return n
}
