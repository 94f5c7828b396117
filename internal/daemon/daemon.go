// Package daemon runs the HTTP server as a long-lived process: signal
// handling, graceful shutdown, and an optional system tray icon on
// Windows.
package daemon

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/username/reformcal/internal/server"
)

// Daemon owns the server lifecycle.
type Daemon struct {
	srv             *server.Server
	shutdownTimeout time.Duration
	systemTray      bool
	logger          *zap.Logger
	ctx             context.Context
	cancel          context.CancelFunc
	trayApp         *TrayApp
}

// New creates a daemon around the given server.
func New(srv *server.Server, shutdownTimeout time.Duration, systemTray bool, logger *zap.Logger) *Daemon {
	ctx, cancel := context.WithCancel(context.Background())

	return &Daemon{
		srv:             srv,
		shutdownTimeout: shutdownTimeout,
		systemTray:      systemTray,
		logger:          logger,
		ctx:             ctx,
		cancel:          cancel,
	}
}

// Start runs the server until a signal or Stop. With the system tray
// enabled the tray loop owns the process; otherwise the daemon blocks
// in console mode.
func (d *Daemon) Start() error {
	if d.systemTray {
		d.logger.Info("Initializing system tray")
		trayApp, err := NewTrayApp(d, d.logger)
		if err != nil {
			d.logger.Warn("Failed to initialize system tray", zap.Error(err))
			return d.run()
		}
		d.trayApp = trayApp
		// Run tray (blocks until Quit)
		d.trayApp.Run()
		return nil
	}
	return d.run()
}

// run serves until the context is cancelled or a signal arrives.
func (d *Daemon) run() error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- d.srv.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err

	case sig := <-sigChan:
		d.logger.Info("Received signal, shutting down",
			zap.String("signal", sig.String()))

	case <-d.ctx.Done():
		d.logger.Info("Daemon stopped")
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.shutdownTimeout)
	defer cancel()
	if err := d.srv.Shutdown(ctx); err != nil {
		return err
	}
	return <-errCh
}

// Stop cancels the daemon.
func (d *Daemon) Stop() {
	d.cancel()
}

// Addr returns the server's listen address, for the tray tooltip.
func (d *Daemon) Addr() string {
	return d.srv.Addr()
}
