//go:build windows
// +build windows

package daemon

import (
	"fmt"

	"fyne.io/systray"
	"go.uber.org/zap"
)

// TrayApp represents the system tray application
type TrayApp struct {
	daemon *Daemon
	logger *zap.Logger
	quit   chan struct{}
}

// NewTrayApp creates a new system tray application
func NewTrayApp(daemon *Daemon, logger *zap.Logger) (*TrayApp, error) {
	return &TrayApp{
		daemon: daemon,
		logger: logger,
		quit:   make(chan struct{}),
	}, nil
}

// Run starts the system tray application (blocks until Quit)
func (t *TrayApp) Run() {
	systray.Run(t.onReady, t.onExit)
}

func (t *TrayApp) onReady() {
	systray.SetTitle("reformcal")
	systray.SetTooltip(fmt.Sprintf("Calendar API on %s", t.daemon.Addr()))

	mQuit := systray.AddMenuItem("Quit", "Stop the calendar server")

	// Serve in the background; the tray loop owns the process.
	go func() {
		if err := t.daemon.run(); err != nil {
			t.logger.Error("Server stopped", zap.Error(err))
		}
		systray.Quit()
	}()

	go func() {
		for {
			select {
			case <-mQuit.ClickedCh:
				t.logger.Info("Quit clicked from tray")
				t.daemon.Stop()
				systray.Quit()
				return
			case <-t.quit:
				systray.Quit()
				return
			}
		}
	}()
}

func (t *TrayApp) onExit() {
	t.logger.Info("System tray exited")
}

// Stop stops the system tray application
func (t *TrayApp) Stop() {
	close(t.quit)
}
