package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"burnwatch/internal/core/monitor"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowWatch func()
	OnProfile   func()
	OnToggle    func()
	OnDismiss   func()
	OnQuit      func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	toggleItem  *fyne.MenuItem
	dismissItem *fyne.MenuItem
	callbacks   Callbacks
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: stopped", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem("Start monitoring", func() {
		call(manager.callbacks.OnToggle)
	})

	manager.dismissItem = fyne.NewMenuItem("Dismiss warning", func() {
		call(manager.callbacks.OnDismiss)
	})
	manager.dismissItem.Disabled = true

	manager.refreshMenu()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

// SetState updates the menu items that depend on the monitor state.
func (manager *Manager) SetState(state monitor.State) {
	if state == monitor.StateStopped {
		manager.toggleItem.Label = "Start monitoring"
	} else {
		manager.toggleItem.Label = "Stop monitoring"
	}
	manager.dismissItem.Disabled = state != monitor.StateWarning
	manager.refreshMenu()
}

// StatusLine renders a short tray label for status.
func StatusLine(status monitor.Status) string {
	switch status.State {
	case monitor.StateRunning:
		return fmt.Sprintf("%.1f / %.1f kJ", status.CumulativeKJ, status.ThresholdKJ)
	case monitor.StateWarning:
		return fmt.Sprintf("budget reached (%.1f kJ)", status.CumulativeKJ)
	default:
		return "stopped"
	}
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("BurnWatch",
		manager.statusItem,
		fyne.NewMenuItem("Show watch", func() {
			call(manager.callbacks.OnShowWatch)
		}),
		fyne.NewMenuItem("Profile", func() {
			call(manager.callbacks.OnProfile)
		}),
		manager.toggleItem,
		manager.dismissItem,
		fyne.NewMenuItem("Quit", func() {
			call(manager.callbacks.OnQuit)
		}),
	))
}

func call(callback func()) {
	if callback != nil {
		callback()
	}
}
