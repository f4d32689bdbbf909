package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"restwatch/internal/core/reminders"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnPreferences    func()
	OnToggleAlerts   func()
	OnResetCountdown func()
	OnDismissOverlay func()
	OnQuit           func()
}

// Manager handles system tray state.
type Manager struct {
	app           desktop.App
	eyeItem       *fyne.MenuItem
	bedtimeItem   *fyne.MenuItem
	clockOutItem  *fyne.MenuItem
	miniItem      *fyne.MenuItem
	alertsItem    *fyne.MenuItem
	dismissItem   *fyne.MenuItem
	callbacks     Callbacks
	alertsEnabled bool
	countdowns    reminders.Countdowns
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:           app,
		callbacks:     callbacks,
		alertsEnabled: true,
	}

	manager.eyeItem = fyne.NewMenuItem("Eye strain: off", nil)
	manager.eyeItem.Disabled = true
	manager.bedtimeItem = fyne.NewMenuItem("Bedtime: off", nil)
	manager.bedtimeItem.Disabled = true
	manager.clockOutItem = fyne.NewMenuItem("Clock out: off", nil)
	manager.clockOutItem.Disabled = true
	manager.miniItem = fyne.NewMenuItem("Mini overlay: off", nil)
	manager.miniItem.Disabled = true

	manager.alertsItem = fyne.NewMenuItem("Disable alerts", func() {
		if manager.callbacks.OnToggleAlerts != nil {
			manager.callbacks.OnToggleAlerts()
		}
	})

	manager.dismissItem = fyne.NewMenuItem("Dismiss overlay", func() {
		if manager.callbacks.OnDismissOverlay != nil {
			manager.callbacks.OnDismissOverlay()
		}
	})
	manager.dismissItem.Disabled = true

	manager.refreshMenu()
	return manager
}

// SetCountdowns updates the per-reminder status lines.
func (manager *Manager) SetCountdowns(countdowns reminders.Countdowns) {
	manager.countdowns = countdowns
	manager.eyeItem.Label = statusLine("Eye strain", countdowns.EyeStrain)
	manager.bedtimeItem.Label = statusLine("Bedtime", countdowns.Bedtime)
	manager.clockOutItem.Label = statusLine("Clock out", countdowns.ClockOut)
	manager.miniItem.Label = statusLine("Mini overlay", countdowns.MiniOverlay)
	manager.refreshMenu()
}

// SetAlertsEnabled updates the alerts toggle label.
func (manager *Manager) SetAlertsEnabled(enabled bool) {
	manager.alertsEnabled = enabled
	if enabled {
		manager.alertsItem.Label = "Disable alerts"
	} else {
		manager.alertsItem.Label = "Enable alerts"
	}
	manager.refreshMenu()
}

// SetOverlayActive toggles the dismiss menu item.
func (manager *Manager) SetOverlayActive(active bool) {
	manager.dismissItem.Disabled = !active
	manager.refreshMenu()
}

func statusLine(name, countdown string) string {
	if countdown == "" {
		return fmt.Sprintf("%s: off", name)
	}
	return fmt.Sprintf("%s: %s", name, countdown)
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("RestWatch",
		manager.eyeItem,
		manager.bedtimeItem,
		manager.clockOutItem,
		manager.miniItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		manager.alertsItem,
		fyne.NewMenuItem("Reset countdowns", func() {
			if manager.callbacks.OnResetCountdown != nil {
				manager.callbacks.OnResetCountdown()
			}
		}),
		manager.dismissItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
