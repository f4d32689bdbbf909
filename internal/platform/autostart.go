package platform

import (
	"fmt"
	"os"

	"github.com/emersion/go-autostart"
)

// Autostart manages the launch-at-login registration for the app.
type Autostart struct {
	app *autostart.App
}

// NewAutostart builds an autostart entry for the current executable.
func NewAutostart(name, displayName string) (*Autostart, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolve executable path: %w", err)
	}
	return &Autostart{
		app: &autostart.App{
			Name:        name,
			DisplayName: displayName,
			Exec:        []string{execPath},
		},
	}, nil
}

// Sync enables or disables the login item to match the desired state.
func (auto *Autostart) Sync(enabled bool) error {
	if enabled == auto.app.IsEnabled() {
		return nil
	}
	if enabled {
		if err := auto.app.Enable(); err != nil {
			return fmt.Errorf("enable autostart: %w", err)
		}
		return nil
	}
	if err := auto.app.Disable(); err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	return nil
}

// Enabled reports whether the login item is currently registered.
func (auto *Autostart) Enabled() bool {
	return auto.app.IsEnabled()
}
