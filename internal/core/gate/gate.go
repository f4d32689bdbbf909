// Package gate decides whether a reminder may fire right now. It is a pure
// function of externally supplied signals, evaluated fresh on every tick.
package gate

// Signal carries the externally observed suppression inputs for one tick.
// It is derived per tick and never persisted.
type Signal struct {
	SettingsFocused    bool
	PresentationActive bool
	AlertsEnabled      bool
}

// MayFire reports whether any reminder may be presented. Previews, triggered
// explicitly by the user from the settings window, always bypass suppression.
func MayFire(sig Signal, isPreview bool) bool {
	if isPreview {
		return true
	}
	return !sig.SettingsFocused && !sig.PresentationActive && sig.AlertsEnabled
}
