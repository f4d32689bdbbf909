// Package notify delivers desktop notifications for reminders that do
// not use a fullscreen overlay.
package notify

// Notifier sends a desktop notification.
type Notifier interface {
	Send(title, body string) error
}

// New returns the platform notifier.
func New(appName string) Notifier {
	return newNotifier(appName)
}
