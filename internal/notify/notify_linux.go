//go:build linux

package notify

import (
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"
)

const notifyTimeoutMillis = int32(10000)

type dbusNotifier struct {
	appName string

	mu   sync.Mutex
	conn *dbus.Conn
}

func newNotifier(appName string) Notifier {
	return &dbusNotifier{appName: appName}
}

// Send posts a notification via org.freedesktop.Notifications on the
// session bus. The connection is established lazily and reused.
func (notifier *dbusNotifier) Send(title, body string) error {
	conn, err := notifier.sessionConn()
	if err != nil {
		return err
	}

	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		notifier.appName,
		uint32(0),
		"appointment-soon",
		title,
		body,
		[]string{},
		map[string]dbus.Variant{},
		notifyTimeoutMillis,
	)
	if call.Err != nil {
		return fmt.Errorf("send notification: %w", call.Err)
	}
	return nil
}

func (notifier *dbusNotifier) sessionConn() (*dbus.Conn, error) {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if notifier.conn != nil {
		return notifier.conn, nil
	}
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}
	notifier.conn = conn
	return conn, nil
}
