//go:build !linux

package notify

import "log"

type logNotifier struct {
	appName string
}

func newNotifier(appName string) Notifier {
	return &logNotifier{appName: appName}
}

func (notifier *logNotifier) Send(title, body string) error {
	log.Printf("%s notification: %s: %s", notifier.appName, title, body)
	return nil
}
