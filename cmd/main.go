package main

import (
	"log"
	"sync"

	"restwatch/internal/core/gate"
	"restwatch/internal/core/model"
	"restwatch/internal/core/reminders"
	"restwatch/internal/notify"
	"restwatch/internal/platform"
	"restwatch/internal/sound"
	"restwatch/internal/storage"
	"restwatch/internal/ui/animation"
	"restwatch/internal/ui/overlay"
	"restwatch/internal/ui/preferences"
	"restwatch/internal/ui/tray"
	"restwatch/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const appName = "RestWatch"

// settingsStore guards the live settings and hands out immutable snapshots.
type settingsStore struct {
	mu       sync.Mutex
	settings preferences.Settings
}

func (store *settingsStore) Current() preferences.Settings {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.settings
}

func (store *settingsStore) Replace(settings preferences.Settings) {
	store.mu.Lock()
	store.settings = settings
	store.mu.Unlock()
}

func (store *settingsStore) Snapshot() model.Config {
	return store.Current().Snapshot()
}

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.restwatch.app")
	fyneApp.SetIcon(resources.MustLogo("icon.png"))
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		log.Printf("system tray unsupported on this platform")
		return
	}

	trayWindow := fyneApp.NewWindow(appName)
	trayWindow.SetContent(widget.NewLabel("RestWatch is running in the system tray."))
	trayWindow.SetCloseIntercept(func() {
		trayWindow.Hide()
	})
	trayWindow.Hide()
	desktopApp.SetSystemTrayWindow(trayWindow)

	loaded, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}
	store := &settingsStore{settings: loaded}

	detector := platform.NewPresentationDetector(nil, 0)
	detector.Start()
	defer detector.Stop()

	var focusMu sync.Mutex
	settingsFocused := false
	setSettingsFocused := func(focused bool) {
		focusMu.Lock()
		settingsFocused = focused
		focusMu.Unlock()
	}
	currentSignal := func() gate.Signal {
		settings := store.Current()
		focusMu.Lock()
		focused := settingsFocused
		focusMu.Unlock()
		return gate.Signal{
			SettingsFocused:    focused,
			PresentationActive: settings.DisableDuringPresentation && detector.Active(),
			AlertsEnabled:      settings.AlertsEnabled,
		}
	}

	notifier := notify.New(appName)

	var player *sound.Player
	if chime, err := resources.Chime(); err != nil {
		log.Printf("chime unavailable: %v", err)
	} else if player, err = sound.NewPlayer(chime); err != nil {
		log.Printf("sound disabled: %v", err)
		player = nil
	}

	overlayWindow := overlay.NewWindow(fyneApp, overlay.Config{
		Opacity:    opacityToAlpha(loaded.OverlayOpacity),
		Fullscreen: loaded.Fullscreen,
	}, animation.New(animation.DefaultConfig()))
	miniWindow := overlay.NewMiniWindow(fyneApp, animation.New(animation.DefaultConfig()))
	presenter := overlay.NewWindowPresenter(overlayWindow, miniWindow)

	coordinator := overlay.New(presenter, func(isPreview bool) bool {
		return gate.MayFire(currentSignal(), isPreview)
	})
	overlayWindow.SetOnDismiss(func() {
		coordinator.DismissBlocking(overlay.DismissManual)
	})

	scheduler := reminders.New(store.Snapshot, currentSignal, coordinator, notifier, soundSink{player}, reminders.Options{})

	autostartEntry, err := platform.NewAutostart("restwatch", appName)
	if err != nil {
		log.Printf("autostart unavailable: %v", err)
	}
	syncAutostart := func(enabled bool) {
		if autostartEntry == nil {
			return
		}
		if err := autostartEntry.Sync(enabled); err != nil {
			log.Printf("sync autostart: %v", err)
		}
	}
	syncAutostart(loaded.LaunchAtLogin)

	var trayManager *tray.Manager
	var prefsWindow *preferences.Window

	applySettings := func(updated preferences.Settings) {
		store.Replace(updated)
		overlayWindow.UpdateConfig(overlay.Config{
			Opacity:    opacityToAlpha(updated.OverlayOpacity),
			Fullscreen: updated.Fullscreen,
		})
		trayManager.SetAlertsEnabled(updated.AlertsEnabled)
		syncAutostart(updated.LaunchAtLogin)
		if err := storage.SaveSettings(appName, updated); err != nil {
			log.Printf("save settings: %v", err)
		}
	}

	prefsWindow = preferences.New(fyneApp, loaded, preferences.Callbacks{
		OnSave: applySettings,
		OnPreview: func(kind model.ReminderKind) {
			scheduler.Preview(kind)
		},
		OnVisibility: setSettingsFocused,
	})

	trayManager = tray.New(desktopApp, tray.Callbacks{
		OnPreferences: func() {
			prefsWindow.Show()
		},
		OnToggleAlerts: func() {
			settings := store.Current()
			settings.AlertsEnabled = !settings.AlertsEnabled
			applySettings(settings)
			prefsWindow.UpdateSettings(settings)
		},
		OnResetCountdown: func() {
			scheduler.ResetCountdowns()
		},
		OnDismissOverlay: func() {
			coordinator.DismissAll()
		},
		OnQuit: func() {
			scheduler.Stop()
			detector.Stop()
			fyneApp.Quit()
		},
	})
	trayManager.SetAlertsEnabled(loaded.AlertsEnabled)
	desktopApp.SetSystemTrayIcon(resources.MustLogo("icon.png"))

	events := scheduler.Subscribe(5)
	go func() {
		for event := range events {
			if event.Type != reminders.EventProgress {
				continue
			}
			countdowns := event.Countdowns
			active := coordinator.Active()
			fyne.Do(func() {
				trayManager.SetCountdowns(countdowns)
				trayManager.SetOverlayActive(active)
			})
		}
	}()

	scheduler.Start()
	defer scheduler.Stop()

	fyneApp.Run()
}

// soundSink adapts the optional player to the scheduler interface; a nil
// player swallows playback.
type soundSink struct {
	player *sound.Player
}

func (sink soundSink) Play(cfg model.SoundConfig) {
	sink.player.Play(cfg)
}

func opacityToAlpha(opacity float64) uint8 {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return uint8(opacity * 255)
}
