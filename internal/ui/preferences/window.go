package preferences

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"restwatch/internal/core/model"
)

// Window handles the preferences UI.
type Window struct {
	window       fyne.Window
	settings     Settings
	onSave       func(Settings)
	onPreview    func(model.ReminderKind)
	onVisibility func(visible bool)

	alertsCheck       *widget.Check
	clickDismiss      *widget.Check
	presentationCheck *widget.Check
	launchCheck       *widget.Check
	opacity           *widget.Slider
	fullscreen        *widget.Check
	soundCheck        *widget.Check
	soundVolume       *widget.Slider

	eyeEnabled  *widget.Check
	eyeInterval *widget.Entry
	eyeTitle    *widget.Entry
	eyeMessage  *widget.Entry
	eyeDismiss  *widget.Entry

	bedEnabled        *widget.Check
	bedStart          *widget.Entry
	bedEnd            *widget.Entry
	bedTitle          *widget.Entry
	bedMessage        *widget.Entry
	bedDismiss        *widget.Entry
	bedAutoDismiss    *widget.Check
	bedRepeat         *widget.Check
	bedRepeatInterval *widget.Entry
	bedPersistent     *widget.Check

	clockEnabled          *widget.Check
	clockTime             *widget.Entry
	clockDays             []*widget.Check
	clockUseOverlay       *widget.Check
	clockReminderEnabled  *widget.Check
	clockReminderInterval *widget.Entry

	miniEnabled  *widget.Check
	miniInterval *widget.Entry
	miniText     *widget.Entry
	miniIcon     *widget.Select
	miniDuration *widget.Entry
	miniHold     *widget.Entry
}

// Callbacks configures the window's outgoing hooks.
type Callbacks struct {
	OnSave       func(Settings)
	OnPreview    func(model.ReminderKind)
	OnVisibility func(visible bool)
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, callbacks Callbacks) *Window {
	window := app.NewWindow("RestWatch Settings")

	prefs := &Window{
		window:       window,
		settings:     settings,
		onSave:       callbacks.OnSave,
		onPreview:    callbacks.OnPreview,
		onVisibility: callbacks.OnVisibility,
	}

	tabs := container.NewAppTabs(
		container.NewTabItem("General", prefs.buildGeneralTab()),
		container.NewTabItem("Eye Strain", prefs.buildEyeStrainTab()),
		container.NewTabItem("Bedtime", prefs.buildBedtimeTab()),
		container.NewTabItem("Clock Out", prefs.buildClockOutTab()),
		container.NewTabItem("Mini Overlay", prefs.buildMiniOverlayTab()),
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		prefs.hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, tabs))
	window.Resize(fyne.NewSize(480, 520))
	window.SetCloseIntercept(func() {
		prefs.hide()
	})

	prefs.populate(settings)
	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
	if prefs.onVisibility != nil {
		prefs.onVisibility(true)
	}
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.populate(settings)
}

func (prefs *Window) hide() {
	prefs.window.Hide()
	if prefs.onVisibility != nil {
		prefs.onVisibility(false)
	}
}

func (prefs *Window) buildGeneralTab() fyne.CanvasObject {
	prefs.alertsCheck = widget.NewCheck("Enable alerts", nil)
	prefs.clickDismiss = widget.NewCheck("Click overlay to dismiss", nil)
	prefs.presentationCheck = widget.NewCheck("Disable during presentations", nil)
	prefs.launchCheck = widget.NewCheck("Launch at login", nil)

	prefs.opacity = widget.NewSlider(0.5, 0.95)
	prefs.opacity.Step = 0.01

	prefs.fullscreen = widget.NewCheck("Fullscreen overlay", nil)

	prefs.soundCheck = widget.NewCheck("Play sound on reminders", nil)
	prefs.soundVolume = widget.NewSlider(0.0, 1.0)
	prefs.soundVolume.Step = 0.05

	return container.NewVBox(
		prefs.alertsCheck,
		prefs.clickDismiss,
		prefs.presentationCheck,
		prefs.launchCheck,
		widget.NewLabel("Overlay opacity"),
		prefs.opacity,
		prefs.fullscreen,
		prefs.soundCheck,
		widget.NewLabel("Sound volume"),
		prefs.soundVolume,
	)
}

func (prefs *Window) buildEyeStrainTab() fyne.CanvasObject {
	prefs.eyeEnabled = widget.NewCheck("Enable eye strain reminders", nil)
	prefs.eyeInterval = widget.NewEntry()
	prefs.eyeTitle = widget.NewEntry()
	prefs.eyeMessage = widget.NewEntry()
	prefs.eyeDismiss = widget.NewEntry()

	return container.NewVBox(
		prefs.eyeEnabled,
		container.NewHBox(widget.NewLabel("Remind every"), prefs.eyeInterval, widget.NewLabel("min")),
		widget.NewLabel("Title"),
		prefs.eyeTitle,
		widget.NewLabel("Message"),
		prefs.eyeMessage,
		container.NewHBox(widget.NewLabel("Auto dismiss after"), prefs.eyeDismiss, widget.NewLabel("sec")),
		prefs.previewButton(model.KindEyeStrain),
	)
}

func (prefs *Window) buildBedtimeTab() fyne.CanvasObject {
	prefs.bedEnabled = widget.NewCheck("Enable bedtime reminders", nil)
	prefs.bedStart = widget.NewEntry()
	prefs.bedEnd = widget.NewEntry()
	prefs.bedTitle = widget.NewEntry()
	prefs.bedMessage = widget.NewEntry()
	prefs.bedDismiss = widget.NewEntry()
	prefs.bedAutoDismiss = widget.NewCheck("Auto dismiss", nil)
	prefs.bedRepeat = widget.NewCheck("Repeat while in range", nil)
	prefs.bedRepeatInterval = widget.NewEntry()
	prefs.bedPersistent = widget.NewCheck("Persistent (reappear until bedtime ends)", nil)

	return container.NewVBox(
		prefs.bedEnabled,
		container.NewHBox(widget.NewLabel("From"), prefs.bedStart, widget.NewLabel("to"), prefs.bedEnd),
		widget.NewLabel("Title"),
		prefs.bedTitle,
		widget.NewLabel("Message"),
		prefs.bedMessage,
		container.NewHBox(widget.NewLabel("Auto dismiss after"), prefs.bedDismiss, widget.NewLabel("sec")),
		prefs.bedAutoDismiss,
		prefs.bedRepeat,
		container.NewHBox(widget.NewLabel("Repeat every"), prefs.bedRepeatInterval, widget.NewLabel("min")),
		prefs.bedPersistent,
		prefs.previewButton(model.KindBedtime),
	)
}

func (prefs *Window) buildClockOutTab() fyne.CanvasObject {
	prefs.clockEnabled = widget.NewCheck("Enable clock out reminder", nil)
	prefs.clockTime = widget.NewEntry()

	dayNames := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	prefs.clockDays = make([]*widget.Check, len(dayNames))
	dayRow := container.NewHBox()
	for i, name := range dayNames {
		check := widget.NewCheck(name, nil)
		prefs.clockDays[i] = check
		dayRow.Add(check)
	}

	prefs.clockUseOverlay = widget.NewCheck("Show as overlay", nil)
	prefs.clockReminderEnabled = widget.NewCheck("Repeat reminders after clock out", nil)
	prefs.clockReminderInterval = widget.NewEntry()

	return container.NewVBox(
		prefs.clockEnabled,
		container.NewHBox(widget.NewLabel("Clock out at"), prefs.clockTime),
		dayRow,
		prefs.clockUseOverlay,
		prefs.clockReminderEnabled,
		container.NewHBox(widget.NewLabel("Remind every"), prefs.clockReminderInterval, widget.NewLabel("min")),
		prefs.previewButton(model.KindClockOut),
	)
}

func (prefs *Window) buildMiniOverlayTab() fyne.CanvasObject {
	prefs.miniEnabled = widget.NewCheck("Enable mini overlay", nil)
	prefs.miniInterval = widget.NewEntry()
	prefs.miniText = widget.NewEntry()
	prefs.miniIcon = widget.NewSelect([]string{"sparkles", "moon", "clock"}, nil)
	prefs.miniDuration = widget.NewEntry()
	prefs.miniHold = widget.NewEntry()

	return container.NewVBox(
		prefs.miniEnabled,
		container.NewHBox(widget.NewLabel("Show every"), prefs.miniInterval, widget.NewLabel("min")),
		widget.NewLabel("Text"),
		prefs.miniText,
		widget.NewLabel("Icon"),
		prefs.miniIcon,
		container.NewHBox(widget.NewLabel("Animation duration"), prefs.miniDuration, widget.NewLabel("sec")),
		container.NewHBox(widget.NewLabel("Hold duration"), prefs.miniHold, widget.NewLabel("sec")),
		prefs.previewButton(model.KindMiniOverlay),
	)
}

func (prefs *Window) previewButton(kind model.ReminderKind) fyne.CanvasObject {
	button := widget.NewButton("Preview", func() {
		if prefs.onPreview != nil {
			prefs.onPreview(kind)
		}
	})
	return container.NewHBox(layout.NewSpacer(), button)
}

func (prefs *Window) populate(settings Settings) {
	prefs.alertsCheck.SetChecked(settings.AlertsEnabled)
	prefs.clickDismiss.SetChecked(settings.ClickToDismiss)
	prefs.presentationCheck.SetChecked(settings.DisableDuringPresentation)
	prefs.launchCheck.SetChecked(settings.LaunchAtLogin)
	prefs.opacity.Value = settings.OverlayOpacity
	prefs.opacity.Refresh()
	prefs.fullscreen.SetChecked(settings.Fullscreen)
	prefs.soundCheck.SetChecked(settings.SoundEnabled)
	prefs.soundVolume.Value = settings.SoundVolume
	prefs.soundVolume.Refresh()

	prefs.eyeEnabled.SetChecked(settings.EyeStrainEnabled)
	prefs.eyeInterval.SetText(fmt.Sprintf("%d", int(settings.EyeStrainInterval.Minutes())))
	prefs.eyeTitle.SetText(settings.EyeStrainTitle)
	prefs.eyeMessage.SetText(settings.EyeStrainMessage)
	prefs.eyeDismiss.SetText(fmt.Sprintf("%d", int(settings.EyeStrainDismissAfter.Seconds())))

	prefs.bedEnabled.SetChecked(settings.BedtimeEnabled)
	prefs.bedStart.SetText(settings.BedtimeStart.String())
	prefs.bedEnd.SetText(settings.BedtimeEnd.String())
	prefs.bedTitle.SetText(settings.BedtimeTitle)
	prefs.bedMessage.SetText(settings.BedtimeMessage)
	prefs.bedDismiss.SetText(fmt.Sprintf("%d", int(settings.BedtimeDismissAfter.Seconds())))
	prefs.bedAutoDismiss.SetChecked(settings.BedtimeAutoDismiss)
	prefs.bedRepeat.SetChecked(settings.BedtimeRepeat)
	prefs.bedRepeatInterval.SetText(fmt.Sprintf("%d", int(settings.BedtimeRepeatInterval.Minutes())))
	prefs.bedPersistent.SetChecked(settings.BedtimePersistent)

	prefs.clockEnabled.SetChecked(settings.ClockOutEnabled)
	prefs.clockTime.SetText(settings.ClockOutTime.String())
	for _, check := range prefs.clockDays {
		check.SetChecked(false)
	}
	for _, day := range settings.ClockOutDays {
		if int(day) >= 0 && int(day) < len(prefs.clockDays) {
			prefs.clockDays[int(day)].SetChecked(true)
		}
	}
	prefs.clockUseOverlay.SetChecked(settings.ClockOutUseOverlay)
	prefs.clockReminderEnabled.SetChecked(settings.ClockOutReminderEnabled)
	prefs.clockReminderInterval.SetText(fmt.Sprintf("%d", int(settings.ClockOutReminderInterval.Minutes())))

	prefs.miniEnabled.SetChecked(settings.MiniOverlayEnabled)
	prefs.miniInterval.SetText(fmt.Sprintf("%d", int(settings.MiniOverlayInterval.Minutes())))
	prefs.miniText.SetText(settings.MiniOverlayText)
	prefs.miniIcon.SetSelected(settings.MiniOverlayIcon)
	prefs.miniDuration.SetText(formatSeconds(settings.MiniOverlayDuration))
	prefs.miniHold.SetText(formatSeconds(settings.MiniOverlayHold))
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	settings.AlertsEnabled = prefs.alertsCheck.Checked
	settings.ClickToDismiss = prefs.clickDismiss.Checked
	settings.DisableDuringPresentation = prefs.presentationCheck.Checked
	settings.LaunchAtLogin = prefs.launchCheck.Checked
	settings.OverlayOpacity = prefs.opacity.Value
	settings.Fullscreen = prefs.fullscreen.Checked
	settings.SoundEnabled = prefs.soundCheck.Checked
	settings.SoundVolume = prefs.soundVolume.Value

	settings.EyeStrainEnabled = prefs.eyeEnabled.Checked
	if minutes, ok := parsePositiveInt(prefs.eyeInterval.Text); ok {
		settings.EyeStrainInterval = time.Duration(minutes) * time.Minute
	}
	if text := strings.TrimSpace(prefs.eyeTitle.Text); text != "" {
		settings.EyeStrainTitle = text
	}
	if text := strings.TrimSpace(prefs.eyeMessage.Text); text != "" {
		settings.EyeStrainMessage = text
	}
	if seconds, ok := parsePositiveInt(prefs.eyeDismiss.Text); ok {
		settings.EyeStrainDismissAfter = time.Duration(seconds) * time.Second
	}

	settings.BedtimeEnabled = prefs.bedEnabled.Checked
	if parsed, err := model.ParseTimeOfDay(prefs.bedStart.Text); err == nil {
		settings.BedtimeStart = parsed
	}
	if parsed, err := model.ParseTimeOfDay(prefs.bedEnd.Text); err == nil {
		settings.BedtimeEnd = parsed
	}
	if text := strings.TrimSpace(prefs.bedTitle.Text); text != "" {
		settings.BedtimeTitle = text
	}
	if text := strings.TrimSpace(prefs.bedMessage.Text); text != "" {
		settings.BedtimeMessage = text
	}
	if seconds, ok := parsePositiveInt(prefs.bedDismiss.Text); ok {
		settings.BedtimeDismissAfter = time.Duration(seconds) * time.Second
	}
	settings.BedtimeAutoDismiss = prefs.bedAutoDismiss.Checked
	settings.BedtimeRepeat = prefs.bedRepeat.Checked
	if minutes, ok := parsePositiveInt(prefs.bedRepeatInterval.Text); ok {
		settings.BedtimeRepeatInterval = time.Duration(minutes) * time.Minute
	}
	settings.BedtimePersistent = prefs.bedPersistent.Checked

	settings.ClockOutEnabled = prefs.clockEnabled.Checked
	if parsed, err := model.ParseTimeOfDay(prefs.clockTime.Text); err == nil {
		settings.ClockOutTime = parsed
	}
	days := make([]time.Weekday, 0, len(prefs.clockDays))
	for i, check := range prefs.clockDays {
		if check.Checked {
			days = append(days, time.Weekday(i))
		}
	}
	settings.ClockOutDays = days
	settings.ClockOutUseOverlay = prefs.clockUseOverlay.Checked
	settings.ClockOutReminderEnabled = prefs.clockReminderEnabled.Checked
	if minutes, ok := parsePositiveInt(prefs.clockReminderInterval.Text); ok {
		settings.ClockOutReminderInterval = time.Duration(minutes) * time.Minute
	}

	settings.MiniOverlayEnabled = prefs.miniEnabled.Checked
	if minutes, ok := parsePositiveInt(prefs.miniInterval.Text); ok {
		settings.MiniOverlayInterval = time.Duration(minutes) * time.Minute
	}
	if text := strings.TrimSpace(prefs.miniText.Text); text != "" {
		settings.MiniOverlayText = text
	}
	if prefs.miniIcon.Selected != "" {
		settings.MiniOverlayIcon = prefs.miniIcon.Selected
	}
	if seconds, ok := parsePositiveFloat(prefs.miniDuration.Text); ok {
		settings.MiniOverlayDuration = time.Duration(math.Round(seconds*1000)) * time.Millisecond
	}
	if seconds, ok := parsePositiveFloat(prefs.miniHold.Text); ok {
		settings.MiniOverlayHold = time.Duration(math.Round(seconds*1000)) * time.Millisecond
	}

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}

func parsePositiveFloat(value string) (float64, bool) {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}

func formatSeconds(duration time.Duration) string {
	return strconv.FormatFloat(duration.Seconds(), 'f', -1, 64)
}
