package overlay

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"restwatch/internal/core/model"
	"restwatch/internal/ui/animation"
)

// Config defines blocking overlay visuals.
type Config struct {
	Opacity    uint8
	Fullscreen bool
}

// Window renders the blocking overlay: a translucent full-screen sheet with
// title, message and a live countdown until auto-dismiss.
type Window struct {
	app           fyne.App
	window        fyne.Window
	config        Config
	background    *canvas.Rectangle
	titleLabel    *canvas.Text
	messageLabel  *canvas.Text
	timerLabel    *canvas.Text
	dismissButton *widget.Button
	engine        *animation.Engine
	cancelCtx     context.CancelFunc
	onDismiss     func()
}

const (
	overlayWidthFraction  = float32(0.32)
	overlayHeightFraction = float32(0.24)
	defaultScreenWidth    = float32(1920)
	defaultScreenHeight   = float32(1080)
)

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// NewWindow creates the blocking overlay window.
func NewWindow(app fyne.App, config Config, engine *animation.Engine) *Window {
	window := app.NewWindow("RestWatch")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(color.NRGBA{R: 0, G: 0, B: 0, A: config.Opacity})

	titleLabel := canvas.NewText("", color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	titleLabel.Alignment = fyne.TextAlignCenter
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.TextSize = 28

	messageLabel := canvas.NewText("", color.NRGBA{R: 230, G: 230, B: 230, A: 255})
	messageLabel.Alignment = fyne.TextAlignCenter
	messageLabel.TextSize = 18

	timerLabel := canvas.NewText("--:--", color.NRGBA{R: 232, G: 190, B: 66, A: 255})
	timerLabel.Alignment = fyne.TextAlignCenter
	timerLabel.TextStyle = fyne.TextStyle{Bold: true}
	timerLabel.TextSize = 22

	dismissButton := widget.NewButton("Dismiss", nil)

	content := container.NewVBox(
		titleLabel,
		messageLabel,
		timerLabel,
		container.NewCenter(dismissButton),
	)
	root := container.NewStack(background, container.NewCenter(content))
	window.SetContent(root)

	overlay := &Window{
		app:           app,
		window:        window,
		config:        config,
		background:    background,
		titleLabel:    titleLabel,
		messageLabel:  messageLabel,
		timerLabel:    timerLabel,
		dismissButton: dismissButton,
		engine:        engine,
	}

	dismissButton.OnTapped = func() {
		if overlay.onDismiss != nil {
			overlay.onDismiss()
		}
	}

	overlay.applyWindowMode()
	return overlay
}

// SetOnDismiss sets the handler invoked by the dismiss click.
func (overlay *Window) SetOnDismiss(handler func()) {
	overlay.onDismiss = handler
}

// ShowBlocking displays decision content and starts the countdown label.
func (overlay *Window) ShowBlocking(decision model.FireDecision) {
	overlay.stopCountdown()
	ctx, cancel := context.WithCancel(context.Background())
	overlay.cancelCtx = cancel

	fyne.Do(func() {
		overlay.titleLabel.Text = decision.Title
		overlay.titleLabel.Refresh()
		overlay.messageLabel.Text = decision.Message
		overlay.messageLabel.Refresh()
		overlay.setRemaining(decision.DismissAfter)
		if decision.Dismissable {
			overlay.dismissButton.Show()
		} else {
			overlay.dismissButton.Hide()
		}
		overlay.applyWindowMode()
		overlay.window.Show()
		overlay.window.RequestFocus()
	})

	if overlay.engine != nil && decision.AutoDismiss && decision.DismissAfter > 0 {
		overlay.engine.StartCountdown(ctx, decision.DismissAfter, func(remaining time.Duration) {
			fyne.Do(func() {
				overlay.setRemaining(remaining)
			})
		})
	}
}

// HideBlocking closes the overlay and stops the countdown.
func (overlay *Window) HideBlocking() {
	overlay.stopCountdown()
	fyne.Do(func() {
		if overlay.config.Fullscreen {
			overlay.window.SetFullScreen(false)
		}
		overlay.window.Hide()
	})
}

// UpdateConfig updates overlay visuals.
func (overlay *Window) UpdateConfig(config Config) {
	overlay.config = config
	fyne.Do(func() {
		overlay.background.FillColor = color.NRGBA{R: 0, G: 0, B: 0, A: config.Opacity}
		canvas.Refresh(overlay.background)
		overlay.applyWindowMode()
	})
}

func (overlay *Window) setRemaining(remaining time.Duration) {
	overlay.timerLabel.Text = formatDuration(remaining)
	overlay.timerLabel.Refresh()
}

func (overlay *Window) stopCountdown() {
	if overlay.cancelCtx != nil {
		overlay.cancelCtx()
		overlay.cancelCtx = nil
	}
	if overlay.engine != nil {
		overlay.engine.Stop()
	}
}

func (overlay *Window) applyWindowMode() {
	if overlay.config.Fullscreen {
		overlay.window.SetFullScreen(true)
		overlay.applyNativeOpacity(overlay.config.Opacity)
		return
	}
	overlay.window.SetFullScreen(false)
	overlay.resizeToScreenFraction()
	overlay.applyNativeOpacity(overlay.config.Opacity)
}

func (overlay *Window) resizeToScreenFraction() {
	screenSize := fyne.NewSize(defaultScreenWidth, defaultScreenHeight)
	canvasSize := overlay.window.Canvas().Size()
	// Canvas size can be reused as a proxy for monitor size when it is clearly screen-like.
	if canvasSize.Width >= 1024 && canvasSize.Height >= 720 {
		screenSize = canvasSize
	}

	width := screenSize.Width * overlayWidthFraction
	height := screenSize.Height * overlayHeightFraction
	minSize := overlay.window.Content().MinSize()
	if width < minSize.Width {
		width = minSize.Width
	}
	if height < minSize.Height {
		height = minSize.Height
	}

	overlay.window.Resize(fyne.NewSize(width, height))
	overlay.window.CenterOnScreen()
}

func formatDuration(value time.Duration) string {
	if value < 0 {
		value = 0
	}
	seconds := int(value.Seconds())
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
