package overlay

import (
	"context"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"restwatch/internal/core/model"
	"restwatch/internal/ui/animation"
)

// MiniWindow renders the transient mini-overlay: a small self-dismissing
// pill with icon and text, animated through appear/hold/depart phases.
type MiniWindow struct {
	app        fyne.App
	window     fyne.Window
	background *canvas.Rectangle
	iconLabel  *canvas.Text
	textLabel  *canvas.Text
	engine     *animation.Engine
	cancelCtx  context.CancelFunc
}

// NewMiniWindow creates the transient overlay window.
func NewMiniWindow(app fyne.App, engine *animation.Engine) *MiniWindow {
	window := app.NewWindow("RestWatch")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		window = driver.CreateSplashWindow()
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(color.NRGBA{R: 30, G: 30, B: 30, A: 235})
	background.CornerRadius = 18

	iconLabel := canvas.NewText("", color.NRGBA{R: 232, G: 190, B: 66, A: 255})
	iconLabel.TextSize = 16

	textLabel := canvas.NewText("", color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	textLabel.TextStyle = fyne.TextStyle{Bold: true}
	textLabel.TextSize = 15

	content := container.NewCenter(container.NewHBox(iconLabel, textLabel))
	window.SetContent(container.NewStack(background, content))
	window.Resize(fyne.NewSize(260, 48))

	return &MiniWindow{
		app:        app,
		window:     window,
		background: background,
		iconLabel:  iconLabel,
		textLabel:  textLabel,
		engine:     engine,
	}
}

// ShowTransient displays the pill and runs its animation phases. The
// coordinator hides the window after the configured lifetime; PhaseDone only
// shrinks it so a late teardown has nothing visible left to remove.
func (mini *MiniWindow) ShowTransient(decision model.FireDecision) {
	mini.stopAnimation()
	ctx, cancel := context.WithCancel(context.Background())
	mini.cancelCtx = cancel

	fyne.Do(func() {
		mini.iconLabel.Text = iconGlyph(decision.Icon)
		mini.iconLabel.Refresh()
		mini.textLabel.Text = decision.Message
		mini.textLabel.Refresh()
		mini.window.Show()
	})

	if mini.engine != nil {
		spec := animation.TransientSpec{
			Duration: decision.DismissAfter,
			Hold:     decision.HoldDuration,
		}
		mini.engine.StartTransient(ctx, spec, func(phase animation.Phase) {
			fyne.Do(func() {
				mini.applyPhase(phase)
			})
		})
	}
}

// HideTransient closes the pill and stops the animation.
func (mini *MiniWindow) HideTransient() {
	mini.stopAnimation()
	fyne.Do(func() {
		mini.window.Hide()
	})
}

func (mini *MiniWindow) applyPhase(phase animation.Phase) {
	switch phase {
	case animation.PhaseAppear:
		mini.window.Resize(fyne.NewSize(64, 48))
	case animation.PhaseHold:
		mini.window.Resize(fyne.NewSize(260, 48))
	case animation.PhaseDepart, animation.PhaseDone:
		mini.window.Resize(fyne.NewSize(64, 48))
	}
	mini.window.CenterOnScreen()
}

func (mini *MiniWindow) stopAnimation() {
	if mini.cancelCtx != nil {
		mini.cancelCtx()
		mini.cancelCtx = nil
	}
	if mini.engine != nil {
		mini.engine.Stop()
	}
}

// iconGlyph maps the configured icon name to a printable glyph. The original
// names come from a symbol catalog; only a small set is meaningful here.
func iconGlyph(name string) string {
	switch name {
	case "sparkles":
		return "✦"
	case "moon":
		return "☾"
	case "clock":
		return "◷"
	case "":
		return ""
	default:
		return "•"
	}
}
