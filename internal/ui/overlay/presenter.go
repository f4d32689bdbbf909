package overlay

import "restwatch/internal/core/model"

// WindowPresenter bundles the blocking and transient windows behind the
// Presenter interface consumed by the Coordinator.
type WindowPresenter struct {
	blocking  *Window
	transient *MiniWindow
}

// NewWindowPresenter creates a presenter over the two overlay windows.
func NewWindowPresenter(blocking *Window, transient *MiniWindow) *WindowPresenter {
	return &WindowPresenter{blocking: blocking, transient: transient}
}

func (p *WindowPresenter) ShowBlocking(decision model.FireDecision) {
	p.blocking.ShowBlocking(decision)
}

func (p *WindowPresenter) HideBlocking() {
	p.blocking.HideBlocking()
}

func (p *WindowPresenter) ShowTransient(decision model.FireDecision) {
	p.transient.ShowTransient(decision)
}

func (p *WindowPresenter) HideTransient() {
	p.transient.HideTransient()
}
