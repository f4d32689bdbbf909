//go:build !windows

package overlay

// applyNativeOpacity is a no-op where translucency comes from the canvas
// background alone.
func (overlay *Window) applyNativeOpacity(alpha uint8) {}
