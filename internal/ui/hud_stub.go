//go:build !ebiten

package ui

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(Controls, any, int, int) *HUD { return nil }

// Update never consumes input in the headless build.
func (h *HUD) Update() bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
