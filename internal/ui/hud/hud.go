// Package hud provides a small configurable heads-up display showing the
// player's movement state, the camera mode, and the NPC population.
package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/rollabout/internal/render"
	"chosenoffset.com/rollabout/internal/sim"
)

// Config defines what to display in the HUD
type Config struct {
	ShowSpeed     bool   `json:"show_speed"`     // Player speed and cap
	ShowPhase     bool   `json:"show_phase"`     // Movement phase
	ShowCamera    bool   `json:"show_camera"`    // Camera mode
	ShowBehaviors bool   `json:"show_behaviors"` // NPC behavior counts
	ShowTick      bool   `json:"show_tick"`      // Simulation tick
	Position      string `json:"position"`       // "top-left", "top-right", "bottom-left", "bottom-right"
}

// DefaultConfig returns a sensible default HUD configuration
func DefaultConfig() *Config {
	return &Config{
		ShowSpeed:     true,
		ShowPhase:     true,
		ShowCamera:    true,
		ShowBehaviors: true,
		ShowTick:      false,
		Position:      "top-left",
	}
}

// HUD manages the heads-up display
type HUD struct {
	config       *Config
	screenWidth  int
	screenHeight int

	world *sim.World
}

// New creates a new HUD with the given configuration
func New(config *Config, screenWidth, screenHeight int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{
		config:       config,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// SetWorld sets the world the HUD reads its data from
func (h *HUD) SetWorld(world *sim.World) {
	h.world = world
}

// SetScreenSize updates the screen dimensions
func (h *HUD) SetScreenSize(width, height int) {
	h.screenWidth = width
	h.screenHeight = height
}

// Lines returns the text lines the HUD would display, in order.
func (h *HUD) Lines() []string {
	if h.world == nil {
		return nil
	}

	var lines []string
	player := h.world.Player

	if h.config.ShowSpeed {
		lines = append(lines, fmt.Sprintf("speed %.2f / %.0f", player.Vel.Length(), player.MaxSpeed))
	}
	if h.config.ShowPhase {
		lines = append(lines, fmt.Sprintf("phase %s", player.Mover.Phase()))
	}
	if h.config.ShowCamera {
		lines = append(lines, fmt.Sprintf("camera %s", h.world.Camera.Mode))
	}
	if h.config.ShowBehaviors {
		counts := map[sim.Behavior]int{}
		for _, npc := range h.world.NPCs {
			counts[npc.Behavior]++
		}
		lines = append(lines, fmt.Sprintf("npcs %d (wander %d follow %d flee %d)",
			len(h.world.NPCs),
			counts[sim.BehaviorWander],
			counts[sim.BehaviorFollow],
			counts[sim.BehaviorFlee]))
	}
	if h.config.ShowTick {
		lines = append(lines, fmt.Sprintf("tick %d", h.world.Tick()))
	}
	return lines
}

// Draw renders the HUD to the screen
func (h *HUD) Draw(r render.Renderer, screen render.Image) {
	lines := h.Lines()
	if len(lines) == 0 {
		return
	}

	const lineHeight = 16
	x, y := h.calculatePosition(len(lines) * lineHeight)
	clr := color.RGBA{60, 60, 60, 255}

	for _, line := range lines {
		r.DrawText(screen, line, x, y, clr, 1.0)
		y += lineHeight
	}
}

// calculatePosition returns the top-left corner of the HUD block
func (h *HUD) calculatePosition(height int) (int, int) {
	padding := 10
	width := 220

	switch h.config.Position {
	case "top-right":
		return h.screenWidth - width - padding, padding
	case "bottom-left":
		return padding, h.screenHeight - height - padding
	case "bottom-right":
		return h.screenWidth - width - padding, h.screenHeight - height - padding
	default: // "top-left"
		return padding, padding
	}
}
