// Package game runs the frame loop: it polls input, advances the
// simulation one fixed tick, and draws the world through the render
// boundary.
package game

import (
	"fmt"

	"chosenoffset.com/rollabout/internal/geom"
	"chosenoffset.com/rollabout/internal/render"
	"chosenoffset.com/rollabout/internal/sim"
	"chosenoffset.com/rollabout/internal/ui/hud"
)

// Game holds all game state and logic.
type Game struct {
	ScreenWidth  int
	ScreenHeight int

	World    *sim.World
	Renderer render.Renderer
	InputMgr render.InputManager
	HUD      *hud.HUD

	// ShowOverlays draws the movement debug layer: velocity vectors,
	// the three zone circles around the player's target, and NPC
	// perception radii.
	ShowOverlays bool

	// UI state
	Messages []Message
}

// New creates the game for an already-built world.
func New(world *sim.World, r render.Renderer, input render.InputManager, width, height int) *Game {
	g := &Game{
		ScreenWidth:  width,
		ScreenHeight: height,
		World:        world,
		Renderer:     r,
		InputMgr:     input,
		HUD:          hud.New(nil, width, height),
	}
	g.HUD.SetWorld(world)
	return g
}

// Update handles input and advances the simulation one tick.
func (g *Game) Update() error {
	// Delta time for UI timers (fixed 60 TPS)
	dt := 1.0 / 60.0
	g.updateMessages(dt)

	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyF) {
		mode := g.World.Camera.ToggleMode()
		g.ShowMessage(fmt.Sprintf("camera: %s", mode))
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyV) {
		g.ShowOverlays = !g.ShowOverlays
		if g.ShowOverlays {
			g.ShowMessage("overlays: on")
		} else {
			g.ShowMessage("overlays: off")
		}
	}

	if g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		x, y := g.InputMgr.GetCursorPosition()
		target := g.World.Camera.ScreenToWorld(geom.Vec{X: float64(x), Y: float64(y)})
		g.World.SetPlayerTarget(target)
	}

	// The simulation runs in tick units; one update is one tick.
	g.World.Step(1)

	return nil
}

// Layout implements the render.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: 3.0,
		MaxTime:  3.0,
	})
}
