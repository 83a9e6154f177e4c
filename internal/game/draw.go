package game

import (
	"image/color"

	"chosenoffset.com/rollabout/internal/geom"
	"chosenoffset.com/rollabout/internal/render"
	"chosenoffset.com/rollabout/internal/sim"
)

var (
	colorBackground = color.RGBA{255, 255, 255, 255}
	colorGrid       = color.RGBA{200, 200, 200, 255}
	colorBorder     = color.RGBA{40, 40, 40, 255}
	colorVelocity   = color.RGBA{0, 0, 255, 255}
	colorTarget     = color.RGBA{255, 0, 0, 255}
	colorFinalLine  = color.RGBA{0, 200, 0, 255}
	colorDecelZone  = color.RGBA{255, 200, 200, 255}
	colorMomentZone = color.RGBA{200, 200, 255, 255}
	colorFinalZone  = color.RGBA{100, 255, 100, 255}
	colorPerception = color.RGBA{200, 200, 200, 255}
	colorWanderMark = color.RGBA{150, 150, 150, 255}
)

const gridSpacing = 50.0

// Draw renders the world to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(colorBackground)

	g.drawGrid(screen)
	g.drawWorldBorder(screen)

	// NPCs first so the player is drawn on top.
	for _, npc := range g.World.NPCs {
		g.drawEntity(screen, &npc.Entity)
		if g.ShowOverlays {
			g.drawNPCOverlay(screen, npc)
		}
	}

	g.drawEntity(screen, &g.World.Player.Entity)
	if g.ShowOverlays {
		g.drawPlayerOverlay(screen)
	}

	g.drawUI(screen)
	g.HUD.Draw(g.Renderer, screen)
}

// drawGrid draws reference lines every gridSpacing world units, shifted by
// the camera offset so they scroll with the world.
func (g *Game) drawGrid(screen render.Image) {
	cam := g.World.Camera
	w := float64(g.ScreenWidth)
	h := float64(g.ScreenHeight)

	startX := float64(int(cam.Offset.X/gridSpacing)) * gridSpacing
	for x := startX; x <= cam.Offset.X+w+gridSpacing; x += gridSpacing {
		sx := float32(x - cam.Offset.X)
		g.Renderer.StrokeLine(screen, sx, 0, sx, float32(h), 1, colorGrid)
	}

	startY := float64(int(cam.Offset.Y/gridSpacing)) * gridSpacing
	for y := startY; y <= cam.Offset.Y+h+gridSpacing; y += gridSpacing {
		sy := float32(y - cam.Offset.Y)
		g.Renderer.StrokeLine(screen, 0, sy, float32(w), sy, 1, colorGrid)
	}
}

func (g *Game) drawWorldBorder(screen render.Image) {
	cam := g.World.Camera
	topLeft := cam.WorldToScreen(geom.Vec{X: g.World.Bounds.MinX, Y: g.World.Bounds.MinY})
	g.Renderer.StrokeRect(screen,
		float32(topLeft.X), float32(topLeft.Y),
		float32(g.World.Bounds.Width()), float32(g.World.Bounds.Height()),
		2, colorBorder)
}

func (g *Game) drawEntity(screen render.Image, e *sim.Entity) {
	cam := g.World.Camera
	if !cam.IsVisible(e.Pos, e.Radius) {
		return
	}
	p := cam.WorldToScreen(e.Pos)
	g.Renderer.FillCircle(screen, float32(p.X), float32(p.Y), float32(e.Radius), e.Color)
}

// drawPlayerOverlay draws the movement debug layer for the player: the
// velocity vector, the line to the target, and the three zone circles
// around the target. The target line and final-approach ring turn green
// while the final approach is active.
func (g *Game) drawPlayerOverlay(screen render.Image) {
	cam := g.World.Camera
	player := g.World.Player
	p := cam.WorldToScreen(player.Pos)

	// Velocity vector, scaled up to stay visible at low speeds.
	const velScale = 5
	if player.Vel != (geom.Vec{}) {
		tip := p.Add(player.Vel.Scale(velScale))
		g.Renderer.StrokeLine(screen,
			float32(p.X), float32(p.Y), float32(tip.X), float32(tip.Y),
			2, colorVelocity)
	}

	target, ok := player.Mover.Target()
	if !ok {
		return
	}

	ts := cam.WorldToScreen(target)
	cfg := player.Mover.Config()
	finalApproach := player.Mover.Phase() == sim.PhaseFinalApproach

	lineColor := colorTarget
	finalColor := colorFinalZone
	if finalApproach {
		lineColor = colorFinalLine
		finalColor = colorFinalLine
	}

	g.Renderer.StrokeLine(screen,
		float32(p.X), float32(p.Y), float32(ts.X), float32(ts.Y),
		2, lineColor)

	g.Renderer.FillCircle(screen, float32(ts.X), float32(ts.Y), 5, colorTarget)
	g.Renderer.StrokeCircle(screen, float32(ts.X), float32(ts.Y), float32(cfg.DecelRadius), 1, colorDecelZone)
	g.Renderer.StrokeCircle(screen, float32(ts.X), float32(ts.Y), float32(cfg.MomentumRadius), 1, colorMomentZone)
	g.Renderer.StrokeCircle(screen, float32(ts.X), float32(ts.Y), float32(cfg.FinalRadius), 1, finalColor)
}

// drawNPCOverlay draws an NPC's perception radius and, when wandering, its
// current roam target.
func (g *Game) drawNPCOverlay(screen render.Image, npc *sim.NPC) {
	cam := g.World.Camera
	p := cam.WorldToScreen(npc.Pos)

	g.Renderer.StrokeCircle(screen,
		float32(p.X), float32(p.Y), float32(npc.PerceptionRadius()),
		1, colorPerception)

	if npc.Behavior != sim.BehaviorWander {
		return
	}
	target, ok := npc.Mover.Target()
	if !ok {
		return
	}
	ts := cam.WorldToScreen(target)
	g.Renderer.FillCircle(screen, float32(ts.X), float32(ts.Y), 3, colorWanderMark)
	g.Renderer.StrokeLine(screen,
		float32(p.X), float32(p.Y), float32(ts.X), float32(ts.Y),
		1, colorWanderMark)
}

func (g *Game) drawUI(screen render.Image) {
	// Draw on-screen messages
	y := 50.0
	for _, msg := range g.Messages {
		alpha := uint8(255 * (msg.TimeLeft / msg.MaxTime))
		g.Renderer.DrawText(screen, msg.Text, 20, int(y), color.RGBA{40, 40, 40, alpha}, 1.0)
		y += 20
	}
}
