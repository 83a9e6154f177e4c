// Package render defines the boundary to the 2D runtime: drawing, input,
// and the window/game loop. Game logic depends only on these interfaces;
// the Ebiten backend lives in render/ebiten.
package render

import (
	"errors"
	"image"
	"image/color"
)

// ErrQuit is returned from Game.Update to shut the engine down cleanly.
var ErrQuit = errors.New("quit requested")

// Renderer is the drawing interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without
// changing game logic.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image

	// Vector operations (for drawing shapes)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	StrokeCircle(dst Image, x, y, radius float32, strokeWidth float32, clr color.Color)
	StrokeLine(dst Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color)
	StrokeRect(dst Image, x, y, width, height float32, strokeWidth float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image represents a renderable surface.
type Image interface {
	Bounds() image.Rectangle
	Size() (width, height int)
	Fill(clr color.Color)
	Clear()
	Dispose()
}

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonPressed(button MouseButton) bool
	IsMouseButtonJustPressed(button MouseButton) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game binds.
const (
	KeyF Key = iota // Camera mode toggle
	KeyV            // Debug overlay toggle
	KeyEscape
)

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game. This is a
	// blocking call; a Game.Update returning ErrQuit ends it with a nil
	// error.
	RunGame(game Game) error
}
