// Package ebiten implements the render interfaces on top of Ebitengine.
package ebiten

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/rollabout/internal/render"
)

// EbitenRenderer implements the Renderer interface using Ebiten.
type EbitenRenderer struct{}

// NewRenderer creates a new Ebiten-based renderer.
func NewRenderer() render.Renderer {
	return &EbitenRenderer{}
}

// NewImage creates a new image with the given dimensions.
func (r *EbitenRenderer) NewImage(width, height int) render.Image {
	return &EbitenImage{img: ebiten.NewImage(width, height)}
}

// FillCircle draws a filled circle on the destination image.
func (r *EbitenRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.DrawFilledCircle(ebitenImg, x, y, radius, clr, true)
}

// StrokeCircle draws a circle outline on the destination image.
func (r *EbitenRenderer) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.StrokeCircle(ebitenImg, x, y, radius, strokeWidth, clr, true)
}

// StrokeLine draws a line segment on the destination image.
func (r *EbitenRenderer) StrokeLine(dst render.Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.StrokeLine(ebitenImg, x0, y0, x1, y1, strokeWidth, clr, true)
}

// StrokeRect draws a rectangle outline on the destination image.
func (r *EbitenRenderer) StrokeRect(dst render.Image, x, y, width, height float32, strokeWidth float32, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.StrokeRect(ebitenImg, x, y, width, height, strokeWidth, clr, true)
}

// DrawText draws text on the destination image using the default font.
// Note: Color and scale parameters are currently ignored; the debug font
// is white at a fixed size.
func (r *EbitenRenderer) DrawText(dst render.Image, str string, x, y int, clr color.Color, scale float64) {
	ebitenImg := dst.(*EbitenImage).img
	ebitenutil.DebugPrintAt(ebitenImg, str, x, y)
}

// MeasureText measures the width and height of text with the given scale.
// This is an approximation based on the debug font's character size.
func (r *EbitenRenderer) MeasureText(str string, scale float64) (width, height int) {
	// Debug font is approximately 6x13 pixels per character
	charWidth := 6.0
	charHeight := 13.0
	return int(float64(len(str)) * charWidth * scale), int(charHeight * scale)
}

// EbitenImage wraps an ebiten.Image to implement the render.Image interface.
type EbitenImage struct {
	img *ebiten.Image
}

// Bounds returns the bounds of the image.
func (i *EbitenImage) Bounds() image.Rectangle {
	return i.img.Bounds()
}

// Size returns the width and height of the image.
func (i *EbitenImage) Size() (width, height int) {
	bounds := i.img.Bounds()
	return bounds.Dx(), bounds.Dy()
}

// Fill fills the entire image with the given color.
func (i *EbitenImage) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// Clear clears the image.
func (i *EbitenImage) Clear() {
	i.img.Clear()
}

// Dispose releases the image resources.
func (i *EbitenImage) Dispose() {
	i.img.Deallocate()
}

// GetEbitenImage returns the underlying ebiten.Image.
// This is useful for interop with ebiten-specific code.
func (i *EbitenImage) GetEbitenImage() *ebiten.Image {
	return i.img
}

// WrapEbitenImage wraps an existing ebiten.Image as a render.Image.
func WrapEbitenImage(img *ebiten.Image) render.Image {
	return &EbitenImage{img: img}
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

func (m *EbitenInputManager) IsKeyPressed(key render.Key) bool {
	return ebiten.IsKeyPressed(keyToEbitenKey(key))
}

func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	return inpututil.IsKeyJustPressed(keyToEbitenKey(key))
}

func (m *EbitenInputManager) GetCursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

func (m *EbitenInputManager) IsMouseButtonPressed(button render.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(mouseButtonToEbiten(button))
}

func (m *EbitenInputManager) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(mouseButtonToEbiten(button))
}

func keyToEbitenKey(key render.Key) ebiten.Key {
	switch key {
	case render.KeyF:
		return ebiten.KeyF
	case render.KeyV:
		return ebiten.KeyV
	case render.KeyEscape:
		return ebiten.KeyEscape
	default:
		return ebiten.KeyEscape
	}
}

func mouseButtonToEbiten(button render.MouseButton) ebiten.MouseButton {
	switch button {
	case render.MouseButtonLeft:
		return ebiten.MouseButtonLeft
	case render.MouseButtonRight:
		return ebiten.MouseButtonRight
	case render.MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// RunGame runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game render.Game) error {
	err := ebiten.RunGame(&gameAdapter{game: game})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// gameAdapter adapts a render.Game to the ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

// Update implements ebiten.Game. A render.ErrQuit from the game becomes
// an ebiten.Termination so the window closes cleanly.
func (a *gameAdapter) Update() error {
	if err := a.game.Update(); err != nil {
		if errors.Is(err, render.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
