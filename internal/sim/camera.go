package sim

import (
	"chosenoffset.com/rollabout/internal/geom"
)

// CameraMode selects how the viewport tracks the world.
type CameraMode int

const (
	// CameraFixed leaves the view anchored at the world origin.
	CameraFixed CameraMode = iota
	// CameraFollowing centers the view on the followed position.
	CameraFollowing
)

// String returns a display name for the mode.
func (m CameraMode) String() string {
	if m == CameraFollowing {
		return "following"
	}
	return "fixed"
}

// Camera maps world coordinates to view coordinates. In following mode the
// offset centers the viewport on the player; in fixed mode it is zero.
type Camera struct {
	Mode   CameraMode
	Offset geom.Vec

	ViewWidth  float64
	ViewHeight float64

	// ClampToWorld keeps the visible rectangle inside the world bounds
	// when the world is larger than the viewport.
	ClampToWorld bool
	WorldBounds  Rect
}

// NewCamera creates a camera for the given viewport size.
func NewCamera(cfg CameraConfig, viewWidth, viewHeight float64, world Rect) *Camera {
	mode := CameraFixed
	if cfg.Following {
		mode = CameraFollowing
	}
	return &Camera{
		Mode:         mode,
		ViewWidth:    viewWidth,
		ViewHeight:   viewHeight,
		ClampToWorld: cfg.ClampToWorld,
		WorldBounds:  world,
	}
}

// ToggleMode flips between fixed and following and returns the new mode.
func (c *Camera) ToggleMode() CameraMode {
	if c.Mode == CameraFollowing {
		c.Mode = CameraFixed
	} else {
		c.Mode = CameraFollowing
	}
	return c.Mode
}

// Update recomputes the view offset for the given followed position.
// Fixed mode always yields a zero offset.
func (c *Camera) Update(followed geom.Vec) {
	if c.Mode == CameraFixed {
		c.Offset = geom.Vec{}
		return
	}

	c.Offset = geom.Vec{
		X: followed.X - c.ViewWidth/2,
		Y: followed.Y - c.ViewHeight/2,
	}

	if c.ClampToWorld {
		c.Offset.X = geom.Clamp(c.Offset.X, c.WorldBounds.MinX, c.WorldBounds.MaxX-c.ViewWidth)
		c.Offset.Y = geom.Clamp(c.Offset.Y, c.WorldBounds.MinY, c.WorldBounds.MaxY-c.ViewHeight)
	}
}

// WorldToScreen converts a world position to screen coordinates.
func (c *Camera) WorldToScreen(p geom.Vec) geom.Vec {
	return p.Sub(c.Offset)
}

// ScreenToWorld converts a screen position to world coordinates.
func (c *Camera) ScreenToWorld(p geom.Vec) geom.Vec {
	return p.Add(c.Offset)
}

// IsVisible reports whether a circle at p with the given radius intersects
// the viewport.
func (c *Camera) IsVisible(p geom.Vec, radius float64) bool {
	return p.X+radius >= c.Offset.X &&
		p.X-radius <= c.Offset.X+c.ViewWidth &&
		p.Y+radius >= c.Offset.Y &&
		p.Y-radius <= c.Offset.Y+c.ViewHeight
}
