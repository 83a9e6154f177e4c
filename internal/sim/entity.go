package sim

import (
	"image/color"

	"chosenoffset.com/rollabout/internal/geom"
)

// Rect is an axis-aligned rectangle in world coordinates.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p geom.Vec) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Entity is a moving body in the world. Player and NPC wrap it with their
// own target-selection logic; the physics here is shared.
type Entity struct {
	Pos      geom.Vec
	Vel      geom.Vec
	Radius   float64
	MaxSpeed float64
	Friction float64
	Color    color.RGBA
}

// snapThreshold is the per-axis speed below which a coasting entity is
// considered stopped, so friction does not leave a perpetual drift.
const snapThreshold = 0.1

// Coast advances the entity with no target: friction bleeds off velocity,
// near-zero components snap to rest, and the speed cap is enforced.
func (e *Entity) Coast(dt float64) {
	e.Vel = e.Vel.Scale(e.Friction)

	if e.Vel.X > -snapThreshold && e.Vel.X < snapThreshold {
		e.Vel.X = 0
	}
	if e.Vel.Y > -snapThreshold && e.Vel.Y < snapThreshold {
		e.Vel.Y = 0
	}

	e.Vel = e.Vel.ClampLength(e.MaxSpeed)
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))
}

// ApplyForce adds to the entity's velocity.
func (e *Entity) ApplyForce(f geom.Vec) {
	e.Vel = e.Vel.Add(f)
}

// Integrate applies the speed cap and moves the entity by its velocity.
func (e *Entity) Integrate(dt float64) {
	e.Vel = e.Vel.ClampLength(e.MaxSpeed)
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))
}

// Constrain keeps the entity inside bounds, accounting for its radius.
// A crossed wall clamps the position onto the wall and reflects the
// offending velocity component, scaled by the restitution factor. The
// tangential component is untouched.
func (e *Entity) Constrain(bounds Rect, restitution float64) {
	if e.Pos.X < bounds.MinX+e.Radius {
		e.Pos.X = bounds.MinX + e.Radius
		e.Vel.X *= -restitution
	} else if e.Pos.X > bounds.MaxX-e.Radius {
		e.Pos.X = bounds.MaxX - e.Radius
		e.Vel.X *= -restitution
	}

	if e.Pos.Y < bounds.MinY+e.Radius {
		e.Pos.Y = bounds.MinY + e.Radius
		e.Vel.Y *= -restitution
	} else if e.Pos.Y > bounds.MaxY-e.Radius {
		e.Pos.Y = bounds.MaxY - e.Radius
		e.Vel.Y *= -restitution
	}
}

// DistanceTo returns the distance between two entity centers.
func (e *Entity) DistanceTo(other *Entity) float64 {
	return e.Pos.Distance(other.Pos)
}

// Overlaps reports whether two entity bodies intersect.
func (e *Entity) Overlaps(other *Entity) bool {
	return e.DistanceTo(other) < e.Radius+other.Radius
}
