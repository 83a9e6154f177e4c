// Package geom provides the 2D vector math used by the simulation.
// Vec is an immutable value type; every operation returns a new value.
package geom

import "math"

// Vec is a 2D vector with X and Y components.
type Vec struct {
	X float64
	Y float64
}

// Add returns the sum of two vectors.
func (v Vec) Add(other Vec) Vec {
	return Vec{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference between two vectors.
func (v Vec) Sub(other Vec) Vec {
	return Vec{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale multiplies the vector by a scalar value.
func (v Vec) Scale(factor float64) Vec {
	return Vec{X: v.X * factor, Y: v.Y * factor}
}

// Length returns the magnitude of the vector.
func (v Vec) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// LengthSquared returns the squared magnitude, avoiding the square root
// when only comparisons are needed.
func (v Vec) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to the zero vector.
func (v Vec) Normalize() Vec {
	length := v.Length()
	if length == 0 {
		return Vec{}
	}
	return Vec{X: v.X / length, Y: v.Y / length}
}

// Dot returns the dot product of two vectors.
func (v Vec) Dot(other Vec) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Distance returns the distance between two points.
func (v Vec) Distance(other Vec) float64 {
	return v.Sub(other).Length()
}

// Lerp linearly interpolates from v toward other by t in [0,1].
func (v Vec) Lerp(other Vec, t float64) Vec {
	return Vec{
		X: v.X + (other.X-v.X)*t,
		Y: v.Y + (other.Y-v.Y)*t,
	}
}

// ClampLength returns the vector with its magnitude capped at max.
// A non-positive max returns the vector unchanged.
func (v Vec) ClampLength(max float64) Vec {
	if max <= 0 {
		return v
	}
	length := v.Length()
	if length <= max {
		return v
	}
	return v.Scale(max / length)
}

// FromAngle creates a vector from an angle in radians and a magnitude.
func FromAngle(angle, magnitude float64) Vec {
	return Vec{X: magnitude * math.Cos(angle), Y: magnitude * math.Sin(angle)}
}

// AngleBetween returns the angle between two vectors in radians.
// Either vector being zero-length yields 0.
func AngleBetween(a, b Vec) float64 {
	la := a.Length()
	lb := b.Length()
	if la == 0 || lb == 0 {
		return 0
	}
	// Clamp to guard against floating point error outside [-1, 1].
	cos := Clamp(a.Dot(b)/(la*lb), -1, 1)
	return math.Acos(cos)
}

// Clamp limits value to the range [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Lerp linearly interpolates between a and b by t in [0,1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
