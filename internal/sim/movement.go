package sim

import (
	"chosenoffset.com/rollabout/internal/geom"
)

// Phase describes where a mover is in its approach to the current target.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseApproaching
	PhaseFinalApproach
)

// String returns a display name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseApproaching:
		return "approaching"
	case PhaseFinalApproach:
		return "final approach"
	default:
		return "idle"
	}
}

// Mover drives an entity toward a point target using the zoned momentum
// model. The zones are concentric bands around the target, outermost first:
//
//	outer:    full acceleration up to the speed cap
//	decel:    speed eases linearly from MaxSpeed down to MinSpeed
//	momentum: sideways velocity is damped so the body cannot orbit
//	final:    velocity blends to rest and the target is cleared
//
// The same controller serves the player and NPCs; only the tuning differs.
type Mover struct {
	cfg MoverConfig

	target    geom.Vec
	hasTarget bool
	phase     Phase

	// Ticks remaining of whole-velocity damping after a sharp course change.
	turnTicks int
}

// NewMover creates a movement controller with the given tuning.
func NewMover(cfg MoverConfig) *Mover {
	return &Mover{cfg: cfg}
}

// Config returns the controller's tuning values.
func (m *Mover) Config() MoverConfig { return m.cfg }

// Phase returns the current movement phase.
func (m *Mover) Phase() Phase { return m.phase }

// Target returns the current target and whether one is set.
func (m *Mover) Target() (geom.Vec, bool) {
	return m.target, m.hasTarget
}

// SetTarget points the mover at a new world position. Setting a target
// during final approach simply restarts the zone logic against the new
// point on the next update.
func (m *Mover) SetTarget(p geom.Vec) {
	m.target = p
	m.hasTarget = true
	m.phase = PhaseApproaching
}

// ClearTarget stops steering; the entity coasts to rest under friction.
func (m *Mover) ClearTarget() {
	m.hasTarget = false
	m.phase = PhaseNone
}

// Update advances the entity one tick. With no target the entity coasts;
// otherwise the zone for the current distance-to-target shapes the velocity
// before integration, and the position is integrated with the speed cap
// enforced. dt is in ticks (1.0 at the fixed simulation rate).
func (m *Mover) Update(e *Entity, dt float64) {
	if !m.hasTarget {
		e.Coast(dt)
		return
	}

	to := m.target.Sub(e.Pos)
	d := to.Length()

	// Arrival: close enough and slow enough means we are done. This also
	// covers a target set at the current position, where the direction to
	// the target is undefined.
	if d < m.cfg.ArriveEpsilon && e.Vel.Length() < m.cfg.StopThreshold {
		e.Pos = m.target
		e.Vel = geom.Vec{}
		m.ClearTarget()
		return
	}

	dir := to.Normalize()
	if dir == (geom.Vec{}) {
		// On top of the target but still fast: let the final approach
		// bleed the speed off without a steering direction.
		e.Vel = e.Vel.Lerp(geom.Vec{}, m.cfg.FinalBlend)
		e.Integrate(dt)
		return
	}

	m.detectTurn(e, dir)
	if m.turnTicks > 0 {
		e.Vel = e.Vel.Scale(m.cfg.TurnDamping)
		m.turnTicks--
	}

	switch {
	case d <= m.cfg.FinalRadius:
		m.phase = PhaseFinalApproach
		m.finalApproach(e, dir, d)
	case d <= m.cfg.MomentumRadius:
		m.phase = PhaseApproaching
		m.momentumZone(e, dir, d)
	case d <= m.cfg.DecelRadius:
		m.phase = PhaseApproaching
		m.decelZone(e, dir, d)
	default:
		m.phase = PhaseApproaching
		e.ApplyForce(dir.Scale(m.cfg.Acceleration))
	}

	e.Integrate(dt)
}

// detectTurn notices the velocity pointing away from the target direction
// and arms a short burst of whole-velocity damping, so a retargeted entity
// sheds momentum instead of swinging wide around the new point.
func (m *Mover) detectTurn(e *Entity, dir geom.Vec) {
	speed := e.Vel.Length()
	if speed == 0 {
		return
	}
	if e.Vel.Scale(1/speed).Dot(dir) < m.cfg.TurnDotThreshold {
		m.turnTicks = m.cfg.TurnDampTicks
		// A sharp course change also cancels the final approach.
		if m.phase == PhaseFinalApproach {
			m.phase = PhaseApproaching
		}
	}
}

// desiredSpeed is the linear deceleration curve: MaxSpeed at the decel
// radius easing down to MinSpeed at the momentum radius, and MinSpeed for
// any distance inside it.
func (m *Mover) desiredSpeed(d float64) float64 {
	if d >= m.cfg.DecelRadius {
		return m.cfg.MaxSpeed
	}
	if d <= m.cfg.MomentumRadius {
		return m.cfg.MinSpeed
	}
	t := (d - m.cfg.MomentumRadius) / (m.cfg.DecelRadius - m.cfg.MomentumRadius)
	return geom.Lerp(m.cfg.MinSpeed, m.cfg.MaxSpeed, t)
}

// decelZone keeps steering toward the target while easing the speed down
// the linear curve. The entity never drops below MinSpeed here.
func (m *Mover) decelZone(e *Entity, dir geom.Vec, d float64) {
	e.ApplyForce(dir.Scale(m.cfg.Acceleration))

	desired := m.desiredSpeed(d)
	speed := e.Vel.Length()
	if speed > desired {
		// Ease toward the desired speed rather than clamping, so the
		// slowdown reads as momentum instead of a hard brake.
		e.Vel = e.Vel.Scale(0.9 + 0.1*desired/speed)
	}

	m.enforceMinSpeed(e, dir)
}

// momentumZone decomposes the velocity against the direction to the target
// and damps the perpendicular part, which is what produces orbiting. The
// parallel part continues down the deceleration curve.
func (m *Mover) momentumZone(e *Entity, dir geom.Vec, d float64) {
	parSpeed := e.Vel.Dot(dir)
	perp := e.Vel.Sub(dir.Scale(parSpeed))

	perp = perp.Scale(1 - m.cfg.PerpDamping)

	if parSpeed < m.cfg.MinSpeed {
		// Moving too slowly (or backwards) along the approach line:
		// push harder toward the target, as the outer zones would.
		boost := 2.0
		parSpeed += m.cfg.Acceleration * boost
	} else if parSpeed > m.cfg.MinSpeed {
		parSpeed = parSpeed * (0.9 + 0.1*m.cfg.MinSpeed/parSpeed)
	}

	e.Vel = dir.Scale(parSpeed).Add(perp)
	m.enforceMinSpeed(e, dir)
}

// finalApproach blends the velocity toward rest. The ideal velocity shrinks
// linearly with the remaining distance, so the stop lands on the target
// instead of short of it.
func (m *Mover) finalApproach(e *Entity, dir geom.Vec, d float64) {
	ideal := dir.Scale(m.cfg.MinSpeed * d / m.cfg.FinalRadius)

	blend := m.cfg.FinalBlend
	speed := e.Vel.Length()
	if speed > 0 && e.Vel.Scale(1/speed).Dot(dir) < m.cfg.TurnDotThreshold {
		// Moving away from the target this close: correct hard.
		blend = 0.5
	}

	e.Vel = e.Vel.Lerp(ideal, blend)
}

// enforceMinSpeed keeps the approach from stalling outside the final zone.
func (m *Mover) enforceMinSpeed(e *Entity, dir geom.Vec) {
	speed := e.Vel.Length()
	if speed >= m.cfg.MinSpeed {
		return
	}
	if speed == 0 {
		e.Vel = dir.Scale(m.cfg.MinSpeed)
		return
	}
	e.Vel = e.Vel.Scale(m.cfg.MinSpeed / speed)
}
