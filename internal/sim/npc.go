package sim

import (
	"math"
	"math/rand"

	"chosenoffset.com/rollabout/internal/geom"
)

// Behavior selects how an NPC derives its movement target each tick.
// Transitions between behaviors happen either externally or through the
// NPC's own reactions (see react).
type Behavior int

const (
	BehaviorIdle Behavior = iota
	BehaviorWander
	BehaviorFollow
	BehaviorFlee
)

// String returns a display name for the behavior.
func (b Behavior) String() string {
	switch b {
	case BehaviorWander:
		return "wander"
	case BehaviorFollow:
		return "follow"
	case BehaviorFlee:
		return "flee"
	default:
		return "idle"
	}
}

// NPC is an entity whose target comes from its behavior instead of input.
// Movement itself goes through the same zoned controller as the player.
type NPC struct {
	Entity
	Mover    *Mover
	Behavior Behavior

	cfg NPCConfig

	// Ticks left before the wander target is re-rolled.
	wanderTicks int

	// AutoReact lets the NPC flee a nearby player on its own and drift
	// back to wandering once the player is gone. Off, the behavior only
	// changes when set externally.
	AutoReact bool
}

// NewNPC creates a wandering NPC at the given position.
func NewNPC(cfg NPCConfig, pos geom.Vec) *NPC {
	return &NPC{
		Entity: Entity{
			Pos:      pos,
			Radius:   cfg.Mover.Radius,
			MaxSpeed: cfg.Mover.MaxSpeed,
			Friction: cfg.Mover.Friction,
		},
		Mover:     NewMover(cfg.Mover),
		Behavior:  BehaviorWander,
		cfg:       cfg,
		AutoReact: true,
	}
}

// PerceptionRadius returns how far this NPC notices the player.
func (n *NPC) PerceptionRadius() float64 { return n.cfg.PerceptionRadius }

// SetBehavior switches the NPC's behavior.
func (n *NPC) SetBehavior(b Behavior) {
	n.Behavior = b
	if b == BehaviorIdle {
		n.Mover.ClearTarget()
	}
}

// Update derives this tick's movement target from the current behavior and
// the observed player position, then runs the shared movement controller.
// player may be nil when no player exists; bounds keep wander points inside
// the world.
func (n *NPC) Update(player *Entity, bounds Rect, rng *rand.Rand, dt float64) {
	if n.AutoReact && player != nil {
		n.react(player)
	}

	switch n.Behavior {
	case BehaviorWander:
		n.wander(bounds, rng)
	case BehaviorFollow:
		if player != nil {
			n.follow(player)
		}
	case BehaviorFlee:
		if player != nil {
			n.flee(player)
		}
	}

	n.Mover.Update(&n.Entity, dt)
}

// react handles the NPC's own behavior transitions: a player inside the
// perception radius scares a wanderer into fleeing, and a fled player
// (beyond twice the radius) lets it settle back into wandering.
func (n *NPC) react(player *Entity) {
	d := n.Pos.Distance(player.Pos)
	switch n.Behavior {
	case BehaviorWander:
		if d < n.cfg.PerceptionRadius {
			n.Behavior = BehaviorFlee
		}
	case BehaviorFlee:
		if d > n.cfg.PerceptionRadius*2 {
			n.Behavior = BehaviorWander
			n.Mover.ClearTarget()
			n.wanderTicks = 0
		}
	}
}

// wander keeps a random roam target alive, re-rolling it when reached or
// when its timer runs out.
func (n *NPC) wander(bounds Rect, rng *rand.Rand) {
	n.wanderTicks--

	if _, ok := n.Mover.Target(); ok && n.wanderTicks > 0 {
		return
	}

	angle := rng.Float64() * 2 * math.Pi
	dist := n.cfg.WanderMinDistance +
		rng.Float64()*(n.cfg.WanderMaxDistance-n.cfg.WanderMinDistance)

	p := n.Pos.Add(geom.FromAngle(angle, dist))
	p.X = geom.Clamp(p.X, bounds.MinX+n.Radius, bounds.MaxX-n.Radius)
	p.Y = geom.Clamp(p.Y, bounds.MinY+n.Radius, bounds.MaxY-n.Radius)

	n.Mover.SetTarget(p)
	n.wanderTicks = n.cfg.WanderMinTicks +
		rng.Intn(n.cfg.WanderMaxTicks-n.cfg.WanderMinTicks+1)
}

// follow pursues the player but holds a comfort band around the follow
// distance: closer than 80% of it the NPC backs away, inside the band it
// just coasts.
func (n *NPC) follow(player *Entity) {
	d := n.Pos.Distance(player.Pos)
	switch {
	case d > n.cfg.FollowDistance:
		n.Mover.SetTarget(player.Pos)
	case d < n.cfg.FollowDistance*0.8:
		away := n.Pos.Sub(player.Pos).Normalize()
		n.Mover.SetTarget(n.Pos.Add(away.Scale(n.cfg.FollowDistance - d)))
	default:
		n.Mover.ClearTarget()
	}
}

// flee aims at a point directly away from the player. Outside the
// perception radius there is nothing to run from, so the NPC coasts until
// react (or the caller) hands it back to wandering.
func (n *NPC) flee(player *Entity) {
	d := n.Pos.Distance(player.Pos)
	if d >= n.cfg.PerceptionRadius && !n.AutoReact {
		n.Mover.ClearTarget()
		return
	}

	away := n.Pos.Sub(player.Pos).Normalize()
	if away == (geom.Vec{}) {
		// Exactly on top of the player: any direction will do.
		away = geom.Vec{X: 1}
	}
	n.Mover.SetTarget(n.Pos.Add(away.Scale(n.cfg.FleeStep)))
}
