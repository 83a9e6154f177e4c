package sim

import (
	"image/color"
	"math/rand"

	"chosenoffset.com/rollabout/internal/geom"
)

// Player is the click-driven entity. Its target comes from input; movement
// runs through the shared zoned controller.
type Player struct {
	Entity
	Mover *Mover
}

// NewPlayer creates the player at the given position.
func NewPlayer(cfg MoverConfig, pos geom.Vec) *Player {
	return &Player{
		Entity: Entity{
			Pos:      pos,
			Radius:   cfg.Radius,
			MaxSpeed: cfg.MaxSpeed,
			Friction: cfg.Friction,
			Color:    color.RGBA{A: 255},
		},
		Mover: NewMover(cfg),
	}
}

// World owns the entity population, the world bounds, and the camera, and
// advances them all one tick at a time. Everything is sequential within a
// tick; given the same seed and inputs the run is deterministic.
type World struct {
	Bounds Rect
	Player *Player
	NPCs   []*NPC
	Camera *Camera

	cfg  *Config
	rng  *rand.Rand
	tick uint64
}

// NewWorld builds a world from the config with the player centered and the
// configured number of NPCs at random positions.
func NewWorld(cfg *Config, viewWidth, viewHeight float64, seed int64) *World {
	bounds := Rect{MaxX: cfg.World.Width, MaxY: cfg.World.Height}
	rng := rand.New(rand.NewSource(seed))

	w := &World{
		Bounds: bounds,
		Player: NewPlayer(cfg.Player, geom.Vec{X: cfg.World.Width / 2, Y: cfg.World.Height / 2}),
		Camera: NewCamera(cfg.Camera, viewWidth, viewHeight, bounds),
		cfg:    cfg,
		rng:    rng,
	}

	for i := 0; i < cfg.World.NPCCount; i++ {
		w.SpawnNPC(w.randomSpawnPoint())
	}

	return w
}

// Tick returns the number of completed simulation steps.
func (w *World) Tick() uint64 { return w.tick }

// SpawnNPC adds a wandering NPC at the given position with a random color.
func (w *World) SpawnNPC(pos geom.Vec) *NPC {
	npc := NewNPC(w.cfg.NPC, pos)
	npc.Color = color.RGBA{
		R: uint8(50 + w.rng.Intn(151)),
		G: uint8(50 + w.rng.Intn(151)),
		B: uint8(50 + w.rng.Intn(151)),
		A: 255,
	}
	w.NPCs = append(w.NPCs, npc)
	return npc
}

func (w *World) randomSpawnPoint() geom.Vec {
	margin := w.cfg.World.SpawnMargin
	return geom.Vec{
		X: margin + w.rng.Float64()*(w.Bounds.Width()-2*margin),
		Y: margin + w.rng.Float64()*(w.Bounds.Height()-2*margin),
	}
}

// SetPlayerTarget points the player at a world position.
func (w *World) SetPlayerTarget(p geom.Vec) {
	w.Player.Mover.SetTarget(p)
}

// Step advances the simulation one tick: the player moves toward its
// target, each NPC derives a target from its behavior and moves, everyone
// bounces off the world edges, and the camera recomputes its offset.
// dt is in ticks (1.0 at the fixed simulation rate).
func (w *World) Step(dt float64) {
	w.tick++

	restitution := w.cfg.World.Restitution

	w.Player.Mover.Update(&w.Player.Entity, dt)
	w.Player.Constrain(w.Bounds, restitution)

	for _, npc := range w.NPCs {
		npc.Update(&w.Player.Entity, w.Bounds, w.rng, dt)
		npc.Constrain(w.Bounds, restitution)
	}

	w.Camera.Update(w.Player.Pos)
}
