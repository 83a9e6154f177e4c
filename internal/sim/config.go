// Package sim implements the simulation core: entities, the click-to-move
// momentum model, NPC behaviors, the camera, and the per-tick world step.
// Rendering and input are external; the package is deterministic when seeded.
package sim

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds all tuning values for the simulation.
// Values are loaded from a JSON data file so the feel of the game can be
// adjusted without recompiling.
type Config struct {
	World  WorldConfig  `json:"world"`
	Player MoverConfig  `json:"player"`
	NPC    NPCConfig    `json:"npc"`
	Camera CameraConfig `json:"camera"`
}

// WorldConfig defines the world rectangle and entity population.
type WorldConfig struct {
	Width       float64 `json:"width"`        // World width in units
	Height      float64 `json:"height"`       // World height in units
	NPCCount    int     `json:"npc_count"`    // NPCs spawned at start
	Restitution float64 `json:"restitution"`  // Velocity kept after a wall bounce (0-1)
	SpawnMargin float64 `json:"spawn_margin"` // Distance from walls for random spawns
}

// MoverConfig defines the momentum movement model for one entity kind.
type MoverConfig struct {
	Radius       float64 `json:"radius"`        // Body radius
	Acceleration float64 `json:"acceleration"`  // Velocity gained per tick toward the target
	MaxSpeed     float64 `json:"max_speed"`     // Speed cap
	MinSpeed     float64 `json:"min_speed"`     // Floor speed while still approaching
	Friction     float64 `json:"friction"`      // Per-tick velocity multiplier when idle

	// Zone radii around the target. Must satisfy final < momentum < decel.
	DecelRadius    float64 `json:"decel_radius"`    // Outer edge of the slowdown band
	MomentumRadius float64 `json:"momentum_radius"` // Outer edge of the anti-orbit band
	FinalRadius    float64 `json:"final_radius"`    // Outer edge of the final approach

	PerpDamping   float64 `json:"perp_damping"`   // Max per-tick reduction of sideways velocity
	FinalBlend    float64 `json:"final_blend"`    // Per-tick blend toward rest in final approach
	StopThreshold float64 `json:"stop_threshold"` // Speed below which the entity counts as stopped
	ArriveEpsilon float64 `json:"arrive_epsilon"` // Distance below which the target counts as reached

	// Direction-change damping: when velocity points away from the target
	// direction (dot below the threshold), the whole velocity is damped for a
	// few ticks so the entity does not cut corners or orbit a moved target.
	TurnDotThreshold float64 `json:"turn_dot_threshold"`
	TurnDamping      float64 `json:"turn_damping"`
	TurnDampTicks    int     `json:"turn_damp_ticks"`
}

// NPCConfig defines NPC movement plus behavior tuning.
type NPCConfig struct {
	Mover MoverConfig `json:"mover"`

	PerceptionRadius float64 `json:"perception_radius"` // How far an NPC notices the player
	FollowDistance   float64 `json:"follow_distance"`   // Distance held while following
	FleeStep         float64 `json:"flee_step"`         // How far past itself a fleeing NPC aims

	WanderMinDistance float64 `json:"wander_min_distance"` // Closest new wander point
	WanderMaxDistance float64 `json:"wander_max_distance"` // Farthest new wander point
	WanderMinTicks    int     `json:"wander_min_ticks"`    // Shortest time on one wander target
	WanderMaxTicks    int     `json:"wander_max_ticks"`    // Longest time on one wander target
}

// CameraConfig defines the viewport behavior.
type CameraConfig struct {
	Following    bool `json:"following"`      // Start in follow mode
	ClampToWorld bool `json:"clamp_to_world"` // Keep the viewport inside world bounds
}

// DefaultConfig returns the hand-tuned values the game ships with.
func DefaultConfig() *Config {
	return &Config{
		World: WorldConfig{
			Width:       2000,
			Height:      1500,
			NPCCount:    5,
			Restitution: 0.5,
			SpawnMargin: 50,
		},
		Player: MoverConfig{
			Radius:           15,
			Acceleration:     0.5,
			MaxSpeed:         5,
			MinSpeed:         1.5,
			Friction:         0.9,
			DecelRadius:      150,
			MomentumRadius:   60,
			FinalRadius:      20,
			PerpDamping:      0.7,
			FinalBlend:       0.2,
			StopThreshold:    0.1,
			ArriveEpsilon:    1,
			TurnDotThreshold: 0.7,
			TurnDamping:      0.8,
			TurnDampTicks:    10,
		},
		NPC: NPCConfig{
			Mover: MoverConfig{
				Radius:           10,
				Acceleration:     0.3,
				MaxSpeed:         3,
				MinSpeed:         0.8,
				Friction:         0.9,
				DecelRadius:      100,
				MomentumRadius:   40,
				FinalRadius:      12,
				PerpDamping:      0.7,
				FinalBlend:       0.2,
				StopThreshold:    0.1,
				ArriveEpsilon:    1,
				TurnDotThreshold: 0.7,
				TurnDamping:      0.8,
				TurnDampTicks:    10,
			},
			PerceptionRadius:  160,
			FollowDistance:    80,
			FleeStep:          120,
			WanderMinDistance: 50,
			WanderMaxDistance: 150,
			WanderMinTicks:    100,
			WanderMaxTicks:    200,
		},
		Camera: CameraConfig{
			Following:    true,
			ClampToWorld: true,
		},
	}
}

// LoadConfig loads simulation tuning from a JSON file. A missing file yields
// the defaults; fields absent from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks that the tuning values describe a usable simulation.
func (c *Config) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("world dimensions must be positive, got %gx%g", c.World.Width, c.World.Height)
	}
	if c.World.Restitution < 0 || c.World.Restitution >= 1 {
		return fmt.Errorf("restitution must be in [0,1), got %g", c.World.Restitution)
	}
	if c.World.NPCCount < 0 {
		return fmt.Errorf("npc_count must not be negative, got %d", c.World.NPCCount)
	}
	if err := c.Player.validate("player"); err != nil {
		return err
	}
	if err := c.NPC.Mover.validate("npc.mover"); err != nil {
		return err
	}
	if c.NPC.PerceptionRadius <= 0 {
		return fmt.Errorf("npc perception_radius must be positive, got %g", c.NPC.PerceptionRadius)
	}
	if c.NPC.WanderMinDistance > c.NPC.WanderMaxDistance {
		return fmt.Errorf("npc wander distances inverted: min %g > max %g",
			c.NPC.WanderMinDistance, c.NPC.WanderMaxDistance)
	}
	if c.NPC.WanderMinTicks > c.NPC.WanderMaxTicks {
		return fmt.Errorf("npc wander ticks inverted: min %d > max %d",
			c.NPC.WanderMinTicks, c.NPC.WanderMaxTicks)
	}
	return nil
}

func (m *MoverConfig) validate(name string) error {
	if m.MaxSpeed <= 0 {
		return fmt.Errorf("%s max_speed must be positive, got %g", name, m.MaxSpeed)
	}
	if m.MinSpeed <= 0 || m.MinSpeed > m.MaxSpeed {
		return fmt.Errorf("%s min_speed must be in (0, max_speed], got %g", name, m.MinSpeed)
	}
	if m.Acceleration <= 0 {
		return fmt.Errorf("%s acceleration must be positive, got %g", name, m.Acceleration)
	}
	// The zones are concentric bands; each must sit strictly inside the next.
	if !(m.FinalRadius > 0 && m.FinalRadius < m.MomentumRadius && m.MomentumRadius < m.DecelRadius) {
		return fmt.Errorf("%s zone radii must satisfy 0 < final < momentum < decel, got %g/%g/%g",
			name, m.FinalRadius, m.MomentumRadius, m.DecelRadius)
	}
	if m.PerpDamping < 0 || m.PerpDamping > 1 {
		return fmt.Errorf("%s perp_damping must be in [0,1], got %g", name, m.PerpDamping)
	}
	if m.FinalBlend <= 0 || m.FinalBlend > 1 {
		return fmt.Errorf("%s final_blend must be in (0,1], got %g", name, m.FinalBlend)
	}
	return nil
}
