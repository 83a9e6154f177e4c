package sim

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero world width", func(c *Config) { c.World.Width = 0 }},
		{"restitution of 1", func(c *Config) { c.World.Restitution = 1 }},
		{"negative npc count", func(c *Config) { c.World.NPCCount = -1 }},
		{"zero max speed", func(c *Config) { c.Player.MaxSpeed = 0 }},
		{"min speed above max", func(c *Config) { c.Player.MinSpeed = c.Player.MaxSpeed + 1 }},
		{"final radius outside momentum", func(c *Config) { c.Player.FinalRadius = c.Player.MomentumRadius + 1 }},
		{"momentum radius outside decel", func(c *Config) { c.Player.MomentumRadius = c.Player.DecelRadius + 1 }},
		{"zero final radius", func(c *Config) { c.Player.FinalRadius = 0 }},
		{"perp damping above 1", func(c *Config) { c.NPC.Mover.PerpDamping = 1.5 }},
		{"zero perception radius", func(c *Config) { c.NPC.PerceptionRadius = 0 }},
		{"inverted wander distances", func(c *Config) { c.NPC.WanderMinDistance = c.NPC.WanderMaxDistance + 1 }},
		{"inverted wander ticks", func(c *Config) { c.NPC.WanderMinTicks = c.NPC.WanderMaxTicks + 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate accepted a bad config")
			}
		})
	}
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.World.Width != DefaultConfig().World.Width {
		t.Errorf("world width = %g, want default %g", cfg.World.Width, DefaultConfig().World.Width)
	}
}

func TestLoadConfigMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.json")
	data := `{
		"world": {"npc_count": 12},
		"player": {"max_speed": 8}
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.World.NPCCount != 12 {
		t.Errorf("npc_count = %d, want 12", cfg.World.NPCCount)
	}
	if cfg.Player.MaxSpeed != 8 {
		t.Errorf("player max_speed = %g, want 8", cfg.Player.MaxSpeed)
	}
	// Untouched fields keep their defaults.
	if cfg.Player.DecelRadius != DefaultConfig().Player.DecelRadius {
		t.Errorf("decel_radius = %g, want default %g", cfg.Player.DecelRadius, DefaultConfig().Player.DecelRadius)
	}
}

func TestLoadConfigRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.json")
	// Zone ordering violated: momentum pushed outside decel.
	data := `{"player": {"momentum_radius": 500}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig accepted a config with mis-ordered zones")
	}
}

func TestLoadConfigRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig accepted malformed JSON")
	}
}
