package sim

import (
	"math"
	"math/rand"
	"testing"

	"chosenoffset.com/rollabout/internal/geom"
)

func testMoverConfig() MoverConfig {
	return DefaultConfig().Player
}

func newTestPlayer(pos geom.Vec) *Player {
	return NewPlayer(testMoverConfig(), pos)
}

func TestSpeedCapHeldEveryTick(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := newTestPlayer(geom.Vec{X: 500, Y: 500})
	maxSpeed := p.MaxSpeed

	for i := 0; i < 2000; i++ {
		if i%100 == 0 {
			p.Mover.SetTarget(geom.Vec{
				X: rng.Float64() * 1000,
				Y: rng.Float64() * 1000,
			})
		}
		p.Mover.Update(&p.Entity, 1)

		if speed := p.Vel.Length(); speed > maxSpeed+1e-9 {
			t.Fatalf("tick %d: speed %f exceeds cap %f", i, speed, maxSpeed)
		}
	}
}

func TestDistanceDecreasesUntilFinalApproach(t *testing.T) {
	p := newTestPlayer(geom.Vec{})
	target := geom.Vec{X: 400, Y: 300}
	p.Mover.SetTarget(target)

	prev := p.Pos.Distance(target)
	for i := 0; i < 1000; i++ {
		p.Mover.Update(&p.Entity, 1)
		d := p.Pos.Distance(target)
		if d <= p.Mover.Config().FinalRadius {
			return
		}
		if d > prev {
			t.Fatalf("tick %d: distance grew from %f to %f outside final approach", i, prev, d)
		}
		prev = d
	}
	t.Fatalf("never entered final approach, distance still %f", prev)
}

func TestArrivalStopsAndClearsTarget(t *testing.T) {
	p := newTestPlayer(geom.Vec{})
	target := geom.Vec{X: 500, Y: 0}
	p.Mover.SetTarget(target)

	for i := 0; i < 2000 && p.Mover.Phase() != PhaseNone; i++ {
		p.Mover.Update(&p.Entity, 1)

		// Pure 1-D approach must not drift onto the orthogonal axis.
		if p.Pos.Y != 0 || p.Vel.Y != 0 {
			t.Fatalf("tick %d: y drift, pos.Y=%g vel.Y=%g", i, p.Pos.Y, p.Vel.Y)
		}
	}

	if p.Mover.Phase() != PhaseNone {
		t.Fatalf("player never arrived, pos=%+v vel=%+v", p.Pos, p.Vel)
	}
	if p.Pos != target {
		t.Errorf("arrival position = %+v, want %+v", p.Pos, target)
	}
	if p.Vel != (geom.Vec{}) {
		t.Errorf("arrival velocity = %+v, want zero", p.Vel)
	}
	if _, ok := p.Mover.Target(); ok {
		t.Error("target still set after arrival")
	}
}

func TestVelocityDecaysAfterArrival(t *testing.T) {
	p := newTestPlayer(geom.Vec{X: 100, Y: 100})
	p.Vel = geom.Vec{X: 4, Y: -3}

	// No target: friction alone must bring the entity to rest.
	for i := 0; i < 100; i++ {
		p.Mover.Update(&p.Entity, 1)
	}

	if p.Vel != (geom.Vec{}) {
		t.Errorf("velocity %+v after 100 idle ticks, want exactly zero", p.Vel)
	}
}

func TestAntiOrbitDampsTangentialVelocity(t *testing.T) {
	cfg := testMoverConfig()
	p := newTestPlayer(geom.Vec{X: 50, Y: 0})
	target := geom.Vec{}
	p.Mover.SetTarget(target)

	// Start inside the momentum band moving purely sideways.
	d := p.Pos.Distance(target)
	if d <= cfg.FinalRadius || d > cfg.MomentumRadius {
		t.Fatalf("test setup: distance %f not in momentum band (%f, %f]", d, cfg.FinalRadius, cfg.MomentumRadius)
	}
	p.Vel = geom.Vec{X: 0, Y: 2}

	tangential := func() float64 {
		dir := target.Sub(p.Pos).Normalize()
		perp := p.Vel.Sub(dir.Scale(p.Vel.Dot(dir)))
		return perp.Length()
	}

	prev := tangential()
	for i := 0; i < 15; i++ {
		p.Mover.Update(&p.Entity, 1)
		cur := tangential()
		if cur < 0.1 {
			return
		}
		if cur >= prev {
			t.Fatalf("tick %d: tangential speed %f did not decrease from %f", i, cur, prev)
		}
		prev = cur
	}
	t.Fatalf("tangential speed still %f after 15 ticks", prev)
}

func TestTargetAtCurrentPositionIsNoop(t *testing.T) {
	p := newTestPlayer(geom.Vec{X: 42, Y: 42})
	p.Mover.SetTarget(p.Pos)
	p.Mover.Update(&p.Entity, 1)

	if p.Mover.Phase() != PhaseNone {
		t.Errorf("phase = %v, want idle", p.Mover.Phase())
	}
	if p.Vel != (geom.Vec{}) {
		t.Errorf("velocity = %+v, want zero", p.Vel)
	}
	if p.Pos != (geom.Vec{X: 42, Y: 42}) {
		t.Errorf("position moved to %+v", p.Pos)
	}
}

func TestRetargetDuringFinalApproach(t *testing.T) {
	p := newTestPlayer(geom.Vec{})
	first := geom.Vec{X: 200, Y: 0}
	p.Mover.SetTarget(first)

	for i := 0; i < 2000 && p.Mover.Phase() != PhaseFinalApproach; i++ {
		p.Mover.Update(&p.Entity, 1)
	}
	if p.Mover.Phase() != PhaseFinalApproach {
		t.Fatal("never reached final approach")
	}

	// A fresh target mid-approach must restart the zone logic cleanly.
	second := geom.Vec{X: -300, Y: 100}
	p.Mover.SetTarget(second)
	p.Mover.Update(&p.Entity, 1)

	if p.Mover.Phase() != PhaseApproaching {
		t.Errorf("phase after retarget = %v, want approaching", p.Mover.Phase())
	}
	got, ok := p.Mover.Target()
	if !ok || got != second {
		t.Errorf("target = %+v (%v), want %+v", got, ok, second)
	}

	for i := 0; i < 3000 && p.Mover.Phase() != PhaseNone; i++ {
		p.Mover.Update(&p.Entity, 1)
	}
	if p.Pos != second {
		t.Errorf("final position = %+v, want %+v", p.Pos, second)
	}
}

func TestDesiredSpeedCurve(t *testing.T) {
	cfg := testMoverConfig()
	m := NewMover(cfg)

	tests := []struct {
		name string
		d    float64
		want float64
	}{
		{"outside decel band", cfg.DecelRadius + 100, cfg.MaxSpeed},
		{"decel band edge", cfg.DecelRadius, cfg.MaxSpeed},
		{"midway through band", (cfg.DecelRadius + cfg.MomentumRadius) / 2, (cfg.MaxSpeed + cfg.MinSpeed) / 2},
		{"momentum band edge", cfg.MomentumRadius, cfg.MinSpeed},
		{"inside momentum band", cfg.MomentumRadius / 2, cfg.MinSpeed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.desiredSpeed(tt.d)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("desiredSpeed(%g) = %g, want %g", tt.d, got, tt.want)
			}
		})
	}
}

func TestMinSpeedHeldOutsideFinalApproach(t *testing.T) {
	cfg := testMoverConfig()
	p := newTestPlayer(geom.Vec{})
	target := geom.Vec{X: 400, Y: 0}
	p.Mover.SetTarget(target)

	// Skip the spin-up from rest, then require the approach to never
	// stall before the final zone.
	for i := 0; i < 20; i++ {
		p.Mover.Update(&p.Entity, 1)
	}
	for i := 0; i < 1000; i++ {
		p.Mover.Update(&p.Entity, 1)
		if p.Pos.Distance(target) <= cfg.FinalRadius {
			return
		}
		if speed := p.Vel.Length(); speed < cfg.MinSpeed-1e-9 {
			t.Fatalf("tick %d: speed %f below floor %f outside final approach", i, speed, cfg.MinSpeed)
		}
	}
	t.Fatal("never reached final approach")
}
