package sim

import (
	"testing"

	"chosenoffset.com/rollabout/internal/geom"
)

func testCamera(following, clamp bool) *Camera {
	return NewCamera(
		CameraConfig{Following: following, ClampToWorld: clamp},
		800, 600,
		Rect{MaxX: 2000, MaxY: 1500},
	)
}

func TestFixedCameraHasZeroOffset(t *testing.T) {
	c := testCamera(false, true)
	c.Update(geom.Vec{X: 1234, Y: 567})

	if c.Offset != (geom.Vec{}) {
		t.Errorf("fixed camera offset = %+v, want zero", c.Offset)
	}
}

func TestFollowingCameraCentersPlayer(t *testing.T) {
	c := testCamera(true, true)
	player := geom.Vec{X: 1000, Y: 750}
	c.Update(player)

	want := geom.Vec{X: 600, Y: 450}
	if c.Offset != want {
		t.Errorf("offset = %+v, want %+v", c.Offset, want)
	}

	// The player lands at the center of the viewport.
	screen := c.WorldToScreen(player)
	if screen.X != 400 || screen.Y != 300 {
		t.Errorf("player on screen at %+v, want viewport center {400 300}", screen)
	}
}

func TestFollowingCameraClampsAtWorldEdges(t *testing.T) {
	c := testCamera(true, true)

	c.Update(geom.Vec{X: 10, Y: 10})
	if c.Offset != (geom.Vec{}) {
		t.Errorf("offset near origin corner = %+v, want zero", c.Offset)
	}

	c.Update(geom.Vec{X: 1995, Y: 1495})
	want := geom.Vec{X: 1200, Y: 900} // world size minus viewport
	if c.Offset != want {
		t.Errorf("offset near far corner = %+v, want %+v", c.Offset, want)
	}
}

func TestUnclampedCameraTracksBeyondEdges(t *testing.T) {
	c := testCamera(true, false)
	c.Update(geom.Vec{X: 0, Y: 0})

	want := geom.Vec{X: -400, Y: -300}
	if c.Offset != want {
		t.Errorf("offset = %+v, want %+v", c.Offset, want)
	}
}

func TestScreenWorldRoundTrip(t *testing.T) {
	c := testCamera(true, true)
	c.Update(geom.Vec{X: 1000, Y: 750})

	p := geom.Vec{X: 321, Y: 123}
	if got := c.ScreenToWorld(c.WorldToScreen(p)); got != p {
		t.Errorf("round trip = %+v, want %+v", got, p)
	}
}

func TestToggleMode(t *testing.T) {
	c := testCamera(true, true)

	if got := c.ToggleMode(); got != CameraFixed {
		t.Errorf("first toggle = %v, want fixed", got)
	}
	if got := c.ToggleMode(); got != CameraFollowing {
		t.Errorf("second toggle = %v, want following", got)
	}
}

func TestIsVisible(t *testing.T) {
	c := testCamera(true, true)
	c.Update(geom.Vec{X: 1000, Y: 750}) // offset {600 450}, view 800x600

	if !c.IsVisible(geom.Vec{X: 1000, Y: 750}, 10) {
		t.Error("centered entity reported invisible")
	}
	// Just off the left edge, but the radius still overlaps the view.
	if !c.IsVisible(geom.Vec{X: 595, Y: 750}, 10) {
		t.Error("edge-overlapping entity reported invisible")
	}
	if c.IsVisible(geom.Vec{X: 100, Y: 100}, 10) {
		t.Error("far off-screen entity reported visible")
	}
}
