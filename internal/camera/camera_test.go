package camera

import (
	"math"
	"testing"

	"modzero.net/monstrous/internal/core/grid"
)

func near(a, b grid.Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestScreenToWorldCentered(t *testing.T) {
	c := New(1270, 720)

	got := c.ScreenToWorld(grid.Point{X: 635, Y: 360})
	if !near(got, grid.Point{}) {
		t.Errorf("Expected viewport center at world origin, got %v", got)
	}

	got = c.ScreenToWorld(grid.Point{X: 0, Y: 0})
	if !near(got, grid.Point{X: -635, Y: -360}) {
		t.Errorf("Expected (-635,-360), got %v", got)
	}
}

func TestScreenWorldRoundTrip(t *testing.T) {
	c := New(800, 600)
	c.Position = grid.Point{X: 120, Y: -40}
	c.Zoom = 2

	screen := grid.Point{X: 13, Y: 577}
	if got := c.WorldToScreen(c.ScreenToWorld(screen)); !near(got, screen) {
		t.Errorf("Expected %v, got %v", screen, got)
	}
}

func TestPanFollowsCursor(t *testing.T) {
	c := New(800, 600)
	c.Zoom = 2
	world := grid.Point{X: 10, Y: 10}
	before := c.WorldToScreen(world)

	c.Pan(40, -20)

	after := c.WorldToScreen(world)
	if !near(after, before.Add(grid.Point{X: 40, Y: -20})) {
		t.Errorf("Expected world point to move with the drag, got %v -> %v", before, after)
	}
}

func TestZoomAtKeepsAnchor(t *testing.T) {
	c := New(800, 600)
	anchor := grid.Point{X: 100, Y: 500}
	world := c.ScreenToWorld(anchor)

	c.ZoomAt(2, anchor)

	if c.Zoom != 2 {
		t.Errorf("Expected zoom 2, got %v", c.Zoom)
	}
	if got := c.ScreenToWorld(anchor); !near(got, world) {
		t.Errorf("Expected anchor to stay on %v, got %v", world, got)
	}
}

func TestZoomClamped(t *testing.T) {
	c := New(800, 600)

	c.ZoomAt(100, grid.Point{})
	if c.Zoom != MaxZoom {
		t.Errorf("Expected zoom clamped to %v, got %v", MaxZoom, c.Zoom)
	}

	c.ZoomAt(0.0001, grid.Point{})
	if c.Zoom != MinZoom {
		t.Errorf("Expected zoom clamped to %v, got %v", MinZoom, c.Zoom)
	}

	c.ZoomAt(0, grid.Point{})
	if c.Zoom != MinZoom {
		t.Errorf("Expected zero factor to be ignored, got %v", c.Zoom)
	}
}

func TestVisibleWorld(t *testing.T) {
	c := New(200, 100)
	c.Zoom = 2

	min, max := c.VisibleWorld()
	if !near(min, grid.Point{X: -50, Y: -25}) || !near(max, grid.Point{X: 50, Y: 25}) {
		t.Errorf("Expected (-50,-25)-(50,25), got %v-%v", min, max)
	}
}
