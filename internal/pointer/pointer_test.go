package pointer

import (
	"testing"

	"modzero.net/monstrous/internal/camera"
	"modzero.net/monstrous/internal/core/grid"
	"modzero.net/monstrous/internal/render"
)

type recordingNavigator struct {
	tiles []grid.Tile
}

func (n *recordingNavigator) SetDestination(t grid.Tile) error {
	n.tiles = append(n.tiles, t)
	return nil
}

func setup() (*Resolver, *camera.Camera) {
	layout := grid.NewLayout(grid.Size{Width: 10, Height: 10}, grid.TileSize{Width: 32, Height: 32})
	return NewResolver(layout, render.MouseButtonRight, nil), camera.New(800, 600)
}

func TestResolveCenter(t *testing.T) {
	r, cam := setup()

	// Viewport center is the world origin, which is the corner of tile (5,5)
	tile, ok := r.Resolve(Event{Button: render.MouseButtonRight, Action: Release, Screen: grid.Point{X: 401, Y: 301}}, cam)
	if !ok || tile != (grid.Tile{X: 5, Y: 5}) {
		t.Errorf("Expected (5,5), got %v (ok=%v)", tile, ok)
	}

	tile, ok = r.Resolve(Event{Button: render.MouseButtonRight, Action: Release, Screen: grid.Point{X: 399, Y: 301}}, cam)
	if !ok || tile != (grid.Tile{X: 4, Y: 5}) {
		t.Errorf("Expected (4,5), got %v (ok=%v)", tile, ok)
	}
}

func TestResolveWithCamera(t *testing.T) {
	r, cam := setup()
	cam.Position = grid.Point{X: -144, Y: -144} // Center of tile (0,0)
	cam.Zoom = 2

	tile, ok := r.Resolve(Event{Button: render.MouseButtonRight, Action: Release, Screen: grid.Point{X: 400, Y: 300}}, cam)
	if !ok || tile != (grid.Tile{X: 0, Y: 0}) {
		t.Errorf("Expected (0,0), got %v (ok=%v)", tile, ok)
	}

	// 20 screen pixels at zoom 2 is 10 world units, still inside tile (0,0)
	tile, ok = r.Resolve(Event{Button: render.MouseButtonRight, Action: Release, Screen: grid.Point{X: 400 - 20, Y: 300}}, cam)
	if !ok || tile != (grid.Tile{X: 0, Y: 0}) {
		t.Errorf("Expected (0,0), got %v (ok=%v)", tile, ok)
	}
}

func TestResolveOutsideGrid(t *testing.T) {
	r, cam := setup()

	// The grid spans world [-160, 160); screen x 400-161 is just outside
	points := []grid.Point{
		{X: 400 - 161, Y: 300},
		{X: 400 + 160, Y: 300},
		{X: 400, Y: 300 - 161},
		{X: 0, Y: 0},
	}
	for _, p := range points {
		if tile, ok := r.Resolve(Event{Button: render.MouseButtonRight, Action: Release, Screen: p}, cam); ok {
			t.Errorf("Expected %v to resolve to nothing, got %v", p, tile)
		}
	}
}

func TestResolveIgnoresNonQualifyingEvents(t *testing.T) {
	r, cam := setup()
	center := grid.Point{X: 401, Y: 301}

	if _, ok := r.Resolve(Event{Button: render.MouseButtonRight, Action: Press, Screen: center}, cam); ok {
		t.Error("Expected press to be ignored")
	}
	if _, ok := r.Resolve(Event{Button: render.MouseButtonLeft, Action: Release, Screen: center}, cam); ok {
		t.Error("Expected other button to be ignored")
	}
}

func TestApplyForwardsInOrder(t *testing.T) {
	r, cam := setup()
	nav := &recordingNavigator{}

	events := []Event{
		{Button: render.MouseButtonRight, Action: Press, Screen: grid.Point{X: 401, Y: 301}},
		{Button: render.MouseButtonRight, Action: Release, Screen: grid.Point{X: 401, Y: 301}},
		{Button: render.MouseButtonRight, Action: Release, Screen: grid.Point{X: 0, Y: 0}},
		{Button: render.MouseButtonRight, Action: Release, Screen: grid.Point{X: 401 + 32, Y: 301}},
	}

	if n := r.Apply(events, cam, nav); n != 2 {
		t.Errorf("Expected 2 destinations, got %d", n)
	}
	want := []grid.Tile{{X: 5, Y: 5}, {X: 6, Y: 5}}
	if len(nav.tiles) != len(want) {
		t.Fatalf("Expected %v, got %v", want, nav.tiles)
	}
	for i := range want {
		if nav.tiles[i] != want[i] {
			t.Errorf("Expected %v at %d, got %v", want[i], i, nav.tiles[i])
		}
	}
}
