// Package grid maps between discrete tile coordinates and continuous world space.
package grid

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfBounds is returned when a world position lies outside the grid.
var ErrOutOfBounds = errors.New("position outside grid")

// Placement positions the grid in world space. Only translation is supported.
type Placement struct {
	Offset Point // World position of the grid-local origin
}

// CenteredPlacement places a grid so its footprint is centered on the world origin.
func CenteredPlacement(size Size, tileSize TileSize) Placement {
	return Placement{Offset: Point{
		X: -float64(size.Width) * tileSize.Width / 2,
		Y: -float64(size.Height) * tileSize.Height / 2,
	}}
}

// ToWorld converts a grid-local point to world space.
func (p Placement) ToWorld(local Point) Point {
	return local.Add(p.Offset)
}

// ToLocal converts a world point to grid-local space.
func (p Placement) ToLocal(world Point) Point {
	return world.Sub(p.Offset)
}

// Layout describes a placed grid: its dimensions, tile size and world placement.
type Layout struct {
	Size      Size
	TileSize  TileSize
	Placement Placement
}

// NewLayout creates a layout centered on the world origin.
func NewLayout(size Size, tileSize TileSize) Layout {
	return Layout{
		Size:      size,
		TileSize:  tileSize,
		Placement: CenteredPlacement(size, tileSize),
	}
}

// TileToLocal returns the grid-local position of a tile's top-left corner.
func (l Layout) TileToLocal(t Tile) Point {
	return Point{
		X: float64(t.X) * l.TileSize.Width,
		Y: float64(t.Y) * l.TileSize.Height,
	}
}

// TileToWorld returns the world position of a tile's top-left corner.
func (l Layout) TileToWorld(t Tile) Point {
	return l.Placement.ToWorld(l.TileToLocal(t))
}

// WorldToTile returns the tile containing a world point. The boolean is false
// when the point lies outside the grid.
func (l Layout) WorldToTile(p Point) (Tile, bool) {
	local := l.Placement.ToLocal(p)
	fx := math.Floor(local.X / l.TileSize.Width)
	fy := math.Floor(local.Y / l.TileSize.Height)

	// NaN fails every comparison, so test for inclusion rather than exclusion
	if !(fx >= 0 && fy >= 0 && fx < float64(l.Size.Width) && fy < float64(l.Size.Height)) {
		return Tile{}, false
	}
	return Tile{X: int(fx), Y: int(fy)}, true
}

// TileAt is WorldToTile with an error for callers that want ErrOutOfBounds.
func (l Layout) TileAt(p Point) (Tile, error) {
	t, ok := l.WorldToTile(p)
	if !ok {
		return Tile{}, fmt.Errorf("tile at (%.2f, %.2f): %w", p.X, p.Y, ErrOutOfBounds)
	}
	return t, nil
}

// Bounds returns the world-space footprint of the grid as min and max corners.
func (l Layout) Bounds() (min, max Point) {
	min = l.Placement.Offset
	max = min.Add(Point{
		X: float64(l.Size.Width) * l.TileSize.Width,
		Y: float64(l.Size.Height) * l.TileSize.Height,
	})
	return min, max
}

// Lerp interpolates between two tiles' world positions. t is clamped to [0, 1].
func (l Layout) Lerp(from, to Tile, t float64) Point {
	t = math.Max(0, math.Min(1, t))
	a := l.TileToWorld(from)
	b := l.TileToWorld(to)
	return a.Add(b.Sub(a).Scale(t))
}
