package grid

import "math"

// Point represents a 2D point in world space
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both components by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Tile represents a discrete tile coordinate
type Tile struct {
	X, Y int
}

// Distance returns the straight-line distance between two tiles, in tiles.
func Distance(a, b Tile) float64 {
	return math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
}

// StepToward returns the tile adjacent to from that is one unit closer to
// to on each axis that differs. Diagonal hops are allowed.
func StepToward(from, to Tile) Tile {
	return Tile{X: from.X + sign(to.X-from.X), Y: from.Y + sign(to.Y-from.Y)}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Size is the grid dimensions in tiles.
type Size struct {
	Width, Height int
}

// Contains reports whether t lies inside the grid.
func (s Size) Contains(t Tile) bool {
	return t.X >= 0 && t.Y >= 0 && t.X < s.Width && t.Y < s.Height
}

// Center returns the middle tile, rounding down.
func (s Size) Center() Tile {
	return Tile{X: s.Width / 2, Y: s.Height / 2}
}

// Cells returns the number of tiles in the grid.
func (s Size) Cells() int {
	return s.Width * s.Height
}

// TileSize is the size of one tile in world units.
type TileSize struct {
	Width, Height float64
}
