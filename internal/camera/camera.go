// Package camera converts between screen pixels and world space.
package camera

import (
	"math"

	"modzero.net/monstrous/internal/core/grid"
)

// Zoom limits
const (
	MinZoom = 0.25
	MaxZoom = 4.0
)

// Camera tracks the viewport. Position is the world point shown at the
// center of the viewport; Zoom is screen pixels per world unit.
type Camera struct {
	Position       grid.Point
	Zoom           float64
	ViewportWidth  int
	ViewportHeight int
}

// New creates a camera centered on the world origin at zoom 1.
func New(viewportWidth, viewportHeight int) *Camera {
	return &Camera{
		Zoom:           1,
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
	}
}

// SetViewport updates the viewport size, e.g. after a window resize.
func (c *Camera) SetViewport(width, height int) {
	c.ViewportWidth = width
	c.ViewportHeight = height
}

func (c *Camera) viewportCenter() grid.Point {
	return grid.Point{X: float64(c.ViewportWidth) / 2, Y: float64(c.ViewportHeight) / 2}
}

// ScreenToWorld converts a screen position to world space.
func (c *Camera) ScreenToWorld(screen grid.Point) grid.Point {
	return c.Position.Add(screen.Sub(c.viewportCenter()).Scale(1 / c.Zoom))
}

// WorldToScreen converts a world position to screen space.
func (c *Camera) WorldToScreen(world grid.Point) grid.Point {
	return world.Sub(c.Position).Scale(c.Zoom).Add(c.viewportCenter())
}

// Pan drags the view by a screen-space delta; the world follows the cursor.
func (c *Camera) Pan(dx, dy float64) {
	c.Position = c.Position.Sub(grid.Point{X: dx, Y: dy}.Scale(1 / c.Zoom))
}

// ZoomAt multiplies the zoom by factor, keeping the world point under the
// screen anchor fixed. The result is clamped to [MinZoom, MaxZoom].
func (c *Camera) ZoomAt(factor float64, anchor grid.Point) {
	if !(factor > 0) {
		return
	}
	before := c.ScreenToWorld(anchor)
	c.Zoom = math.Max(MinZoom, math.Min(MaxZoom, c.Zoom*factor))
	after := c.ScreenToWorld(anchor)
	c.Position = c.Position.Add(before.Sub(after))
}

// VisibleWorld returns the world-space rectangle covered by the viewport.
func (c *Camera) VisibleWorld() (min, max grid.Point) {
	min = c.ScreenToWorld(grid.Point{})
	max = c.ScreenToWorld(grid.Point{X: float64(c.ViewportWidth), Y: float64(c.ViewportHeight)})
	return min, max
}
