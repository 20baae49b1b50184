package game

import (
	"image/color"
	"math"

	"modzero.net/monstrous/internal/core/grid"
	"modzero.net/monstrous/internal/render"
)

var (
	backgroundColor  = color.RGBA{20, 18, 16, 255}
	hoverColor       = color.RGBA{255, 255, 255, 160}
	destinationColor = color.RGBA{255, 215, 0, 220}
	pawnColor        = color.RGBA{0, 255, 100, 255}
	pawnEdgeColor    = color.RGBA{0, 120, 50, 255}
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	g.drawTerrain(screen)
	g.drawMarkers(screen)
	g.drawPawn(screen)
	g.drawHUD(screen)
}

// visibleTiles returns the inclusive tile range intersecting the viewport.
func (g *Game) visibleTiles() (min, max grid.Tile, ok bool) {
	wmin, wmax := g.Camera.VisibleWorld()
	lmin := g.Grid.Placement.ToLocal(wmin)
	lmax := g.Grid.Placement.ToLocal(wmax)
	size := g.Grid.Size
	tw, th := g.Grid.TileSize.Width, g.Grid.TileSize.Height

	min = grid.Tile{
		X: clampInt(int(math.Floor(lmin.X/tw)), 0, size.Width-1),
		Y: clampInt(int(math.Floor(lmin.Y/th)), 0, size.Height-1),
	}
	max = grid.Tile{
		X: clampInt(int(math.Floor(lmax.X/tw)), 0, size.Width-1),
		Y: clampInt(int(math.Floor(lmax.Y/th)), 0, size.Height-1),
	}

	// Viewport entirely off one side of the grid
	if lmax.X < 0 || lmax.Y < 0 || lmin.X >= float64(size.Width)*tw || lmin.Y >= float64(size.Height)*th {
		return grid.Tile{}, grid.Tile{}, false
	}
	return min, max, true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// tileScale is the per-axis draw scale for atlas tiles at the current zoom.
func (g *Game) tileScale() (sx, sy float64) {
	return g.Tileset.ScaleTo(g.Grid.TileSize.Width*g.Camera.Zoom, g.Grid.TileSize.Height*g.Camera.Zoom)
}

func (g *Game) drawTerrain(screen render.Image) {
	if g.Tileset == nil || g.Field == nil {
		return
	}

	min, max, ok := g.visibleTiles()
	if !ok {
		return
	}

	sx, sy := g.tileScale()
	for y := min.Y; y <= max.Y; y++ {
		for x := min.X; x <= max.X; x++ {
			tile := grid.Tile{X: x, Y: y}
			tex, ok := g.Field.TextureIndexAt(tile)
			if !ok {
				continue
			}
			s := g.Camera.WorldToScreen(g.Grid.TileToWorld(tile))
			if err := g.Tileset.DrawTile(screen, tex, s.X, s.Y, sx, sy); err != nil {
				// Every tile on screen would fail the same way
				g.Log.WithError(err).Error("terrain texture missing from tileset")
				return
			}
		}
	}
}

func (g *Game) outlineTile(screen render.Image, t grid.Tile, clr color.Color) {
	if g.Renderer == nil {
		return
	}
	s := g.Camera.WorldToScreen(g.Grid.TileToWorld(t))
	w := g.Grid.TileSize.Width * g.Camera.Zoom
	h := g.Grid.TileSize.Height * g.Camera.Zoom
	g.Renderer.StrokeRect(screen, float32(s.X), float32(s.Y), float32(w), float32(h), 2, clr)
}

func (g *Game) drawMarkers(screen render.Image) {
	if g.hover.Valid {
		g.outlineTile(screen, g.hover.Tile, hoverColor)
	}
	if dest, ok := g.Pawn.Destination(); ok {
		g.outlineTile(screen, dest, destinationColor)
	}
}

func (g *Game) drawPawn(screen render.Image) {
	s := g.Camera.WorldToScreen(g.Pawn.RenderPosition())

	if g.Tileset != nil {
		sx, sy := g.tileScale()
		if err := g.Tileset.DrawTile(screen, g.Config.Assets.PawnTextureIndex, s.X, s.Y, sx, sy); err == nil {
			return
		}
	}

	if g.Renderer == nil {
		return
	}
	w := g.Grid.TileSize.Width * g.Camera.Zoom
	h := g.Grid.TileSize.Height * g.Camera.Zoom
	cx, cy := float32(s.X+w/2), float32(s.Y+h/2)
	radius := float32(math.Min(w, h) * 0.4)
	g.Renderer.FillCircle(screen, cx, cy, radius, pawnColor)
	g.Renderer.StrokeCircle(screen, cx, cy, radius, 2, pawnEdgeColor)
}

func (g *Game) drawHUD(screen render.Image) {
	g.HUD.Draw(screen, g.Renderer)
}
