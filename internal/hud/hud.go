// Package hud provides a data-driven heads-up display for showing the
// hovered tile, the pawn's navigation state and the camera zoom.
package hud

import (
	"fmt"
	"image/color"

	"modzero.net/monstrous/internal/core/grid"
	"modzero.net/monstrous/internal/pawn"
	"modzero.net/monstrous/internal/render"
	"modzero.net/monstrous/internal/world/terrain"
)

// Panel anchors
const (
	TopLeft     = "top-left"
	TopRight    = "top-right"
	BottomLeft  = "bottom-left"
	BottomRight = "bottom-right"
)

// HUDConfig defines what to display in the HUD
type HUDConfig struct {
	ShowTerrain bool    `json:"show_terrain"` // Describe the tile under the cursor
	ShowPawn    bool    `json:"show_pawn"`    // Show pawn position and state
	ShowZoom    bool    `json:"show_zoom"`    // Show camera zoom
	Position    string  `json:"position"`     // "top-left", "top-right", "bottom-left", "bottom-right"
	Opacity     float64 `json:"opacity"`      // Background opacity (0-1)
}

// DefaultConfig returns a sensible default HUD configuration
func DefaultConfig() *HUDConfig {
	return &HUDConfig{
		ShowTerrain: true,
		ShowPawn:    true,
		ShowZoom:    true,
		Position:    TopLeft,
		Opacity:     0.7,
	}
}

// ValidPosition reports whether p names a panel anchor.
func ValidPosition(p string) bool {
	switch p {
	case TopLeft, TopRight, BottomLeft, BottomRight:
		return true
	}
	return false
}

// TileReport describes the hovered tile.
type TileReport struct {
	Tile    grid.Tile
	Terrain *terrain.Definition // nil when the field has no cell there
}

// PawnReport describes the pawn.
type PawnReport struct {
	Position       grid.Tile
	State          pawn.State
	Destination    grid.Tile
	HasDestination bool
}

// Snapshot is the data shown for one frame.
type Snapshot struct {
	Hover *TileReport // nil when the cursor is off the grid
	Pawn  PawnReport
	Zoom  float64
}

// Layout constants
const (
	margin     = 10
	padding    = 8
	lineHeight = 18
)

var (
	panelColor  = color.RGBA{20, 20, 30, 255}
	borderColor = color.RGBA{60, 60, 80, 255}
	textColor   = color.RGBA{240, 240, 240, 255}
	shadowColor = color.RGBA{0, 0, 0, 255}
)

// HUD manages the heads-up display
type HUD struct {
	config       *HUDConfig
	screenWidth  int
	screenHeight int

	snapshot Snapshot
	lines    []string
}

// New creates a new HUD with the given configuration
func New(config *HUDConfig, screenWidth, screenHeight int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{
		config:       config,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// SetScreenSize updates the screen dimensions
func (h *HUD) SetScreenSize(width, height int) {
	h.screenWidth = width
	h.screenHeight = height
}

// Update replaces the displayed data.
func (h *HUD) Update(s Snapshot) {
	h.snapshot = s
	h.lines = h.compose()
}

// Lines returns the text rows of the panel, top to bottom.
func (h *HUD) Lines() []string {
	return h.lines
}

func (h *HUD) compose() []string {
	var lines []string
	s := h.snapshot

	if h.config.ShowTerrain && s.Hover != nil {
		line := fmt.Sprintf("Tile (%d, %d)", s.Hover.Tile.X, s.Hover.Tile.Y)
		if def := s.Hover.Terrain; def != nil {
			line += fmt.Sprintf(": %s - %s (support %.0f)", def.Label, def.Description, def.Support)
		}
		lines = append(lines, line)
	}

	if h.config.ShowPawn {
		p := s.Pawn
		line := fmt.Sprintf("Pawn (%d, %d) %s", p.Position.X, p.Position.Y, p.State)
		if p.State == pawn.Stepping && p.HasDestination {
			line += fmt.Sprintf(" to (%d, %d)", p.Destination.X, p.Destination.Y)
		}
		lines = append(lines, line)
	}

	if h.config.ShowZoom {
		lines = append(lines, fmt.Sprintf("Zoom %.2fx", s.Zoom))
	}

	return lines
}

// panelSize measures the panel needed for the current lines.
func (h *HUD) panelSize(r render.Renderer) (int, int) {
	width := 0
	for _, line := range h.lines {
		if w, _ := r.MeasureText(line, 1.0); w > width {
			width = w
		}
	}
	return width + 2*padding, len(h.lines)*lineHeight + 2*padding
}

// calculatePosition returns the top-left corner of a panel of the given size
func (h *HUD) calculatePosition(width, height int) (int, int) {
	switch h.config.Position {
	case TopRight:
		return h.screenWidth - width - margin, margin
	case BottomLeft:
		return margin, h.screenHeight - height - margin
	case BottomRight:
		return h.screenWidth - width - margin, h.screenHeight - height - margin
	default: // "top-left"
		return margin, margin
	}
}

// Draw renders the HUD to the screen
func (h *HUD) Draw(screen render.Image, r render.Renderer) {
	if r == nil || len(h.lines) == 0 {
		return
	}

	width, height := h.panelSize(r)
	x, y := h.calculatePosition(width, height)

	alpha := uint8(h.config.Opacity * 255)
	r.FillRect(screen, float32(x), float32(y), float32(width), float32(height), withAlpha(panelColor, alpha))
	r.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 1, withAlpha(borderColor, alpha))

	currentY := y + padding
	for _, line := range h.lines {
		// Shadow
		r.DrawText(screen, line, x+padding+1, currentY+1, shadowColor, 1.0)
		r.DrawText(screen, line, x+padding, currentY, textColor, 1.0)
		currentY += lineHeight
	}
}

// withAlpha returns c with premultiplied alpha a.
func withAlpha(c color.RGBA, a uint8) color.RGBA {
	scale := float64(a) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * scale),
		G: uint8(float64(c.G) * scale),
		B: uint8(float64(c.B) * scale),
		A: a,
	}
}
