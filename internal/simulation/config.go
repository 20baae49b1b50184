// Package simulation provides the static configuration for a game session.
// Values are loaded from a JSON file over built-in defaults.
package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"modzero.net/monstrous/internal/core/grid"
	"modzero.net/monstrous/internal/hud"
	"modzero.net/monstrous/internal/render"
	"modzero.net/monstrous/internal/world/terrain"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Policy kinds
const (
	PolicyFixed      = "fixed"
	PolicyRandom     = "random"
	PolicyExpression = "expression"
)

// Config holds all settings for a game session
type Config struct {
	Window  WindowConfig  `json:"window"`
	Grid    GridConfig    `json:"grid"`
	Tile    TileConfig    `json:"tile"`
	Pawn    PawnConfig    `json:"pawn"`
	Input   InputConfig   `json:"input"`
	Terrain TerrainConfig `json:"terrain"`
	Assets  AssetsConfig  `json:"assets"`
	HUD     hud.HUDConfig `json:"hud"`
}

// WindowConfig defines the initial window
type WindowConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
}

// GridConfig defines the map size in tiles
type GridConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// TileConfig defines the size of one tile in world units (pixels at zoom 1)
type TileConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PawnConfig defines pawn movement
type PawnConfig struct {
	Speed float64 `json:"speed"` // Tiles per second
}

// InputConfig maps actions to mouse buttons ("left", "right", "middle")
type InputConfig struct {
	NavigateButton string  `json:"navigate_button"`
	PanButton      string  `json:"pan_button"`
	KeyPanSpeed    float64 `json:"key_pan_speed"` // Screen pixels per second for arrow keys
}

// TerrainConfig defines the terrain catalog and how cells are assigned
type TerrainConfig struct {
	CatalogPath string       `json:"catalog_path"` // Empty uses the built-in catalog
	Policy      PolicyConfig `json:"policy"`
}

// PolicyConfig selects a terrain assignment policy
type PolicyConfig struct {
	Kind       string `json:"kind"`       // "fixed", "random" or "expression"
	Index      int    `json:"index"`      // fixed: catalog index
	Min        int    `json:"min"`        // random: lowest catalog index
	Max        int    `json:"max"`        // random: highest catalog index
	Seed       int64  `json:"seed"`       // random: RNG seed
	Expression string `json:"expression"` // expression: per-cell formula
}

// AssetsConfig locates art assets
type AssetsConfig struct {
	Tileset          string `json:"tileset"`
	PawnTextureIndex uint32 `json:"pawn_texture_index"`
}

// DefaultConfig returns the prototype's settings
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1270,
			Height: 720,
			Title:  "Monstrous",
		},
		Grid: GridConfig{
			Width:  320,
			Height: 320,
		},
		Tile: TileConfig{
			Width:  32,
			Height: 32,
		},
		Pawn: PawnConfig{
			Speed: 1.0,
		},
		Input: InputConfig{
			NavigateButton: "right",
			PanButton:      "middle",
			KeyPanSpeed:    600,
		},
		Terrain: TerrainConfig{
			Policy: PolicyConfig{
				Kind:  PolicyFixed,
				Index: 1, // Grass
				Min:   0,
				Max:   2,
			},
		},
		Assets: AssetsConfig{
			Tileset:          "assets/tileset.png",
			PawnTextureIndex: 0,
		},
		HUD: *hud.DefaultConfig(),
	}
}

// LoadConfig loads config from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the config for values the game cannot run with
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("%w: grid size %dx%d", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	}
	// Tiles are sliced from the tileset in whole pixels
	if !wholePixels(c.Tile.Width) || !wholePixels(c.Tile.Height) {
		return fmt.Errorf("%w: tile size %vx%v", ErrInvalidConfig, c.Tile.Width, c.Tile.Height)
	}
	if !(c.Pawn.Speed > 0) {
		return fmt.Errorf("%w: pawn speed %v", ErrInvalidConfig, c.Pawn.Speed)
	}
	if c.Input.KeyPanSpeed < 0 {
		return fmt.Errorf("%w: key pan speed %v", ErrInvalidConfig, c.Input.KeyPanSpeed)
	}
	if _, ok := render.ParseMouseButton(c.Input.NavigateButton); !ok {
		return fmt.Errorf("%w: navigate button %q", ErrInvalidConfig, c.Input.NavigateButton)
	}
	if _, ok := render.ParseMouseButton(c.Input.PanButton); !ok {
		return fmt.Errorf("%w: pan button %q", ErrInvalidConfig, c.Input.PanButton)
	}
	if c.Input.NavigateButton == c.Input.PanButton {
		return fmt.Errorf("%w: navigate and pan share button %q", ErrInvalidConfig, c.Input.PanButton)
	}

	switch c.Terrain.Policy.Kind {
	case PolicyFixed, PolicyRandom:
	case PolicyExpression:
		if c.Terrain.Policy.Expression == "" {
			return fmt.Errorf("%w: expression policy without expression", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: terrain policy %q", ErrInvalidConfig, c.Terrain.Policy.Kind)
	}

	if !hud.ValidPosition(c.HUD.Position) {
		return fmt.Errorf("%w: hud position %q", ErrInvalidConfig, c.HUD.Position)
	}
	if c.HUD.Opacity < 0 || c.HUD.Opacity > 1 {
		return fmt.Errorf("%w: hud opacity %v", ErrInvalidConfig, c.HUD.Opacity)
	}

	return nil
}

func wholePixels(v float64) bool {
	return v >= 1 && v == math.Trunc(v) && !math.IsInf(v, 0)
}

// TilePixels returns the tile size in whole pixels, for slicing tilesets.
func (c *Config) TilePixels() (width, height int) {
	return int(c.Tile.Width), int(c.Tile.Height)
}

// GridSize returns the map dimensions.
func (c *Config) GridSize() grid.Size {
	return grid.Size{Width: c.Grid.Width, Height: c.Grid.Height}
}

// TileSize returns the tile dimensions in world units.
func (c *Config) TileSize() grid.TileSize {
	return grid.TileSize{Width: c.Tile.Width, Height: c.Tile.Height}
}

// Layout returns the grid layout centered on the world origin.
func (c *Config) Layout() grid.Layout {
	return grid.NewLayout(c.GridSize(), c.TileSize())
}

// NavigateButton returns the mouse button that sets destinations.
func (c *Config) NavigateButton() render.MouseButton {
	b, _ := render.ParseMouseButton(c.Input.NavigateButton)
	return b
}

// PanButton returns the mouse button that drags the camera.
func (c *Config) PanButton() render.MouseButton {
	b, _ := render.ParseMouseButton(c.Input.PanButton)
	return b
}

// LoadCatalog returns the configured terrain catalog.
func (c *Config) LoadCatalog() (*terrain.Catalog, error) {
	if c.Terrain.CatalogPath == "" {
		return terrain.DefaultCatalog(), nil
	}
	return terrain.LoadCatalog(c.Terrain.CatalogPath)
}

// BuildPolicy creates the configured terrain assignment policy.
func (c *Config) BuildPolicy(catalog *terrain.Catalog) (terrain.Policy, error) {
	p := c.Terrain.Policy
	switch p.Kind {
	case PolicyFixed:
		return terrain.Fixed{Index: p.Index}, nil
	case PolicyRandom:
		return terrain.NewRandom(p.Min, p.Max, p.Seed)
	case PolicyExpression:
		return terrain.NewExpression(p.Expression, catalog)
	default:
		return nil, fmt.Errorf("%w: terrain policy %q", ErrInvalidConfig, p.Kind)
	}
}
