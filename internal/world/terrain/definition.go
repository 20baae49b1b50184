// Package terrain holds the static terrain catalog and the generated terrain field.
package terrain

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	// ErrInvalidTerrainIndex means a cell references a definition outside the catalog.
	ErrInvalidTerrainIndex = errors.New("invalid terrain index")
	// ErrEmptyCatalog is returned when a catalog has no definitions.
	ErrEmptyCatalog = errors.New("terrain catalog is empty")
)

// Definition describes one terrain type's appearance and gameplay attributes
type Definition struct {
	Label        string  `json:"label"`         // Display name (e.g., "Grass")
	Name         string  `json:"name"`          // Identifier (e.g., "grass")
	Description  string  `json:"description"`   // Flavor text
	TextureIndex uint32  `json:"texture_index"` // Sprite index in the tileset atlas
	Support      float64 `json:"support"`       // Load-bearing capacity
}

// CatalogFile is the JSON layout of a terrain pack
type CatalogFile struct {
	Terrains []Definition `json:"terrains"`
}

// Catalog is an ordered, immutable list of terrain definitions. Cells refer
// to definitions by their position in the catalog.
type Catalog struct {
	defs   []Definition
	byName map[string]int
}

// NewCatalog creates a catalog from an ordered list of definitions.
func NewCatalog(defs []Definition) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		defs:   make([]Definition, len(defs)),
		byName: make(map[string]int, len(defs)),
	}
	copy(c.defs, defs)

	for i, def := range c.defs {
		if def.Name == "" {
			return nil, fmt.Errorf("terrain %d has no name", i)
		}
		if prev, exists := c.byName[def.Name]; exists {
			return nil, fmt.Errorf("duplicate terrain name %q at %d and %d", def.Name, prev, i)
		}
		c.byName[def.Name] = i
	}

	return c, nil
}

// DefaultCatalog returns the built-in terrain catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog([]Definition{
		{
			Label:        "Mud",
			Name:         "mud",
			Description:  "Soil saturated with water.",
			TextureIndex: 13,
			Support:      20,
		},
		{
			Label:        "Grass",
			Name:         "grass",
			Description:  "Green. Try to touch it.",
			TextureIndex: 14,
			Support:      40,
		},
		{
			Label:        "Sand",
			Name:         "sand",
			Description:  "Gets everywhere.",
			TextureIndex: 15,
			Support:      20,
		},
	})
	if err != nil {
		panic(err)
	}
	return c
}

// LoadCatalog loads a terrain catalog from a JSON file
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read terrain catalog %s: %w", path, err)
	}

	var file CatalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse terrain catalog %s: %w", path, err)
	}

	c, err := NewCatalog(file.Terrains)
	if err != nil {
		return nil, fmt.Errorf("terrain catalog %s: %w", path, err)
	}
	return c, nil
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// Definition returns the definition at index i.
func (c *Catalog) Definition(i int) (Definition, error) {
	if i < 0 || i >= len(c.defs) {
		return Definition{}, fmt.Errorf("terrain %d of %d: %w", i, len(c.defs), ErrInvalidTerrainIndex)
	}
	return c.defs[i], nil
}

// IndexOf returns the catalog index of the named terrain.
func (c *Catalog) IndexOf(name string) (int, bool) {
	i, ok := c.byName[name]
	return i, ok
}

// Definitions returns a copy of all definitions in catalog order.
func (c *Catalog) Definitions() []Definition {
	out := make([]Definition, len(c.defs))
	copy(out, c.defs)
	return out
}

// MaxTextureIndex returns the highest texture index referenced by the catalog.
func (c *Catalog) MaxTextureIndex() uint32 {
	var max uint32
	for _, def := range c.defs {
		if def.TextureIndex > max {
			max = def.TextureIndex
		}
	}
	return max
}
