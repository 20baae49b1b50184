package terrain

import (
	"fmt"

	"modzero.net/monstrous/internal/core/grid"
)

// Cell associates a tile with a terrain definition in the catalog
type Cell struct {
	Tile    grid.Tile
	Terrain int // Index into the catalog
}

// Field is a fixed-size grid of terrain cells. It is read-only once generated.
type Field struct {
	size    grid.Size
	catalog *Catalog
	cells   []Cell // Row-major, y*width + x
}

// Generate populates every cell of a width x height field using the policy.
// It fails if the policy assigns an index outside the catalog.
func Generate(size grid.Size, catalog *Catalog, policy Policy) (*Field, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return nil, fmt.Errorf("invalid field size %dx%d", size.Width, size.Height)
	}
	if catalog == nil || catalog.Len() == 0 {
		return nil, ErrEmptyCatalog
	}

	f := &Field{
		size:    size,
		catalog: catalog,
		cells:   make([]Cell, size.Cells()),
	}

	for x := 0; x < size.Width; x++ {
		for y := 0; y < size.Height; y++ {
			tile := grid.Tile{X: x, Y: y}
			index, err := policy.Assign(tile, size)
			if err != nil {
				return nil, fmt.Errorf("assign terrain at %v: %w", tile, err)
			}
			if index < 0 || index >= catalog.Len() {
				return nil, fmt.Errorf("assign terrain at %v: index %d: %w", tile, index, ErrInvalidTerrainIndex)
			}
			f.cells[y*size.Width+x] = Cell{Tile: tile, Terrain: index}
		}
	}

	return f, nil
}

// Size returns the field dimensions.
func (f *Field) Size() grid.Size {
	return f.size
}

// Catalog returns the catalog the field was generated against.
func (f *Field) Catalog() *Catalog {
	return f.catalog
}

// At returns the cell at t.
func (f *Field) At(t grid.Tile) (Cell, bool) {
	if !f.size.Contains(t) {
		return Cell{}, false
	}
	return f.cells[t.Y*f.size.Width+t.X], true
}

// DefinitionOf looks up the terrain definition for a cell.
func (f *Field) DefinitionOf(c Cell) (Definition, error) {
	return f.catalog.Definition(c.Terrain)
}

// MustDefinitionOf is DefinitionOf for cells produced by Generate. An invalid
// index there is a programming error, so it panics.
func (f *Field) MustDefinitionOf(c Cell) Definition {
	def, err := f.DefinitionOf(c)
	if err != nil {
		panic(err)
	}
	return def
}

// TextureIndexAt returns the texture index of the terrain at t.
func (f *Field) TextureIndexAt(t grid.Tile) (uint32, bool) {
	c, ok := f.At(t)
	if !ok {
		return 0, false
	}
	return f.MustDefinitionOf(c).TextureIndex, true
}

// Counts returns how many cells use each catalog entry, in catalog order.
func (f *Field) Counts() []int {
	counts := make([]int, f.catalog.Len())
	for _, c := range f.cells {
		counts[c.Terrain]++
	}
	return counts
}
