// Package atlas slices a tileset image into tiles addressed by texture index.
// Index 0 is the top-left tile; indices run left to right, then top to bottom.
package atlas

import (
	"errors"
	"fmt"
	"image"

	"modzero.net/monstrous/internal/render"
)

var (
	// ErrNoSuchTile is returned for texture indices outside the atlas.
	ErrNoSuchTile = errors.New("texture index outside atlas")
	// ErrDisposed is returned for lookups after Dispose.
	ErrDisposed = errors.New("atlas disposed")
)

// Atlas represents a loaded tileset
type Atlas struct {
	Image      render.Image
	TileWidth  int
	TileHeight int
	columns    int
	rows       int
	tiles      map[uint32]render.Image // Sub-image cache
	disposed   bool
}

// New creates an atlas over an already loaded image.
func New(img render.Image, tileWidth, tileHeight int) (*Atlas, error) {
	if tileWidth <= 0 || tileHeight <= 0 {
		return nil, fmt.Errorf("invalid tile dimensions: %dx%d", tileWidth, tileHeight)
	}

	w, h := img.Size()
	columns, rows := w/tileWidth, h/tileHeight
	if columns == 0 || rows == 0 {
		return nil, fmt.Errorf("image %dx%d is smaller than one %dx%d tile", w, h, tileWidth, tileHeight)
	}

	return &Atlas{
		Image:      img,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		columns:    columns,
		rows:       rows,
		tiles:      make(map[uint32]render.Image),
	}, nil
}

// LoadAtlas loads a tileset image from disk
func LoadAtlas(path string, tileWidth, tileHeight int, loader render.ResourceLoader) (*Atlas, error) {
	img, err := loader.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load atlas image %s: %w", path, err)
	}

	a, err := New(img, tileWidth, tileHeight)
	if err != nil {
		return nil, fmt.Errorf("atlas %s: %w", path, err)
	}
	return a, nil
}

// Len returns the number of tiles in the atlas.
func (a *Atlas) Len() int {
	return a.columns * a.rows
}

// TileRect returns the pixel rectangle of a texture index within the atlas image.
func (a *Atlas) TileRect(index uint32) (image.Rectangle, error) {
	if int(index) >= a.Len() {
		return image.Rectangle{}, fmt.Errorf("texture %d of %d: %w", index, a.Len(), ErrNoSuchTile)
	}

	x := int(index) % a.columns * a.TileWidth
	y := int(index) / a.columns * a.TileHeight
	origin := a.Image.Bounds().Min

	return image.Rect(x, y, x+a.TileWidth, y+a.TileHeight).Add(origin), nil
}

// Tile returns the sub-image for a texture index
func (a *Atlas) Tile(index uint32) (render.Image, error) {
	if a.disposed {
		return nil, ErrDisposed
	}
	if img, ok := a.tiles[index]; ok {
		return img, nil
	}

	rect, err := a.TileRect(index)
	if err != nil {
		return nil, err
	}

	img := a.Image.SubImage(rect)
	a.tiles[index] = img
	return img, nil
}

// ScaleTo returns the per-axis scale that stretches one atlas tile over a
// width x height area.
func (a *Atlas) ScaleTo(width, height float64) (sx, sy float64) {
	return width / float64(a.TileWidth), height / float64(a.TileHeight)
}

// DrawTile draws a tile with its top-left corner at (x, y), scaled by sx and sy.
func (a *Atlas) DrawTile(dst render.Image, index uint32, x, y, sx, sy float64) error {
	img, err := a.Tile(index)
	if err != nil {
		return err
	}

	opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	opts.GeoM.Scale(sx, sy)
	opts.GeoM.Translate(x, y)
	dst.DrawImage(img, opts)

	return nil
}

// Dispose releases the atlas image. Sub-images share its pixels, so the
// cache is dropped and later lookups fail with ErrDisposed.
func (a *Atlas) Dispose() {
	if a.disposed {
		return
	}
	a.disposed = true
	a.tiles = nil
	a.Image.Dispose()
}
