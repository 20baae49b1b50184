package atlas

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"modzero.net/monstrous/internal/render"
)

type fakeImage struct {
	bounds   image.Rectangle
	drawn    int
	disposed int
	lastGeoM *fakeGeoM
}

func (f *fakeImage) Bounds() image.Rectangle { return f.bounds }
func (f *fakeImage) Size() (int, int)        { return f.bounds.Dx(), f.bounds.Dy() }
func (f *fakeImage) SubImage(r image.Rectangle) render.Image {
	return &fakeImage{bounds: r.Intersect(f.bounds)}
}
func (f *fakeImage) Fill(color.Color) {}
func (f *fakeImage) DrawImage(_ render.Image, opts *render.DrawImageOptions) {
	f.drawn++
	if g, ok := opts.GeoM.(*fakeGeoM); ok {
		f.lastGeoM = g
	}
}
func (f *fakeImage) Dispose() { f.disposed++ }

type fakeGeoM struct {
	sx, sy, tx, ty float64
}

func (g *fakeGeoM) Translate(tx, ty float64) { g.tx, g.ty = g.tx+tx, g.ty+ty }
func (g *fakeGeoM) Scale(sx, sy float64)     { g.sx, g.sy = sx, sy }

type fakeLoader struct {
	img render.Image
	err error
}

func (l fakeLoader) LoadImage(string) (render.Image, error) { return l.img, l.err }

func init() {
	if render.NewGeoM == nil {
		render.NewGeoM = func() render.GeoM { return &fakeGeoM{} }
	}
}

func TestTileRect(t *testing.T) {
	a, err := New(&fakeImage{bounds: image.Rect(0, 0, 256, 64)}, 32, 32)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if a.Len() != 16 {
		t.Errorf("Expected 16 tiles, got %d", a.Len())
	}

	rect, err := a.TileRect(13)
	if err != nil {
		t.Fatalf("TileRect failed: %v", err)
	}
	if want := image.Rect(160, 32, 192, 64); rect != want {
		t.Errorf("Expected %v, got %v", want, rect)
	}

	if _, err := a.TileRect(16); !errors.Is(err, ErrNoSuchTile) {
		t.Errorf("Expected ErrNoSuchTile, got %v", err)
	}
}

func TestTileRectOffsetImage(t *testing.T) {
	a, err := New(&fakeImage{bounds: image.Rect(64, 64, 128, 96)}, 32, 32)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	rect, _ := a.TileRect(1)
	if want := image.Rect(96, 64, 128, 96); rect != want {
		t.Errorf("Expected %v, got %v", want, rect)
	}
}

func TestTileIsCached(t *testing.T) {
	a, _ := New(&fakeImage{bounds: image.Rect(0, 0, 64, 64)}, 32, 32)

	first, err := a.Tile(3)
	if err != nil {
		t.Fatalf("Tile failed: %v", err)
	}
	second, _ := a.Tile(3)
	if first != second {
		t.Error("Expected cached sub-image to be reused")
	}
	if first.Bounds() != image.Rect(32, 32, 64, 64) {
		t.Errorf("Unexpected tile bounds %v", first.Bounds())
	}
}

func TestDrawTile(t *testing.T) {
	a, _ := New(&fakeImage{bounds: image.Rect(0, 0, 64, 64)}, 32, 32)
	dst := &fakeImage{bounds: image.Rect(0, 0, 100, 100)}

	if err := a.DrawTile(dst, 0, 10, 10, 1, 1); err != nil {
		t.Fatalf("DrawTile failed: %v", err)
	}
	if err := a.DrawTile(dst, 99, 10, 10, 1, 1); err == nil {
		t.Error("Expected error for missing tile")
	}
	if dst.drawn != 1 {
		t.Errorf("Expected 1 draw, got %d", dst.drawn)
	}
}

func TestDrawTileScalesPerAxis(t *testing.T) {
	a, _ := New(&fakeImage{bounds: image.Rect(0, 0, 64, 64)}, 32, 32)
	dst := &fakeImage{bounds: image.Rect(0, 0, 100, 100)}

	// A square atlas tile stretched over a 64x16 grid tile
	sx, sy := a.ScaleTo(64, 16)
	if sx != 2 || sy != 0.5 {
		t.Fatalf("Expected scale (2, 0.5), got (%v, %v)", sx, sy)
	}
	if err := a.DrawTile(dst, 1, 5, 7, sx, sy); err != nil {
		t.Fatalf("DrawTile failed: %v", err)
	}

	g := dst.lastGeoM
	if g == nil {
		t.Fatal("Expected a transform to be passed")
	}
	if g.sx != 2 || g.sy != 0.5 || g.tx != 5 || g.ty != 7 {
		t.Errorf("Expected scale (2,0.5) at (5,7), got %+v", *g)
	}
}

func TestNonSquareTiles(t *testing.T) {
	a, err := New(&fakeImage{bounds: image.Rect(0, 0, 64, 32)}, 32, 16)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if a.Len() != 4 {
		t.Errorf("Expected 4 tiles, got %d", a.Len())
	}
	rect, _ := a.TileRect(3)
	if rect != image.Rect(32, 16, 64, 32) {
		t.Errorf("Expected (32,16)-(64,32), got %v", rect)
	}
}

func TestDispose(t *testing.T) {
	img := &fakeImage{bounds: image.Rect(0, 0, 64, 64)}
	a, _ := New(img, 32, 32)
	a.Tile(0)

	a.Dispose()
	a.Dispose()

	if img.disposed != 1 {
		t.Errorf("Expected image disposed once, got %d", img.disposed)
	}
	if _, err := a.Tile(0); !errors.Is(err, ErrDisposed) {
		t.Errorf("Expected ErrDisposed, got %v", err)
	}
	dst := &fakeImage{bounds: image.Rect(0, 0, 10, 10)}
	if err := a.DrawTile(dst, 0, 0, 0, 1, 1); err == nil || dst.drawn != 0 {
		t.Errorf("Expected no draw after Dispose, got err=%v drawn=%d", err, dst.drawn)
	}
}

func TestNewRejectsBadDimensions(t *testing.T) {
	img := &fakeImage{bounds: image.Rect(0, 0, 16, 16)}

	if _, err := New(img, 0, 32); err == nil {
		t.Error("Expected error for zero tile width")
	}
	if _, err := New(img, 32, 32); err == nil {
		t.Error("Expected error for image smaller than a tile")
	}
}

func TestLoadAtlas(t *testing.T) {
	loader := fakeLoader{img: &fakeImage{bounds: image.Rect(0, 0, 64, 32)}}
	a, err := LoadAtlas("tileset.png", 32, 32, loader)
	if err != nil {
		t.Fatalf("LoadAtlas failed: %v", err)
	}
	if a.Len() != 2 {
		t.Errorf("Expected 2 tiles, got %d", a.Len())
	}

	if _, err := LoadAtlas("missing.png", 32, 32, fakeLoader{err: errors.New("not found")}); err == nil {
		t.Error("Expected load error")
	}
}
