package placeholders

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"modzero.net/monstrous/internal/world/terrain"
)

func TestTerrainTilesetCoversCatalog(t *testing.T) {
	img := TerrainTileset(terrain.DefaultCatalog(), 32, 32, 0)

	// Texture indices run to 15, so two rows of eight
	if b := img.Bounds(); b.Dx() != 8*32 || b.Dy() != 2*32 {
		t.Fatalf("Expected 256x64 tileset, got %v", b)
	}

	// Grass is index 14: column 6, row 1. Its corner pixel is the base color.
	got := img.RGBAAt(6*32, 32)
	if want := Swatches["grass"].Base; got != want {
		t.Errorf("Expected grass color %v, got %v", want, got)
	}

	// The pawn circle is transparent at its corner and filled at its center
	if a := img.RGBAAt(0, 0).A; a != 0 {
		t.Errorf("Expected transparent pawn corner, got alpha %d", a)
	}
	if got := img.RGBAAt(16, 16); got != ColorPalette.Pawn {
		t.Errorf("Expected pawn color at center, got %v", got)
	}

	// Unused indices get filler tiles
	if got := img.RGBAAt(2*32+5, 5); got != ColorPalette.Filler {
		t.Errorf("Expected filler at index 2, got %v", got)
	}
}

func TestTerrainTilesetUnknownTerrain(t *testing.T) {
	c, err := terrain.NewCatalog([]terrain.Definition{{Name: "lava", TextureIndex: 1}})
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}

	img := TerrainTileset(c, 16, 16, 9)
	if b := img.Bounds(); b.Dx() != 8*16 || b.Dy() != 2*16 {
		t.Fatalf("Expected room for pawn index 9, got %v", b)
	}
	if got := img.RGBAAt(16+1, 1); got != nameColor("lava") {
		t.Errorf("Expected derived lava color, got %v", got)
	}
}

func TestTerrainTilesetNonSquareTiles(t *testing.T) {
	img := TerrainTileset(terrain.DefaultCatalog(), 32, 16, 0)

	if b := img.Bounds(); b.Dx() != 8*32 || b.Dy() != 2*16 {
		t.Fatalf("Expected 256x32 tileset, got %v", b)
	}
	// Grass is index 14: column 6, row 1
	if got, want := img.RGBAAt(6*32, 16), Swatches["grass"].Base; got != want {
		t.Errorf("Expected grass color %v, got %v", want, got)
	}
	if got := img.RGBAAt(16, 8); got != ColorPalette.Pawn {
		t.Errorf("Expected pawn color at center, got %v", got)
	}
}

func TestCreateBorderedTile(t *testing.T) {
	fill := color.RGBA{10, 20, 30, 255}
	border := color.RGBA{200, 200, 200, 255}
	img := CreateBorderedTile(8, 8, fill, border, 1)

	if img.RGBAAt(0, 4) != border || img.RGBAAt(7, 4) != border {
		t.Error("Expected border on left and right edges")
	}
	if img.RGBAAt(4, 4) != fill {
		t.Error("Expected fill in the middle")
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tileset.png")
	if err := SavePNG(TerrainTileset(terrain.DefaultCatalog(), 8, 8, 0), path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open PNG: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 16 {
		t.Errorf("Expected 64x16, got %v", b)
	}
}
