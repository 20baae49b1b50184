// Package placeholders draws stand-in tileset graphics so the game runs
// without art assets.
package placeholders

import (
	"hash/fnv"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"modzero.net/monstrous/internal/world/terrain"
)

// Columns is the width of generated tilesets, in tiles
const Columns = 8

// swatch is how a terrain is drawn
type swatch struct {
	Base    color.RGBA
	Pattern string
}

// Swatches maps terrain names to their placeholder look
var Swatches = map[string]swatch{
	"mud":   {Base: color.RGBA{92, 64, 40, 255}, Pattern: "dots"},
	"grass": {Base: color.RGBA{62, 128, 54, 255}, Pattern: "cross"},
	"sand":  {Base: color.RGBA{214, 190, 120, 255}, Pattern: "diagonal"},
}

// ColorPalette defines colors for tiles that are not terrain
var ColorPalette = struct {
	Pawn       color.RGBA
	PawnEdge   color.RGBA
	Filler     color.RGBA
	Border     color.RGBA
	Background color.RGBA
}{
	Pawn:       color.RGBA{0, 255, 100, 255}, // Bright green
	PawnEdge:   color.RGBA{0, 120, 50, 255},  // Dark green
	Filler:     color.RGBA{60, 55, 50, 255},  // Dark stone
	Border:     color.RGBA{90, 85, 80, 255},  // Stone edge
	Background: color.RGBA{0, 0, 0, 0},       // Transparent
}

// CreateSolidTile creates a simple solid-colored tile
func CreateSolidTile(width, height int, col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreateBorderedTile creates a tile with a border
func CreateBorderedTile(width, height int, fillColor, borderColor color.RGBA, borderWidth int) *image.RGBA {
	img := CreateSolidTile(width, height, fillColor)

	for i := 0; i < borderWidth; i++ {
		for x := 0; x < width; x++ {
			img.Set(x, i, borderColor)
			img.Set(x, height-1-i, borderColor)
		}
		for y := 0; y < height; y++ {
			img.Set(i, y, borderColor)
			img.Set(width-1-i, y, borderColor)
		}
	}

	return img
}

// CreatePatternedTile creates a tile with a simple pattern
func CreatePatternedTile(width, height int, baseColor, patternColor color.RGBA, pattern string) *image.RGBA {
	img := CreateSolidTile(width, height, baseColor)

	switch pattern {
	case "grid":
		for y := 0; y < height; y += 4 {
			for x := 0; x < width; x++ {
				img.Set(x, y, patternColor)
			}
		}
		for x := 0; x < width; x += 4 {
			for y := 0; y < height; y++ {
				img.Set(x, y, patternColor)
			}
		}
	case "dots":
		xs := []int{width / 4, 3 * width / 4}
		ys := []int{height / 4, 3 * height / 4}
		for _, py := range ys {
			for _, px := range xs {
				for dy := 0; dy < 2; dy++ {
					for dx := 0; dx < 2; dx++ {
						img.Set(px+dx, py+dy, patternColor)
					}
				}
			}
		}
	case "cross":
		midX, midY := width/2, height/2
		for y := 2; y < height-2; y++ {
			img.Set(midX, y, patternColor)
		}
		for x := 2; x < width-2; x++ {
			img.Set(x, midY, patternColor)
		}
	case "diagonal":
		for x := 0; x < width; x++ {
			y := x * height / width
			img.Set(x, y, patternColor)
			img.Set(x, height-1-y, patternColor)
		}
	}

	return img
}

// CreateCircle creates a circular sprite centered on a transparent tile.
// The radius fits the shorter side.
func CreateCircle(width, height int, fillColor, outlineColor color.RGBA) *image.RGBA {
	img := CreateSolidTile(width, height, ColorPalette.Background)

	cx, cy := width/2, height/2
	radius := min(width, height)/2 - 2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx := x - cx
			dy := y - cy
			distSq := dx*dx + dy*dy

			if distSq <= radius*radius {
				img.Set(x, y, fillColor)
			} else if distSq <= (radius+1)*(radius+1) {
				img.Set(x, y, outlineColor)
			}
		}
	}

	return img
}

// CreateAtlas creates a sprite atlas from multiple tiles of one size
func CreateAtlas(tiles []*image.RGBA, width, height, columns int) *image.RGBA {
	rows := (len(tiles) + columns - 1) / columns
	atlas := image.NewRGBA(image.Rect(0, 0, columns*width, rows*height))
	draw.Draw(atlas, atlas.Bounds(), &image.Uniform{ColorPalette.Background}, image.Point{}, draw.Src)

	for i, tile := range tiles {
		if tile == nil {
			continue
		}
		x := i % columns * width
		y := i / columns * height
		draw.Draw(atlas, image.Rect(x, y, x+width, y+height), tile, image.Point{}, draw.Src)
	}

	return atlas
}

// TerrainTileset builds a tileset of width x height tiles covering every
// texture index the catalog uses plus the pawn sprite. Unused indices get a
// plain filler tile so random policies over wider texture ranges still render.
func TerrainTileset(catalog *terrain.Catalog, width, height int, pawnIndex uint32) *image.RGBA {
	count := int(catalog.MaxTextureIndex()) + 1
	if int(pawnIndex) >= count {
		count = int(pawnIndex) + 1
	}

	tiles := make([]*image.RGBA, count)
	for i := range tiles {
		tiles[i] = CreateBorderedTile(width, height, ColorPalette.Filler, ColorPalette.Border, 1)
	}

	for _, def := range catalog.Definitions() {
		s, ok := Swatches[def.Name]
		if !ok {
			s = swatch{Base: nameColor(def.Name), Pattern: "grid"}
		}
		tiles[def.TextureIndex] = CreatePatternedTile(width, height, s.Base, Darken(s.Base, 0.7), s.Pattern)
	}

	tiles[pawnIndex] = CreateCircle(width, height, ColorPalette.Pawn, ColorPalette.PawnEdge)

	return CreateAtlas(tiles, width, height, Columns)
}

// nameColor derives a stable color for terrains without a swatch.
func nameColor(name string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(name))
	sum := h.Sum32()
	return color.RGBA{R: uint8(sum), G: uint8(sum >> 8), B: uint8(sum >> 16), A: 255}
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
