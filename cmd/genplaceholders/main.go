package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"modzero.net/monstrous/internal/placeholders"
	"modzero.net/monstrous/internal/simulation"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the game config")
	out := flag.String("out", "", "output PNG (defaults to the configured tileset)")
	flag.Parse()

	fmt.Println("Monstrous Placeholder Tileset Generator")
	fmt.Println("=======================================")
	fmt.Println()

	if err := run(*configPath, *out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Done! Run the game to see your placeholders in action!")
}

func run(configPath, out string) error {
	cfg, err := simulation.LoadConfig(configPath)
	if err != nil {
		return err
	}
	catalog, err := cfg.LoadCatalog()
	if err != nil {
		return err
	}
	if out == "" {
		out = cfg.Assets.Tileset
	}

	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(out), err)
	}

	tileWidth, tileHeight := cfg.TilePixels()
	img := placeholders.TerrainTileset(catalog, tileWidth, tileHeight, cfg.Assets.PawnTextureIndex)
	if err := placeholders.SavePNG(img, out); err != nil {
		return fmt.Errorf("failed to save %s: %w", out, err)
	}

	b := img.Bounds()
	fmt.Printf("Created: %s (%dx%d, %d terrains)\n", out, b.Dx(), b.Dy(), catalog.Len())
	return nil
}
