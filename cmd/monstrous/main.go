package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"modzero.net/monstrous/internal/game"
	"modzero.net/monstrous/internal/logger"
	"modzero.net/monstrous/internal/placeholders"
	ebitenrender "modzero.net/monstrous/internal/render/ebiten"
	"modzero.net/monstrous/internal/simulation"
	"modzero.net/monstrous/internal/world/atlas"
	"modzero.net/monstrous/internal/world/terrain"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the game config")
	tilesetPath := flag.String("tileset", "", "override the tileset image from the config")
	flag.Parse()

	logger.Init()
	log := logger.Log

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}
	if *tilesetPath != "" {
		cfg.Assets.Tileset = *tilesetPath
	}

	catalog, err := cfg.LoadCatalog()
	if err != nil {
		log.WithError(err).Fatal("failed to load terrain catalog")
	}
	policy, err := cfg.BuildPolicy(catalog)
	if err != nil {
		log.WithError(err).Fatal("failed to build terrain policy")
	}
	field, err := terrain.Generate(cfg.GridSize(), catalog, policy)
	if err != nil {
		log.WithError(err).Fatal("failed to generate terrain")
	}

	summary := logrus.Fields{"width": cfg.Grid.Width, "height": cfg.Grid.Height, "policy": cfg.Terrain.Policy.Kind}
	for i, n := range field.Counts() {
		def, _ := catalog.Definition(i)
		summary[def.Name] = n
	}
	log.WithFields(summary).Info("terrain generated")

	// Initialize the renderer backend (ebiten)
	renderer, err := ebitenrender.NewRenderer()
	if err != nil {
		log.WithError(err).Fatal("failed to create renderer")
	}
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	tileWidth, tileHeight := cfg.TilePixels()
	tileset, err := atlas.LoadAtlas(cfg.Assets.Tileset, tileWidth, tileHeight, loader)
	if err != nil {
		log.WithError(err).Warn("tileset unavailable, using generated placeholders")
		img := renderer.NewImageFromImage(placeholders.TerrainTileset(catalog, tileWidth, tileHeight, cfg.Assets.PawnTextureIndex))
		if tileset, err = atlas.New(img, tileWidth, tileHeight); err != nil {
			log.WithError(err).Fatal("failed to build placeholder tileset")
		}
	}

	g := game.New(cfg, field, inputMgr, log)
	g.Renderer = renderer
	g.Clock = engine
	g.Tileset = tileset

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)

	log.Info("starting game")
	if err := engine.RunGame(g); err != nil {
		log.WithError(err).Fatal("game loop failed")
	}
}
