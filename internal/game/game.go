// Package game drives one session: it turns input into pawn commands, advances
// navigation each tick and draws the world.
package game

import (
	"github.com/sirupsen/logrus"

	"modzero.net/monstrous/internal/camera"
	"modzero.net/monstrous/internal/core/grid"
	"modzero.net/monstrous/internal/hud"
	"modzero.net/monstrous/internal/logger"
	"modzero.net/monstrous/internal/pawn"
	"modzero.net/monstrous/internal/pointer"
	"modzero.net/monstrous/internal/render"
	"modzero.net/monstrous/internal/simulation"
	"modzero.net/monstrous/internal/world/atlas"
	"modzero.net/monstrous/internal/world/terrain"
)

// defaultTPS is assumed when no clock is attached.
const defaultTPS = 60

// Game holds all game state and logic.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Config       *simulation.Config
	Grid         grid.Layout
	Field        *terrain.Field
	Pawn         *pawn.Pawn
	Camera       *camera.Camera
	Resolver     *pointer.Resolver
	HUD          *hud.HUD

	// Engine collaborators; Renderer, Tileset and Clock may be nil in tests
	Renderer render.Renderer
	InputMgr render.InputManager
	Clock    render.Clock
	Tileset  *atlas.Atlas

	Log logrus.FieldLogger

	drag      dragState
	hover     hoverState
	diagTimer float64
}

// New creates a session over a generated field. The pawn starts on the
// center tile and the camera looks at the world origin.
func New(cfg *simulation.Config, field *terrain.Field, input render.InputManager, log logrus.FieldLogger) *Game {
	if log == nil {
		log = logger.Discard()
	}
	layout := cfg.Layout()

	return &Game{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		Config:       cfg,
		Grid:         layout,
		Field:        field,
		Pawn:         pawn.New(layout.Size.Center(), layout, cfg.Pawn.Speed, log.WithField("component", "pawn")),
		Camera:       camera.New(cfg.Window.Width, cfg.Window.Height),
		Resolver:     pointer.NewResolver(layout, cfg.NavigateButton(), log.WithField("component", "pointer")),
		HUD:          hud.New(&cfg.HUD, cfg.Window.Width, cfg.Window.Height),
		InputMgr:     input,
		Log:          log,
	}
}

// Update handles one engine tick: camera controls, then Tick.
func (g *Game) Update() error {
	dt := g.deltaTime()

	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		g.Log.Info("quit requested")
		if g.Tileset != nil {
			g.Tileset.Dispose()
		}
		return render.ErrQuit
	}

	events := g.collectPointerEvents()
	g.updateCamera(dt)
	g.Tick(dt, events)

	g.updateHover()
	g.HUD.Update(g.snapshot())
	g.logDiagnostics(dt)

	return nil
}

// Tick applies pointer events and then advances navigation by dt seconds.
// Events always land before movement so a click and the first bit of
// motion toward it happen in the same tick.
func (g *Game) Tick(dt float64, events []pointer.Event) {
	g.Resolver.Apply(events, g.Camera, g.Pawn)
	g.Pawn.Advance(dt)
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.ScreenWidth || outsideHeight != g.ScreenHeight {
		g.ScreenWidth = outsideWidth
		g.ScreenHeight = outsideHeight
		g.Camera.SetViewport(outsideWidth, outsideHeight)
		g.HUD.SetScreenSize(outsideWidth, outsideHeight)
	}
	return g.ScreenWidth, g.ScreenHeight
}

// HoveredTile returns the tile under the cursor as of the last Update.
func (g *Game) HoveredTile() (grid.Tile, bool) {
	return g.hover.Tile, g.hover.Valid
}

// CenterOnPawn moves the camera to the pawn's render position.
func (g *Game) CenterOnPawn() {
	half := grid.Point{X: g.Grid.TileSize.Width / 2, Y: g.Grid.TileSize.Height / 2}
	g.Camera.Position = g.Pawn.RenderPosition().Add(half)
}

func (g *Game) deltaTime() float64 {
	tps := defaultTPS
	if g.Clock != nil && g.Clock.TPS() > 0 {
		tps = g.Clock.TPS()
	}
	return 1.0 / float64(tps)
}

func (g *Game) updateHover() {
	x, y := g.InputMgr.GetCursorPosition()
	g.hover.Tile, g.hover.Valid = g.Resolver.TileUnder(grid.Point{X: float64(x), Y: float64(y)}, g.Camera)
}

// snapshot gathers what the HUD shows this frame.
func (g *Game) snapshot() hud.Snapshot {
	dest, hasDest := g.Pawn.Destination()
	s := hud.Snapshot{
		Pawn: hud.PawnReport{
			Position:       g.Pawn.Position(),
			State:          g.Pawn.State(),
			Destination:    dest,
			HasDestination: hasDest,
		},
		Zoom: g.Camera.Zoom,
	}

	if g.hover.Valid {
		report := &hud.TileReport{Tile: g.hover.Tile}
		if cell, ok := g.Field.At(g.hover.Tile); ok {
			def := g.Field.MustDefinitionOf(cell)
			report.Terrain = &def
		}
		s.Hover = report
	}
	return s
}

func (g *Game) logDiagnostics(dt float64) {
	if g.Clock == nil {
		return
	}
	g.diagTimer += dt
	if g.diagTimer < 1 {
		return
	}
	g.diagTimer = 0
	g.Log.WithFields(logrus.Fields{
		"tps": g.Clock.ActualTPS(),
		"fps": g.Clock.ActualFPS(),
	}).Debug("frame diagnostics")
}
