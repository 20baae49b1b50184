package game

import (
	"math"

	"modzero.net/monstrous/internal/core/grid"
	"modzero.net/monstrous/internal/pointer"
	"modzero.net/monstrous/internal/render"
)

// zoomStep is the zoom factor per wheel notch.
const zoomStep = 1.1

// collectPointerEvents reports button transitions seen this tick.
func (g *Game) collectPointerEvents() []pointer.Event {
	x, y := g.InputMgr.GetCursorPosition()
	screen := grid.Point{X: float64(x), Y: float64(y)}

	var events []pointer.Event
	for _, button := range render.MouseButtons {
		if g.InputMgr.IsMouseButtonJustPressed(button) {
			events = append(events, pointer.Event{Button: button, Action: pointer.Press, Screen: screen})
		}
		if g.InputMgr.IsMouseButtonJustReleased(button) {
			events = append(events, pointer.Event{Button: button, Action: pointer.Release, Screen: screen})
		}
	}
	return events
}

// updateCamera applies drag panning, wheel zoom and keyboard panning.
func (g *Game) updateCamera(dt float64) {
	x, y := g.InputMgr.GetCursorPosition()

	if g.InputMgr.IsMouseButtonPressed(g.Config.PanButton()) {
		if g.drag.Active {
			g.Camera.Pan(float64(x-g.drag.LastX), float64(y-g.drag.LastY))
		}
		g.drag = dragState{Active: true, LastX: x, LastY: y}
	} else {
		g.drag.Active = false
	}

	if _, wy := g.InputMgr.Wheel(); wy != 0 {
		g.Camera.ZoomAt(math.Pow(zoomStep, wy), grid.Point{X: float64(x), Y: float64(y)})
	}

	step := g.Config.Input.KeyPanSpeed * dt
	var dx, dy float64
	if g.InputMgr.IsKeyPressed(render.KeyLeft) {
		dx += step
	}
	if g.InputMgr.IsKeyPressed(render.KeyRight) {
		dx -= step
	}
	if g.InputMgr.IsKeyPressed(render.KeyUp) {
		dy += step
	}
	if g.InputMgr.IsKeyPressed(render.KeyDown) {
		dy -= step
	}
	if dx != 0 || dy != 0 {
		g.Camera.Pan(dx, dy)
	}

	if g.InputMgr.IsKeyJustPressed(render.KeySpace) {
		g.CenterOnPawn()
	}
}
