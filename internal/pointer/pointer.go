// Package pointer resolves pointer events to grid tiles.
package pointer

import (
	"github.com/sirupsen/logrus"

	"modzero.net/monstrous/internal/camera"
	"modzero.net/monstrous/internal/core/grid"
	"modzero.net/monstrous/internal/logger"
	"modzero.net/monstrous/internal/render"
)

// Action is what happened to a mouse button.
type Action int

const (
	Press Action = iota
	Release
)

// Event is a discrete pointer button event in screen space.
type Event struct {
	Button render.MouseButton
	Action Action
	Screen grid.Point
}

// Navigator receives resolved destinations.
type Navigator interface {
	SetDestination(t grid.Tile) error
}

// Resolver turns qualifying pointer events into destination tiles. Only
// releases of Button qualify, so a drag that starts with a press does not
// trigger navigation.
type Resolver struct {
	Layout grid.Layout
	Button render.MouseButton
	Log    logrus.FieldLogger
}

// NewResolver creates a resolver for a placed grid.
func NewResolver(layout grid.Layout, button render.MouseButton, log logrus.FieldLogger) *Resolver {
	if log == nil {
		log = logger.Discard()
	}
	return &Resolver{Layout: layout, Button: button, Log: log}
}

// TileUnder returns the tile beneath a screen position.
func (r *Resolver) TileUnder(screen grid.Point, cam *camera.Camera) (grid.Tile, bool) {
	return r.Layout.WorldToTile(cam.ScreenToWorld(screen))
}

// Resolve returns the tile targeted by ev, or false if the event does not
// qualify or points outside the grid.
func (r *Resolver) Resolve(ev Event, cam *camera.Camera) (grid.Tile, bool) {
	if ev.Action != Release || ev.Button != r.Button {
		return grid.Tile{}, false
	}
	return r.TileUnder(ev.Screen, cam)
}

// Apply resolves events in order and forwards each hit to nav. It returns the
// number of destinations set.
func (r *Resolver) Apply(events []Event, cam *camera.Camera, nav Navigator) int {
	applied := 0
	for _, ev := range events {
		tile, ok := r.Resolve(ev, cam)
		if !ok {
			if ev.Action == Release && ev.Button == r.Button {
				r.Log.WithField("screen", ev.Screen).Debug("click outside grid ignored")
			}
			continue
		}
		if err := nav.SetDestination(tile); err != nil {
			r.Log.WithError(err).Warn("destination rejected")
			continue
		}
		applied++
	}
	return applied
}
