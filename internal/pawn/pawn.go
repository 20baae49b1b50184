// Package pawn moves a pawn across the grid one tile at a time, interpolating
// its render position between tiles.
package pawn

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"modzero.net/monstrous/internal/core/grid"
	"modzero.net/monstrous/internal/logger"
)

// State is the navigation state of a pawn.
type State int

const (
	Idle     State = iota // No destination
	Stepping              // Destination set, hop in flight
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Stepping:
		return "stepping"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Step is a single in-flight hop toward an adjacent tile.
type Step struct {
	Target   grid.Tile
	Progress float64 // Distance traveled toward Target, in tiles
}

// Pawn is a navigable entity. Position is authoritative; the render position
// is derived from it on demand.
type Pawn struct {
	position    grid.Tile
	destination grid.Tile
	hasDest     bool
	step        *Step

	speed  float64 // Tiles per second
	layout grid.Layout
	log    logrus.FieldLogger
}

// New creates an idle pawn at position.
func New(position grid.Tile, layout grid.Layout, speed float64, log logrus.FieldLogger) *Pawn {
	if log == nil {
		log = logger.Discard()
	}
	p := &Pawn{
		position: position,
		speed:    speed,
		layout:   layout,
		log:      log,
	}
	p.log.WithField("tile", position).Info("Pawn at")
	return p
}

// Position returns the pawn's logical tile.
func (p *Pawn) Position() grid.Tile {
	return p.position
}

// Destination returns the final goal, if one is pending.
func (p *Pawn) Destination() (grid.Tile, bool) {
	return p.destination, p.hasDest
}

// Step returns a copy of the in-flight hop, if any.
func (p *Pawn) Step() (Step, bool) {
	if p.step == nil {
		return Step{}, false
	}
	return *p.step, true
}

// State returns the current navigation state.
func (p *Pawn) State() State {
	if p.step != nil {
		return Stepping
	}
	return Idle
}

// Speed returns the movement speed in tiles per second.
func (p *Pawn) Speed() float64 {
	return p.speed
}

// SetSpeed changes the movement speed. It takes effect on the next Advance.
func (p *Pawn) SetSpeed(speed float64) {
	p.speed = speed
}

// SetDestination replaces any pending destination. The in-flight hop is
// discarded and a new one is computed from the logical position.
func (p *Pawn) SetDestination(t grid.Tile) error {
	if !p.layout.Size.Contains(t) {
		return fmt.Errorf("destination %v: %w", t, grid.ErrOutOfBounds)
	}

	p.step = nil
	p.destination = t
	p.hasDest = true
	p.log.WithFields(logrus.Fields{"from": p.position, "to": t}).Debug("destination set")

	p.nextStep()
	return nil
}

// Stop clears the destination and abandons the in-flight hop.
func (p *Pawn) Stop() {
	p.step = nil
	p.hasDest = false
}

// hopEpsilon absorbs float drift when summing many small time steps, so a
// hop completes on the tick where the elapsed time reaches its length.
const hopEpsilon = 1e-9

// Advance moves the pawn forward by dt seconds of travel. Travel left over
// after a completed hop carries into the next one, so a single call can
// finish several hops and arrival time does not depend on the tick rate.
// Non-positive dt is a no-op.
func (p *Pawn) Advance(dt float64) {
	if p.step == nil || !(dt > 0) {
		return
	}

	p.step.Progress += p.speed * dt

	for p.step != nil {
		dist := grid.Distance(p.position, p.step.Target)
		if p.step.Progress < dist-hopEpsilon {
			return
		}

		carry := math.Max(0, p.step.Progress-dist)
		p.position = p.step.Target
		p.step = nil
		p.log.WithField("tile", p.position).Debug("hop complete")

		p.nextStep()
		if p.step != nil {
			p.step.Progress = carry
		}
	}
}

// nextStep starts a hop toward the destination, or clears the destination
// when the pawn is already there.
func (p *Pawn) nextStep() {
	if !p.hasDest {
		return
	}
	if p.position == p.destination {
		p.hasDest = false
		p.log.WithField("tile", p.position).Info("pawn arrived")
		return
	}
	p.step = &Step{Target: grid.StepToward(p.position, p.destination)}
}

// RenderPosition returns the pawn's interpolated world position.
func (p *Pawn) RenderPosition() grid.Point {
	if p.step == nil {
		return p.layout.TileToWorld(p.position)
	}

	dist := grid.Distance(p.position, p.step.Target)
	if dist == 0 {
		return p.layout.TileToWorld(p.step.Target)
	}
	return p.layout.Lerp(p.position, p.step.Target, p.step.Progress/dist)
}
