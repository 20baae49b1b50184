package game

import (
	"modzero.net/monstrous/internal/core/grid"
)

// dragState tracks an in-progress camera drag.
type dragState struct {
	Active       bool
	LastX, LastY int
}

// hoverState is the tile under the cursor, if any.
type hoverState struct {
	Tile  grid.Tile
	Valid bool
}
