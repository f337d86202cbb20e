package grid

import (
	"image"
)

// AdvancePolicy controls when a pointer action advances a tile's color.
type AdvancePolicy int

const (
	// AdvanceAlways advances the tile under the pointer unconditionally.
	AdvanceAlways AdvancePolicy = iota
	// AdvanceWaitForExit skips a tile that is already highlighted, so a
	// drag advances each tile once per entry.
	AdvanceWaitForExit
)

func (p AdvancePolicy) String() string {
	switch p {
	case AdvanceAlways:
		return "always"
	case AdvanceWaitForExit:
		return "wait-for-exit"
	default:
		return "unknown"
	}
}

// DragMode selects how pointer buttons map to color advances.
type DragMode int

const (
	// DragOff advances on button release only.
	DragOff DragMode = iota
	// DragPaint advances on button press and on every tile entered while
	// the button is held.
	DragPaint
)

// Interaction applies pointer events to a grid. It tracks the single
// highlighted tile so each move touches at most two tiles.
type Interaction struct {
	grid    *Grid
	mode    DragMode
	current *Tile
	pressed bool
}

// NewInteraction creates an Interaction over g.
func NewInteraction(g *Grid, mode DragMode) *Interaction {
	return &Interaction{grid: g, mode: mode}
}

// Current returns the highlighted tile, or nil.
func (in *Interaction) Current() *Tile {
	return in.current
}

// Pressed reports whether the button is held.
func (in *Interaction) Pressed() bool {
	return in.pressed
}

// Hover highlights the tile containing p and clears the previous one.
// It returns the tile now highlighted, or nil.
func (in *Interaction) Hover(p image.Point) *Tile {
	next := in.grid.TileAt(p)
	if next == in.current {
		return next
	}
	if in.current != nil {
		in.current.SetHighlight(false)
	}
	if next != nil {
		next.SetHighlight(true)
	}
	in.current = next
	return next
}

// Leave clears the highlight, for when the pointer leaves the control.
func (in *Interaction) Leave() {
	if in.current != nil {
		in.current.SetHighlight(false)
		in.current = nil
	}
	in.pressed = false
}

// Advance advances the color of the tile at p according to policy.
// It returns the tile that changed, or nil.
func (in *Interaction) Advance(p image.Point, policy AdvancePolicy) *Tile {
	t := in.grid.TileAt(p)
	if t == nil {
		return nil
	}
	if policy == AdvanceWaitForExit && t.highlighted {
		return nil
	}
	t.Advance()
	return t
}

// Move handles a pointer move to p.
func (in *Interaction) Move(p image.Point) {
	if in.pressed && in.mode == DragPaint {
		// Advance before hovering: a tile just entered is not yet highlighted.
		in.Advance(p, AdvanceWaitForExit)
	}
	in.Hover(p)
}

// Press handles a button press at p.
func (in *Interaction) Press(p image.Point) {
	in.pressed = true
	if in.mode == DragPaint {
		in.Advance(p, AdvanceAlways)
	}
	in.Hover(p)
}

// Release handles a button release at p.
func (in *Interaction) Release(p image.Point) {
	in.pressed = false
	if in.mode == DragOff {
		in.Advance(p, AdvanceAlways)
	}
	in.Hover(p)
}
