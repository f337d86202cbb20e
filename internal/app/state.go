// Package app provides the grid session state, configuration, and events.
package app

import (
	"fmt"
	"image"
	"io"
	"log"
	"sync"

	"disco-grid/internal/grid"
	"disco-grid/internal/render"
	"disco-grid/pkg/geometry"
)

// State holds one grid session: the grid, its interaction state machine
// and its renderer.
type State struct {
	mu sync.RWMutex

	Config Config

	grid        *grid.Grid
	interaction *grid.Interaction
	renderer    *render.Renderer
	logger      *log.Logger

	// Event listeners
	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	EventHoverChanged EventType = iota // data: *grid.Tile or nil
	EventTileAdvanced                  // data: *grid.Tile
	EventRedraw                        // data: render.Stats
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState builds the grid described by cfg and renders it once.
func NewState(cfg Config, logger *log.Logger) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	g, err := grid.Build(cfg.CanvasSize(), cfg.Dimensions(), cfg.Shape)
	if err != nil {
		return nil, fmt.Errorf("build grid: %w", err)
	}

	opts := render.DefaultOptions()
	opts.Labels = cfg.Labels
	opts.Logger = logger

	s := &State{
		Config:      cfg,
		grid:        g,
		interaction: grid.NewInteraction(g, cfg.Drag),
		renderer:    render.New(g, opts),
		logger:      logger,
		listeners:   make(map[EventType][]EventListener),
	}
	s.renderer.Render()
	logger.Printf("built %s: %d tiles, cell %v", cfg, g.Len(), g.CellSize())
	return s, nil
}

// On registers a listener for an event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit calls all listeners for an event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Grid returns the session grid.
func (s *State) Grid() *grid.Grid {
	return s.grid
}

// CanvasSize returns the canvas size as a geometry.Size.
func (s *State) CanvasSize() geometry.Size {
	return geometry.SizeOf(s.grid.Canvas())
}

// Fit returns the zoom-fit transform of the canvas into a control of the given size.
func (s *State) Fit(control geometry.Size) geometry.Fit {
	return geometry.NewFit(s.CanvasSize(), control)
}

// Image returns the composited canvas.
func (s *State) Image() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderer.Image()
}

// Hovered returns the highlighted tile, or nil.
func (s *State) Hovered() *grid.Tile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.interaction.Current()
}

// PointerMoved handles a move to pos in a control of the given size.
func (s *State) PointerMoved(pos geometry.Point2D, control geometry.Size) {
	s.apply(pos, control, s.interaction.Move)
}

// PointerPressed handles a button press.
func (s *State) PointerPressed(pos geometry.Point2D, control geometry.Size) {
	s.apply(pos, control, s.interaction.Press)
}

// PointerReleased handles a button release.
func (s *State) PointerReleased(pos geometry.Point2D, control geometry.Size) {
	s.apply(pos, control, s.interaction.Release)
}

// PointerLeft handles the pointer leaving the control.
func (s *State) PointerLeft() {
	s.mu.Lock()
	before := s.interaction.Current()
	s.interaction.Leave()
	stats := s.renderer.Render()
	s.mu.Unlock()

	if before != nil {
		s.Emit(EventHoverChanged, (*grid.Tile)(nil))
	}
	s.emitRedraw(stats)
}

// apply projects pos onto the canvas, runs the handler and repaints.
// Points in a letterbox bar reach the handler as geometry.Outside.
func (s *State) apply(pos geometry.Point2D, control geometry.Size, handler func(image.Point)) {
	fit := s.Fit(control)
	p := geometry.Outside
	if fit.Hit(pos) {
		p = fit.Project(pos)
	}

	s.mu.Lock()
	before := s.interaction.Current()
	var beforeColor int
	if target := s.grid.TileAt(p); target != nil {
		beforeColor = target.ColorIndex()
	}
	handler(p)
	after := s.interaction.Current()
	var advanced *grid.Tile
	if target := s.grid.TileAt(p); target != nil && target.ColorIndex() != beforeColor {
		advanced = target
	}
	stats := s.renderer.Render()
	s.mu.Unlock()

	if before != after {
		s.Emit(EventHoverChanged, after)
	}
	if advanced != nil {
		s.Emit(EventTileAdvanced, advanced)
	}
	s.emitRedraw(stats)
}

func (s *State) emitRedraw(stats render.Stats) {
	if stats.Repainted > 0 || stats.Label {
		s.Emit(EventRedraw, stats)
	}
}
