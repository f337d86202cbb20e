package app

import (
	"bytes"
	"log"
	"testing"

	"disco-grid/internal/grid"
	"disco-grid/internal/render"
	"disco-grid/pkg/colorutil"
	"disco-grid/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"zero cols", func(c *Config) { c.Cols = 0 }, true},
		{"zero rows", func(c *Config) { c.Rows = 0 }, true},
		{"negative width", func(c *Config) { c.CanvasWidth = -1 }, true},
		{"grid finer than canvas", func(c *Config) { c.Cols = 1000 }, true},
		{"bad shape", func(c *Config) { c.Shape = grid.Shape(7) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, grid.ErrInvalidConfiguration)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPreset(t *testing.T) {
	cfg, err := Preset("large")
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Cols)
	assert.Equal(t, grid.ShapeCircle, cfg.Shape)
	assert.Equal(t, grid.DragPaint, cfg.Drag)
	assert.NoError(t, cfg.Validate())

	_, err = Preset("huge")
	assert.ErrorIs(t, err, grid.ErrInvalidConfiguration)
}

func TestNewStateRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 0
	s, err := NewState(cfg, nil)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, grid.ErrInvalidConfiguration)
}

func TestClickScenario(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewState(DefaultConfig(), log.New(&buf, "", 0))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "100 tiles")

	var hovered []*grid.Tile
	var advanced []*grid.Tile
	var redraws int
	s.On(EventHoverChanged, func(data interface{}) { hovered = append(hovered, data.(*grid.Tile)) })
	s.On(EventTileAdvanced, func(data interface{}) { advanced = append(advanced, data.(*grid.Tile)) })
	s.On(EventRedraw, func(data interface{}) {
		_, ok := data.(render.Stats)
		assert.True(t, ok)
		redraws++
	})

	// Control twice the canvas size: no letterbox, scale 2.
	control := geometry.NewSize(900, 900)
	pos := geometry.NewPoint2D(92, 92)

	s.PointerMoved(pos, control)
	require.Len(t, hovered, 1)
	tile := hovered[0]
	assert.Same(t, s.Grid().Cell(1, 1), tile)
	assert.Same(t, tile, s.Hovered())

	initial := tile.Color()
	for i := 0; i < colorutil.PaletteSize(); i++ {
		s.PointerPressed(pos, control)
		s.PointerReleased(pos, control)
	}
	assert.Len(t, advanced, colorutil.PaletteSize())
	assert.Equal(t, initial, tile.Color())
	assert.Greater(t, redraws, colorutil.PaletteSize())

	s.PointerLeft()
	assert.Nil(t, s.Hovered())
	require.Len(t, hovered, 2)
	assert.Nil(t, hovered[1])
}

func TestPointerInLetterboxIgnored(t *testing.T) {
	s, err := NewState(DefaultConfig(), nil)
	require.NoError(t, err)

	// 450x450 canvas in 900x450 control: bars 225 wide left and right.
	control := geometry.NewSize(900, 450)
	s.PointerMoved(geometry.NewPoint2D(100, 200), control)
	assert.Nil(t, s.Hovered())

	s.PointerMoved(geometry.NewPoint2D(226, 1), control)
	require.NotNil(t, s.Hovered())
	assert.Same(t, s.Grid().Cell(0, 0), s.Hovered())

	img := s.Image()
	assert.Equal(t, 450, img.Bounds().Dx())
}

func TestPointerInBarFringeIgnored(t *testing.T) {
	s, err := NewState(DefaultConfig(), nil)
	require.NoError(t, err)

	// Truncation alone would map x=224.5 onto column 0.
	control := geometry.NewSize(900, 450)
	require.Equal(t, 0, s.Fit(control).Project(geometry.NewPoint2D(224.5, 10)).X)

	s.PointerMoved(geometry.NewPoint2D(224.5, 10), control)
	assert.Nil(t, s.Hovered())
	s.PointerPressed(geometry.NewPoint2D(224.5, 10), control)
	s.PointerReleased(geometry.NewPoint2D(224.5, 10), control)
	assert.Equal(t, 0, s.Grid().Cell(0, 0).ColorIndex())

	s.PointerMoved(geometry.NewPoint2D(225, 10), control)
	assert.Same(t, s.Grid().Cell(0, 0), s.Hovered())
}
