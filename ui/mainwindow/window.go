// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"log"

	"disco-grid/internal/app"
	"disco-grid/internal/grid"
	"disco-grid/internal/render"
	"disco-grid/internal/version"
	"disco-grid/ui/canvas"
	"disco-grid/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const (
	defaultWidth  = 640
	defaultHeight = 640
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	prefs     *prefs.Prefs
	canvas    *canvas.GridCanvas
	statusBar *widget.Label
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, appPrefs *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("Disco Grid")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  appPrefs,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()
	mw.restoreSize()

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.NewGridCanvas(mw.state)
	mw.statusBar = widget.NewLabel(mw.state.Config.String())

	content := container.NewBorder(
		nil,                               // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		mw.canvas,                         // center
	)
	mw.SetContent(content)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)
	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))
}

// setupEventHandlers subscribes to state events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventHoverChanged, func(data interface{}) {
		tile, _ := data.(*grid.Tile)
		mw.updateStatus(mw.describe(tile))
	})

	mw.state.On(app.EventTileAdvanced, func(data interface{}) {
		if tile, ok := data.(*grid.Tile); ok {
			mw.updateStatus(mw.describe(tile))
		}
	})

	mw.SetCloseIntercept(func() {
		mw.SavePreferences()
		mw.Close()
	})
}

// describe returns status bar text for a tile.
func (mw *MainWindow) describe(tile *grid.Tile) string {
	if tile == nil {
		return mw.state.Config.String()
	}
	text := fmt.Sprintf("Tile %v  color %d", tile.Bounds.Min, tile.ColorIndex())
	if label := render.LabelFor(tile); label != "" {
		text = fmt.Sprintf("Tile %s  color %d", label, tile.ColorIndex())
	}
	return text
}

func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Disco Grid",
		fmt.Sprintf("Disco Grid %s\nBuilt %s (%s)", version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}

// restoreSize applies the saved window size.
func (mw *MainWindow) restoreSize() {
	w := mw.prefs.FloatWithFallback(prefs.KeyWindowWidth, defaultWidth)
	h := mw.prefs.FloatWithFallback(prefs.KeyWindowHeight, defaultHeight)
	mw.Resize(fyne.NewSize(float32(w), float32(h)))
}

// SavePreferences stores the window size if it changed.
func (mw *MainWindow) SavePreferences() {
	size := mw.Canvas().Size()
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	mw.prefs.SetFloat(prefs.KeyWindowWidth, float64(size.Width))
	mw.prefs.SetFloat(prefs.KeyWindowHeight, float64(size.Height))
	if !mw.prefs.Changed() {
		return
	}
	if err := mw.prefs.Save(); err != nil {
		log.Printf("Failed to save preferences to %s: %v", mw.prefs.Path(), err)
	}
}
