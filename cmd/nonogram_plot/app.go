package main

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/user/nonogram_go/internal/parser"
	"github.com/user/nonogram_go/internal/report"

	"github.com/wailsapp/wails/v2/pkg/runtime"
	"go.uber.org/zap"
)

// App struct
type App struct {
	ctx    context.Context
	table  *parser.ResultsTable
	fig    *report.Figure
	logger *zap.Logger
}

// NewApp creates the viewer bound to the frontend.
func NewApp(table *parser.ResultsTable, fig *report.Figure, logger *zap.Logger) *App {
	return &App{table: table, fig: fig, logger: logger}
}

// Startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
}

// DomReady is called once the page has loaded and its event listeners are
// registered, so status lines sent from here reach the footer.
func (a *App) DomReady(ctx context.Context) {
	a.sendStatus(fmt.Sprintf("%d results loaded", a.table.Len()))
}

// Title returns the figure title.
func (a *App) Title() string {
	return a.fig.Axes.Title
}

// DefaultView returns the camera the page starts from.
func (a *App) DefaultView() report.View {
	return report.DefaultView
}

func (a *App) sendStatus(message string) {
	if a.ctx != nil {
		runtime.EventsEmit(a.ctx, "statusUpdate", message)
	}
	a.logger.Info(message)
}

// Render draws the completeness surface seen from (azimuth, elevation) and
// returns it as a PNG data URL.
func (a *App) Render(azimuth, elevation float64) (string, error) {
	view := report.View{Azimuth: azimuth, Elevation: elevation}
	b, err := a.fig.RenderPNG(report.FigureWidth, report.FigureHeight, view)
	if err != nil {
		a.sendStatus(fmt.Sprintf("Error rendering figure: %v", err))
		return "", err
	}
	a.logger.Debug("figure rendered", zap.Float64("azimuth", azimuth), zap.Float64("elevation", elevation), zap.Int("bytes", len(b)))
	return pngDataURL(b), nil
}

// RenderProfile returns the c-over-p line plot as a PNG data URL.
func (a *App) RenderProfile() (string, error) {
	b, err := report.CreateProfilePlot(a.table, report.FigureWidth, report.FigureHeight)
	if err != nil {
		a.sendStatus(fmt.Sprintf("Error rendering profile plot: %v", err))
		return "", err
	}
	return pngDataURL(b), nil
}

// RenderHeatmap returns the (N, p) heatmap as a PNG data URL.
func (a *App) RenderHeatmap() (string, error) {
	b, err := report.CreateHeatmapPlot(a.table, report.FigureWidth, report.FigureHeight)
	if err != nil {
		a.sendStatus(fmt.Sprintf("Error rendering heatmap: %v", err))
		return "", err
	}
	return pngDataURL(b), nil
}

func pngDataURL(b []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(b)
}
