package main

import (
	"embed"

	"github.com/user/nonogram_go/internal/parser"
	"github.com/user/nonogram_go/internal/report"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"go.uber.org/zap"
)

//go:embed all:frontend/public
var assets embed.FS

const (
	resultsPath = "./resultados/resultados.csv"
	// numTest is the board count per point used by the generator that wrote
	// resultsPath. It is informational only.
	numTest = 100
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("loading results", zap.String("path", resultsPath), zap.Int("num_test", numTest))
	table, err := parser.ParseResults(resultsPath)
	if err != nil {
		logger.Fatal("failed to load results", zap.Error(err))
	}
	logger.Info("results loaded", zap.String("path", resultsPath), zap.Int("rows", table.Len()))

	fig, err := report.NewCompletenessFigure(table)
	if err != nil {
		logger.Fatal("failed to build figure", zap.Error(err))
	}

	app := NewApp(table, fig, logger) // Defined in app.go

	err = wails.Run(&options.App{
		Title:  app.Title(),
		Width:  900,
		Height: 760,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 255, G: 255, B: 255, A: 255},
		OnStartup:        app.Startup,
		OnDomReady:       app.DomReady,
		Bind: []interface{}{
			app,
		},
	})
	if err != nil {
		logger.Fatal("error running viewer", zap.Error(err))
	}
}
