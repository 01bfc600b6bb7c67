package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/headlines/internal/appstate"
	"github.com/ytget/headlines/internal/config"
	"github.com/ytget/headlines/internal/fetch"
	"github.com/ytget/headlines/internal/logger"
	"github.com/ytget/headlines/internal/news"
	"github.com/ytget/headlines/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const WindowTitle = "Headlines"

func main() {
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "headlines: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	log.Info().Str("version", version).Msg("headlines starting")

	store := config.NewFileStore("", log)
	settings := store.Load(cfg.AppName)

	client := news.NewClient(cfg.NewsBaseURL, cfg.Country, cfg.PageSize, cfg.HTTPTimeout)
	worker := fetch.NewWorker(client, cfg.PageSize+1, logger.Component(log, "fetch"))
	state := appstate.New(cfg.AppName, settings, store, worker, logger.Component(log, "state"))

	// Create new Fyne app
	myApp := app.NewWithID(cfg.AppID)
	myWindow := myApp.NewWindow(WindowTitle)
	myWindow.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	myWindow.SetOnClosed(cancel)

	root := ui.NewRootUI(myWindow, myApp, state, ui.Options{
		FrameInterval: cfg.FrameInterval,
		FontPath:      cfg.FontPath,
	}, logger.Component(log, "ui"))
	root.Start(ctx)

	// Show and run
	myWindow.ShowAndRun()
	log.Info().Msg("headlines stopped")
}
