package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/playlist-downloader/internal/config"
	"github.com/ytget/playlist-downloader/internal/download"
	"github.com/ytget/playlist-downloader/internal/platform"
	"github.com/ytget/playlist-downloader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.playlist-downloader"
	AppName = "Playlist Downloader"

	WindowWidth  = 560
	WindowHeight = 360

	InstallTimeout = 5 * time.Minute
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	baseDir := settings.GetBaseDirectory()
	if err := platform.CreateDirectoryIfNotExists(baseDir); err != nil {
		log.Printf("failed to ensure base dir: %v", err)
	}

	// Fetch a yt-dlp binary in the background if none is installed
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), InstallTimeout)
		defer cancel()
		if err := download.InstallYTDLP(ctx); err != nil {
			log.Printf("yt-dlp is not available: %v", err)
		}
	}()

	metadata := platform.NewMetadataService(
		platform.NewYTDLPMetadataProvider(),
		platform.NewLibraryMetadataProvider(),
	)

	engine := download.NewYTDLPEngine()
	engine.SetFilenameTemplate(settings.GetFilenameTemplate())

	service := download.NewService(metadata, engine, baseDir)

	ui.NewRootUI(myWindow, settings, service, engine)

	myWindow.ShowAndRun()
}
