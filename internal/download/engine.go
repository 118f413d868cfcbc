package download

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/playlist-downloader/internal/model"
	"github.com/ytget/playlist-downloader/internal/selection"
)

// Engine defaults
const (
	DefaultRetries          = 3
	DefaultProgressInterval = 500 * time.Millisecond
	DefaultFilenameTemplate = "%(title)s.%(ext)s"
	UnknownErrorMessage     = "Unknown error"
)

// YTDLPEngine downloads playlist items by running yt-dlp
type YTDLPEngine struct {
	mu               sync.RWMutex
	retries          int
	progressInterval time.Duration
	filenameTemplate string
}

// NewYTDLPEngine creates an engine with default retries and output template
func NewYTDLPEngine() *YTDLPEngine {
	return &YTDLPEngine{
		retries:          DefaultRetries,
		progressInterval: DefaultProgressInterval,
		filenameTemplate: DefaultFilenameTemplate,
	}
}

// SetFilenameTemplate sets the yt-dlp output template used inside the
// destination directory
func (e *YTDLPEngine) SetFilenameTemplate(template string) {
	if template == "" {
		template = DefaultFilenameTemplate
	}
	e.mu.Lock()
	e.filenameTemplate = template
	e.mu.Unlock()
}

// FilenameTemplate returns the current output template
func (e *YTDLPEngine) FilenameTemplate() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.filenameTemplate
}

// Download runs yt-dlp for the selected items. With --ignore-errors yt-dlp
// exits non-zero when any item failed, so the batch only counts as failed
// when nothing finished.
func (e *YTDLPEngine) Download(ctx context.Context, url string, indices []int, dir string, req model.DownloadRequest, onProgress ProgressFunc) (Summary, error) {
	if len(indices) == 0 {
		return Summary{}, fmt.Errorf("no playlist items to download")
	}

	dl := e.buildCommand(indices, dir, req)

	var summary Summary
	var summaryMu sync.Mutex
	dl.ProgressFunc(e.progressInterval, func(update ytdlp.ProgressUpdate) {
		event, ok := progressEventFrom(update)
		if !ok {
			return
		}

		summaryMu.Lock()
		switch event.Phase {
		case model.PhaseFinished:
			summary.Finished++
		case model.PhaseError:
			summary.Failed++
		}
		summaryMu.Unlock()

		if onProgress != nil {
			onProgress(event)
		}
	})

	_, err := dl.Run(ctx, url)

	summaryMu.Lock()
	defer summaryMu.Unlock()

	if err != nil {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}
		if summary.Finished > 0 {
			log.Printf("yt-dlp reported errors, %d item(s) finished: %v", summary.Finished, err)
			return summary, nil
		}
		return summary, fmt.Errorf("yt-dlp failed: %w", err)
	}
	return summary, nil
}

// buildCommand configures yt-dlp for one batch
func (e *YTDLPEngine) buildCommand(indices []int, dir string, req model.DownloadRequest) *ytdlp.Command {
	dl := ytdlp.New().
		PlaylistItems(selection.FormatIndices(indices)).
		Retries(strconv.Itoa(e.retries)).
		IgnoreErrors().
		Output(filepath.Join(dir, e.FilenameTemplate()))

	opts := OutputOptionsFor(req)
	dl = dl.Format(opts.Format)
	if opts.MergeOutputFormat != "" {
		dl = dl.MergeOutputFormat(opts.MergeOutputFormat)
	}
	if opts.ExtractAudio {
		dl = dl.ExtractAudio().
			AudioFormat(opts.AudioFormat).
			AudioQuality(opts.AudioQuality)
	}
	return dl
}

// progressEventFrom converts a yt-dlp progress update. Phases other than
// downloading, finished and error are not relayed.
func progressEventFrom(update ytdlp.ProgressUpdate) (model.ProgressEvent, bool) {
	event := model.ProgressEvent{
		DownloadedBytes: int64(update.DownloadedBytes),
		TotalBytes:      int64(update.TotalBytes),
		Filename:        update.Filename,
		ETASec:          -1,
	}

	switch update.Status {
	case ytdlp.ProgressStatusDownloading:
		event.Phase = model.PhaseDownloading
		if eta := update.ETA(); eta > 0 {
			event.ETASec = int(eta.Seconds())
		}
	case ytdlp.ProgressStatusFinished:
		event.Phase = model.PhaseFinished
	case ytdlp.ProgressStatusError:
		event.Phase = model.PhaseError
		event.Error = UnknownErrorMessage
		if update.Filename != "" {
			event.Error = fmt.Sprintf("failed to download %s", filepath.Base(update.Filename))
		}
	default:
		return model.ProgressEvent{}, false
	}

	return event, true
}

// InstallYTDLP makes sure a yt-dlp binary is available, downloading one into
// the user cache when none is found on PATH
func InstallYTDLP(ctx context.Context) error {
	resolved, err := ytdlp.Install(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to install yt-dlp: %w", err)
	}
	log.Printf("Using yt-dlp %s at %s", resolved.Version, resolved.Executable)
	return nil
}

var _ Engine = (*YTDLPEngine)(nil)
