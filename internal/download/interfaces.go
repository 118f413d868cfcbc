package download

import (
	"context"

	"github.com/ytget/playlist-downloader/internal/model"
)

// MetadataProvider returns the title and item count of a playlist.
type MetadataProvider interface {
	FetchPlaylist(ctx context.Context, url string) (model.PlaylistInfo, error)
}

// ProgressFunc receives progress events from an Engine.
type ProgressFunc func(model.ProgressEvent)

// Engine downloads and transcodes the given 1-based playlist items into dir.
// Failures of individual items are skipped; an error means the batch as a
// whole could not run.
type Engine interface {
	Download(ctx context.Context, url string, indices []int, dir string, req model.DownloadRequest, onProgress ProgressFunc) (Summary, error)
}

// Observer receives a snapshot of the job after every state change.
type Observer func(model.Job)

// Runner defines the interface the UI uses to start downloads.
type Runner interface {
	Run(ctx context.Context, req model.DownloadRequest, observer Observer) (*model.Job, error)
	ActiveJob() (model.Job, bool)
	SetBaseDirectory(dir string)
	BaseDirectory() string
}

// Summary describes what an Engine did with a batch
type Summary struct {
	Finished int // items that reached the finished phase
	Failed   int // items that reported an error
}
