package download

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/playlist-downloader/internal/model"
	"github.com/ytget/playlist-downloader/internal/platform"
	"github.com/ytget/playlist-downloader/internal/selection"
)

var (
	// ErrNothingSelected means the range was valid but no item survived bounds checking
	ErrNothingSelected = errors.New("no videos selected to download")
	// ErrBusy means another job is still running
	ErrBusy = errors.New("a download is already in progress")
	// ErrInvalidRequest wraps form validation failures
	ErrInvalidRequest = errors.New("invalid request")
)

// Job ID prefix
const (
	JobIDPrefix = "job-"
)

// Service runs one playlist download at a time
type Service struct {
	metadata MetadataProvider
	engine   Engine

	mu      sync.RWMutex
	baseDir string
	active  *model.Job
}

// NewService creates a new download service that stores playlists under baseDir
func NewService(metadata MetadataProvider, engine Engine, baseDir string) *Service {
	return &Service{
		metadata: metadata,
		engine:   engine,
		baseDir:  baseDir,
	}
}

// SetBaseDirectory sets the directory playlist folders are created in
func (s *Service) SetBaseDirectory(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseDir = dir
}

// BaseDirectory returns the directory playlist folders are created in
func (s *Service) BaseDirectory() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baseDir
}

// ActiveJob returns a snapshot of the running job, if any
func (s *Service) ActiveJob() (model.Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == nil {
		return model.Job{}, false
	}
	return s.active.Snapshot(), true
}

// ValidateRequest checks the parts of a request that can be checked
// without network access
func ValidateRequest(req model.DownloadRequest) error {
	if err := ValidateURL(req.PlaylistURL); err != nil {
		return err
	}
	if strings.TrimSpace(req.Ranges) == "" {
		return fmt.Errorf("%w: range is empty", ErrInvalidRequest)
	}
	return nil
}

// ValidateURL checks that the playlist locator is an http(s) URL or a bare
// playlist ID. Any http(s) URL is accepted; yt-dlp decides whether it
// names a playlist.
func ValidateURL(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("%w: playlist URL is empty", ErrInvalidRequest)
	}
	if !strings.Contains(input, platform.URLSchemeSeparator) {
		if platform.IsPlaylistID(input) {
			return nil
		}
		return fmt.Errorf("%w: enter a playlist URL starting with http:// or https://, or a playlist ID", ErrInvalidRequest)
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%w: URL must start with http:// or https://", ErrInvalidRequest)
	}
	return nil
}

// Run fetches playlist metadata, applies the range selection and downloads
// the selected items into <base>/<sanitized title>. The observer sees a
// snapshot after every stage and progress event; it is called from the
// goroutine running Run.
func (s *Service) Run(ctx context.Context, req model.DownloadRequest, observer Observer) (*model.Job, error) {
	req.PlaylistURL = strings.TrimSpace(req.PlaylistURL)
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	job := model.NewJob(generateJobID(), req)

	s.mu.Lock()
	if s.active != nil {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	s.active = job
	baseDir := s.baseDir
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.active = nil
		s.mu.Unlock()
	}()

	log.Printf("Starting job %s for %s (range %q, %s)", job.ID, req.PlaylistURL, req.Ranges, req.Kind)

	s.update(job, observer, func(j *model.Job) { j.Status = model.JobStatusFetching })

	info, err := s.metadata.FetchPlaylist(ctx, req.PlaylistURL)
	if err != nil {
		return s.fail(job, observer, err)
	}
	s.update(job, observer, func(j *model.Job) { j.Playlist = info })
	log.Printf("Playlist %q has %d items", info.Title, info.Count)

	sel, err := selection.Parse(req.Ranges, info.Count)
	if err != nil {
		return s.fail(job, observer, err)
	}
	if sel.Empty() {
		return s.fail(job, observer, ErrNothingSelected)
	}
	if len(sel.Unused) > 0 {
		log.Printf("Range terms selected nothing for job %s: %s", job.ID, strings.Join(sel.Unused, ", "))
	}

	destination := filepath.Join(baseDir, platform.SanitizeFilename(info.Title))
	if err := platform.CreateDirectoryIfNotExists(destination); err != nil {
		return s.fail(job, observer, fmt.Errorf("failed to create %s: %w", destination, err))
	}

	s.update(job, observer, func(j *model.Job) {
		j.Indices = sel.Indices
		j.Unused = sel.Unused
		j.Destination = destination
		j.Status = model.JobStatusDownloading
	})

	summary, err := s.engine.Download(ctx, req.PlaylistURL, sel.Indices, destination, req, func(event model.ProgressEvent) {
		s.update(job, observer, func(j *model.Job) { j.LastEvent = event })
	})
	if err != nil {
		return s.fail(job, observer, err)
	}

	s.update(job, observer, func(j *model.Job) {
		j.Status = model.JobStatusCompleted
		j.FinishedAt = time.Now()
	})
	log.Printf("Job %s completed: %d finished, %d failed, in %s", job.ID, summary.Finished, summary.Failed, destination)

	return job, nil
}

// fail marks the job as failed and returns the error unchanged
func (s *Service) fail(job *model.Job, observer Observer, err error) (*model.Job, error) {
	log.Printf("Job %s failed: %v", job.ID, err)
	s.update(job, observer, func(j *model.Job) {
		j.Status = model.JobStatusError
		j.LastError = err.Error()
		j.FinishedAt = time.Now()
	})
	return job, err
}

// update applies a change under the lock and notifies the observer
func (s *Service) update(job *model.Job, observer Observer, change func(*model.Job)) {
	s.mu.Lock()
	change(job)
	snapshot := job.Snapshot()
	s.mu.Unlock()

	if observer != nil {
		observer(snapshot)
	}
}

// generateJobID generates a unique job ID
func generateJobID() string {
	return JobIDPrefix + uuid.New().String()
}

var _ Runner = (*Service)(nil)
