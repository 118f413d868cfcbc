package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ytget/playlist-downloader/internal/download"
	"github.com/ytget/playlist-downloader/internal/model"
)

// statusText renders the status line for a job snapshot
func statusText(loc *Localization, job model.Job) string {
	var text string
	switch job.Status {
	case model.JobStatusPending, model.JobStatusFetching:
		text = loc.GetText(KeyStatusFetching)
	case model.JobStatusDownloading:
		text = progressText(loc, job)
	case model.JobStatusCompleted:
		text = fmt.Sprintf(loc.GetText(KeyDownloadSummary), len(job.Indices), job.Destination)
	case model.JobStatusError:
		return fmt.Sprintf(loc.GetText(KeyStatusError), job.LastError)
	}

	if len(job.Unused) > 0 {
		text += MiddleDotSeparator + fmt.Sprintf(loc.GetText(KeyStatusIgnored), strings.Join(job.Unused, ", "))
	}
	return text
}

// progressText describes the item the engine is working on
func progressText(loc *Localization, job model.Job) string {
	event := job.LastEvent
	switch event.Phase {
	case model.PhaseDownloading:
		text := fmt.Sprintf(loc.GetText(KeyStatusDownloading), event.DisplayName()) + " " + byteProgress(event)
		if event.ETASec > 0 {
			text += MiddleDotSeparator + event.GetETAString()
		}
		return text
	case model.PhaseFinished:
		return fmt.Sprintf(loc.GetText(KeyStatusFileDone), event.DisplayName())
	case model.PhaseError:
		return fmt.Sprintf(loc.GetText(KeyStatusError), event.Error)
	default:
		return fmt.Sprintf(loc.GetText(KeyStatusStarting), len(job.Indices), job.Playlist.Count, job.Playlist.Title)
	}
}

// byteProgress formats downloaded and total sizes, e.g. "(12 MB / 40 MB)"
func byteProgress(event model.ProgressEvent) string {
	downloaded := humanize.Bytes(uint64(max(event.DownloadedBytes, 0)))
	if event.TotalBytes <= 0 {
		return fmt.Sprintf(ProgressOnlyFormat, downloaded)
	}
	return fmt.Sprintf(ProgressSizeFormat, downloaded, humanize.Bytes(uint64(event.TotalBytes)))
}

// errorText maps a failed run to the status line
func errorText(loc *Localization, err error) string {
	switch {
	case errors.Is(err, download.ErrNothingSelected):
		return loc.GetText(KeyNothingSelected)
	case errors.Is(err, context.Canceled):
		return loc.GetText(KeyStatusCancelled)
	default:
		return fmt.Sprintf(loc.GetText(KeyStatusError), err.Error())
	}
}

// progressValue returns the progress bar value for a job snapshot
func progressValue(job model.Job) float64 {
	switch job.Status {
	case model.JobStatusCompleted:
		return ProgressMax
	case model.JobStatusDownloading:
		return job.LastEvent.Percent()
	default:
		return ProgressMin
	}
}
