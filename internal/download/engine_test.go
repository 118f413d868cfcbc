package download

import (
	"context"
	"strings"
	"testing"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/playlist-downloader/internal/model"
)

func TestNewYTDLPEngine(t *testing.T) {
	engine := NewYTDLPEngine()

	if engine.retries != DefaultRetries {
		t.Errorf("Expected retries %d, got %d", DefaultRetries, engine.retries)
	}
	if engine.FilenameTemplate() != DefaultFilenameTemplate {
		t.Errorf("Expected template %q, got %q", DefaultFilenameTemplate, engine.FilenameTemplate())
	}
}

func TestYTDLPEngine_SetFilenameTemplate(t *testing.T) {
	engine := NewYTDLPEngine()

	engine.SetFilenameTemplate("%(playlist_index)s - %(title)s.%(ext)s")
	if engine.FilenameTemplate() != "%(playlist_index)s - %(title)s.%(ext)s" {
		t.Errorf("unexpected template %q", engine.FilenameTemplate())
	}

	engine.SetFilenameTemplate("")
	if engine.FilenameTemplate() != DefaultFilenameTemplate {
		t.Errorf("empty template should reset to default, got %q", engine.FilenameTemplate())
	}
}

func TestYTDLPEngine_DownloadRequiresIndices(t *testing.T) {
	engine := NewYTDLPEngine()

	_, err := engine.Download(context.Background(), "https://youtube.com/playlist?list=PL1", nil, t.TempDir(), model.DownloadRequest{}, nil)
	if err == nil {
		t.Fatal("Expected error for empty indices, got nil")
	}
}

func TestProgressEventFrom(t *testing.T) {
	t.Run("downloading", func(t *testing.T) {
		event, ok := progressEventFrom(ytdlp.ProgressUpdate{
			Status:          ytdlp.ProgressStatusDownloading,
			DownloadedBytes: 50,
			TotalBytes:      200,
			Filename:        "/tmp/list/Song.mp4",
		})
		if !ok {
			t.Fatal("expected downloading update to be relayed")
		}
		if event.Phase != model.PhaseDownloading {
			t.Errorf("expected phase downloading, got %s", event.Phase)
		}
		if event.DownloadedBytes != 50 || event.TotalBytes != 200 {
			t.Errorf("unexpected counters %d/%d", event.DownloadedBytes, event.TotalBytes)
		}
		if event.Percent() != 25 {
			t.Errorf("expected 25%%, got %v", event.Percent())
		}
	})

	t.Run("finished", func(t *testing.T) {
		event, ok := progressEventFrom(ytdlp.ProgressUpdate{
			Status:   ytdlp.ProgressStatusFinished,
			Filename: "/tmp/list/Song.mp4",
		})
		if !ok || event.Phase != model.PhaseFinished {
			t.Fatalf("expected finished event, got %+v (ok=%v)", event, ok)
		}
		if event.DisplayName() != "Song.mp4" {
			t.Errorf("unexpected display name %q", event.DisplayName())
		}
	})

	t.Run("error", func(t *testing.T) {
		event, ok := progressEventFrom(ytdlp.ProgressUpdate{
			Status:   ytdlp.ProgressStatusError,
			Filename: "/tmp/list/Song.mp4",
		})
		if !ok || event.Phase != model.PhaseError {
			t.Fatalf("expected error event, got %+v (ok=%v)", event, ok)
		}
		if !strings.Contains(event.Error, "Song.mp4") {
			t.Errorf("error should mention the file, got %q", event.Error)
		}
	})

	t.Run("error without filename", func(t *testing.T) {
		event, _ := progressEventFrom(ytdlp.ProgressUpdate{Status: ytdlp.ProgressStatusError})
		if event.Error != UnknownErrorMessage {
			t.Errorf("expected %q, got %q", UnknownErrorMessage, event.Error)
		}
	})

	t.Run("post processing is not relayed", func(t *testing.T) {
		if _, ok := progressEventFrom(ytdlp.ProgressUpdate{Status: ytdlp.ProgressStatusPostProcessing}); ok {
			t.Error("post-processing update should not be relayed")
		}
	})
}
