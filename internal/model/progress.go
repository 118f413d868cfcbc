package model

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ProgressPhase tags a progress event
type ProgressPhase string

const (
	PhaseDownloading ProgressPhase = "downloading"
	PhaseFinished    ProgressPhase = "finished"
	PhaseError       ProgressPhase = "error"
)

// ProgressEvent is a single progress report for the item currently handled
// by the engine
type ProgressEvent struct {
	Phase           ProgressPhase
	DownloadedBytes int64
	TotalBytes      int64 // 0 if unknown
	Filename        string
	Error           string
	ETASec          int // -1 if unknown
}

// Percent returns progress of the current item in the 0..100 range
func (e ProgressEvent) Percent() float64 {
	if e.Phase == PhaseFinished {
		return 100
	}
	if e.TotalBytes <= 0 {
		return 0
	}
	p := float64(e.DownloadedBytes) / float64(e.TotalBytes) * 100
	return min(max(p, 0), 100)
}

// DisplayName returns the file name without directories, or "Unknown"
func (e ProgressEvent) DisplayName() string {
	if e.Filename == "" {
		return "Unknown"
	}
	return filepath.Base(e.Filename)
}

// GetETAString returns ETA formatted as hh:mm:ss or mm:ss, or "—" if unknown
func (e ProgressEvent) GetETAString() string {
	if e.ETASec <= 0 {
		return "—"
	}

	hours := e.ETASec / 3600
	minutes := (e.ETASec % 3600) / 60
	seconds := e.ETASec % 60

	var b strings.Builder
	if hours > 0 {
		b.WriteString(fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds))
		return b.String()
	}
	b.WriteString(fmt.Sprintf("%02d:%02d", minutes, seconds))
	return b.String()
}
