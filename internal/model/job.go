package model

import "time"

// Job records a single download attempt started from the form
type Job struct {
	ID          string
	Request     DownloadRequest
	Playlist    PlaylistInfo
	Indices     []int
	Unused      []string // range terms that selected nothing
	Destination string
	Status      JobStatus
	LastEvent   ProgressEvent
	LastError   string
	StartedAt   time.Time
	FinishedAt  time.Time
}

// NewJob creates a pending job for the request
func NewJob(id string, req DownloadRequest) *Job {
	return &Job{
		ID:        id,
		Request:   req,
		Status:    JobStatusPending,
		LastEvent: ProgressEvent{ETASec: -1},
		StartedAt: time.Now(),
	}
}

// Snapshot returns a copy that is safe to hand to another goroutine
func (j *Job) Snapshot() Job {
	c := *j
	c.Indices = append([]int(nil), j.Indices...)
	c.Unused = append([]string(nil), j.Unused...)
	return c
}

// Duration returns how long the job ran, or has been running
func (j *Job) Duration() time.Duration {
	if j.FinishedAt.IsZero() {
		return time.Since(j.StartedAt)
	}
	return j.FinishedAt.Sub(j.StartedAt)
}
