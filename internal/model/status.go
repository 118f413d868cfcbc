package model

// JobStatus represents the stage a download job has reached
type JobStatus string

const (
	// JobStatusPending means the job was created but nothing ran yet
	JobStatusPending JobStatus = "Pending"

	// JobStatusFetching means playlist metadata is being retrieved
	JobStatusFetching JobStatus = "Fetching"

	// JobStatusDownloading means yt-dlp is downloading the selected items
	JobStatusDownloading JobStatus = "Downloading"

	// JobStatusCompleted means the engine finished the batch
	JobStatusCompleted JobStatus = "Completed"

	// JobStatusError means the job failed before or during download
	JobStatusError JobStatus = "Error"
)

// String returns the string representation of JobStatus
func (s JobStatus) String() string {
	return string(s)
}

// IsActive returns true while the job is doing work
func (s JobStatus) IsActive() bool {
	return s == JobStatusFetching || s == JobStatusDownloading
}

// IsFinished returns true if the job completed or failed
func (s JobStatus) IsFinished() bool {
	return s == JobStatusCompleted || s == JobStatusError
}
