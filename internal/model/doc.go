package model

// Package model defines the value types shared by the download flow and the
// UI: the immutable form snapshot (DownloadRequest), playlist metadata,
// progress events relayed from yt-dlp, and the job that ties them together.
