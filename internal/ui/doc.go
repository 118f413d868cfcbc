package ui

// Package ui contains the Fyne-based desktop form of the application.
// It snapshots the form into a download request, runs it through the
// download service on a background goroutine and renders progress on the
// UI thread. All UI strings are localized via Localization.
