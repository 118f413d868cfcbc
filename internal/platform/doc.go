package platform

// Package platform contains OS integration and external tooling glue:
// filesystem helpers, the filename sanitizer, and playlist metadata lookup
// through yt-dlp or the pure-Go YouTube client.
