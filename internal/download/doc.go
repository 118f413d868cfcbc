package download

// Package download implements the download flow built on top of yt-dlp
// (via github.com/lrstanley/go-ytdlp): it resolves playlist metadata,
// applies the user's range selection, maps quality choices to yt-dlp
// format options and relays progress back to the caller.
