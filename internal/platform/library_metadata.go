package platform

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/playlist-downloader/internal/model"
)

// Playlist title constants
const (
	DefaultPlaylistName = "Unknown Playlist"
	MinPrefixLength     = 10
	PlaylistSuffix      = " Playlist"
)

// LibraryMetadataProvider lists playlist items with the pure-Go client,
// for machines without a yt-dlp binary. The client returns no playlist
// title, so one is derived from the item titles.
type LibraryMetadataProvider struct{}

// NewLibraryMetadataProvider creates a provider backed by github.com/ytget/ytdlp
func NewLibraryMetadataProvider() *LibraryMetadataProvider {
	return &LibraryMetadataProvider{}
}

// FetchPlaylist lists every item of the playlist and counts them. The
// client only understands YouTube playlist IDs, given bare or in a list=
// URL parameter.
func (p *LibraryMetadataProvider) FetchPlaylist(ctx context.Context, url string) (model.PlaylistInfo, error) {
	playlistID := playlistIDFromLocator(url)
	if playlistID == "" {
		return model.PlaylistInfo{}, fmt.Errorf("could not extract playlist ID from %s", url)
	}

	d := ytdlp.New()
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return model.PlaylistInfo{}, fmt.Errorf("failed to get playlist items: %w", err)
	}

	titles := make([]string, 0, len(items))
	for _, it := range items {
		titles = append(titles, it.Title)
	}

	return model.PlaylistInfo{
		ID:    playlistID,
		Title: derivePlaylistTitle(titles),
		Count: len(items),
	}, nil
}

// playlistIDFromLocator returns the YouTube playlist ID of a locator, or ""
func playlistIDFromLocator(locator string) string {
	locator = strings.TrimSpace(locator)
	if id := ExtractPlaylistID(locator); id != "" {
		return id
	}
	if IsPlaylistID(locator) {
		return locator
	}
	return ""
}

// derivePlaylistTitle uses the common prefix of the first two titles when it
// is long enough, otherwise the first title
func derivePlaylistTitle(titles []string) string {
	if len(titles) == 0 {
		return DefaultPlaylistName
	}
	if len(titles) > 1 {
		commonPrefix := findCommonPrefix(titles[0], titles[1])
		if utf8.RuneCountInString(commonPrefix) > MinPrefixLength {
			return strings.TrimSpace(commonPrefix) + PlaylistSuffix
		}
	}
	return titles[0] + PlaylistSuffix
}

// findCommonPrefix finds the common prefix between two strings, rune by
// rune so the result never ends inside a multi-byte character
func findCommonPrefix(s1, s2 string) string {
	r1, r2 := []rune(s1), []rune(s2)
	n := 0
	for n < min(len(r1), len(r2)) && r1[n] == r2[n] {
		n++
	}
	return string(r1[:n])
}
