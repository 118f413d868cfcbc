package platform

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ytget/playlist-downloader/internal/model"
)

// ErrMetadataUnavailable is returned when no provider could describe a playlist
var ErrMetadataUnavailable = errors.New("playlist metadata unavailable")

// Timeout constants
const (
	DefaultPlaylistParseTimeout = 60 * time.Second
)

// URL parameters
const (
	PlaylistURLParam       = "list="
	PlaylistParamSeparator = "&"
	URLSchemeSeparator     = "://"
)

// identifierForbiddenChars never appear in a bare playlist ID
const identifierForbiddenChars = "/?&=:# \t"

// PlaylistFetcher returns the title and item count of a playlist
type PlaylistFetcher interface {
	FetchPlaylist(ctx context.Context, url string) (model.PlaylistInfo, error)
}

// IsPlaylistID reports whether the locator is a bare playlist ID such as
// PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf rather than a URL
func IsPlaylistID(locator string) bool {
	return locator != "" && !strings.ContainsAny(locator, identifierForbiddenChars)
}

// ExtractPlaylistID extracts the playlist ID from URLs such as
//   - https://www.youtube.com/playlist?list=PLAYLIST_ID
//   - https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID&index=1
//
// It returns "" when there is no playlist ID.
func ExtractPlaylistID(url string) string {
	parts := strings.SplitN(url, PlaylistURLParam, 2)
	if len(parts) < 2 {
		return ""
	}
	id, _, _ := strings.Cut(parts[1], PlaylistParamSeparator)
	return id
}

// MetadataService asks each provider in turn until one succeeds. Locators
// are passed through unchanged; each provider decides what it can resolve.
type MetadataService struct {
	providers []PlaylistFetcher
	timeout   time.Duration
}

// NewMetadataService creates a service that tries providers in order
func NewMetadataService(providers ...PlaylistFetcher) *MetadataService {
	return &MetadataService{
		providers: providers,
		timeout:   DefaultPlaylistParseTimeout,
	}
}

// SetTimeout sets the timeout for a whole lookup, across all providers
func (s *MetadataService) SetTimeout(timeout time.Duration) {
	s.timeout = timeout
}

// FetchPlaylist returns playlist metadata from the first provider that succeeds.
// Every failure wraps ErrMetadataUnavailable.
func (s *MetadataService) FetchPlaylist(ctx context.Context, url string) (model.PlaylistInfo, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return model.PlaylistInfo{}, fmt.Errorf("%w: empty playlist locator", ErrMetadataUnavailable)
	}
	if len(s.providers) == 0 {
		return model.PlaylistInfo{}, fmt.Errorf("%w: no providers configured", ErrMetadataUnavailable)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var errs []error
	for _, p := range s.providers {
		info, err := p.FetchPlaylist(ctx, url)
		if err == nil {
			return info, nil
		}
		log.Printf("Playlist provider %T failed for %s: %v", p, url, err)
		errs = append(errs, err)

		if ctx.Err() != nil {
			break
		}
	}

	return model.PlaylistInfo{}, fmt.Errorf("%w: %w", ErrMetadataUnavailable, errors.Join(errs...))
}
