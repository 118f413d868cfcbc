package platform

import (
	"context"
	"fmt"

	"github.com/lrstanley/go-ytdlp"
	"github.com/tidwall/gjson"

	"github.com/ytget/playlist-downloader/internal/model"
)

// JSON paths in yt-dlp --dump-single-json output
const (
	jsonPathID            = "id"
	jsonPathTitle         = "title"
	jsonPathEntriesCount  = "entries.#"
	jsonPathPlaylistCount = "playlist_count"
)

// YTDLPMetadataProvider reads playlist metadata with
// `yt-dlp --flat-playlist --dump-single-json`
type YTDLPMetadataProvider struct{}

// NewYTDLPMetadataProvider creates a provider backed by the yt-dlp binary
func NewYTDLPMetadataProvider() *YTDLPMetadataProvider {
	return &YTDLPMetadataProvider{}
}

// FetchPlaylist runs yt-dlp without downloading and reads title and entry count
func (p *YTDLPMetadataProvider) FetchPlaylist(ctx context.Context, url string) (model.PlaylistInfo, error) {
	dl := ytdlp.New().
		FlatPlaylist().
		DumpSingleJSON().
		Quiet().
		NoWarnings()

	result, err := dl.Run(ctx, url)
	if err != nil {
		return model.PlaylistInfo{}, fmt.Errorf("yt-dlp metadata lookup failed: %w", err)
	}

	return parsePlaylistJSON(result.Stdout)
}

// parsePlaylistJSON extracts PlaylistInfo from a single yt-dlp JSON document
func parsePlaylistJSON(output string) (model.PlaylistInfo, error) {
	if !gjson.Valid(output) {
		return model.PlaylistInfo{}, fmt.Errorf("unexpected yt-dlp output")
	}

	doc := gjson.Parse(output)
	entries := doc.Get(jsonPathEntriesCount)
	if !entries.Exists() {
		entries = doc.Get(jsonPathPlaylistCount)
	}
	if !entries.Exists() {
		return model.PlaylistInfo{}, fmt.Errorf("yt-dlp output has no playlist entries")
	}

	return model.PlaylistInfo{
		ID:    doc.Get(jsonPathID).String(),
		Title: doc.Get(jsonPathTitle).String(),
		Count: int(entries.Int()),
	}, nil
}
