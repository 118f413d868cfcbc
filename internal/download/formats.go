package download

import (
	"log"

	"github.com/ytget/playlist-downloader/internal/model"
)

// yt-dlp format selectors
const (
	BestFormat         = "bestvideo+bestaudio/best"
	BestAudioFormat    = "bestaudio/best"
	MergeOutputFormat  = "mp4"
	AudioCodec         = "mp3"
	AudioQualitySuffix = "K"
)

var formatSelectors = map[model.Resolution]string{
	model.Resolution360p:  "bestvideo[height<=360]+bestaudio/best[height<=360]",
	model.Resolution480p:  "bestvideo[height<=480]+bestaudio/best[height<=480]",
	model.Resolution720p:  "bestvideo[height<=720]+bestaudio/best[height<=720]",
	model.Resolution1080p: "bestvideo[height<=1080]+bestaudio/best[height<=1080]",
	model.Resolution2K:    "bestvideo[height<=1440]+bestaudio/best[height<=1440]",
	model.Resolution4K:    "bestvideo[height<=2160]+bestaudio/best[height<=2160]",
}

// FormatSelector returns the yt-dlp format selector for the best streams
// at or below the resolution, and false with BestFormat when the resolution
// is unknown.
func FormatSelector(res model.Resolution) (string, bool) {
	selector, ok := formatSelectors[res]
	if !ok {
		return BestFormat, false
	}
	return selector, true
}

// OutputOptions are the yt-dlp options derived from a request
type OutputOptions struct {
	Format            string
	MergeOutputFormat string // empty for audio downloads
	ExtractAudio      bool
	AudioFormat       string
	AudioQuality      string
}

// OutputOptionsFor maps the form choices to yt-dlp options. Unknown kinds
// are downloaded as MP4 at the best available quality.
func OutputOptionsFor(req model.DownloadRequest) OutputOptions {
	switch req.Kind {
	case model.KindAudio:
		return OutputOptions{
			Format:       BestAudioFormat,
			ExtractAudio: true,
			AudioFormat:  AudioCodec,
			AudioQuality: string(req.EffectiveBitrate()) + AudioQualitySuffix,
		}
	case model.KindVideo:
		selector, ok := FormatSelector(req.Resolution)
		if !ok {
			log.Printf("Invalid quality %q selected, defaulting to best available", req.Resolution)
		}
		return OutputOptions{Format: selector, MergeOutputFormat: MergeOutputFormat}
	default:
		log.Printf("Invalid format %q selected, defaulting to MP4", req.Kind)
		return OutputOptions{Format: BestFormat, MergeOutputFormat: MergeOutputFormat}
	}
}
