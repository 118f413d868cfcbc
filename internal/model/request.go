package model

import "slices"

// OutputKind selects what the engine produces for each item
type OutputKind string

const (
	// KindVideo merges best video and audio streams into an MP4 file
	KindVideo OutputKind = "mp4"
	// KindAudio extracts audio and transcodes it to MP3
	KindAudio OutputKind = "mp3"
)

// Resolution is a video height ceiling as shown in the form
type Resolution string

const (
	Resolution360p  Resolution = "360p"
	Resolution480p  Resolution = "480p"
	Resolution720p  Resolution = "720p"
	Resolution1080p Resolution = "1080p"
	Resolution2K    Resolution = "2k"
	Resolution4K    Resolution = "4k"
)

// AudioBitrate is the MP3 target bitrate in kbps
type AudioBitrate string

const (
	Bitrate128 AudioBitrate = "128"
	Bitrate192 AudioBitrate = "192"
	Bitrate320 AudioBitrate = "320"
)

// Defaults used when the form has no stored selection
const (
	DefaultResolution = Resolution720p
	DefaultKind       = KindVideo
	DefaultBitrate    = Bitrate192
)

// Resolutions returns the selectable resolutions from lowest to highest
func Resolutions() []Resolution {
	return []Resolution{
		Resolution360p,
		Resolution480p,
		Resolution720p,
		Resolution1080p,
		Resolution2K,
		Resolution4K,
	}
}

// OutputKinds returns the selectable output kinds
func OutputKinds() []OutputKind {
	return []OutputKind{KindVideo, KindAudio}
}

// AudioBitrates returns the selectable MP3 bitrates
func AudioBitrates() []AudioBitrate {
	return []AudioBitrate{Bitrate128, Bitrate192, Bitrate320}
}

// IsValid reports whether the bitrate is one of the selectable values
func (b AudioBitrate) IsValid() bool {
	return slices.Contains(AudioBitrates(), b)
}

// DownloadRequest is the snapshot of the form taken when the user starts a
// download. It is passed by value and never mutated afterwards.
type DownloadRequest struct {
	PlaylistURL string
	Ranges      string
	Resolution  Resolution
	Kind        OutputKind
	Bitrate     AudioBitrate
}

// EffectiveBitrate returns the bitrate the engine should use. Video
// downloads ignore the bitrate field, and audio downloads with an unknown
// bitrate fall back to DefaultBitrate.
func (r DownloadRequest) EffectiveBitrate() AudioBitrate {
	if r.Kind != KindAudio || !r.Bitrate.IsValid() {
		return DefaultBitrate
	}
	return r.Bitrate
}
