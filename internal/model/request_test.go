package model

import "testing"

func TestDownloadRequest_EffectiveBitrate(t *testing.T) {
	tests := []struct {
		name     string
		req      DownloadRequest
		expected AudioBitrate
	}{
		{"audio with valid bitrate", DownloadRequest{Kind: KindAudio, Bitrate: Bitrate320}, Bitrate320},
		{"audio with unknown bitrate", DownloadRequest{Kind: KindAudio, Bitrate: "256"}, DefaultBitrate},
		{"video ignores bitrate", DownloadRequest{Kind: KindVideo, Bitrate: Bitrate128}, DefaultBitrate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.EffectiveBitrate(); got != tt.expected {
				t.Errorf("EffectiveBitrate() = %s, expected %s", got, tt.expected)
			}
		})
	}
}

func TestOptionLists(t *testing.T) {
	if len(Resolutions()) != 6 {
		t.Errorf("expected 6 resolutions, got %d", len(Resolutions()))
	}
	if Resolutions()[0] != Resolution360p || Resolutions()[5] != Resolution4K {
		t.Errorf("resolutions should run from 360p to 4k, got %v", Resolutions())
	}
	if len(OutputKinds()) != 2 {
		t.Errorf("expected 2 output kinds, got %d", len(OutputKinds()))
	}
	for _, b := range AudioBitrates() {
		if !b.IsValid() {
			t.Errorf("bitrate %s should be valid", b)
		}
	}
}
