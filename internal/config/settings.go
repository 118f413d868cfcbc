package config

import (
	"path/filepath"
	"slices"

	"fyne.io/fyne/v2"

	"github.com/ytget/playlist-downloader/internal/model"
	"github.com/ytget/playlist-downloader/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyBaseDir            = "base_directory"
	KeyResolution         = "last_resolution"
	KeyOutputKind         = "last_output_kind"
	KeyAudioBitrate       = "last_audio_bitrate"
	KeyFilenameTemplate   = "filename_template"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultFilenameTemplate   = "%(title)s.%(ext)s"
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = false
	FallbackBaseDir           = "/tmp/downloads/Video"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetBaseDirectory returns the directory playlist folders are created in
func (s *Settings) GetBaseDirectory() string {
	dir := s.app.Preferences().String(KeyBaseDir)
	if dir == "" {
		defaultDir, err := platform.GetDefaultBaseDir()
		if err != nil {
			defaultDir = filepath.FromSlash(FallbackBaseDir)
		}
		s.SetBaseDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetBaseDirectory sets the base download directory
func (s *Settings) SetBaseDirectory(dir string) {
	s.app.Preferences().SetString(KeyBaseDir, dir)
}

// GetResolution returns the last used resolution
func (s *Settings) GetResolution() model.Resolution {
	res := model.Resolution(s.app.Preferences().String(KeyResolution))
	if !slices.Contains(model.Resolutions(), res) {
		return model.DefaultResolution
	}
	return res
}

// SetResolution stores the last used resolution
func (s *Settings) SetResolution(res model.Resolution) {
	s.app.Preferences().SetString(KeyResolution, string(res))
}

// GetOutputKind returns the last used output kind
func (s *Settings) GetOutputKind() model.OutputKind {
	switch kind := model.OutputKind(s.app.Preferences().String(KeyOutputKind)); kind {
	case model.KindVideo, model.KindAudio:
		return kind
	default:
		return model.DefaultKind
	}
}

// SetOutputKind stores the last used output kind
func (s *Settings) SetOutputKind(kind model.OutputKind) {
	s.app.Preferences().SetString(KeyOutputKind, string(kind))
}

// GetAudioBitrate returns the last used MP3 bitrate
func (s *Settings) GetAudioBitrate() model.AudioBitrate {
	bitrate := model.AudioBitrate(s.app.Preferences().String(KeyAudioBitrate))
	if !bitrate.IsValid() {
		return model.DefaultBitrate
	}
	return bitrate
}

// SetAudioBitrate stores the last used MP3 bitrate
func (s *Settings) SetAudioBitrate(bitrate model.AudioBitrate) {
	s.app.Preferences().SetString(KeyAudioBitrate, string(bitrate))
}

// SaveRequestChoices remembers the quality choices of a request for the
// next time the form opens
func (s *Settings) SaveRequestChoices(req model.DownloadRequest) {
	s.SetResolution(req.Resolution)
	s.SetOutputKind(req.Kind)
	s.SetAudioBitrate(req.Bitrate)
}

// GetFilenameTemplate returns the filename template
func (s *Settings) GetFilenameTemplate() string {
	template := s.app.Preferences().String(KeyFilenameTemplate)
	if template == "" {
		s.SetFilenameTemplate(DefaultFilenameTemplate)
		return DefaultFilenameTemplate
	}
	return template
}

// SetFilenameTemplate sets the filename template
func (s *Settings) SetFilenameTemplate(template string) {
	if template == "" {
		template = DefaultFilenameTemplate
	}
	s.app.Preferences().SetString(KeyFilenameTemplate, template)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to open the playlist folder when done
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to open the playlist folder when done
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
