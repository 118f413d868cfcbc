package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyDownload          = "download"
	KeyStop              = "stop"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyPlaylistURL       = "playlist_url"
	KeyRanges            = "ranges"
	KeyResolution        = "resolution"
	KeyFormat            = "format"
	KeyAudioQuality      = "audio_quality"
	KeyBaseDirectory     = "base_directory"
	KeyFilenameTemplate  = "filename_template"
	KeyAutoReveal        = "auto_reveal"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeyEnterURL          = "enter_url"
	KeyRangesPlaceholder = "ranges_placeholder"
	KeySettingsSaved     = "settings_saved"
	KeyStatusReady       = "status_ready"
	KeyStatusFetching    = "status_fetching"
	KeyStatusStarting    = "status_starting"
	KeyStatusDownloading = "status_downloading"
	KeyStatusFileDone    = "status_file_done"
	KeyStatusError       = "status_error"
	KeyStatusCancelled   = "status_cancelled"
	KeyStatusIgnored     = "status_ignored"
	KeyDownloadCompleted = "download_completed"
	KeyDownloadSummary   = "download_summary"
	KeyNothingSelected   = "nothing_selected"
	KeyPleaseEnterURL    = "please_enter_url"
	KeyPleaseEnterRanges = "please_enter_ranges"
	KeyErrorRevealing    = "error_revealing"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations.
// Status texts with verbs are fmt format strings.
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Playlist Downloader",
		KeyDownload:          "Download",
		KeyStop:              "Stop",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyPlaylistURL:       "Playlist URL",
		KeyRanges:            "Videos",
		KeyResolution:        "Quality",
		KeyFormat:            "Format",
		KeyAudioQuality:      "MP3 quality (kbps)",
		KeyBaseDirectory:     "Save to",
		KeyFilenameTemplate:  "Filename Template",
		KeyAutoReveal:        "Open folder when done",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeyEnterURL:          "https://www.youtube.com/playlist?list=...",
		KeyRangesPlaceholder: "1-52 or 1-20,30-52",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyStatusReady:       "Ready",
		KeyStatusFetching:    "Reading playlist...",
		KeyStatusStarting:    "Downloading %d of %d videos from %s",
		KeyStatusDownloading: "Downloading: %s",
		KeyStatusFileDone:    "Completed: %s",
		KeyStatusError:       "Error: %s",
		KeyStatusCancelled:   "Download cancelled",
		KeyStatusIgnored:     "ignored: %s",
		KeyDownloadCompleted: "Download completed",
		KeyDownloadSummary:   "%d videos saved to %s",
		KeyNothingSelected:   "No videos selected to download.",
		KeyPleaseEnterURL:    "Please enter a playlist URL",
		KeyPleaseEnterRanges: "Please enter the videos to download",
		KeyErrorRevealing:    "Error opening folder",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Загрузчик плейлистов",
		KeyDownload:          "Скачать",
		KeyStop:              "Стоп",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyPlaylistURL:       "URL плейлиста",
		KeyRanges:            "Видео",
		KeyResolution:        "Качество",
		KeyFormat:            "Формат",
		KeyAudioQuality:      "Качество MP3 (кбит/с)",
		KeyBaseDirectory:     "Сохранять в",
		KeyFilenameTemplate:  "Шаблон имени файла",
		KeyAutoReveal:        "Открыть папку по завершении",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeyEnterURL:          "https://www.youtube.com/playlist?list=...",
		KeyRangesPlaceholder: "1-52 или 1-20,30-52",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyStatusReady:       "Готово к работе",
		KeyStatusFetching:    "Чтение плейлиста...",
		KeyStatusStarting:    "Загрузка %d из %d видео: %s",
		KeyStatusDownloading: "Загрузка: %s",
		KeyStatusFileDone:    "Завершено: %s",
		KeyStatusError:       "Ошибка: %s",
		KeyStatusCancelled:   "Загрузка отменена",
		KeyStatusIgnored:     "пропущено: %s",
		KeyDownloadCompleted: "Загрузка завершена",
		KeyDownloadSummary:   "Сохранено видео: %d, папка %s",
		KeyNothingSelected:   "Не выбрано ни одного видео для загрузки.",
		KeyPleaseEnterURL:    "Пожалуйста, введите URL плейлиста",
		KeyPleaseEnterRanges: "Пожалуйста, укажите видео для загрузки",
		KeyErrorRevealing:    "Ошибка открытия папки",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Playlist Downloader",
		KeyDownload:          "Baixar",
		KeyStop:              "Parar",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyPlaylistURL:       "URL da playlist",
		KeyRanges:            "Vídeos",
		KeyResolution:        "Qualidade",
		KeyFormat:            "Formato",
		KeyAudioQuality:      "Qualidade MP3 (kbps)",
		KeyBaseDirectory:     "Salvar em",
		KeyFilenameTemplate:  "Modelo de Nome de Arquivo",
		KeyAutoReveal:        "Abrir pasta ao concluir",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeyEnterURL:          "https://www.youtube.com/playlist?list=...",
		KeyRangesPlaceholder: "1-52 ou 1-20,30-52",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyStatusReady:       "Pronto",
		KeyStatusFetching:    "Lendo playlist...",
		KeyStatusStarting:    "Baixando %d de %d vídeos de %s",
		KeyStatusDownloading: "Baixando: %s",
		KeyStatusFileDone:    "Concluído: %s",
		KeyStatusError:       "Erro: %s",
		KeyStatusCancelled:   "Download cancelado",
		KeyStatusIgnored:     "ignorados: %s",
		KeyDownloadCompleted: "Download concluído",
		KeyDownloadSummary:   "%d vídeos salvos em %s",
		KeyNothingSelected:   "Nenhum vídeo selecionado para baixar.",
		KeyPleaseEnterURL:    "Por favor, digite a URL da playlist",
		KeyPleaseEnterRanges: "Por favor, informe os vídeos a baixar",
		KeyErrorRevealing:    "Erro ao abrir pasta",
	}
}
