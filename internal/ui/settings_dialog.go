package ui

import (
	"maps"
	"slices"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/playlist-downloader/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	baseDirEntry    *widget.Entry
	filenameEntry   *widget.Entry
	languageSelect  *widget.Select
	autoRevealCheck *widget.Check
}

// ShowSettingsDialog creates the settings dialog and shows it.
// onSaved runs after the new values are stored.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.baseDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDirectory)
	baseDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.baseDirEntry)

	sd.filenameEntry = widget.NewEntry()
	sd.filenameEntry.SetPlaceHolder(config.DefaultFilenameTemplate)

	languageOptions := slices.Sorted(maps.Keys(sd.settings.GetLanguageOptions()))
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.autoRevealCheck = widget.NewCheck(text(KeyAutoReveal), nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyBaseDirectory)+":"),
		baseDirRow,

		widget.NewLabel(text(KeyFilenameTemplate)+":"),
		sd.filenameEntry,

		sd.autoRevealCheck,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogW, SettingsDialogH))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.baseDirEntry.SetText(sd.settings.GetBaseDirectory())
	sd.filenameEntry.SetText(sd.settings.GetFilenameTemplate())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.baseDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if baseDir := strings.TrimSpace(sd.baseDirEntry.Text); baseDir != "" {
		sd.settings.SetBaseDirectory(baseDir)
	}

	// An empty template resets to the default
	sd.settings.SetFilenameTemplate(strings.TrimSpace(sd.filenameEntry.Text))

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	sd.settings.SetAutoRevealOnComplete(sd.autoRevealCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
