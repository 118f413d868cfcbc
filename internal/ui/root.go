package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/playlist-downloader/internal/config"
	"github.com/ytget/playlist-downloader/internal/download"
	"github.com/ytget/playlist-downloader/internal/model"
	"github.com/ytget/playlist-downloader/internal/platform"
)

// FilenameTemplater is implemented by engines whose output template can be
// changed from the settings dialog
type FilenameTemplater interface {
	SetFilenameTemplate(template string)
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	runner       download.Runner
	templater    FilenameTemplater
	settings     *config.Settings
	localization *Localization

	form             *widget.Form
	urlEntry         *widget.Entry
	rangeEntry       *widget.Entry
	resolutionSelect *widget.Select
	formatSelect     *widget.Select
	bitrateSelect    *widget.Select
	progressBar      *widget.ProgressBar
	statusLabel      *widget.Label
	downloadBtn      *widget.Button

	// Running job
	runMutex sync.Mutex
	cancel   context.CancelFunc

	// UI update debouncing
	lastUIUpdate  time.Time
	uiUpdateMutex sync.Mutex

	// Modal notifications
	showError       func(err error, parent fyne.Window)
	showInformation func(title, message string, parent fyne.Window)
}

// NewRootUI creates and initializes the main UI. templater may be nil.
func NewRootUI(window fyne.Window, settings *config.Settings, runner download.Runner, templater FilenameTemplater) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		runner:       runner,
		templater:    templater,
		settings:     settings,
		localization: localization,

		showError:       dialog.ShowError,
		showInformation: dialog.ShowInformation,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetOnClosed(ui.Cancel)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.Validator = validateURL

	ui.rangeEntry = widget.NewEntry()
	ui.rangeEntry.SetPlaceHolder(ui.localization.GetText(KeyRangesPlaceholder))
	// Trigger download when user presses Enter in the range field
	ui.rangeEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	resolutions := make([]string, 0, len(model.Resolutions()))
	for _, res := range model.Resolutions() {
		resolutions = append(resolutions, string(res))
	}
	ui.resolutionSelect = widget.NewSelect(resolutions, nil)
	ui.resolutionSelect.SetSelected(string(ui.settings.GetResolution()))

	bitrates := make([]string, 0, len(model.AudioBitrates()))
	for _, bitrate := range model.AudioBitrates() {
		bitrates = append(bitrates, string(bitrate))
	}
	ui.bitrateSelect = widget.NewSelect(bitrates, nil)
	ui.bitrateSelect.SetSelected(string(ui.settings.GetAudioBitrate()))

	kinds := make([]string, 0, len(model.OutputKinds()))
	for _, kind := range model.OutputKinds() {
		kinds = append(kinds, kindLabel(kind))
	}
	ui.formatSelect = widget.NewSelect(kinds, ui.onFormatChanged)
	ui.formatSelect.SetSelected(kindLabel(ui.settings.GetOutputKind()))
	ui.onFormatChanged(ui.formatSelect.Selected)

	ui.form = widget.NewForm(
		widget.NewFormItem(ui.localization.GetText(KeyPlaylistURL), ui.urlEntry),
		widget.NewFormItem(ui.localization.GetText(KeyRanges), ui.rangeEntry),
		widget.NewFormItem(ui.localization.GetText(KeyResolution), ui.resolutionSelect),
		widget.NewFormItem(ui.localization.GetText(KeyFormat), ui.formatSelect),
		widget.NewFormItem(ui.localization.GetText(KeyAudioQuality), ui.bitrateSelect),
	)

	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Min = ProgressMin
	ui.progressBar.Max = ProgressMax

	ui.statusLabel = widget.NewLabel(ui.localization.GetText(KeyStatusReady))
	ui.statusLabel.Wrapping = fyne.TextWrapWord

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	folderBtn := widget.NewButton(IconFolder, ui.onRevealBaseDirectory)
	folderBtn.Importance = widget.LowImportance

	buttons := container.NewBorder(nil, nil, container.NewHBox(settingsBtn, folderBtn), ui.downloadBtn)

	content := container.NewVBox(
		ui.form,
		widget.NewSeparator(),
		ui.progressBar,
		ui.statusLabel,
		buttons,
	)

	ui.window.SetContent(container.NewPadded(content))

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	availableLanguages := ui.localization.GetAvailableLanguages()
	for _, code := range slices.Sorted(maps.Keys(availableLanguages)) {
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(code)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()
	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.rangeEntry.SetPlaceHolder(ui.localization.GetText(KeyRangesPlaceholder))

	labels := []string{KeyPlaylistURL, KeyRanges, KeyResolution, KeyFormat, KeyAudioQuality}
	for i, key := range labels {
		ui.form.Items[i].Text = ui.localization.GetText(key)
	}
	ui.form.Refresh()

	if ui.IsRunning() {
		ui.downloadBtn.SetText(ui.localization.GetText(KeyStop))
	} else {
		ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
		ui.statusLabel.SetText(ui.localization.GetText(KeyStatusReady))
	}
}

// validateURL validates the entered playlist URL
func validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty is allowed
	}
	return download.ValidateURL(input)
}

// kindLabel returns the label shown in the format select, e.g. "MP4"
func kindLabel(kind model.OutputKind) string {
	return strings.ToUpper(string(kind))
}

// kindFromLabel is the inverse of kindLabel
func kindFromLabel(label string) model.OutputKind {
	return model.OutputKind(strings.ToLower(label))
}

// onFormatChanged enables the MP3 quality select only for audio downloads
func (ui *RootUI) onFormatChanged(label string) {
	if ui.bitrateSelect == nil {
		return
	}
	if kindFromLabel(label) == model.KindAudio {
		ui.bitrateSelect.Enable()
	} else {
		ui.bitrateSelect.Disable()
	}
}

// currentRequest snapshots the form into a download request
func (ui *RootUI) currentRequest() model.DownloadRequest {
	return model.DownloadRequest{
		PlaylistURL: strings.TrimSpace(ui.urlEntry.Text),
		Ranges:      strings.TrimSpace(ui.rangeEntry.Text),
		Resolution:  model.Resolution(ui.resolutionSelect.Selected),
		Kind:        kindFromLabel(ui.formatSelect.Selected),
		Bitrate:     model.AudioBitrate(ui.bitrateSelect.Selected),
	}
}

// onDownloadClick starts a download, or stops the running one
func (ui *RootUI) onDownloadClick() {
	if ui.IsRunning() {
		ui.Cancel()
		return
	}

	req := ui.currentRequest()
	if req.PlaylistURL == "" {
		ui.statusLabel.SetText(ui.localization.GetText(KeyPleaseEnterURL))
		return
	}
	if req.Ranges == "" {
		ui.statusLabel.SetText(ui.localization.GetText(KeyPleaseEnterRanges))
		return
	}
	if err := download.ValidateURL(req.PlaylistURL); err != nil {
		ui.statusLabel.SetText(errorText(ui.localization, err))
		ui.showError(err, ui.window)
		return
	}

	ui.settings.SaveRequestChoices(req)

	ctx, cancel := context.WithCancel(context.Background())
	ui.setRunning(cancel)
	ui.progressBar.SetValue(ProgressMin)
	ui.statusLabel.SetText(ui.localization.GetText(KeyStatusFetching))

	log.Printf("Starting download of %s (range %q, %s)", req.PlaylistURL, req.Ranges, req.Kind)
	go ui.runJob(ctx, req)
}

// runJob runs the request on a background goroutine and hands the result
// back to the UI thread
func (ui *RootUI) runJob(ctx context.Context, req model.DownloadRequest) {
	job, err := ui.runner.Run(ctx, req, ui.observe)
	fyne.Do(func() {
		ui.finishJob(job, err)
	})
}

// observe receives job snapshots from the runner goroutine
func (ui *RootUI) observe(job model.Job) {
	if job.Status == model.JobStatusDownloading && job.LastEvent.Phase == model.PhaseDownloading && !ui.shouldRefresh() {
		return
	}
	fyne.Do(func() {
		ui.renderJob(job)
	})
}

// shouldRefresh limits byte-level progress updates to one per UIUpdateDebounce
func (ui *RootUI) shouldRefresh() bool {
	ui.uiUpdateMutex.Lock()
	defer ui.uiUpdateMutex.Unlock()

	now := time.Now()
	if now.Sub(ui.lastUIUpdate) < UIUpdateDebounce {
		return false
	}
	ui.lastUIUpdate = now
	return true
}

// renderJob shows a job snapshot in the progress bar and status line
func (ui *RootUI) renderJob(job model.Job) {
	ui.progressBar.SetValue(progressValue(job))
	ui.statusLabel.SetText(statusText(ui.localization, job))
}

// finishJob reports the outcome of a run
func (ui *RootUI) finishJob(job *model.Job, err error) {
	ui.clearRunning()

	if err != nil {
		text := errorText(ui.localization, err)
		ui.statusLabel.SetText(text)
		switch {
		case errors.Is(err, context.Canceled):
		case errors.Is(err, download.ErrNothingSelected):
			ui.showError(errors.New(text), ui.window)
		default:
			ui.showError(err, ui.window)
		}
		return
	}

	ui.renderJob(*job)
	summary := fmt.Sprintf(ui.localization.GetText(KeyDownloadSummary), len(job.Indices), job.Destination)
	ui.showInformation(ui.localization.GetText(KeyDownloadCompleted), summary, ui.window)

	if ui.settings.GetAutoRevealOnComplete() {
		ui.revealDirectory(job.Destination)
	}
}

// IsRunning reports whether a download started from this window is active
func (ui *RootUI) IsRunning() bool {
	ui.runMutex.Lock()
	defer ui.runMutex.Unlock()
	return ui.cancel != nil
}

// Cancel stops the running download, if any
func (ui *RootUI) Cancel() {
	ui.runMutex.Lock()
	defer ui.runMutex.Unlock()
	if ui.cancel != nil {
		log.Printf("Cancelling running download")
		ui.cancel()
	}
}

func (ui *RootUI) setRunning(cancel context.CancelFunc) {
	ui.runMutex.Lock()
	ui.cancel = cancel
	ui.runMutex.Unlock()

	ui.downloadBtn.SetText(ui.localization.GetText(KeyStop))
	ui.downloadBtn.Importance = widget.DangerImportance
	ui.downloadBtn.Refresh()
}

func (ui *RootUI) clearRunning() {
	ui.runMutex.Lock()
	if ui.cancel != nil {
		ui.cancel()
		ui.cancel = nil
	}
	ui.runMutex.Unlock()

	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.downloadBtn.Importance = widget.HighImportance
	ui.downloadBtn.Refresh()
}

// onRevealBaseDirectory opens the directory playlist folders are saved in
func (ui *RootUI) onRevealBaseDirectory() {
	dir := ui.runner.BaseDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		ui.showError(err, ui.window)
		return
	}
	ui.revealDirectory(dir)
}

func (ui *RootUI) revealDirectory(dir string) {
	if err := platform.RevealDirectory(dir); err != nil {
		log.Printf("Failed to reveal %s: %v", dir, err)
		ui.showError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorRevealing), err), ui.window)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.applySettings)
}

// applySettings pushes saved settings into the running services
func (ui *RootUI) applySettings() {
	ui.runner.SetBaseDirectory(ui.settings.GetBaseDirectory())
	if ui.templater != nil {
		ui.templater.SetFilenameTemplate(ui.settings.GetFilenameTemplate())
	}

	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
}
