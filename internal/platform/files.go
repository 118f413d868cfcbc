package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Directory names
const (
	DownloadsDirName = "Downloads"
	VideoDirName     = "Video"
)

// Filename sanitizing
const (
	// InvalidFilenameChars are rejected in Windows path components
	InvalidFilenameChars = `\/:*?"<>|`
	// FilenamePlaceholder replaces every invalid character
	FilenamePlaceholder = '_'
	// DefaultPlaylistTitle is used when a title sanitizes to nothing
	DefaultPlaylistTitle = "Untitled Playlist"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// SanitizeFilename makes free-form text safe to use as a single path
// component by replacing \ / : * ? " < > | with an underscore.
func SanitizeFilename(name string) string {
	sanitized := strings.Map(func(r rune) rune {
		if strings.ContainsRune(InvalidFilenameChars, r) {
			return FilenamePlaceholder
		}
		return r
	}, name)

	switch strings.TrimSpace(sanitized) {
	case "", ".", "..":
		return DefaultPlaylistTitle
	}
	return sanitized
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, DownloadsDirName), nil
}

// GetDefaultBaseDir returns ~/Downloads/Video, the parent of every
// per-playlist download directory
func GetDefaultBaseDir() (string, error) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(downloadsDir, VideoDirName), nil
}

// RevealDirectory opens the directory in the system file manager
func RevealDirectory(dirPath string) error {
	info, err := os.Stat(dirPath)
	if err != nil {
		return fmt.Errorf("directory does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dirPath)
	}

	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		// explorer exits with 1 even on success
		_ = exec.Command(ExplorerCommand, absPath).Run()
		return nil
	case OSLinux:
		return openDirectoryLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openDirectoryLinux tries xdg-open first and then well-known file managers
func openDirectoryLinux(dir string) error {
	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
