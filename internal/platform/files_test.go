package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain title", "My Playlist", "My Playlist"},
		{"all invalid characters", `a\b/c:d*e?f"g<h>i|j`, "a_b_c_d_e_f_g_h_i_j"},
		{"unicode is kept", "Любимые песни ♪", "Любимые песни ♪"},
		{"slashes in title", "AC/DC: Live", "AC_DC_ Live"},
		{"empty title", "", DefaultPlaylistTitle},
		{"whitespace only", "   ", DefaultPlaylistTitle},
		{"only invalid characters", "???", "___"},
		{"parent directory", "..", DefaultPlaylistTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.input); got != tt.expected {
				t.Errorf("SanitizeFilename(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSanitizeFilenameIsSinglePathComponent(t *testing.T) {
	base := t.TempDir()
	name := SanitizeFilename(`../..\escape/attempt`)

	joined := filepath.Join(base, name)
	if filepath.Dir(joined) != base {
		t.Errorf("sanitized name %q escaped base directory: %s", name, joined)
	}
	if strings.ContainsAny(name, InvalidFilenameChars) {
		t.Errorf("sanitized name still has invalid characters: %q", name)
	}
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "Video", "My Playlist")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if filepath.Base(downloadsDir) != DownloadsDirName {
		t.Errorf("Expected directory to end with %q, got: %s", DownloadsDirName, downloadsDir)
	}
}

func TestGetDefaultBaseDir(t *testing.T) {
	baseDir, err := GetDefaultBaseDir()
	if err != nil {
		t.Fatalf("Failed to get base directory: %v", err)
	}

	if filepath.Base(baseDir) != VideoDirName {
		t.Errorf("Expected directory to end with %q, got: %s", VideoDirName, baseDir)
	}
	if filepath.Base(filepath.Dir(baseDir)) != DownloadsDirName {
		t.Errorf("Expected parent to be %q, got: %s", DownloadsDirName, baseDir)
	}
}

func TestRevealDirectory_Missing(t *testing.T) {
	err := RevealDirectory(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("Expected error for missing directory, got nil")
	}
	if !strings.Contains(err.Error(), "directory does not exist") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRevealDirectory_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "song.mp3")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if err := RevealDirectory(file); err == nil {
		t.Error("Expected error for a regular file, got nil")
	}
}
