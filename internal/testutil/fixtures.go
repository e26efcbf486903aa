package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/hyprsettings/internal/constants"
)

// ConfigRoot is where fixture configuration files are placed in memory filesystems.
const ConfigRoot = "/home/test/.config/hypr"

// LoadTestdataFile loads a file from the project's testdata directory.
func LoadTestdataFile(t *testing.T, relativePath string) []byte {
	t.Helper()

	fullPath := GetTestdataPath(t, relativePath)
	content, err := os.ReadFile(fullPath) //nolint:gosec // test fixture path
	if err != nil {
		t.Fatalf("Failed to load testdata file %s: %v", relativePath, err)
	}

	return content
}

// LoadTestdataString loads a file from testdata as a string
func LoadTestdataString(t *testing.T, relativePath string) string {
	t.Helper()
	return string(LoadTestdataFile(t, relativePath))
}

// GetTestdataPath returns the full path to a testdata file
func GetTestdataPath(t *testing.T, relativePath string) string {
	t.Helper()

	// Find project root by looking for go.mod
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	projectRoot := wd
	for {
		if _, statErr := os.Stat(filepath.Join(projectRoot, "go.mod")); statErr == nil {
			break
		}
		parent := filepath.Dir(projectRoot)
		if parent == projectRoot {
			t.Fatal("Could not find project root (go.mod)")
		}
		projectRoot = parent
	}

	return filepath.Join(projectRoot, "testdata", relativePath)
}

// WriteConfig writes content to a file under ConfigRoot.
func WriteConfig(t *testing.T, fs afero.Fs, name, content string) string {
	t.Helper()

	path := filepath.Join(ConfigRoot, name)
	if err := fs.MkdirAll(ConfigRoot, 0o750); err != nil {
		t.Fatalf("Failed to create config root: %v", err)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config %s: %v", name, err)
	}
	return path
}

// ReadConfig returns the contents of a file under ConfigRoot.
func ReadConfig(t *testing.T, fs afero.Fs, name string) string {
	t.Helper()

	data, err := afero.ReadFile(fs, filepath.Join(ConfigRoot, name))
	if err != nil {
		t.Fatalf("Failed to read config %s: %v", name, err)
	}
	return string(data)
}

// NewConfigFs returns a memory filesystem holding the testdata configuration files.
func NewConfigFs(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	WriteConfig(t, fs, constants.LookAndFeelFilename, LoadTestdataString(t, constants.LookAndFeelFilename))
	WriteConfig(t, fs, constants.InputFilename, LoadTestdataString(t, constants.InputFilename))
	return fs
}
