package hyprconf

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/hyprsettings/internal/constants"
)

// loadFile reads a whole configuration file. A missing file is ErrMissingFile.
func loadFile(fs afero.Fs, path string) (string, os.FileMode, error) {
	info, err := fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", 0, fmt.Errorf("%w: %s", ErrMissingFile, path)
		}
		return "", 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", 0, fmt.Errorf("%s is a directory", path)
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), info.Mode().Perm(), nil
}

// storeFile replaces a file in one step by writing a sibling temp file and renaming
// it over the original.
func storeFile(fs afero.Fs, path, text string, perm os.FileMode) error {
	tmp := path + constants.TempSuffix
	if err := afero.WriteFile(fs, tmp, []byte(text), perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := fs.Rename(tmp, path); err != nil {
		_ = fs.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// BackupPath returns the backup file path for a configuration file.
func BackupPath(path string) string {
	return path + constants.BackupSuffix
}

// HasBackup checks if a backup exists for the given configuration file.
func HasBackup(fs afero.Fs, path string) bool {
	exists, err := afero.Exists(fs, BackupPath(path))
	return err == nil && exists
}

// createBackup writes the given text to the file's backup path.
func createBackup(fs afero.Fs, path, text string, perm os.FileMode) (string, error) {
	backupPath := BackupPath(path)
	if err := afero.WriteFile(fs, backupPath, []byte(text), perm); err != nil {
		return "", fmt.Errorf("failed to write backup file: %w", err)
	}
	return backupPath, nil
}

// RestoreFromBackup replaces a configuration file with its backup.
func RestoreFromBackup(fs afero.Fs, path string) error {
	backupPath := BackupPath(path)
	data, err := afero.ReadFile(fs, backupPath)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	perm := os.FileMode(0o644)
	if info, statErr := fs.Stat(path); statErr == nil {
		perm = info.Mode().Perm()
	}
	return storeFile(fs, path, string(data), perm)
}
