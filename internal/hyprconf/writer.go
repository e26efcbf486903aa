package hyprconf

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/hyprsettings/internal/logging"
	"github.com/wizzomafizzo/hyprsettings/internal/reload"
	"github.com/wizzomafizzo/hyprsettings/internal/schema"
)

const defaultIndent = "  "

// Notifier asks the window manager to pick up a written file.
type Notifier interface {
	Reload(ctx context.Context) reload.Result
}

// WriterOptions configures a Writer.
type WriterOptions struct {
	// Notifier is invoked after every successful write. Nil skips reloading.
	Notifier Notifier
	// Backup keeps a copy of the previous contents next to the file before it changes.
	Backup bool
}

// Writer patches settings into the configuration files under a root directory.
type Writer struct {
	fs       afero.Fs
	notifier Notifier
	root     string
	backup   bool
}

// NewWriter creates a writer for the files in root.
func NewWriter(fs afero.Fs, root string, opts WriterOptions) *Writer {
	return &Writer{
		fs:       fs,
		root:     root,
		notifier: opts.Notifier,
		backup:   opts.Backup,
	}
}

// Result describes what a write did.
type Result struct {
	Path       string
	BackupPath string
	Reload     reload.Result
	Applied    []schema.Key
	Inserted   []schema.Key
	Skipped    []schema.Key
	Changed    bool
}

// Write applies a delta to a domain's file. The delta is validated before the file is
// read; any invalid entry rejects the whole write. Only value tokens change, and keys
// missing from the file are skipped except those flagged for insertion. The file is
// written once, and only if its contents changed. A reload follows every successful
// write and its outcome never turns success into failure.
func (w *Writer) Write(ctx context.Context, d schema.Domain, delta schema.Map) (*Result, error) {
	logger := logging.Get(ctx)

	if err := delta.Validate(d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDelta, err)
	}

	path := filepath.Join(w.root, d.File())
	text, perm, err := loadFile(w.fs, path)
	if err != nil {
		return nil, err
	}

	result := &Result{Path: path}
	updated := text
	for _, key := range delta.Keys() {
		setting, _ := schema.Lookup(key)
		next, status, err := patch(updated, setting, delta[key])
		if err != nil {
			logger.Debug().Err(err).Str("key", key.String()).Msg("Skipping setting")
		}
		switch status {
		case patchApplied:
			result.Applied = append(result.Applied, key)
		case patchInserted:
			result.Inserted = append(result.Inserted, key)
		default:
			result.Skipped = append(result.Skipped, key)
		}
		updated = next
	}

	if updated != text {
		if w.backup {
			backupPath, err := createBackup(w.fs, path, text, perm)
			if err != nil {
				return nil, err
			}
			result.BackupPath = backupPath
		}
		if err := storeFile(w.fs, path, updated, perm); err != nil {
			return nil, err
		}
		result.Changed = true
	}

	logger.Info().
		Str("domain", d.String()).
		Str("path", path).
		Int("applied", len(result.Applied)).
		Int("inserted", len(result.Inserted)).
		Int("skipped", len(result.Skipped)).
		Bool("changed", result.Changed).
		Msg("Settings written")

	if w.notifier != nil {
		result.Reload = w.notifier.Reload(ctx)
	}
	return result, nil
}

type patchStatus int

const (
	patchSkipped patchStatus = iota
	patchApplied
	patchInserted
)

// patch replaces the value token of one setting, or inserts the setting when it is
// flagged for insertion and missing from its block.
func patch(text string, s schema.Setting, v schema.Value) (string, patchStatus, error) {
	found, scope, err := locate(text, s.Block)
	if err != nil {
		return text, patchSkipped, err
	}

	masked := text
	if len(s.Block) > 0 {
		masked = maskNested(text, scope)
	}

	rendered := s.Format(v)
	// Loose flags match in any case, as on read.
	if f, ok := findField(masked, scope, s.Name, s.Loose); ok {
		return text[:f.valueStart] + rendered + text[f.valueEnd:], patchApplied, nil
	}

	if !s.Insert || len(s.Block) == 0 {
		return text, patchSkipped, errNotFound(s)
	}

	indent := bodyIndent(text, found)
	at := found.open + 1
	line := "\n" + indent + s.Name + " = " + rendered

	// Content sharing the opener's line moves to a line of its own.
	rest := text[at:lineEnd(text, at, len(text))]
	if trimmed := strings.TrimLeft(rest, " \t"); strings.TrimSpace(trimmed) != "" {
		if strings.HasPrefix(trimmed, "}") {
			line += "\n"
		} else {
			line += "\n" + indent
		}
		at += len(rest) - len(trimmed)
		return text[:found.open+1] + line + text[at:], patchInserted, nil
	}
	return text[:at] + line + text[at:], patchInserted, nil
}

// bodyIndent returns the indentation of the first line inside a block.
func bodyIndent(text string, b block) string {
	body := text[b.open+1 : b.close]
	nl := strings.IndexByte(body, '\n')
	if nl < 0 {
		return defaultIndent
	}
	rest := body[nl+1:]
	indent := rest[:len(rest)-len(strings.TrimLeft(rest, " \t"))]
	if indent == "" || strings.HasPrefix(rest[len(indent):], "}") {
		return defaultIndent
	}
	return indent
}

// IsInvalidDelta reports whether err rejected a write before the file was read.
func IsInvalidDelta(err error) bool {
	return errors.Is(err, ErrInvalidDelta)
}
