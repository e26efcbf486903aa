package hyprconf

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/hyprsettings/internal/logging"
	"github.com/wizzomafizzo/hyprsettings/internal/schema"
)

// Reader extracts settings from the configuration files under a root directory.
// Every call re-reads the file; nothing is cached between calls.
type Reader struct {
	fs   afero.Fs
	root string
}

// NewReader creates a reader for the files in root.
func NewReader(fs afero.Fs, root string) *Reader {
	return &Reader{fs: fs, root: root}
}

// Path returns the file backing a domain.
func (r *Reader) Path(d schema.Domain) string {
	return filepath.Join(r.root, d.File())
}

// Read returns the settings found for a domain. It never fails: when the file is
// missing or cannot be read the full default map is returned, never a mix of real
// and default values. Otherwise the map is sparse; keys that are absent or do not
// parse are left out. Loose enabled flags are present whenever their block is.
func (r *Reader) Read(ctx context.Context, d schema.Domain) schema.Map {
	logger := logging.Get(ctx)
	path := r.Path(d)

	text, _, err := loadFile(r.fs, path)
	if err != nil {
		event := logger.Warn()
		if errors.Is(err, ErrMissingFile) {
			event = logger.Debug()
		}
		event.Err(err).Str("domain", d.String()).Str("path", path).Msg("Using default settings")
		return schema.Defaults(d)
	}

	return extract(ctx, text, d)
}

// extract reads every setting of a domain out of a file's text.
func extract(ctx context.Context, text string, d schema.Domain) schema.Map {
	logger := logging.Get(ctx)
	out := schema.Map{}

	for _, s := range schema.Settings(d) {
		value, err := extractSetting(text, s)
		if err != nil {
			logger.Debug().Err(err).Str("key", s.Key.String()).Msg("Setting not read")
			continue
		}
		out[s.Key] = value
	}
	return out
}

func extractSetting(text string, s schema.Setting) (schema.Value, error) {
	_, scope, err := locate(text, s.Block)
	if err != nil {
		return schema.Value{}, err
	}

	masked := text
	if len(s.Block) > 0 {
		masked = maskNested(text, scope)
	}

	if s.Loose {
		return schema.Bool(looseEnabled(masked)), nil
	}

	f, ok := findField(masked, scope, s.Name, false)
	if !ok {
		return schema.Value{}, errNotFound(s)
	}
	return parseLiteral(s, text[f.valueStart:f.valueEnd])
}
