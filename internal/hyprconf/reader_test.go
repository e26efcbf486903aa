package hyprconf

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/hyprsettings/internal/constants"
	"github.com/wizzomafizzo/hyprsettings/internal/schema"
	"github.com/wizzomafizzo/hyprsettings/internal/testutil"
)

func TestReaderFixtures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		domain schema.Domain
		want   schema.Map
	}{
		{
			name:   "decoration",
			domain: schema.Decoration,
			want: schema.Map{
				schema.BlurEnabled:          schema.Bool(true),
				schema.BlurSize:             schema.Int(8),
				schema.BlurPasses:           schema.Int(3),
				schema.BlurNoise:            schema.Float(0.0117),
				schema.BlurContrast:         schema.Float(1.3),
				schema.BlurBrightness:       schema.Float(1.0),
				schema.BlurVibrancy:         schema.Float(0.1696),
				schema.BlurVibrancyDarkness: schema.Float(0),
				schema.BlurXray:             schema.Bool(false),
				schema.BlurNewOptimizations: schema.Bool(true),
				schema.Rounding:             schema.Int(8),
				schema.ShadowEnabled:        schema.Bool(true),
				schema.ShadowRange:          schema.Int(2),
				schema.ShadowPower:          schema.Int(3),
			},
		},
		{
			name:   "general",
			domain: schema.General,
			want: schema.Map{
				schema.GapsIn:     schema.Int(5),
				schema.GapsOut:    schema.Int(10),
				schema.BorderSize: schema.Int(2),
			},
		},
		{
			name:   "input without sensitivity",
			domain: schema.Input,
			want: schema.Map{
				schema.KbLayout:              schema.String("us,de"),
				schema.KbOptions:             schema.String("compose:caps,grp:alt_shift_toggle"),
				schema.RepeatRate:            schema.Int(40),
				schema.RepeatDelay:           schema.Int(600),
				schema.NumlockByDefault:      schema.Bool(true),
				schema.TouchpadNaturalScroll: schema.Bool(true),
				schema.TouchpadScrollFactor:  schema.Float(0.4),
			},
		},
		{
			name:   "animations flag written as yes collapses to false",
			domain: schema.Animations,
			want: schema.Map{
				schema.AnimationsEnabled: schema.Bool(false),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, _ := testutil.NewTestContext(t)
			reader := NewReader(testutil.NewConfigFs(t), testutil.ConfigRoot)

			assert.Equal(t, tt.want, reader.Read(ctx, tt.domain))
		})
	}
}

func TestReaderBlurScenario(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.NewTestContext(t)
	fs := afero.NewMemMapFs()
	testutil.WriteConfig(t, fs, constants.LookAndFeelFilename, "blur { enabled = true\n size = 8\n passes = 3\n }\n")

	got := NewReader(fs, testutil.ConfigRoot).Read(ctx, schema.Decoration)

	assert.Equal(t, schema.Map{
		schema.BlurEnabled: schema.Bool(true),
		schema.BlurSize:    schema.Int(8),
		schema.BlurPasses:  schema.Int(3),
	}, got)
}

func TestReaderMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	ctx, logs := testutil.NewTestContext(t)
	reader := NewReader(afero.NewMemMapFs(), testutil.ConfigRoot)

	for _, d := range schema.Domains() {
		assert.Equal(t, schema.Defaults(d), reader.Read(ctx, d), d.String())
	}
	assert.Contains(t, logs(), "Using default settings")
}

func TestReaderDirectoryUsesDefaults(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.NewTestContext(t)
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(testutil.ConfigRoot+"/"+constants.InputFilename, 0o750))

	got := NewReader(fs, testutil.ConfigRoot).Read(ctx, schema.Input)

	assert.Equal(t, schema.Defaults(schema.Input), got)
}

func TestReaderEdgeCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		domain schema.Domain
		file   string
		text   string
		want   schema.Map
	}{
		{
			name:   "empty file is sparse",
			domain: schema.General,
			file:   constants.LookAndFeelFilename,
			text:   "",
			want:   schema.Map{},
		},
		{
			name:   "shadow block without flag reads disabled",
			domain: schema.Decoration,
			file:   constants.LookAndFeelFilename,
			text:   "shadow {\n  range = 4\n}\n",
			want:   schema.Map{schema.ShadowEnabled: schema.Bool(false), schema.ShadowRange: schema.Int(4)},
		},
		{
			name:   "explicit false reads disabled",
			domain: schema.Animations,
			file:   constants.LookAndFeelFilename,
			text:   "animations {\n  enabled = false\n}\n",
			want:   schema.Map{schema.AnimationsEnabled: schema.Bool(false)},
		},
		{
			name:   "unbalanced block hides its keys",
			domain: schema.General,
			file:   constants.LookAndFeelFilename,
			text:   "general {\n  gaps_in = 3\n",
			want:   schema.Map{},
		},
		{
			name:   "commented keys are ignored",
			domain: schema.General,
			file:   constants.LookAndFeelFilename,
			text:   "general {\n  # gaps_in = 3\n  gaps_out = 4\n}\n",
			want:   schema.Map{schema.GapsOut: schema.Int(4)},
		},
		{
			name:   "unparsable numbers are absent",
			domain: schema.General,
			file:   constants.LookAndFeelFilename,
			text:   "general {\n  gaps_in = wide\n  gaps_out = 12px\n  border_size = -1\n}\n",
			want:   schema.Map{schema.GapsOut: schema.Int(12)},
		},
		{
			name:   "mixed case booleans",
			domain: schema.Input,
			file:   constants.InputFilename,
			text:   "input {\n  numlock_by_default = TRUE\n  touchpad {\n    natural_scroll = yes\n  }\n}\n",
			want: schema.Map{
				schema.NumlockByDefault:      schema.Bool(true),
				schema.TouchpadNaturalScroll: schema.Bool(false),
			},
		},
		{
			name:   "nested keys stay in their block",
			domain: schema.Input,
			file:   constants.InputFilename,
			text:   "input {\n  touchpad {\n    sensitivity = 0.5\n  }\n}\n",
			want:   schema.Map{},
		},
		{
			name:   "negative sensitivity",
			domain: schema.Input,
			file:   constants.InputFilename,
			text:   "input {\n  sensitivity = -0.25\n}\n",
			want:   schema.Map{schema.Sensitivity: schema.Float(-0.25)},
		},
		{
			name:   "blur size never read from shadow",
			domain: schema.Decoration,
			file:   constants.LookAndFeelFilename,
			text:   "shadow {\n  size = 5\n}\nblur {\n  passes = 2\n}\n",
			want: schema.Map{
				schema.BlurEnabled:   schema.Bool(false),
				schema.BlurPasses:    schema.Int(2),
				schema.ShadowEnabled: schema.Bool(false),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, _ := testutil.NewTestContext(t)
			fs := afero.NewMemMapFs()
			testutil.WriteConfig(t, fs, tt.file, tt.text)

			assert.Equal(t, tt.want, NewReader(fs, testutil.ConfigRoot).Read(ctx, tt.domain))
		})
	}
}
