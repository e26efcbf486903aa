package schema

import (
	"fmt"
	"strings"
)

// Keys of every known setting.
const (
	BlurEnabled           Key = "blur_enabled"
	BlurSize              Key = "blur_size"
	BlurPasses            Key = "blur_passes"
	BlurNoise             Key = "blur_noise"
	BlurContrast          Key = "blur_contrast"
	BlurBrightness        Key = "blur_brightness"
	BlurVibrancy          Key = "blur_vibrancy"
	BlurVibrancyDarkness  Key = "blur_vibrancy_darkness"
	BlurXray              Key = "blur_xray"
	BlurNewOptimizations  Key = "blur_new_optimizations"
	Rounding              Key = "rounding"
	ShadowEnabled         Key = "shadow_enabled"
	ShadowRange           Key = "shadow_range"
	ShadowPower           Key = "shadow_power"
	GapsIn                Key = "gaps_in"
	GapsOut               Key = "gaps_out"
	BorderSize            Key = "border_size"
	KbLayout              Key = "kb_layout"
	KbOptions             Key = "kb_options"
	RepeatRate            Key = "repeat_rate"
	RepeatDelay           Key = "repeat_delay"
	NumlockByDefault      Key = "numlock_by_default"
	Sensitivity           Key = "sensitivity"
	TouchpadNaturalScroll Key = "touchpad_natural_scroll"
	TouchpadScrollFactor  Key = "touchpad_scroll_factor"
	AnimationsEnabled     Key = "animations_enabled"
)

const blurPrecision = 4

var (
	blurBlock     = []string{"blur"}
	shadowBlock   = []string{"shadow"}
	generalBlock  = []string{"general"}
	inputBlock    = []string{"input"}
	touchpadBlock = []string{"input", "touchpad"}
	animBlock     = []string{"animations"}
)

var table = []Setting{
	{Key: BlurEnabled, Domain: Decoration, Kind: KindBool, Block: blurBlock, Name: "enabled", Default: Bool(true), Loose: true,
		Title: "Enable Blur", Description: "Master switch for all blur effects"},
	{Key: BlurSize, Domain: Decoration, Kind: KindInt, Block: blurBlock, Name: "size", Default: Int(10), Min: 1, Max: 20,
		Title: "Blur Radius", Description: "Size of the blur effect"},
	{Key: BlurPasses, Domain: Decoration, Kind: KindInt, Block: blurBlock, Name: "passes", Default: Int(4), Min: 1, Max: 8,
		Title: "Blur Quality", Description: "Higher is smoother, affects performance"},
	{Key: BlurNoise, Domain: Decoration, Kind: KindFloat, Block: blurBlock, Name: "noise", Default: Float(0.01), Min: 0, Max: 0.1,
		Precision: blurPrecision, Title: "Glass Texture", Description: "Subtle grain for realism"},
	{Key: BlurContrast, Domain: Decoration, Kind: KindFloat, Block: blurBlock, Name: "contrast", Default: Float(1.3), Min: 0.5, Max: 2,
		Precision: blurPrecision, Title: "Color Contrast", Description: "Make colors pop through glass"},
	{Key: BlurBrightness, Domain: Decoration, Kind: KindFloat, Block: blurBlock, Name: "brightness", Default: Float(1.1), Min: 0.5, Max: 1.5,
		Precision: blurPrecision, Title: "Glass Brightness", Description: "Luminosity multiplier"},
	{Key: BlurVibrancy, Domain: Decoration, Kind: KindFloat, Block: blurBlock, Name: "vibrancy", Default: Float(0.6), Min: 0, Max: 1,
		Precision: blurPrecision, Title: "Vibrancy", Description: "Color saturation behind glass"},
	{Key: BlurVibrancyDarkness, Domain: Decoration, Kind: KindFloat, Block: blurBlock, Name: "vibrancy_darkness", Default: Float(0.2),
		Min: 0, Max: 1, Precision: blurPrecision, Title: "Vibrancy Darkness", Description: "Dark tone preservation"},
	{Key: BlurXray, Domain: Decoration, Kind: KindBool, Block: blurBlock, Name: "xray", Default: Bool(false),
		Title: "X-Ray Transparency", Description: "See through blur completely"},
	{Key: BlurNewOptimizations, Domain: Decoration, Kind: KindBool, Block: blurBlock, Name: "new_optimizations", Default: Bool(true),
		Title: "Performance Optimizations", Description: "Recommended"},
	{Key: Rounding, Domain: Decoration, Kind: KindInt, Name: "rounding", Default: Int(20), Min: 0, Max: 40,
		Title: "Corner Rounding", Description: "Radius of rounded corners in pixels"},
	{Key: ShadowEnabled, Domain: Decoration, Kind: KindBool, Block: shadowBlock, Name: "enabled", Default: Bool(true), Loose: true,
		Title: "Enable Shadows", Description: "Drop shadows behind windows"},
	{Key: ShadowRange, Domain: Decoration, Kind: KindInt, Block: shadowBlock, Name: "range", Default: Int(30), Min: 0, Max: 100,
		Title: "Shadow Range", Description: "Shadow spread in pixels"},
	{Key: ShadowPower, Domain: Decoration, Kind: KindInt, Block: shadowBlock, Name: "render_power", Default: Int(3), Min: 1, Max: 4,
		Title: "Shadow Power", Description: "Falloff power of the shadow"},

	{Key: GapsIn, Domain: General, Kind: KindInt, Block: generalBlock, Name: "gaps_in", Default: Int(5), Min: 0, Max: 30,
		Title: "Inner Gaps", Description: "Space between windows in pixels"},
	{Key: GapsOut, Domain: General, Kind: KindInt, Block: generalBlock, Name: "gaps_out", Default: Int(10), Min: 0, Max: 30,
		Title: "Outer Gaps", Description: "Space from screen edges in pixels"},
	{Key: BorderSize, Domain: General, Kind: KindInt, Block: generalBlock, Name: "border_size", Default: Int(2), Min: 0, Max: 10,
		Title: "Border Thickness", Description: "Width of window borders in pixels"},

	{Key: KbLayout, Domain: Input, Kind: KindString, Block: inputBlock, Name: "kb_layout", Default: String("us,ara"),
		validate: checkLayouts, Title: "Keyboard Layouts", Description: "Comma separated layout codes, up to four"},
	{Key: KbOptions, Domain: Input, Kind: KindString, Block: inputBlock, Name: "kb_options", Default: String("grp:alt_shift_toggle"),
		Title: "Layout Switch Keybind", Description: "XKB options, usually the layout switch method"},
	{Key: RepeatRate, Domain: Input, Kind: KindInt, Block: inputBlock, Name: "repeat_rate", Default: Int(40), Min: 10, Max: 100,
		Title: "Key Repeat Rate", Description: "How fast keys repeat"},
	{Key: RepeatDelay, Domain: Input, Kind: KindInt, Block: inputBlock, Name: "repeat_delay", Default: Int(600), Min: 200, Max: 1000,
		Title: "Key Repeat Delay", Description: "Delay before key starts repeating in ms"},
	{Key: NumlockByDefault, Domain: Input, Kind: KindBool, Block: inputBlock, Name: "numlock_by_default", Default: Bool(true),
		Title: "Numlock on Startup", Description: "Enable numlock by default"},
	{Key: Sensitivity, Domain: Input, Kind: KindFloat, Block: inputBlock, Name: "sensitivity", Default: Float(0), Min: -1, Max: 1,
		Precision: 2, Insert: true, Title: "Mouse Sensitivity", Description: "Pointer speed from -1.0 to 1.0"},
	{Key: TouchpadNaturalScroll, Domain: Input, Kind: KindBool, Block: touchpadBlock, Name: "natural_scroll", Default: Bool(false),
		Title: "Natural Scrolling", Description: "Reverse scroll direction"},
	{Key: TouchpadScrollFactor, Domain: Input, Kind: KindFloat, Block: touchpadBlock, Name: "scroll_factor", Default: Float(0.4),
		Min: 0.1, Max: 2, Precision: 2, Title: "Scroll Speed", Description: "Touchpad scrolling speed"},

	{Key: AnimationsEnabled, Domain: Animations, Kind: KindBool, Block: animBlock, Name: "enabled", Default: Bool(true), Loose: true,
		Title: "Enable Animations", Description: "Smooth window transitions"},
}

var index map[Key]int

func init() {
	var err error
	if index, err = buildIndex(table); err != nil {
		panic(err)
	}
}

// buildIndex validates the table and returns the position of every key.
func buildIndex(settings []Setting) (map[Key]int, error) {
	idx := make(map[Key]int, len(settings))
	names := map[string]Key{}
	for i, s := range settings {
		if _, dup := idx[s.Key]; dup {
			return nil, fmt.Errorf("schema: duplicate key %s", s.Key)
		}
		if _, err := ParseDomain(string(s.Domain)); err != nil {
			return nil, fmt.Errorf("schema: %s: %w", s.Key, err)
		}
		if s.Kind == KindInvalid || s.Name == "" {
			return nil, fmt.Errorf("schema: %s has no kind or name", s.Key)
		}
		if (s.Loose || s.Insert) && len(s.Block) == 0 {
			return nil, fmt.Errorf("schema: %s must be block scoped", s.Key)
		}
		if s.Loose && s.Kind != KindBool {
			return nil, fmt.Errorf("schema: loose flag %s must be boolean", s.Key)
		}
		if err := s.Check(s.Default); err != nil {
			return nil, fmt.Errorf("schema: default of %s: %w", s.Key, err)
		}

		scoped := s.Domain.File() + ":" + s.Scope() + ":" + s.Name
		if other, dup := names[scoped]; dup {
			return nil, fmt.Errorf("schema: %s and %s share %s", s.Key, other, scoped)
		}
		names[scoped] = s.Key

		idx[s.Key] = i
	}
	return idx, nil
}

// Lookup returns the setting for a key.
func Lookup(key Key) (Setting, bool) {
	i, ok := index[key]
	if !ok {
		return Setting{}, false
	}
	return table[i], true
}

// Settings returns the domain's settings in schema order.
func Settings(d Domain) []Setting {
	var out []Setting
	for _, s := range table {
		if s.Domain == d {
			out = append(out, s)
		}
	}
	return out
}

// All returns every setting in schema order.
func All() []Setting {
	out := make([]Setting, len(table))
	copy(out, table)
	return out
}

// Defaults returns a fresh map with every default of the domain.
func Defaults(d Domain) Map {
	out := Map{}
	for _, s := range Settings(d) {
		out[s.Key] = s.Default
	}
	return out
}

// checkLayouts accepts up to four comma separated layout codes.
func checkLayouts(v Value) error {
	codes := strings.Split(v.AsString(), ",")
	if len(codes) > MaxLayouts {
		return fmt.Errorf("%w: at most %d keyboard layouts, got %d", ErrInvalidText, MaxLayouts, len(codes))
	}
	for _, code := range codes {
		code = strings.TrimSpace(code)
		if code == "" || strings.ContainsAny(code, " \t") {
			return fmt.Errorf("%w: invalid layout code %q", ErrInvalidText, code)
		}
	}
	return nil
}
