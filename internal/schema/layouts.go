package schema

import "strings"

// MaxLayouts is the number of keyboard layouts that can be active at once.
const MaxLayouts = 4

// Layout is a keyboard layout code with its display name.
type Layout struct {
	Code string
	Name string
}

// SwitchMethod is an XKB option that toggles between layouts.
type SwitchMethod struct {
	Option string
	Label  string
}

var layouts = []Layout{
	{"us", "English (US)"}, {"ara", "Arabic"}, {"uk", "Ukrainian"}, {"ru", "Russian"},
	{"de", "German"}, {"fr", "French"}, {"es", "Spanish"}, {"it", "Italian"},
	{"jp", "Japanese"}, {"kr", "Korean"}, {"cn", "Chinese"}, {"tr", "Turkish"},
	{"pl", "Polish"}, {"cz", "Czech"}, {"dk", "Danish"}, {"no", "Norwegian"},
	{"se", "Swedish"}, {"fi", "Finnish"}, {"nl", "Dutch"}, {"be", "Belgian"},
	{"pt", "Portuguese"}, {"br", "Brazilian"}, {"gr", "Greek"},
}

var switchMethods = []SwitchMethod{
	{"grp:alt_shift_toggle", "Alt + Shift"},
	{"grp:alts_toggle", "Left Alt + Right Alt"},
	{"grp:ctrl_shift_toggle", "Ctrl + Shift"},
	{"grp:caps_toggle", "Caps Lock"},
	{"grp:win_space_toggle", "Win + Space"},
	{"grp:alt_space_toggle", "Alt + Space"},
}

// Layouts returns the known keyboard layouts.
func Layouts() []Layout {
	out := make([]Layout, len(layouts))
	copy(out, layouts)
	return out
}

// SwitchMethods returns the known layout switch options.
func SwitchMethods() []SwitchMethod {
	out := make([]SwitchMethod, len(switchMethods))
	copy(out, switchMethods)
	return out
}

// DescribeLayouts renders a kb_layout value as "English (US) + Arabic".
// Unknown codes are shown as is.
func DescribeLayouts(value string) string {
	var names []string
	for _, code := range strings.Split(value, ",") {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		name := code
		for _, l := range layouts {
			if l.Code == code {
				name = l.Name
				break
			}
		}
		names = append(names, name)
	}
	return strings.Join(names, " + ")
}

// DescribeSwitchMethod returns the label of the first known switch option contained
// in a kb_options value, or "" when none matches.
func DescribeSwitchMethod(options string) string {
	for _, m := range switchMethods {
		if strings.Contains(options, m.Option) {
			return m.Label
		}
	}
	return ""
}
