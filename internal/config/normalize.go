package config

import (
	"github.com/cmelnu/docconf/internal/foundation/normalization"
)

// Theme enumerates theme identifiers the tool knows about. An unknown theme
// is not an error here; it just loses the early warning.
type Theme string

const (
	ThemeRTD       Theme = "sphinx_rtd_theme"
	ThemeAlabaster Theme = "alabaster"
	ThemeClassic   Theme = "classic"
	ThemeNature    Theme = "nature"
	ThemeFuro      Theme = "furo"
	ThemeBook      Theme = "sphinx_book_theme"
	ThemePyData    Theme = "pydata_sphinx_theme"
)

var themeNormalizer = normalization.NewNormalizer(map[string]Theme{
	"sphinx_rtd_theme":    ThemeRTD,
	"alabaster":           ThemeAlabaster,
	"classic":             ThemeClassic,
	"nature":              ThemeNature,
	"furo":                ThemeFuro,
	"sphinx_book_theme":   ThemeBook,
	"pydata_sphinx_theme": ThemePyData,
}, "")

// ThemeType normalizes a raw theme identifier, returning "" when unknown.
func ThemeType(raw string) Theme {
	return themeNormalizer.Normalize(raw)
}

// Highlight schemes shipped with the renderer's highlighter that
// declarations commonly reference.
var pygmentsNormalizer = normalization.NewNormalizer(map[string]string{
	"default":  "default",
	"sphinx":   "sphinx",
	"monokai":  "monokai",
	"friendly": "friendly",
	"colorful": "colorful",
	"manni":    "manni",
	"murphy":   "murphy",
	"perldoc":  "perldoc",
	"tango":    "tango",
	"vs":       "vs",
	"xcode":    "xcode",
}, "")

// KnownPygmentsStyle reports whether the style identifier is recognized.
func KnownPygmentsStyle(raw string) bool {
	return pygmentsNormalizer.Normalize(raw) != ""
}
