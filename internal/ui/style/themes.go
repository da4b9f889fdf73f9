package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Success   string
	Warning   string
	Error     string
	Info      string
	Muted     string
	Header    string
	Highlight string // selected suggestion in interactive prompts
}

// BaseThemeNames lists available theme bases (auto-detects dark/light).
var BaseThemeNames = []string{
	"default",
	"mono",
	"contrast",
}

// ThemeNames lists all themes with explicit dark/light variants.
var ThemeNames = []string{
	"default-dark", "default-light",
	"mono-dark", "mono-light",
	"contrast-dark", "contrast-light",
}

// Themes contains the built-in color themes.
// Dark themes use BRIGHT colors (high contrast on dark backgrounds).
// Light themes use DARK colors (high contrast on light/white backgrounds).
var Themes = map[string]ColorConfig{
	// Classic dark - traditional bright terminal colors for dark backgrounds.
	// Uses the standard 16-color palette for maximum compatibility.
	"default-dark": {
		Success:   "10",  // bright green
		Warning:   "11",  // bright yellow
		Error:     "9",   // bright red
		Info:      "14",  // bright cyan
		Muted:     "245", // medium gray
		Header:    "bold",
		Highlight: "14", // bright cyan
	},

	// Classic light - dark saturated colors for light/white backgrounds.
	"default-light": {
		Success:   "28",  // dark green
		Warning:   "130", // dark orange
		Error:     "124", // dark red
		Info:      "27",  // dark blue
		Muted:     "244", // gray
		Header:    "bold",
		Highlight: "27", // dark blue
	},

	// Monochrome dark - shades of gray only.
	"mono-dark": {
		Success:   "252",
		Warning:   "250",
		Error:     "255",
		Info:      "248",
		Muted:     "240",
		Header:    "bold",
		Highlight: "255",
	},

	// Monochrome light - shades of gray only.
	"mono-light": {
		Success:   "235",
		Warning:   "238",
		Error:     "232",
		Info:      "240",
		Muted:     "247",
		Header:    "bold",
		Highlight: "232",
	},

	// High contrast dark - maximum legibility.
	"contrast-dark": {
		Success:   "46",  // pure green
		Warning:   "226", // pure yellow
		Error:     "196", // pure red
		Info:      "51",  // pure cyan
		Muted:     "250",
		Header:    "bold",
		Highlight: "226",
	},

	// High contrast light - maximum legibility on white.
	"contrast-light": {
		Success:   "22", // deep green
		Warning:   "94", // brown
		Error:     "88", // deep red
		Info:      "18", // navy
		Muted:     "240",
		Header:    "bold",
		Highlight: "18",
	},
}

// colorConfigKeys maps config keys to ColorConfig field names.
var colorConfigKeys = map[string]string{
	"color_success": "Success",
	"color_warning": "Warning",
	"color_error":   "Error",
	"color_info":    "Info",
	"color_muted":   "Muted",
	"color_header":  "Header",
}

// IsDarkBackground returns true if the terminal has a dark background.
// Uses termenv to query the terminal. Returns true if detection fails.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName takes a theme name and returns the full theme name.
// If the name doesn't have a -dark/-light suffix, it appends one based
// on terminal background detection.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}

	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds a ColorConfig from the given configuration map.
// Resolution priority:
//  1. Environment variable (PSEL_COLOR_*)
//  2. Config file value
//  3. Theme value (from theme config)
//  4. Default theme (auto-detected based on terminal background)
func LoadColorConfig(cfg map[string]string) ColorConfig {
	themeName := ResolveThemeName("default")

	if envTheme := os.Getenv("PSEL_THEME"); envTheme != "" {
		themeName = ResolveThemeName(envTheme)
	} else if cfgTheme, ok := cfg["theme"]; ok && cfgTheme != "" {
		themeName = ResolveThemeName(cfgTheme)
	}

	// Fall back to default-dark if unknown
	theme, ok := Themes[themeName]
	if !ok {
		theme = Themes["default-dark"]
	}

	result := theme

	for configKey, fieldName := range colorConfigKeys {
		envKey := "PSEL_" + strings.ToUpper(configKey)
		if envVal := os.Getenv(envKey); envVal != "" {
			setColorField(&result, fieldName, envVal)
			continue
		}

		if cfgVal, ok := cfg[configKey]; ok && cfgVal != "" {
			setColorField(&result, fieldName, cfgVal)
		}
	}

	return result
}

// setColorField sets a field on ColorConfig by name.
func setColorField(c *ColorConfig, field, value string) {
	switch field {
	case "Success":
		c.Success = value
	case "Warning":
		c.Warning = value
	case "Error":
		c.Error = value
	case "Info":
		c.Info = value
	case "Muted":
		c.Muted = value
	case "Header":
		c.Header = value
	}
}

// IsValidTheme checks whether name (with or without variant suffix)
// refers to a built-in theme.
func IsValidTheme(name string) bool {
	if _, ok := Themes[name]; ok {
		return true
	}
	for _, base := range BaseThemeNames {
		if name == base {
			return true
		}
	}
	return false
}
