package config

// Default configuration values (in code, not persisted)
var Defaults = map[string]func() string{
	"roots":            func() string { return "" },
	"return_full_path": func() string { return "true" },
	"min_score":        func() string { return "1" },
	"prompt_label":     func() string { return "Performer: " },
	"pager":            func() string { return "less -FRSX" },
	"theme":            func() string { return "default" },
	"enable_log":       func() string { return "true" },
	"color_success":    func() string { return "" }, // uses theme default
	"color_warning":    func() string { return "" }, // uses theme default
	"color_error":      func() string { return "" }, // uses theme default
	"color_info":       func() string { return "" }, // uses theme default
	"color_muted":      func() string { return "" }, // uses theme default
	"color_header":     func() string { return "" }, // uses theme default
}

// Get returns the value for a config key.
// It checks the config file first, then falls back to the default.
// Returns the value and whether it was found (in file or defaults).
func Get(key string) (string, bool) {
	lines, err := ReadLines()
	if err != nil {
		if defaultFn, ok := Defaults[key]; ok {
			return defaultFn(), true
		}
		return "", false
	}

	cfg, err := Parse(lines)
	if err != nil {
		if defaultFn, ok := Defaults[key]; ok {
			return defaultFn(), true
		}
		return "", false
	}

	if value, exists := cfg[key]; exists {
		return value, true
	}

	if defaultFn, ok := Defaults[key]; ok {
		return defaultFn(), true
	}

	return "", false
}

// GetAll returns all config values (user overrides merged with defaults).
func GetAll() (map[string]string, error) {
	result := make(map[string]string)

	for key, valueFn := range Defaults {
		result[key] = valueFn()
	}

	lines, err := ReadLines()
	if err != nil {
		return result, nil // Return defaults on error
	}

	cfg, err := Parse(lines)
	if err != nil {
		return result, nil
	}

	for key, value := range cfg {
		result[key] = value
	}

	return result, nil
}
