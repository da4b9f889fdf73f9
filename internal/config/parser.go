package config

import (
	"fmt"
	"strings"
)

// Parse converts raw config lines into a key=value map.
// Blank lines and comment lines (starting with #) are ignored.
// Duplicate keys keep the last value. A line without '=' or with an
// empty key is an error.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, "\uFEFF") // UTF-8 BOM
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		idx := strings.Index(trimmed, "=")
		if idx == -1 {
			return nil, fmt.Errorf("config: line %d is not a key=value pair: %q", i+1, line)
		}

		key := strings.TrimSpace(trimmed[:idx])
		if key == "" {
			return nil, fmt.Errorf("config: line %d has an empty key", i+1)
		}

		value := strings.TrimSpace(trimmed[idx+1:])
		value = unquote(value)

		cfg[key] = value
	}

	return cfg, nil
}

// Set updates or appends key=value in the given lines, preserving
// comments and blank lines. Returns the new lines and whether an
// existing entry was updated.
func Set(lines []string, key, value string) ([]string, bool) {
	newLine := key + "=" + quoteIfNeeded(value)

	for i, line := range lines {
		if lineKey, ok := keyOf(line); ok && lineKey == key {
			lines[i] = newLine
			return lines, true
		}
	}

	return append(lines, newLine), false
}

// Unset removes the line for key, preserving everything else.
// Returns the new lines and whether an entry was removed.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		if lineKey, ok := keyOf(line); ok && lineKey == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}

// keyOf extracts the key of a key=value line. Comments and blank
// lines have no key.
func keyOf(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", false
	}

	idx := strings.Index(trimmed, "=")
	if idx == -1 {
		return "", false
	}

	key := strings.TrimSpace(trimmed[:idx])
	if key == "" {
		return "", false
	}
	return key, true
}

// quoteIfNeeded wraps values containing spaces in double quotes so
// they survive a round trip through Parse.
func quoteIfNeeded(value string) string {
	if strings.Contains(value, " ") && !strings.HasPrefix(value, "\"") {
		return "\"" + value + "\""
	}
	return value
}

func unquote(value string) string {
	if len(value) >= 2 && strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
		return value[1 : len(value)-1]
	}
	return value
}
