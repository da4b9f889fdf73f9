package config

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Selection-related typed accessors over the raw key=value store.

// Roots returns the configured performer root directories in order.
// The stored value joins paths with the OS path-list separator
// (':' on unix, ';' on windows). Empty segments are dropped.
func Roots() []string {
	value, _ := Get("roots")
	return SplitRoots(value)
}

// SplitRoots splits a stored roots value into individual paths.
func SplitRoots(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	var roots []string
	for _, part := range strings.Split(value, string(filepath.ListSeparator)) {
		part = strings.TrimSpace(part)
		if part != "" {
			roots = append(roots, part)
		}
	}
	return roots
}

// JoinRoots converts a root list back to its stored representation.
func JoinRoots(roots []string) string {
	return strings.Join(roots, string(filepath.ListSeparator))
}

// ReturnFullPath reports whether selections are presented as full paths.
func ReturnFullPath() bool {
	value, _ := Get("return_full_path")
	return value == "true"
}

// MinScore returns the configured minimum similarity score, clamped to
// the valid 1-100 range. Unparseable values fall back to the default.
func MinScore() int {
	value, _ := Get("min_score")
	n, err := strconv.Atoi(value)
	if err != nil {
		n = 1
	}
	if n < 1 {
		n = 1
	}
	if n > 100 {
		n = 100
	}
	return n
}

// PromptLabel returns the label shown by the interactive prompt.
func PromptLabel() string {
	value, _ := Get("prompt_label")
	if value == "" {
		return "Performer: "
	}
	return value
}
