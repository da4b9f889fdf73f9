package usage

import "fmt"

// InvalidRoot is returned when a configured root path does not exist
// or is not a directory.
func InvalidRoot(path string) *Error {
	return &Error{
		Kind:    ErrInvalidRoot,
		Message: fmt.Sprintf("psel: root '%s' does not exist or is not a directory", path),
	}
}

// NoCandidates is returned when enumeration yielded zero candidates
// across all configured roots.
func NoCandidates() *Error {
	return &Error{
		Kind:    ErrNoCandidates,
		Message: "psel: no candidates available (check 'psel roots list')",
	}
}

// NoSelection is returned when a query did not resolve to any candidate,
// or the interactive prompt was cancelled.
func NoSelection() *Error {
	return &Error{
		Kind:    ErrNoSelection,
		Message: "psel: no selection",
	}
}

// InvalidQuery is returned when a query contains characters outside the
// accepted set or exceeds the maximum length.
func InvalidQuery(reason string) *Error {
	return &Error{
		Kind:    ErrInvalidQuery,
		Message: fmt.Sprintf("psel: invalid query: %s", reason),
	}
}

// InvalidConfigKey is returned when a config key is not recognized.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("psel: unknown config key '%s'. See 'psel config list'.", key),
	}
}
