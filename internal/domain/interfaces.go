package domain

import (
	"io"
)

// DirEntryInfo describes one entry returned by a DirLister.
type DirEntryInfo struct {
	Name      string
	IsDir     bool
	IsSymlink bool
}

// DirLister defines the narrow read-only view of the filesystem the
// enumerator depends on. Keeping it this small lets the core run against
// injected fake listings in tests.
type DirLister interface {
	// ListEntries returns the immediate entries of path, in the order the
	// filesystem reports them.
	ListEntries(path string) ([]DirEntryInfo, error)

	// IsDir reports whether path exists and is a directory.
	IsDir(path string) bool
}

// Enumerator builds candidate sets from configured roots.
type Enumerator interface {
	// Enumerate lists immediate subdirectories of each root, in root-list
	// order, and returns them as a CandidateSet plus per-root warnings for
	// roots that could not be read.
	Enumerate(roots []string) (CandidateSet, []RootWarning)
}

// RootWarning reports a root that was skipped during enumeration.
type RootWarning struct {
	Root   string
	Reason string
}

// Selector resolves a free-text query against a candidate set.
type Selector interface {
	// Choose resolves query to at most one candidate. The second return
	// is false when no candidate met the minimum similarity threshold.
	Choose(set CandidateSet, query string, minScore int) (Candidate, bool)
}

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)

	// Pager displays content through a pager if appropriate.
	Pager(content string)
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Success styles text as success.
	Success(text string) string

	// Warning styles text as warning.
	Warning(text string) string

	// Error styles text as error.
	Error(text string) string

	// Info styles text as info.
	Info(text string) string

	// Muted styles text as muted.
	Muted(text string) string

	// Header styles text as header.
	Header(text string) string
}

// Application represents the main application context with all dependencies.
type Application struct {
	Scanner  Enumerator
	Selector Selector
	Config   ConfigProvider
	Logger   Logger
	Output   OutputWriter
	Styler   Styler
}
