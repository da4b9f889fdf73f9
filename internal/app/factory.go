package app

import (
	"github.com/performer-tools/cli/internal/config"
	"github.com/performer-tools/cli/internal/domain"
	"github.com/performer-tools/cli/internal/log"
	"github.com/performer-tools/cli/internal/match"
	"github.com/performer-tools/cli/internal/paths"
	"github.com/performer-tools/cli/internal/scan"
	"github.com/performer-tools/cli/internal/ui"
	"github.com/performer-tools/cli/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	// Pager options
	PagerDisabled bool
	PagerOverride string

	// Log options
	LogEnabled bool

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string
}

// DefaultOptions returns the default application options.
func DefaultOptions() Options {
	logEnabled, _ := config.Get("enable_log")
	styleConfig, _ := config.GetAll()

	return Options{
		LogEnabled:   logEnabled == "true",
		StyleEnabled: true,
		StyleConfig:  styleConfig,
	}
}

// New creates a new Application with all dependencies wired up.
func New(opts Options) (*domain.Application, error) {
	// Initialize the global logger (always at debug level - log everything)
	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled {
		logPath := paths.LogFilePath()
		if err := log.Init(logPath, log.LevelDebug); err == nil {
			logger = log.GetLogger()
		}
		// Fall back to NopLogger on error
	}

	// Initialize style
	style.Init(opts.StyleEnabled, opts.StyleConfig)

	// Create output writer with options
	var writerOpts []ui.WriterOption
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	if opts.PagerOverride != "" {
		writerOpts = append(writerOpts, ui.WithPagerOverride(opts.PagerOverride))
	}
	writerOpts = append(writerOpts, ui.WithConfigGetter(config.Get))

	return &domain.Application{
		Scanner:  scan.NewDefault(config.ReturnFullPath()),
		Selector: match.New(),
		Config:   config.NewProvider(),
		Logger:   logger,
		Output:   ui.NewWriter(writerOpts...),
		Styler:   style.NewStyler(),
	}, nil
}

// NewForTesting creates an Application suitable for testing.
// Uses NopLogger, no styling, and a pager-less writer.
func NewForTesting() *domain.Application {
	return &domain.Application{
		Scanner:  scan.NewDefault(false),
		Selector: match.New(),
		Config:   config.NewProvider(),
		Logger:   log.NopLogger{},
		Output:   ui.NewWriter(ui.WithPagerDisabled()),
		Styler:   style.NopStyler{},
	}
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	return nil
}
