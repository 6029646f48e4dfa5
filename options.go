package leaflet

import (
	"log/slog"
	"time"

	"github.com/emergentsolutions/leaflet/pkg/core"
)

// options holds the internal configuration for the leaflet facade.
type options struct {
	workDir    string
	pattern    string
	failFast   bool
	debounce   time.Duration
	logger     *slog.Logger
	repository core.Repository
}

// Option defines a functional option for configuring leaflet.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		workDir:  ".",
		pattern:  "",
		failFast: false,
		debounce: 0,
		logger:   nil,
	}
}

// WithWorkDir sets the working directory used for scanning inputs and
// resolving output directories. Defaults to ".".
func WithWorkDir(dir string) Option {
	return func(o *options) {
		o.workDir = dir
	}
}

// WithPattern overrides the glob used to find input files in scan mode.
func WithPattern(pattern string) Option {
	return func(o *options) {
		o.pattern = pattern
	}
}

// WithFailFast makes SplitDir abort on the first failing file instead of
// continuing and aggregating failures in the report.
func WithFailFast(failFast bool) Option {
	return func(o *options) {
		o.failFast = failFast
	}
}

// WithDebounce sets the quiet period used by Watch before reprocessing a
// changed file.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. a mock).
// If provided, the default filesystem adapter is skipped. Watch always
// uses the filesystem adapter and ignores this option.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}
