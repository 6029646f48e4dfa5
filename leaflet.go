package leaflet

import (
	"context"
	"log/slog"

	"github.com/emergentsolutions/leaflet/pkg/adapters/fs"
	"github.com/emergentsolutions/leaflet/pkg/core"
)

// Version exposes the version of the tool.
const Version = "0.2.0"

// --- Types ---

// Record is a public alias for the domain record.
type Record = core.Record

// Summary is a public alias for the per-file outcome.
type Summary = core.Summary

// Report is a public alias for the directory-scan outcome.
type Report = core.Report

// --- Factory ---

func build(opts ...Option) (*core.Service, *fs.Repository, *options) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	repo := fs.NewRepository(fs.Config{
		WorkDir: o.workDir,
		Pattern: o.pattern,
		Logger:  o.logger,
	})

	target := core.Repository(repo)
	if o.repository != nil {
		target = o.repository
	}

	return core.NewService(target, o.logger), repo, o
}

// --- Operations ---

// SplitFile runs the pipeline for a single input file: load, resolve the
// output directory, emit one frontmatter document per record. Any failure
// is returned to the caller as the run's outcome.
func SplitFile(ctx context.Context, path string, opts ...Option) (Summary, error) {
	service, _, _ := build(opts...)
	return service.SplitFile(ctx, path)
}

// SplitDir runs the pipeline for every matching input file in the working
// directory. Each file is processed independently; by default a failing
// file is recorded in the report and processing continues. WithFailFast
// restores halt-on-first-error, in which case the error is returned.
func SplitDir(ctx context.Context, opts ...Option) (Report, error) {
	service, _, o := build(opts...)
	return service.SplitAll(ctx, o.failFast)
}

// Watch splits the given input file (or, with an empty path, every
// matching file in the working directory), then reprocesses inputs as
// they change until ctx is cancelled.
func Watch(ctx context.Context, path string, opts ...Option) error {
	service, repo, o := build(opts...)

	run := func(p string) {
		summary, err := service.SplitFile(ctx, p)
		if err != nil {
			o.logger.Error("split failed", "input", p, "error", err)
			return
		}
		o.logger.Info("split complete",
			"input", summary.Input, "output_dir", summary.OutputDir, "entries", summary.Count)
	}

	// Initial pass before settling into the event loop.
	if path != "" {
		run(path)
	} else {
		if _, err := service.SplitAll(ctx, false); err != nil {
			return err
		}
	}

	return repo.Watch(ctx, path, o.debounce, run)
}
