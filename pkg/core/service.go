package core

import (
	"context"
	"errors"
	"log/slog"
)

// Service handles the business logic of splitting input documents into
// per-record files. Each input file runs the full pipeline independently:
// load, resolve the output directory, emit one document per record.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new Service. A nil logger falls back to slog.Default.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// SplitFile processes a single input file and returns its summary.
// Record order is preserved: the document for records[i] is written before
// records[i+1]. When two records derive the same filename the later one
// overwrites the earlier write; this is logged but not treated as an error.
func (s *Service) SplitFile(ctx context.Context, path string) (Summary, error) {
	if path == "" {
		return Summary{}, errors.New("input path cannot be empty")
	}

	records, err := s.repo.Load(ctx, path)
	if err != nil {
		return Summary{}, err
	}

	dir, err := s.repo.EnsureOutputDir(ctx, path)
	if err != nil {
		return Summary{}, err
	}

	seen := make(map[string]int, len(records))
	for i, rec := range records {
		name := Filename(rec, i+1)
		if prev, dup := seen[name]; dup {
			s.logger.Warn("duplicate output filename, overwriting",
				"input", path, "file", name, "first_record", prev, "record", i+1)
		}
		seen[name] = i + 1

		if err := s.repo.Emit(ctx, dir, name, rec); err != nil {
			return Summary{}, err
		}
		s.logger.Debug("wrote record", "input", path, "file", name, "record", i+1)
	}

	return Summary{Input: path, OutputDir: dir, Count: len(records)}, nil
}

// SplitAll processes every input file found by the repository scan.
// Files are processed in scan order, each through the same pipeline as
// SplitFile. With failFast false (the default policy) a failing file is
// recorded in the report and processing continues with the remaining
// files; with failFast true the first failure aborts the run.
func (s *Service) SplitAll(ctx context.Context, failFast bool) (Report, error) {
	paths, err := s.repo.Scan(ctx)
	if err != nil {
		return Report{}, err
	}

	var report Report
	for _, path := range paths {
		summary, err := s.SplitFile(ctx, path)
		if err != nil {
			if failFast {
				return report, err
			}
			s.logger.Error("skipping input file", "input", path, "error", err)
			report.Failures = append(report.Failures, FileError{Input: path, Err: err})
			continue
		}
		report.Summaries = append(report.Summaries, summary)
	}

	return report, nil
}
