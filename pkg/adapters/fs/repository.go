package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/emergentsolutions/leaflet/pkg/core"
)

// DefaultPattern matches the input files considered in scan mode.
const DefaultPattern = "*.json"

// Repository implements core.Repository on top of the local filesystem:
// JSON documents in, frontmatter markdown files out.
type Repository struct {
	workDir string
	pattern string
	logger  *slog.Logger
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	// WorkDir is the base directory for scanning inputs and resolving
	// output directories. Defaults to ".".
	WorkDir string
	// Pattern is the glob used in scan mode. Defaults to DefaultPattern.
	Pattern string
	Logger  *slog.Logger
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.WorkDir == "" {
		config.WorkDir = "."
	}
	if config.Pattern == "" {
		config.Pattern = DefaultPattern
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Repository{
		workDir: config.WorkDir,
		pattern: config.Pattern,
		logger:  config.Logger,
	}
}

// Load reads and decodes the record set contained in the file at path.
// Note: context is not passed down, these are blocking local file operations.
func (r *Repository) Load(ctx context.Context, path string) (core.RecordSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &core.ParseError{Path: path, Err: err}
	}
	r.logger.Debug("loaded input file", "path", path, "bytes", len(data))
	return decodeRecords(path, data)
}

// EnsureOutputDir resolves the output directory for an input file.
// When the working directory is already named after the input's stem the
// files land directly in it; otherwise a subdirectory named after the
// stem is created (idempotently) and used.
func (r *Repository) EnsureOutputDir(ctx context.Context, inputPath string) (string, error) {
	stem := inputStem(inputPath)

	abs, err := filepath.Abs(r.workDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}
	if filepath.Base(abs) == stem {
		return r.workDir, nil
	}

	dir := filepath.Join(r.workDir, stem)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return dir, nil
}

// Emit renders one record and writes it into dir, overwriting any
// existing file with the same name.
func (r *Repository) Emit(ctx context.Context, dir, filename string, rec core.Record) error {
	data, err := renderHeader(rec)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", filename, err)
	}

	path := filepath.Join(dir, filename)
	if err := writeFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Scan returns the input files in the working directory matching the
// configured pattern, in lexical order.
func (r *Repository) Scan(ctx context.Context) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(r.workDir), r.pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", r.workDir, err)
	}
	sort.Strings(matches)

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, filepath.Join(r.workDir, m))
	}
	return paths, nil
}

// inputStem returns the input filename without directory or extension.
func inputStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
