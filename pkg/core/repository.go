package core

import "context"

// Repository defines the contract for loading record sets and persisting
// the documents rendered from them. Adhering to this interface keeps the
// core independent of the input format and the storage mechanism.
type Repository interface {
	// Load reads the file at path and decodes it into a record set.
	// It returns a *ParseError for unreadable or invalid input and a
	// *ShapeError when the document does not resolve to an array of
	// objects.
	Load(ctx context.Context, path string) (RecordSet, error)

	// EnsureOutputDir resolves (and creates, idempotently) the output
	// directory for the given input file and returns its path.
	EnsureOutputDir(ctx context.Context, inputPath string) (string, error)

	// Emit writes one rendered record into dir under filename,
	// overwriting any existing file.
	Emit(ctx context.Context, dir, filename string, r Record) error

	// Scan lists the candidate input files for batch processing.
	Scan(ctx context.Context) ([]string, error)
}
