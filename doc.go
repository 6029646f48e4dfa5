// Package leaflet is the composition root for the leaflet tool.
//
// It connects the core splitting logic (Domain Layer) with the filesystem
// adapter (Persistence Layer) using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// Leaflet turns a JSON document holding an array of objects into one
// markdown file per object, each carrying the object's fields as a
// frontmatter header. It targets content-authoring workflows where
// exported records (notes, catalog entries) need to become individual
// documents.
//
// Features:
//
//   - **Deterministic resolution**: record sets are located by an explicit,
//     document-order rule (top-level array, or the first object key holding
//     an array of objects).
//   - **Closed value model**: fields are scalars or sequences of scalars;
//     nested objects are rejected instead of silently stringified.
//   - **Order preserving**: input record order and field order survive into
//     the emitted files.
//   - **Atomic writes**: output files are written via temp file + rename.
//   - **Two entry points**: SplitFile for one input, SplitDir for every
//     matching input in the working directory; no shared mutable state.
//
// Usage:
//
//	summary, err := leaflet.SplitFile(ctx, "notes.json",
//		leaflet.WithLogger(logger),
//	)
package leaflet
