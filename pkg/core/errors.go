package core

import "fmt"

// ParseError reports an input file that could not be read or decoded as JSON.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ShapeError reports an input file whose JSON does not resolve to an array
// of objects, or a record whose value falls outside the supported shapes.
type ShapeError struct {
	Path   string
	Detail string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Detail)
}

// NewShapeError builds a ShapeError with a formatted detail message.
func NewShapeError(path, format string, args ...any) *ShapeError {
	return &ShapeError{Path: path, Detail: fmt.Sprintf(format, args...)}
}
