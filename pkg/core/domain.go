// Record is the central entity of the domain.
package core

// ValueKind discriminates the closed set of field value shapes.
type ValueKind int

const (
	// KindScalar is a single textual value (string, number, bool or null).
	KindScalar ValueKind = iota
	// KindSequence is an ordered list of scalar values.
	KindSequence
)

// FieldValue is the value of a record field. It is a closed variant:
// either a scalar rendered to its textual representation, or an ordered
// sequence of such scalars. Nested objects are rejected at decode time.
type FieldValue struct {
	kind  ValueKind
	text  string
	items []string
}

// ScalarValue builds a scalar FieldValue from its textual representation.
func ScalarValue(text string) FieldValue {
	return FieldValue{kind: KindScalar, text: text}
}

// SequenceValue builds a sequence FieldValue from its items.
func SequenceValue(items []string) FieldValue {
	return FieldValue{kind: KindSequence, items: items}
}

// Kind returns the variant discriminator.
func (v FieldValue) Kind() ValueKind { return v.kind }

// Text returns the scalar representation. Empty for sequences.
func (v FieldValue) Text() string { return v.text }

// Items returns the sequence elements. Nil for scalars.
func (v FieldValue) Items() []string { return v.items }

// Field is a single named entry of a record.
type Field struct {
	Name  string
	Value FieldValue
}

// Record is one object of the input document. Fields keep the order in
// which they appeared in the serialized JSON. Records are read-only once
// decoded.
type Record struct {
	Fields []Field
}

// Title returns the record's "title" field if it is present and scalar.
func (r Record) Title() (string, bool) {
	for _, f := range r.Fields {
		if f.Name == "title" && f.Value.Kind() == KindScalar {
			return f.Value.Text(), true
		}
	}
	return "", false
}

// RecordSet is an ordered sequence of records. Input order is preserved
// through to the emitted files.
type RecordSet []Record

// Summary describes the outcome of splitting one input file.
type Summary struct {
	Input     string `json:"input"`
	OutputDir string `json:"output_dir"`
	Count     int    `json:"count"`
}

// FileError pairs a failed input file with its error.
type FileError struct {
	Input string
	Err   error
}

// Report aggregates the outcome of a directory scan.
type Report struct {
	Summaries []Summary
	Failures  []FileError
}

// Failed reports whether any input file could not be processed.
func (r Report) Failed() bool { return len(r.Failures) > 0 }
