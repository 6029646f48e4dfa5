package fs

import (
	"errors"
	"strings"
	"testing"

	"github.com/emergentsolutions/leaflet/pkg/core"
)

func fieldNames(r core.Record) []string {
	names := make([]string, 0, len(r.Fields))
	for _, f := range r.Fields {
		names = append(names, f.Name)
	}
	return names
}

func TestDecodeRecords_TopLevelArray(t *testing.T) {
	input := `[
		{"title": "One", "body": "first"},
		{"body": "second", "title": "Two"}
	]`

	records, err := decodeRecords("in.json", []byte(input))
	if err != nil {
		t.Fatalf("decodeRecords failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	// Field order follows the serialized document, per record.
	if got := fieldNames(records[0]); got[0] != "title" || got[1] != "body" {
		t.Errorf("record 0 field order = %v", got)
	}
	if got := fieldNames(records[1]); got[0] != "body" || got[1] != "title" {
		t.Errorf("record 1 field order = %v", got)
	}

	if title, ok := records[1].Title(); !ok || title != "Two" {
		t.Errorf("record 1 title = %q, %v", title, ok)
	}
}

func TestDecodeRecords_FirstQualifyingKey(t *testing.T) {
	input := `{
		"meta": "export",
		"scores": [1, 2, 3],
		"notes": [{"title": "A"}, {"title": "B"}],
		"drafts": [{"title": "C"}]
	}`

	records, err := decodeRecords("in.json", []byte(input))
	if err != nil {
		t.Fatalf("decodeRecords failed: %v", err)
	}

	// "scores" is a list but not of objects; "notes" is the first
	// qualifying key in document order, so "drafts" is ignored.
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if title, _ := records[0].Title(); title != "A" {
		t.Errorf("record 0 title = %q, want A", title)
	}
}

func TestDecodeRecords_Shapes(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantShape bool
		wantParse bool
		detail    string
	}{
		{
			name:      "Scalar Document",
			input:     `42`,
			wantShape: true,
			detail:    "does not contain an array of objects",
		},
		{
			name:      "Object Without Qualifying Key",
			input:     `{"a": 1}`,
			wantShape: true,
			detail:    "does not contain an array of objects",
		},
		{
			name:      "Array Element Not Object",
			input:     `[{"title": "A"}, 5]`,
			wantShape: true,
			detail:    "entry 2 is not an object",
		},
		{
			name:      "Nested Object Field",
			input:     `[{"title": "A", "extra": {"x": 1}}]`,
			wantShape: true,
			detail:    `field "extra" holds a nested object`,
		},
		{
			name:      "Sequence With Object Element",
			input:     `[{"tags": ["a", {"x": 1}]}]`,
			wantShape: true,
			detail:    `field "tags" holds a sequence with non-scalar elements`,
		},
		{
			name:      "Invalid JSON",
			input:     `{"broken":`,
			wantParse: true,
		},
		{
			name:      "Empty Input",
			input:     ``,
			wantParse: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeRecords("in.json", []byte(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}

			var shapeErr *core.ShapeError
			var parseErr *core.ParseError
			switch {
			case tt.wantShape:
				if !errors.As(err, &shapeErr) {
					t.Fatalf("expected ShapeError, got %T: %v", err, err)
				}
				if shapeErr.Path != "in.json" {
					t.Errorf("Path = %q, want in.json", shapeErr.Path)
				}
				if !strings.Contains(shapeErr.Detail, tt.detail) {
					t.Errorf("Detail = %q, want substring %q", shapeErr.Detail, tt.detail)
				}
			case tt.wantParse:
				if !errors.As(err, &parseErr) {
					t.Fatalf("expected ParseError, got %T: %v", err, err)
				}
				if parseErr.Path != "in.json" {
					t.Errorf("Path = %q, want in.json", parseErr.Path)
				}
			}
		})
	}
}

func TestDecodeRecords_ScalarRepresentations(t *testing.T) {
	input := `[{"n": 3, "f": 2.50, "big": 12345678901234567890, "b": true, "x": null, "s": "hi"}]`

	records, err := decodeRecords("in.json", []byte(input))
	if err != nil {
		t.Fatalf("decodeRecords failed: %v", err)
	}

	want := map[string]string{
		"n":   "3",
		"f":   "2.50",
		"big": "12345678901234567890",
		"b":   "true",
		"x":   "null",
		"s":   "hi",
	}
	for _, f := range records[0].Fields {
		if f.Value.Kind() != core.KindScalar {
			t.Errorf("field %q: expected scalar", f.Name)
			continue
		}
		if got := f.Value.Text(); got != want[f.Name] {
			t.Errorf("field %q = %q, want %q", f.Name, got, want[f.Name])
		}
	}
}

func TestDecodeRecords_Sequences(t *testing.T) {
	input := `[{"title": "X", "tags": ["a", "b"], "empty": []}]`

	records, err := decodeRecords("in.json", []byte(input))
	if err != nil {
		t.Fatalf("decodeRecords failed: %v", err)
	}

	rec := records[0]
	if len(rec.Fields) != 3 {
		t.Fatalf("got %d fields, want 3", len(rec.Fields))
	}

	tags := rec.Fields[1].Value
	if tags.Kind() != core.KindSequence {
		t.Fatal("tags should be a sequence")
	}
	if items := tags.Items(); len(items) != 2 || items[0] != "a" || items[1] != "b" {
		t.Errorf("tags = %v", items)
	}

	empty := rec.Fields[2].Value
	if empty.Kind() != core.KindSequence || len(empty.Items()) != 0 {
		t.Errorf("empty = kind %v items %v", empty.Kind(), empty.Items())
	}
}

func TestDecodeRecords_EmptyQualifyingArray(t *testing.T) {
	// An empty array trivially satisfies "every element is an object".
	records, err := decodeRecords("in.json", []byte(`{"entries": []}`))
	if err != nil {
		t.Fatalf("decodeRecords failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}
