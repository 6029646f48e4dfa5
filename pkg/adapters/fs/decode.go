package fs

import (
	"bytes"
	"encoding/json"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/emergentsolutions/leaflet/pkg/core"
)

// decodeRecords resolves the raw JSON document into the record set it
// contains. The resolution contract is explicit:
//
//  1. A top-level array is the record set.
//  2. A top-level object is scanned in document order; the first value
//     that is an array whose every element is an object wins. Later
//     qualifying keys are ignored.
//  3. Anything else fails with a *core.ShapeError naming the file.
//
// Object key order is preserved end to end, so the selection in step 2 is
// deterministic for a given serialized document.
func decodeRecords(path string, data []byte) (core.RecordSet, error) {
	if !json.Valid(data) {
		var probe any
		err := json.Unmarshal(data, &probe)
		return nil, &core.ParseError{Path: path, Err: err}
	}

	switch sniff(data) {
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(data, &elems); err != nil {
			return nil, &core.ParseError{Path: path, Err: err}
		}
		return buildRecords(path, elems)

	case '{':
		root := orderedmap.New[string, json.RawMessage]()
		if err := json.Unmarshal(data, root); err != nil {
			return nil, &core.ParseError{Path: path, Err: err}
		}
		for pair := root.Oldest(); pair != nil; pair = pair.Next() {
			elems, ok := objectArray(pair.Value)
			if !ok {
				continue
			}
			return buildRecords(path, elems)
		}
		return nil, core.NewShapeError(path, "does not contain an array of objects")

	default:
		return nil, core.NewShapeError(path, "does not contain an array of objects")
	}
}

// sniff returns the first non-whitespace byte of valid JSON input.
func sniff(data []byte) byte {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

// objectArray reports whether raw is an array whose every element is an
// object, returning the elements when it is. An empty array qualifies.
func objectArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	if sniff(raw) != '[' {
		return nil, false
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, false
	}
	for _, e := range elems {
		if sniff(e) != '{' {
			return nil, false
		}
	}
	return elems, true
}

func buildRecords(path string, elems []json.RawMessage) (core.RecordSet, error) {
	records := make(core.RecordSet, 0, len(elems))
	for i, elem := range elems {
		if sniff(elem) != '{' {
			return nil, core.NewShapeError(path, "entry %d is not an object", i+1)
		}

		obj := orderedmap.New[string, json.RawMessage]()
		if err := json.Unmarshal(elem, obj); err != nil {
			return nil, &core.ParseError{Path: path, Err: err}
		}

		var rec core.Record
		for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
			value, err := decodeValue(path, i+1, pair.Key, pair.Value)
			if err != nil {
				return nil, err
			}
			rec.Fields = append(rec.Fields, core.Field{Name: pair.Key, Value: value})
		}
		records = append(records, rec)
	}
	return records, nil
}

// decodeValue maps one raw field value onto the closed FieldValue variant.
// Nested objects, and sequences containing non-scalars, are unsupported.
func decodeValue(path string, record int, field string, raw json.RawMessage) (core.FieldValue, error) {
	switch sniff(raw) {
	case '{':
		return core.FieldValue{}, core.NewShapeError(path,
			"entry %d: field %q holds a nested object, which is not supported", record, field)

	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return core.FieldValue{}, &core.ParseError{Path: path, Err: err}
		}
		items := make([]string, 0, len(elems))
		for _, e := range elems {
			if b := sniff(e); b == '{' || b == '[' {
				return core.FieldValue{}, core.NewShapeError(path,
					"entry %d: field %q holds a sequence with non-scalar elements, which is not supported", record, field)
			}
			text, err := scalarText(path, e)
			if err != nil {
				return core.FieldValue{}, err
			}
			items = append(items, text)
		}
		return core.SequenceValue(items), nil

	default:
		text, err := scalarText(path, raw)
		if err != nil {
			return core.FieldValue{}, err
		}
		return core.ScalarValue(text), nil
	}
}

// scalarText renders a raw JSON scalar to text. Numbers keep the exact
// representation found in the source document.
func scalarText(path string, raw json.RawMessage) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return "", &core.ParseError{Path: path, Err: err}
	}

	switch s := v.(type) {
	case string:
		return s, nil
	case json.Number:
		return s.String(), nil
	case bool:
		return strconv.FormatBool(s), nil
	case nil:
		return "null", nil
	default:
		// Unreachable: composites are filtered by the caller.
		return "", core.NewShapeError(path, "unsupported scalar value %s", string(raw))
	}
}
