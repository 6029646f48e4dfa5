package fs

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/emergentsolutions/leaflet/pkg/core"
)

// renderHeader serializes a record into a frontmatter-only document:
// a --- delimited block with one entry per field, in record order.
// Scalars render as `key: "value"`; sequences render the key alone
// followed by one indented, quoted line per element.
//
// Encoding goes through an explicit yaml node tree rather than a map so
// that field order survives and every value is emitted double-quoted,
// with embedded quotes properly escaped.
func renderHeader(r core.Record) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	if len(r.Fields) > 0 {
		root := &yaml.Node{Kind: yaml.MappingNode}
		for _, f := range r.Fields {
			key := &yaml.Node{Kind: yaml.ScalarNode, Value: f.Name}
			root.Content = append(root.Content, key, valueNode(f.Value))
		}

		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(root); err != nil {
			return nil, err
		}
		encoder.Close()
	}

	buf.WriteString("---\n")
	return buf.Bytes(), nil
}

func valueNode(v core.FieldValue) *yaml.Node {
	if v.Kind() == core.KindSequence {
		if len(v.Items()) == 0 {
			// Bare key line, matching the scalar-less rendering of an
			// empty sequence.
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: ""}
		}
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range v.Items() {
			seq.Content = append(seq.Content, quotedNode(item))
		}
		return seq
	}
	return quotedNode(v.Text())
}

func quotedNode(text string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Style: yaml.DoubleQuotedStyle,
		Tag:   "!!str",
		Value: text,
	}
}
