package parser

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// YAML handles .yaml and .yml locale files.
type YAML struct{}

// NewYAML creates the YAML format.
func NewYAML() *YAML { return &YAML{} }

func (*YAML) Name() string { return "yaml" }

func (*YAML) Extensions() []string { return []string{".yaml", ".yml"} }

// Parse flattens the file into keypath -> value pairs.
func (y *YAML) Parse(data []byte) (map[string]string, error) {
	root, err := y.Decode(data)
	if err != nil {
		return nil, err
	}
	out := map[string]string{}
	Flatten("", root, out)
	return out, nil
}

// Decode parses the file into a nested value tree.
func (*YAML) Decode(data []byte) (map[string]interface{}, error) {
	var root map[string]interface{}
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root == nil {
		root = map[string]interface{}{}
	}
	return root, nil
}

// Marshal serializes a nested value tree with two-space indentation.
func (*YAML) Marshal(tree map[string]interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(tree); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// NavigateToKey returns the byte range of the key's occurrence, or nil.
func (y *YAML) NavigateToKey(data []byte, keypath string) *Range {
	for _, m := range y.ScanKeys(data) {
		if m.KeyPath == keypath {
			return &Range{Start: m.Start, End: m.End}
		}
	}
	return nil
}

// ScanKeys walks the document's node tree and reports every mapping key
// with its byte range, converting node line/column to byte offsets.
func (*YAML) ScanKeys(data []byte) []Match {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil
	}

	offsets := lineOffsets(data)
	var matches []Match

	var walk func(n *yaml.Node, prefix string)
	walk = func(n *yaml.Node, prefix string) {
		switch n.Kind {
		case yaml.DocumentNode:
			for _, c := range n.Content {
				walk(c, prefix)
			}
		case yaml.MappingNode:
			for i := 0; i+1 < len(n.Content); i += 2 {
				key, value := n.Content[i], n.Content[i+1]
				keypath := joinSeg(prefix, key.Value)

				start := byteOffset(offsets, key.Line, key.Column, len(data))
				length := len(key.Value)
				if key.Style == yaml.SingleQuotedStyle || key.Style == yaml.DoubleQuotedStyle {
					length += 2
				}
				end := start + length
				if end > len(data) {
					end = len(data)
				}
				matches = append(matches, Match{KeyPath: keypath, Start: start, End: end})

				walk(value, keypath)
			}
		case yaml.SequenceNode:
			for i, c := range n.Content {
				walk(c, joinSeg(prefix, itoa(i)))
			}
		}
	}
	walk(&doc, "")

	return matches
}

// lineOffsets returns the byte offset of the start of each line.
func lineOffsets(data []byte) []int {
	offsets := []int{0}
	for i, b := range data {
		if b == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// byteOffset converts a 1-based line/column position to a byte offset.
func byteOffset(offsets []int, line, column, max int) int {
	if line < 1 || line > len(offsets) {
		return 0
	}
	off := offsets[line-1] + column - 1
	if off < 0 {
		return 0
	}
	if off > max {
		return max
	}
	return off
}
