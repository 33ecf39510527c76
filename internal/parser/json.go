package parser

import (
	"bytes"
	"encoding/json"
)

// JSON handles .json locale files. Both nested objects and flat files with
// dotted top-level keys flatten to the same keypaths.
type JSON struct{}

// NewJSON creates the JSON format.
func NewJSON() *JSON { return &JSON{} }

func (*JSON) Name() string { return "json" }

func (*JSON) Extensions() []string { return []string{".json"} }

// Parse flattens the file into keypath -> value pairs.
func (j *JSON) Parse(data []byte) (map[string]string, error) {
	root, err := j.Decode(data)
	if err != nil {
		return nil, err
	}
	out := map[string]string{}
	Flatten("", root, out)
	return out, nil
}

// Decode parses the file into a nested value tree.
func (*JSON) Decode(data []byte) (map[string]interface{}, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]interface{}{}, nil
	}
	var root map[string]interface{}
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root == nil {
		root = map[string]interface{}{}
	}
	return root, nil
}

// Marshal serializes a nested value tree with two-space indentation.
func (*JSON) Marshal(tree map[string]interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// NavigateToKey returns the byte range of the key's occurrence, or nil.
func (j *JSON) NavigateToKey(data []byte, keypath string) *Range {
	for _, m := range j.ScanKeys(data) {
		if m.KeyPath == keypath {
			return &Range{Start: m.Start, End: m.End}
		}
	}
	return nil
}

// ScanKeys tokenizes the document and reports every object key with its
// byte range. Malformed trailing input yields the matches found so far.
func (*JSON) ScanKeys(data []byte) []Match {
	dec := json.NewDecoder(bytes.NewReader(data))

	var stack []jsonFrame
	var matches []Match

	childPath := func(f *jsonFrame) string {
		if f == nil {
			return ""
		}
		if f.isObject {
			return joinSeg(f.path, f.pendingKey)
		}
		return joinSeg(f.path, itoa(f.index))
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}

		var cur *jsonFrame
		if len(stack) > 0 {
			cur = &stack[len(stack)-1]
		}

		switch t := tok.(type) {
		case json.Delim:
			switch t {
			case '{', '[':
				path := childPath(cur)
				if cur != nil {
					if cur.isObject {
						cur.expectKey = true
					} else {
						cur.index++
					}
				}
				stack = append(stack, jsonFrame{
					isObject:  t == '{',
					expectKey: t == '{',
					path:      path,
				})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
			}
		case string:
			if cur != nil && cur.isObject && cur.expectKey {
				end := int(dec.InputOffset())
				// InputOffset sits just past the closing quote; back up if
				// the decoder consumed trailing bytes.
				for end > 0 && (end > len(data) || data[end-1] != '"') {
					end--
				}
				start := keyStart(data, end)
				cur.pendingKey = t
				cur.expectKey = false
				matches = append(matches, Match{
					KeyPath: joinSeg(cur.path, t),
					Start:   start,
					End:     end,
				})
			} else if cur != nil {
				advanceValue(cur)
			}
		default:
			if cur != nil {
				advanceValue(cur)
			}
		}
	}

	return matches
}

// jsonFrame tracks one open container during tokenization.
type jsonFrame struct {
	isObject   bool
	expectKey  bool
	path       string
	pendingKey string
	index      int
}

// advanceValue records that a scalar value was consumed in the frame.
func advanceValue(f *jsonFrame) {
	if f.isObject {
		f.expectKey = true
	} else {
		f.index++
	}
}

// keyStart scans backwards from the closing quote to the matching opening
// quote, skipping escaped quotes.
func keyStart(data []byte, end int) int {
	i := end - 2
	for i >= 0 {
		if data[i] == '"' {
			// Count preceding backslashes; an even count means unescaped.
			n := 0
			for j := i - 1; j >= 0 && data[j] == '\\'; j-- {
				n++
			}
			if n%2 == 0 {
				return i
			}
		}
		i--
	}
	return 0
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
