package parser

import (
	"strings"

	burnttoml "github.com/BurntSushi/toml"
	gotoml "github.com/pelletier/go-toml/v2"
)

// TOML handles .toml locale files. Decoding goes through BurntSushi/toml,
// encoding through pelletier/go-toml/v2 (stable sorted output).
type TOML struct{}

// NewTOML creates the TOML format.
func NewTOML() *TOML { return &TOML{} }

func (*TOML) Name() string { return "toml" }

func (*TOML) Extensions() []string { return []string{".toml"} }

// Parse flattens the file into keypath -> value pairs.
func (t *TOML) Parse(data []byte) (map[string]string, error) {
	root, err := t.Decode(data)
	if err != nil {
		return nil, err
	}
	out := map[string]string{}
	Flatten("", root, out)
	return out, nil
}

// Decode parses the file into a nested value tree.
func (*TOML) Decode(data []byte) (map[string]interface{}, error) {
	var root map[string]interface{}
	if err := burnttoml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root == nil {
		root = map[string]interface{}{}
	}
	return root, nil
}

// Marshal serializes a nested value tree.
func (*TOML) Marshal(tree map[string]interface{}) ([]byte, error) {
	return gotoml.Marshal(tree)
}

// NavigateToKey returns the byte range of the key's occurrence, or nil.
func (t *TOML) NavigateToKey(data []byte, keypath string) *Range {
	for _, m := range t.ScanKeys(data) {
		if m.KeyPath == keypath {
			return &Range{Start: m.Start, End: m.End}
		}
	}
	return nil
}

// ScanKeys scans the document line by line, tracking the current table
// header and skipping multi-line strings. TOML carries no position info
// through its decoder, so this is a lexical scan; it covers the key and
// table shapes that appear in locale files.
func (*TOML) ScanKeys(data []byte) []Match {
	var matches []Match
	prefix := ""
	offset := 0
	multiline := "" // open multi-line string delimiter, "" when closed

	for _, line := range strings.SplitAfter(string(data), "\n") {
		lineStart := offset
		offset += len(line)
		trimmed := strings.TrimRight(line, "\r\n")

		if multiline != "" {
			if strings.Contains(trimmed, multiline) {
				multiline = ""
			}
			continue
		}

		stripped := strings.TrimSpace(trimmed)
		if stripped == "" || strings.HasPrefix(stripped, "#") {
			continue
		}

		if strings.HasPrefix(stripped, "[") {
			name := strings.Trim(stripped, "[]")
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			prefix = name
			nameStart := lineStart + strings.Index(trimmed, name)
			matches = append(matches, Match{
				KeyPath: name,
				Start:   nameStart,
				End:     nameStart + len(name),
			})
			continue
		}

		eq := indexUnquoted(trimmed, '=')
		if eq < 0 {
			continue
		}

		rawKey := strings.TrimSpace(trimmed[:eq])
		key := strings.Trim(rawKey, `"'`)
		if key == "" {
			continue
		}
		keyStart := lineStart + strings.Index(trimmed, rawKey)
		matches = append(matches, Match{
			KeyPath: joinSeg(prefix, key),
			Start:   keyStart,
			End:     keyStart + len(rawKey),
		})

		multiline = openMultiline(trimmed[eq+1:])
	}

	return matches
}

// indexUnquoted finds the first occurrence of c outside quotes.
func indexUnquoted(s string, c byte) int {
	var quote byte
	for i := 0; i < len(s); i++ {
		switch {
		case quote != 0:
			if s[i] == quote {
				quote = 0
			}
		case s[i] == '"' || s[i] == '\'':
			quote = s[i]
		case s[i] == c:
			return i
		}
	}
	return -1
}

// openMultiline reports the delimiter of a multi-line string opened but not
// closed on this value segment, or "".
func openMultiline(value string) string {
	v := strings.TrimSpace(value)
	for _, delim := range []string{`"""`, "'''"} {
		if strings.HasPrefix(v, delim) && !strings.Contains(v[len(delim):], delim) {
			return delim
		}
	}
	return ""
}
