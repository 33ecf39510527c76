// Package locator finds key occurrences in open document text. It owns no
// format knowledge: the per-extension parser does the scan, the locator
// selects the parser and normalizes "not found" into a nil result.
package locator

import (
	"lokey/internal/parser"
)

// Locator dispatches key location to the format registry.
type Locator struct {
	registry *parser.Registry
}

// New creates a locator over the given registry.
func New(registry *parser.Registry) *Locator {
	return &Locator{registry: registry}
}

// Locate returns the byte range of keypath's occurrence in the document,
// or nil when the key is absent or the extension is unsupported. It never
// returns an error: a miss is an expected outcome, not a failure.
func (l *Locator) Locate(filename string, text []byte, keypath string) *parser.Range {
	f := l.registry.ForPath(filename)
	if f == nil {
		return nil
	}
	return f.NavigateToKey(text, keypath)
}

// LocateAll returns every key occurrence in the document whose keypath
// satisfies the predicate. Used during rename to patch live editor text:
// the open document may differ from the persisted file, so occurrences are
// found in the text itself, independent of the planned write set.
func (l *Locator) LocateAll(filename string, text []byte, match func(keypath string) bool) []parser.Match {
	f := l.registry.ForPath(filename)
	if f == nil {
		return nil
	}
	var out []parser.Match
	for _, m := range f.ScanKeys(text) {
		if match(m.KeyPath) {
			out = append(out, m)
		}
	}
	return out
}

// ReplaceAll rewrites each located occurrence of oldKey to newKey,
// returning the patched text. A flat occurrence spelled as the full dotted
// key becomes the full new key; a nested occurrence (just the final
// segment) becomes the new key's final segment. Ranges are applied back to
// front so earlier offsets stay valid.
func (l *Locator) ReplaceAll(filename string, text []byte, oldKey, newKey string) []byte {
	matches := l.LocateAll(filename, text, func(keypath string) bool {
		return keypath == oldKey
	})
	if len(matches) == 0 {
		return text
	}

	out := append([]byte(nil), text...)
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		start, end := m.Start, m.End
		// Keep surrounding quotes when the occurrence is quoted.
		if end-start >= 2 && isQuote(out[start]) && out[end-1] == out[start] {
			start++
			end--
		}
		replacement := lastSegment(newKey)
		if string(out[start:end]) == oldKey {
			replacement = newKey
		}
		patched := make([]byte, 0, len(out)-(end-start)+len(replacement))
		patched = append(patched, out[:start]...)
		patched = append(patched, replacement...)
		patched = append(patched, out[end:]...)
		out = patched
	}
	return out
}

func lastSegment(keypath string) string {
	for i := len(keypath) - 1; i >= 0; i-- {
		if keypath[i] == '.' {
			return keypath[i+1:]
		}
	}
	return keypath
}

func isQuote(b byte) bool {
	return b == '"' || b == '\''
}
