// Package parser provides pluggable locale file formats. Each format knows
// how to flatten a file into keypath/value pairs, how to marshal a nested
// value tree back out, and how to find a key's byte range in document text.
package parser

import (
	"path/filepath"
	"sort"
	"strings"
)

// Range is a half-open byte range [Start, End) inside a document.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Match is one key occurrence found in a document.
type Match struct {
	KeyPath string `json:"keypath"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
}

// Format is the per-extension locale file parser capability.
type Format interface {
	// Name identifies the format in logs and errors.
	Name() string

	// Extensions lists the file extensions (with dot) the format handles.
	Extensions() []string

	// Parse flattens file content into keypath -> value pairs.
	Parse(data []byte) (map[string]string, error)

	// Decode parses file content into a nested value tree. Empty content
	// decodes to an empty tree.
	Decode(data []byte) (map[string]interface{}, error)

	// Marshal serializes a nested value tree back to file content.
	Marshal(tree map[string]interface{}) ([]byte, error)

	// NavigateToKey returns the byte range of the key's occurrence in the
	// document text, or nil when the key is not present.
	NavigateToKey(data []byte, keypath string) *Range

	// ScanKeys returns every key occurrence in the document with its range.
	ScanKeys(data []byte) []Match
}

// Registry selects a Format by file extension.
type Registry struct {
	byExt map[string]Format
}

// NewRegistry builds a registry over the given formats.
func NewRegistry(formats ...Format) *Registry {
	r := &Registry{byExt: map[string]Format{}}
	for _, f := range formats {
		for _, ext := range f.Extensions() {
			r.byExt[strings.ToLower(ext)] = f
		}
	}
	return r
}

// Default returns a registry with all built-in formats registered.
func Default() *Registry {
	return NewRegistry(NewJSON(), NewYAML(), NewTOML())
}

// ForPath returns the format handling the file's extension, or nil.
func (r *Registry) ForPath(path string) Format {
	return r.byExt[strings.ToLower(filepath.Ext(path))]
}

// Extensions returns all registered extensions, sorted.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
