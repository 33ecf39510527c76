// Package catalog models the locale key tree: per-file records, the
// aggregated key tree across locales, and shadow fallback resolution.
package catalog

// LocaleRecord is one key's value in one locale's backing file.
// Shadow records are synthesized stand-ins for missing translations,
// inheriting value and file path from the default locale. They have no
// backing file content and must never be written.
type LocaleRecord struct {
	KeyPath  string `json:"keypath"`
	Locale   string `json:"locale"`
	Value    string `json:"value"`
	FilePath string `json:"filepath"`
	Shadow   bool   `json:"shadow,omitempty"`
}

// Kind discriminates the three node shapes of the key tree.
type Kind int

const (
	// KindRecord wraps exactly one LocaleRecord.
	KindRecord Kind = iota
	// KindNode aggregates all records sharing one keypath across locales.
	KindNode
	// KindTree is a pure grouping segment with children and no record.
	KindTree
)

// String returns the kind name used in JSON output.
func (k Kind) String() string {
	switch k {
	case KindRecord:
		return "record"
	case KindNode:
		return "node"
	case KindTree:
		return "tree"
	default:
		return "unknown"
	}
}

// Node is one node of the key tree. Exactly one of Record, Locales or
// Children is primary depending on Kind; a KindNode additionally carries
// Children when a keypath is both a leaf in one file and a prefix in another.
type Node struct {
	Kind    Kind
	KeyPath string

	// Record is set for KindRecord.
	Record *LocaleRecord

	// Locales maps locale id to the record (real or shadow) for KindNode.
	Locales map[string]*LocaleRecord

	// Children maps the next path segment to the child node.
	Children map[string]*Node
}

// WrapRecord builds a record-variant node around a single record.
// Consuming views use this for flat single-locale listings; the resolver
// and planner accept it interchangeably with a node-variant.
func WrapRecord(rec *LocaleRecord) *Node {
	return &Node{
		Kind:    KindRecord,
		KeyPath: rec.KeyPath,
		Record:  rec,
	}
}
