package catalog

import (
	"sort"
)

// Catalog is the immutable key tree built from one scan snapshot.
// It is a pure function of the record set: rebuilt wholesale whenever the
// underlying files change, never mutated in place.
type Catalog struct {
	Root          *Node
	DefaultLocale string
	Locales       []string // known locales, sorted

	byPath map[string]*Node
}

// Build groups records by keypath, synthesizes intermediate grouping nodes
// for every path segment, and aggregates per-keypath records across locales.
// For each locale that is known but has no record for a keypath, a shadow
// record is synthesized from the default locale's record; if the default
// locale also lacks the key no shadow is created.
func Build(records []LocaleRecord, defaultLocale string, knownLocales []string) *Catalog {
	localeSet := make(map[string]bool, len(knownLocales))
	for _, l := range knownLocales {
		localeSet[l] = true
	}
	for _, r := range records {
		localeSet[r.Locale] = true
	}
	locales := make([]string, 0, len(localeSet))
	for l := range localeSet {
		locales = append(locales, l)
	}
	sort.Strings(locales)

	c := &Catalog{
		Root:          &Node{Kind: KindTree, Children: map[string]*Node{}},
		DefaultLocale: defaultLocale,
		Locales:       locales,
		byPath:        map[string]*Node{},
	}

	// Group real records by keypath, preserving one record per locale.
	groups := map[string]map[string]*LocaleRecord{}
	order := []string{}
	for i := range records {
		r := &records[i]
		if !ValidKey(r.KeyPath) {
			continue
		}
		g, ok := groups[r.KeyPath]
		if !ok {
			g = map[string]*LocaleRecord{}
			groups[r.KeyPath] = g
			order = append(order, r.KeyPath)
		}
		// Last parse wins on duplicate keys within one locale.
		g[r.Locale] = r
	}
	sort.Strings(order)

	for _, keypath := range order {
		group := groups[keypath]
		n := c.ensure(keypath)
		n.Kind = KindNode
		n.Locales = map[string]*LocaleRecord{}
		for locale, rec := range group {
			n.Locales[locale] = rec
		}
		// Shadow synthesis happens here at build time, not at resolve time.
		if def, ok := group[defaultLocale]; ok {
			for _, locale := range locales {
				if _, ok := n.Locales[locale]; ok {
					continue
				}
				n.Locales[locale] = &LocaleRecord{
					KeyPath:  keypath,
					Locale:   locale,
					Value:    def.Value,
					FilePath: def.FilePath,
					Shadow:   true,
				}
			}
		}
	}

	return c
}

// ensure walks segment by segment from the root, creating tree-variant
// nodes for missing intermediate segments, and returns the node at keypath.
func (c *Catalog) ensure(keypath string) *Node {
	if n, ok := c.byPath[keypath]; ok {
		return n
	}
	cur := c.Root
	prefix := ""
	for _, seg := range SplitKey(keypath) {
		if prefix == "" {
			prefix = seg
		} else {
			prefix = prefix + "." + seg
		}
		child, ok := cur.Children[seg]
		if !ok {
			child = &Node{Kind: KindTree, KeyPath: prefix, Children: map[string]*Node{}}
			cur.Children[seg] = child
			c.byPath[prefix] = child
		}
		cur = child
	}
	return cur
}

// Node returns the node at keypath, or nil if the keypath is unknown.
func (c *Catalog) Node(keypath string) *Node {
	return c.byPath[keypath]
}

// Resolve returns the effective record of a node for a locale.
// A tree-variant has no record to resolve. An empty locale falls back to
// the catalog's default locale; interactive locale choice is the caller's
// concern and never blocks here. The result may be a shadow record, or nil
// when the locale is absent and no fallback exists.
func (c *Catalog) Resolve(n *Node, locale string) *LocaleRecord {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case KindTree:
		return nil
	case KindRecord:
		return n.Record
	case KindNode:
		if locale == "" {
			locale = c.DefaultLocale
		}
		return n.Locales[locale]
	default:
		return nil
	}
}

// RecordSet resolves a node to the concrete set of records it denotes,
// in deterministic locale order. Shadows are included; mutation planning
// filters them. A tree-variant denotes no records.
func (c *Catalog) RecordSet(n *Node) []*LocaleRecord {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case KindRecord:
		return []*LocaleRecord{n.Record}
	case KindNode:
		locales := make([]string, 0, len(n.Locales))
		for l := range n.Locales {
			locales = append(locales, l)
		}
		sort.Strings(locales)
		recs := make([]*LocaleRecord, 0, len(locales))
		for _, l := range locales {
			recs = append(recs, n.Locales[l])
		}
		return recs
	default:
		return nil
	}
}

// SubtreeRecords resolves a node and every node below it to records,
// depth-first in sorted segment order. Used when a mutation targets an
// entire subtree spanning many keys and locales.
func (c *Catalog) SubtreeRecords(n *Node) []*LocaleRecord {
	if n == nil {
		return nil
	}
	recs := c.RecordSet(n)
	segs := make([]string, 0, len(n.Children))
	for seg := range n.Children {
		segs = append(segs, seg)
	}
	sort.Strings(segs)
	for _, seg := range segs {
		recs = append(recs, c.SubtreeRecords(n.Children[seg])...)
	}
	return recs
}

// Missing returns, per locale, the keypaths that are only covered by a
// shadow record or not covered at all. Keys of the default locale are the
// reference set.
func (c *Catalog) Missing() map[string][]string {
	missing := map[string][]string{}
	for keypath, n := range c.byPath {
		if n.Kind != KindNode {
			continue
		}
		for _, locale := range c.Locales {
			rec, ok := n.Locales[locale]
			if !ok || rec.Shadow {
				missing[locale] = append(missing[locale], keypath)
			}
		}
	}
	for locale := range missing {
		sort.Strings(missing[locale])
	}
	return missing
}

// Keys returns all keypaths that hold records, sorted.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.byPath))
	for keypath, n := range c.byPath {
		if n.Kind == KindNode || n.Kind == KindRecord {
			keys = append(keys, keypath)
		}
	}
	sort.Strings(keys)
	return keys
}
