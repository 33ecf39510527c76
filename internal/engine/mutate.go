package engine

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"lokey/internal/catalog"
	"lokey/internal/loader"
	"lokey/internal/lokerr"
	"lokey/internal/parser"
	"lokey/internal/plan"
	"lokey/internal/translate"
)

// SetValue plans an edit of one key in one locale. A miss (unknown key,
// absent locale, or shadow-only coverage) plans nothing: there is no
// persisted value to change. An empty locale means the default locale.
func (e *Engine) SetValue(keypath, locale, newValue string) ([]plan.WriteOp, error) {
	c, err := e.Catalog()
	if err != nil {
		return nil, err
	}
	rec := c.Resolve(c.Node(keypath), locale)
	return plan.Edit(rec, newValue), nil
}

// RemoveKey plans deletion of a key across every locale that really
// defines it. With recursive set, a grouping node deletes its entire
// subtree; otherwise reaching a grouping node plans nothing.
func (e *Engine) RemoveKey(keypath string, recursive bool) ([]plan.WriteOp, error) {
	c, err := e.Catalog()
	if err != nil {
		return nil, err
	}
	n := c.Node(keypath)
	if n != nil && n.Kind == catalog.KindTree && recursive {
		return plan.Remove(c.SubtreeRecords(n)), nil
	}
	return plan.Remove(c.RecordSet(n)), nil
}

// RenameKey plans moving a key to a new keypath across every locale that
// really defines it. The rename is rejected when the target keypath
// already holds records, unless force is set: a silent overwrite of an
// unrelated key is the one mistake this tool exists to prevent.
func (e *Engine) RenameKey(oldKey, newKey string, recursive, force bool) ([]plan.WriteOp, error) {
	if newKey == oldKey || newKey == "" {
		return nil, nil
	}
	if !catalog.ValidKey(newKey) {
		return nil, lokerr.Newf(lokerr.Internal, "invalid keypath %q", newKey)
	}

	c, err := e.Catalog()
	if err != nil {
		return nil, err
	}

	if target := c.Node(newKey); target != nil && !force {
		if len(c.RecordSet(target)) > 0 || (target.Kind == catalog.KindTree && recursive) {
			return nil, lokerr.Newf(lokerr.KeyCollision,
				"key %q already exists; rename would overwrite it", newKey).
				WithDetails(map[string]string{"from": oldKey, "to": newKey})
		}
	}

	n := c.Node(oldKey)
	if n != nil && n.Kind == catalog.KindTree && recursive {
		return plan.RenameSubtree(oldKey, newKey, c.SubtreeRecords(n)), nil
	}
	return plan.Rename(oldKey, newKey, c.RecordSet(n)), nil
}

// PendingTranslation is one missing translation the service should fill.
type PendingTranslation struct {
	KeyPath string
	Locale  string
	Source  string
}

// Translate fills missing translations of a key. It resolves the node,
// collects every locale whose coverage is shadow-only or absent, calls the
// service for each, and returns one upsert per result targeting the
// locale's own file (never the default locale's). All calls must succeed
// before any op is returned; a failed call aborts the whole node.
func (e *Engine) Translate(ctx context.Context, svc translate.Service, keypath string, locales []string) ([]plan.WriteOp, error) {
	c, err := e.Catalog()
	if err != nil {
		return nil, err
	}
	n := c.Node(keypath)
	def := c.Resolve(n, c.DefaultLocale)
	if def == nil || def.Shadow {
		// Nothing to translate from.
		return nil, nil
	}

	targets := locales
	if len(targets) == 0 {
		targets = c.Locales
	}
	sort.Strings(targets)

	var pending []PendingTranslation
	for _, locale := range targets {
		if locale == c.DefaultLocale {
			continue
		}
		rec := c.Resolve(n, locale)
		if rec != nil && !rec.Shadow {
			continue
		}
		pending = append(pending, PendingTranslation{KeyPath: keypath, Locale: locale, Source: def.Value})
	}
	if len(pending) == 0 {
		return nil, nil
	}

	ops := make([]plan.WriteOp, 0, len(pending))
	for _, p := range pending {
		translated, err := svc.Translate(ctx, p.Source, c.DefaultLocale, p.Locale)
		if err != nil {
			// Must not partially apply: drop everything translated so far.
			return nil, err
		}
		ops = append(ops, plan.WriteOp{
			KeyPath:  p.KeyPath,
			Locale:   p.Locale,
			FilePath: e.targetFile(c, p.Locale, def),
			Value:    translated,
		})
	}
	return ops, nil
}

// targetFile picks the backing file for a locale. An existing real record
// anywhere in that locale fixes the file; otherwise the path is derived
// from the default locale's file.
func (e *Engine) targetFile(c *catalog.Catalog, locale string, def *catalog.LocaleRecord) string {
	for _, keypath := range c.Keys() {
		if rec := c.Resolve(c.Node(keypath), locale); rec != nil && !rec.Shadow {
			return rec.FilePath
		}
	}
	return loader.TargetFile(def.FilePath, def.Locale, locale)
}

// Locate reads a document and returns the byte range of the key, or nil
// when the key is absent. The path may point at unsaved editor state
// mirrored to disk; the scan snapshot is not consulted.
func (e *Engine) Locate(file, keypath string) (*parser.Range, error) {
	abs := file
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(e.root, filepath.FromSlash(file))
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}
	return e.locator.Locate(file, data, keypath), nil
}
