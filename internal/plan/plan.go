// Package plan computes the minimal ordered write set for a key mutation.
// Planning is pure: it never touches files and never targets shadow records.
package plan

import (
	"lokey/internal/catalog"
)

// WriteOp is one intended mutation to one key in one locale's backing file.
// Delete marks removal of the key; otherwise the op upserts Value.
type WriteOp struct {
	KeyPath  string `json:"keypath"`
	Locale   string `json:"locale"`
	FilePath string `json:"filepath"`
	Value    string `json:"value,omitempty"`
	Delete   bool   `json:"delete,omitempty"`
}

// survivors drops shadow records. Every intent starts here: a shadow has
// no backing file content, so there is nothing persisted to change.
func survivors(records []*catalog.LocaleRecord) []*catalog.LocaleRecord {
	out := make([]*catalog.LocaleRecord, 0, len(records))
	for _, r := range records {
		if r == nil || r.Shadow {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Edit plans a value change for a single resolved record.
// Equal values plan nothing (idempotence); shadows plan nothing.
func Edit(record *catalog.LocaleRecord, newValue string) []WriteOp {
	recs := survivors([]*catalog.LocaleRecord{record})
	if len(recs) == 0 {
		return nil
	}
	r := recs[0]
	if r.Value == newValue {
		return nil
	}
	return []WriteOp{{
		KeyPath:  r.KeyPath,
		Locale:   r.Locale,
		FilePath: r.FilePath,
		Value:    newValue,
	}}
}

// Remove plans deletion of every surviving record, in input order.
func Remove(records []*catalog.LocaleRecord) []WriteOp {
	recs := survivors(records)
	ops := make([]WriteOp, 0, len(recs))
	for _, r := range recs {
		ops = append(ops, WriteOp{
			KeyPath:  r.KeyPath,
			Locale:   r.Locale,
			FilePath: r.FilePath,
			Delete:   true,
		})
	}
	return ops
}

// Rename plans moving every surviving record from oldKey to newKey.
// Per record it emits delete-old strictly before insert-new, interleaved
// rather than grouped by op type: when both ops land in the same file the
// deletion must be visible before the insertion, and a mid-batch failure
// then leaves each already-processed record internally consistent.
// Callers short-circuit newKey == oldKey and empty newKey before planning;
// this returns nil for those inputs as a guard.
func Rename(oldKey, newKey string, records []*catalog.LocaleRecord) []WriteOp {
	if newKey == "" || newKey == oldKey {
		return nil
	}
	recs := survivors(records)
	ops := make([]WriteOp, 0, 2*len(recs))
	for _, r := range recs {
		ops = append(ops,
			WriteOp{
				KeyPath:  oldKey,
				Locale:   r.Locale,
				FilePath: r.FilePath,
				Delete:   true,
			},
			WriteOp{
				KeyPath:  newKey,
				Locale:   r.Locale,
				FilePath: r.FilePath,
				Value:    r.Value,
			},
		)
	}
	return ops
}

// RenameSubtree plans moving every surviving record under oldPrefix to the
// corresponding keypath under newPrefix, preserving the per-record
// delete-before-insert interleaving of Rename.
func RenameSubtree(oldPrefix, newPrefix string, records []*catalog.LocaleRecord) []WriteOp {
	if newPrefix == "" || newPrefix == oldPrefix {
		return nil
	}
	recs := survivors(records)
	ops := make([]WriteOp, 0, 2*len(recs))
	for _, r := range recs {
		if !catalog.HasPrefix(r.KeyPath, oldPrefix) {
			continue
		}
		newKey := newPrefix + r.KeyPath[len(oldPrefix):]
		ops = append(ops,
			WriteOp{
				KeyPath:  r.KeyPath,
				Locale:   r.Locale,
				FilePath: r.FilePath,
				Delete:   true,
			},
			WriteOp{
				KeyPath:  newKey,
				Locale:   r.Locale,
				FilePath: r.FilePath,
				Value:    r.Value,
			},
		)
	}
	return ops
}

// Upsert builds a single upsert op for a record with a new value.
// Translation results use this shape: a translate op is one upsert, not a
// delete+insert pair, and bypasses intent planning entirely.
func Upsert(record *catalog.LocaleRecord, value string) WriteOp {
	return WriteOp{
		KeyPath:  record.KeyPath,
		Locale:   record.Locale,
		FilePath: record.FilePath,
		Value:    value,
	}
}
