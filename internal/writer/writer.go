// Package writer commits planned write ops to locale files. It is the
// persistence collaborator: ops arrive already filtered and ordered, and a
// failure surfaces to the caller without rollback of committed files.
package writer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"lokey/internal/lokerr"
	"lokey/internal/parser"
	"lokey/internal/plan"
)

// Writer applies write ops by round-tripping each touched file through its
// format: decode to a nested tree, mutate, marshal, write back.
type Writer struct {
	root     string
	registry *parser.Registry
	logger   *slog.Logger
}

// New creates a writer rooted at the workspace directory. Op file paths
// are workspace-relative canonical paths.
func New(root string, registry *parser.Registry, logger *slog.Logger) *Writer {
	return &Writer{root: root, registry: registry, logger: logger}
}

// Apply commits the ops, grouped per file in first-appearance order.
// Within one file ops apply in sequence, so a rename's delete lands before
// its insert and a mid-batch failure leaves every already-written file
// internally consistent.
func (w *Writer) Apply(ops []plan.WriteOp) error {
	if len(ops) == 0 {
		return nil
	}

	batch := uuid.New().String()[:8]
	files := []string{}
	perFile := map[string][]plan.WriteOp{}
	for _, op := range ops {
		if _, ok := perFile[op.FilePath]; !ok {
			files = append(files, op.FilePath)
		}
		perFile[op.FilePath] = append(perFile[op.FilePath], op)
	}

	for _, file := range files {
		if err := w.applyFile(file, perFile[file]); err != nil {
			w.logger.Error("write batch aborted", "batch", batch, "file", file, "error", err)
			return err
		}
		w.logger.Debug("file written", "batch", batch, "file", file, "ops", len(perFile[file]))
	}

	w.logger.Info("write batch committed", "batch", batch, "files", len(files), "ops", len(ops))
	return nil
}

func (w *Writer) applyFile(file string, ops []plan.WriteOp) error {
	f := w.registry.ForPath(file)
	if f == nil {
		return lokerr.Newf(lokerr.UnsupportedFormat, "no parser for %q", file)
	}

	abs := filepath.Join(w.root, filepath.FromSlash(file))
	data, err := os.ReadFile(abs)
	if err != nil && !os.IsNotExist(err) {
		return lokerr.New(lokerr.WriteFailed, fmt.Sprintf("reading %s", file), err)
	}

	tree, err := f.Decode(data)
	if err != nil {
		return lokerr.New(lokerr.ParseFailed, fmt.Sprintf("parsing %s", file), err)
	}

	for _, op := range ops {
		if op.Delete {
			DeleteKey(tree, op.KeyPath)
		} else {
			SetKey(tree, op.KeyPath, op.Value)
		}
	}

	out, err := f.Marshal(tree)
	if err != nil {
		return lokerr.New(lokerr.WriteFailed, fmt.Sprintf("encoding %s", file), err)
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return lokerr.New(lokerr.WriteFailed, fmt.Sprintf("creating directory for %s", file), err)
	}
	if err := os.WriteFile(abs, out, 0644); err != nil {
		return lokerr.New(lokerr.WriteFailed, fmt.Sprintf("writing %s", file), err)
	}
	return nil
}

// SetKey upserts a value at keypath in the nested tree. A file that keeps
// its keys flat (a literal dotted key at top level) is updated in place
// rather than exploded into nesting.
func SetKey(tree map[string]interface{}, keypath string, value string) {
	if _, ok := tree[keypath]; ok {
		tree[keypath] = value
		return
	}

	segs := splitKey(keypath)
	cur := tree
	for i, seg := range segs {
		if i == len(segs)-1 {
			cur[seg] = value
			return
		}
		child, ok := cur[seg].(map[string]interface{})
		if !ok {
			// A scalar in the way is replaced by a table; deletion must be
			// visible before insertion for this to be safe during rename.
			child = map[string]interface{}{}
			cur[seg] = child
		}
		cur = child
	}
}

// DeleteKey removes the value at keypath and prunes parent tables left
// empty. Flat dotted keys at top level are removed directly.
func DeleteKey(tree map[string]interface{}, keypath string) {
	if _, ok := tree[keypath]; ok {
		delete(tree, keypath)
		return
	}

	segs := splitKey(keypath)
	parents := make([]map[string]interface{}, 0, len(segs))
	cur := tree
	for i, seg := range segs {
		if i == len(segs)-1 {
			delete(cur, seg)
			break
		}
		child, ok := cur[seg].(map[string]interface{})
		if !ok {
			return
		}
		parents = append(parents, cur)
		cur = child
	}

	// Prune empty tables bottom-up.
	for i := len(parents) - 1; i >= 0; i-- {
		seg := segs[i]
		child, _ := parents[i][seg].(map[string]interface{})
		if child != nil && len(child) == 0 {
			delete(parents[i], seg)
		}
	}
}

func splitKey(keypath string) []string {
	segs := []string{}
	start := 0
	for i := 0; i <= len(keypath); i++ {
		if i == len(keypath) || keypath[i] == '.' {
			segs = append(segs, keypath[start:i])
			start = i + 1
		}
	}
	return segs
}
