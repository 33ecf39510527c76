// Package engine orchestrates the core: scanning locale files, building
// the key tree, planning mutations and committing them.
package engine

import (
	"io"
	"log/slog"
	"time"

	"lokey/internal/catalog"
	"lokey/internal/config"
	"lokey/internal/export"
	"lokey/internal/loader"
	"lokey/internal/locator"
	"lokey/internal/parser"
	"lokey/internal/plan"
	"lokey/internal/storage"
	"lokey/internal/writer"
)

// Engine binds configuration, the snapshot store and the collaborators
// into one context object. Core operations are pure functions of the
// loaded snapshot; the engine supplies their inputs and hands results to
// the persistence layer.
type Engine struct {
	root     string
	cfg      *config.Config
	db       *storage.DB
	registry *parser.Registry
	locator  *locator.Locator
	writer   *writer.Writer
	logger   *slog.Logger
}

// New creates an engine for the workspace.
func New(root string, cfg *config.Config, db *storage.DB, logger *slog.Logger) *Engine {
	registry := parser.Default()
	return &Engine{
		root:     root,
		cfg:      cfg,
		db:       db,
		registry: registry,
		locator:  locator.New(registry),
		writer:   writer.New(root, registry, logger),
		logger:   logger,
	}
}

// Registry exposes the format registry.
func (e *Engine) Registry() *parser.Registry { return e.registry }

// Config exposes the workspace configuration.
func (e *Engine) Config() *config.Config { return e.cfg }

// Snapshot returns the cached scan snapshot.
func (e *Engine) Snapshot() (*storage.Snapshot, error) {
	return e.db.LoadSnapshot()
}

// Counts returns per-locale record counts of the cached snapshot.
func (e *Engine) Counts() (map[string]int, error) {
	return e.db.CountRecords()
}

// Locator exposes the key locator.
func (e *Engine) Locator() *locator.Locator { return e.locator }

// ScanResult summarizes one scan.
type ScanResult struct {
	ScanID   string             `json:"scanId"`
	Files    int                `json:"files"`
	Records  int                `json:"records"`
	Locales  []string           `json:"locales"`
	Errors   []loader.FileError `json:"errors,omitempty"`
	Duration time.Duration      `json:"-"`
}

// Scan walks the locale paths, replaces the cached snapshot and returns
// the summary.
func (e *Engine) Scan() (*ScanResult, error) {
	start := time.Now()
	res, err := loader.Scan(loader.Options{
		Root:        e.root,
		LocalePaths: e.cfg.LocalePaths,
		Registry:    e.registry,
		Ignore:      e.cfg.Ignore,
		Logger:      e.logger,
	})
	if err != nil {
		return nil, err
	}

	id, err := e.db.SaveSnapshot(e.cfg.DefaultLocale, res.Files, res.Locales, res.Records)
	if err != nil {
		return nil, err
	}

	return &ScanResult{
		ScanID:   id,
		Files:    res.Files,
		Records:  len(res.Records),
		Locales:  res.Locales,
		Errors:   res.Errors,
		Duration: time.Since(start),
	}, nil
}

// Catalog rebuilds the key tree from the cached snapshot. Locales count as
// known when the scan saw a file for them, even an empty one, or when the
// config declares them; shadow entries appear for all of those.
func (e *Engine) Catalog() (*catalog.Catalog, error) {
	snap, err := e.db.LoadSnapshot()
	if err != nil {
		return nil, err
	}
	return catalog.Build(snap.Records, e.cfg.DefaultLocale, e.knownLocales(snap)), nil
}

// knownLocales unions the locales the scan discovered with the ones the
// config declares.
func (e *Engine) knownLocales(snap *storage.Snapshot) []string {
	known := append([]string{}, snap.Locales...)
	known = append(known, e.cfg.Locales...)
	return known
}

// Apply commits a planned write set and refreshes the snapshot so the
// next catalog build sees the new file state.
func (e *Engine) Apply(ops []plan.WriteOp) error {
	if len(ops) == 0 {
		return nil
	}
	if err := e.writer.Apply(ops); err != nil {
		return err
	}
	_, err := e.Scan()
	return err
}

// Export streams the cached snapshot as a compressed archive.
func (e *Engine) Export(w io.Writer) error {
	snap, err := e.db.LoadSnapshot()
	if err != nil {
		return err
	}
	c := catalog.Build(snap.Records, e.cfg.DefaultLocale, e.knownLocales(snap))
	return export.Write(w, snap.DefaultLocale, c.Locales, snap.Records)
}

// Missing reports untranslated keypaths per locale.
func (e *Engine) Missing() (map[string][]string, error) {
	c, err := e.Catalog()
	if err != nil {
		return nil, err
	}
	return c.Missing(), nil
}
