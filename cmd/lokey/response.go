package main

import (
	"lokey/internal/loader"
	"lokey/internal/plan"
)

// ScanResponse summarizes one scan for CLI output.
type ScanResponse struct {
	ScanID     string             `json:"scanId"`
	Files      int                `json:"files"`
	Records    int                `json:"records"`
	Locales    []string           `json:"locales"`
	Errors     []loader.FileError `json:"errors,omitempty"`
	DurationMs int64              `json:"durationMs"`
}

// PlanResponse reports a planned (and possibly applied) write set.
type PlanResponse struct {
	Command string         `json:"command"`
	DryRun  bool           `json:"dryRun"`
	Applied bool           `json:"applied"`
	Ops     []plan.WriteOp `json:"ops"`
}

// MissingResponse reports untranslated keypaths per locale.
type MissingResponse struct {
	DefaultLocale string              `json:"defaultLocale"`
	Missing       map[string][]string `json:"missing"`
}

// LocateResponse reports the byte range of a key inside a document.
type LocateResponse struct {
	File    string `json:"file"`
	KeyPath string `json:"keypath"`
	Found   bool   `json:"found"`
	Start   int    `json:"start,omitempty"`
	End     int    `json:"end,omitempty"`
}

// StatusResponse summarizes the workspace state.
type StatusResponse struct {
	Version       string         `json:"version"`
	Root          string         `json:"root"`
	DefaultLocale string         `json:"defaultLocale"`
	ScanID        string         `json:"scanId,omitempty"`
	ScannedAt     string         `json:"scannedAt,omitempty"`
	Files         int            `json:"files"`
	RecordCounts  map[string]int `json:"recordCounts"`
}

// TreeEntry is one node in the JSON rendering of the key tree.
type TreeEntry struct {
	KeyPath  string            `json:"keypath"`
	Kind     string            `json:"kind"`
	Values   map[string]string `json:"values,omitempty"`
	Shadows  []string          `json:"shadows,omitempty"`
	Children []*TreeEntry      `json:"children,omitempty"`
}

// TreeResponse is the JSON rendering of (a subtree of) the key tree.
type TreeResponse struct {
	Prefix  string       `json:"prefix,omitempty"`
	Locales []string     `json:"locales"`
	Entries []*TreeEntry `json:"entries"`
}
