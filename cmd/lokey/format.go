package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
)

// FormatResponse formats a response according to the specified format
func FormatResponse(resp interface{}, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(resp)
	case FormatHuman:
		return formatHuman(resp)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// formatJSON formats the response as JSON
func formatJSON(resp interface{}) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// formatHuman formats the response in human-readable format
func formatHuman(resp interface{}) (string, error) {
	switch v := resp.(type) {
	case *ScanResponse:
		return formatScanHuman(v)
	case *PlanResponse:
		return formatPlanHuman(v)
	case *LocateResponse:
		return formatLocateHuman(v)
	case *StatusResponse:
		return formatStatusHuman(v)
	default:
		// For unknown types, fall back to JSON
		return formatJSON(resp)
	}
}

func formatScanHuman(resp *ScanResponse) (string, error) {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Scanned %d files, %d records in %dms\n",
		resp.Files, resp.Records, resp.DurationMs))
	b.WriteString(fmt.Sprintf("Locales: %s\n", strings.Join(resp.Locales, ", ")))

	if len(resp.Errors) > 0 {
		b.WriteString("\nParse errors:\n")
		for _, e := range resp.Errors {
			b.WriteString(fmt.Sprintf("  ! %s: %s\n", e.File, e.Err))
		}
	}

	return b.String(), nil
}

func formatPlanHuman(resp *PlanResponse) (string, error) {
	var b strings.Builder

	if len(resp.Ops) == 0 {
		b.WriteString("Nothing to do.\n")
		return b.String(), nil
	}

	for _, op := range resp.Ops {
		if op.Delete {
			b.WriteString(fmt.Sprintf("  - %s [%s] (%s)\n", op.KeyPath, op.Locale, op.FilePath))
		} else {
			b.WriteString(fmt.Sprintf("  + %s [%s] = %q (%s)\n", op.KeyPath, op.Locale, op.Value, op.FilePath))
		}
	}

	switch {
	case resp.DryRun:
		b.WriteString(fmt.Sprintf("\nDry run: %d operations planned, nothing written.\n", len(resp.Ops)))
	case resp.Applied:
		b.WriteString(fmt.Sprintf("\nApplied %d operations.\n", len(resp.Ops)))
	}

	return b.String(), nil
}

func formatLocateHuman(resp *LocateResponse) (string, error) {
	if !resp.Found {
		return fmt.Sprintf("%s: key %q not found\n", resp.File, resp.KeyPath), nil
	}
	return fmt.Sprintf("%s: %q at bytes [%d, %d)\n", resp.File, resp.KeyPath, resp.Start, resp.End), nil
}

func formatStatusHuman(resp *StatusResponse) (string, error) {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("lokey v%s\n", resp.Version))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	b.WriteString(fmt.Sprintf("Workspace: %s\n", resp.Root))
	b.WriteString(fmt.Sprintf("Default locale: %s\n", resp.DefaultLocale))

	if resp.ScanID == "" {
		b.WriteString("\nNo scan snapshot yet. Run 'lokey scan' first.\n")
		return b.String(), nil
	}

	scanID := resp.ScanID
	if len(scanID) > 12 {
		scanID = scanID[:12]
	}
	b.WriteString(fmt.Sprintf("\nSnapshot: %s (%s)\n", scanID, resp.ScannedAt))
	b.WriteString(fmt.Sprintf("Files: %d\n\n", resp.Files))

	locales := make([]string, 0, len(resp.RecordCounts))
	for l := range resp.RecordCounts {
		locales = append(locales, l)
	}
	sort.Strings(locales)

	b.WriteString("Records per locale:\n")
	for _, l := range locales {
		b.WriteString(fmt.Sprintf("  %s: %d\n", l, resp.RecordCounts[l]))
	}

	return b.String(), nil
}
