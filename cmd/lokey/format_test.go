package main

import (
	"strings"
	"testing"

	"lokey/internal/plan"
	"lokey/internal/testutil"
)

func TestFormatResponse_JSON(t *testing.T) {
	resp := map[string]interface{}{
		"key": "value",
		"num": 42,
	}

	result, err := FormatResponse(resp, FormatJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result, `"key": "value"`) {
		t.Error("JSON output missing expected key")
	}
	if !strings.Contains(result, `"num": 42`) {
		t.Error("JSON output missing expected number")
	}
}

func TestFormatResponse_UnsupportedFormat(t *testing.T) {
	resp := map[string]string{"key": "value"}

	_, err := FormatResponse(resp, "xml")
	if err == nil {
		t.Error("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("error should mention unsupported format, got: %v", err)
	}
}

func TestFormatPlanHuman_Empty(t *testing.T) {
	resp := &PlanResponse{Command: "rm", Ops: nil}

	result, err := formatHuman(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result, "Nothing to do") {
		t.Errorf("empty plan output = %q", result)
	}
}

func TestFormatPlanHuman_Ops(t *testing.T) {
	resp := &PlanResponse{
		Command: "rename",
		Applied: true,
		Ops: []plan.WriteOp{
			{KeyPath: "a.b", Locale: "en", FilePath: "locales/en.json", Delete: true},
			{KeyPath: "a.c", Locale: "en", FilePath: "locales/en.json", Value: "v"},
		},
	}

	result, err := formatHuman(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result, "- a.b [en]") {
		t.Error("missing delete line")
	}
	if !strings.Contains(result, `+ a.c [en] = "v"`) {
		t.Error("missing insert line")
	}
	if !strings.Contains(result, "Applied 2 operations") {
		t.Errorf("missing applied summary: %q", result)
	}
}

func TestFormatScanHuman(t *testing.T) {
	resp := &ScanResponse{
		Files:      3,
		Records:    42,
		Locales:    []string{"de", "en"},
		DurationMs: 12,
	}

	result, err := formatHuman(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result, "Scanned 3 files, 42 records") {
		t.Errorf("scan output = %q", result)
	}
	if !strings.Contains(result, "de, en") {
		t.Error("missing locale list")
	}
}

func TestFormatLocateHuman(t *testing.T) {
	found := &LocateResponse{File: "locales/en.json", KeyPath: "a.b", Found: true, Start: 4, End: 9}
	result, err := formatHuman(found)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result, "[4, 9)") {
		t.Errorf("locate output = %q", result)
	}

	miss := &LocateResponse{File: "locales/en.json", KeyPath: "a.b"}
	result, err = formatHuman(miss)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result, "not found") {
		t.Errorf("locate miss output = %q", result)
	}
}

func TestFormatStatusHuman_Golden(t *testing.T) {
	resp := &StatusResponse{
		Version:       "0.4.0",
		Root:          "/work/shop",
		DefaultLocale: "en",
		ScanID:        "3f2c61d8-9a41-4b7e-8d12-0f5e6a7b8c9d",
		ScannedAt:     "2026-08-25T09:30:00Z",
		Files:         3,
		RecordCounts:  map[string]int{"de": 2, "en": 3},
	}

	result, err := formatHuman(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.CompareGolden(t, "status_human", []byte(result))
}

func TestFormatStatusHuman_NoSnapshot(t *testing.T) {
	resp := &StatusResponse{
		Version:       "0.4.0",
		Root:          "/tmp/ws",
		DefaultLocale: "en",
		RecordCounts:  map[string]int{},
	}

	result, err := formatHuman(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result, "No scan snapshot yet") {
		t.Errorf("status output = %q", result)
	}
}
