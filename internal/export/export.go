// Package export writes catalog snapshots as zstd-compressed JSON.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"

	"lokey/internal/catalog"
	"lokey/internal/version"
)

// Archive is the exported document shape.
type Archive struct {
	Tool          string                 `json:"tool"`
	Version       string                 `json:"version"`
	ExportedAt    time.Time              `json:"exportedAt"`
	DefaultLocale string                 `json:"defaultLocale"`
	Locales       []string               `json:"locales"`
	Records       []catalog.LocaleRecord `json:"records"`
}

// Write streams the records as a zstd-compressed JSON archive. Shadow
// records are derived data and are excluded.
func Write(w io.Writer, defaultLocale string, locales []string, records []catalog.LocaleRecord) error {
	real := make([]catalog.LocaleRecord, 0, len(records))
	for _, r := range records {
		if !r.Shadow {
			real = append(real, r)
		}
	}

	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("creating zstd writer: %w", err)
	}

	je := json.NewEncoder(enc)
	je.SetIndent("", "  ")
	if err := je.Encode(Archive{
		Tool:          "lokey",
		Version:       version.Version,
		ExportedAt:    time.Now().UTC(),
		DefaultLocale: defaultLocale,
		Locales:       locales,
		Records:       real,
	}); err != nil {
		enc.Close()
		return fmt.Errorf("encoding archive: %w", err)
	}
	return enc.Close()
}

// Read decodes an archive written by Write.
func Read(r io.Reader) (*Archive, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("creating zstd reader: %w", err)
	}
	defer dec.Close()

	var a Archive
	if err := json.NewDecoder(dec).Decode(&a); err != nil {
		return nil, fmt.Errorf("decoding archive: %w", err)
	}
	return &a, nil
}
