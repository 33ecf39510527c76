package locator

import (
	"strings"
	"testing"

	"lokey/internal/parser"
)

const enJSON = `{
  "greeting": {
    "hi": "Hello"
  },
  "menu.file": "File"
}
`

func newLocator() *Locator {
	return New(parser.Default())
}

func TestLocate(t *testing.T) {
	r := newLocator().Locate("en.json", []byte(enJSON), "greeting.hi")
	if r == nil {
		t.Fatal("Locate() = nil, want range")
	}
	if got := enJSON[r.Start:r.End]; got != `"hi"` {
		t.Errorf("range covers %q", got)
	}
}

func TestLocateMissNeverErrors(t *testing.T) {
	if r := newLocator().Locate("en.json", []byte(enJSON), "no.such.key"); r != nil {
		t.Errorf("Locate() = %+v, want nil on miss", r)
	}
}

func TestLocateUnsupportedExtension(t *testing.T) {
	if r := newLocator().Locate("en.properties", []byte("a=b"), "a"); r != nil {
		t.Errorf("Locate() = %+v, want nil for unsupported extension", r)
	}
}

func TestLocateAllPredicate(t *testing.T) {
	matches := newLocator().LocateAll("en.json", []byte(enJSON), func(keypath string) bool {
		return strings.HasPrefix(keypath, "greeting")
	})
	if len(matches) != 2 {
		t.Fatalf("LocateAll() found %d matches, want 2", len(matches))
	}
	if matches[0].KeyPath != "greeting" || matches[1].KeyPath != "greeting.hi" {
		t.Errorf("matches = %+v", matches)
	}
}

func TestReplaceAllNestedKey(t *testing.T) {
	got := newLocator().ReplaceAll("en.json", []byte(enJSON), "greeting.hi", "greeting.hello")
	if !strings.Contains(string(got), `"hello": "Hello"`) {
		t.Errorf("patched text:\n%s", got)
	}
	if strings.Contains(string(got), `"hi"`) {
		t.Errorf("old key still present:\n%s", got)
	}
}

func TestReplaceAllFlatDottedKey(t *testing.T) {
	got := newLocator().ReplaceAll("en.json", []byte(enJSON), "menu.file", "menu.document")
	if !strings.Contains(string(got), `"menu.document": "File"`) {
		t.Errorf("patched text:\n%s", got)
	}
}

func TestReplaceAllNoMatchReturnsInput(t *testing.T) {
	got := newLocator().ReplaceAll("en.json", []byte(enJSON), "absent", "whatever")
	if string(got) != enJSON {
		t.Error("text should be unchanged when the key is absent")
	}
}
