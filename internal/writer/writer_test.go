package writer

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"lokey/internal/logging"
	"lokey/internal/parser"
	"lokey/internal/plan"
)

func newWriter(t *testing.T) (*Writer, string) {
	t.Helper()
	root := t.TempDir()
	return New(root, parser.Default(), logging.NewDiscard()), root
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	abs := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(abs, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readFlat(t *testing.T, root, rel string) map[string]string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		t.Fatal(err)
	}
	flat, err := parser.Default().ForPath(rel).Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	return flat
}

func TestApplyEdit(t *testing.T) {
	w, root := newWriter(t)
	writeFile(t, root, "locales/en.json", `{"greeting": {"hi": "Hello"}}`)

	err := w.Apply([]plan.WriteOp{
		{KeyPath: "greeting.hi", Locale: "en", FilePath: "locales/en.json", Value: "Hi there"},
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	flat := readFlat(t, root, "locales/en.json")
	if flat["greeting.hi"] != "Hi there" {
		t.Errorf("value after edit = %q", flat["greeting.hi"])
	}
}

func TestApplyRenameDeleteBeforeInsertSameFile(t *testing.T) {
	w, root := newWriter(t)
	writeFile(t, root, "en.yaml", "greeting:\n  hi: Hello\n  bye: Bye\n")

	err := w.Apply([]plan.WriteOp{
		{KeyPath: "greeting.hi", Locale: "en", FilePath: "en.yaml", Delete: true},
		{KeyPath: "greeting.hello", Locale: "en", FilePath: "en.yaml", Value: "Hello"},
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	flat := readFlat(t, root, "en.yaml")
	want := map[string]string{"greeting.bye": "Bye", "greeting.hello": "Hello"}
	if !reflect.DeepEqual(flat, want) {
		t.Errorf("file after rename = %v, want %v", flat, want)
	}
}

func TestApplyDeletePrunesEmptyParents(t *testing.T) {
	w, root := newWriter(t)
	writeFile(t, root, "en.json", `{"a": {"b": {"c": "v"}}, "keep": "x"}`)

	err := w.Apply([]plan.WriteOp{
		{KeyPath: "a.b.c", Locale: "en", FilePath: "en.json", Delete: true},
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	flat := readFlat(t, root, "en.json")
	if !reflect.DeepEqual(flat, map[string]string{"keep": "x"}) {
		t.Errorf("file after delete = %v", flat)
	}
}

func TestApplyCreatesMissingFile(t *testing.T) {
	w, root := newWriter(t)

	err := w.Apply([]plan.WriteOp{
		{KeyPath: "greeting.hi", Locale: "fr", FilePath: "locales/fr.json", Value: "Bonjour"},
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	flat := readFlat(t, root, "locales/fr.json")
	if flat["greeting.hi"] != "Bonjour" {
		t.Errorf("new file content = %v", flat)
	}
}

func TestApplyPreservesFlatKeys(t *testing.T) {
	w, root := newWriter(t)
	writeFile(t, root, "en.json", `{"menu.file": "File"}`)

	err := w.Apply([]plan.WriteOp{
		{KeyPath: "menu.file", Locale: "en", FilePath: "en.json", Value: "Datei"},
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(root, "en.json"))
	flat := readFlat(t, root, "en.json")
	if flat["menu.file"] != "Datei" {
		t.Errorf("file after edit = %v (raw: %s)", flat, data)
	}
}

func TestApplyUnsupportedFormat(t *testing.T) {
	w, _ := newWriter(t)
	err := w.Apply([]plan.WriteOp{
		{KeyPath: "k", Locale: "en", FilePath: "en.properties", Value: "v"},
	})
	if err == nil {
		t.Fatal("Apply() should fail for unsupported format")
	}
}

func TestApplyEmptyPlanIsNoop(t *testing.T) {
	w, _ := newWriter(t)
	if err := w.Apply(nil); err != nil {
		t.Errorf("Apply(nil) error = %v", err)
	}
}

func TestSetKeyNested(t *testing.T) {
	tree := map[string]interface{}{}
	SetKey(tree, "a.b.c", "v")
	inner := tree["a"].(map[string]interface{})["b"].(map[string]interface{})
	if inner["c"] != "v" {
		t.Errorf("tree = %v", tree)
	}
}

func TestDeleteKeyMissingIsNoop(t *testing.T) {
	tree := map[string]interface{}{"a": "x"}
	DeleteKey(tree, "b.c")
	if tree["a"] != "x" {
		t.Errorf("tree = %v", tree)
	}
}
