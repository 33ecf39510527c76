package plan

import (
	"testing"

	"lokey/internal/catalog"
)

func real(keypath, locale, value, file string) *catalog.LocaleRecord {
	return &catalog.LocaleRecord{KeyPath: keypath, Locale: locale, Value: value, FilePath: file}
}

func shadow(keypath, locale, value, file string) *catalog.LocaleRecord {
	r := real(keypath, locale, value, file)
	r.Shadow = true
	return r
}

func TestEditIdempotent(t *testing.T) {
	r := real("greeting.hi", "en", "Hello", "en.json")
	if ops := Edit(r, "Hello"); len(ops) != 0 {
		t.Errorf("Edit with equal value planned %d ops, want 0", len(ops))
	}
}

func TestEditChange(t *testing.T) {
	r := real("greeting.hi", "en", "Hello", "en.json")
	ops := Edit(r, "Hi there")
	if len(ops) != 1 {
		t.Fatalf("Edit planned %d ops, want 1", len(ops))
	}
	op := ops[0]
	if op.Delete {
		t.Error("edit op must not be a delete")
	}
	if op.Value != "Hi there" || op.KeyPath != "greeting.hi" || op.Locale != "en" || op.FilePath != "en.json" {
		t.Errorf("unexpected op: %+v", op)
	}
}

func TestEditShadowIsNoop(t *testing.T) {
	if ops := Edit(shadow("k", "fr", "Hello", "en.json"), "Bonjour"); len(ops) != 0 {
		t.Errorf("Edit on shadow planned %d ops, want 0", len(ops))
	}
	if ops := Edit(nil, "x"); len(ops) != 0 {
		t.Errorf("Edit on nil planned %d ops, want 0", len(ops))
	}
}

func TestRemoveSkipsShadows(t *testing.T) {
	// Node aggregating en (real) and fr (shadow inherited from en): delete
	// must touch only the en file.
	records := []*catalog.LocaleRecord{
		real("greeting.hi", "en", "Hello", "locales/en.json"),
		shadow("greeting.hi", "fr", "Hello", "locales/en.json"),
	}
	ops := Remove(records)
	if len(ops) != 1 {
		t.Fatalf("Remove planned %d ops, want 1", len(ops))
	}
	op := ops[0]
	if !op.Delete {
		t.Error("remove op must be a delete")
	}
	if op.Locale != "en" || op.FilePath != "locales/en.json" || op.KeyPath != "greeting.hi" {
		t.Errorf("unexpected op: %+v", op)
	}
}

func TestRemoveAllShadowsIsNoop(t *testing.T) {
	ops := Remove([]*catalog.LocaleRecord{
		shadow("k", "fr", "v", "en.json"),
		shadow("k", "de", "v", "en.json"),
	})
	if len(ops) != 0 {
		t.Errorf("Remove of only shadows planned %d ops, want 0", len(ops))
	}
}

func TestRemoveOrderMatchesInput(t *testing.T) {
	ops := Remove([]*catalog.LocaleRecord{
		real("k", "de", "b", "de.json"),
		real("k", "en", "a", "en.json"),
	})
	if len(ops) != 2 || ops[0].Locale != "de" || ops[1].Locale != "en" {
		t.Errorf("Remove order not deterministic: %+v", ops)
	}
}

func TestRenameInterleavesDeleteBeforeInsert(t *testing.T) {
	records := []*catalog.LocaleRecord{
		real("greeting.hi", "en", "Hello", "locales/en.json"),
		real("greeting.hi", "de", "Hallo", "locales/de.json"),
	}
	ops := Rename("greeting.hi", "greeting.hello", records)
	if len(ops) != 4 {
		t.Fatalf("Rename planned %d ops, want 2 per record", len(ops))
	}

	// Per-record interleaving, not grouped by op type.
	if !ops[0].Delete || ops[0].KeyPath != "greeting.hi" || ops[0].Locale != "en" {
		t.Errorf("op[0] = %+v, want delete of old key in en", ops[0])
	}
	if ops[1].Delete || ops[1].KeyPath != "greeting.hello" || ops[1].Value != "Hello" {
		t.Errorf("op[1] = %+v, want insert of new key with preserved value", ops[1])
	}
	if !ops[2].Delete || ops[2].Locale != "de" {
		t.Errorf("op[2] = %+v, want delete in de", ops[2])
	}
	if ops[3].Delete || ops[3].Value != "Hallo" {
		t.Errorf("op[3] = %+v, want insert in de with preserved value", ops[3])
	}
}

func TestRenameOpCount(t *testing.T) {
	records := []*catalog.LocaleRecord{
		real("k", "en", "a", "en.json"),
		shadow("k", "fr", "a", "en.json"),
		real("k", "de", "b", "de.json"),
	}
	ops := Rename("k", "k2", records)
	if len(ops) != 4 {
		t.Errorf("Rename planned %d ops, want 2 * count(non-shadow) = 4", len(ops))
	}
	for _, op := range ops {
		if op.Locale == "fr" {
			t.Errorf("shadow record leaked into plan: %+v", op)
		}
	}
}

func TestRenameNoopInputs(t *testing.T) {
	records := []*catalog.LocaleRecord{real("k", "en", "a", "en.json")}
	if ops := Rename("k", "k", records); len(ops) != 0 {
		t.Errorf("Rename to same key planned %d ops, want 0", len(ops))
	}
	if ops := Rename("k", "", records); len(ops) != 0 {
		t.Errorf("Rename to empty key planned %d ops, want 0", len(ops))
	}
}

func TestRenameSubtree(t *testing.T) {
	records := []*catalog.LocaleRecord{
		real("menu.file.open", "en", "Open", "en.json"),
		real("menu.file.save", "en", "Save", "en.json"),
		shadow("menu.file.save", "de", "Save", "en.json"),
	}
	ops := RenameSubtree("menu.file", "menu.document", records)
	if len(ops) != 4 {
		t.Fatalf("RenameSubtree planned %d ops, want 4", len(ops))
	}
	if ops[1].KeyPath != "menu.document.open" {
		t.Errorf("op[1].KeyPath = %q, want remapped prefix", ops[1].KeyPath)
	}
	if ops[3].KeyPath != "menu.document.save" || ops[3].Value != "Save" {
		t.Errorf("op[3] = %+v", ops[3])
	}
}

func TestUpsertShape(t *testing.T) {
	op := Upsert(real("k", "de", "old", "de.json"), "neu")
	if op.Delete {
		t.Error("upsert must not be a delete")
	}
	if op.Value != "neu" || op.Locale != "de" || op.FilePath != "de.json" {
		t.Errorf("unexpected op: %+v", op)
	}
}
