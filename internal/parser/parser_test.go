package parser

import (
	"reflect"
	"testing"
)

func TestRegistryForPath(t *testing.T) {
	reg := Default()

	tests := []struct {
		path string
		want string
	}{
		{"locales/en.json", "json"},
		{"locales/en.yaml", "yaml"},
		{"locales/en.yml", "yaml"},
		{"locales/en.toml", "toml"},
		{"locales/EN.JSON", "json"},
	}
	for _, tt := range tests {
		f := reg.ForPath(tt.path)
		if f == nil {
			t.Errorf("ForPath(%q) = nil", tt.path)
			continue
		}
		if f.Name() != tt.want {
			t.Errorf("ForPath(%q) = %q, want %q", tt.path, f.Name(), tt.want)
		}
	}
}

func TestRegistryUnknownExtension(t *testing.T) {
	if f := Default().ForPath("locales/en.properties"); f != nil {
		t.Errorf("ForPath(.properties) = %v, want nil", f)
	}
}

func TestRegistryExtensions(t *testing.T) {
	exts := Default().Extensions()
	want := []string{".json", ".toml", ".yaml", ".yml"}
	if !reflect.DeepEqual(exts, want) {
		t.Errorf("Extensions() = %v, want %v", exts, want)
	}
}

func TestFlattenScalars(t *testing.T) {
	out := map[string]string{}
	Flatten("", map[string]interface{}{
		"n":    3,
		"b":    true,
		"s":    "str",
		"null": nil,
	}, out)

	if out["n"] != "3" || out["b"] != "true" || out["s"] != "str" {
		t.Errorf("Flatten scalars = %v", out)
	}
	if _, ok := out["null"]; ok {
		t.Error("null leaves should be absent")
	}
}
