package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		if req["q"] != "Hello" || req["source"] != "en" || req["target"] != "fr" {
			t.Errorf("request = %v", req)
		}
		json.NewEncoder(w).Encode(map[string]string{"translatedText": "Bonjour"})
	}))
	defer srv.Close()

	c := NewClient(Options{Endpoint: srv.URL})
	got, err := c.Translate(context.Background(), "Hello", "en-US", "fr")
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if got != "Bonjour" {
		t.Errorf("Translate() = %q, want Bonjour", got)
	}
}

func TestTranslateServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid api key"})
	}))
	defer srv.Close()

	c := NewClient(Options{Endpoint: srv.URL})
	_, err := c.Translate(context.Background(), "Hello", "en", "fr")
	if err == nil {
		t.Fatal("Translate() should surface service errors")
	}
	if !strings.Contains(err.Error(), "invalid api key") {
		t.Errorf("error = %v, want service message included", err)
	}
}

func TestTranslateNoEndpoint(t *testing.T) {
	c := NewClient(Options{})
	if _, err := c.Translate(context.Background(), "x", "en", "fr"); err == nil {
		t.Fatal("Translate() without endpoint should fail")
	}
}

func TestLanguage(t *testing.T) {
	tests := []struct{ in, want string }{
		{"en", "en"},
		{"en-US", "en"},
		{"zh_Hans", "zh"},
	}
	for _, tt := range tests {
		if got := language(tt.in); got != tt.want {
			t.Errorf("language(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
