// Package translate calls an external machine translation service.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"lokey/internal/lokerr"
)

// Service translates a single text between two locales.
type Service interface {
	Translate(ctx context.Context, text, sourceLocale, targetLocale string) (string, error)
}

// Client talks to a LibreTranslate-compatible HTTP endpoint.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

// Options configures the HTTP client.
type Options struct {
	// Endpoint is the translate URL, e.g. "https://libretranslate.example/translate".
	Endpoint string
	// APIKeyEnv names the environment variable holding the API key; empty
	// means no key is sent.
	APIKeyEnv string
	// Timeout bounds a single call.
	Timeout time.Duration
}

// NewClient creates an HTTP translation client.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	apiKey := ""
	if opts.APIKeyEnv != "" {
		apiKey = os.Getenv(opts.APIKeyEnv)
	}
	return &Client{
		endpoint: opts.Endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: timeout},
	}
}

type request struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type response struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error,omitempty"`
}

// Translate sends one text to the service. Locale region suffixes are
// stripped to the language code ("en-US" -> "en").
func (c *Client) Translate(ctx context.Context, text, sourceLocale, targetLocale string) (string, error) {
	if c.endpoint == "" {
		return "", lokerr.Newf(lokerr.TranslateFailed, "no translator endpoint configured")
	}

	body, err := json.Marshal(request{
		Q:      text,
		Source: language(sourceLocale),
		Target: language(targetLocale),
		Format: "text",
		APIKey: c.apiKey,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", lokerr.New(lokerr.TranslateFailed, "translation request failed", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", lokerr.New(lokerr.TranslateFailed, "reading translation response", err)
	}

	var out response
	if err := json.Unmarshal(data, &out); err != nil {
		return "", lokerr.New(lokerr.TranslateFailed,
			fmt.Sprintf("unexpected response (status %d)", resp.StatusCode), err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := out.Error
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return "", lokerr.Newf(lokerr.TranslateFailed, "translation service: %s", msg)
	}
	return out.TranslatedText, nil
}

// language reduces a locale id to its language code.
func language(locale string) string {
	for i := 0; i < len(locale); i++ {
		if locale[i] == '-' || locale[i] == '_' {
			return locale[:i]
		}
	}
	return locale
}
