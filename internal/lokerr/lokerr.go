// Package lokerr defines stable error codes for lokey failure modes.
package lokerr

import (
	"fmt"
)

// Code represents a stable error code for all failure modes
type Code string

const (
	// KeyNotFound indicates the keypath does not exist in any locale
	KeyNotFound Code = "KEY_NOT_FOUND"
	// LocaleNotFound indicates the locale has no record for the keypath
	LocaleNotFound Code = "LOCALE_NOT_FOUND"
	// KeyCollision indicates a rename target already holds a different key
	KeyCollision Code = "KEY_COLLISION"
	// ParseFailed indicates a locale file could not be parsed
	ParseFailed Code = "PARSE_FAILED"
	// UnsupportedFormat indicates no registered parser for the file extension
	UnsupportedFormat Code = "UNSUPPORTED_FORMAT"
	// WriteFailed indicates the persistence layer failed to commit an op
	WriteFailed Code = "WRITE_FAILED"
	// TranslateFailed indicates the translation service call failed
	TranslateFailed Code = "TRANSLATE_FAILED"
	// SnapshotStale indicates the scan cache is missing or out of date
	SnapshotStale Code = "SNAPSHOT_STALE"
	// ConfigInvalid indicates the workspace configuration failed validation
	ConfigInvalid Code = "CONFIG_INVALID"
	// Internal indicates an unexpected error
	Internal Code = "INTERNAL_ERROR"
)

// Error carries a stable code alongside the message and cause.
type Error struct {
	Code    Code        `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	cause   error
}

// New creates a coded error.
func New(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// Newf creates a coded error with a formatted message.
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetails attaches structured details to the error
func (e *Error) WithDetails(details interface{}) *Error {
	e.Details = details
	return e
}

// Hints maps error codes to remediation hints shown by the CLI.
var Hints = map[Code]string{
	KeyNotFound:       "run 'lokey scan' to refresh the snapshot, then 'lokey tree' to inspect keys",
	SnapshotStale:     "run 'lokey scan' to rebuild the locale snapshot",
	KeyCollision:      "re-run with --force to overwrite the existing key",
	UnsupportedFormat: "supported locale file formats are .json, .yaml/.yml and .toml",
	TranslateFailed:   "set translator.endpoint in .lokey/config.json and export the API key named by translator.apiKeyEnv",
	ConfigInvalid:     "run 'lokey init' to regenerate .lokey/config.json",
}

// Hint returns the remediation hint for a code, or "".
func Hint(code Code) string {
	return Hints[code]
}
