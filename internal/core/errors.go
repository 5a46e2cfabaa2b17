package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// MalformedBaselineError reports a structurally invalid built-in
// registry.  It indicates a packaging bug, not a user mistake.
type MalformedBaselineError struct {
	PlatformID string
	Reason     string
	Cause      error
	Err        error
}

func NewMalformedBaselineError(platformID string, reason string, cause error) *MalformedBaselineError {
	e := &MalformedBaselineError{PlatformID: platformID, Reason: reason, Cause: cause}
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(e.message())
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	e.Err = builder
	return e
}

func (e *MalformedBaselineError) message() string {
	if e.PlatformID == "" {
		return "malformed baseline registry: " + e.Reason
	}
	return fmt.Sprintf("malformed baseline registry: platform %s: %s", e.PlatformID, e.Reason)
}

func (e *MalformedBaselineError) Error() string { return withCause(e.message(), e.Cause) }

func (e *MalformedBaselineError) Unwrap() error { return e.Err }

// ExtensionLoadError reports a user extension file that exists but could
// not be read, parsed or validated.  The extension is never partially
// applied when this error is returned.
type ExtensionLoadError struct {
	Path   string
	Reason string
	Cause  error
	Err    error
}

func NewExtensionLoadError(path string, reason string, cause error) *ExtensionLoadError {
	e := &ExtensionLoadError{Path: path, Reason: reason, Cause: cause}
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(e.message())
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	e.Err = builder
	return e
}

// NewMissingExtensionError is used when an explicitly requested
// extension file does not exist.
func NewMissingExtensionError(path string, cause error) *ExtensionLoadError {
	e := &ExtensionLoadError{Path: path, Reason: "platform file not found", Cause: cause}
	builder := errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(e.message())
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	e.Err = builder
	return e
}

func (e *ExtensionLoadError) message() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Path)
}

func (e *ExtensionLoadError) Error() string { return withCause(e.message(), e.Cause) }

func (e *ExtensionLoadError) Unwrap() error { return e.Err }

// UnknownPlatformError reports a platform id missing from the merged
// registry.
type UnknownPlatformError struct {
	PlatformID  string
	Suggestions []string
	Err         error
}

func NewUnknownPlatformError(platformID string, suggestions []string) *UnknownPlatformError {
	e := &UnknownPlatformError{PlatformID: platformID, Suggestions: suggestions}
	e.Err = errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(e.Error())
	return e
}

func (e *UnknownPlatformError) Error() string {
	msg := "unknown platform: " + e.PlatformID
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg + "; run 'sailfish-platforms list' to see known platforms"
}

func (e *UnknownPlatformError) Unwrap() error { return e.Err }

// InvalidDefineError identifies a malformed define directive and its
// zero-based position in the defines list.
type InvalidDefineError struct {
	PlatformID string
	Directive  string
	Position   int
	Reason     string
	Err        error
}

func NewInvalidDefineError(directive string, position int, reason string) *InvalidDefineError {
	e := &InvalidDefineError{Directive: directive, Position: position, Reason: reason}
	e.Err = e.builder()
	return e
}

// WithPlatform returns a copy that names the platform whose defines
// failed to compose.
func (e *InvalidDefineError) WithPlatform(platformID string) *InvalidDefineError {
	out := *e
	out.PlatformID = platformID
	out.Err = out.builder()
	return &out
}

func (e *InvalidDefineError) builder() error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(e.Error())
}

func (e *InvalidDefineError) Error() string {
	msg := fmt.Sprintf("invalid define %q at position %d: %s", e.Directive, e.Position, e.Reason)
	if e.PlatformID != "" {
		return fmt.Sprintf("platform %s: %s", e.PlatformID, msg)
	}
	return msg
}

func (e *InvalidDefineError) Unwrap() error { return e.Err }

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s: %v", msg, cause)
}
