// Package appcontext answers "what is the user looking at right now".
//
// A Provider is a best-effort capability: every query may fail when the
// target application is not running, the platform has no automation hooks,
// or the user denied permission. Failures are reported as ErrUnavailable and
// callers substitute unknown fields; nothing here is fatal.
//
// Build constraints select the implementation:
//
//	provider_darwin.go — AppleScript via osascript
//	provider_stub.go   — everything else (always unavailable)
package appcontext

import (
	"errors"

	"github.com/Larksa/process-capture-studio/internal/event"
)

// ErrUnavailable means the platform could not answer the query right now.
// It covers both "no automation support on this OS" and transient failures
// such as the target application not running.
var ErrUnavailable = errors.New("appcontext: unavailable")

// Unknown is the placeholder for fields a context query could not fill.
const Unknown = "Unknown"

// Window describes the frontmost window.
type Window struct {
	Application string
	Title       string
}

// Provider is the capability surface the capture core consumes.
type Provider interface {
	// ActiveWindow returns the frontmost application and window title.
	ActiveWindow() (Window, error)

	// SpreadsheetSelection returns the live selection of the running
	// spreadsheet application.
	SpreadsheetSelection() (*event.SheetSelection, error)

	// DocumentPosition returns the cursor position in the active
	// word-processor document, plus the document name and path when known.
	DocumentPosition() (*event.DocPosition, string, string, error)

	// SlidePosition returns the current slide of the active presentation,
	// plus the presentation name when known.
	SlidePosition() (*event.SlidePosition, string, error)
}

// New returns the Provider for the current platform.
func New() Provider { return newPlatform() }
