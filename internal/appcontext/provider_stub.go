//go:build !darwin

package appcontext

import "github.com/Larksa/process-capture-studio/internal/event"

// stubProvider is used on platforms without automation support. Every query
// reports ErrUnavailable so callers fall back to unknown fields.
type stubProvider struct{}

func newPlatform() Provider { return stubProvider{} }

func (stubProvider) ActiveWindow() (Window, error) {
	return Window{Application: Unknown, Title: Unknown}, ErrUnavailable
}

func (stubProvider) SpreadsheetSelection() (*event.SheetSelection, error) {
	return nil, ErrUnavailable
}

func (stubProvider) DocumentPosition() (*event.DocPosition, string, string, error) {
	return nil, "", "", ErrUnavailable
}

func (stubProvider) SlidePosition() (*event.SlidePosition, string, error) {
	return nil, "", ErrUnavailable
}
