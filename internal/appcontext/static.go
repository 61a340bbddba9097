package appcontext

import "github.com/Larksa/process-capture-studio/internal/event"

// Static is a Provider with canned answers. Nil fields report ErrUnavailable.
// Used by tests and by the generic fallback path.
type Static struct {
	Window    Window
	WindowErr error
	Selection *event.SheetSelection
	Position  *event.DocPosition
	DocName   string
	DocPath   string
	Slide     *event.SlidePosition
	PresName  string
}

func (s *Static) ActiveWindow() (Window, error) {
	if s.WindowErr != nil {
		return Window{Application: Unknown, Title: Unknown}, s.WindowErr
	}
	return s.Window, nil
}

func (s *Static) SpreadsheetSelection() (*event.SheetSelection, error) {
	if s.Selection == nil {
		return nil, ErrUnavailable
	}
	return s.Selection, nil
}

func (s *Static) DocumentPosition() (*event.DocPosition, string, string, error) {
	if s.Position == nil {
		return nil, "", "", ErrUnavailable
	}
	return s.Position, s.DocName, s.DocPath, nil
}

func (s *Static) SlidePosition() (*event.SlidePosition, string, error) {
	if s.Slide == nil {
		return nil, "", ErrUnavailable
	}
	return s.Slide, s.PresName, nil
}
