//go:build darwin

package appcontext

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/Larksa/process-capture-studio/internal/event"
)

// osascript calls typically answer well under a second, but an unresponsive
// automation target can hang them indefinitely.
const scriptTimeout = 3 * time.Second

type darwinProvider struct{}

func newPlatform() Provider { return darwinProvider{} }

// runScript executes an AppleScript snippet and returns its trimmed output.
// An unresponsive automation target gets the process killed at scriptTimeout.
func runScript(script string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), scriptTimeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, "osascript", "-e", script).Output()
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%w: osascript timed out", ErrUnavailable)
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return strings.TrimSpace(string(out)), nil
}

const activeWindowScript = `
tell application "System Events"
	set frontApp to name of first application process whose frontmost is true
	set windowTitle to "Unknown"
	try
		tell process frontApp
			set windowTitle to name of front window
		end tell
	end try
	return frontApp & "|" & windowTitle
end tell`

func (darwinProvider) ActiveWindow() (Window, error) {
	out, err := runScript(activeWindowScript)
	if err != nil {
		return Window{Application: Unknown, Title: Unknown}, err
	}
	app, title, ok := strings.Cut(out, "|")
	if !ok {
		return Window{Application: out, Title: Unknown}, nil
	}
	return Window{Application: app, Title: title}, nil
}

const excelSelectionScript = `
tell application "Microsoft Excel"
	set sel to selection
	set addr to get address of sel
	set sheetName to name of active sheet
	set wbName to name of active workbook
	set wbPath to full name of active workbook
	return addr & "|" & sheetName & "|" & wbName & "|" & wbPath
end tell`

func (darwinProvider) SpreadsheetSelection() (*event.SheetSelection, error) {
	out, err := runScript(excelSelectionScript)
	if err != nil {
		return nil, err
	}
	parts := strings.Split(out, "|")
	if len(parts) < 3 {
		slog.Debug("unparseable excel selection", "raw", out)
		return nil, ErrUnavailable
	}
	sel := &event.SheetSelection{
		Address:  parts[0],
		Sheet:    parts[1],
		Workbook: parts[2],
	}
	if len(parts) > 3 {
		sel.Path = parts[3]
	}
	return sel, nil
}

const wordPositionScript = `
tell application "Microsoft Word"
	set docName to name of active document
	set docPath to path of active document
	set cursorPos to selection start of selection
	set pageNum to page number of cursorPos
	set paraNum to paragraph number of cursorPos
	return docName & "|" & docPath & "|" & pageNum & "|" & paraNum
end tell`

func (darwinProvider) DocumentPosition() (*event.DocPosition, string, string, error) {
	out, err := runScript(wordPositionScript)
	if err != nil {
		return nil, "", "", err
	}
	parts := strings.Split(out, "|")
	if len(parts) < 4 {
		return nil, "", "", ErrUnavailable
	}
	page, _ := strconv.Atoi(parts[2])
	para, _ := strconv.Atoi(parts[3])
	return &event.DocPosition{Page: page, Paragraph: para}, parts[0], parts[1], nil
}

const slideIndexScript = `
tell application "Microsoft PowerPoint"
	set presName to name of active presentation
	set slideNum to slide index of slide of view of active window
	return presName & "|" & slideNum
end tell`

func (darwinProvider) SlidePosition() (*event.SlidePosition, string, error) {
	out, err := runScript(slideIndexScript)
	if err != nil {
		return nil, "", err
	}
	name, num, ok := strings.Cut(out, "|")
	if !ok {
		return nil, "", ErrUnavailable
	}
	slide, _ := strconv.Atoi(strings.TrimSpace(num))
	return &event.SlidePosition{Slide: slide}, name, nil
}
