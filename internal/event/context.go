package event

import (
	"strings"
	"time"
)

// ContentType classifies what kind of data a clipboard capture holds.
type ContentType string

const (
	ContentText      ContentType = "text"
	ContentNumber    ContentType = "number"
	ContentDate      ContentType = "date"
	ContentEmail     ContentType = "email"
	ContentPhone     ContentType = "phone"
	ContentURL       ContentType = "url"
	ContentTabular   ContentType = "tabular"
	ContentMultiline ContentType = "multiline"
)

// AppType classifies the family of an application.
type AppType string

const (
	AppSpreadsheet  AppType = "spreadsheet"
	AppDocument     AppType = "document"
	AppPresentation AppType = "presentation"
	AppWeb          AppType = "web_application"
	AppCodeEditor   AppType = "code_editor"
	AppUnknown      AppType = "unknown"
)

// Transformation is the inferred semantic mapping for a cross-app paste.
type Transformation string

const (
	TransformTableToText Transformation = "table_to_text"
	TransformDataToSlide Transformation = "data_to_slide"
	TransformDataToForm  Transformation = "data_to_form"
	TransformTextToCells Transformation = "text_to_cells"
	TransformTextToSlide Transformation = "text_to_slide"
	TransformTextToForm  Transformation = "text_to_form"
	TransformWebToData   Transformation = "web_to_data"
	TransformWebToText   Transformation = "web_to_text"
	TransformDirectPaste Transformation = "direct_paste"
)

// SheetSelection locates a spreadsheet range.
type SheetSelection struct {
	Sheet   string `json:"sheet"`
	Address string `json:"address"`
	// Workbook is the workbook file name, Path its full path if known.
	Workbook string `json:"workbook,omitempty"`
	Path     string `json:"path,omitempty"`
}

// DocPosition locates a cursor inside a word-processor document.
// Paragraph is used on macOS, Line on Windows; only one is set.
type DocPosition struct {
	Page      int `json:"page"`
	Paragraph int `json:"paragraph,omitempty"`
	Line      int `json:"line,omitempty"`
}

// SlidePosition locates the current slide of a presentation.
type SlidePosition struct {
	Slide int `json:"slide"`
}

// WebLocation describes a browser destination at page granularity.
// Exact form fields are unavailable without a browser extension.
type WebLocation struct {
	PageTitle string `json:"page_title,omitempty"`
	Domain    string `json:"domain,omitempty"`
	WebApp    string `json:"web_app,omitempty"`
}

// Context is a point-in-time description of an application the user is
// copying from or pasting into. Exactly one of the location fields is set,
// matching Type; all of them may be nil when the platform query failed.
type Context struct {
	Application string  `json:"application"`
	WindowTitle string  `json:"window_title,omitempty"`
	Document    string  `json:"document,omitempty"`
	Type        AppType `json:"app_type"`
	Path        string  `json:"path,omitempty"`

	Sheet *SheetSelection `json:"sheet_location,omitempty"`
	Doc   *DocPosition    `json:"doc_location,omitempty"`
	Slide *SlidePosition  `json:"slide_location,omitempty"`
	Web   *WebLocation    `json:"web_location,omitempty"`

	// CapturedAt is set on generic fallback contexts only.
	CapturedAt time.Time `json:"captured_at,omitzero"`
}

// InferAppType maps an application name to its family. Substring match,
// case-insensitive; unrecognized names are AppUnknown.
func InferAppType(appName string) AppType {
	l := strings.ToLower(appName)
	switch {
	case strings.Contains(l, "excel") || strings.Contains(l, "sheets"):
		return AppSpreadsheet
	case strings.Contains(l, "word") || strings.Contains(l, "docs"):
		return AppDocument
	case strings.Contains(l, "powerpoint") || strings.Contains(l, "slides"):
		return AppPresentation
	case strings.Contains(l, "chrome") || strings.Contains(l, "safari") ||
		strings.Contains(l, "firefox") || strings.Contains(l, "edge"):
		return AppWeb
	case strings.Contains(l, "code") || strings.Contains(l, "sublime") || strings.Contains(l, "atom"):
		return AppCodeEditor
	default:
		return AppUnknown
	}
}
