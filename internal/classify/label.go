package classify

import (
	"fmt"
	"strings"

	"github.com/Larksa/process-capture-studio/internal/event"
)

// transformations maps (source type, destination type) to the inferred kind.
// Pairs not listed are direct_paste.
var transformations = map[[2]event.AppType]event.Transformation{
	{event.AppSpreadsheet, event.AppDocument}:     event.TransformTableToText,
	{event.AppSpreadsheet, event.AppPresentation}: event.TransformDataToSlide,
	{event.AppSpreadsheet, event.AppWeb}:          event.TransformDataToForm,
	{event.AppDocument, event.AppSpreadsheet}:     event.TransformTextToCells,
	{event.AppDocument, event.AppPresentation}:    event.TransformTextToSlide,
	{event.AppDocument, event.AppWeb}:             event.TransformTextToForm,
	{event.AppWeb, event.AppSpreadsheet}:          event.TransformWebToData,
	{event.AppWeb, event.AppDocument}:             event.TransformWebToText,
}

// Transformation returns the inferred transformation kind for a paste from
// src to dst.
func Transformation(src, dst event.AppType) event.Transformation {
	if t, ok := transformations[[2]event.AppType{src, dst}]; ok {
		return t
	}
	return event.TransformDirectPaste
}

// Label renders a context for the human-readable data-flow description.
func Label(ctx event.Context) string {
	base := ctx.Document
	if base == "" {
		base = ctx.Application
	}
	switch {
	case ctx.Type == event.AppSpreadsheet && ctx.Sheet != nil:
		return fmt.Sprintf("%s!%s!%s", base, ctx.Sheet.Sheet, ctx.Sheet.Address)
	case ctx.Type == event.AppDocument && ctx.Doc != nil:
		pos := ctx.Doc.Paragraph
		if pos == 0 {
			pos = ctx.Doc.Line
		}
		return fmt.Sprintf("%s (Page %d, Para %d)", base, ctx.Doc.Page, pos)
	case ctx.Type == event.AppPresentation && ctx.Slide != nil:
		return fmt.Sprintf("%s (Slide %d)", base, ctx.Slide.Slide)
	case ctx.Type == event.AppWeb:
		name := ""
		page := "Unknown page"
		if ctx.Web != nil {
			name = ctx.Web.WebApp
			if name == "" {
				name = ctx.Web.Domain
			}
			if ctx.Web.PageTitle != "" {
				page = ctx.Web.PageTitle
			}
		}
		if name == "" {
			name = ctx.Application
		}
		return fmt.Sprintf("%s: %s", name, page)
	default:
		return base
	}
}

// documentSuffixes lists the generic vendor suffixes tried after the
// app-name-derived ones.
var documentSuffixes = []string{" - Microsoft", " - Google", " - Adobe"}

// ExtractDocumentName strips a known application suffix from a window title:
// the app name preceded by a dash, em-dash or en-dash, then the generic
// vendor suffixes. Titles with no recognized suffix pass through unchanged;
// an empty title becomes "Untitled".
func ExtractDocumentName(windowTitle, appName string) string {
	if windowTitle == "" {
		return "Untitled"
	}
	suffixes := []string{
		" - " + appName,
		" — " + appName,
		" – " + appName,
	}
	suffixes = append(suffixes, documentSuffixes...)
	for _, suffix := range suffixes {
		if i := strings.Index(windowTitle, suffix); i >= 0 {
			return windowTitle[:i]
		}
	}
	return windowTitle
}
