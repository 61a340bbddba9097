// Package classify turns a raw (application name, window title) pair into a
// structured destination context. Dispatch is by application family, in a
// fixed priority order; families with automation support take a live
// position reading through the appcontext.Provider.
package classify

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Larksa/process-capture-studio/internal/appcontext"
	"github.com/Larksa/process-capture-studio/internal/event"
)

// family binds a recognized application-name substring to its handler.
// Order matters: the first matching key wins.
type family struct {
	key     string
	handler func(c *Classifier, app, title string) event.Context
}

var families = []family{
	{"excel", (*Classifier).spreadsheet},
	{"word", (*Classifier).document},
	{"powerpoint", (*Classifier).presentation},
	{"chrome", (*Classifier).browser},
	{"safari", (*Classifier).browser},
	{"firefox", (*Classifier).browser},
	{"edge", (*Classifier).browser},
}

// Classifier resolves paste destinations. Safe for concurrent use as long
// as the Provider is.
type Classifier struct {
	provider appcontext.Provider
	clock    func() time.Time
}

// New returns a Classifier backed by provider.
func New(provider appcontext.Provider) *Classifier {
	return &Classifier{provider: provider, clock: time.Now}
}

// SetClock replaces the time source. Test hook.
func (c *Classifier) SetClock(clock func() time.Time) { c.clock = clock }

// Classify produces the destination context for a paste into the named
// application. It never fails: platform queries that error degrade to a
// context with only the name-derived fields set.
func (c *Classifier) Classify(appName, windowTitle string) event.Context {
	lower := strings.ToLower(appName)
	for _, f := range families {
		if strings.Contains(lower, f.key) {
			return f.handler(c, appName, windowTitle)
		}
	}
	return c.generic(appName, windowTitle)
}

func (c *Classifier) spreadsheet(app, title string) event.Context {
	ctx := event.Context{
		Application: app,
		WindowTitle: title,
		Type:        event.AppSpreadsheet,
	}
	sel, err := c.provider.SpreadsheetSelection()
	if err != nil {
		if !errors.Is(err, appcontext.ErrUnavailable) {
			slog.Debug("spreadsheet selection query failed", "err", err)
		}
		ctx.Document = ExtractDocumentName(title, "Excel")
		return ctx
	}
	ctx.Document = sel.Workbook
	ctx.Path = sel.Path
	ctx.Sheet = sel
	return ctx
}

func (c *Classifier) document(app, title string) event.Context {
	ctx := event.Context{
		Application: app,
		WindowTitle: title,
		Type:        event.AppDocument,
		Document:    ExtractDocumentName(title, "Word"),
	}
	pos, name, path, err := c.provider.DocumentPosition()
	if err != nil {
		return ctx
	}
	if name != "" {
		ctx.Document = name
	}
	ctx.Path = path
	ctx.Doc = pos
	return ctx
}

func (c *Classifier) presentation(app, title string) event.Context {
	ctx := event.Context{
		Application: app,
		WindowTitle: title,
		Type:        event.AppPresentation,
		Document:    ExtractDocumentName(title, "PowerPoint"),
	}
	slide, name, err := c.provider.SlidePosition()
	if err != nil {
		return ctx
	}
	if name != "" {
		ctx.Document = name
	}
	ctx.Slide = slide
	return ctx
}

// webApps maps window-title signature substrings to friendly web-app names.
var webApps = []struct{ key, name string }{
	{"salesforce", "Salesforce"},
	{"activecampaign", "ActiveCampaign"},
	{"wordpress", "WordPress"},
	{"gmail", "Gmail"},
	{"docs.google", "Google Docs"},
	{"sheets.google", "Google Sheets"},
	{"notion", "Notion"},
	{"airtable", "Airtable"},
	{"hubspot", "HubSpot"},
	{"slack", "Slack"},
	{"trello", "Trello"},
	{"jira", "Jira"},
}

// browser parses the window title rather than querying the provider: exact
// form-field destinations need a browser extension we don't have, so page
// granularity is the best available.
func (c *Classifier) browser(app, title string) event.Context {
	ctx := event.Context{
		Application: app,
		WindowTitle: title,
		Type:        event.AppWeb,
	}

	web := &event.WebLocation{}
	parts := strings.Split(title, " - ")
	if title != "" && len(parts) >= 2 {
		web.PageTitle = parts[0]
		if len(parts) > 2 {
			web.Domain = parts[len(parts)-2]
		} else {
			web.Domain = parts[1]
		}
		lower := strings.ToLower(title)
		for _, wa := range webApps {
			if strings.Contains(lower, wa.key) {
				web.WebApp = wa.name
				break
			}
		}
	}
	ctx.Web = web
	ctx.Document = web.PageTitle
	return ctx
}

// generic is the fallback for applications no family matched.
func (c *Classifier) generic(app, title string) event.Context {
	return event.Context{
		Application: app,
		WindowTitle: title,
		Type:        event.AppUnknown,
		Document:    ExtractDocumentName(title, app),
		CapturedAt:  c.clock(),
	}
}
