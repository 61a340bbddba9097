package ledger

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Larksa/process-capture-studio/internal/event"
)

// DetectType classifies clipboard content. First match wins; the order is
// load-bearing: numbers are tried before the date token shape so that a
// fully numeric string never lands on date, and tabs are checked before
// newlines so spreadsheet ranges classify as tabular rather than multiline.
func DetectType(content string) event.ContentType {
	switch {
	case isEmail(content):
		return event.ContentEmail
	case isPhone(content):
		return event.ContentPhone
	case isURL(content):
		return event.ContentURL
	case isNumber(content):
		return event.ContentNumber
	case isDate(content):
		return event.ContentDate
	case strings.Contains(content, "\t"):
		return event.ContentTabular
	case strings.Contains(content, "\n"):
		return event.ContentMultiline
	default:
		return event.ContentText
	}
}

// isEmail reports whether content contains an @ with a dot somewhere after
// the last one.
func isEmail(s string) bool {
	i := strings.LastIndex(s, "@")
	if i < 0 {
		return false
	}
	return strings.Contains(s[i+1:], ".")
}

// isPhone looks for a contiguous run of 7 to 15 digits.
func isPhone(s string) bool {
	run := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			run++
			continue
		}
		if run >= 7 && run <= 15 {
			return true
		}
		run = 0
	}
	return run >= 7 && run <= 15
}

func isURL(s string) bool {
	l := strings.ToLower(s)
	return strings.HasPrefix(l, "http://") ||
		strings.HasPrefix(l, "https://") ||
		strings.HasPrefix(l, "www.")
}

// isNumber strips thousands separators and currency symbols, then tries a
// whole-string float parse.
func isNumber(s string) bool {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	for _, sym := range []string{"$", "€", "£", "¥"} {
		cleaned = strings.ReplaceAll(cleaned, sym, "")
	}
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return false
	}
	_, err := strconv.ParseFloat(cleaned, 64)
	return err == nil
}

// isDate matches the D-D-D / D/D/D token shape: three numeric groups in a
// string of at most 20 characters. Deliberately not a calendar parse.
func isDate(s string) bool {
	if len(s) > 20 {
		return false
	}
	if !strings.ContainsAny(s, "/-") {
		return false
	}
	parts := strings.Split(strings.ReplaceAll(s, "/", "-"), "-")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return false
		}
		for _, r := range p {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}

// Preview truncates content for display. Multiline content previews as its
// first line. Truncation counts runes, never splitting a multi-byte
// character.
func Preview(content string, max int) string {
	if utf8.RuneCountInString(content) <= max {
		return content
	}
	if i := strings.Index(content, "\n"); i >= 0 {
		first := content[:i]
		if utf8.RuneCountInString(first) <= max {
			return first + "..."
		}
		return truncate(first, max) + "..."
	}
	return truncate(content, max) + "..."
}

// truncate returns the first max runes of s.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}
