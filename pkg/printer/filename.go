package printer

import (
	"regexp"
	"strings"
	"time"
)

const maxTitleLen = 80

var (
	// RE2 \s is ASCII only; add \v, Unicode space separators and BOM.
	whitespaceRun  = regexp.MustCompile(`[\s\v\p{Zs}\x{FEFF}]+`)
	disallowedChar = regexp.MustCompile(`[^A-Za-z0-9._-]`)
	underscoreRun  = regexp.MustCompile(`_+`)
)

// SanitizeTitle makes s safe for a print file name: whitespace runs become
// "_", anything outside [A-Za-z0-9._-] is dropped, "_" runs collapse and the
// result is capped at 80 characters.
func SanitizeTitle(s string) string {
	s = whitespaceRun.ReplaceAllString(s, "_")
	s = disallowedChar.ReplaceAllString(s, "")
	s = underscoreRun.ReplaceAllString(s, "_")
	if len(s) > maxTitleLen {
		s = s[:maxTitleLen]
	}
	return s
}

// FileTitle builds the print document title "<name>_<HHMM>_<date>".
// Blank inputs fall back to "BILL", the current time and today's date.
func FileTitle(customerName, billTime, billDate string, now time.Time) string {
	name := strings.TrimSpace(customerName)
	if name == "" {
		name = "BILL"
	}
	namePart := SanitizeTitle(name)
	if namePart == "" {
		namePart = "BILL"
	}

	date := strings.TrimSpace(billDate)
	if date == "" {
		date = now.Format("2006-01-02")
	}
	clock := strings.TrimSpace(billTime)
	if clock == "" {
		clock = now.Format("15:04")
	}

	return namePart + "_" + SanitizeTitle(strings.Replace(clock, ":", "", 1)) + "_" + SanitizeTitle(date)
}
