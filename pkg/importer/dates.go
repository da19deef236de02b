package importer

import "strings"

// Shared date grammar for experience and project ranges: a month name
// (optionally abbreviated) plus a four-digit year, optionally followed by a
// range separator and either another month-year or a present/current keyword.
const (
	monthPattern    = `(?i:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?`
	datePattern     = monthPattern + `\s+\d{4}`
	presentPattern  = `(?i:present|current)`
	rangeSepPattern = `\s*(?:[-–—]|to|through)\s*`
)

// isPresentToken reports whether a matched range end is a present/current
// keyword, in any case.
func isPresentToken(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "present", "current":
		return true
	}
	return false
}
