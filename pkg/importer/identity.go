package importer

import (
	"regexp"
	"strings"
)

// Identity and contact heuristics. Names are unlabeled in most resumes, so
// position at the very start of the corpus is the primary signal; an explicit
// "Name:" label is the fallback. Contact fields are first-match-wins.
var (
	// Name words stay on one line; a line break ends the sequence.
	reNameAtStart   = regexp.MustCompile(`^\s*([A-Z][a-zA-Z]+(?:[ \t]+[A-Z][a-zA-Z]+)+)`)
	reNameLabel     = regexp.MustCompile(`(?i)\bname\s*:`)
	reEmail         = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	rePhone         = regexp.MustCompile(`(?:\+?\d{1,3}[-. ]?)?\(?\d{3}\)?[-. ]?\d{3}[-. ]?\d{4}`)
	reLocationLabel = regexp.MustCompile(`(?i)\b(?:address|location|city)\s*:\s*`)
	reLocationStop  = regexp.MustCompile(`\n|,{2,}| {2,}`)
)

func extractName(corpus string) string {
	if m := reNameAtStart.FindStringSubmatch(corpus); m != nil {
		return m[1]
	}
	if loc := reNameLabel.FindStringIndex(corpus); loc != nil {
		if m := reNameAtStart.FindStringSubmatch(corpus[loc[1]:]); m != nil {
			return m[1]
		}
	}
	return ""
}

func extractEmail(corpus string) string {
	return reEmail.FindString(corpus)
}

func extractPhone(corpus string) string {
	return strings.TrimSpace(rePhone.FindString(corpus))
}

// extractLocation only fires on an explicit label; there is no positional
// fallback like the name heuristic has. The captured text runs to the next
// newline, comma run, double space, or end of corpus.
func extractLocation(corpus string) string {
	loc := reLocationLabel.FindStringIndex(corpus)
	if loc == nil {
		return ""
	}
	rest := corpus[loc[1]:]
	if stop := reLocationStop.FindStringIndex(rest); stop != nil {
		rest = rest[:stop[0]]
	}
	return strings.Trim(rest, " \t,")
}
