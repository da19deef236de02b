package importer

import (
	"regexp"
	"strings"
)

var reSkillSplit = regexp.MustCompile(`[,\n•·▪\-–]`)

// extractSkills is two-stage: free-text tokens from the skills window catch
// terms outside the vocabulary, and vocabulary matching over the whole corpus
// recovers skills mentioned in prose. The union is deduplicated exactly as
// extracted. No skills heading means no skills at all; the heading gates both
// stages, even when vocabulary terms appear elsewhere in the text.
func extractSkills(corpus string) []string {
	window, ok := sectionWindow(corpus, reSkillsStart, reSkillsEnd)
	if !ok {
		return []string{}
	}

	seen := make(map[string]struct{})
	out := []string{}
	add := func(s string) {
		if _, dup := seen[s]; dup {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	for _, tok := range reSkillSplit.Split(window, -1) {
		tok = strings.TrimSpace(tok)
		if len([]rune(tok)) > 1 {
			add(tok)
		}
	}
	for _, term := range matchVocabulary(corpus) {
		add(term)
	}
	return out
}
