package importer

import (
	"regexp"
	"strings"
)

var (
	reProjectLine = regexp.MustCompile(
		`^\s*([A-Z][A-Za-z0-9&.'()]*(?:\s+[A-Z][A-Za-z0-9&.'()]*)*)\s*[-–—:|]\s*(.+)$`)
	reProjectDates = regexp.MustCompile(
		`(` + datePattern + `)(?:` + rangeSepPattern + `(` + datePattern + `|` + presentPattern + `))?\s*$`)
)

// extractProjects reads one record per line of the projects window: a
// capitalized title, a separator, free-text description, and an optional
// trailing date range. Technologies are never populated here; technology
// detection belongs to the skills extractor.
func extractProjects(corpus string) []Project {
	window, ok := sectionWindow(corpus, reProjectStart, reProjectEnd)
	if !ok {
		return []Project{}
	}

	out := []Project{}
	for _, line := range strings.Split(window, "\n") {
		m := reProjectLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		p := Project{
			Title:        m[1],
			Description:  strings.TrimSpace(m[2]),
			Technologies: []string{},
		}
		if d := reProjectDates.FindStringSubmatchIndex(p.Description); d != nil {
			dm := reProjectDates.FindStringSubmatch(p.Description)
			p.StartDate = dm[1]
			if isPresentToken(dm[2]) {
				p.EndDate = "Present"
			} else {
				p.EndDate = dm[2]
			}
			p.Description = strings.TrimSpace(p.Description[:d[0]])
		}
		out = append(out, p)
	}
	return out
}
