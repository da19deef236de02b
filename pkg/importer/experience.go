package importer

import "regexp"

// The position phrase is anchored on a known role keyword, optionally led by
// seniority/discipline words. That anchor is what splits an unpunctuated
// "Acme Corp Senior Engineer" into company and position; layouts that do not
// follow the pattern mis-segment, which is accepted best-effort behavior.
const (
	titleWords = `(?:Engineer|Developer|Manager|Analyst|Designer|Consultant|Architect|Scientist|Specialist|Director|Administrator|Coordinator|Intern|Officer|Programmer|Researcher|Lead|Executive|Technician|Representative|Accountant|Writer|Editor|Instructor)`
	leadWords  = `(?:Senior|Junior|Lead|Staff|Principal|Associate|Chief|Head|Assistant|Software|Data|Product|Project|Program|Frontend|Front[- ]End|Backend|Back[- ]End|Full[- ]Stack|Fullstack|Web|Mobile|QA|DevOps|Cloud|Machine Learning|Security|Systems|Network|Site Reliability|Business|Technical|Marketing|Sales|Operations|Financial|Research|Graphic|UX|UI|Content|Customer)`
)

var reExperienceRecord = regexp.MustCompile(
	`([A-Z][A-Za-z0-9&.'()]*(?:\s+[A-Z][A-Za-z0-9&.'()]*)*?)` + // company
		`[\s,|–—-]+` +
		`((?:` + leadWords + `\s+)*` + titleWords + `)` + // position
		`[\s,|–—-]+` +
		`(` + datePattern + `)` + // start date
		`(?:` + rangeSepPattern + `(` + datePattern + `|` + presentPattern + `))?`) // optional end

const experiencePlaceholder = "Extracted from imported resume. Please add details."

// extractExperiences matches repeated company/position/date records inside
// the experience window. Duty text is never extracted; descriptions carry a
// fixed placeholder for the user to replace.
func extractExperiences(corpus string) []Experience {
	window, ok := sectionWindow(corpus, reExperienceStart, reExperienceEnd)
	if !ok {
		return []Experience{}
	}

	out := []Experience{}
	for _, m := range reExperienceRecord.FindAllStringSubmatch(window, -1) {
		start := m[3]
		if start == "" {
			start = "Unknown Start Date"
		}
		end := "Current"
		switch {
		case isPresentToken(m[4]):
			end = "Present"
		case m[4] != "":
			end = m[4]
		}
		out = append(out, Experience{
			Company:     m[1],
			Position:    m[2],
			StartDate:   start,
			EndDate:     end,
			Description: experiencePlaceholder,
		})
	}
	return out
}
