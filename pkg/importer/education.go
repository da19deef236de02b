package importer

import "regexp"

const degreeWords = `(?:Bachelor(?:'s)?|Master(?:'s)?|Doctor(?:ate)?|Associate(?:'s)?|Ph\.?D\.?|MBA|B\.?Sc?\.?|M\.?Sc?\.?|B\.?A\.?|M\.?A\.?|B\.?Eng\.?|M\.?Eng\.?)`

var (
	// Primary shape: "University of <Name>" style institutions with a full
	// month-year graduation date.
	reEducationPrimary = regexp.MustCompile(
		`((?:University|College|Institute|School)\s+of(?:[,\s]+[A-Z][A-Za-z&.']*)+?)` +
			`[\s,|–—-]+` +
			`(` + degreeWords + `(?:\s+(?:of|in|and|[A-Z][A-Za-z&.']*))*?)` +
			`[\s,|–—-]+` +
			`(` + datePattern + `)`)

	// Fallback shape: "<Name> University" style institutions with a bare
	// year or year range instead of a month-year date.
	reEducationFallback = regexp.MustCompile(
		`([A-Z][A-Za-z&.']*(?:\s+[A-Z][A-Za-z&.']*)*?\s+(?:University|College|Institute|School))` +
			`[\s,|–—-]+` +
			`(` + degreeWords + `(?:\s+(?:of|in|and|[A-Z][A-Za-z&.']*))*?)` +
			`[\s,|–—-]+` +
			`(\d{4}(?:\s*[-–—]\s*\d{4})?)`)
)

// extractEducation applies the primary institution pattern and, only when it
// yields nothing, the looser fallback. GPA is never extracted.
func extractEducation(corpus string) []Education {
	window, ok := sectionWindow(corpus, reEducationStart, reEducationEnd)
	if !ok {
		return []Education{}
	}

	out := []Education{}
	matches := reEducationPrimary.FindAllStringSubmatch(window, -1)
	if len(matches) == 0 {
		matches = reEducationFallback.FindAllStringSubmatch(window, -1)
	}
	for _, m := range matches {
		out = append(out, Education{
			School:         m[1],
			Degree:         m[2],
			GraduationDate: m[3],
		})
	}
	return out
}
