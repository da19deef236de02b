package importer

import (
	"regexp"
	"sort"
	"strings"
)

// Section heading vocabularies. A window is the text between the first
// occurrence of any start heading and the first occurrence of any end heading
// after it (or the end of the corpus). Extractors that find no window stay
// empty; the heading gates the whole extractor.
var (
	skillsHeadings    = []string{"SKILLS", "TECHNICAL SKILLS", "CORE COMPETENCIES", "TECHNOLOGIES", "TOOLS", "LANGUAGES"}
	skillsTerminators = []string{"EXPERIENCE", "EDUCATION", "PROJECTS", "WORK", "EMPLOYMENT", "CERTIFICATIONS", "ACHIEVEMENTS"}

	experienceHeadings    = []string{"EXPERIENCE", "WORK EXPERIENCE", "EMPLOYMENT", "PROFESSIONAL EXPERIENCE"}
	experienceTerminators = []string{"EDUCATION", "PROJECTS", "SKILLS", "CERTIFICATIONS", "ACHIEVEMENTS"}

	educationHeadings    = []string{"EDUCATION", "ACADEMIC BACKGROUND", "QUALIFICATIONS"}
	educationTerminators = []string{"EXPERIENCE", "WORK", "PROFESSIONAL EXPERIENCE", "PROJECTS", "SKILLS"}

	projectHeadings    = []string{"PROJECTS", "PERSONAL PROJECTS", "PROFESSIONAL PROJECTS"}
	projectTerminators = []string{"EDUCATION", "EXPERIENCE", "SKILLS", "CERTIFICATIONS", "ACHIEVEMENTS"}
)

// headingPattern compiles a case-insensitive whole-word alternation for a
// heading set. Longer headings come first so "WORK EXPERIENCE" wins over
// "EXPERIENCE" at the same position.
func headingPattern(headings []string) *regexp.Regexp {
	sorted := make([]string, len(headings))
	copy(sorted, headings)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	for i, h := range sorted {
		sorted[i] = regexp.QuoteMeta(h)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(sorted, "|") + `)\b`)
}

var (
	reSkillsStart     = headingPattern(skillsHeadings)
	reSkillsEnd       = headingPattern(skillsTerminators)
	reExperienceStart = headingPattern(experienceHeadings)
	reExperienceEnd   = headingPattern(experienceTerminators)
	reEducationStart  = headingPattern(educationHeadings)
	reEducationEnd    = headingPattern(educationTerminators)
	reProjectStart    = headingPattern(projectHeadings)
	reProjectEnd      = headingPattern(projectTerminators)
)

// sectionWindow isolates the substring between the first start heading and
// the first end heading after it. ok is false when no start heading exists.
func sectionWindow(corpus string, start, end *regexp.Regexp) (window string, ok bool) {
	loc := start.FindStringIndex(corpus)
	if loc == nil {
		return "", false
	}
	rest := corpus[loc[1]:]
	if stop := end.FindStringIndex(rest); stop != nil {
		return rest[:stop[0]], true
	}
	return rest, true
}
