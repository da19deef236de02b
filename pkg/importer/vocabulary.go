package importer

import (
	"regexp"
	"sort"
	"strings"

	"github.com/resumekit/resumekit/pkg/nlp"
)

// Vocabulary is the curated technology/skill term list used by the second
// stage of the skills extractor. It is data, not logic: extend a category
// here without touching the extraction code. Matching is whole-word and
// case-insensitive; the canonical spelling below is what lands in the result.
var Vocabulary = map[string][]string{
	"languages": {
		"Python", "Java", "JavaScript", "TypeScript", "Go", "C", "C++", "C#",
		"Ruby", "PHP", "Swift", "Kotlin", "Rust", "Scala", "R", "Perl",
		"Objective-C", "Dart", "Elixir", "Haskell", "SQL", "HTML", "CSS",
	},
	"frameworks": {
		"React", "Angular", "Vue", "Svelte", "Next.js", "Node.js", "Express",
		"Django", "Flask", "FastAPI", "Spring", "Rails", "Laravel", ".NET",
		"jQuery", "Bootstrap", "Tailwind", "GraphQL", "REST", "gRPC",
		"TensorFlow", "PyTorch", "Pandas", "NumPy",
	},
	"databases": {
		"PostgreSQL", "MySQL", "MongoDB", "Redis", "SQLite", "Oracle",
		"Cassandra", "Elasticsearch", "DynamoDB", "MariaDB", "Snowflake",
	},
	"cloud": {
		"AWS", "Azure", "GCP", "Heroku", "DigitalOcean", "Lambda",
		"Kubernetes", "Docker", "Terraform", "Ansible", "CloudFormation",
	},
	"tools": {
		"Git", "GitHub", "GitLab", "Bitbucket", "Jenkins", "Jira",
		"Confluence", "Linux", "Bash", "Kafka", "RabbitMQ", "Nginx",
		"Webpack", "Figma", "Postman", "CI/CD",
	},
	"practices": {
		"Agile", "Scrum", "Kanban", "TDD", "DevOps", "Microservices",
		"Machine Learning", "Data Analysis", "Unit Testing",
	},
}

// vocabularyTerm is one precompiled matcher. Plain terms match through
// normalized whole-phrase containment; single letters and symbol-led terms
// (C, R, C++, C#, .NET) get their own boundary-safe pattern because
// normalization would collapse them into ambiguous tokens.
type vocabularyTerm struct {
	canonical  string
	normalized string
	pattern    *regexp.Regexp
}

var vocabularyTerms = compileVocabulary()

func compileVocabulary() []vocabularyTerm {
	categories := make([]string, 0, len(Vocabulary))
	for c := range Vocabulary {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var terms []vocabularyTerm
	for _, c := range categories {
		for _, t := range Vocabulary[c] {
			vt := vocabularyTerm{canonical: t}
			norm := nlp.Normalize(t)
			if len(norm) > 1 && !strings.ContainsAny(t, "+#") && !strings.HasPrefix(t, ".") {
				vt.normalized = norm
			} else {
				vt.pattern = regexp.MustCompile(
					`(?i)(?:^|[^A-Za-z0-9+#])` + regexp.QuoteMeta(t) + `(?:$|[^A-Za-z0-9+#])`)
			}
			terms = append(terms, vt)
		}
	}
	return terms
}

// matchVocabulary scans the whole corpus for known terms and returns their
// canonical spellings in stable (category, declaration) order.
func matchVocabulary(corpus string) []string {
	normalized := nlp.Normalize(corpus)
	var found []string
	for _, vt := range vocabularyTerms {
		if vt.pattern != nil {
			if vt.pattern.MatchString(corpus) {
				found = append(found, vt.canonical)
			}
			continue
		}
		if nlp.ContainsPhrase(normalized, vt.normalized) {
			found = append(found, vt.canonical)
		}
	}
	return found
}
