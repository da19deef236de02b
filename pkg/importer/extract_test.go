package importer

import (
	"reflect"
	"sort"
	"testing"
)

func sorted(ss []string) []string {
	out := make([]string, len(ss))
	copy(out, ss)
	sort.Strings(out)
	return out
}

func TestExtract_ContactOnly(t *testing.T) {
	rec := Extract("John Smith john.smith@email.com (555) 123-4567")

	if rec.PersonalInfo.FullName != "John Smith" {
		t.Errorf("FullName = %q, want %q", rec.PersonalInfo.FullName, "John Smith")
	}
	if rec.PersonalInfo.Email != "john.smith@email.com" {
		t.Errorf("Email = %q, want %q", rec.PersonalInfo.Email, "john.smith@email.com")
	}
	if rec.PersonalInfo.Phone != "(555) 123-4567" {
		t.Errorf("Phone = %q, want %q", rec.PersonalInfo.Phone, "(555) 123-4567")
	}
	if len(rec.Skills) != 0 || len(rec.Experiences) != 0 || len(rec.Education) != 0 || len(rec.Projects) != 0 {
		t.Errorf("expected all sequence fields empty, got %+v", rec)
	}
}

func TestExtract_EmptyCorpus(t *testing.T) {
	rec := Extract("")
	want := NewExtractedRecord()
	if !reflect.DeepEqual(rec, want) {
		t.Errorf("Extract(\"\") = %+v, want all-empty record", rec)
	}
	// Sequence fields must be empty but present, never nil.
	if rec.Skills == nil || rec.Experiences == nil || rec.Education == nil || rec.Projects == nil {
		t.Error("sequence fields must be non-nil empty slices")
	}
}

func TestExtract_SkillsWindow(t *testing.T) {
	rec := Extract("SKILLS\nPython, React, Docker\nEXPERIENCE")

	want := []string{"Docker", "Python", "React"}
	if got := sorted(rec.Skills); !reflect.DeepEqual(got, want) {
		t.Errorf("Skills = %v, want %v", got, want)
	}
}

func TestExtract_SkillsUnionOfTokensAndVocabulary(t *testing.T) {
	// "Underwater Basket Weaving" is not in the vocabulary and must survive
	// from token splitting; "Kubernetes" appears only in prose outside the
	// window and must be recovered by vocabulary matching.
	corpus := "Deployed services to Kubernetes clusters.\n" +
		"SKILLS\nPython, Underwater Basket Weaving\nEDUCATION"
	rec := Extract(corpus)

	got := map[string]bool{}
	for _, s := range rec.Skills {
		got[s] = true
	}
	for _, want := range []string{"Python", "Underwater Basket Weaving", "Kubernetes"} {
		if !got[want] {
			t.Errorf("Skills missing %q: %v", want, rec.Skills)
		}
	}
	// "Python" is both a token and a vocabulary term: exactly one copy.
	count := 0
	for _, s := range rec.Skills {
		if s == "Python" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Python appears %d times, want 1", count)
	}
}

func TestExtract_SkillsGatedByHeading(t *testing.T) {
	// Vocabulary terms in prose must NOT produce skills when no skills
	// heading exists.
	rec := Extract("Worked daily with Python, Docker and Kubernetes in production.")
	if len(rec.Skills) != 0 {
		t.Errorf("Skills = %v, want empty without a skills heading", rec.Skills)
	}
}

func TestExtract_Experience(t *testing.T) {
	tests := []struct {
		name   string
		corpus string
		want   Experience
	}{
		{
			name:   "unpunctuated record with Present",
			corpus: "EXPERIENCE\nAcme Corp Senior Engineer Jan 2020 - Present\nEDUCATION",
			want: Experience{
				Company:   "Acme Corp",
				Position:  "Senior Engineer",
				StartDate: "Jan 2020",
				EndDate:   "Present",
			},
		},
		{
			name:   "pipe separated with closed range",
			corpus: "WORK EXPERIENCE\nGoogle | Software Engineer | Mar 2018 - Jun 2021\nEDUCATION",
			want: Experience{
				Company:   "Google",
				Position:  "Software Engineer",
				StartDate: "Mar 2018",
				EndDate:   "Jun 2021",
			},
		},
		{
			name:   "lowercase current keyword normalizes to Present",
			corpus: "EMPLOYMENT\nInitech, Product Manager, Feb 2019 to current\nEDUCATION",
			want: Experience{
				Company:   "Initech",
				Position:  "Product Manager",
				StartDate: "Feb 2019",
				EndDate:   "Present",
			},
		},
		{
			name:   "no end token resolves to Current",
			corpus: "EXPERIENCE\nGlobex Data Analyst Sep 2022\nEDUCATION",
			want: Experience{
				Company:   "Globex",
				Position:  "Data Analyst",
				StartDate: "Sep 2022",
				EndDate:   "Current",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Extract(tt.corpus)
			if len(rec.Experiences) != 1 {
				t.Fatalf("got %d experiences, want 1: %+v", len(rec.Experiences), rec.Experiences)
			}
			got := rec.Experiences[0]
			tt.want.Description = experiencePlaceholder
			if got != tt.want {
				t.Errorf("experience = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestExtract_ExperienceWindowRequired(t *testing.T) {
	rec := Extract("Acme Corp Senior Engineer Jan 2020 - Present")
	if len(rec.Experiences) != 0 {
		t.Errorf("Experiences = %+v, want empty without a heading", rec.Experiences)
	}
}

func TestExtract_EducationPrimary(t *testing.T) {
	corpus := "EDUCATION\nUniversity of California, Bachelor of Science in Computer Science, May 2015\nEXPERIENCE"
	rec := Extract(corpus)
	if len(rec.Education) != 1 {
		t.Fatalf("got %d education entries, want 1: %+v", len(rec.Education), rec.Education)
	}
	got := rec.Education[0]
	if got.School != "University of California" {
		t.Errorf("School = %q", got.School)
	}
	if got.Degree != "Bachelor of Science in Computer Science" {
		t.Errorf("Degree = %q", got.Degree)
	}
	if got.GraduationDate != "May 2015" {
		t.Errorf("GraduationDate = %q", got.GraduationDate)
	}
	if got.GPA != "" {
		t.Errorf("GPA = %q, must never be extracted", got.GPA)
	}
}

func TestExtract_EducationFallback(t *testing.T) {
	corpus := "EDUCATION\nStanford University - BS Computer Science 2014 - 2018\nEXPERIENCE"
	rec := Extract(corpus)
	if len(rec.Education) != 1 {
		t.Fatalf("got %d education entries, want 1: %+v", len(rec.Education), rec.Education)
	}
	got := rec.Education[0]
	if got.School != "Stanford University" {
		t.Errorf("School = %q", got.School)
	}
	if got.GraduationDate != "2014 - 2018" {
		t.Errorf("GraduationDate = %q", got.GraduationDate)
	}
}

func TestExtract_Projects(t *testing.T) {
	corpus := "PROJECTS\n" +
		"Portfolio Website: Built a personal site with React Jan 2021 - Mar 2021\n" +
		"Chat App - Realtime messaging demo\n" +
		"EDUCATION"
	rec := Extract(corpus)
	if len(rec.Projects) != 2 {
		t.Fatalf("got %d projects, want 2: %+v", len(rec.Projects), rec.Projects)
	}

	first := rec.Projects[0]
	if first.Title != "Portfolio Website" {
		t.Errorf("Title = %q", first.Title)
	}
	if first.Description != "Built a personal site with React" {
		t.Errorf("Description = %q", first.Description)
	}
	if first.StartDate != "Jan 2021" || first.EndDate != "Mar 2021" {
		t.Errorf("dates = %q..%q", first.StartDate, first.EndDate)
	}
	if first.Technologies == nil || len(first.Technologies) != 0 {
		t.Errorf("Technologies = %v, must be empty non-nil", first.Technologies)
	}

	second := rec.Projects[1]
	if second.Title != "Chat App" || second.Description != "Realtime messaging demo" {
		t.Errorf("second project = %+v", second)
	}
	if second.StartDate != "" || second.EndDate != "" {
		t.Errorf("undated project has dates %q..%q", second.StartDate, second.EndDate)
	}
}

func TestExtract_Deterministic(t *testing.T) {
	corpus := "Jane Doe jane@doe.dev 555-867-5309\n" +
		"SKILLS\nGo, PostgreSQL, Docker\n" +
		"EXPERIENCE\nAcme Corp Senior Engineer Jan 2020 - Present\n" +
		"EDUCATION\nUniversity of Somewhere, Master of Arts, Jun 2012"
	a := Extract(corpus)
	b := Extract(corpus)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("extraction is not deterministic:\n%+v\n%+v", a, b)
	}
}
