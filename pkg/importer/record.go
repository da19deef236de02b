package importer

// PersonalInfo holds the identity and contact fields detected in a resume.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// Experience is a single detected work history entry.
type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Education is a single detected education entry. GPA is carried for the form
// shape but never populated by extraction.
type Education struct {
	School         string `json:"school"`
	Degree         string `json:"degree"`
	GraduationDate string `json:"graduationDate"`
	GPA            string `json:"gpa"`
}

// Project is a single detected project entry. Technologies stays empty; the
// skills extractor owns technology detection.
type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Technologies []string `json:"technologies"`
}

// ExtractedRecord is the partial structured resume produced by one import run.
// Every field is always present: undetected data is an empty string or an
// empty (non-nil) slice, never an omitted field.
type ExtractedRecord struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Experiences  []Experience `json:"experiences"`
	Education    []Education  `json:"education"`
	Skills       []string     `json:"skills"`
	Projects     []Project    `json:"projects"`
}

// NewExtractedRecord returns a record with all sequence fields initialized to
// empty slices so JSON encoding never emits null.
func NewExtractedRecord() ExtractedRecord {
	return ExtractedRecord{
		Experiences: []Experience{},
		Education:   []Education{},
		Skills:      []string{},
		Projects:    []Project{},
	}
}
