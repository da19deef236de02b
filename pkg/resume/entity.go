package resume

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/resumekit/resumekit/pkg/importer"
)

// PersonalInfo mirrors the builder form's identity section.
type PersonalInfo struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	ProfileImage string `json:"profileImage,omitempty"`
}

type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type Education struct {
	School         string `json:"school"`
	Degree         string `json:"degree"`
	GraduationDate string `json:"graduationDate"`
	GPA            string `json:"gpa,omitempty"`
}

type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Technologies []string `json:"technologies"`
}

// Document is the full builder form model, the unit users edit and export.
type Document struct {
	PersonalInfo    PersonalInfo `json:"personalInfo"`
	Experiences     []Experience `json:"experiences"`
	Education       []Education  `json:"education"`
	Skills          []string     `json:"skills"`
	Projects        []Project    `json:"projects"`
	Certifications  []string     `json:"certifications,omitempty"`
	Hobbies         []string     `json:"hobbies,omitempty"`
	ExtraCurricular []string     `json:"extraCurricular,omitempty"`
	SoftSkills      []string     `json:"softSkills,omitempty"`
	Font            string       `json:"font,omitempty"`
}

// NewDocument returns a document with non-nil core sections.
func NewDocument() Document {
	return Document{
		Experiences: []Experience{},
		Education:   []Education{},
		Skills:      []string{},
		Projects:    []Project{},
	}
}

// Draft is a stored resume document owned by a user.
type Draft struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"ownerId"`
	Title     string    `json:"title"`
	Document  Document  `json:"document"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ImportLog records one import run: what was uploaded and what came out.
type ImportLog struct {
	ID        uuid.UUID                `json:"id"`
	OwnerID   uuid.UUID                `json:"ownerId"`
	Filename  string                   `json:"filename"`
	SizeBytes int64                    `json:"sizeBytes"`
	Record    importer.ExtractedRecord `json:"record"`
	CreatedAt time.Time                `json:"createdAt"`
}

var ErrNotFound = errors.New("draft not found")

// Repository is the persistence port for drafts.
type Repository interface {
	Create(ctx context.Context, d Draft) error
	Get(ctx context.Context, ownerID, id uuid.UUID) (Draft, error)
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Draft, error)
	Update(ctx context.Context, d Draft) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// ImportLogRepository is the persistence port for import audit entries.
type ImportLogRepository interface {
	Create(ctx context.Context, l ImportLog) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]ImportLog, error)
}
