package resume

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/resumekit/resumekit/pkg/importer"
)

// Service describes the draft use cases: plain CRUD plus merging an import
// result into an existing draft.
type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, title string, doc Document) (Draft, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (Draft, error)
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Draft, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, title string, doc Document) (Draft, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	ApplyImport(ctx context.Context, ownerID, id uuid.UUID, rec importer.ExtractedRecord) (Draft, error)
}

type service struct {
	repo Repository
}

// NewService returns the default Service backed by a draft repository.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, ownerID uuid.UUID, title string, doc Document) (Draft, error) {
	now := time.Now().UTC()
	d := Draft{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     strings.TrimSpace(title),
		Document:  normalizeDocument(doc),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if d.Title == "" {
		d.Title = "Untitled resume"
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return Draft{}, err
	}
	return d, nil
}

func (s *service) Get(ctx context.Context, ownerID, id uuid.UUID) (Draft, error) {
	return s.repo.Get(ctx, ownerID, id)
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Draft, error) {
	return s.repo.List(ctx, ownerID, limit, offset)
}

func (s *service) Update(ctx context.Context, ownerID, id uuid.UUID, title string, doc Document) (Draft, error) {
	d, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		return Draft{}, err
	}
	if t := strings.TrimSpace(title); t != "" {
		d.Title = t
	}
	d.Document = normalizeDocument(doc)
	d.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, d); err != nil {
		return Draft{}, err
	}
	return d, nil
}

func (s *service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.Delete(ctx, ownerID, id)
}

// ApplyImport merges an extracted record into a stored draft. A section is
// only overwritten when the extracted section is non-empty, so a sparse
// import never wipes data the user already typed in.
func (s *service) ApplyImport(ctx context.Context, ownerID, id uuid.UUID, rec importer.ExtractedRecord) (Draft, error) {
	d, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		return Draft{}, err
	}
	d.Document = MergeImported(d.Document, rec)
	d.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, d); err != nil {
		return Draft{}, err
	}
	return d, nil
}

// MergeImported applies the per-section non-empty-overwrite rule. Personal
// info merges per field because a resume that yields only an email should not
// blank out a hand-typed name.
func MergeImported(doc Document, rec importer.ExtractedRecord) Document {
	out := normalizeDocument(doc)

	if rec.PersonalInfo.FullName != "" {
		out.PersonalInfo.FullName = rec.PersonalInfo.FullName
	}
	if rec.PersonalInfo.Email != "" {
		out.PersonalInfo.Email = rec.PersonalInfo.Email
	}
	if rec.PersonalInfo.Phone != "" {
		out.PersonalInfo.Phone = rec.PersonalInfo.Phone
	}
	if rec.PersonalInfo.Location != "" {
		out.PersonalInfo.Location = rec.PersonalInfo.Location
	}

	if len(rec.Experiences) > 0 {
		out.Experiences = make([]Experience, 0, len(rec.Experiences))
		for _, e := range rec.Experiences {
			out.Experiences = append(out.Experiences, Experience(e))
		}
	}
	if len(rec.Education) > 0 {
		out.Education = make([]Education, 0, len(rec.Education))
		for _, e := range rec.Education {
			out.Education = append(out.Education, Education{
				School:         e.School,
				Degree:         e.Degree,
				GraduationDate: e.GraduationDate,
				GPA:            e.GPA,
			})
		}
	}
	if len(rec.Skills) > 0 {
		out.Skills = append([]string{}, rec.Skills...)
	}
	if len(rec.Projects) > 0 {
		out.Projects = make([]Project, 0, len(rec.Projects))
		for _, p := range rec.Projects {
			out.Projects = append(out.Projects, Project{
				Title:        p.Title,
				Description:  p.Description,
				StartDate:    p.StartDate,
				EndDate:      p.EndDate,
				Technologies: append([]string{}, p.Technologies...),
			})
		}
	}
	return out
}

// normalizeDocument replaces nil core sections with empty slices so stored
// and returned JSON never carries null where the form expects an array.
func normalizeDocument(doc Document) Document {
	if doc.Experiences == nil {
		doc.Experiences = []Experience{}
	}
	if doc.Education == nil {
		doc.Education = []Education{}
	}
	if doc.Skills == nil {
		doc.Skills = []string{}
	}
	if doc.Projects == nil {
		doc.Projects = []Project{}
	}
	return doc
}
