package resume

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/resumekit/resumekit/pkg/importer"
)

type memoryRepo struct {
	drafts map[uuid.UUID]Draft
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{drafts: map[uuid.UUID]Draft{}}
}

func (m *memoryRepo) Create(_ context.Context, d Draft) error {
	m.drafts[d.ID] = d
	return nil
}

func (m *memoryRepo) Get(_ context.Context, ownerID, id uuid.UUID) (Draft, error) {
	d, ok := m.drafts[id]
	if !ok || d.OwnerID != ownerID {
		return Draft{}, ErrNotFound
	}
	return d, nil
}

func (m *memoryRepo) List(_ context.Context, ownerID uuid.UUID, _, _ int) ([]Draft, error) {
	var out []Draft
	for _, d := range m.drafts {
		if d.OwnerID == ownerID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memoryRepo) Update(_ context.Context, d Draft) error {
	m.drafts[d.ID] = d
	return nil
}

func (m *memoryRepo) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	d, ok := m.drafts[id]
	if !ok || d.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(m.drafts, id)
	return nil
}

func TestMergeImported_EmptySectionsDoNotOverwrite(t *testing.T) {
	doc := NewDocument()
	doc.PersonalInfo.FullName = "Typed By Hand"
	doc.Skills = []string{"Carpentry"}

	merged := MergeImported(doc, importer.NewExtractedRecord())

	if merged.PersonalInfo.FullName != "Typed By Hand" {
		t.Errorf("FullName overwritten by empty import: %q", merged.PersonalInfo.FullName)
	}
	if len(merged.Skills) != 1 || merged.Skills[0] != "Carpentry" {
		t.Errorf("Skills overwritten by empty import: %v", merged.Skills)
	}
}

func TestMergeImported_NonEmptySectionsOverwrite(t *testing.T) {
	doc := NewDocument()
	doc.PersonalInfo.FullName = "Old Name"
	doc.PersonalInfo.Phone = "111-222-3333"
	doc.Skills = []string{"Old Skill"}

	rec := importer.NewExtractedRecord()
	rec.PersonalInfo.FullName = "New Name"
	rec.Skills = []string{"Go", "PostgreSQL"}
	rec.Experiences = []importer.Experience{{Company: "Acme Corp", Position: "Engineer"}}

	merged := MergeImported(doc, rec)

	if merged.PersonalInfo.FullName != "New Name" {
		t.Errorf("FullName = %q, want imported value", merged.PersonalInfo.FullName)
	}
	if merged.PersonalInfo.Phone != "111-222-3333" {
		t.Errorf("Phone = %q, empty imported field must not clear it", merged.PersonalInfo.Phone)
	}
	if len(merged.Skills) != 2 || merged.Skills[0] != "Go" {
		t.Errorf("Skills = %v, want imported section", merged.Skills)
	}
	if len(merged.Experiences) != 1 || merged.Experiences[0].Company != "Acme Corp" {
		t.Errorf("Experiences = %v", merged.Experiences)
	}
}

func TestService_ApplyImport(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	owner := uuid.New()

	d, err := svc.Create(context.Background(), owner, "My resume", NewDocument())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	rec := importer.NewExtractedRecord()
	rec.PersonalInfo.Email = "jane@doe.dev"
	rec.Skills = []string{"Docker"}

	updated, err := svc.ApplyImport(context.Background(), owner, d.ID, rec)
	if err != nil {
		t.Fatalf("ApplyImport: %v", err)
	}
	if updated.Document.PersonalInfo.Email != "jane@doe.dev" {
		t.Errorf("Email = %q", updated.Document.PersonalInfo.Email)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) && !updated.UpdatedAt.Equal(updated.CreatedAt) {
		t.Errorf("UpdatedAt not refreshed")
	}

	// Import into someone else's draft must fail.
	if _, err := svc.ApplyImport(context.Background(), uuid.New(), d.ID, rec); err == nil {
		t.Error("ApplyImport across owners succeeded, want error")
	}
}

func TestService_CreateDefaultsTitle(t *testing.T) {
	svc := NewService(newMemoryRepo())
	d, err := svc.Create(context.Background(), uuid.New(), "   ", Document{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if d.Title != "Untitled resume" {
		t.Errorf("Title = %q", d.Title)
	}
	if d.Document.Skills == nil || d.Document.Experiences == nil {
		t.Error("core sections must be initialized to empty slices")
	}
}
