package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/resumekit/resumekit/pkg/importer"
	"github.com/resumekit/resumekit/pkg/resume"
)

// stubDrafts is an in-memory resume.Service for handler tests.
type stubDrafts struct {
	byID map[uuid.UUID]resume.Draft
}

func newStubDrafts() *stubDrafts {
	return &stubDrafts{byID: map[uuid.UUID]resume.Draft{}}
}

func (s *stubDrafts) Create(_ context.Context, ownerID uuid.UUID, title string, doc resume.Document) (resume.Draft, error) {
	d := resume.Draft{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     title,
		Document:  doc,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if d.Title == "" {
		d.Title = "Untitled resume"
	}
	s.byID[d.ID] = d
	return d, nil
}

func (s *stubDrafts) Get(_ context.Context, ownerID, id uuid.UUID) (resume.Draft, error) {
	d, ok := s.byID[id]
	if !ok || d.OwnerID != ownerID {
		return resume.Draft{}, resume.ErrNotFound
	}
	return d, nil
}

func (s *stubDrafts) List(_ context.Context, ownerID uuid.UUID, limit, offset int) ([]resume.Draft, error) {
	var out []resume.Draft
	for _, d := range s.byID {
		if d.OwnerID == ownerID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *stubDrafts) Update(_ context.Context, ownerID, id uuid.UUID, title string, doc resume.Document) (resume.Draft, error) {
	d, err := s.Get(context.Background(), ownerID, id)
	if err != nil {
		return resume.Draft{}, err
	}
	if title != "" {
		d.Title = title
	}
	d.Document = doc
	s.byID[id] = d
	return d, nil
}

func (s *stubDrafts) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	if _, err := s.Get(context.Background(), ownerID, id); err != nil {
		return err
	}
	delete(s.byID, id)
	return nil
}

func (s *stubDrafts) ApplyImport(_ context.Context, ownerID, id uuid.UUID, rec importer.ExtractedRecord) (resume.Draft, error) {
	d, err := s.Get(context.Background(), ownerID, id)
	if err != nil {
		return resume.Draft{}, err
	}
	d.Document = resume.MergeImported(d.Document, rec)
	s.byID[id] = d
	return d, nil
}

// stubImportLogs records import log entries in memory.
type stubImportLogs struct {
	entries []resume.ImportLog
}

func (s *stubImportLogs) Create(_ context.Context, l resume.ImportLog) error {
	s.entries = append(s.entries, l)
	return nil
}

func (s *stubImportLogs) ListByOwner(_ context.Context, ownerID uuid.UUID, limit, offset int) ([]resume.ImportLog, error) {
	var out []resume.ImportLog
	for _, l := range s.entries {
		if l.OwnerID == ownerID {
			out = append(out, l)
		}
	}
	return out, nil
}

// asUser injects the authenticated user the way the JWT middleware does.
func asUser(id uuid.UUID) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userId", id.String())
		return c.Next()
	}
}
