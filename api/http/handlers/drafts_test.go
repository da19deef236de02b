package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/resumekit/resumekit/pkg/export"
	"github.com/resumekit/resumekit/pkg/resume"
)

func newDraftsApp(t *testing.T) (*fiber.App, *stubDrafts, uuid.UUID) {
	t.Helper()
	drafts := newStubDrafts()
	h := NewDraftsHandler(drafts, export.NewWordExporter())
	owner := uuid.New()
	app := fiber.New()
	g := app.Group("/drafts", asUser(owner))
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/:id", h.Get)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
	g.Get("/:id/export/word", h.ExportWord)
	return app, drafts, owner
}

func TestDrafts_CreateAndGet(t *testing.T) {
	app, _, _ := newDraftsApp(t)

	payload, _ := json.Marshal(map[string]any{
		"title": "My resume",
		"document": resume.Document{
			PersonalInfo: resume.PersonalInfo{FullName: "Jane Doe"},
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/drafts/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want %d", resp.StatusCode, http.StatusCreated)
	}
	var created resume.Draft
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	if created.Title != "My resume" {
		t.Errorf("title = %q, want %q", created.Title, "My resume")
	}

	getResp, err := app.Test(httptest.NewRequest(http.MethodGet, "/drafts/"+created.ID.String(), nil))
	if err != nil {
		t.Fatal(err)
	}
	defer getResp.Body.Close()
	if getResp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d, want %d", getResp.StatusCode, http.StatusOK)
	}
	var got resume.Draft
	if err := json.NewDecoder(getResp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Document.PersonalInfo.FullName != "Jane Doe" {
		t.Errorf("fullName = %q, want %q", got.Document.PersonalInfo.FullName, "Jane Doe")
	}
}

func TestDrafts_GetUnknownIs404(t *testing.T) {
	app, _, _ := newDraftsApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/drafts/"+uuid.NewString(), nil))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}

func TestDrafts_InvalidIDIs400(t *testing.T) {
	app, _, _ := newDraftsApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/drafts/not-a-uuid", nil))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}

func TestDrafts_DeleteThenGone(t *testing.T) {
	app, drafts, owner := newDraftsApp(t)
	d, err := drafts.Create(context.Background(), owner, "temp", resume.NewDocument())
	if err != nil {
		t.Fatal(err)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/drafts/"+d.ID.String(), nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status = %d, want %d", resp.StatusCode, http.StatusNoContent)
	}

	getResp, err := app.Test(httptest.NewRequest(http.MethodGet, "/drafts/"+d.ID.String(), nil))
	if err != nil {
		t.Fatal(err)
	}
	if getResp.StatusCode != http.StatusNotFound {
		t.Fatalf("get-after-delete status = %d, want %d", getResp.StatusCode, http.StatusNotFound)
	}
}

func TestDrafts_ExportWord(t *testing.T) {
	app, drafts, owner := newDraftsApp(t)
	doc := resume.NewDocument()
	doc.PersonalInfo.FullName = "Jane Doe"
	doc.Skills = []string{"Go", "PostgreSQL"}
	d, err := drafts.Create(context.Background(), owner, "export me", doc)
	if err != nil {
		t.Fatal(err)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/drafts/"+d.ID.String()+"/export/word", nil))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/msword" {
		t.Errorf("content type = %q, want application/msword", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); cd == "" {
		t.Error("missing Content-Disposition header")
	}
	body, _ := io.ReadAll(resp.Body)
	if !bytes.Contains(body, []byte("Jane Doe")) {
		t.Error("rendered document does not contain the candidate name")
	}
}

func TestDrafts_OwnerScoping(t *testing.T) {
	app, drafts, _ := newDraftsApp(t)
	// A draft owned by somebody else must look like it does not exist.
	other, err := drafts.Create(context.Background(), uuid.New(), "not yours", resume.NewDocument())
	if err != nil {
		t.Fatal(err)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/drafts/"+other.ID.String(), nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}
