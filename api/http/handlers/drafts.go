package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/resumekit/resumekit/api/http/presenter"
	"github.com/resumekit/resumekit/pkg/export"
	"github.com/resumekit/resumekit/pkg/resume"
)

type DraftsHandler struct {
	svc  resume.Service
	word *export.WordExporter
}

func NewDraftsHandler(svc resume.Service, word *export.WordExporter) *DraftsHandler {
	return &DraftsHandler{svc: svc, word: word}
}

type draftRequest struct {
	Title    string          `json:"title"`
	Document resume.Document `json:"document"`
}

// Create stores a new resume draft.
// @Summary Create draft
// @Tags    drafts
// @Accept  json
// @Produce json
// @Param   input body draftRequest true "draft payload"
// @Security BearerAuth
// @Success 201 {object} resume.Draft
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /drafts [post]
func (h *DraftsHandler) Create(c *fiber.Ctx) error {
	owner, ok := ownerID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	var req draftRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	d, err := h.svc.Create(c.Context(), owner, req.Title, req.Document)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to create draft")
	}
	return presenter.JSON(c, http.StatusCreated, d)
}

// List returns the caller's drafts, most recently updated first.
// @Summary List drafts
// @Tags    drafts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router  /drafts [get]
func (h *DraftsHandler) List(c *fiber.Ctx) error {
	owner, ok := ownerID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	limit, offset := parseLimitOffset(c, 50)
	items, err := h.svc.List(c.Context(), owner, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list drafts")
	}
	if items == nil {
		items = []resume.Draft{}
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"items": items, "limit": limit, "offset": offset})
}

// Get returns one draft by id.
// @Summary Get draft
// @Tags    drafts
// @Produce json
// @Param   id path string true "draft id"
// @Security BearerAuth
// @Success 200 {object} resume.Draft
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /drafts/{id} [get]
func (h *DraftsHandler) Get(c *fiber.Ctx) error {
	owner, ok := ownerID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid draft id")
	}
	d, err := h.svc.Get(c.Context(), owner, id)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "draft not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load draft")
	}
	return presenter.JSON(c, http.StatusOK, d)
}

// Update replaces a draft's title and document.
// @Summary Update draft
// @Tags    drafts
// @Accept  json
// @Produce json
// @Param   id path string true "draft id"
// @Param   input body draftRequest true "draft payload"
// @Security BearerAuth
// @Success 200 {object} resume.Draft
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /drafts/{id} [put]
func (h *DraftsHandler) Update(c *fiber.Ctx) error {
	owner, ok := ownerID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid draft id")
	}
	var req draftRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	d, err := h.svc.Update(c.Context(), owner, id, req.Title, req.Document)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "draft not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to update draft")
	}
	return presenter.JSON(c, http.StatusOK, d)
}

// Delete removes a draft.
// @Summary Delete draft
// @Tags    drafts
// @Param   id path string true "draft id"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /drafts/{id} [delete]
func (h *DraftsHandler) Delete(c *fiber.Ctx) error {
	owner, ok := ownerID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid draft id")
	}
	if err := h.svc.Delete(c.Context(), owner, id); err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "draft not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to delete draft")
	}
	return c.SendStatus(http.StatusNoContent)
}

// ExportWord downloads a draft as a Word-compatible document.
// @Summary Export draft as Word document
// @Tags    drafts
// @Produce application/msword
// @Param   id path string true "draft id"
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /drafts/{id}/export/word [get]
func (h *DraftsHandler) ExportWord(c *fiber.Ctx) error {
	owner, ok := ownerID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid draft id")
	}
	d, err := h.svc.Get(c.Context(), owner, id)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "draft not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load draft")
	}
	body, err := h.word.Render(d.Document)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to render document")
	}
	c.Set(fiber.HeaderContentType, h.word.ContentType())
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "resume.doc"))
	return c.Send(body)
}
