package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/resumekit/resumekit/api/http/presenter"
	"github.com/resumekit/resumekit/pkg/importer"
	"github.com/resumekit/resumekit/pkg/resume"
)

type ImportHandler struct {
	imp    *importer.Importer
	drafts resume.Service
	logs   resume.ImportLogRepository
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
	baseDir  string
}

func NewImportHandler(imp *importer.Importer, drafts resume.Service, logs resume.ImportLogRepository, maxBytes int64, baseDir string) *ImportHandler {
	if maxBytes <= 0 {
		maxBytes = 5 << 20
	}
	return &ImportHandler{imp: imp, drafts: drafts, logs: logs, maxBytes: maxBytes, baseDir: baseDir}
}

// Import extracts resume fields from an uploaded PDF or DOCX file. When a
// draftId form value is present, the extracted record is also merged into
// that draft.
// @Summary Import a resume file
// @Tags    import
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "resume file (PDF or DOCX)"
// @Param   draftId formData string false "draft to merge the result into"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /import [post]
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	owner, ok := ownerID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf or docx)")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".pdf" && ext != ".docx" {
		return presenter.Error(c, http.StatusBadRequest, "unsupported file format: only pdf and docx are allowed")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	rec, err := h.imp.Import(fh.Filename, data)
	if err != nil {
		if errors.Is(err, importer.ErrDocumentLoad) {
			return presenter.Error(c, http.StatusBadRequest,
				"could not read the document; try re-saving the file and uploading again")
		}
		return presenter.Error(c, http.StatusInternalServerError, "import failed")
	}

	importID := uuid.New()
	if h.baseDir != "" {
		// Keep the original upload for support and reprocessing.
		if err := os.MkdirAll(h.baseDir, 0o755); err != nil {
			return presenter.Error(c, http.StatusInternalServerError, "failed to prepare storage")
		}
		dst := filepath.Join(h.baseDir, importID.String()+ext)
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return presenter.Error(c, http.StatusInternalServerError, "failed to store file")
		}
	}
	if h.logs != nil {
		entry := resume.ImportLog{
			ID:        importID,
			OwnerID:   owner,
			Filename:  fh.Filename,
			SizeBytes: int64(len(data)),
			Record:    rec,
			CreatedAt: time.Now().UTC(),
		}
		if err := h.logs.Create(c.Context(), entry); err != nil {
			return presenter.Error(c, http.StatusInternalServerError, "failed to save import log")
		}
	}

	resp := fiber.Map{
		"importId": importID.String(),
		"filename": fh.Filename,
		"sizeB":    len(data),
		"record":   rec,
	}
	if raw := strings.TrimSpace(c.FormValue("draftId")); raw != "" {
		draftID, err := uuid.Parse(raw)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid draftId")
		}
		draft, err := h.drafts.ApplyImport(c.Context(), owner, draftID, rec)
		if err != nil {
			if errors.Is(err, resume.ErrNotFound) {
				return presenter.Error(c, http.StatusNotFound, "draft not found")
			}
			return presenter.Error(c, http.StatusInternalServerError, "failed to update draft")
		}
		resp["draft"] = draft
	}
	return presenter.JSON(c, http.StatusOK, resp)
}

// History lists the caller's past imports, newest first.
// @Summary List import history
// @Tags    import
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router  /import/history [get]
func (h *ImportHandler) History(c *fiber.Ctx) error {
	owner, ok := ownerID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	limit, offset := parseLimitOffset(c, 50)
	items, err := h.logs.ListByOwner(c.Context(), owner, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list imports")
	}
	if items == nil {
		items = []resume.ImportLog{}
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"items": items, "limit": limit, "offset": offset})
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
