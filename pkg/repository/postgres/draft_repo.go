package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resumekit/resumekit/pkg/resume"
)

// DraftRepository stores resume drafts with the builder document as JSONB.
type DraftRepository struct {
	pool *pgxpool.Pool
}

func NewDraftRepository(pool *pgxpool.Pool) (*DraftRepository, error) {
	r := &DraftRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *DraftRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS drafts (
	id UUID PRIMARY KEY,
	owner_id UUID NOT NULL,
	title TEXT NOT NULL,
	document JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS drafts_owner_idx ON drafts (owner_id, updated_at DESC);
`)
	return err
}

func (r *DraftRepository) Create(ctx context.Context, d resume.Draft) error {
	doc, err := json.Marshal(d.Document)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO drafts (id, owner_id, title, document, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
`, d.ID, d.OwnerID, d.Title, doc, d.CreatedAt, d.UpdatedAt)
	return err
}

func (r *DraftRepository) Get(ctx context.Context, ownerID, id uuid.UUID) (resume.Draft, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, owner_id, title, document, created_at, updated_at
FROM drafts WHERE id = $1 AND owner_id = $2
`, id, ownerID)
	return scanDraft(row)
}

func (r *DraftRepository) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]resume.Draft, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, owner_id, title, document, created_at, updated_at
FROM drafts WHERE owner_id = $1
ORDER BY updated_at DESC
LIMIT $2 OFFSET $3
`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []resume.Draft
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DraftRepository) Update(ctx context.Context, d resume.Draft) error {
	doc, err := json.Marshal(d.Document)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `
UPDATE drafts SET title = $3, document = $4, updated_at = $5
WHERE id = $1 AND owner_id = $2
`, d.ID, d.OwnerID, d.Title, doc, d.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrNotFound
	}
	return nil
}

func (r *DraftRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
DELETE FROM drafts WHERE id = $1 AND owner_id = $2
`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDraft(row rowScanner) (resume.Draft, error) {
	var d resume.Draft
	var doc []byte
	var created, updated time.Time
	if err := row.Scan(&d.ID, &d.OwnerID, &d.Title, &doc, &created, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Draft{}, resume.ErrNotFound
		}
		return resume.Draft{}, err
	}
	if err := json.Unmarshal(doc, &d.Document); err != nil {
		return resume.Draft{}, err
	}
	d.CreatedAt = created.UTC()
	d.UpdatedAt = updated.UTC()
	return d, nil
}
