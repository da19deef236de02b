package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resumekit/resumekit/pkg/resume"
)

// ImportLogRepository keeps an audit trail of import runs per user.
type ImportLogRepository struct {
	pool *pgxpool.Pool
}

func NewImportLogRepository(pool *pgxpool.Pool) (*ImportLogRepository, error) {
	r := &ImportLogRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ImportLogRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS import_logs (
	id UUID PRIMARY KEY,
	owner_id UUID NOT NULL,
	filename TEXT NOT NULL,
	size_bytes BIGINT NOT NULL,
	record JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS import_logs_owner_idx ON import_logs (owner_id, created_at DESC);
`)
	return err
}

func (r *ImportLogRepository) Create(ctx context.Context, l resume.ImportLog) error {
	rec, err := json.Marshal(l.Record)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO import_logs (id, owner_id, filename, size_bytes, record, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`, l.ID, l.OwnerID, l.Filename, l.SizeBytes, rec, l.CreatedAt)
	return err
}

func (r *ImportLogRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]resume.ImportLog, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, owner_id, filename, size_bytes, record, created_at
FROM import_logs WHERE owner_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []resume.ImportLog
	for rows.Next() {
		var l resume.ImportLog
		var rec []byte
		var created time.Time
		if err := rows.Scan(&l.ID, &l.OwnerID, &l.Filename, &l.SizeBytes, &rec, &created); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(rec, &l.Record); err != nil {
			return nil, err
		}
		l.CreatedAt = created.UTC()
		out = append(out, l)
	}
	return out, rows.Err()
}
