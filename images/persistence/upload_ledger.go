package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dfryer1193/imgserve/images/domain"
	"github.com/dfryer1193/imgserve/shared/db"
)

var _ domain.UploadLedger = (*SQLiteUploadLedger)(nil)

// SQLiteUploadLedger implements domain.UploadLedger using SQL database (SQLite)
type SQLiteUploadLedger struct {
	db *sql.DB
}

// NewUploadLedger creates a new SQLiteUploadLedger from a standard sql.DB
func NewUploadLedger(sqlDB *sql.DB) *SQLiteUploadLedger {
	return &SQLiteUploadLedger{
		db: sqlDB,
	}
}

const upsertUploadQuery = `
	INSERT INTO uploads (key, size, sha256, content_type, updated_at, created_at)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET
		size = excluded.size,
		sha256 = excluded.sha256,
		content_type = excluded.content_type,
		updated_at = excluded.updated_at,
		created_at = COALESCE(uploads.created_at, excluded.created_at)
`

// Record upserts the ledger row. The transaction covers only the upsert so
// concurrent uploads never wait on each other's storage I/O.
func (r *SQLiteUploadLedger) Record(ctx context.Context, rec *domain.UploadRecord) error {
	if rec == nil {
		return fmt.Errorf("upload record cannot be nil")
	}

	if rec.Key == "" {
		return fmt.Errorf("upload key cannot be empty")
	}

	return db.RunInTransaction(ctx, r.db, func(txCtx context.Context) error {
		now := time.Now().UTC()
		updatedAt := rec.UpdatedAt
		if updatedAt.IsZero() {
			updatedAt = now
		}
		createdAt := rec.CreatedAt
		if createdAt.IsZero() {
			createdAt = updatedAt
		}

		executor := db.GetExecutor(txCtx, r.db)
		_, err := executor.ExecContext(txCtx, upsertUploadQuery,
			rec.Key,
			rec.Size,
			rec.SHA256,
			rec.ContentType,
			updatedAt,
			createdAt,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert upload record: %w", err)
		}
		return nil
	})
}

const getUploadQuery = `
	SELECT key, size, sha256, content_type, updated_at, created_at
	FROM uploads
	WHERE key = ?
`

// Get retrieves the ledger row for a key
func (r *SQLiteUploadLedger) Get(ctx context.Context, key string) (*domain.UploadRecord, error) {
	if key == "" {
		return nil, fmt.Errorf("upload key cannot be empty")
	}

	var row uploadRow
	err := db.GetExecutor(ctx, r.db).QueryRowContext(ctx, getUploadQuery, key).Scan(
		&row.Key,
		&row.Size,
		&row.SHA256,
		&row.ContentType,
		&row.UpdatedAt,
		&row.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, key)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get upload record: %w", err)
	}

	return row.toDomain(), nil
}

// uploadRow is a private struct used to scan database rows
type uploadRow struct {
	Key         string       `db:"key"`
	Size        int64        `db:"size"`
	SHA256      string       `db:"sha256"`
	ContentType string       `db:"content_type"`
	UpdatedAt   sql.NullTime `db:"updated_at"`
	CreatedAt   sql.NullTime `db:"created_at"`
}

func (ur *uploadRow) toDomain() *domain.UploadRecord {
	rec := &domain.UploadRecord{
		Key:         ur.Key,
		Size:        ur.Size,
		SHA256:      ur.SHA256,
		ContentType: ur.ContentType,
	}

	if ur.UpdatedAt.Valid {
		rec.UpdatedAt = ur.UpdatedAt.Time
	}
	if ur.CreatedAt.Valid {
		rec.CreatedAt = ur.CreatedAt.Time
	}

	return rec
}
