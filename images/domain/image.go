package domain

import (
	"context"
	"io"
	"time"
)

// StoredImage is the raw content persisted under a key.
type StoredImage struct {
	Key     Key
	Content []byte
}

// Size returns the number of bytes held by the image.
func (s *StoredImage) Size() int64 {
	return int64(len(s.Content))
}

// ImageStore persists raw image bytes under validated keys. Callers must run
// ParseKey before invoking any method.
type ImageStore interface {
	// Init prepares the backing storage. It is idempotent.
	Init(ctx context.Context) error

	// Ping reports whether the backing storage is reachable without changing it.
	Ping(ctx context.Context) error

	// Exists reports whether a readable object is stored under key. A missing
	// object is not an error.
	Exists(ctx context.Context, key Key) (bool, error)

	// Write replaces any content stored under key and returns the number of
	// bytes persisted.
	Write(ctx context.Context, key Key, r io.Reader) (int64, error)

	// Read opens the content stored under key. It returns ErrNotFound when
	// nothing is stored there.
	Read(ctx context.Context, key Key) (io.ReadCloser, error)
}

// UploadRecord is the ledger entry kept for every successful upload.
type UploadRecord struct {
	Key         string
	Size        int64
	SHA256      string
	ContentType string
	UpdatedAt   time.Time
	CreatedAt   time.Time
}

// UploadLedger keeps metadata about uploads. It is never consulted for
// existence checks; the ImageStore is the source of truth.
type UploadLedger interface {
	// Record upserts the entry for rec.Key, preserving the original CreatedAt.
	// It is called only after the content has been stored.
	Record(ctx context.Context, rec *UploadRecord) error

	// Get returns the entry for key, or ErrNotFound.
	Get(ctx context.Context, key string) (*UploadRecord, error)
}
