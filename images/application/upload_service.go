package application

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"mime"
	"strings"
	"time"

	"github.com/dfryer1193/imgserve/images/domain"
	"github.com/rs/zerolog/log"
)

// UploadService validates, stores and records uploaded images.
type UploadService struct {
	store  domain.ImageStore
	ledger domain.UploadLedger
}

// NewUploadService creates an UploadService. A nil ledger disables upload
// metadata recording.
func NewUploadService(store domain.ImageStore, ledger domain.UploadLedger) *UploadService {
	if ledger == nil {
		ledger = noopLedger{}
	}
	return &UploadService{
		store:  store,
		ledger: ledger,
	}
}

// ValidateContentType accepts any image/* media type.
func ValidateContentType(contentType string) error {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedMediaType, contentType)
	}
	return nil
}

// Upload replaces whatever is stored under img.Key and returns the number of
// bytes persisted. The ledger row is written after the content.
func (s *UploadService) Upload(ctx context.Context, img *domain.StoredImage, contentType string) (int64, error) {
	if img == nil {
		return 0, fmt.Errorf("image cannot be nil")
	}

	written, err := s.store.Write(ctx, img.Key, bytes.NewReader(img.Content))
	if err != nil {
		return 0, fmt.Errorf("failed to store %s: %w", img.Key, err)
	}

	sum := sha256.Sum256(img.Content)
	rec := &domain.UploadRecord{
		Key:         img.Key.Name,
		Size:        written,
		SHA256:      hex.EncodeToString(sum[:]),
		ContentType: contentType,
		UpdatedAt:   time.Now().UTC(),
	}

	// The store is the source of truth; a stale ledger row does not fail the upload.
	if err := s.ledger.Record(ctx, rec); err != nil {
		log.Error().Err(err).Str("key", img.Key.Name).Msg("Failed to record upload")
	}

	log.Debug().Str("key", img.Key.Name).Int64("size", written).Msg("Stored image")
	return written, nil
}

// Exists reports whether key currently has readable content.
func (s *UploadService) Exists(ctx context.Context, key domain.Key) (bool, error) {
	return s.store.Exists(ctx, key)
}

// Open streams the raw stored bytes for key.
func (s *UploadService) Open(ctx context.Context, key domain.Key) (io.ReadCloser, error) {
	return s.store.Read(ctx, key)
}

// Info returns the ledger entry for key.
func (s *UploadService) Info(ctx context.Context, key domain.Key) (*domain.UploadRecord, error) {
	return s.ledger.Get(ctx, key.Name)
}

type noopLedger struct{}

func (noopLedger) Record(context.Context, *domain.UploadRecord) error {
	return nil
}

func (noopLedger) Get(_ context.Context, key string) (*domain.UploadRecord, error) {
	return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, key)
}
