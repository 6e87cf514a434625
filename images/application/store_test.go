package application

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/dfryer1193/imgserve/images/domain"
)

// memoryStore is an in-memory domain.ImageStore for service tests.
type memoryStore struct {
	mu         sync.Mutex
	objects    map[string][]byte
	writeErr   error
	writeDelay time.Duration
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: make(map[string][]byte)}
}

func (m *memoryStore) Init(context.Context) error { return nil }

func (m *memoryStore) Ping(context.Context) error { return nil }

func (m *memoryStore) Exists(_ context.Context, key domain.Key) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key.Name]
	return ok, nil
}

func (m *memoryStore) Write(_ context.Context, key domain.Key, r io.Reader) (int64, error) {
	if m.writeErr != nil {
		return 0, m.writeErr
	}
	time.Sleep(m.writeDelay)
	content, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key.Name] = content
	return int64(len(content)), nil
}

func (m *memoryStore) Read(_ context.Context, key domain.Key) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	content, ok := m.objects[key.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, key)
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

func mustKey(t *testing.T, name string) domain.Key {
	t.Helper()
	key, err := domain.ParseKey(name)
	if err != nil {
		t.Fatalf("ParseKey(%q) error = %v", name, err)
	}
	return key
}

// testPNG encodes a w x h image whose top-left pixel is red and the rest blue.
func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{B: 255, A: 255})
		}
	}
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode error = %v", err)
	}
	return buf.Bytes()
}
