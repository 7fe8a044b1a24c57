package imagecache

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"articles-app-core/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	calls   int32
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	atomic.AddInt32(&m.calls, 1)
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

func (m *mockHTTPClient) callCount() int {
	return int(atomic.LoadInt32(&m.calls))
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       []byte
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(bytes.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if strings.EqualFold(key, "Content-Type") {
		return "image/png"
	}
	return ""
}

// mapImageStore is an in-memory ImageStore
type mapImageStore struct {
	mu     sync.Mutex
	images map[string]image.Image
}

func newMapImageStore() *mapImageStore {
	return &mapImageStore{images: make(map[string]image.Image)}
}

func (s *mapImageStore) Get(url string) (image.Image, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	img, ok := s.images[url]
	return img, ok
}

func (s *mapImageStore) Set(url string, img image.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.images[url] = img
}

func (s *mapImageStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.images)
}

// lateImageStore reports a miss on its first Get, as if the image landed
// right after the caller looked
type lateImageStore struct {
	*mapImageStore
	gets int32
}

func (s *lateImageStore) Get(url string) (image.Image, bool) {
	if atomic.AddInt32(&s.gets, 1) == 1 {
		return nil, false
	}
	return s.mapImageStore.Get(url)
}

// queueDispatcher collects dispatched functions so tests decide when the
// UI context runs them
type queueDispatcher struct {
	queue chan func()
}

func newQueueDispatcher() *queueDispatcher {
	return &queueDispatcher{queue: make(chan func(), 16)}
}

func (d *queueDispatcher) Dispatch(fn func()) {
	d.queue <- fn
}

func (d *queueDispatcher) runNext(t *testing.T) {
	t.Helper()
	select {
	case fn := <-d.queue:
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a dispatched delivery")
	}
}

func (d *queueDispatcher) assertIdle(t *testing.T) {
	t.Helper()
	select {
	case <-d.queue:
		t.Fatal("unexpected dispatched delivery")
	case <-time.After(50 * time.Millisecond):
	}
}

// pngBytes encodes a solid w x h PNG
func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// blockingGet serves body after release is closed, or fails when ctx ends.
// Each call's context is sent on started.
func blockingGet(body []byte, release <-chan struct{}, started chan<- context.Context) func(ctx context.Context, url string) (interfaces.Response, error) {
	return func(ctx context.Context, url string) (interfaces.Response, error) {
		if started != nil {
			started <- ctx
		}
		select {
		case <-release:
			return &mockResponse{statusCode: 200, body: body}, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
