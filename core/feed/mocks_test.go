package feed

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"articles-app-core/core/domain"
)

// mockProvider is a testify mock of the ArticleProvider interface
type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) FetchTrending(ctx context.Context, category domain.Category, period domain.Period) ([]domain.TrendingArticle, error) {
	args := m.Called(ctx, category, period)
	articles, _ := args.Get(0).([]domain.TrendingArticle)
	return articles, args.Error(1)
}

func (m *mockProvider) Search(ctx context.Context, query string, page int) ([]domain.SearchArticle, error) {
	args := m.Called(ctx, query, page)
	articles, _ := args.Get(0).([]domain.SearchArticle)
	return articles, args.Error(1)
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

// runNext waits for one dispatched function and runs it
func (d *queueDispatcher) runNext(t *testing.T) {
	t.Helper()
	select {
	case fn := <-d.queue:
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a dispatched completion")
	}
}

// assertIdle fails if anything is dispatched within a short window
func (d *queueDispatcher) assertIdle(t *testing.T) {
	t.Helper()
	select {
	case <-d.queue:
		t.Fatal("unexpected dispatched completion")
	case <-time.After(50 * time.Millisecond):
	}
}

// mockLogger records log messages by level
type mockLogger struct {
	mu       sync.Mutex
	messages map[string][]string
}

func newMockLogger() *mockLogger {
	return &mockLogger{messages: make(map[string][]string)}
}

func (m *mockLogger) record(level, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages[level] = append(m.messages[level], msg)
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record("debug", msg) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.record("info", msg) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.record("warn", msg) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record("error", msg) }

func (m *mockLogger) logged(level string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.messages[level]...)
}
