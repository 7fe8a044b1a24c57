// ABOUTME: Thumbnail cache with per-URL request deduplication and cancelable waiters
// ABOUTME: Decoded images are delivered on the UI context through the configured dispatcher

package imagecache

import (
	"context"
	"image"
	"sync"

	"github.com/google/uuid"

	"articles-app-core/core/interfaces"
	"articles-app-core/core/workers"
)

// Handle identifies one outstanding Request. The zero Handle is returned
// for cache hits and is never registered.
type Handle struct {
	id uuid.UUID
}

// IsZero reports whether h is the zero Handle
func (h Handle) IsZero() bool {
	return h.id == uuid.Nil
}

// String returns the handle's identifier
func (h Handle) String() string {
	return h.id.String()
}

// fetch is one in-flight download shared by every waiter for a URL
type fetch struct {
	url     string
	cancel  context.CancelFunc
	waiters map[Handle]struct{}
}

type waiter struct {
	fetch    *fetch
	callback func(image.Image)
}

// Cache loads thumbnails once per URL and keeps the decoded result.
//
// Requires deps.HTTPClient and deps.Images. deps.Dispatcher defaults to
// interfaces.Immediate and deps.Logger may be nil.
type Cache struct {
	deps interfaces.Dependencies
	pool *workers.Pool

	mu       sync.Mutex
	inflight map[string]*fetch
	pending  map[Handle]*waiter
	closed   bool
}

// New creates an image cache that runs downloads on pool
func New(deps interfaces.Dependencies, pool *workers.Pool) *Cache {
	if deps.Dispatcher == nil {
		deps.Dispatcher = interfaces.Immediate
	}
	return &Cache{
		deps:     deps,
		pool:     pool,
		inflight: make(map[string]*fetch),
		pending:  make(map[Handle]*waiter),
	}
}

// Request delivers the image for url to callback. A cached image is
// delivered before Request returns and the zero Handle is returned.
// Otherwise the image, or nil on any failure, is delivered later through
// the dispatcher unless the returned Handle is cancelled first.
func (c *Cache) Request(url string, callback func(image.Image)) Handle {
	if img, ok := c.deps.Images.Get(url); ok {
		callback(img)
		return Handle{}
	}

	c.mu.Lock()
	// finish stores the image before it drops the in-flight record, so a
	// fetch that completed since the check above is visible here.
	if img, ok := c.deps.Images.Get(url); ok {
		c.mu.Unlock()
		callback(img)
		return Handle{}
	}
	if c.closed {
		c.mu.Unlock()
		c.deps.Dispatcher.Dispatch(func() { callback(nil) })
		return Handle{}
	}

	h := Handle{id: uuid.New()}

	if f, ok := c.inflight[url]; ok {
		f.waiters[h] = struct{}{}
		c.pending[h] = &waiter{fetch: f, callback: callback}
		waiters := len(f.waiters)
		c.mu.Unlock()
		c.debug("Joined in-flight image fetch", map[string]interface{}{"url": url, "waiters": waiters})
		return h
	}

	ctx, cancel := context.WithCancel(context.Background())
	f := &fetch{
		url:     url,
		cancel:  cancel,
		waiters: map[Handle]struct{}{h: {}},
	}
	c.inflight[url] = f
	c.pending[h] = &waiter{fetch: f, callback: callback}
	c.mu.Unlock()

	err := c.pool.Submit(&workers.Job{
		Context: ctx,
		Run: func(ctx context.Context) {
			c.run(ctx, f)
		},
	})
	if err != nil {
		c.debug("Image fetch not scheduled", map[string]interface{}{"url": url, "error": err.Error()})
		c.finish(f, nil)
	}

	return h
}

// Cancel stops delivery to h. When no other waiter shares the fetch, the
// download is cancelled and a later Request starts a new one.
// Unknown, zero and already delivered handles are ignored.
func (c *Cache) Cancel(h Handle) {
	if h.IsZero() {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	w, ok := c.pending[h]
	if !ok {
		return
	}
	delete(c.pending, h)

	f := w.fetch
	delete(f.waiters, h)
	if len(f.waiters) == 0 && c.inflight[f.url] == f {
		f.cancel()
		delete(c.inflight, f.url)
		c.debug("Cancelled image fetch", map[string]interface{}{"url": f.url})
	}
}

// Len returns the number of cached images
func (c *Cache) Len() int {
	return c.deps.Images.Len()
}

// InFlight returns the number of downloads in progress
func (c *Cache) InFlight() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.inflight)
}

// Close cancels every download. Nothing is delivered after Close returns,
// and later Requests that miss the cache receive nil.
func (c *Cache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	for _, f := range c.inflight {
		f.cancel()
	}
	c.inflight = make(map[string]*fetch)
	c.pending = make(map[Handle]*waiter)
}

// run is executed on a pool worker
func (c *Cache) run(ctx context.Context, f *fetch) {
	img, err := c.download(ctx, f.url)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		c.debug("Image fetch failed", map[string]interface{}{"url": f.url, "error": err.Error()})
		img = nil
	}
	c.finish(f, img)
}

// finish releases the fetch record, stores a decoded image and schedules
// delivery to every waiter still registered on f
func (c *Cache) finish(f *fetch, img image.Image) {
	c.mu.Lock()
	if c.inflight[f.url] != f {
		c.mu.Unlock()
		return
	}
	delete(c.inflight, f.url)
	f.cancel()

	if img != nil {
		c.deps.Images.Set(f.url, img)
	}

	handles := make([]Handle, 0, len(f.waiters))
	for h := range f.waiters {
		handles = append(handles, h)
	}
	c.mu.Unlock()

	for _, h := range handles {
		h := h
		c.deps.Dispatcher.Dispatch(func() {
			c.deliver(h, img)
		})
	}
}

// deliver runs on the UI context. A handle cancelled after the fetch
// finished is no longer pending and receives nothing.
func (c *Cache) deliver(h Handle, img image.Image) {
	c.mu.Lock()
	w, ok := c.pending[h]
	if ok {
		delete(c.pending, h)
	}
	c.mu.Unlock()

	if ok {
		w.callback(img)
	}
}

func (c *Cache) debug(msg string, fields map[string]interface{}) {
	if c.deps.Logger != nil {
		c.deps.Logger.Debug(msg, fields)
	}
}
