// ABOUTME: Feed controller drives the trending and search article lists
// ABOUTME: Owns the observable feed state and guards it against stale fetch completions

package feed

import (
	"context"
	"strings"
	"sync"

	"articles-app-core/core/domain"
	coreerrors "articles-app-core/core/errors"
	"articles-app-core/core/interfaces"
)

// Controller holds one feed, either trending or search, and refetches it
// whenever its configuration changes.
//
// Configuration calls are expected on the UI context. Fetches run on their
// own goroutine and complete through deps.Dispatcher, so observers are only
// ever called from the UI context.
type Controller struct {
	deps interfaces.Dependencies

	mu        sync.Mutex
	state     domain.FeedState
	period    domain.Period
	epoch     uint64
	cancel    context.CancelFunc
	observers map[int]func(domain.FeedState)
	nextID    int
	closed    bool
	onClose   []func()
}

// NewController creates a controller in the Idle phase with no mode.
// deps.Provider and deps.Dispatcher are required; a nil Logger is allowed.
func NewController(deps interfaces.Dependencies, defaultPeriod domain.Period) *Controller {
	if !defaultPeriod.IsValid() {
		defaultPeriod = domain.DefaultPeriod
	}
	if deps.Dispatcher == nil {
		deps.Dispatcher = interfaces.Immediate
	}
	return &Controller{
		deps:      deps,
		period:    defaultPeriod,
		observers: make(map[int]func(domain.FeedState)),
	}
}

// ConfigureTrending switches to the trending list for category using the
// currently selected period and starts a fetch.
func (c *Controller) ConfigureTrending(category domain.Category) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.state.Mode = domain.Mode{
		Kind:     domain.ModeTrending,
		Category: category,
		Period:   c.period,
	}
	c.mu.Unlock()

	c.fetch()
}

// ConfigureSearch switches to search results for query and starts a fetch
// of the first page. A blank query leaves the controller untouched.
func (c *Controller) ConfigureSearch(query string) {
	query = strings.TrimSpace(query)
	if !domain.IsSearchable(query) {
		c.debug("Ignoring blank search query", nil)
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.state.Mode = domain.Mode{
		Kind:  domain.ModeSearch,
		Query: query,
	}
	c.mu.Unlock()

	c.fetch()
}

// ChangePeriod selects a new time window and refetches the trending list.
// It has no effect outside trending mode.
func (c *Controller) ChangePeriod(period domain.Period) {
	c.mu.Lock()
	if c.closed || c.state.Mode.Kind != domain.ModeTrending {
		kind := c.state.Mode.Kind
		c.mu.Unlock()
		c.debug("Ignoring period change", map[string]interface{}{
			"mode":   kind.String(),
			"period": int(period),
		})
		return
	}
	c.period = period
	c.state.Mode.Period = period
	c.mu.Unlock()

	c.fetch()
}

// ItemCount returns the number of items in the active list
func (c *Controller) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.state.Items)
}

// SelectedPeriod returns the period used for the next trending fetch
func (c *Controller) SelectedPeriod() domain.Period {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.period
}

// State returns a snapshot of the current feed
func (c *Controller) State() domain.FeedState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Reset clears items, error and loading flag. The mode is kept, and any
// fetch still in flight is invalidated so it cannot repopulate the feed.
func (c *Controller) Reset() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.invalidateLocked()
	c.state.Items = nil
	c.state.LastError = ""
	c.state.IsLoading = false
	c.state.Phase = domain.PhaseIdle
	snapshot := c.state.Clone()
	c.mu.Unlock()

	c.notify(snapshot)
}

// Subscribe registers fn to receive a snapshot after every state change.
// The returned function removes the subscription.
func (c *Controller) Subscribe(fn func(domain.FeedState)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return func() {}
	}

	id := c.nextID
	c.nextID++
	c.observers[id] = fn

	return func() {
		c.mu.Lock()
		delete(c.observers, id)
		c.mu.Unlock()
	}
}

// OnClose registers fn to run once when the controller is closed. On an
// already closed controller fn runs immediately.
func (c *Controller) OnClose(fn func()) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		fn()
		return
	}
	c.onClose = append(c.onClose, fn)
	c.mu.Unlock()
}

// Close cancels any in-flight fetch and drops all observers.
// Completions arriving afterwards are ignored. Close is idempotent.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.invalidateLocked()
	c.observers = make(map[int]func(domain.FeedState))
	hooks := c.onClose
	c.onClose = nil
	c.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}

// fetch moves the feed to Loading and asks the provider for the active mode
func (c *Controller) fetch() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	c.invalidateLocked()
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	epoch := c.epoch

	c.state.IsLoading = true
	c.state.LastError = ""
	c.state.Items = nil
	c.state.Phase = domain.PhaseLoading
	mode := c.state.Mode
	snapshot := c.state.Clone()
	c.mu.Unlock()

	c.info("Fetching articles", modeFields(mode))
	c.notify(snapshot)

	go func() {
		items, err := c.load(ctx, mode)
		c.deps.Dispatcher.Dispatch(func() {
			c.complete(epoch, mode, items, err)
		})
	}()
}

// load performs the provider call for mode
func (c *Controller) load(ctx context.Context, mode domain.Mode) ([]domain.Article, error) {
	switch mode.Kind {
	case domain.ModeTrending:
		articles, err := c.deps.Provider.FetchTrending(ctx, mode.Category, mode.Period)
		if err != nil {
			return nil, &coreerrors.FetchError{Op: "trending", Err: err}
		}
		return domain.TrendingItems(articles), nil
	case domain.ModeSearch:
		articles, err := c.deps.Provider.Search(ctx, mode.Query, 0)
		if err != nil {
			return nil, &coreerrors.FetchError{Op: "search", Err: err}
		}
		return domain.SearchItems(articles), nil
	default:
		return nil, &coreerrors.FetchError{Op: mode.Kind.String()}
	}
}

// complete applies a fetch result if it still belongs to the latest fetch
func (c *Controller) complete(epoch uint64, mode domain.Mode, items []domain.Article, err error) {
	c.mu.Lock()
	if c.closed || epoch != c.epoch {
		c.mu.Unlock()
		fields := modeFields(mode)
		fields["epoch"] = epoch
		c.debug("Dropping stale fetch result", fields)
		return
	}

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	c.state.IsLoading = false
	if err != nil {
		c.state.Items = nil
		c.state.LastError = coreerrors.Message(err)
		c.state.Phase = domain.PhaseFailed
	} else {
		c.state.Items = items
		c.state.LastError = ""
		c.state.Phase = domain.PhaseLoaded
	}
	snapshot := c.state.Clone()
	c.mu.Unlock()

	fields := modeFields(mode)
	if err != nil {
		fields["error"] = err.Error()
		c.warn("Fetch failed", fields)
	} else {
		fields["items"] = len(items)
		c.info("Fetch completed", fields)
	}

	c.notify(snapshot)
}

// invalidateLocked cancels the current fetch and bumps the epoch.
// Callers must hold c.mu.
func (c *Controller) invalidateLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.epoch++
}

func (c *Controller) notify(snapshot domain.FeedState) {
	c.mu.Lock()
	observers := make([]func(domain.FeedState), 0, len(c.observers))
	for _, fn := range c.observers {
		observers = append(observers, fn)
	}
	c.mu.Unlock()

	for _, fn := range observers {
		fn(snapshot)
	}
}

func modeFields(mode domain.Mode) map[string]interface{} {
	fields := map[string]interface{}{"mode": mode.Kind.String()}
	switch mode.Kind {
	case domain.ModeTrending:
		fields["category"] = string(mode.Category)
		fields["period"] = int(mode.Period)
	case domain.ModeSearch:
		fields["query"] = mode.Query
	}
	return fields
}

func (c *Controller) debug(msg string, fields map[string]interface{}) {
	if c.deps.Logger != nil {
		c.deps.Logger.Debug(msg, fields)
	}
}

func (c *Controller) info(msg string, fields map[string]interface{}) {
	if c.deps.Logger != nil {
		c.deps.Logger.Info(msg, fields)
	}
}

func (c *Controller) warn(msg string, fields map[string]interface{}) {
	if c.deps.Logger != nil {
		c.deps.Logger.Warn(msg, fields)
	}
}
