// ABOUTME: Dispatcher contract for serializing work onto the UI context
// ABOUTME: Observable state and image callbacks are only touched from dispatched functions

package interfaces

// Dispatcher schedules fn to run on the single UI execution context.
// Dispatch must not block and must preserve submission order.
type Dispatcher interface {
	Dispatch(fn func())
}

// DispatcherFunc adapts a plain function to the Dispatcher interface.
type DispatcherFunc func(fn func())

// Dispatch calls f(fn).
func (f DispatcherFunc) Dispatch(fn func()) {
	f(fn)
}

// Immediate runs every dispatched function on the caller's goroutine.
// Useful for tests and command line tools that have no UI loop.
var Immediate Dispatcher = DispatcherFunc(func(fn func()) { fn() })
