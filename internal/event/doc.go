// Package event is the storefront's publish/subscribe bus.
//
// Every client component talks to the others only through an Emitter: views emit
// user actions, the application state emits change notifications, and the
// presenter subscribes to both.
//
// # Keys
//
// A subscription is keyed either by an exact event name or by a regular
// expression tested against emitted names:
//
//	bus.On("basket:changed", fn)
//	bus.OnPattern(regexp.MustCompile(`^order\..*:change$`), fn)
//	bus.OnAll(fn) // receives Envelope{Name, Data} for every event
//
// # Dispatch
//
// Emit is synchronous. Matching handlers run in the order they subscribed, on the
// caller's goroutine, before Emit returns. There is no deduplication, priority or
// buffering. A handler that panics unwinds through Emit; a handler that emits
// dispatches the nested event immediately.
package event
