package event

import (
	"regexp"
	"sync"
	"sync/atomic"
)

// Handler receives the payload of a matching event.
type Handler func(data any)

// Envelope is what OnAll handlers receive.
type Envelope struct {
	Name string
	Data any
}

// Subscription identifies a registered handler for Off.
type Subscription struct {
	id  uint64
	key string
}

// Key is the event name or pattern the subscription listens to.
func (s Subscription) Key() string {
	return s.key
}

// Events is the surface components depend on.
type Events interface {
	On(name string, handler Handler) Subscription
	OnPattern(pattern *regexp.Regexp, handler Handler) Subscription
	Emit(name string, data any)
	Trigger(name string, context map[string]any) func(data map[string]any)
}

const allKey = "*"

type subscriber struct {
	id      uint64
	name    string
	pattern *regexp.Regexp
	all     bool
	handler Handler
}

func (s *subscriber) matches(name string) bool {
	switch {
	case s.all:
		return true
	case s.pattern != nil:
		return s.pattern.MatchString(name)
	default:
		return s.name == name
	}
}

// Emitter is the default Events implementation.
type Emitter struct {
	mu     sync.RWMutex
	subs   []*subscriber
	nextID atomic.Uint64
}

func NewEmitter() *Emitter {
	return &Emitter{}
}

// On subscribes handler to the exact event name.
func (e *Emitter) On(name string, handler Handler) Subscription {
	if name == allKey {
		return e.OnAll(handler)
	}
	return e.add(&subscriber{name: name, handler: handler})
}

// OnPattern subscribes handler to every event whose name matches pattern.
func (e *Emitter) OnPattern(pattern *regexp.Regexp, handler Handler) Subscription {
	if pattern == nil {
		panic(ErrNilHandler)
	}
	return e.add(&subscriber{name: pattern.String(), pattern: pattern, handler: handler})
}

// OnAll subscribes handler to every event; it receives an Envelope.
func (e *Emitter) OnAll(handler Handler) Subscription {
	return e.add(&subscriber{name: allKey, all: true, handler: handler})
}

func (e *Emitter) add(s *subscriber) Subscription {
	if s.handler == nil {
		panic(ErrNilHandler)
	}
	s.id = e.nextID.Add(1)

	e.mu.Lock()
	e.subs = append(e.subs, s)
	e.mu.Unlock()

	return Subscription{id: s.id, key: s.name}
}

// Off removes a single subscription.
func (e *Emitter) Off(sub Subscription) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, s := range e.subs {
		if s.id == sub.id {
			e.subs = append(e.subs[:i:i], e.subs[i+1:]...)
			return nil
		}
	}
	return ErrSubscriptionNotFound
}

// OffAll drops every subscription.
func (e *Emitter) OffAll() {
	e.mu.Lock()
	e.subs = nil
	e.mu.Unlock()
}

// Len reports the number of live subscriptions.
func (e *Emitter) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.subs)
}

// Emit delivers data to every matching handler in subscription order.
// Handlers added while an emit is in flight only see later events.
func (e *Emitter) Emit(name string, data any) {
	if name == "" {
		panic(ErrInvalidEvent)
	}

	e.mu.RLock()
	snapshot := make([]*subscriber, len(e.subs))
	copy(snapshot, e.subs)
	e.mu.RUnlock()

	for _, s := range snapshot {
		if !s.matches(name) {
			continue
		}
		if s.all {
			s.handler(Envelope{Name: name, Data: data})
			continue
		}
		s.handler(data)
	}
}

// Trigger returns a function that emits name with its argument merged with
// context. Keys from context win over keys from the argument.
func (e *Emitter) Trigger(name string, context map[string]any) func(data map[string]any) {
	return func(data map[string]any) {
		merged := make(map[string]any, len(data)+len(context))
		for k, v := range data {
			merged[k] = v
		}
		for k, v := range context {
			merged[k] = v
		}
		e.Emit(name, merged)
	}
}

// Handle subscribes a typed handler to name. Payloads of another type are ignored.
func Handle[T any](events Events, name string, fn func(T)) Subscription {
	return events.On(name, func(data any) {
		if v, ok := data.(T); ok {
			fn(v)
		}
	})
}

// HandlePattern is Handle for pattern subscriptions.
func HandlePattern[T any](events Events, pattern *regexp.Regexp, fn func(T)) Subscription {
	return events.OnPattern(pattern, func(data any) {
		if v, ok := data.(T); ok {
			fn(v)
		}
	})
}
