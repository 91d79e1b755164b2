package input

import (
	"sort"
	"sync"
)

// Handler receives debounced key events.
type Handler func(DebouncedInput)

// Dispatcher fans key events out to the handlers currently subscribed.
// It replaces a host-wide key listener: each game session subscribes when
// it starts and must call the returned function when it ends.
type Dispatcher struct {
	mu       sync.Mutex
	next     int
	handlers map[int]Handler
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[int]Handler)}
}

// Subscribe registers h and returns a function that removes it.
// Calling the returned function more than once is a no-op.
func (d *Dispatcher) Subscribe(h Handler) (unsubscribe func()) {
	d.mu.Lock()
	id := d.next
	d.next++
	d.handlers[id] = h
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			delete(d.handlers, id)
			d.mu.Unlock()
		})
	}
}

// Dispatch debounces raw and delivers it to every subscriber in
// subscription order. It returns the number of handlers called.
func (d *Dispatcher) Dispatch(raw RawInput) int {
	ev := NewDebouncedInput(raw)

	d.mu.Lock()
	ids := make([]int, 0, len(d.handlers))
	for id := range d.handlers {
		ids = append(ids, id)
	}
	handlers := make([]Handler, 0, len(ids))
	sort.Ints(ids)
	for _, id := range ids {
		handlers = append(handlers, d.handlers[id])
	}
	d.mu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
	return len(handlers)
}

// Len returns the number of active subscriptions
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.handlers)
}
