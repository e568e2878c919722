package event

import (
	"context"
	"sync"
)

// Handler consumes one delivered event. Implementations must isolate their
// own failures; the bus never inspects the outcome of a delivery.
type Handler interface {
	Handle(ctx context.Context, e Event)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, e Event)

func (f HandlerFunc) Handle(ctx context.Context, e Event) { f(ctx, e) }

// Bus delivers typed events to registered handlers, at least once, with no
// ordering guarantee across or within entities. The production transport
// client implements this contract outside the sync layer.
type Bus interface {
	Subscribe(name string, h Handler)
	Publish(ctx context.Context, e Event)
}

// MemoryBus is an in-process Bus used for local runs and tests. Each
// delivery runs on its own goroutine, mirroring the one-task-per-event
// scheduling model of the real transport.
type MemoryBus struct {
	mu   sync.RWMutex
	subs map[string][]Handler
	wg   sync.WaitGroup
}

// NewMemoryBus creates an empty in-process bus.
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{subs: make(map[string][]Handler)}
}

// Subscribe registers a handler for the given event name. Multiple
// handlers per name each receive every published event.
func (b *MemoryBus) Subscribe(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[name] = append(b.subs[name], h)
}

// Publish delivers the event to every subscriber of its name. Delivery is
// asynchronous; events with no subscriber are dropped.
func (b *MemoryBus) Publish(ctx context.Context, e Event) {
	b.mu.RLock()
	handlers := b.subs[e.Name()]
	b.mu.RUnlock()

	for _, h := range handlers {
		b.wg.Add(1)
		go func(h Handler) {
			defer b.wg.Done()
			h.Handle(ctx, e)
		}(h)
	}
}

// Wait blocks until all in-flight deliveries complete. Used by tests and
// graceful shutdown.
func (b *MemoryBus) Wait() {
	b.wg.Wait()
}
