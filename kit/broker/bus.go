package broker

import (
	"context"
	"fmt"
	"sync"

	"mvola/kit/observability"
)

type Event interface {
	Name() string
}

type Publisher interface {
	Publish(ctx context.Context, evt Event) []error
}

type Handler func(ctx context.Context, evt Event) error

// Bus is a synchronous in-process fan-out. Subscribers run in subscription
// order on the publisher's goroutine; a panicking subscriber never takes
// the publisher down.
type Bus struct {
	logger *observability.Logger

	mu       sync.RWMutex
	handlers map[string][]Handler
}

func New(logger *observability.Logger) *Bus {
	return &Bus{logger: logger, handlers: make(map[string][]Handler)}
}

func (b *Bus) Subscribe(eventName string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventName] = append(b.handlers[eventName], h)
}

func (b *Bus) Publish(ctx context.Context, evt Event) []error {
	b.mu.RLock()
	hs := append([]Handler(nil), b.handlers[evt.Name()]...)
	b.mu.RUnlock()

	var errs []error
	for i, h := range hs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					if b.logger != nil {
						b.logger.Error("broker handler panic", "event", evt.Name(), "handler_index", i, "panic", fmt.Sprint(r))
					}
					errs = append(errs, fmt.Errorf("handler %d panicked: %v", i, r))
				}
			}()
			if err := h(ctx, evt); err != nil {
				if b.logger != nil {
					b.logger.Error("broker handler error", "event", evt.Name(), "handler_index", i, "error", err.Error())
				}
				errs = append(errs, err)
			}
		}()
	}
	return errs
}

func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = make(map[string][]Handler)
}
