package notify

import (
	"context"
	"time"
)

// Change announces that a persisted key was written or removed. The payload
// is advisory only — consumers must re-read authoritative state from storage
// rather than trusting the signal.
type Change struct {
	Key string    `json:"key"`
	At  time.Time `json:"at"`
}

// Notifier fans key-change signals out to every subscriber sharing the
// store. Delivery is asynchronous relative to the writer; per-writer order
// is preserved, signals may coalesce under backpressure.
type Notifier interface {
	Announce(key string)
	Subscribe(ctx context.Context, key string) (<-chan Change, error)
	SubscribeAll(ctx context.Context) (<-chan Change, error)
	Close() error
}

// Nop discards announcements and never delivers. Useful for tests that do
// not observe change propagation.
type Nop struct{}

func (Nop) Announce(string) {}

func (Nop) Subscribe(context.Context, string) (<-chan Change, error) {
	return make(chan Change), nil
}

func (Nop) SubscribeAll(context.Context) (<-chan Change, error) {
	return make(chan Change), nil
}

func (Nop) Close() error { return nil }
