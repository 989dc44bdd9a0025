package animate

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
)

// Ticker calls tick at a fixed rate, like a display refresh.
type Ticker struct {
	stopper

	clock    clock.Clock
	interval time.Duration

	ready     chan struct{}
	readyOnce sync.Once
}

// TickerOption configures a Ticker.
type TickerOption func(*Ticker)

// WithClock replaces the wall clock, mostly for tests.
func WithClock(c clock.Clock) TickerOption {
	return func(t *Ticker) { t.clock = c }
}

// NewTicker returns a driver ticking fps times per second.
func NewTicker(fps int, opts ...TickerOption) (*Ticker, error) {
	if fps <= 0 {
		return nil, errors.Errorf("invalid tick rate: %d", fps)
	}
	t := &Ticker{
		stopper:  newStopper(),
		clock:    clock.New(),
		interval: time.Second / time.Duration(fps),
		ready:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Interval returns the time between ticks.
func (t *Ticker) Interval() time.Duration { return t.interval }

func (t *Ticker) Run(ctx context.Context, tick func() error) error {
	tk := t.clock.Ticker(t.interval)
	defer tk.Stop()
	t.readyOnce.Do(func() { close(t.ready) })

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.ch:
			return nil
		case <-tk.C:
			if t.stopped() {
				return nil
			}
			if err := tick(); err != nil {
				return err
			}
		}
	}
}
