package animate

import (
	"context"
	"sync"
)

// Driver invokes a per-frame callback at its own cadence.
type Driver interface {
	// Run calls tick once per frame until Stop is called, ctx is done or
	// tick fails. It returns ctx.Err() on cancellation and tick's error on
	// failure.
	Run(ctx context.Context, tick func() error) error
	// Stop ends Run. It may be called more than once and from any goroutine.
	Stop()
}

type stopper struct {
	once sync.Once
	ch   chan struct{}
}

func newStopper() stopper {
	return stopper{ch: make(chan struct{})}
}

func (s *stopper) Stop() {
	s.once.Do(func() { close(s.ch) })
}

func (s *stopper) stopped() bool {
	select {
	case <-s.ch:
		return true
	default:
		return false
	}
}

// Limit stops d after n ticks. n <= 0 returns d unchanged.
func Limit(d Driver, n int) Driver {
	if n <= 0 {
		return d
	}
	return &limited{Driver: d, n: n}
}

type limited struct {
	Driver
	n int
}

func (l *limited) Run(ctx context.Context, tick func() error) error {
	count := 0
	return l.Driver.Run(ctx, func() error {
		if err := tick(); err != nil {
			return err
		}
		count++
		if count >= l.n {
			l.Driver.Stop()
		}
		return nil
	})
}
