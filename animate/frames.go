package animate

import "context"

// Frames calls tick a fixed number of times back to back. It suits offline
// rendering where there is no display to pace against.
type Frames struct {
	stopper
	n int
}

// NewFrames returns a driver that renders n frames.
func NewFrames(n int) *Frames {
	return &Frames{stopper: newStopper(), n: n}
}

func (f *Frames) Run(ctx context.Context, tick func() error) error {
	for i := 0; i < f.n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if f.stopped() {
			return nil
		}
		if err := tick(); err != nil {
			return err
		}
	}
	return nil
}
