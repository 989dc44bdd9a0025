// sink.go
package main

import (
	"pointsphere/canvas"
	"pointsphere/config"
	"pointsphere/export"
)

// newSink returns where exported frames go, and a func flushing it once the
// last frame has been rendered.
func newSink(cfg config.Config) (canvas.FrameSink, func() error, error) {
	if cfg.Mode == config.ModePNG {
		seq, err := export.NewPNGSequence(cfg.Out)
		if err != nil {
			return nil, nil, err
		}
		return seq, func() error { return nil }, nil
	}

	g := export.NewGIF(cfg.FPS)
	return g, func() error { return g.WriteFile(cfg.Out) }, nil
}
