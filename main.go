// main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"pointsphere/animate"
	"pointsphere/canvas"
	"pointsphere/config"
	"pointsphere/logging"
	"pointsphere/sphere"
)

func main() {
	cfg := config.Default()
	mode := flag.String("mode", string(cfg.Mode), "Surface to render on: term, window, gif or png")
	flag.Float64Var(&cfg.Radius, "radius", cfg.Radius, "Sphere radius")
	flag.IntVar(&cfg.FPS, "fps", cfg.FPS, "Frames per second")
	flag.IntVar(&cfg.Frames, "frames", cfg.Frames, "Stop after N frames (0 = run until quit; export default 200 gif, 1 png)")
	flag.StringVar(&cfg.Out, "out", cfg.Out, "Output file (gif) or directory (png)")
	flag.BoolVar(&cfg.HUD, "hud", cfg.HUD, "Show a status line")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	flag.Parse()

	cfg.Mode = config.Mode(*mode)
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	logger, err := logging.NewLogger("pointsphere", cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.SugaredLogger) error {
	s, err := sphere.New(cfg.Radius)
	if err != nil {
		return err
	}

	switch cfg.Mode {
	case config.ModeTerminal:
		return runTerminal(ctx, cfg, s, logger)
	case config.ModeWindow:
		return runWindow(ctx, cfg, s, logger)
	default:
		return runExport(ctx, cfg, s, logger)
	}
}

func runTerminal(ctx context.Context, cfg config.Config, s *sphere.PointSphere, logger *zap.SugaredLogger) (err error) {
	term, err := canvas.OpenTerminal(float64(cfg.Width), float64(cfg.Height))
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, term.Close())
	}()

	ticker, err := animate.NewTicker(cfg.FPS)
	if err != nil {
		return err
	}
	go term.PollQuit(ticker.Stop)

	// stderr shares the tty with the screen
	quiet := logger.Desugar().WithOptions(zap.IncreaseLevel(zap.WarnLevel)).Sugar()
	a := animate.NewAnimator(s, term, quiet)
	a.SetHUD(cfg.HUD)
	return a.Run(ctx, animate.Limit(ticker, cfg.Frames))
}

func runWindow(ctx context.Context, cfg config.Config, s *sphere.PointSphere, logger *zap.SugaredLogger) error {
	win := canvas.NewWindow(cfg.Width, cfg.Height)
	driver := animate.NewWindowDriver(win, "Point sphere", cfg.FPS)

	a := animate.NewAnimator(s, win, logger)
	a.SetHUD(cfg.HUD)
	return a.Run(ctx, animate.Limit(driver, cfg.Frames))
}

func runExport(ctx context.Context, cfg config.Config, s *sphere.PointSphere, logger *zap.SugaredLogger) error {
	img := canvas.NewImage(cfg.Width, cfg.Height)
	sink, finish, err := newSink(cfg)
	if err != nil {
		return err
	}
	img.SetSink(sink)

	a := animate.NewAnimator(s, img, logger)
	a.SetHUD(cfg.HUD)
	if err := a.Run(ctx, animate.NewFrames(cfg.Frames)); err != nil {
		return err
	}
	if err := finish(); err != nil {
		return err
	}
	logger.Infow("frames exported", "mode", cfg.Mode, "frames", a.Frames(), "out", cfg.Out)
	return nil
}
