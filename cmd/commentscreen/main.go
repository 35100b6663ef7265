// commentscreen — scrolling comments over everything on screen.
//
// Usage:
//
//	commentscreen [-config overlay.yaml] [-surface window|terminal] [-wrap loop|one-shot] [-demo] [-verbose] [-quiet]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/hammamikhairi/commentscreen/internal/config"
	"github.com/hammamikhairi/commentscreen/internal/cue"
	"github.com/hammamikhairi/commentscreen/internal/display"
	"github.com/hammamikhairi/commentscreen/internal/domain"
	"github.com/hammamikhairi/commentscreen/internal/engine"
	"github.com/hammamikhairi/commentscreen/internal/logger"
	"github.com/hammamikhairi/commentscreen/internal/timer"
	"github.com/hammamikhairi/commentscreen/internal/window"
)

// surface is a domain.Surface that owns a blocking UI loop.
type surface interface {
	domain.Surface
	Run() error
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	configPath := flag.String("config", "commentscreen.yaml", "YAML settings file (missing file is ignored)")
	surfaceKind := flag.String("surface", "", "where to draw: window or terminal (overrides config)")
	wrap := flag.String("wrap", "", "wrap policy: loop or one-shot (overrides config)")
	demo := flag.Bool("demo", false, "inject sample comments after start")
	demoDelay := flag.Duration("demo-delay", time.Second, "delay between sample comments")
	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".commentscreen-logs/commentscreen.log", "file to write logs to (use \"stderr\" to log to console)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *surfaceKind != "" {
		cfg.Surface = *surfaceKind
	}
	if *wrap != "" {
		cfg.WrapPolicy = *wrap
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Logs go to a file by default so the terminal preview stays clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		if dir := filepath.Dir(*logFile); dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}
	// Third-party libraries that use the standard logger end up in the
	// same place.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logger.ParseLevel(*verbose, *quiet), logOut)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var arrival domain.Cue = cue.Silent{}
	if cfg.ArrivalChime {
		chime, err := cue.NewChime(log.Named("cue"), cue.DefaultTone)
		if err != nil {
			log.Warn("audio unavailable, arrival chime disabled: %v", err)
		} else {
			defer chime.Close()
			arrival = chime
		}
	}

	var (
		eng    *engine.Engine
		out    surface
		region domain.Rect
	)

	switch cfg.Surface {
	case config.SurfaceTerminal:
		out = display.New(log.Named("display"),
			display.WithSubmit(func(text string) {
				if _, err := eng.AddComment(text, domain.Style{}); err != nil {
					log.Warn("adding typed comment: %v", err)
				}
			}),
			display.WithQuit(stop),
			display.WithFrameInterval(cfg.TickInterval()),
		)
		region = cfg.PreviewRegion()
	default:
		w := window.New(log.Named("window"))
		region, err = w.ScreenBounds()
		if err != nil {
			return fmt.Errorf("finding screen: %w", err)
		}
		out = w
		// The overlay is click-through and never focused; quitting is by
		// signal from the launching terminal.
		fmt.Fprintln(os.Stderr, "commentscreen: overlay running, press Ctrl+C to quit")
	}

	ticks := timer.New(log.Named("ticker"), timer.WithInterval(cfg.TickInterval()))
	eng = engine.New(out, ticks, log.Named("engine"),
		engine.WithLaneSize(cfg.LaneWidth, cfg.LaneHeight),
		engine.WithScrollSpeed(cfg.ScrollSpeed),
		engine.WithWrapPolicy(cfg.Wrap()),
		engine.WithDefaultStyle(cfg.Style()),
		engine.WithSurfaceOptions(cfg.SurfaceOptions()),
		engine.WithCue(arrival),
	)

	if err := eng.Present(region); err != nil {
		return fmt.Errorf("presenting overlay: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	// Quit: signal, preview quit key, or the UI loop ending.
	g.Go(func() error {
		<-gctx.Done()
		return eng.Shutdown()
	})

	if *demo {
		g.Go(func() error {
			return injectSamples(gctx, eng, *demoDelay)
		})
	}

	// The UI loop must own the main goroutine.
	runErr := out.Run()
	stop()

	if err := g.Wait(); err != nil {
		log.Error("shutdown: %v", err)
		return err
	}
	if runErr != nil {
		return fmt.Errorf("surface: %w", runErr)
	}
	log.Info("bye")
	return nil
}

var sampleComments = []string{
	"Hello, World!",
	"Comment 1",
	"Comment 2",
	"Comment 3",
	"こんにちは",
}

// injectSamples adds the sample comments one by one.
func injectSamples(ctx context.Context, eng *engine.Engine, delay time.Duration) error {
	for _, text := range sampleComments {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delay):
		}
		if _, err := eng.AddComment(text, domain.Style{}); err != nil {
			if errors.Is(err, domain.ErrNotPresented) {
				return nil
			}
			return fmt.Errorf("adding sample comment: %w", err)
		}
	}
	return nil
}
