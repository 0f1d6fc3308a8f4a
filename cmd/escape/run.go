package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/escape/config"
	"github.com/lixenwraith/escape/engine"
	"github.com/lixenwraith/escape/maze"
	"github.com/lixenwraith/escape/parameter"
	"github.com/lixenwraith/escape/render"
	"github.com/lixenwraith/escape/status"
)

// loadLevel parses the configured level file or generates one
func loadLevel(cfg *config.Config) (*maze.Level, error) {
	if cfg.Level.Path == "" {
		level, err := maze.Generate(cfg.GenConfig())
		if err != nil {
			return nil, fmt.Errorf("generating level: %w", err)
		}
		return level, nil
	}

	f, err := os.Open(cfg.Level.Path)
	if err != nil {
		return nil, fmt.Errorf("opening level: %w", err)
	}
	defer f.Close()

	level, err := maze.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("loading level %s: %w", cfg.Level.Path, err)
	}
	return level, nil
}

// generationLine formats one headless progress line
func generationLine(r engine.Report) string {
	s := r.Summary
	line := fmt.Sprintf("gen %s  best %s  mean %s  done %s/%s  key %s  dead %s  div %.2f  %s",
		humanize.Comma(int64(r.Generation)),
		humanize.CommafWithDigits(s.BestScore, 1),
		humanize.CommafWithDigits(s.AverageScore, 1),
		humanize.Comma(int64(s.Completed)),
		humanize.Comma(int64(s.Size)),
		humanize.Comma(int64(s.KeyHolders)),
		humanize.Comma(int64(s.Dead)),
		s.Diversity,
		r.Elapsed.Round(time.Millisecond),
	)
	if r.FirstSolve {
		line += "  SOLVED"
	}
	return line
}

// printReports returns a controller hook writing one line per generation
func printReports(w io.Writer) func(engine.Report) {
	return func(r engine.Report) {
		fmt.Fprintln(w, generationLine(r))
	}
}

// runHeadless ticks as fast as possible until ctx ends or generations have finished
// generations <= 0 runs until cancelled
func runHeadless(ctx context.Context, ctrl *engine.Controller, board *status.Board, generations int) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		stats, err := ctrl.Tick()
		if err != nil {
			return err
		}
		board.SetStats(stats)

		if generations > 0 && stats.Generation-parameter.FirstGeneration >= generations {
			return nil
		}
	}
}

// runInteractive drives the controller from the frame ticker and draws through the viewer
// Input is polled on its own goroutine and applied on this one
func runInteractive(ctx context.Context, screen tcell.Screen, viewer *render.Viewer, ctrl *engine.Controller, board *status.Board, display config.DisplayConfig) error {
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mESCAPE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	eventChan := make(chan tcell.Event, parameter.EventChannelSize)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	board.SetControls(ctrl)
	timer := time.NewTimer(display.FrameInterval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventChan:
			if viewer.HandleEvent(ev) == render.ActionQuit {
				return nil
			}
			board.SetStats(ctrl.Stats())
			viewer.Draw()

		case <-timer.C:
			settings := viewer.Settings()

			ticks := 1
			if settings.FrameSkip {
				ticks = display.FrameSkip
			}
			for i := 0; i < ticks; i++ {
				stats, err := ctrl.Tick()
				if err != nil {
					log.Printf("tick failed: %v", err)
					return err
				}
				board.SetStats(stats)
			}
			viewer.Draw()

			next := display.FrameInterval
			if settings.Slow {
				next = display.SlowDelay
			}
			timer.Reset(next)
		}
	}
}
