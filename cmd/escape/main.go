package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"

	"github.com/lixenwraith/escape/audio"
	"github.com/lixenwraith/escape/config"
	"github.com/lixenwraith/escape/engine"
	"github.com/lixenwraith/escape/genetic"
	"github.com/lixenwraith/escape/history"
	"github.com/lixenwraith/escape/render"
	"github.com/lixenwraith/escape/resource"
	"github.com/lixenwraith/escape/status"
)

var (
	configFlag      = flag.String("config", "", "YAML config file layered over the built-in defaults")
	levelFlag       = flag.String("level", "", "Level file in text format (empty = generate)")
	seedFlag        = flag.Uint64("seed", 0, "Evolution seed (0 = config value, then random)")
	modeFlag        = flag.String("mode", "", "Turnover mode: selective, random (empty = config)")
	headlessFlag    = flag.Bool("headless", false, "Run without the terminal viewer")
	generationsFlag = flag.Int("generations", 0, "Headless: stop after N generations (0 = until interrupted)")
	storeFlag       = flag.String("store", "", "History backend: memory, sqlite (empty = config)")
	dbFlag          = flag.String("db", "", "SQLite history file (empty = config)")
	plotFlag        = flag.String("plot", "", "Write a fitness PNG on exit (empty = config)")
	debugFlag       = flag.Bool("debug", false, "Write debug log to logs/escape.log")
	soundFlag       = flag.Bool("sound", false, "Enable audio cues")
	dumpConfigFlag  = flag.String("dump-config", "", "Write the effective configuration to a YAML file and exit")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		log.Printf("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "escape: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

// applyFlags overrides config fields with flags that were set
func applyFlags(cfg *config.Config) error {
	if *levelFlag != "" {
		cfg.Level.Path = *levelFlag
	}
	if *seedFlag != 0 {
		cfg.Evolution.Seed = *seedFlag
	}
	if *modeFlag != "" {
		cfg.Evolution.Mode = *modeFlag
	}
	if *storeFlag != "" {
		cfg.History.Backend = *storeFlag
	}
	if *dbFlag != "" {
		cfg.History.Path = *dbFlag
	}
	if *plotFlag != "" {
		cfg.History.Plot = *plotFlag
	}
	if *soundFlag {
		cfg.Audio.Enabled = true
	}
	return cfg.Validate()
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if err := applyFlags(cfg); err != nil {
		return err
	}

	if *dumpConfigFlag != "" {
		return cfg.WriteYAML(*dumpConfigFlag)
	}

	level, err := loadLevel(cfg)
	if err != nil {
		return err
	}

	seed := cfg.Evolution.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Printf("level %dx%d, seed %d, population %d, frame budget %d",
		level.Width(), level.Height(), seed, cfg.Evolution.PopulationSize, cfg.Evolution.FrameBudget)

	rctx, err := resource.New(level, cfg.Tunables())
	if err != nil {
		return err
	}
	ctrl := engine.NewController(rctx, genetic.NewRand(seed), cfg.Mode())

	board := status.NewBoard()
	ctrl.OnGeneration(board.Publish)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := history.NewStore(cfg.History.Backend, cfg.History.Path)
	if err != nil {
		return err
	}
	if err := store.Init(ctx); err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer func() {
		if err := history.CloseIfSupported(store); err != nil {
			log.Printf("closing history: %v", err)
		}
	}()

	runRecord := history.NewRun(seed, cfg.Evolution.PopulationSize, cfg.Evolution.FrameBudget, cfg.Mode().String(), level.String())
	recorder, err := history.NewRecorder(ctx, store, runRecord)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	ctrl.OnGeneration(recorder.Record)
	log.Printf("run %s recording to %s history", recorder.RunID(), cfg.History.Backend)

	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			log.Printf("audio initialization failed: %v (continuing without audio)", err)
		} else {
			defer sm.Cleanup()
			ctrl.OnGeneration(sm.Cue)
		}
	}

	headless := *headlessFlag ||
		!(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))

	if headless {
		ctrl.OnGeneration(printReports(os.Stdout))
		err = runHeadless(ctx, ctrl, board, *generationsFlag)
	} else {
		err = runTerminal(ctx, cfg, ctrl, board)
	}
	if err != nil {
		return err
	}

	if err := recorder.Err(); err != nil {
		log.Printf("history incomplete: %v", err)
		fmt.Fprintf(os.Stderr, "escape: history incomplete: %v\n", err)
	}

	if cfg.History.Plot != "" {
		return writePlot(store, recorder.RunID(), cfg.History.Plot)
	}
	return nil
}

func runTerminal(ctx context.Context, cfg *config.Config, ctrl *engine.Controller, board *status.Board) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	settings := render.DefaultSettings()
	settings.Draw = cfg.Display.Draw
	settings.Multi = cfg.Display.Multi

	viewer := render.NewViewer(screen, ctrl, board, settings, cfg.Display.GamesPerRow)
	return runInteractive(ctx, screen, viewer, ctrl, board, cfg.Display)
}

// writePlot renders the recorded generations; the run context may already be cancelled
func writePlot(store history.Store, runID, path string) error {
	gens, ok, err := store.GetGenerations(context.Background(), runID)
	if err != nil {
		return fmt.Errorf("reading history for plot: %w", err)
	}
	if !ok {
		log.Printf("no finished generations, skipping plot")
		return nil
	}
	if err := history.PlotFitness(gens, "escape run "+runID, path); err != nil {
		return err
	}
	log.Printf("wrote fitness plot %s", path)
	return nil
}
