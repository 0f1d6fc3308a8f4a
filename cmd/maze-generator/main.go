package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/escape/maze"
	"github.com/lixenwraith/escape/navigation"
	"github.com/lixenwraith/escape/parameter"
)

var (
	widthFlag       = flag.Int("width", parameter.MazeWidth, "Level width [odd preferred]")
	heightFlag      = flag.Int("height", parameter.MazeHeight, "Level height [odd preferred]")
	braidFlag       = flag.Float64("braid", parameter.MazeBraiding, "Braiding factor [0.0 - 1.0]")
	patrolsFlag     = flag.Int("patrols", parameter.MazePatrols, "Patrol hazards to place")
	spikesFlag      = flag.Int("spikes", parameter.MazeSpikes, "Spike hazards to place")
	seedFlag        = flag.Uint64("seed", 0, "Generator seed (0 = random)")
	outFlag         = flag.String("o", "", "Write the level to a file instead of stdout")
	interactiveFlag = flag.Bool("i", false, "Prompt for settings and preview levels in a loop")
)

func main() {
	flag.Parse()

	cfg := maze.GenConfig{
		Width:    *widthFlag,
		Height:   *heightFlag,
		Braiding: *braidFlag,
		Patrols:  *patrolsFlag,
		Spikes:   *spikesFlag,
		Seed:     *seedFlag,
	}

	if *interactiveFlag {
		interactive(bufio.NewReader(os.Stdin), os.Stdout, cfg)
		return
	}

	level, err := maze.Generate(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "maze-generator: %v\n", err)
		os.Exit(1)
	}

	out := io.Writer(os.Stdout)
	if *outFlag != "" {
		f, err := os.Create(*outFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "maze-generator: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := maze.Format(out, level); err != nil {
		fmt.Fprintf(os.Stderr, "maze-generator: %v\n", err)
		os.Exit(1)
	}
	if *outFlag != "" {
		describe(os.Stderr, level)
	}
}

func interactive(r *bufio.Reader, w io.Writer, def maze.GenConfig) {
	for {
		fmt.Fprintln(w, "\n=== ESCAPE LEVEL GENERATOR ===")

		cfg := def
		cfg.Width = getInt(r, w, fmt.Sprintf("Width [Odd prefered] (default %d): ", def.Width), def.Width)
		cfg.Height = getInt(r, w, fmt.Sprintf("Height [Odd prefered] (default %d): ", def.Height), def.Height)
		cfg.Braiding = getFloat(r, w, fmt.Sprintf("Braiding Factor [0.0 - 1.0] (default %.1f): ", def.Braiding), def.Braiding)
		cfg.Patrols = getInt(r, w, fmt.Sprintf("Patrols (default %d): ", def.Patrols), def.Patrols)
		cfg.Spikes = getInt(r, w, fmt.Sprintf("Spikes (default %d): ", def.Spikes), def.Spikes)

		fmt.Fprintln(w, "\nGenerating...")
		startT := time.Now()
		level, err := maze.Generate(cfg)
		dur := time.Since(startT)

		if err != nil {
			fmt.Fprintf(w, "Failed: %v\n", err)
		} else {
			fmt.Fprintf(w, "Done in %v\n", dur)
			describe(w, level)
			_ = maze.Format(w, level)
		}

		fmt.Fprint(w, "\nGenerate another? [Y/n]: ")
		cont, err := r.ReadString('\n')
		if err != nil || strings.ToLower(strings.TrimSpace(cont)) == "n" {
			return
		}
	}
}

// describe prints size and the shortest walks the population has to discover
func describe(w io.Writer, level *maze.Level) {
	width, height := level.Size()
	fmt.Fprintf(w, "Grid Dimensions: %dx%d, %d walls, %d hazards\n", width, height, level.WallCount(), len(level.Hazards()))

	fields := navigation.NewFields(level)
	toKey, okKey := fields.KeyDistance(level.Spawn())
	toDoor, okDoor := fields.DoorDistance(level.Key())
	if !okKey || !okDoor {
		fmt.Fprintln(w, "Status: Unsolvable (Isolated Key/Door)")
		return
	}
	// Fields count the source as 1
	fmt.Fprintf(w, "Spawn to key: %d steps, key to door: %d steps\n", toKey-1, toDoor-1)
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, w io.Writer, prompt string, def int) int {
	fmt.Fprint(w, prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getFloat(r *bufio.Reader, w io.Writer, prompt string, def float64) float64 {
	fmt.Fprint(w, prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	// Clamp
	return max(0.0, min(1.0, v))
}
