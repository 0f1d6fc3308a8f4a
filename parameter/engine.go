package parameter

import "time"

// Simulation loop & viewer timing
const (
	// FrameUpdateInterval is the interactive tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// SlowModeDelay is added after every tick while slow mode is on
	SlowModeDelay = 200 * time.Millisecond

	// FrameSkipTicks is the number of extra ticks run per frame while frame skip is on
	FrameSkipTicks = 10

	// GamesPerRow is the number of candidates drawn per row in multi view
	GamesPerRow = 35

	// GameGridPadding is the gap in cells between games in multi view
	GameGridPadding = 1

	// EventChannelSize is the input event buffer between poller and loop
	EventChannelSize = 256
)

// Generation counters
const (
	// FirstGeneration is the index shown for the initial population
	FirstGeneration = 1
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "escape.log"

	// MaxLogSize triggers rotation of the debug log on startup
	MaxLogSize = 10 * 1024 * 1024
)

// History
const (
	// HistoryBackend is the default run history store
	HistoryBackend = "memory"

	// HistoryPath is the default SQLite file
	HistoryPath = "escape.db"
)
