package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions for the maze and candidates
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbWall       = tcell.NewRGBColor(86, 95, 137)   // Muted slate
	RgbFloor      = tcell.NewRGBColor(41, 46, 66)    // Dim floor dots
	RgbKey        = tcell.NewRGBColor(255, 255, 0)   // Bright yellow
	RgbDoor       = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbAgent      = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbAgentKey   = tcell.NewRGBColor(144, 238, 144) // Light grass green once the key is held
	RgbCompleteBg = tcell.NewRGBColor(0, 60, 0)      // Dark green tint for completed games
	RgbPatrol     = tcell.NewRGBColor(255, 80, 80)   // Normal red
	RgbSpike      = tcell.NewRGBColor(180, 50, 50)   // Dark red

	// Status bar
	RgbStatusText   = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbStatusBg     = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbPausedBg     = tcell.NewRGBColor(200, 50, 50)   // Red when paused
	RgbRunningBg    = tcell.NewRGBColor(135, 206, 250) // Light sky blue when running
	RgbToggleOn     = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbToggleOff    = tcell.NewRGBColor(120, 120, 120) // Gray
	RgbSolvedBanner = tcell.NewRGBColor(50, 255, 50)   // Bright green
)

var (
	styleBackground = tcell.StyleDefault.Background(RgbBackground)
	styleWall       = styleBackground.Foreground(RgbWall)
	styleFloor      = styleBackground.Foreground(RgbFloor)
	styleKey        = styleBackground.Foreground(RgbKey).Bold(true)
	styleDoor       = styleBackground.Foreground(RgbDoor).Bold(true)
	styleStatus     = tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbStatusBg)
)
