package parameter

// Level generation defaults
const (
	// MazeWidth and MazeHeight are the generated level size in tiles
	MazeWidth  = 21
	MazeHeight = 15

	// MazeBraiding adds loops so the population has more than one route
	MazeBraiding = 0.3

	// MazePatrols is the number of patrol hazards placed by the generator
	MazePatrols = 2

	// MazeSpikes is the number of rotator hazards placed by the generator
	MazeSpikes = 2

	// MazeSpawnClearance keeps generated hazards this many tiles (manhattan) away from spawn
	MazeSpawnClearance = 4

	// MazeMaxSize bounds parsed and generated levels
	MazeMaxSize = 512
)

// Level text format glyphs
const (
	GlyphWall             = '#'
	GlyphFloor            = '.'
	GlyphSpace            = ' '
	GlyphSpawn            = 'S'
	GlyphKey              = 'K'
	GlyphDoor             = 'D'
	GlyphVerticalPatrol   = 'V'
	GlyphHorizontalPatrol = 'H'
	GlyphSmallSpike       = 'o'
	GlyphLargeSpike       = 'O'
	GlyphBlankSpike       = 'x'
)
