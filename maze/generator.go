package maze

import (
	"fmt"
	"math/rand/v2"

	"github.com/lixenwraith/escape/core"
	"github.com/lixenwraith/escape/parameter"
)

// Cell types of the working grid
const (
	wall    = true
	passage = false
)

// GenConfig controls procedural level generation
type GenConfig struct {
	Width, Height int

	// Braiding: 0.0 (Perfect Maze/Tree) to 1.0 (No dead ends/Graph).
	// Higher values add cycles. Constraints (No Plazas/Pillars) take precedence.
	Braiding float64

	Patrols int // Patrol hazards to place
	Spikes  int // Rotator hazards to place, kept off the spawn-key-door route

	Seed uint64 // Optional (0 = Random)
}

// DefaultGenConfig returns the generator defaults
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Width:    parameter.MazeWidth,
		Height:   parameter.MazeHeight,
		Braiding: parameter.MazeBraiding,
		Patrols:  parameter.MazePatrols,
		Spikes:   parameter.MazeSpikes,
	}
}

// Generate creates a stochastic topological maze and furnishes it with spawn, key, door and hazards.
// Spawn sits in the top-left room, the door in the bottom-right room, the key in the room
// farthest from both, so every generated level is solvable ignoring hazards.
func Generate(cfg GenConfig) (*Level, error) {
	// 1. Setup Topology
	// We round DOWN to the nearest odd number to stay within requested bounds.
	rows := ensureOdd(cfg.Height)
	cols := ensureOdd(cfg.Width)

	// 2. Initialize Grid (Filled with Walls)
	grid := make([][]bool, rows)
	for i := range grid {
		grid[i] = make([]bool, cols)
		for j := range grid[i] {
			grid[i][j] = wall
		}
	}

	// 3. RNG Setup
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	spawn := core.Point{X: 1, Y: 1}
	door := core.Point{X: cols - 2, Y: rows - 2}

	// 4. Core Generation (Recursive Backtracker)
	recursiveBacktracker(grid, spawn, rng)

	// 5. Braiding, introduces cycles while preventing Plazas and Pillars
	if cfg.Braiding > 0 {
		applySmartBraiding(grid, cfg.Braiding, rng)
	}

	// 6. Key placement: room maximizing the shorter of the two walks
	fromSpawn := bfsDepths(grid, spawn)
	fromDoor := bfsDepths(grid, door)
	key := spawn
	best := -1
	for y := 1; y < rows-1; y += 2 {
		for x := 1; x < cols-1; x += 2 {
			p := core.Point{X: x, Y: y}
			ds, okS := fromSpawn[p]
			dd, okD := fromDoor[p]
			if !okS || !okD || p == spawn || p == door {
				continue
			}
			if score := min(ds, dd); score > best {
				best = score
				key = p
			}
		}
	}
	if key == spawn {
		return nil, fmt.Errorf("maze: %dx%d too small to place a key", cols, rows)
	}

	// 7. Hazards
	route := make(map[core.Point]bool)
	for _, p := range solveBFS(grid, spawn, key) {
		route[p] = true
	}
	for _, p := range solveBFS(grid, key, door) {
		route[p] = true
	}

	spec := Spec{
		Width:  cols,
		Height: rows,
		Key:    &key,
		Door:   &door,
		Spawn:  &spawn,
	}
	for y := range grid {
		for x := range grid[y] {
			if grid[y][x] == wall {
				spec.Walls = append(spec.Walls, core.Point{X: x, Y: y})
			}
		}
	}

	occupied := map[core.Point]bool{spawn: true, key: true, door: true}
	free := func(p core.Point) bool {
		return grid[p.Y][p.X] == passage && !occupied[p] && p.Manhattan(spawn) >= parameter.MazeSpawnClearance
	}

	corridors := make([]core.Point, 0)
	sideRooms := make([]core.Point, 0)
	for y := 1; y < rows-1; y++ {
		for x := 1; x < cols-1; x++ {
			p := core.Point{X: x, Y: y}
			if !free(p) {
				continue
			}
			corridors = append(corridors, p)
			if !route[p] {
				sideRooms = append(sideRooms, p)
			}
		}
	}

	for i := 0; i < cfg.Patrols && len(corridors) > 0; i++ {
		idx := rng.IntN(len(corridors))
		p := corridors[idx]
		corridors = append(corridors[:idx], corridors[idx+1:]...)
		if occupied[p] {
			i--
			continue
		}
		occupied[p] = true

		// Walls left and right mean a vertical corridor
		variant := uint32(parameter.HazardHorizontalPatrol)
		if grid[p.Y][p.X-1] == wall && grid[p.Y][p.X+1] == wall {
			variant = parameter.HazardVerticalPatrol
		}
		spec.Hazards = append(spec.Hazards, HazardSpawn{Pos: p, Kind: HazardPatrol, Variant: variant})
	}

	spikeVariants := []uint32{parameter.HazardSmallSpike, parameter.HazardLargeSpike}
	for i := 0; i < cfg.Spikes && len(sideRooms) > 0; i++ {
		idx := rng.IntN(len(sideRooms))
		p := sideRooms[idx]
		sideRooms = append(sideRooms[:idx], sideRooms[idx+1:]...)
		if occupied[p] {
			i--
			continue
		}
		occupied[p] = true
		spec.Hazards = append(spec.Hazards, HazardSpawn{Pos: p, Kind: HazardRotator, Variant: spikeVariants[rng.IntN(len(spikeVariants))]})
	}

	return New(spec)
}

// --- Core Algorithms ---

func recursiveBacktracker(grid [][]bool, start core.Point, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])

	stack := []core.Point{start}
	grid[start.Y][start.X] = passage

	dirs := []core.Point{{X: 0, Y: -2}, {X: 0, Y: 2}, {X: -2, Y: 0}, {X: 2, Y: 0}}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates := make([]core.Point, 0, 4)

		for _, d := range dirs {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			// Leave 1 cell border for walls
			if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 && grid[ny][nx] == wall {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.IntN(len(candidates))]
		grid[curr.Y+d.Y/2][curr.X+d.X/2] = passage
		next := curr.Add(d)
		grid[next.Y][next.X] = passage
		stack = append(stack, next)
	}
}

func applySmartBraiding(grid [][]bool, probability float64, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])
	checkDirs := []core.Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}

	// Iterate over odd nodes (Rooms)
	for y := 1; y < rows-1; y += 2 {
		for x := 1; x < cols-1; x += 2 {
			if grid[y][x] == wall {
				continue
			}

			// A node is a dead end if it has exactly 1 passage neighbor
			exits := 0
			for _, d := range checkDirs {
				if grid[y+d.Y][x+d.X] == passage {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			candidates := make([]core.Point, 0, 4)
			for _, d := range checkDirs {
				nx, ny := x+2*d.X, y+2*d.Y // Target room
				wx, wy := x+d.X, y+d.Y     // The intervening wall

				if nx >= 0 && nx < cols && ny >= 0 && ny < rows &&
					grid[ny][nx] == passage && grid[wy][wx] == wall && canSafelyRemoveWall(grid, wx, wy) {
					candidates = append(candidates, core.Point{X: wx, Y: wy})
				}
			}

			if len(candidates) > 0 {
				c := candidates[rng.IntN(len(candidates))]
				grid[c.Y][c.X] = passage
			}
		}
	}
}

// canSafelyRemoveWall checks if removing grid[y][x] creates prohibited topology:
// 1. Plazas (2x2 Passages).
// 2. Pillars (Isolated Walls).
func canSafelyRemoveWall(grid [][]bool, x, y int) bool {
	rows, cols := len(grid), len(grid[0])

	isP := func(tx, ty int) bool {
		if tx < 0 || tx >= cols || ty < 0 || ty >= rows {
			return false
		}
		return grid[ty][tx] == passage
	}

	// No plazas: none of the four 2x2 quadrants around (x,y) may become open
	if isP(x-1, y-1) && isP(x, y-1) && isP(x-1, y) {
		return false
	}
	if isP(x, y-1) && isP(x+1, y-1) && isP(x+1, y) {
		return false
	}
	if isP(x-1, y) && isP(x-1, y+1) && isP(x, y+1) {
		return false
	}
	if isP(x+1, y) && isP(x, y+1) && isP(x+1, y+1) {
		return false
	}

	// No pillars: every orthogonal wall neighbor keeps another wall connection
	ortho := []core.Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}
	for _, d := range ortho {
		nx, ny := x+d.X, y+d.Y
		if nx < 0 || nx >= cols || ny < 0 || ny >= rows || grid[ny][nx] != wall {
			continue
		}

		wallConnections := 0
		for _, d2 := range ortho {
			nnx, nny := nx+d2.X, ny+d2.Y
			if nnx == x && nny == y {
				continue
			}
			if nnx >= 0 && nnx < cols && nny >= 0 && nny < rows && grid[nny][nnx] == wall {
				wallConnections++
			}
		}
		if wallConnections == 0 {
			return false
		}
	}

	return true
}

// --- Helpers ---

func ensureOdd(n int) int {
	if n < 5 {
		return 5
	}
	if n > parameter.MazeMaxSize {
		n = parameter.MazeMaxSize
	}
	if n%2 == 0 {
		return n - 1 // Round down to stay within bounds
	}
	return n
}

// bfsDepths returns walk lengths from start over passages
func bfsDepths(grid [][]bool, start core.Point) map[core.Point]int {
	rows, cols := len(grid), len(grid[0])
	depth := map[core.Point]int{start: 0}
	queue := []core.Point{start}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, d := range core.Directions {
			next := curr.Add(d.Offset())
			if !next.In(cols, rows) || grid[next.Y][next.X] == wall {
				continue
			}
			if _, seen := depth[next]; seen {
				continue
			}
			depth[next] = depth[curr] + 1
			queue = append(queue, next)
		}
	}
	return depth
}

func solveBFS(grid [][]bool, start, end core.Point) []core.Point {
	rows, cols := len(grid), len(grid[0])
	if !start.In(cols, rows) || !end.In(cols, rows) {
		return nil
	}
	if grid[start.Y][start.X] == wall || grid[end.Y][end.X] == wall {
		return nil
	}

	queue := []core.Point{start}
	cameFrom := make(map[core.Point]core.Point)
	visited := map[core.Point]bool{start: true}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == end {
			path := []core.Point{}
			for curr != start {
				path = append([]core.Point{curr}, path...)
				curr = cameFrom[curr]
			}
			return append([]core.Point{start}, path...)
		}

		for _, d := range core.Directions {
			next := curr.Add(d.Offset())
			if next.In(cols, rows) && grid[next.Y][next.X] == passage && !visited[next] {
				visited[next] = true
				cameFrom[next] = curr
				queue = append(queue, next)
			}
		}
	}
	return nil
}
