package navigation

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/escape/core"
)

// DistUnreachable marks tiles the flood fill never reached
const DistUnreachable = 0

// DistSource is the distance stored at the source tile
// Baseline is 1 so inverse-distance fitness terms never divide by zero
const DistSource = 1

// WallChecker is a function that returns true if a tile blocks the flood fill
type WallChecker func(p core.Point) bool

// DistanceField stores step distances from a source tile over walkable tiles
type DistanceField struct {
	Width, Height int
	Source        core.Point
	Distances     []int // Per-tile step distance, DistUnreachable if never reached

	reached int
}

// Solve flood-fills from source over in-bounds, non-blocked tiles with 4-connectivity.
// Source receives DistSource, every tile discovered from a tile at distance d receives d+1.
// Tiles behind walls never enter the field.
func Solve(width, height int, source core.Point, isBlocked WallChecker) *DistanceField {
	f := &DistanceField{
		Width:     width,
		Height:    height,
		Source:    source,
		Distances: make([]int, width*height),
	}

	if !source.In(width, height) || isBlocked(source) {
		return f
	}

	queued := mapset.New[core.Point]()
	queue := make([]core.Point, 0, width*height/4+1)
	queue = append(queue, source)
	queued.Put(source)
	f.Distances[f.index(source)] = DistSource

	for head := 0; head < len(queue); head++ {
		curr := queue[head]
		dist := f.Distances[f.index(curr)]
		f.reached++

		for _, d := range core.Directions {
			next := curr.Add(d.Offset())

			if !next.In(width, height) {
				continue
			}
			if queued.Has(next) || f.Distances[f.index(next)] != DistUnreachable {
				continue
			}
			if isBlocked(next) {
				continue
			}

			f.Distances[f.index(next)] = dist + 1
			queued.Put(next)
			queue = append(queue, next)
		}
	}

	return f
}

func (f *DistanceField) index(p core.Point) int {
	return p.Y*f.Width + p.X
}

// Get returns the distance at p, false if p is out of bounds or unreachable
func (f *DistanceField) Get(p core.Point) (int, bool) {
	if !p.In(f.Width, f.Height) {
		return 0, false
	}
	d := f.Distances[f.index(p)]
	return d, d != DistUnreachable
}

// Reached returns the number of tiles in the field
func (f *DistanceField) Reached() int {
	return f.reached
}

// Max returns the largest distance in the field, 0 for an empty field
func (f *DistanceField) Max() int {
	m := 0
	for _, d := range f.Distances {
		if d > m {
			m = d
		}
	}
	return m
}

// Estimate returns the field distance at p, falling back to manhattan distance
// from the source plus the baseline when p is not in the field
func (f *DistanceField) Estimate(p core.Point) int {
	if d, ok := f.Get(p); ok {
		return d
	}
	return p.Manhattan(f.Source) + DistSource
}
