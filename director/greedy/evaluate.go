package greedy

import (
	"math"
	"sort"

	"github.com/t1h0n/gotetris/game"
	"github.com/t1h0n/gotetris/util/collections"
)

// Heuristic weights, from the well known hand-tuned four-feature player
const (
	heightWeight    = -0.510066
	linesWeight     = 0.760666
	holesWeight     = -0.35663
	bumpinessWeight = -0.184483
)

type grid [game.BoardHeight][game.BoardWidth]bool

func occupancy(board *game.Board) grid {
	var g grid
	for y := range g {
		for x := range g[y] {
			g[y][x] = board.CellAt(x, y).Occupied
		}
	}
	return g
}

func (g *grid) fits(coords [4]game.Coord) bool {
	for _, coord := range coords {
		if coord.X < 0 || coord.X >= game.BoardWidth || coord.Y < 0 || coord.Y >= game.BoardHeight {
			return false
		}
		if g[coord.Y][coord.X] {
			return false
		}
	}
	return true
}

// Placement is where the director wants the current piece to come to rest
type Placement struct {
	// Rotation is the target value of Piece.Rotation
	Rotation int
	// MinX is the target leftmost column of the piece
	MinX int

	Score float64
}

// Plan picks the best resting place for piece on board, considering every
// rotation and column the piece can be dropped into from the top of the grid
func Plan(board *game.Board, piece game.Piece) (Placement, bool) {
	g := occupancy(board)
	seen := collections.NewSet[[4]game.Coord]()

	best := Placement{Score: math.Inf(-1)}
	found := false

	rotated := piece
	for turn := 0; turn < 4; turn++ {
		if turn > 0 {
			rotated.Rotate()
		}

		for minX := 0; minX < game.BoardWidth; minX++ {
			candidate := rotated
			candidate.Translate(minX-candidate.MinX(), -minY(candidate.Coords()))

			landing, ok := drop(&g, candidate.Coords())
			if !ok || !seen.Add(normalize(landing)) {
				continue
			}

			score := evaluate(g, landing)
			if score > best.Score {
				best = Placement{Rotation: candidate.Rotation(), MinX: minX, Score: score}
				found = true
			}
		}
	}

	return best, found
}

func minY(coords [4]game.Coord) int {
	out := coords[0].Y
	for _, coord := range coords[1:] {
		if coord.Y < out {
			out = coord.Y
		}
	}
	return out
}

func drop(g *grid, coords [4]game.Coord) ([4]game.Coord, bool) {
	if !g.fits(coords) {
		return coords, false
	}
	for {
		var below [4]game.Coord
		for i, coord := range coords {
			below[i] = coord.Add(0, 1)
		}
		if !g.fits(below) {
			return coords, true
		}
		coords = below
	}
}

func normalize(coords [4]game.Coord) [4]game.Coord {
	sort.Slice(coords[:], func(i, j int) bool {
		if coords[i].Y != coords[j].Y {
			return coords[i].Y < coords[j].Y
		}
		return coords[i].X < coords[j].X
	})
	return coords
}

// evaluate scores the grid that results from locking landing into g
func evaluate(g grid, landing [4]game.Coord) float64 {
	for _, coord := range landing {
		if coord.Y == 0 {
			return math.Inf(-1)
		}
		g[coord.Y][coord.X] = true
	}

	lines := 0
	var compacted grid
	dst := game.BoardHeight - 1
	for y := game.BoardHeight - 1; y >= 0; y-- {
		full := true
		for _, occupied := range g[y] {
			full = full && occupied
		}
		if full {
			lines++
			continue
		}
		compacted[dst] = g[y]
		dst--
	}

	var heights [game.BoardWidth]int
	holes := 0
	for x := 0; x < game.BoardWidth; x++ {
		for y := 0; y < game.BoardHeight; y++ {
			if !compacted[y][x] {
				continue
			}
			if heights[x] == 0 {
				heights[x] = game.BoardHeight - y
			}
		}
		for y := game.BoardHeight - heights[x]; y < game.BoardHeight; y++ {
			if !compacted[y][x] {
				holes++
			}
		}
	}

	aggregate, bumpiness := 0, 0
	for x, height := range heights {
		aggregate += height
		if x > 0 {
			bumpiness += abs(height - heights[x-1])
		}
	}

	return heightWeight*float64(aggregate) +
		linesWeight*float64(lines) +
		holesWeight*float64(holes) +
		bumpinessWeight*float64(bumpiness)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
