package greedy

import (
	"time"

	"github.com/t1h0n/gotetris/game"
)

const DefaultInterval = 80 * time.Millisecond

// Director plans a placement once per piece, then steers the piece there one
// command every Interval and soft drops it.
type Director struct {
	Interval time.Duration

	elapsed time.Duration

	plan      Placement
	hasPlan   bool
	plannedAt [2]int
}

func New() *Director {
	return &Director{Interval: DefaultInterval}
}

func (director *Director) Act(session *game.Session, dt time.Duration) {
	if session.SoftDropping() {
		return
	}

	piece := session.Current()

	// Games and Pieces together identify the piece in play
	key := [2]int{session.Games(), session.Pieces()}
	if key != director.plannedAt {
		director.plan, director.hasPlan = Plan(session.Board(), piece)
		director.plannedAt = key
		director.elapsed = 0
	}

	director.elapsed += dt
	if director.elapsed < director.Interval {
		return
	}
	director.elapsed = 0

	session.Push(director.nextCommand(&piece))
}

func (director *Director) nextCommand(piece *game.Piece) game.Command {
	switch {
	case !director.hasPlan:
		return game.StartSoftDrop
	case piece.Rotation() != director.plan.Rotation:
		return game.Rotate
	case piece.MinX() > director.plan.MinX:
		return game.MoveLeft
	case piece.MinX() < director.plan.MinX:
		return game.MoveRight
	default:
		return game.StartSoftDrop
	}
}
