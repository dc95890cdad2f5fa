package random

import (
	"math/rand"
	"time"

	"github.com/t1h0n/gotetris/game"
)

const DefaultInterval = 250 * time.Millisecond

var commands = []game.Command{
	game.MoveLeft,
	game.MoveRight,
	game.Rotate,
	game.StartSoftDrop,
}

// Director mashes buttons: every Interval it pushes one random command
type Director struct {
	Interval time.Duration

	rand    *rand.Rand
	elapsed time.Duration
}

func New(seed int64) *Director {
	return &Director{
		Interval: DefaultInterval,
		rand:     rand.New(rand.NewSource(seed)),
	}
}

func (director *Director) Act(session *game.Session, dt time.Duration) {
	director.elapsed += dt
	if director.elapsed < director.Interval {
		return
	}
	director.elapsed = 0

	session.Push(commands[director.rand.Intn(len(commands))])
}
