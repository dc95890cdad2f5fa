package game

import (
	"math/rand"
)

// Factory hands out random pieces. It is not safe for concurrent use.
type Factory struct {
	rand      *rand.Rand
	templates []Template
}

func NewFactory(seed int64) *Factory {
	return &Factory{
		rand:      rand.New(rand.NewSource(seed)),
		templates: Templates,
	}
}

// Next returns a new piece in its template's local coordinates
func (factory *Factory) Next() Piece {
	return factory.templates[factory.rand.Intn(len(factory.templates))].Instantiate()
}
