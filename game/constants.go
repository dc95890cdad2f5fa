package game

import (
	"fmt"
	"time"
)

type Shape int
type Style int
type MoveOutcome int

const (
	ShapeI Shape = iota
	ShapeL
	ShapeS
	ShapeJ
	ShapeT
	ShapeZ
	ShapeO
)

var Shapes = []Shape{
	ShapeI,
	ShapeL,
	ShapeS,
	ShapeJ,
	ShapeT,
	ShapeZ,
	ShapeO,
}

func (shape Shape) String() string {
	switch shape {
	case ShapeI:
		return "I"
	case ShapeL:
		return "L"
	case ShapeS:
		return "S"
	case ShapeJ:
		return "J"
	case ShapeT:
		return "T"
	case ShapeZ:
		return "Z"
	case ShapeO:
		return "O"
	}
	return fmt.Sprintf("Shape(%d)", int(shape))
}

const (
	Azure Style = iota
	Amber
	Crimson
)

var Styles = []Style{
	Azure,
	Amber,
	Crimson,
}

// Rune is the character a style is serialized as in board snapshots
func (style Style) Rune() rune {
	return 'a' + rune(style)
}

func (style Style) String() string {
	switch style {
	case Azure:
		return "azure"
	case Amber:
		return "amber"
	case Crimson:
		return "crimson"
	}
	return fmt.Sprintf("Style(%d)", int(style))
}

const (
	MovedNormally MoveOutcome = iota
	Collided
	GameOver
)

func (outcome MoveOutcome) String() string {
	switch outcome {
	case MovedNormally:
		return "moved"
	case Collided:
		return "collided"
	case GameOver:
		return "game over"
	}
	return fmt.Sprintf("MoveOutcome(%d)", int(outcome))
}

const (
	BoardWidth  = 12
	BoardHeight = 12

	// Column offset applied to a freshly generated piece when it enters play
	SpawnColumn = 4

	SoftDropMultiplier = 5

	scoreDigits = 10
)

const DefaultMoveDownInterval = 600 * time.Millisecond
