package game

import (
	"fmt"
	"strings"
)

type Coord struct {
	X, Y int
}

func (coord Coord) String() string {
	return fmt.Sprintf("(%d, %d)", coord.X, coord.Y)
}

func (coord Coord) Add(dx, dy int) Coord {
	return Coord{coord.X + dx, coord.Y + dy}
}

func (coord Coord) inBounds() bool {
	return coord.X >= 0 && coord.X < BoardWidth && coord.Y >= 0 && coord.Y < BoardHeight
}

// Template describes one of the canonical tetrominoes in local coordinates.
// Pivot is the point each cell is rotated around.
type Template struct {
	Shape Shape
	Style Style
	Cells [4]Coord
	Pivot Coord
}

var Templates = []Template{
	{ShapeI, Azure, [4]Coord{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, Coord{1, 0}},
	{ShapeL, Amber, [4]Coord{{0, 1}, {1, 1}, {2, 1}, {2, 0}}, Coord{1, 1}},
	{ShapeS, Amber, [4]Coord{{0, 1}, {1, 1}, {1, 0}, {2, 0}}, Coord{1, 1}},
	{ShapeJ, Azure, [4]Coord{{0, 0}, {0, 1}, {1, 1}, {2, 1}}, Coord{1, 1}},
	{ShapeT, Crimson, [4]Coord{{0, 1}, {1, 1}, {2, 1}, {1, 0}}, Coord{1, 1}},
	{ShapeZ, Crimson, [4]Coord{{0, 0}, {1, 0}, {1, 1}, {2, 1}}, Coord{1, 1}},
	{ShapeO, Amber, [4]Coord{{1, 0}, {2, 0}, {1, 1}, {2, 1}}, Coord{1, 1}},
}

func (template Template) Instantiate() Piece {
	return Piece{
		shape: template.Shape,
		style: template.Style,
		cells: template.Cells,
		pivot: template.Pivot,
	}
}

// Piece is a falling tetromino. Pieces are plain values; copying one yields an
// independent piece.
type Piece struct {
	shape Shape
	style Style
	cells [4]Coord
	pivot Coord

	rotation int
}

func (piece Piece) String() string {
	coords := make([]string, len(piece.cells))
	for i, cell := range piece.cells {
		coords[i] = cell.String()
	}
	return fmt.Sprintf("Piece[%s %s]", piece.shape, strings.Join(coords, " "))
}

func (piece Piece) Shape() Shape {
	return piece.shape
}

func (piece Piece) Style() Style {
	return piece.style
}

func (piece Piece) Coords() [4]Coord {
	return piece.cells
}

func (piece Piece) Pivot() Coord {
	return piece.pivot
}

// Rotation returns the number of quarter turns applied since instantiation, mod 4
func (piece Piece) Rotation() int {
	return piece.rotation
}

// MinX returns the leftmost column occupied by the piece
func (piece Piece) MinX() int {
	minX := piece.cells[0].X
	for _, cell := range piece.cells[1:] {
		if cell.X < minX {
			minX = cell.X
		}
	}
	return minX
}

func (piece *Piece) Translate(dx, dy int) {
	piece.cells = piece.TranslatedCoords(dx, dy)
	piece.pivot = piece.pivot.Add(dx, dy)
}

func (piece Piece) TranslatedCoords(dx, dy int) [4]Coord {
	var out [4]Coord
	for i, cell := range piece.cells {
		out[i] = cell.Add(dx, dy)
	}
	return out
}

// Rotate turns the piece a quarter turn around its pivot. It performs no
// collision checks; use Board.TryRotate for validated rotation.
func (piece *Piece) Rotate() {
	piece.cells = piece.RotatedCoords()
	piece.rotation = (piece.rotation + 1) % 4
}

// RotatedCoords returns where the cells would be after Rotate, without
// modifying the piece
func (piece Piece) RotatedCoords() [4]Coord {
	var out [4]Coord
	for i, cell := range piece.cells {
		dx, dy := cell.X-piece.pivot.X, cell.Y-piece.pivot.Y
		out[i] = Coord{piece.pivot.X - dy, piece.pivot.Y + dx}
	}
	return out
}
