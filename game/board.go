package game

import (
	"fmt"
	"time"
)

type Board struct {
	cells [BoardHeight][BoardWidth]Cell

	moveDownInterval time.Duration
	elapsed          time.Duration

	score        uint64
	scoreText    string
	scoreTextFor uint64
	hasScoreText bool

	lastCleared  int
	totalCleared int
}

// NewBoard creates an empty board whose pieces descend one row every
// moveDownInterval. A non-positive interval selects DefaultMoveDownInterval.
func NewBoard(moveDownInterval time.Duration) *Board {
	if moveDownInterval <= 0 {
		moveDownInterval = DefaultMoveDownInterval
	}
	return &Board{moveDownInterval: moveDownInterval}
}

func (board *Board) Width() int {
	return BoardWidth
}

func (board *Board) Height() int {
	return BoardHeight
}

func (board *Board) MoveDownInterval() time.Duration {
	return board.moveDownInterval
}

// CellAt returns the cell at column x, row y. Coordinates outside the grid
// read as empty.
func (board *Board) CellAt(x, y int) Cell {
	if !(Coord{x, y}).inBounds() {
		return Cell{}
	}
	return board.cells[y][x]
}

func (board *Board) isFree(coord Coord) bool {
	return coord.inBounds() && !board.cells[coord.Y][coord.X].Occupied
}

func (board *Board) fits(coords [4]Coord) bool {
	for _, coord := range coords {
		if !board.isFree(coord) {
			return false
		}
	}
	return true
}

// CanPlace reports whether every cell of the piece lies on an empty grid cell
func (board *Board) CanPlace(piece *Piece) bool {
	return board.fits(piece.cells)
}

func (board *Board) TryMoveLeft(piece *Piece) bool {
	return board.tryTranslate(piece, -1)
}

func (board *Board) TryMoveRight(piece *Piece) bool {
	return board.tryTranslate(piece, 1)
}

func (board *Board) tryTranslate(piece *Piece, dx int) bool {
	if !board.fits(piece.TranslatedCoords(dx, 0)) {
		return false
	}
	piece.Translate(dx, 0)
	return true
}

func (board *Board) TryRotate(piece *Piece) bool {
	if !board.fits(piece.RotatedCoords()) {
		return false
	}
	piece.Rotate()
	return true
}

// AdvanceGravity adds dt to the gravity accumulator. Once the accumulator
// reaches the move-down interval it is cleared and the piece either descends
// a row or, if it rests on the floor or another block, is locked into the grid.
// A single call checks for descent at most once, however large dt is.
func (board *Board) AdvanceGravity(piece *Piece, dt time.Duration) MoveOutcome {
	board.elapsed += dt
	if board.elapsed < board.moveDownInterval {
		return MovedNormally
	}
	board.elapsed = 0

	if board.fits(piece.TranslatedCoords(0, 1)) {
		piece.Translate(0, 1)
		return MovedNormally
	}

	board.lockPiece(piece)
	board.award(board.clearFullRows())

	for _, cell := range piece.cells {
		if cell.Y == 0 {
			return GameOver
		}
	}
	return Collided
}

func (board *Board) lockPiece(piece *Piece) {
	for _, cell := range piece.cells {
		if cell.inBounds() {
			board.cells[cell.Y][cell.X] = filledCell(piece.style)
		}
	}
}

func (board *Board) rowIsFull(y int) bool {
	for _, cell := range board.cells[y] {
		if !cell.Occupied {
			return false
		}
	}
	return true
}

// clearFullRows removes every full row, scanning from the top. Each removal
// drops the rows above it by one, leaving row 0 empty.
func (board *Board) clearFullRows() int {
	numCleared := 0
	for y := 0; y < BoardHeight; y++ {
		if !board.rowIsFull(y) {
			continue
		}

		numCleared++
		board.cells[y] = [BoardWidth]Cell{}
		board.shiftRowsDown(y)
	}
	return numCleared
}

func (board *Board) shiftRowsDown(y int) {
	for ; y > 0; y-- {
		board.cells[y] = board.cells[y-1]
	}
	board.cells[0] = [BoardWidth]Cell{}
}

// award scores a single lock event: n cleared rows are worth n² × 100
func (board *Board) award(numCleared int) {
	board.lastCleared = numCleared
	board.totalCleared += numCleared
	board.score += uint64(numCleared*numCleared) * 100
}

// Reset empties the grid and zeroes the score and gravity accumulator
func (board *Board) Reset() {
	board.cells = [BoardHeight][BoardWidth]Cell{}
	board.elapsed = 0
	board.score = 0
	board.lastCleared = 0
	board.totalCleared = 0
}

func (board *Board) Score() uint64 {
	return board.score
}

// ScoreText returns the score as a zero-padded 10 digit string. The string is
// only reformatted when the score has changed since the previous call.
func (board *Board) ScoreText() string {
	if !board.hasScoreText || board.scoreTextFor != board.score {
		board.scoreText = fmt.Sprintf("%0*d", scoreDigits, board.score)
		board.scoreTextFor = board.score
		board.hasScoreText = true
	}
	return board.scoreText
}

// LastCleared returns the number of rows removed by the most recent lock
func (board *Board) LastCleared() int {
	return board.lastCleared
}

func (board *Board) TotalCleared() int {
	return board.totalCleared
}
