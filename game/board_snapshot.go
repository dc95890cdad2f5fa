package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// BoardSnapshot is the YAML form of a board: one line per row, '.' for an
// empty cell and a style rune for an occupied one.
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board"`
}

func (board *Board) Snapshot(seed int64) *BoardSnapshot {
	rows := make([]string, BoardHeight)
	for y := range board.cells {
		row := strings.Builder{}
		for _, cell := range board.cells[y] {
			row.WriteRune(cell.serialize())
		}
		rows[y] = row.String()
	}

	return &BoardSnapshot{
		Seed:            seed,
		SerializedBoard: strings.Join(rows, "\n"),
	}
}

func (snapshot *BoardSnapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("marshal board snapshot: %w", err)
	}
	return string(out), nil
}

// Apply replaces the contents of the board's grid with the snapshot. The
// board is left untouched if the snapshot is malformed.
func (snapshot *BoardSnapshot) Apply(board *Board) error {
	rows := strings.Split(strings.TrimRight(snapshot.SerializedBoard, "\n"), "\n")
	if len(rows) != BoardHeight {
		return fmt.Errorf("board snapshot has %d rows, want %d", len(rows), BoardHeight)
	}

	var cells [BoardHeight][BoardWidth]Cell
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != BoardWidth {
			return fmt.Errorf("board snapshot row %d has %d cells, want %d", y, len(runes), BoardWidth)
		}
		for x, c := range runes {
			if !cells[y][x].deserialize(c) {
				return fmt.Errorf("board snapshot row %d: invalid cell %q at column %d", y, c, x)
			}
		}
	}

	board.cells = cells
	return nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, fmt.Errorf("parse board snapshot: %w", err)
	}
	return &snapshot, nil
}
