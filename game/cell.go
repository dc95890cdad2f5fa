package game

// Cell is one square of the board grid. The zero value is an empty cell.
type Cell struct {
	Occupied bool
	Style    Style
}

func filledCell(style Style) Cell {
	return Cell{Occupied: true, Style: style}
}

func (cell Cell) serialize() rune {
	if !cell.Occupied {
		return '.'
	}
	return cell.Style.Rune()
}

func (cell *Cell) deserialize(c rune) bool {
	if c == '.' {
		*cell = Cell{}
		return true
	}

	for _, style := range Styles {
		if style.Rune() == c {
			*cell = filledCell(style)
			return true
		}
	}
	return false
}
