package console

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/t1h0n/gotetris/game"
)

const (
	frameInterval = 16 * time.Millisecond

	// Every board cell is two terminal columns wide, to look roughly square
	cellColumns = 2

	boardLeft = 1
	boardTop  = 1
	sideLeft  = boardLeft + game.BoardWidth*cellColumns + 3
)

var styleColors = map[game.Style]tcell.Color{
	game.Azure:   tcell.ColorDeepSkyBlue,
	game.Amber:   tcell.ColorOrange,
	game.Crimson: tcell.ColorCrimson,
}

type Console struct {
	screen  tcell.Screen
	session *game.Session
}

// New takes ownership of screen, initializing it
func New(screen tcell.Screen, session *game.Session) (*Console, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initialize terminal: %w", err)
	}
	screen.HideCursor()

	return &Console{
		screen:  screen,
		session: session,
	}, nil
}

// Run plays the session until the player quits
func (console *Console) Run() {
	defer console.screen.Fini()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := console.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	lastFrame := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !console.HandleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			console.session.Step(now.Sub(lastFrame))
			lastFrame = now
			console.Draw()
		}
	}
}

// HandleEvent translates a terminal event into session commands. It returns
// false when the player asked to quit.
func (console *Console) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			console.session.Push(game.MoveLeft)
		case tcell.KeyRight:
			console.session.Push(game.MoveRight)
		case tcell.KeyUp:
			console.session.Push(game.Rotate)
		case tcell.KeyDown:
			// Terminals report no key releases, so soft drop stays on until the piece locks
			console.session.Push(game.StartSoftDrop)
		case tcell.KeyEnter:
			console.session.Push(game.Restart)
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				console.session.Push(game.Rotate)
			case 'q':
				return false
			}
		}
	case *tcell.EventResize:
		console.screen.Sync()
	}
	return true
}

func (console *Console) Draw() {
	screen := console.screen
	screen.Clear()

	wallStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for y := 0; y <= game.BoardHeight; y++ {
		screen.SetContent(boardLeft-1, boardTop+y, '│', nil, wallStyle)
		screen.SetContent(boardLeft+game.BoardWidth*cellColumns, boardTop+y, '│', nil, wallStyle)
	}
	for x := boardLeft - 1; x <= boardLeft+game.BoardWidth*cellColumns; x++ {
		screen.SetContent(x, boardTop+game.BoardHeight, '─', nil, wallStyle)
	}

	board := console.session.Board()
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			if cell := board.CellAt(x, y); cell.Occupied {
				console.drawCell(boardLeft, boardTop, game.Coord{X: x, Y: y}, cell.Style)
			}
		}
	}

	current := console.session.Current()
	for _, coord := range current.Coords() {
		console.drawCell(boardLeft, boardTop, coord, current.Style())
	}

	textStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	console.drawText(sideLeft, boardTop, "NEXT", textStyle)
	next := console.session.Next()
	for _, coord := range next.Coords() {
		console.drawCell(sideLeft, boardTop+2, coord, next.Style())
	}

	console.drawText(sideLeft, boardTop+5, "SCORE", textStyle)
	console.drawText(sideLeft, boardTop+6, board.ScoreText(), textStyle)
	console.drawText(sideLeft, boardTop+8, fmt.Sprintf("ROWS %d", board.TotalCleared()), textStyle)

	screen.Show()
}

func (console *Console) drawCell(left, top int, coord game.Coord, style game.Style) {
	cellStyle := tcell.StyleDefault.Foreground(styleColors[style])
	for i := 0; i < cellColumns; i++ {
		console.screen.SetContent(left+coord.X*cellColumns+i, top+coord.Y, '█', nil, cellStyle)
	}
}

func (console *Console) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		console.screen.SetContent(x+i, y, r, nil, style)
	}
}
