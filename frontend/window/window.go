package window

import (
	"fmt"
	"image/color"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/t1h0n/gotetris/game"
)

const (
	cellWidth    = 32
	wallWidth    = 8
	headerHeight = 4*cellWidth + 2*wallWidth
	title        = "gotetris"
)

var styleColors = map[game.Style]color.RGBA{
	game.Azure:   colornames.Deepskyblue,
	game.Amber:   colornames.Orange,
	game.Crimson: colornames.Crimson,
}

// Run opens a window and plays session until the window is closed. It must be
// called from within pixelgl.Run.
func Run(session *game.Session) error {
	boardWidth := float64(game.BoardWidth*cellWidth + 2*wallWidth)
	boardHeight := float64(game.BoardHeight*cellWidth + wallWidth)

	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, boardWidth, boardHeight+headerHeight),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	// Board cells are laid out from here, row 0 at the top
	boardTopLeft := pixel.V(wallWidth, boardHeight)
	previewTopLeft := pixel.V(wallWidth, boardHeight+headerHeight-wallWidth)

	basicAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	scoreText := text.New(pixel.V(boardWidth/2, boardHeight+headerHeight/2), basicAtlas)
	scoreText.Color = colornames.Yellow

	imd := imdraw.New(nil)

	var (
		frames    = 0
		second    = time.Tick(time.Second)
		lastFrame = time.Now()
	)

	for !win.Closed() {
		now := time.Now()
		dt := now.Sub(lastFrame)
		lastFrame = now

		if win.JustPressed(pixelgl.KeyEscape) {
			win.SetClosed(true)
		}
		handleInput(win, session)
		session.Step(dt)

		win.Clear(colornames.Black)
		imd.Clear()

		drawWalls(imd, boardWidth, boardHeight)

		board := session.Board()
		for y := 0; y < board.Height(); y++ {
			for x := 0; x < board.Width(); x++ {
				if cell := board.CellAt(x, y); cell.Occupied {
					drawCell(imd, boardTopLeft, game.Coord{X: x, Y: y}, cell.Style)
				}
			}
		}

		current := session.Current()
		for _, coord := range current.Coords() {
			drawCell(imd, boardTopLeft, coord, current.Style())
		}

		next := session.Next()
		for _, coord := range next.Coords() {
			drawCell(imd, previewTopLeft, coord, next.Style())
		}

		imd.Draw(win)

		scoreText.Clear()
		fmt.Fprint(scoreText, board.ScoreText())
		if session.SoftDropping() {
			fmt.Fprint(scoreText, "\nv")
		}
		scoreText.Draw(win, pixel.IM.Scaled(scoreText.Orig, 2))

		win.Update()

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}
	}

	return nil
}

func handleInput(win *pixelgl.Window, session *game.Session) {
	if win.JustPressed(pixelgl.KeyLeft) || win.Repeated(pixelgl.KeyLeft) {
		session.Push(game.MoveLeft)
	}
	if win.JustPressed(pixelgl.KeyRight) || win.Repeated(pixelgl.KeyRight) {
		session.Push(game.MoveRight)
	}
	if win.JustPressed(pixelgl.KeySpace) || win.JustPressed(pixelgl.KeyUp) {
		session.Push(game.Rotate)
	}
	if win.JustPressed(pixelgl.KeyDown) {
		session.Push(game.StartSoftDrop)
	}
	if win.JustReleased(pixelgl.KeyDown) {
		session.Push(game.StopSoftDrop)
	}
	if win.JustPressed(pixelgl.KeyEnter) {
		session.Push(game.Restart)
	}
}

func drawWalls(imd *imdraw.IMDraw, boardWidth, boardHeight float64) {
	imd.Color = colornames.Dimgray
	imd.Push(pixel.V(0, 0), pixel.V(wallWidth, boardHeight))
	imd.Rectangle(0)
	imd.Push(pixel.V(boardWidth-wallWidth, 0), pixel.V(boardWidth, boardHeight))
	imd.Rectangle(0)
	imd.Push(pixel.V(0, 0), pixel.V(boardWidth, wallWidth))
	imd.Rectangle(0)
	imd.Push(pixel.V(0, boardHeight), pixel.V(boardWidth, boardHeight+wallWidth))
	imd.Rectangle(0)
}

func drawCell(imd *imdraw.IMDraw, topLeft pixel.Vec, coord game.Coord, style game.Style) {
	start := topLeft.Add(pixel.V(
		float64(cellWidth*coord.X),
		-float64(cellWidth*(coord.Y+1)),
	))
	end := start.Add(pixel.V(cellWidth, cellWidth))

	imd.Color = styleColors[style]
	imd.Push(start.Add(pixel.V(1, 1)), end.Sub(pixel.V(1, 1)))
	imd.Rectangle(0) // 0 = filled
}
