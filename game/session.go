package game

import (
	"fmt"
	"time"

	"github.com/gammazero/deque"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Command int

const (
	MoveLeft Command = iota
	MoveRight
	Rotate
	StartSoftDrop
	StopSoftDrop
	Restart
)

func (command Command) String() string {
	switch command {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case Rotate:
		return "rotate"
	case StartSoftDrop:
		return "soft-drop"
	case StopSoftDrop:
		return "stop-soft-drop"
	case Restart:
		return "restart"
	}
	return fmt.Sprintf("Command(%d)", int(command))
}

// Session runs games on a single board, one after another. It owns the board
// and both pieces, and must only be used from one goroutine.
type Session struct {
	config GameConfig

	id      uuid.UUID
	seed    int64
	board   *Board
	factory *Factory

	current, next Piece
	softDrop      bool

	// Queued Commands, applied in order at the start of each Step
	pending deque.Deque

	games  int
	pieces int

	log *logrus.Entry
}

func NewSession(config GameConfig) (*Session, error) {
	seed := config.Seed
	if seed == 0 && config.Snapshot != nil {
		seed = config.Snapshot.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session := &Session{
		config:  config,
		id:      uuid.New(),
		seed:    seed,
		board:   NewBoard(config.MoveDownInterval),
		factory: NewFactory(seed),
	}
	session.log = config.logger().WithField("session", session.id.String()[:8])

	if config.Snapshot != nil {
		if err := config.Snapshot.Apply(session.board); err != nil {
			return nil, err
		}
	}

	session.startGame()
	return session, nil
}

func (session *Session) ID() uuid.UUID {
	return session.id
}

func (session *Session) Seed() int64 {
	return session.seed
}

func (session *Session) Board() *Board {
	return session.board
}

// Current returns a copy of the piece in play
func (session *Session) Current() Piece {
	return session.current
}

// Next returns a copy of the upcoming piece, in local coordinates
func (session *Session) Next() Piece {
	return session.next
}

func (session *Session) SoftDropping() bool {
	return session.softDrop
}

// Games returns the number of games started in this session, counting the current one
func (session *Session) Games() int {
	return session.games
}

// Pieces returns the number of pieces that entered play in the current game
func (session *Session) Pieces() int {
	return session.pieces
}

// Push queues a command to be applied on the next Step
func (session *Session) Push(command Command) {
	session.pending.PushBack(command)
}

// Pending returns the number of commands waiting for the next Step
func (session *Session) Pending() int {
	return session.pending.Len()
}

// Step advances the session by one frame: the director acts, queued
// commands are applied, then gravity runs (twice while soft dropping).
func (session *Session) Step(dt time.Duration) {
	if session.config.Director != nil {
		session.config.Director.Act(session, dt)
	}

	for session.pending.Len() > 0 {
		session.apply(session.pending.PopFront().(Command))
	}

	session.handleOutcome(session.board.AdvanceGravity(&session.current, dt))

	// A lock clears softDrop, so a piece is never locked twice in one frame
	if session.softDrop {
		session.handleOutcome(session.board.AdvanceGravity(&session.current, dt*SoftDropMultiplier))
	}
}

func (session *Session) apply(command Command) {
	switch command {
	case MoveLeft:
		if !session.softDrop {
			session.board.TryMoveLeft(&session.current)
		}
	case MoveRight:
		if !session.softDrop {
			session.board.TryMoveRight(&session.current)
		}
	case Rotate:
		if !session.softDrop {
			session.board.TryRotate(&session.current)
		}
	case StartSoftDrop:
		session.softDrop = true
	case StopSoftDrop:
		session.softDrop = false
	case Restart:
		session.log.WithField("score", session.board.Score()).Info("restarting game")
		session.board.Reset()
		session.startGame()
	}
}

func (session *Session) handleOutcome(outcome MoveOutcome) {
	switch outcome {
	case Collided:
		session.pieceLocked()
		session.promoteNext()
	case GameOver:
		session.pieceLocked()
		session.endGame()
	}
}

func (session *Session) pieceLocked() {
	session.log.WithField("piece", session.current.String()).Debug("piece locked")

	numCleared := session.board.LastCleared()
	if numCleared == 0 {
		return
	}

	session.log.WithFields(logrus.Fields{
		"rows":  numCleared,
		"score": session.board.Score(),
	}).Info("rows cleared")

	if session.config.OnLinesCleared != nil {
		session.config.OnLinesCleared(numCleared)
	}
}

func (session *Session) spawn(piece Piece) Piece {
	piece.Translate(SpawnColumn, 0)
	session.pieces++
	return piece
}

func (session *Session) promoteNext() {
	session.softDrop = false
	session.current = session.spawn(session.next)
	session.next = session.factory.Next()

	if !session.board.CanPlace(&session.current) {
		session.endGame()
	}
}

func (session *Session) startGame() {
	session.games++
	session.pieces = 0
	session.softDrop = false
	session.current = session.spawn(session.factory.Next())
	session.next = session.factory.Next()

	session.log.WithFields(logrus.Fields{
		"game":  session.games,
		"piece": session.current.Shape().String(),
	}).Debug("game started")

	if !session.board.CanPlace(&session.current) {
		session.endGame()
	}
}

func (session *Session) endGame() {
	session.log.WithFields(logrus.Fields{
		"game":   session.games,
		"score":  session.board.Score(),
		"rows":   session.board.TotalCleared(),
		"pieces": session.pieces,
	}).Info("game over")

	session.config.onGameOver(session)

	session.board.Reset()
	session.startGame()
}
