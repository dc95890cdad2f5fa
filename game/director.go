package game

import "time"

type Director interface {
	/**
	 * Decide on the next moves for the current piece. Called once per frame,
	 * before queued commands are applied; moves are issued with Session.Push
	 */
	Act(session *Session, dt time.Duration)
}
