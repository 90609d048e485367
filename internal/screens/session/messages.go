package session

// timerTickMsg is sent every second to drive the countdown. Index pins
// the tick to the question that armed its chain; a leftover tick from an
// earlier question is dropped instead of re-arming, so exactly one chain
// is live per question.
type timerTickMsg struct {
	index int
}

// autoAdvanceMsg is sent after the timeout toast delay to move past a
// timed-out question. Index guards against acting on a stale message
// when the player advanced by keypress first.
type autoAdvanceMsg struct {
	index int
}
