package playback

import (
	"time"

	"nolij-demo-be/pkg/catalog"
)

// Sink receives playback output. Both methods return false when the
// session has moved on (reset, replaced or superseded by a newer playback),
// at which point the player stops without touching the session again.
type Sink interface {
	SetTyping(on bool) bool
	Append(turn catalog.Turn) bool
}

// Player replays a scripted topic turn by turn. User turns land after a
// short pause; agent turns show the typing indicator first and pause
// longer afterwards, mimicking a live conversation.
type Player struct {
	delayer        Delayer
	userTurnDelay  time.Duration
	typingDelay    time.Duration
	agentTurnDelay time.Duration
}

func NewPlayer(delayer Delayer, userTurnDelay, typingDelay, agentTurnDelay time.Duration) *Player {
	return &Player{
		delayer:        delayer,
		userTurnDelay:  userTurnDelay,
		typingDelay:    typingDelay,
		agentTurnDelay: agentTurnDelay,
	}
}

// Run plays every turn in order. Returns true when the script ran to
// completion, false when the sink rejected a step midway.
func (p *Player) Run(turns []catalog.Turn, sink Sink) bool {
	var delay time.Duration
	for _, turn := range turns {
		p.delayer.Sleep(delay)

		if turn.Sender.IsUser() {
			if !sink.Append(turn) {
				return false
			}
			delay = p.userTurnDelay
			continue
		}

		if !sink.SetTyping(true) {
			return false
		}
		p.delayer.Sleep(p.typingDelay)
		if !sink.SetTyping(false) {
			return false
		}
		if !sink.Append(turn) {
			return false
		}
		delay = p.agentTurnDelay
	}
	return true
}
