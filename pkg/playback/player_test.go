package playback

import (
	"testing"
	"time"

	"nolij-demo-be/internal/entity"
	"nolij-demo-be/pkg/catalog"

	"github.com/stretchr/testify/assert"
)

// recordingSink logs every call and can be told to reject after a number
// of appends, simulating a session reset mid-playback.
type recordingSink struct {
	steps       []string
	rejectAfter int // -1 means never reject
	appended    int
}

func (r *recordingSink) SetTyping(on bool) bool {
	if r.rejectAfter >= 0 && r.appended >= r.rejectAfter {
		return false
	}
	if on {
		r.steps = append(r.steps, "typing:on")
	} else {
		r.steps = append(r.steps, "typing:off")
	}
	return true
}

func (r *recordingSink) Append(turn catalog.Turn) bool {
	if r.rejectAfter >= 0 && r.appended >= r.rejectAfter {
		return false
	}
	r.appended++
	r.steps = append(r.steps, "append:"+string(turn.Sender))
	return true
}

func script() []catalog.Turn {
	return []catalog.Turn{
		{Sender: entity.SenderUser, Text: "question"},
		{Sender: entity.SenderAgent, Text: "answer"},
		{Sender: entity.SenderUser, Text: "follow-up"},
		{Sender: entity.SenderAgent, Text: "more detail"},
	}
}

func TestPlayerRunsScriptInOrder(t *testing.T) {
	p := NewPlayer(ImmediateDelayer{}, 500*time.Millisecond, time.Second, time.Second)
	sink := &recordingSink{rejectAfter: -1}

	done := p.Run(script(), sink)

	assert.True(t, done)
	assert.Equal(t, []string{
		"append:user",
		"typing:on", "typing:off", "append:agent",
		"append:user",
		"typing:on", "typing:off", "append:agent",
	}, sink.steps)
}

func TestPlayerStopsWhenSinkRejects(t *testing.T) {
	p := NewPlayer(ImmediateDelayer{}, 500*time.Millisecond, time.Second, time.Second)
	sink := &recordingSink{rejectAfter: 2}

	done := p.Run(script(), sink)

	assert.False(t, done)
	// The first two turns landed, nothing after them did.
	assert.Equal(t, []string{
		"append:user",
		"typing:on", "typing:off", "append:agent",
	}, sink.steps)
}

func TestPlayerEmptyScript(t *testing.T) {
	p := NewPlayer(ImmediateDelayer{}, 0, 0, 0)
	sink := &recordingSink{rejectAfter: -1}

	assert.True(t, p.Run(nil, sink))
	assert.Empty(t, sink.steps)
}
