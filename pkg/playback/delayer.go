package playback

import "time"

// Delayer abstracts the pauses that give the demo its typing cadence.
// Production wiring uses RealDelayer; tests use ImmediateDelayer so a full
// scripted conversation plays out instantly.
type Delayer interface {
	Sleep(d time.Duration)
}

type RealDelayer struct{}

func (RealDelayer) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

type ImmediateDelayer struct{}

func (ImmediateDelayer) Sleep(time.Duration) {}
