package tui

import (
	"time"

	"github.com/vovakirdan/coin-frenzy/internal/core"
)

// DefaultHoldWindow is how long a movement key counts as held after its
// last press. Terminal key auto-repeat refreshes it well within this window.
const DefaultHoldWindow = 150 * time.Millisecond

// intentLatch turns key presses into held movement intents.
// Terminals report presses only, so a direction stays held until its
// window expires without a repeat.
type intentLatch struct {
	hold    time.Duration
	expires [5]time.Time // indexed by moveDir
}

func newIntentLatch(hold time.Duration) intentLatch {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return intentLatch{hold: hold}
}

// press marks dir as held from now.
func (l *intentLatch) press(dir moveDir, now time.Time) {
	if dir == moveNone {
		return
	}
	l.expires[dir] = now.Add(l.hold)
}

// release drops every held direction.
func (l *intentLatch) release() {
	l.expires = [5]time.Time{}
}

// Intent returns the directions still held at now.
func (l *intentLatch) Intent(now time.Time) core.Intent {
	held := func(d moveDir) bool { return now.Before(l.expires[d]) }
	return core.Intent{
		Forward:  held(moveForward),
		Backward: held(moveBackward),
		Left:     held(moveLeft),
		Right:    held(moveRight),
	}
}
