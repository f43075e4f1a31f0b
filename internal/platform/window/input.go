package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappy-capy/internal/core"
	"github.com/vovakirdan/flappy-capy/internal/games/capy"
)

// pressed records which controls were newly pressed this tick.
type pressed struct {
	Hop     bool // Space, Up, W
	Pointer bool // Left click or a new touch
	Confirm bool // Enter
	Restart bool // R
	Pause   bool // P
	Quit    bool // Q, Escape
}

// anyJustPressed reports whether one of keys went down this tick.
func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// pollInput reads the controls. touchIDs is a reusable buffer.
func pollInput(touchIDs []ebiten.TouchID) (pressed, []ebiten.TouchID) {
	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	return pressed{
		Hop:     anyJustPressed(ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW),
		Pointer: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || len(touchIDs) > 0,
		Confirm: anyJustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter),
		Restart: anyJustPressed(ebiten.KeyR),
		Pause:   anyJustPressed(ebiten.KeyP),
		Quit:    anyJustPressed(ebiten.KeyQ, ebiten.KeyEscape),
	}, touchIDs
}

// apply queues the actions the controls mean in the given phase and
// reports whether the player asked to quit. Pointer presses outside a run
// are left to the overlay buttons. After a run ends only Enter and R
// restart, so a late hop does not skip the game-over panel.
func (p pressed) apply(frame *core.InputFrame, phase capy.Phase) (quit bool) {
	if p.Quit {
		return true
	}
	switch phase {
	case capy.PhaseRunning:
		if p.Hop || p.Pointer {
			frame.Set(core.ActionImpulse)
		}
		if p.Pause {
			frame.Set(core.ActionPause)
		}
	case capy.PhaseIdle:
		if p.Hop || p.Confirm {
			frame.Set(core.ActionStart)
		}
	case capy.PhaseEnded:
		if p.Confirm || p.Restart {
			frame.Set(core.ActionRestart)
		}
	}
	return false
}
