package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-capy/internal/core"
	"github.com/vovakirdan/flappy-capy/internal/games/capy"
)

// GameKeyMap defines the key bindings for the game screen.
type GameKeyMap struct {
	Impulse    key.Binding
	Start      key.Binding
	Restart    key.Binding
	Pause      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Impulse, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Impulse, k.Start, k.Restart},
		{k.Pause, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Impulse: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/w", "hop"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r/enter", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// The same key can mean different things depending on the phase:
// space starts the game on the title screen and hops while running.
// After a run ends only the restart keys act, so a late hop does not
// skip the game-over summary.
type KeyMapper struct {
	Keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{Keys: DefaultGameKeyMap()}
}

// MapKey translates a key message to an action for the given phase.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, phase capy.Phase) core.Action {
	if key.Matches(msg, km.Keys.Quit) {
		return core.ActionQuit
	}

	switch phase {
	case capy.PhaseRunning:
		switch {
		case key.Matches(msg, km.Keys.Impulse):
			return core.ActionImpulse
		case key.Matches(msg, km.Keys.Pause):
			return core.ActionPause
		}
	case capy.PhaseIdle:
		if key.Matches(msg, km.Keys.Start) {
			return core.ActionStart
		}
	case capy.PhaseEnded:
		if key.Matches(msg, km.Keys.Restart) {
			return core.ActionRestart
		}
	}

	return core.ActionNone
}

// MapPointer translates a mouse press on the play surface: a hop while
// running, start on the title screen. Presses after a run ends are ignored.
func (km *KeyMapper) MapPointer(msg tea.MouseMsg, phase capy.Phase) core.Action {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return core.ActionNone
	}
	switch phase {
	case capy.PhaseRunning:
		return core.ActionImpulse
	case capy.PhaseIdle:
		return core.ActionStart
	default:
		return core.ActionNone
	}
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, phase capy.Phase, frame *core.InputFrame) bool {
	action := km.MapKey(msg, phase)
	if action == core.ActionQuit {
		return true
	}
	if action != core.ActionNone {
		frame.Set(action)
	}
	return false
}
