package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cosmic-collision/internal/breakout"
	"github.com/vovakirdan/cosmic-collision/internal/core"
)

// KeyMap defines the key bindings for the picker and the game.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Launch  key.Binding
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Pause   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the in-game help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Launch, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Launch},
		{k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// PickerHelp is the help line shown on the tier picker.
type PickerHelp struct{ KeyMap }

// ShortHelp returns the picker bindings.
func (k PickerHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Quit}
}

// FullHelp returns the picker bindings.
func (k PickerHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Launch: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "launch"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "tiers"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a semantic action. Quit is checked
// first so it always wins.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Launch):
		return core.ActionLaunch
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// holdFrames is how long a direction stays pressed after its last key
// event. Terminals only report key repeats, never releases.
const holdFrames = 8

// heldInput turns discrete key events into held directions.
type heldInput struct {
	frame      uint64
	leftUntil  uint64
	rightUntil uint64
	launch     bool
}

// press records an action seen between two frames.
func (h *heldInput) press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.leftUntil = h.frame + holdFrames
		h.rightUntil = 0
	case core.ActionRight:
		h.rightUntil = h.frame + holdFrames
		h.leftUntil = 0
	case core.ActionLaunch:
		h.launch = true
	}
}

// next returns the input for the coming frame and advances the frame
// counter. Launch is consumed once.
func (h *heldInput) next() breakout.Input {
	f := core.NewInputFrame()
	if h.frame < h.leftUntil {
		f.Set(core.ActionLeft)
	}
	if h.frame < h.rightUntil {
		f.Set(core.ActionRight)
	}
	if h.launch {
		f.Set(core.ActionLaunch)
	}
	h.launch = false
	h.frame++
	return breakout.InputFrom(f)
}

// reset forgets all held keys.
func (h *heldInput) reset() {
	*h = heldInput{frame: h.frame}
}
