package tui

import (
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/seb-mtl/Space-Invaders/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Fire       key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire},
		{k.Screenshot, k.Help, k.Quit},
	}
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
		Fire: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "fire"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	}
	return core.ActionNone
}

// HoldTracker turns key presses into held keys. Terminals report presses
// and auto-repeats but never releases, so a key counts as held for a short
// window after its most recent press. A fresh fire press is held longer, past
// the terminal's auto-repeat delay, so holding fire never reads as a second
// press.
type HoldTracker struct {
	mu         sync.Mutex
	window     time.Duration
	fireWindow time.Duration
	now        func() time.Time
	until      map[core.Action]time.Time
}

// NewHoldTracker creates a tracker. Repeats extend a hold by window; a fresh
// fire press is held for fireWindow.
func NewHoldTracker(window, fireWindow time.Duration) *HoldTracker {
	return &HoldTracker{
		window:     window,
		fireWindow: max(fireWindow, window),
		now:        time.Now,
		until:      make(map[core.Action]time.Time),
	}
}

// Press records a press of the action's key.
func (h *HoldTracker) Press(a core.Action) {
	if a == core.ActionNone || a == core.ActionQuit {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	// Opposite directions cancel: the newest press wins.
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}

	now := h.now()
	window := h.window
	if a == core.ActionFire && !h.heldAt(a, now) {
		window = h.fireWindow
	}
	if deadline := now.Add(window); deadline.After(h.until[a]) {
		h.until[a] = deadline
	}
}

// Held reports whether the action's key is still considered down.
func (h *HoldTracker) Held(a core.Action) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.heldAt(a, h.now())
}

func (h *HoldTracker) heldAt(a core.Action, now time.Time) bool {
	deadline, ok := h.until[a]
	return ok && now.Before(deadline)
}

// Reset forgets every press.
func (h *HoldTracker) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	clear(h.until)
}

// PlayerInput implements core.InputSource.
func (h *HoldTracker) PlayerInput() core.Input {
	return core.Input{
		Left:  h.Held(core.ActionLeft),
		Right: h.Held(core.ActionRight),
		Fire:  h.Held(core.ActionFire),
	}
}

var _ core.InputSource = (*HoldTracker)(nil)
