package core

import "strings"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
// Actions are edge-triggered: a frame carries an action once per key-down.
type Action int

const (
	ActionNone           Action = iota
	ActionJump                  // Space, W, Up - jump
	ActionToggleHitboxes        // H - show or hide the collision overlay
	ActionRestart               // R - restart after game over
	ActionQuit                  // Q, Esc, Ctrl+C - exit
	ActionPause                 // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionToggleHitboxes:
		return "ToggleHitboxes"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Help returns the short verb shown next to the action's keys.
func (a Action) Help() string {
	switch a {
	case ActionJump:
		return "jump"
	case ActionToggleHitboxes:
		return "hitboxes"
	case ActionRestart:
		return "restart after death"
	case ActionQuit:
		return "quit"
	case ActionPause:
		return "pause"
	default:
		return ""
	}
}

// Hint pairs an action with the names of the keys that trigger it.
type Hint struct {
	Action Action
	Keys   []string
}

// HelpLine formats hints as "Space/W jump | R restart after death".
func HelpLine(hints []Hint) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, strings.Join(h.Keys, "/")+" "+h.Action.Help())
	}
	return strings.Join(parts, " | ")
}

// InputFrame represents the input state for one simulation tick.
// It contains all actions that were triggered since the previous tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
