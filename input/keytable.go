package input

import "github.com/gdamore/tcell/v2"

// KeyEntry binds a key to either an axis or a command
type KeyEntry struct {
	Axis    Axis
	Command Command
}

// KeyTable maps keys to entries
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEscape: {Command: CommandQuit},
			tcell.KeyCtrlC:  {Command: CommandQuit},
			tcell.KeyUp:     {Axis: AxisPitchUp},
			tcell.KeyDown:   {Axis: AxisPitchDown},
			tcell.KeyLeft:   {Axis: AxisRollLeft},
			tcell.KeyRight:  {Axis: AxisRollRight},
		},
		Runes: map[rune]KeyEntry{
			'w': {Axis: AxisPitchUp},
			's': {Axis: AxisPitchDown},
			'a': {Axis: AxisRollLeft},
			'd': {Axis: AxisRollRight},
			'q': {Axis: AxisYawLeft},
			'e': {Axis: AxisYawRight},
			' ': {Axis: AxisThrottle},
			'r': {Command: CommandRestart},
			'p': {Command: CommandTogglePause},
			'm': {Command: CommandToggleMute},
		},
	}
}

// Lookup resolves a key event, ok is false for unbound keys
func (t *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		e, ok := t.Runes[r]
		return e, ok
	}
	e, ok := t.SpecialKeys[ev.Key()]
	return e, ok
}
