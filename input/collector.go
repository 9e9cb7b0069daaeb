package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sky-dodger/physics"
)

// Collector turns key presses into held axes
// Terminals report no key release, so an axis stays active for the hold window after its last press
// Not safe for concurrent use, the main loop owns it
type Collector struct {
	table   *KeyTable
	hold    time.Duration
	pressed [AxisCount]time.Time
}

func NewCollector(table *KeyTable, hold time.Duration) *Collector {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Collector{table: table, hold: hold}
}

// Handle records a press and returns the bound command, if any
func (c *Collector) Handle(ev *tcell.EventKey, now time.Time) Command {
	entry, ok := c.table.Lookup(ev)
	if !ok {
		return CommandNone
	}
	if entry.Axis != AxisNone {
		c.pressed[entry.Axis] = now
	}
	return entry.Command
}

// Active reports whether an axis was pressed within the hold window
func (c *Collector) Active(a Axis, now time.Time) bool {
	t := c.pressed[a]
	if t.IsZero() {
		return false
	}
	elapsed := now.Sub(t)
	return elapsed >= 0 && elapsed < c.hold
}

// Input samples every axis as fully on or off
func (c *Collector) Input(now time.Time) physics.ControlInput {
	v := func(a Axis) float64 {
		if c.Active(a, now) {
			return 1
		}
		return 0
	}
	return physics.ControlInput{
		PitchUp:   v(AxisPitchUp),
		PitchDown: v(AxisPitchDown),
		RollLeft:  v(AxisRollLeft),
		RollRight: v(AxisRollRight),
		YawLeft:   v(AxisYawLeft),
		YawRight:  v(AxisYawRight),
		Throttle:  v(AxisThrottle),
	}
}

// Reset releases all axes, used on restart so a held key does not carry over
func (c *Collector) Reset() {
	c.pressed = [AxisCount]time.Time{}
}
