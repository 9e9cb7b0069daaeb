package input

// Command is a discrete action produced by a key press
type Command uint8

const (
	CommandNone Command = iota
	CommandQuit
	CommandRestart
	CommandTogglePause
	CommandToggleMute
)

func (c Command) String() string {
	switch c {
	case CommandQuit:
		return "quit"
	case CommandRestart:
		return "restart"
	case CommandTogglePause:
		return "pause"
	case CommandToggleMute:
		return "mute"
	default:
		return "none"
	}
}

// Axis identifies one continuous control channel
type Axis uint8

const (
	AxisNone Axis = iota
	AxisPitchUp
	AxisPitchDown
	AxisRollLeft
	AxisRollRight
	AxisYawLeft
	AxisYawRight
	AxisThrottle

	AxisCount
)
