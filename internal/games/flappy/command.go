package flappy

// Command is an abstract player intent, independent of the input device.
type Command int32

const (
	CommandNone    Command = iota
	CommandImpulse         // Flap; also starts or restarts outside a running session
	CommandStart           // idle -> running
	CommandRestart         // ended -> running
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandImpulse:
		return "Impulse"
	case CommandStart:
		return "Start"
	case CommandRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}
