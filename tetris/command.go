package tetris

// Command is a discrete player or gravity input.
type Command uint8

const (
	// None is accepted and does nothing.
	None Command = iota
	Rotate
	MoveLeft
	MoveRight
	HardDrop
	MoveDown
)

func (c Command) String() string {
	switch c {
	case None:
		return "None"
	case Rotate:
		return "Rotate"
	case MoveLeft:
		return "MoveLeft"
	case MoveRight:
		return "MoveRight"
	case HardDrop:
		return "HardDrop"
	case MoveDown:
		return "MoveDown"
	default:
		return "Unknown"
	}
}

// GameState is the orchestrator state.
type GameState uint8

const (
	Active GameState = iota
	Lost
)

func (s GameState) String() string {
	if s == Lost {
		return "Lost"
	}
	return "Active"
}
