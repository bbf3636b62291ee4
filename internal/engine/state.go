package engine

// State is the phase of the game state machine.
type State int

const (
	StateWelcome State = iota
	StateWelcome3
	StateWelcome2
	StateWelcome1
	StateGo
	StatePlay
	StateGameOver
	StateTryAgain
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateWelcome:
		return "welcome"
	case StateWelcome3:
		return "welcome_3"
	case StateWelcome2:
		return "welcome_2"
	case StateWelcome1:
		return "welcome_1"
	case StateGo:
		return "go"
	case StatePlay:
		return "play"
	case StateGameOver:
		return "gameover"
	case StateTryAgain:
		return "tryagain"
	default:
		return "unknown"
	}
}

// introState returns the countdown state for t seconds into a run.
func introState(t float64) State {
	switch {
	case t > 6:
		return StatePlay
	case t > 5:
		return StateGo
	case t > 4:
		return StateWelcome1
	case t > 3:
		return StateWelcome2
	case t > 2:
		return StateWelcome3
	default:
		return StateWelcome
	}
}

// Direction is the horizontal travel direction of the enemy formation.
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
)

// String returns the direction name.
func (d Direction) String() string {
	if d == DirectionLeft {
		return "left"
	}
	return "right"
}
