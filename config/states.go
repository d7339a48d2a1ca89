package config

// StateID is a player's movement state, used to pick its sprite.
type StateID int

const (
	Idle StateID = iota
	Walking
	Running
	Jumping
	WallSliding
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Walking:
		return "walking"
	case Running:
		return "running"
	case Jumping:
		return "jumping"
	case WallSliding:
		return "wallSliding"
	}
	return "unknown"
}
