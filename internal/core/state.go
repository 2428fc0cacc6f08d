package core

// Outcome is the render outcome selected at the end of every frame.
type Outcome int

const (
	OutcomePlaying Outcome = iota
	OutcomeLost
	OutcomeWon
)

// String returns a lowercase name for the outcome, used in logs and storage.
func (o Outcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeLost:
		return "lost"
	case OutcomeWon:
		return "won"
	default:
		return "unknown"
	}
}

// Finished reports whether the outcome ends the round for rendering purposes.
func (o Outcome) Finished() bool {
	return o == OutcomeLost || o == OutcomeWon
}

// ParseOutcome is the inverse of Outcome.String.
func ParseOutcome(s string) (Outcome, bool) {
	switch s {
	case "playing":
		return OutcomePlaying, true
	case "lost":
		return OutcomeLost, true
	case "won":
		return OutcomeWon, true
	default:
		return OutcomePlaying, false
	}
}

// GameState represents the current state of a round.
type GameState struct {
	Outcome Outcome // Render outcome for the latest frame
	Elapsed float64 // Seconds simulated while the round was playing
	Frames  int     // Frames stepped while the round was playing
	Paused  bool    // Whether the session is paused
}

// StepResult is returned after each simulated frame.
type StepResult struct {
	State GameState
}
