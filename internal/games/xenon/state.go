package xenon

// State is a phase of a run.
type State uint8

const (
	StatePlaying State = iota
	StateBossFight
	StateGameOver
	StateVictory
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateBossFight:
		return "boss"
	case StateGameOver:
		return "gameover"
	case StateVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// legal lists every allowed transition.
var legal = map[State][]State{
	StatePlaying:   {StateBossFight, StateGameOver},
	StateBossFight: {StateGameOver, StateVictory},
	StateGameOver:  {StatePlaying},
	StateVictory:   {StatePlaying},
}

// StateMachine guards phase changes.
type StateMachine struct {
	current State
}

// Current returns the active state.
func (m *StateMachine) Current() State {
	return m.current
}

// Simulating reports whether entities move, spawn and collide.
func (m *StateMachine) Simulating() bool {
	return m.current == StatePlaying || m.current == StateBossFight
}

// Terminal reports whether the run has ended.
func (m *StateMachine) Terminal() bool {
	return m.current == StateGameOver || m.current == StateVictory
}

// Transition moves to the given state if the move is legal.
func (m *StateMachine) Transition(to State) bool {
	for _, s := range legal[m.current] {
		if s == to {
			m.current = to
			return true
		}
	}
	return false
}

// Conditions are the facts the guards look at.
type Conditions struct {
	Lives         int
	BossDefeated  bool
	ScoreReached  bool // threshold met and boss not yet spawned
	BossAvailable bool // a boss can actually be spawned
}

// Evaluate applies the guards in priority order game over, victory, boss
// fight and reports the resulting state and whether it changed.
func (m *StateMachine) Evaluate(c Conditions) (State, bool) {
	switch {
	case c.Lives <= 0:
		if m.Transition(StateGameOver) {
			return m.current, true
		}
	case c.BossDefeated:
		if m.Transition(StateVictory) {
			return m.current, true
		}
	case c.ScoreReached && c.BossAvailable:
		if m.Transition(StateBossFight) {
			return m.current, true
		}
	}
	return m.current, false
}
