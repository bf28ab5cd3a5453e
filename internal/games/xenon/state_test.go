package xenon

import "testing"

func TestStateMachineTransitions(t *testing.T) {
	tests := []struct {
		from, to State
		ok       bool
	}{
		{StatePlaying, StateBossFight, true},
		{StatePlaying, StateGameOver, true},
		{StatePlaying, StateVictory, false},
		{StateBossFight, StateVictory, true},
		{StateBossFight, StateGameOver, true},
		{StateBossFight, StatePlaying, false},
		{StateGameOver, StatePlaying, true},
		{StateGameOver, StateVictory, false},
		{StateVictory, StatePlaying, true},
		{StateVictory, StateGameOver, false},
	}

	for _, tc := range tests {
		t.Run(tc.from.String()+"->"+tc.to.String(), func(t *testing.T) {
			m := StateMachine{current: tc.from}
			if got := m.Transition(tc.to); got != tc.ok {
				t.Errorf("Transition() = %v, expected %v", got, tc.ok)
			}
			want := tc.from
			if tc.ok {
				want = tc.to
			}
			if m.Current() != want {
				t.Errorf("Current() = %v, expected %v", m.Current(), want)
			}
		})
	}
}

func TestStateMachineEvaluatePriority(t *testing.T) {
	tests := []struct {
		name    string
		from    State
		cond    Conditions
		want    State
		changed bool
	}{
		{"game over beats victory", StateBossFight, Conditions{Lives: 0, BossDefeated: true}, StateGameOver, true},
		{"victory", StateBossFight, Conditions{Lives: 2, BossDefeated: true}, StateVictory, true},
		{"boss fight on threshold", StatePlaying, Conditions{Lives: 3, ScoreReached: true, BossAvailable: true}, StateBossFight, true},
		{"no boss asset", StatePlaying, Conditions{Lives: 3, ScoreReached: true}, StatePlaying, false},
		{"game over is sticky", StateGameOver, Conditions{Lives: 0}, StateGameOver, false},
		{"nothing to do", StatePlaying, Conditions{Lives: 3}, StatePlaying, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := StateMachine{current: tc.from}
			got, changed := m.Evaluate(tc.cond)
			if got != tc.want || changed != tc.changed {
				t.Errorf("Evaluate() = %v, %v; expected %v, %v", got, changed, tc.want, tc.changed)
			}
		})
	}
}

func TestStateMachineGates(t *testing.T) {
	m := StateMachine{}
	if !m.Simulating() || m.Terminal() {
		t.Error("Playing should simulate")
	}
	m.Transition(StateGameOver)
	if m.Simulating() || !m.Terminal() {
		t.Error("GameOver should be terminal")
	}
}
