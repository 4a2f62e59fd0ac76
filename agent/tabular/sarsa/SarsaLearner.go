package sarsa

import (
	"github.com/samuelfneumann/gridsarsa/timestep"
	"gonum.org/v1/gonum/mat"
)

// Learner implements the update functionality for the Sarsa algorithm
// on a table of state values:
//
//	V(S) ← V(S) + α[R + γV(S') - V(S)]
//
// The actions of a Transition are not used to index the table.
type Learner struct {
	values       *mat.Dense
	learningRate float64
	discount     float64
}

// NewLearner creates a new Learner which updates values in place
func NewLearner(values *mat.Dense, learningRate, discount float64) *Learner {
	return &Learner{values, learningRate, discount}
}

// TdError returns the TD error of the transition
func (l *Learner) TdError(t timestep.Transition) float64 {
	return t.Reward + l.discount*l.value(t.NextState) - l.value(t.State)
}

// Update moves the value of the transition's state towards the
// one-step Sarsa target
func (l *Learner) Update(t timestep.Transition) {
	row, col := l.index(t.State)
	current := l.values.At(row, col)
	l.values.Set(row, col, current+l.learningRate*l.TdError(t))
}

func (l *Learner) index(state int) (int, int) {
	_, c := l.values.Dims()
	return state / c, state % c
}

func (l *Learner) value(state int) float64 {
	return l.values.At(l.index(state))
}
