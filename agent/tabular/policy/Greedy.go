// Package policy implements policies which act on tables of state
// values
package policy

import (
	"fmt"

	"github.com/samuelfneumann/gridsarsa/environment"
	"github.com/samuelfneumann/gridsarsa/utils/matutils"
	"gonum.org/v1/gonum/mat"
)

// Transitioner is a deterministic transition function
type Transitioner interface {
	Transition(state, action int) int
}

// Greedy implements a greedy policy over a table of state values.
//
// Since the table is indexed by state only, the Greedy policy performs
// a one-step lookahead: each action is scored by the tabled value of
// the state it leads to.
type Greedy struct {
	values  *mat.Dense
	model   Transitioner
	actions int
}

// NewGreedy constructs a new Greedy policy reading values, which must
// have the same dimensions as the state grid of env. The policy keeps
// a pointer to values so that changes made by a learner are reflected
// in the actions it selects.
func NewGreedy(values *mat.Dense, env environment.Environment) (*Greedy,
	error) {
	actions, err := env.ActionSpec().NumDiscrete()
	if err != nil {
		return nil, fmt.Errorf("newGreedy: %w", err)
	}

	r, c := values.Dims()
	envR, envC := env.Dims()
	if r != envR || c != envC {
		return nil, fmt.Errorf("newGreedy: value table shape (%d, %d) "+
			"does not match environment shape (%d, %d)", r, c, envR, envC)
	}

	return &Greedy{values: values, model: env, actions: actions}, nil
}

// BestAction returns the action leading to the state of highest value.
// Ties are broken in favour of the lowest action index.
func (g *Greedy) BestAction(state int) int {
	lookahead := mat.NewVecDense(g.actions, nil)
	for a := 0; a < g.actions; a++ {
		lookahead.SetVec(a, g.value(g.model.Transition(state, a)))
	}

	return matutils.MaxVec(lookahead)
}

// ChooseAction selects the greedy action in state
func (g *Greedy) ChooseAction(state int) int {
	return g.BestAction(state)
}

// NumActions returns the number of actions the policy chooses between
func (g *Greedy) NumActions() int {
	return g.actions
}

func (g *Greedy) value(state int) float64 {
	_, c := g.values.Dims()
	return g.values.At(state/c, state%c)
}
