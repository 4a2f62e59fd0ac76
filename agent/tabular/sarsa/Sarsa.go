// Package sarsa implements the Sarsa algorithm on a table of state
// values.
//
// Unlike textbook Sarsa, which learns action values Q(S, A), the table
// learned here is indexed by state only. Actions are selected by an
// ε-greedy policy which looks one step ahead through the environment's
// transition function and scores each action by the value of the state
// it leads to.
package sarsa

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gridsarsa/agent/tabular/policy"
	"github.com/samuelfneumann/gridsarsa/environment"
	"gonum.org/v1/gonum/mat"
)

// DecayFactor is the multiplicative decay applied to ε by
// DecayExplorationRate
const DecayFactor float64 = 0.99

// Sarsa implements the Sarsa algorithm
type Sarsa struct {
	*Learner
	*policy.EGreedy
	values *mat.Dense
}

// New creates a new Sarsa agent for env. Every random draw the agent
// makes comes from source.
func New(env environment.Environment, c Config, source rand.Source) (*Sarsa,
	error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	r, cols := env.Dims()
	values := mat.NewDense(r, cols, nil)

	greedy, err := policy.NewGreedy(values, env)
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	behaviour, err := policy.NewEGreedy(c.Epsilon, greedy, source)
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	learner := NewLearner(values, c.LearningRate, c.Discount)

	return &Sarsa{Learner: learner, EGreedy: behaviour, values: values}, nil
}

// DecayExplorationRate multiplies ε by DecayFactor
func (s *Sarsa) DecayExplorationRate() {
	s.Decay(DecayFactor)
}

// Value returns the tabled value of state
func (s *Sarsa) Value(state int) float64 {
	return s.Learner.value(state)
}

// Report returns a copy of the value table
func (s *Sarsa) Report() *mat.Dense {
	return mat.DenseCopyOf(s.values)
}
