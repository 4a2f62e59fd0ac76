package environment

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// CategoricalStarter returns starting states sampled from a uniform
// categorical distribution over the states (0, 1, 2, ... N-1).
type CategoricalStarter struct {
	states int
	rand   distuv.Categorical
}

// NewCategoricalStarter returns a new CategoricalStarter, sampling
// uniformly from (0, 1, 2, ... states-1) using draws from source.
// The source may be shared with other consumers, such as an agent's
// policy, to keep a whole experiment on a single random stream.
func NewCategoricalStarter(states int, source rand.Source) *CategoricalStarter {
	// Create the weights for the uniform categorical distribution
	weights := make([]float64, states)
	for i := range weights {
		weights[i] = 1.0 / float64(len(weights))
	}

	return &CategoricalStarter{
		states: states,
		rand:   distuv.NewCategorical(weights, source),
	}
}

// Start returns a starting state
func (c *CategoricalStarter) Start() int {
	return int(c.rand.Rand())
}

// States returns the number of states the CategoricalStarter samples
// from
func (c *CategoricalStarter) States() int {
	return c.states
}
