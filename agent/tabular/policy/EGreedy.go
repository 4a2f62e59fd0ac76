package policy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gridsarsa/utils/floatutils"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distuv"
)

// EGreedy implements an ε-greedy policy over a table of state values.
// With probability ε an action is selected uniformly at random,
// otherwise the greedy action is selected.
type EGreedy struct {
	*Greedy
	epsilon float64

	// Both distributions draw from the same source
	explore distuv.Uniform
	random  distuv.Categorical
}

// NewEGreedy constructs a new EGreedy policy, where e=epsilon is the
// probability with which a random action is selected. All random draws
// are taken from source, so seeding source makes action selection
// reproducible.
func NewEGreedy(e float64, greedy *Greedy, source rand.Source) (*EGreedy,
	error) {
	if !floatutils.InInterval(e, r1.Interval{Min: 0, Max: 1}) {
		return nil, fmt.Errorf("newEGreedy: epsilon must be in [0, 1], "+
			"have %v", e)
	}

	weights := make([]float64, greedy.NumActions())
	for i := range weights {
		weights[i] = 1.0 / float64(len(weights))
	}

	return &EGreedy{
		Greedy:  greedy,
		epsilon: e,
		explore: distuv.Uniform{Min: 0, Max: 1, Src: source},
		random:  distuv.NewCategorical(weights, source),
	}, nil
}

// ChooseAction selects an action from the ε-greedy policy
func (p *EGreedy) ChooseAction(state int) int {
	if p.explore.Rand() < p.epsilon {
		return int(p.random.Rand())
	}
	return p.BestAction(state)
}

// Epsilon returns the current probability of selecting a random action
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}

// Decay multiplies ε by factor, which should be in [0, 1]
func (p *EGreedy) Decay(factor float64) {
	p.epsilon *= factor
}
