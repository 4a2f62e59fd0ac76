package sarsa

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gridsarsa/agent"
	"github.com/samuelfneumann/gridsarsa/environment"
	"github.com/samuelfneumann/gridsarsa/utils/floatutils"
	"gonum.org/v1/gonum/spatial/r1"
)

// Config represents a configuration for the Sarsa agent
type Config struct {
	LearningRate float64 `yaml:"alpha" json:"alpha"`
	Discount     float64 `yaml:"gamma" json:"gamma"`
	Epsilon      float64 `yaml:"epsilon" json:"epsilon"` // initial ε
}

// DefaultConfig returns the Config with α = 0.5, γ = 0.9 and ε = 0.1
func DefaultConfig() Config {
	return Config{LearningRate: 0.5, Discount: 0.9, Epsilon: 0.1}
}

// CreateAgent creates the agent from the Config. The agent's table is
// always initialized to zero.
func (c Config) CreateAgent(env environment.Environment,
	seed uint64) (agent.Agent, error) {
	s, err := New(env, c, rand.NewSource(seed))
	if err != nil {
		return nil, fmt.Errorf("createAgent: %w", err)
	}
	return s, nil
}

// ValidAgent returns whether the argument agent is a valid agent for
// construction with the Config
func (c Config) ValidAgent(a agent.Agent) bool {
	_, ok := a.(*Sarsa)
	return ok
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	unit := r1.Interval{Min: 0, Max: 1}

	if !floatutils.InOpenInterval(c.LearningRate, unit) {
		return fmt.Errorf("validate: %w, have %v", ErrLearningRate,
			c.LearningRate)
	}
	if !floatutils.InInterval(c.Discount, unit) {
		return fmt.Errorf("validate: %w, have %v", ErrDiscount, c.Discount)
	}
	if !floatutils.InInterval(c.Epsilon, unit) {
		return fmt.Errorf("validate: %w, have %v", ErrEpsilon, c.Epsilon)
	}
	return nil
}

// Type returns the type of the agent constructed by the Config
func (c Config) Type() agent.Type {
	return agent.EGreedySarsaTabular
}
