// Package environment outlines the interfaces and structs needed to
// implement concrete environments with discrete, integer-identified
// states
package environment

import (
	"github.com/samuelfneumann/gridsarsa/timestep"
)

// Starter implements a distribution of starting states and samples
// starting states for environments
type Starter interface {
	Start() int
}

// Ender determines when an episode should end. If End returns true,
// it must also set the TimeStep's StepType to timestep.Last and record
// the appropriate EndType.
type Ender interface {
	End(*timestep.TimeStep) bool
}

// Task implements the reward scheme, the starting-state distribution,
// and the episode-ending conditions for taking actions in some
// environment
type Task interface {
	Starter
	Ender

	// GetReward returns the reward for transitioning into nextState
	GetReward(nextState int) float64

	// AtGoal returns whether state is a goal state of the Task
	AtGoal(state int) bool

	// Min and Max return the bounds on rewards attainable in the Task
	Min() float64
	Max() float64
}

// Environment implements a simulated environment, which includes a
// Task to complete
type Environment interface {
	Task

	// Reset resets the environment between episodes
	Reset() (timestep.TimeStep, error)

	// Step takes one action in the environment
	Step(action int) (timestep.TimeStep, bool, error)

	// CurrentTimeStep returns the most recent TimeStep
	CurrentTimeStep() timestep.TimeStep

	// Transition is the deterministic transition function of the
	// environment. It does not modify the environment.
	Transition(state, action int) int

	// Dims returns the number of rows and columns of the grid of
	// states. State i is at row i / c, column i % c.
	Dims() (r, c int)

	ObservationSpec() Spec
	ActionSpec() Spec
	RewardSpec() Spec
}
