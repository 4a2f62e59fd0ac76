// Package agent defines an agent interface
package agent

import (
	"github.com/samuelfneumann/gridsarsa/timestep"
)

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which learns values, and a Policy
// which chooses actions in each state. The Policy chooses which actions
// are taken, and the Learner uses these actions to update the values
// the Policy reads. An Agent also exposes its exploration schedule so
// that the caller driving episodes can decay it between episodes.
type Agent interface {
	Learner
	Policy
	Explorer
}

// Learner implements a learning algorithm that defines how values are
// updated.
//
// The Learner and Policy of an Agent should have pointers to the same
// values so that any changes the learner makes are reflected in the
// actions the Policy chooses.
type Learner interface {
	// Update performs a single update using an on-policy transition
	Update(t timestep.Transition)

	// TdError returns the TD error on a transition without updating
	TdError(t timestep.Transition) float64
}

// Policy represents a policy that an agent can have. Policies
// determine how agents select actions.
type Policy interface {
	// ChooseAction selects an action to take in state
	ChooseAction(state int) int
}

// Explorer is a Policy that explores with some probability which is
// decayed over the course of learning
type Explorer interface {
	// DecayExplorationRate decays the exploration rate once
	DecayExplorationRate()

	// Epsilon returns the current exploration rate
	Epsilon() float64
}
