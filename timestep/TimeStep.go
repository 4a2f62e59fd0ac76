// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType describes why an episode ended
type EndType int

const (
	// Nil means the episode has not ended
	Nil EndType = iota

	// TerminalStateReached means the environment transitioned into
	// its terminal (absorbing) state
	TerminalStateReached

	// Timeout means the episode was cut off by a step limit
	Timeout
)

func (e EndType) String() string {
	switch e {
	case TerminalStateReached:
		return "TerminalStateReached"
	case Timeout:
		return "Timeout"
	default:
		return "Nil"
	}
}

// TimeStep packages together a single timestep in an environment.
// States are integer cell identifiers.
type TimeStep struct {
	StepType
	Reward float64
	State  int
	Number int
	end    EndType
}

// New constructs a new TimeStep
func New(t StepType, r float64, state, n int) TimeStep {
	return TimeStep{StepType: t, Reward: r, State: state, Number: n}
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

// SetEnd records why the episode ended on this TimeStep
func (t *TimeStep) SetEnd(e EndType) {
	t.end = e
}

// EndType returns why the episode ended on this TimeStep. If the
// TimeStep is not the last in an episode, Nil is returned.
func (t *TimeStep) EndType() EndType {
	return t.end
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  State: %v  |  " +
		"Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.Reward, t.State, t.Number)
}

// Transition is a single (S, A, R, S', A') tuple, the unit of data
// consumed by on-policy temporal difference learners
type Transition struct {
	State      int
	Action     int
	Reward     float64
	NextState  int
	NextAction int
}

// NewTransition creates a Transition from the current TimeStep, the
// action taken in it, the resulting TimeStep and the action chosen
// in the resulting state
func NewTransition(step TimeStep, action int, next TimeStep,
	nextAction int) Transition {
	return Transition{
		State:      step.State,
		Action:     action,
		Reward:     next.Reward,
		NextState:  next.State,
		NextAction: nextAction,
	}
}
