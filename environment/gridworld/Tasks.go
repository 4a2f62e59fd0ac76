package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/gridsarsa/environment"
	"github.com/samuelfneumann/gridsarsa/timestep"
	"gonum.org/v1/gonum/floats"
)

const (
	TimeStepReward float64 = 0.0
	GoalReward     float64 = 1.0
)

// Goal represents the task of reaching the terminal cell in the
// bottom-right corner of a GridWorld. Reward is sparse: GoalReward on
// the transition into the terminal cell and TimeStepReward everywhere
// else.
type Goal struct {
	environment.Starter
	size      int
	terminal  environment.Ender
	stepLimit environment.Ender
}

// NewGoal creates and returns a new Goal task on a size x size grid.
// Episodes start at states drawn from s. If cutoff > 0, episodes are
// also ended after cutoff steps.
func NewGoal(s environment.Starter, size, cutoff int) (*Goal, error) {
	if size < 2 {
		return nil, fmt.Errorf("newGoal: %w (have %d)", ErrGridSize, size)
	}
	if cutoff < 0 {
		return nil, fmt.Errorf("newGoal: cutoff must be non-negative, "+
			"have %d", cutoff)
	}

	g := &Goal{Starter: s, size: size, stepLimit: environment.NewStepLimit(cutoff)}
	g.terminal = environment.NewFunctionEnder(g.AtGoal,
		timestep.TerminalStateReached)

	return g, nil
}

// GetReward returns the reward for transitioning into nextState
func (g *Goal) GetReward(nextState int) float64 {
	if g.AtGoal(nextState) {
		return GoalReward
	}
	return TimeStepReward
}

// AtGoal returns whether state is the terminal cell
func (g *Goal) AtGoal(state int) bool {
	return state == Terminal(g.size)
}

// End ends the episode when the terminal cell is reached or the step
// limit is exceeded. Reaching the terminal cell takes precedence.
func (g *Goal) End(t *timestep.TimeStep) bool {
	if g.terminal.End(t) {
		return true
	}
	return g.stepLimit.End(t)
}

// Min returns the minimum reward attainable in the Task
func (g *Goal) Min() float64 {
	return floats.Min([]float64{TimeStepReward, GoalReward})
}

// Max returns the maximum reward attainable in the Task
func (g *Goal) Max() float64 {
	return floats.Max([]float64{TimeStepReward, GoalReward})
}

// String returns the Goal as a string
func (g *Goal) String() string {
	row, col := Decode(Terminal(g.size), g.size)
	return fmt.Sprintf("(%d, %d)", row, col)
}
