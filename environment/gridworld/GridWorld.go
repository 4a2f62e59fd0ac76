// Package gridworld implements square 2D gridworld environments with
// a single absorbing terminal cell in the bottom-right corner.
//
// Cells are identified by integers in [0, N*N). A cell id decomposes
// into (row, col) as row = id / N and col = id % N, where N is the
// side length of the grid. Row 0 is the top of the grid.
package gridworld

import (
	"errors"
	"fmt"

	"github.com/samuelfneumann/gridsarsa/environment"
	"github.com/samuelfneumann/gridsarsa/timestep"
	"github.com/samuelfneumann/gridsarsa/utils/intutils"
	"gonum.org/v1/gonum/mat"
)

// DefaultSize is the default side length of a GridWorld
const DefaultSize int = 5

// ErrGridSize is returned when a grid is too small to have a terminal
// cell distinct from some other cell
var ErrGridSize = errors.New("grid size must be at least 2")

// Action is a directional move in a GridWorld
type Action int

const (
	Up Action = iota
	Down
	Left
	Right
)

// NumActions is the number of actions available in every state
const NumActions int = 4

// Actions returns all actions in index order
func Actions() []Action {
	return []Action{Up, Down, Left, Right}
}

// Valid returns whether a is one of the four directional moves
func (a Action) Valid() bool {
	return a >= Up && a <= Right
}

func (a Action) String() string {
	switch a {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// delta returns the (row, col) displacement of an action
func (a Action) delta() (int, int) {
	switch a {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// GridWorld represents a gridworld environment
//
// A gridworld is represented as a flattened matrix, but in this
// implementation only the matrix dimensions and current agent position
// are tracked
type GridWorld struct {
	environment.Task
	size        int
	position    int
	currentStep timestep.TimeStep
}

// New creates a new size x size gridworld with task t. The returned
// TimeStep is the first step of the first episode.
func New(t environment.Task, size int) (*GridWorld, timestep.TimeStep,
	error) {
	if size < 2 {
		return nil, timestep.TimeStep{}, fmt.Errorf("new: %w (have %d)",
			ErrGridSize, size)
	}

	g := &GridWorld{Task: t, size: size}
	step, err := g.Reset()
	if err != nil {
		return nil, timestep.TimeStep{}, fmt.Errorf("new: %w", err)
	}

	return g, step, nil
}

// Reset resets the GridWorld to a starting state sampled from the
// Task. If the starting state is the terminal state, the returned
// TimeStep is already the last in the episode.
func (g *GridWorld) Reset() (timestep.TimeStep, error) {
	start := g.Start()
	if start < 0 || start >= g.States() {
		return timestep.TimeStep{}, fmt.Errorf("reset: starting state %d "+
			"outside of grid with %d states", start, g.States())
	}
	g.position = start

	step := timestep.New(timestep.First, 0, start, 0)
	g.End(&step)
	g.currentStep = step

	return step, nil
}

// Step takes one action in the GridWorld and returns the next TimeStep
// as well as whether the episode has ended
func (g *GridWorld) Step(action int) (timestep.TimeStep, bool, error) {
	if !Action(action).Valid() {
		return timestep.TimeStep{}, false, fmt.Errorf("step: illegal "+
			"action %d, must be in [0, %d]", action, NumActions-1)
	}
	if g.currentStep.Last() {
		return timestep.TimeStep{}, false, fmt.Errorf("step: episode " +
			"has ended, Reset must be called first")
	}

	next := g.Transition(g.position, action)
	reward := g.GetReward(next)
	step := timestep.New(timestep.Mid, reward, next,
		g.currentStep.Number+1)
	last := g.End(&step)

	g.position = next
	g.currentStep = step

	return step, last, nil
}

// Transition returns the state reached by taking action in state.
// Moves against a boundary leave that coordinate unchanged. Transition
// does not modify the GridWorld.
func (g *GridWorld) Transition(state, action int) int {
	return Transition(state, Action(action), g.size)
}

// Transition returns the state reached by taking action a in state on
// a size x size grid
func Transition(state int, a Action, size int) int {
	row, col := Decode(state, size)
	dr, dc := a.delta()

	row = intutils.Clip(row+dr, 0, size-1)
	col = intutils.Clip(col+dc, 0, size-1)

	return Encode(row, col, size)
}

// IsTerminal returns whether state is the terminal cell
func (g *GridWorld) IsTerminal(state int) bool {
	return state == Terminal(g.size)
}

// Reward returns the reward for transitioning into nextState
func (g *GridWorld) Reward(nextState int) float64 {
	return g.GetReward(nextState)
}

// Terminal returns the id of the terminal (bottom-right) cell of a
// size x size grid
func Terminal(size int) int {
	return size*size - 1
}

// Encode converts (row, col) coordinates to a cell id
func Encode(row, col, size int) int {
	return row*size + col
}

// Decode converts a cell id into (row, col) coordinates
func Decode(state, size int) (int, int) {
	return state / size, state % size
}

// CurrentTimeStep returns the last TimeStep that occurred
func (g *GridWorld) CurrentTimeStep() timestep.TimeStep {
	return g.currentStep
}

// Size returns the side length of the GridWorld
func (g *GridWorld) Size() int {
	return g.size
}

// States returns the number of cells in the GridWorld
func (g *GridWorld) States() int {
	return g.size * g.size
}

// Dims gets the rows and columns of the GridWorld
func (g *GridWorld) Dims() (r, c int) {
	return g.size, g.size
}

// At checks the value at position (i, j) in the gridworld. A value of 1.0
// indicates that the agent is at position (i, j).
func (g *GridWorld) At(i, j int) float64 {
	if Encode(i, j, g.size) == g.position {
		return 1.0
	}
	return 0.0
}

// T implements the mat.Matrix interface
func (g *GridWorld) T() mat.Matrix {
	return mat.Transpose{Matrix: g}
}

// Coordinates returns the (row, col) coordinates of the agent
func (g *GridWorld) Coordinates() (int, int) {
	return Decode(g.position, g.size)
}

func (g *GridWorld) String() string {
	str := "GridWorld | At: (%d, %d)  |  Goal: %v  |  Bounds: (%d, %d)"
	row, col := g.Coordinates()

	return fmt.Sprintf(str, row, col, g.Task, g.size, g.size)
}

// ActionSpec returns the action specification of the environment
func (g *GridWorld) ActionSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{float64(Up)})
	upperBound := mat.NewVecDense(1, []float64{float64(Right)})

	return environment.NewSpec(shape, environment.Action, lowerBound,
		upperBound, environment.Discrete)
}

// ObservationSpec returns the observation specification of the
// environment. Observations are cell ids.
func (g *GridWorld) ObservationSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{0})
	upperBound := mat.NewVecDense(1, []float64{float64(g.States() - 1)})

	return environment.NewSpec(shape, environment.Observation, lowerBound,
		upperBound, environment.Discrete)
}

// RewardSpec returns the reward specification of the environment
func (g *GridWorld) RewardSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{g.Min()})
	upperBound := mat.NewVecDense(1, []float64{g.Max()})

	return environment.NewSpec(shape, environment.Reward, lowerBound,
		upperBound, environment.Continuous)
}
