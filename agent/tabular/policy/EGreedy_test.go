package policy

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gridsarsa/environment/gridworld"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func newGrid(t *testing.T, size int) *gridworld.GridWorld {
	t.Helper()

	start, err := gridworld.NewSingleStart(0, 0, size)
	require.NoError(t, err)
	task, err := gridworld.NewGoal(start, size, 0)
	require.NoError(t, err)
	g, _, err := gridworld.New(task, size)
	require.NoError(t, err)

	return g
}

func TestGreedyTieBreaksToUp(t *testing.T) {
	g := newGrid(t, 5)
	values := mat.NewDense(5, 5, nil)
	greedy, err := NewGreedy(values, g)
	require.NoError(t, err)

	for s := 0; s < 25; s++ {
		assert.Equal(t, int(gridworld.Up), greedy.BestAction(s), "state %d", s)
	}

	// Equal non-zero values still resolve to the lowest action
	values.Set(1, 2, 0.5) // Up from (2, 2)
	values.Set(3, 2, 0.5) // Down from (2, 2)
	assert.Equal(t, int(gridworld.Up), greedy.BestAction(12))
}

func TestGreedyLooksAhead(t *testing.T) {
	g := newGrid(t, 5)
	values := mat.NewDense(5, 5, nil)
	greedy, err := NewGreedy(values, g)
	require.NoError(t, err)

	values.Set(2, 3, 1.0) // Right of (2, 2)
	assert.Equal(t, int(gridworld.Right), greedy.BestAction(12))

	values.Set(3, 2, 2.0) // Below (2, 2)
	assert.Equal(t, int(gridworld.Down), greedy.BestAction(12))

	// In the top-left corner, Up and Left both lead back to the corner
	values.Set(0, 0, 3.0)
	assert.Equal(t, int(gridworld.Up), greedy.BestAction(0))
}

func TestGreedyShapeMismatch(t *testing.T) {
	g := newGrid(t, 5)
	_, err := NewGreedy(mat.NewDense(4, 5, nil), g)
	assert.Error(t, err)
}

func TestEGreedyZeroEpsilonIsGreedy(t *testing.T) {
	g := newGrid(t, 5)
	values := mat.NewDense(5, 5, nil)
	values.Set(2, 1, 1.0) // Left of (2, 2)
	greedy, err := NewGreedy(values, g)
	require.NoError(t, err)

	p, err := NewEGreedy(0, greedy, rand.NewSource(1))
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		assert.Equal(t, int(gridworld.Left), p.ChooseAction(12))
	}
}

func TestEGreedyFullEpsilonIsUniform(t *testing.T) {
	g := newGrid(t, 5)
	greedy, err := NewGreedy(mat.NewDense(5, 5, nil), g)
	require.NoError(t, err)

	p, err := NewEGreedy(1, greedy, rand.NewSource(42))
	require.NoError(t, err)

	const n = 8000
	counts := make([]int, gridworld.NumActions)
	for i := 0; i < n; i++ {
		a := p.ChooseAction(12)
		require.True(t, gridworld.Action(a).Valid())
		counts[a]++
	}

	for a, count := range counts {
		assert.InDelta(t, 0.25, float64(count)/n, 0.03, "action %d", a)
	}
}

func TestEGreedySeeded(t *testing.T) {
	g := newGrid(t, 5)
	greedy, err := NewGreedy(mat.NewDense(5, 5, nil), g)
	require.NoError(t, err)

	p1, err := NewEGreedy(0.5, greedy, rand.NewSource(99))
	require.NoError(t, err)
	p2, err := NewEGreedy(0.5, greedy, rand.NewSource(99))
	require.NoError(t, err)

	for s := 0; s < 200; s++ {
		assert.Equal(t, p1.ChooseAction(s%25), p2.ChooseAction(s%25))
	}
}

func TestEGreedyRejectsEpsilon(t *testing.T) {
	g := newGrid(t, 5)
	greedy, err := NewGreedy(mat.NewDense(5, 5, nil), g)
	require.NoError(t, err)

	_, err = NewEGreedy(1.5, greedy, rand.NewSource(1))
	assert.Error(t, err)
	_, err = NewEGreedy(-0.1, greedy, rand.NewSource(1))
	assert.Error(t, err)
}
