package sarsa

import "errors"

var (
	// ErrLearningRate reports a learning rate outside of (0, 1)
	ErrLearningRate = errors.New("learning rate must be in (0, 1)")

	// ErrDiscount reports a discount factor outside of [0, 1]
	ErrDiscount = errors.New("discount must be in [0, 1]")

	// ErrEpsilon reports an exploration rate outside of [0, 1]
	ErrEpsilon = errors.New("epsilon must be in [0, 1]")
)
