package gridworld

import (
	"fmt"
)

// SingleStart starts every episode in the same cell
type SingleStart struct {
	state int
}

// NewSingleStart returns a Starter which always starts at (row, col)
// of a size x size grid
func NewSingleStart(row, col, size int) (*SingleStart, error) {
	if row < 0 || row >= size {
		return nil, fmt.Errorf("newSingleStart: row = %d outside [0, %d)",
			row, size)
	} else if col < 0 || col >= size {
		return nil, fmt.Errorf("newSingleStart: col = %d outside [0, %d)",
			col, size)
	}

	return &SingleStart{Encode(row, col, size)}, nil
}

func (s *SingleStart) Start() int {
	return s.state
}
