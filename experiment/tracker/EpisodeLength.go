package tracker

import (
	"math"

	"github.com/samuelfneumann/gridsarsa/timestep"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// EpisodeLength tracks and saves the lengths of episodes in an
// experiment.
// Note that an episode must finish for this Tracker to save its data.
// If the last episode in an experiment does not finish, that episode's
// length will not be saved.
type EpisodeLength struct {
	episodeLengths []float64
	filename       string
}

// NewEpisodeLength returns a new EpisodeLength tracker which will save
// its data at the specified location filename
func NewEpisodeLength(filename string) *EpisodeLength {
	return &EpisodeLength{filename: filename}
}

// Track caches the episode length if the timestep passed to it is the
// last timestep in the episode
func (e *EpisodeLength) Track(t timestep.TimeStep) {
	if t.Last() {
		e.episodeLengths = append(e.episodeLengths, float64(t.Number))
	}
}

// Data returns the lengths of all finished episodes
func (e *EpisodeLength) Data() []float64 {
	return e.episodeLengths
}

// Summary returns the mean, standard deviation, minimum and maximum
// episode length. All values are NaN if no episode has finished.
func (e *EpisodeLength) Summary() (mean, std, min, max float64) {
	if len(e.episodeLengths) == 0 {
		nan := math.NaN()
		return nan, nan, nan, nan
	}

	mean, std = stat.MeanStdDev(e.episodeLengths, nil)
	if len(e.episodeLengths) == 1 {
		std = 0
	}
	return mean, std, floats.Min(e.episodeLengths),
		floats.Max(e.episodeLengths)
}

// Save saves the data tracked by the EpisodeLength Tracker to disk.
func (e *EpisodeLength) Save() error {
	return save(e.filename, e.episodeLengths)
}
