package tracker

import (
	"github.com/samuelfneumann/gridsarsa/timestep"
	"github.com/samuelfneumann/gridsarsa/utils/progressbar"
)

// Progress displays a progress bar which advances once per finished
// episode. It saves nothing.
type Progress struct {
	bar *progressbar.ManualProgressBar
}

// NewProgress returns a new Progress Tracker displaying bar
func NewProgress(bar *progressbar.ManualProgressBar) *Progress {
	return &Progress{bar}
}

// Track advances and redraws the progress bar at the end of an episode
func (p *Progress) Track(t timestep.TimeStep) {
	if t.Last() {
		p.bar.Increment()
		p.bar.Display()
	}
}

// Save finishes the progress bar display
func (p *Progress) Save() error {
	p.bar.Close()
	return nil
}
