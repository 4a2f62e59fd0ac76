package experiment

import (
	"fmt"

	"github.com/samuelfneumann/gridsarsa/agent"
	env "github.com/samuelfneumann/gridsarsa/environment"
	"github.com/samuelfneumann/gridsarsa/experiment/tracker"
	ts "github.com/samuelfneumann/gridsarsa/timestep"
)

// Online is an Experiment that runs an agent online only. No offline
// evaluation is performed.
//
// Online owns the episode loop. It drives the agent only through the
// agent.Agent interface: every transition is passed to the agent's
// Update along with the action the agent chose in the next state, and
// the agent's exploration rate is decayed once per episode.
type Online struct {
	env.Environment
	agent.Agent
	episodes       int
	currentEpisode int
	trackers       []tracker.Tracker
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The episodes parameter determines
// how many episodes the experiment is run for, and the t parameter
// is a slice of tracker.Tracker which determine what data is saved.
func NewOnline(e env.Environment, a agent.Agent, episodes int,
	t ...tracker.Tracker) *Online {
	return &Online{
		Environment: e,
		Agent:       a,
		episodes:    episodes,
		trackers:    t,
	}
}

// Register registers a tracker.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RunEpisode runs a single episode of the experiment. It returns
// whether all episodes of the experiment have been run.
func (o *Online) RunEpisode() (bool, error) {
	if o.currentEpisode >= o.episodes {
		return true, nil
	}

	step, err := o.Environment.Reset()
	if err != nil {
		return false, fmt.Errorf("runEpisode: could not reset: %w", err)
	}
	o.track(step)
	action := o.Agent.ChooseAction(step.State)

	for !step.Last() {
		next, _, err := o.Environment.Step(action)
		if err != nil {
			return false, fmt.Errorf("runEpisode: episode %d: %w",
				o.currentEpisode, err)
		}
		nextAction := o.Agent.ChooseAction(next.State)

		o.Agent.Update(ts.NewTransition(step, action, next, nextAction))
		o.track(next)

		step, action = next, nextAction
	}

	o.Agent.DecayExplorationRate()
	o.currentEpisode++

	return o.currentEpisode >= o.episodes, nil
}

// Run runs the entire experiment for all episodes
func (o *Online) Run() error {
	for done := o.currentEpisode >= o.episodes; !done; {
		var err error
		if done, err = o.RunEpisode(); err != nil {
			return err
		}
	}
	return nil
}

// Episodes returns the number of episodes completed so far
func (o *Online) Episodes() int {
	return o.currentEpisode
}

// Save saves the data cached by the Trackers to disk
func (o *Online) Save() error {
	for _, t := range o.trackers {
		if err := t.Save(); err != nil {
			return err
		}
	}
	return nil
}

// track tracks the current timestep by caching its data in each Tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tr := range o.trackers {
		tr.Track(t)
	}
}
