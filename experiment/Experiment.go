// Package experiment implements functionality for running an experiment
package experiment

import (
	"fmt"
	"os"

	"golang.org/x/exp/rand"
	"gopkg.in/yaml.v2"

	"github.com/samuelfneumann/gridsarsa/agent/tabular/sarsa"
	"github.com/samuelfneumann/gridsarsa/environment/envconfig"
	"github.com/samuelfneumann/gridsarsa/experiment/tracker"
	ts "github.com/samuelfneumann/gridsarsa/timestep"
)

// DefaultEpisodes is the number of episodes run by a default Config
const DefaultEpisodes int = 100

// Experiment outlines structs that can run experiments.
// Experiments will track environment TimeSteps, sending each TimeStep
// to Trackers which cache the data they need in RAM to be later saved
// to disk. The Save() function will then take all cached data and save
// it to disk. This is usually performed after an experiment has been
// run. The Run() method will run all episodes of the experiment. The
// RunEpisode() function will run a single episode.
type Experiment interface {
	Run() error
	RunEpisode() (bool, error) // Returns whether the experiment is done

	// Tracks current timestep by sending it to Trackers
	track(ts.TimeStep)

	// Save all tracked data to disk
	Save() error

	// Adds a new tracker.Tracker to the (possibly already running)
	// experiment. Useful if you want to track data only after a
	// specified event.
	Register(t tracker.Tracker)
}

// Config represents a configuration of an experiment
type Config struct {
	Episodes int              `yaml:"episodes" json:"episodes"`
	EnvConf  envconfig.Config `yaml:"env" json:"env"`
	Agent    sarsa.Config     `yaml:"agent" json:"agent"`
}

// DefaultConfig returns a Config which runs 100 episodes of Sarsa with
// α = 0.5, γ = 0.9 and ε = 0.1 on a 5 x 5 GridWorld
func DefaultConfig() Config {
	return Config{
		Episodes: DefaultEpisodes,
		EnvConf:  envconfig.DefaultConfig(),
		Agent:    sarsa.DefaultConfig(),
	}
}

// LoadConfig reads a YAML Config from filename. Fields missing from
// the file keep their default values.
func LoadConfig(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("loadConfig: %w", err)
	}

	c := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return Config{}, fmt.Errorf("loadConfig: could not parse %v: %w",
			filename, err)
	}

	return c, c.Validate()
}

// Validate returns an error if the Config cannot create an experiment
func (c Config) Validate() error {
	if c.Episodes < 0 {
		return fmt.Errorf("validate: episodes must be non-negative, have %d",
			c.Episodes)
	}
	if err := c.EnvConf.Validate(); err != nil {
		return err
	}
	return c.Agent.Validate()
}

// CreateExp creates the Online experiment described by the Config.
// The environment's starting states and the agent's action selection
// share one random stream seeded with seed.
func (c Config) CreateExp(seed uint64, t ...tracker.Tracker) (*Online,
	*sarsa.Sarsa, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, fmt.Errorf("createExp: %w", err)
	}

	source := rand.NewSource(seed)
	env, _, err := c.EnvConf.Create(source)
	if err != nil {
		return nil, nil, fmt.Errorf("createExp: could not create "+
			"environment: %w", err)
	}

	agent, err := sarsa.New(env, c.Agent, source)
	if err != nil {
		return nil, nil, fmt.Errorf("createExp: could not create agent: %w",
			err)
	}

	return NewOnline(env, agent, c.Episodes, t...), agent, nil
}
