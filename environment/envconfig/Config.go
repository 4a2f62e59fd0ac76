// Package envconfig provides configuration structs for configuring
// environments with default parameters and tasks. Environment
// configurations in this package are YAML and JSON serializable.
package envconfig

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gridsarsa/environment"
	"github.com/samuelfneumann/gridsarsa/environment/gridworld"
	ts "github.com/samuelfneumann/gridsarsa/timestep"
)

// EnvName stores the name of environments that can be configured with
// this package
type EnvName string

// Environments available for configuration
const (
	GridWorld EnvName = "GridWorld"
)

// Config implements a specific configuration of a specific environment
type Config struct {
	Environment   EnvName `yaml:"environment" json:"environment"`
	Size          int     `yaml:"size" json:"size"`
	EpisodeCutoff uint    `yaml:"cutoff" json:"cutoff"` // 0 = no cutoff
}

// DefaultConfig returns the Config of a 5 x 5 GridWorld with no
// episode cutoff
func DefaultConfig() Config {
	return Config{
		Environment: GridWorld,
		Size:        gridworld.DefaultSize,
	}
}

// Validate returns an error if the Config cannot create an environment
func (c Config) Validate() error {
	if c.Environment != GridWorld {
		return fmt.Errorf("validate: unknown environment %q", c.Environment)
	}
	if c.Size < 2 {
		return fmt.Errorf("validate: %w (have %d)", gridworld.ErrGridSize,
			c.Size)
	}
	return nil
}

// Create returns the environment described by the Config as well as
// the first timestep of the environment. Starting states are drawn
// uniformly over all cells using source.
func (c Config) Create(source rand.Source) (environment.Environment,
	ts.TimeStep, error) {
	if err := c.Validate(); err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
	}

	starter := environment.NewCategoricalStarter(c.Size*c.Size, source)
	task, err := gridworld.NewGoal(starter, c.Size, int(c.EpisodeCutoff))
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
	}

	g, step, err := gridworld.New(task, c.Size)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
	}
	return g, step, nil
}
