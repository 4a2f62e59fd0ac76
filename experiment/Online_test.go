package experiment

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/gridsarsa/environment/gridworld"
	"github.com/samuelfneumann/gridsarsa/experiment/tracker"
	"github.com/samuelfneumann/gridsarsa/timestep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// terminalTracker records the state and end type of the last step of
// every episode
type terminalTracker struct {
	states []int
	ends   []timestep.EndType
}

func (r *terminalTracker) Track(t timestep.TimeStep) {
	if t.Last() {
		r.states = append(r.states, t.State)
		r.ends = append(r.ends, t.EndType())
	}
}

func (r *terminalTracker) Save() error { return nil }

func TestDefaultRunLearnsTowardsTerminal(t *testing.T) {
	c := DefaultConfig()
	require.Equal(t, 5, c.EnvConf.Size)
	require.Equal(t, 0.5, c.Agent.LearningRate)
	require.Equal(t, 0.9, c.Agent.Discount)
	require.Equal(t, 0.1, c.Agent.Epsilon)

	ends := &terminalTracker{}
	exp, agent, err := c.CreateExp(1923812, ends)
	require.NoError(t, err)
	require.NoError(t, exp.Run())

	assert.Equal(t, 100, exp.Episodes())

	// Every episode reached the terminal cell
	require.Len(t, ends.states, 100)
	for i := range ends.states {
		assert.Equal(t, 24, ends.states[i])
		assert.Equal(t, timestep.TerminalStateReached, ends.ends[i])
	}

	// Reward has propagated into the neighbours of the terminal cell
	assert.Greater(t, math.Max(agent.Value(19), agent.Value(23)), 0.0)

	table := agent.Report()
	for s := 0; s < 25; s++ {
		v := table.At(s/5, s%5)
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "state %d", s)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}

	// The terminal cell is never updated
	assert.Equal(t, 0.0, agent.Value(24))

	assert.InDelta(t, 0.1*math.Pow(0.99, 100), agent.Epsilon(), 1e-12)
}

func TestSeededRunsAreReproducible(t *testing.T) {
	c := DefaultConfig()

	exp1, agent1, err := c.CreateExp(7)
	require.NoError(t, err)
	require.NoError(t, exp1.Run())

	exp2, agent2, err := c.CreateExp(7)
	require.NoError(t, err)
	require.NoError(t, exp2.Run())

	assert.Equal(t, agent1.Report().RawMatrix().Data,
		agent2.Report().RawMatrix().Data)
}

func TestRunEpisodeReportsDone(t *testing.T) {
	c := DefaultConfig()
	c.Episodes = 2

	exp, _, err := c.CreateExp(3)
	require.NoError(t, err)

	done, err := exp.RunEpisode()
	require.NoError(t, err)
	assert.False(t, done)

	done, err = exp.RunEpisode()
	require.NoError(t, err)
	assert.True(t, done)

	done, err = exp.RunEpisode()
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, 2, exp.Episodes())
}

func TestCutoffEndsEpisodes(t *testing.T) {
	c := DefaultConfig()
	c.EnvConf.Size = 8
	c.EnvConf.EpisodeCutoff = 3
	c.Agent.Epsilon = 1

	ends := &terminalTracker{}
	exp, _, err := c.CreateExp(11, ends)
	require.NoError(t, err)
	require.NoError(t, exp.Run())

	timeouts := 0
	for _, end := range ends.ends {
		if end == timestep.Timeout {
			timeouts++
		}
	}
	assert.Greater(t, timeouts, 0)
}

func TestTrackersSave(t *testing.T) {
	dir := t.TempDir()
	returns := tracker.NewReturn(filepath.Join(dir, "returns.bin"))
	lengths := tracker.NewEpisodeLength(filepath.Join(dir, "lengths.bin"))
	log := tracker.NewEpisodeLog(filepath.Join(dir, "episodes.parquet"))

	c := DefaultConfig()
	c.Episodes = 20
	exp, _, err := c.CreateExp(5, returns, lengths)
	require.NoError(t, err)
	exp.Register(log)

	require.NoError(t, exp.Run())
	require.NoError(t, exp.Save())

	data, err := tracker.LoadData(filepath.Join(dir, "returns.bin"))
	require.NoError(t, err)
	require.Len(t, data, 20)
	for i, r := range data {
		episode := log.Records()[i]
		if episode.Start == int32(gridworld.Terminal(5)) {
			assert.Equal(t, 0.0, r)
		} else {
			assert.Equal(t, 1.0, r)
		}
	}

	data, err = tracker.LoadData(filepath.Join(dir, "lengths.bin"))
	require.NoError(t, err)
	assert.Equal(t, lengths.Data(), data)

	info, err := os.Stat(filepath.Join(dir, "episodes.parquet"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestLoadConfig(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("episodes: 10\nenv:\n  size: 4\nagent:\n  alpha: 0.2\n")
	require.NoError(t, os.WriteFile(filename, data, 0o644))

	c, err := LoadConfig(filename)
	require.NoError(t, err)

	assert.Equal(t, 10, c.Episodes)
	assert.Equal(t, 4, c.EnvConf.Size)
	assert.Equal(t, 0.2, c.Agent.LearningRate)

	// Unset fields keep their defaults
	assert.Equal(t, 0.9, c.Agent.Discount)
	assert.Equal(t, 0.1, c.Agent.Epsilon)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	tests := map[string]string{
		"small grid":    "env:\n  size: 1\n",
		"bad alpha":     "agent:\n  alpha: 1.5\n",
		"unknown field": "agents: {}\n",
	}

	for name, contents := range tests {
		t.Run(name, func(t *testing.T) {
			filename := filepath.Join(dir, name+".yaml")
			require.NoError(t, os.WriteFile(filename, []byte(contents), 0o644))

			_, err := LoadConfig(filename)
			assert.Error(t, err)
		})
	}

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
