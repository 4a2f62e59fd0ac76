package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/samuelfneumann/gridsarsa/environment/gridworld"
	"github.com/samuelfneumann/gridsarsa/experiment"
	"github.com/samuelfneumann/gridsarsa/experiment/plot"
	"github.com/samuelfneumann/gridsarsa/experiment/tracker"
	"github.com/samuelfneumann/gridsarsa/utils/matutils"
	"github.com/samuelfneumann/gridsarsa/utils/progressbar"
)

func main() {
	configPath := flag.String("config", "", "YAML experiment configuration")
	episodes := flag.Int("episodes", -1, "number of episodes (overrides config)")
	seed := flag.Uint64("seed", 0, "random seed (0 = seed from the clock)")
	size := flag.Int("size", 0, "grid side length (overrides config)")
	alpha := flag.Float64("alpha", -1, "learning rate (overrides config)")
	gamma := flag.Float64("gamma", -1, "discount factor (overrides config)")
	epsilon := flag.Float64("epsilon", -1, "initial exploration rate (overrides config)")
	cutoff := flag.Int("cutoff", -1, "maximum steps per episode, 0 = none (overrides config)")
	progress := flag.Bool("progress", false, "display a progress bar on stderr")
	heatmap := flag.String("heatmap", "", "save the value table as a PNG heatmap")
	curve := flag.String("curve", "", "save episode lengths and returns as an HTML chart")
	returnsPath := flag.String("returns", "", "save episodic returns (gob)")
	lengthsPath := flag.String("lengths", "", "save episode lengths (gob)")
	episodeLog := flag.String("episodes-log", "", "save one Parquet row per episode")
	flag.Parse()

	config := experiment.DefaultConfig()
	if *configPath != "" {
		var err error
		if config, err = experiment.LoadConfig(*configPath); err != nil {
			log.Fatalf("could not load config: %v", err)
		}
	}

	// Command line flags override the config
	if *episodes >= 0 {
		config.Episodes = *episodes
	}
	if *size > 0 {
		config.EnvConf.Size = *size
	}
	if *alpha >= 0 {
		config.Agent.LearningRate = *alpha
	}
	if *gamma >= 0 {
		config.Agent.Discount = *gamma
	}
	if *epsilon >= 0 {
		config.Agent.Epsilon = *epsilon
	}
	if *cutoff >= 0 {
		config.EnvConf.EpisodeCutoff = uint(*cutoff)
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	// Episode lengths and returns are always tracked so that a summary
	// can be logged, but only saved if requested
	lengths := tracker.NewEpisodeLength(*lengthsPath)
	returns := tracker.NewReturn(*returnsPath)

	exp, agent, err := config.CreateExp(*seed, lengths, returns)
	if err != nil {
		log.Fatalf("could not create experiment: %v", err)
	}

	var toSave []tracker.Tracker
	if *lengthsPath != "" {
		toSave = append(toSave, lengths)
	}
	if *returnsPath != "" {
		toSave = append(toSave, returns)
	}
	if *episodeLog != "" {
		t := tracker.NewEpisodeLog(*episodeLog)
		exp.Register(t)
		toSave = append(toSave, t)
	}
	if *progress {
		bar := progressbar.NewManualProgressBar(os.Stderr, 50, config.Episodes)
		t := tracker.NewProgress(bar)
		exp.Register(t)
		toSave = append(toSave, t)
	}

	if err := exp.Run(); err != nil {
		log.Fatalf("could not run experiment: %v", err)
	}
	for _, t := range toSave {
		if err := t.Save(); err != nil {
			log.Fatalf("could not save experiment data: %v", err)
		}
	}

	mean, std, min, max := lengths.Summary()
	log.Printf("seed %d: %d episodes, length mean %.1f (std %.1f, "+
		"min %.0f, max %.0f), final epsilon %.4f", *seed, exp.Episodes(),
		mean, std, min, max, agent.Epsilon())

	fmt.Println("Value Table:")
	if err := matutils.WriteRows(os.Stdout, agent.Report()); err != nil {
		log.Fatalf("could not write value table: %v", err)
	}

	if *heatmap != "" {
		if err := gridworld.SaveHeatmap(*heatmap, agent.Report(), 64); err != nil {
			log.Fatalf("could not save heatmap: %v", err)
		}
	}
	if *curve != "" {
		err := plot.Save(*curve, "Sarsa on GridWorld",
			plot.Series{Name: "episode length", Values: lengths.Data()},
			plot.Series{Name: "return", Values: returns.Data()},
		)
		if err != nil {
			log.Fatalf("could not save learning curve: %v", err)
		}
	}
}
