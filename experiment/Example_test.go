package experiment_test

import (
	"fmt"
	"log"

	"github.com/samuelfneumann/gridsarsa/experiment"
	"github.com/samuelfneumann/gridsarsa/experiment/tracker"
)

func Example() {
	// Run Sarsa with α = 0.5, γ = 0.9 and ε = 0.1 on a 5 x 5 GridWorld
	// for 100 episodes
	config := experiment.DefaultConfig()

	lengths := tracker.NewEpisodeLength("")
	e, agent, err := config.CreateExp(1923812, lengths)
	if err != nil {
		log.Fatal(err)
	}
	if err := e.Run(); err != nil {
		log.Fatal(err)
	}

	// The neighbours of the terminal cell have learned positive values
	fmt.Println(len(lengths.Data()))
	fmt.Println(agent.Value(19) > 0 || agent.Value(23) > 0)
	// Output:
	// 100
	// true
}
