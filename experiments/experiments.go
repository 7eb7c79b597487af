package experiments

import (
	"fmt"

	"onitama/engine"
	"onitama/experiments/metrics"
	"onitama/meta"
	"onitama/searcher"
	"onitama/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// RunDepthExperiment pairs a one-ply searcher against searchers of every
// depth up to meta.DefaultDepth and stores the results under root.
func RunDepthExperiment(root string, games int) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: metrics.KindMinimax, Depth: 1}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][]metrics.AgentConfig{}
	for depth := 1; depth <= meta.DefaultDepth; depth++ {
		config := metrics.AgentConfig{ID: depth, Kind: metrics.KindMinimax, Depth: depth}
		configs = append(configs, config)
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment(root, "depth", configs, matchUps, games)
}

// RunBaselineExperiment pairs the default searcher against random play.
func RunBaselineExperiment(root string, games int) (string, error) {
	random := metrics.AgentConfig{ID: 0, Kind: metrics.KindRandom, Seed: 1}
	minimax := metrics.AgentConfig{ID: 1, Kind: metrics.KindMinimax, Depth: meta.DefaultDepth}
	matchUps := [][]metrics.AgentConfig{
		{random, minimax},
		{minimax, random},
	}

	return runExperiment(root, "baseline", []metrics.AgentConfig{random, minimax}, matchUps, games)
}

// runExperiment plays games per matchup and returns the directory holding
// the records.
func runExperiment(root, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, games int) (string, error) {
	gameRecords, moveRecords, err := playMatchUps(name, matchUps, games)
	if err != nil {
		return "", err
	}
	writer, err := storeRecords(root, name, configs, gameRecords, moveRecords)
	if err != nil {
		return "", err
	}
	return writer.Dir(), nil
}

func playMatchUps(name string, matchUps [][]metrics.AgentConfig, games int) ([]metrics.GameRecord, []metrics.MoveRecord, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)
	bar := newBar(len(matchUps)*games, name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Debug().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < games; i++ {
			winner, gameMetric, moveMetrics, err := runGame(config1, config2, uint64(i))
			if err != nil {
				return nil, nil, fmt.Errorf("failed to run matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, winner)
			bar.Add(1)
		}
	}
	bar.Finish()

	log.Info().Msgf("completed %s experiment", name)
	return gameRecords, moveRecords, nil
}

func storeRecords(root, name string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (*metrics.Writer, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return nil, fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return nil, fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())
	return writer, nil
}

// runGame executes a single game between two agents on a deal drawn from
// seed and returns the winner
func runGame(config1, config2 metrics.AgentConfig, seed uint64) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := []agent.Agent{createAgent(config1), createAgent(config2)}
	state := engine.NewGame(rand.New(rand.NewSource(seed)))

	e, err := engine.LocalEngine(agents, state)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	return e.Run()
}

func createAgent(config metrics.AgentConfig) agent.Agent {
	switch config.Kind {
	case metrics.KindMinimax:
		return agent.NewMinimaxAgent(searcher.NewMinimax(config.Depth, searcher.WithMetrics()))
	case metrics.KindRandom:
		return agent.NewRandomAgent(config.Seed)
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}
