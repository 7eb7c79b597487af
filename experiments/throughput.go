package experiments

import (
	"fmt"

	"onitama/experiments/metrics"
	"onitama/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// RunThroughputExperiment measures nodes searched per second at every depth
// up to meta.DefaultDepth and stores the results under root.
func RunThroughputExperiment(root string, games int) (string, error) {
	depths := make([]int, 0, meta.DefaultDepth)
	for depth := 1; depth <= meta.DefaultDepth; depth++ {
		depths = append(depths, depth)
	}
	return runThroughputExperiment(root, depths, games)
}

func runThroughputExperiment(root string, depths []int, games int) (string, error) {
	configs := make([]metrics.AgentConfig, 0, len(depths))
	matchUps := make([][]metrics.AgentConfig, 0, len(depths))
	for i, depth := range depths {
		config := metrics.AgentConfig{ID: i + 1, Kind: metrics.KindMinimax, Depth: depth}
		configs = append(configs, config)
		// Same config for both players so that both sides search alike
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}

	gameRecords, moveRecords, err := playMatchUps("throughput", matchUps, games)
	if err != nil {
		return "", err
	}
	writer, err := storeRecords(root, "throughput", configs, gameRecords, moveRecords)
	if err != nil {
		return "", err
	}

	throughput := summarizeThroughput(moveRecords)
	for _, t := range throughput {
		log.Info().Int("depth", t.Depth).Int("moves", t.Moves).Msgf("%.0f nodes/s", t.NodesPerSecond())
	}
	if err := writer.WriteThroughput(throughput); err != nil {
		return "", fmt.Errorf("failed to store throughput: %w", err)
	}
	return writer.Dir(), nil
}

// summarizeThroughput groups searched moves by depth. Forced moves carry no
// search and are skipped.
func summarizeThroughput(records []metrics.MoveRecord) []metrics.Throughput {
	byDepth := map[int]*metrics.Throughput{}
	for _, record := range records {
		if record.Depth == 0 || record.Nodes == 0 {
			continue
		}
		t, ok := byDepth[record.Depth]
		if !ok {
			t = &metrics.Throughput{Depth: record.Depth}
			byDepth[record.Depth] = t
		}
		t.Moves++
		t.Nodes += record.Nodes
		t.Duration += record.Duration
	}

	throughput := make([]metrics.Throughput, 0, len(byDepth))
	for _, t := range byDepth {
		throughput = append(throughput, *t)
	}
	slices.SortFunc(throughput, func(a, b metrics.Throughput) int { return a.Depth - b.Depth })
	return throughput
}
