package engine

import "onitama/experiments/metrics"

type Engine interface {
	// Run plays a game till there's a winner or meta.MaxTurns moves were played
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
