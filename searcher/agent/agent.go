package agent

import (
	"errors"

	"onitama/experiments/metrics"
	"onitama/game"
)

var ErrNotMyTurn = errors.New("not my turn")

type Agent interface {
	// FindMove returns the move for state.Me and performance metrics (if collected) from the search
	FindMove(state game.GameState) (game.Move, metrics.SearchMetric, error)
}
