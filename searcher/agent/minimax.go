package agent

import (
	"fmt"

	"onitama/experiments/metrics"
	"onitama/game"
	"onitama/searcher"

	"github.com/rs/zerolog/log"
)

type minimaxAgent struct {
	minimax *searcher.Minimax
}

// NewMinimaxAgent returns an agent that plays the searched move, or passes
// with its first card when no piece can move.
func NewMinimaxAgent(minimax *searcher.Minimax) Agent {
	return minimaxAgent{minimax: minimax}
}

func (a minimaxAgent) FindMove(state game.GameState) (game.Move, metrics.SearchMetric, error) {
	if state.CurrentlyPlaying != state.Me {
		return nil, metrics.SearchMetric{}, fmt.Errorf("%w: %s is to move", ErrNotMyTurn, state.CurrentlyPlaying)
	}
	result, err := a.minimax.Search(state, state.Me)
	if err != nil {
		return nil, metrics.SearchMetric{}, err
	}

	if result.Move == nil {
		pass := game.Pass{UsedCard: state.MyHand[0].Type}
		log.Warn().Msgf("no piece can move, passing with %s", pass.UsedCard)
		return pass, result.Metric, nil
	}
	return *result.Move, result.Metric, nil
}
