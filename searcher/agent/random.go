package agent

import (
	"fmt"
	"sync"

	"onitama/experiments/metrics"
	"onitama/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent choosing uniformly among the
// legal moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state game.GameState) (game.Move, metrics.SearchMetric, error) {
	if state.CurrentlyPlaying != state.Me {
		return nil, metrics.SearchMetric{}, fmt.Errorf("%w: %s is to move", ErrNotMyTurn, state.CurrentlyPlaying)
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, metrics.SearchMetric{}, fmt.Errorf("%w: %s holds no cards", game.ErrMalformedState, state.Me)
	}

	a.mu.Lock()
	move := moves[a.rng.Intn(len(moves))]
	a.mu.Unlock()
	return move, metrics.SearchMetric{}, nil
}
