package searcher

import (
	"fmt"

	"onitama/experiments/metrics"
	"onitama/game"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax searches a fixed number of plies with alpha-beta pruning.
type Minimax struct {
	depth      int
	evaluate   game.Evaluator
	newMetrics func() metrics.Collector
}

// Result holds the root score and the move that reaches it. Move is nil
// when the searching side has no play.
type Result struct {
	Score  game.Score
	Move   *game.Play
	Metric metrics.SearchMetric
}

func WithEvaluationFn(evaluate game.Evaluator) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.newMetrics = metrics.NewCollector
	}
}

func NewMinimax(depth int, options ...Option) *Minimax {
	if depth < 0 {
		panic("Must specify a non-negative search depth")
	}
	m := &Minimax{ // Default values
		depth:      depth,
		evaluate:   game.Evaluate,
		newMetrics: metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// Search finds the best play for player, who must own MyHand in state.
// Minimax is safe for concurrent use: every call gets its own collector.
func (m *Minimax) Search(state game.GameState, player game.Player) (Result, error) {
	if err := state.Validate(); err != nil {
		return Result{}, fmt.Errorf("failed to search: %w", err)
	}
	if player != state.Me {
		return Result{}, fmt.Errorf("failed to search: %w: searching for %s in a state held by %s",
			game.ErrMalformedState, player, state.Me)
	}

	collector := m.newMetrics()
	collector.Start(m.depth)
	s := &search{
		player:   player,
		evaluate: m.evaluate,
		metrics:  collector,
	}
	score, move := s.alphaBeta(state, m.depth, game.Loss, game.Win)
	metric := collector.Complete()

	log.Debug().
		Str("player", player.String()).
		Int("depth", m.depth).
		Int("nodes", metric.Nodes).
		Dur("duration", metric.Duration).
		Msgf("search finished with score %s", score)

	return Result{Score: score, Move: move, Metric: metric}, nil
}

type search struct {
	player   game.Player
	evaluate game.Evaluator
	metrics  metrics.Collector
}

// alphaBeta returns the value of state for s.player within (alpha, beta).
// Max nodes report their best play; only the root's is used.
func (s *search) alphaBeta(state game.GameState, depth int, alpha, beta game.Score) (game.Score, *game.Play) {
	s.metrics.AddNode()
	if depth == 0 || game.IsTerminal(state) {
		s.metrics.AddLeaf()
		return s.evaluate(state, s.player), nil
	}

	if state.CurrentlyPlaying == s.player {
		return s.maximize(state, depth, alpha, beta)
	}
	return s.minimize(state, depth, alpha, beta), nil
}

func (s *search) maximize(state game.GameState, depth int, alpha, beta game.Score) (game.Score, *game.Play) {
	v := alpha
	moves := game.GenerateMoves(state, state.Hand(s.player), s.player)
	if len(moves) == 0 {
		return v, nil
	}

	best := moves[0]
	for _, move := range moves {
		score, _ := s.alphaBeta(state.Play(move), depth-1, v, beta)
		if score.Greater(v) {
			v = score
			best = move
		}
		if v.Greater(beta) {
			s.metrics.AddCutoff()
			return beta, &best
		}
	}
	return v, &best
}

func (s *search) minimize(state game.GameState, depth int, alpha, beta game.Score) game.Score {
	v := beta
	opponent := s.player.Opponent()
	moves := game.GenerateMoves(state, state.Hand(opponent), opponent)

	for _, move := range moves {
		score, _ := s.alphaBeta(state.Play(move), depth-1, alpha, v)
		if score.Less(v) {
			v = score
		}
		if v.Less(alpha) {
			s.metrics.AddCutoff()
			return alpha
		}
	}
	return v
}
