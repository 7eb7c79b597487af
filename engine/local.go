package engine

import (
	"errors"
	"fmt"
	"time"

	"onitama/experiments/metrics"
	"onitama/game"
	"onitama/gamemaster"
	"onitama/meta"
	"onitama/searcher/agent"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type localEngine struct {
	ID      string
	referee *gamemaster.Referee
	agents  []agent.Agent
}

// LocalEngine plays agents[0] as Player1 against agents[1] as Player2
// from state.
func LocalEngine(agents []agent.Agent, state game.GameState) (Engine, error) {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	referee, err := gamemaster.NewReferee(state)
	if err != nil {
		return nil, err
	}
	return &localEngine{
		ID:      uuid.New().String(),
		referee: referee,
		agents:  agents,
	}, nil
}

// Run executes the entire game loop until a winner is found.
func (e *localEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	start := time.Now()
	gameMetric := metrics.GameMetric{
		ID:             e.ID,
		StartingPlayer: e.referee.State().CurrentlyPlaying.String(),
		StartTime:      start,
	}
	log.Debug().Str("game", e.ID).Msgf("%s is starting", gameMetric.StartingPlayer)

	var moveMetrics []metrics.MoveMetric
	turn := 1
	for ; turn <= meta.MaxTurns; turn++ {
		if _, over := e.referee.Winner(); over {
			break
		}

		p := e.referee.State().CurrentlyPlaying
		move, searchMetric, err := e.agents[p-game.Player1].FindMove(e.referee.View(p))
		if err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("%s failed to find a move: %w", p, err)
		}

		err = e.referee.Play(move)
		if errors.Is(err, gamemaster.ErrIllegalMove) {
			fallback := e.referee.State().LegalMoves()[0]
			log.Warn().Err(err).Msgf("forcing %v for %s", fallback, p)
			move = fallback
			err = e.referee.Play(move)
		}
		if err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("failed to play %v for %s: %w", move, p, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       p.String(),
			Move:         fmt.Sprint(move),
			SearchMetric: searchMetric,
		})
	}

	winner := ""
	if p, over := e.referee.Winner(); over {
		winner = p.String()
	} else {
		log.Debug().Str("game", e.ID).Msgf("stopped after %d turns (no winner yet)", meta.MaxTurns)
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(start)
	gameMetric.TotalMoves = len(moveMetrics)
	return winner, gameMetric, moveMetrics, nil
}
