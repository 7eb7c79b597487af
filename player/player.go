package player

import (
	"errors"
	"fmt"
	"io"

	"onitama/communication"
	"onitama/game"
	"onitama/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Bot plays one game over the line protocol.
type Bot struct {
	client *communication.Client
	agent  agent.Agent
}

// NewBot creates a new Bot instance.
func NewBot(client *communication.Client, agent agent.Agent) *Bot {
	return &Bot{
		client: client,
		agent:  agent,
	}
}

// Run reads the game info, then answers every state with a move until the
// input ends.
func (b *Bot) Run() error {
	me, err := b.client.ReadGameInfo()
	if err != nil {
		return fmt.Errorf("failed to read game info: %w", err)
	}
	log.Info().Msgf("playing as %s", me)

	for {
		state, err := b.client.ReadGameState(me)
		if errors.Is(err, io.EOF) {
			log.Info().Msg("game over")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read game state: %w", err)
		}

		move, metric, err := b.agent.FindMove(state)
		if err != nil {
			return fmt.Errorf("failed to find move: %w", err)
		}
		switch m := move.(type) {
		case game.Play:
			log.Info().Int("nodes", metric.Nodes).Dur("duration", metric.Duration).Msgf("Playing %s", m)
		case game.Pass:
			log.Warn().Msgf("Passing with %s", m.UsedCard)
		}

		if err := b.client.WriteMove(move); err != nil {
			return err
		}
	}
}
