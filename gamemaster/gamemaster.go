package gamemaster

import (
	"fmt"
	"io"

	"onitama/communication"
	"onitama/game"
	"onitama/player"
	"onitama/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Seat connects a bot speaking the line protocol. Closing Out tells the bot
// that the game is over.
type Seat struct {
	In  io.Reader      // Moves from the bot
	Out io.WriteCloser // Messages to the bot
}

// Connect seats an in-process bot playing with a on a pair of pipes. The
// channel receives the result of the bot's Run once it stops. A bot that
// stops hangs up on the master, so a pending read or write fails instead of
// blocking.
func Connect(a agent.Agent) (Seat, <-chan error) {
	toBot, fromMaster := io.Pipe()
	fromBot, toMaster := io.Pipe()
	bot := player.NewBot(communication.NewClient(toBot, toMaster), a)

	done := make(chan error, 1)
	go func() {
		err := bot.Run()
		// nil closes with io.EOF
		toMaster.CloseWithError(err)
		toBot.CloseWithError(err)
		done <- err
	}()
	return Seat{In: fromBot, Out: fromMaster}, done
}

// GameMaster hosts a game between two bots over the line protocol.
type GameMaster struct {
	referee  *Referee
	clients  map[game.Player]*communication.Client
	seats    map[game.Player]Seat
	maxTurns int
}

// NewGameMaster initializes a new GameMaster.
func NewGameMaster(referee *Referee, player1, player2 Seat, maxTurns int) *GameMaster {
	seats := map[game.Player]Seat{game.Player1: player1, game.Player2: player2}
	clients := make(map[game.Player]*communication.Client, len(seats))
	for p, seat := range seats {
		clients[p] = communication.NewClient(seat.In, seat.Out)
	}
	return &GameMaster{
		referee:  referee,
		clients:  clients,
		seats:    seats,
		maxTurns: maxTurns,
	}
}

// RunGame sends each bot its identity, then the state whenever it is to
// move, until there's a winner or maxTurns moves were played. The winner
// is NoPlayer when the turn limit is reached.
func (gm *GameMaster) RunGame() (game.Player, error) {
	defer gm.hangUp()

	for _, p := range []game.Player{game.Player1, game.Player2} {
		if err := gm.clients[p].WriteGameInfo(p); err != nil {
			return game.NoPlayer, fmt.Errorf("failed to greet %s: %w", p, err)
		}
	}

	for turn := 0; turn < gm.maxTurns; turn++ {
		if winner, over := gm.referee.Winner(); over {
			log.Info().Msgf("%s wins after %d moves", winner, turn)
			return winner, nil
		}

		p := gm.referee.State().CurrentlyPlaying
		client := gm.clients[p]
		if err := client.WriteGameState(gm.referee.View(p)); err != nil {
			return game.NoPlayer, fmt.Errorf("failed to send state to %s: %w", p, err)
		}
		move, err := client.ReadMove()
		if err != nil {
			return game.NoPlayer, fmt.Errorf("failed to read move of %s: %w", p, err)
		}
		if err := gm.referee.Play(move); err != nil {
			return game.NoPlayer, fmt.Errorf("rejected move of %s: %w", p, err)
		}
		log.Debug().Msgf("turn %d: %s played %v", turn+1, p, move)
	}

	winner, _ := gm.referee.Winner()
	if winner == game.NoPlayer {
		log.Info().Msgf("stopped after %d turns (no winner yet)", gm.maxTurns)
	}
	return winner, nil
}

func (gm *GameMaster) hangUp() {
	for p, seat := range gm.seats {
		if err := seat.Out.Close(); err != nil {
			log.Warn().Err(err).Msgf("failed to hang up on %s", p)
		}
	}
}
