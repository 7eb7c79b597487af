package gamemaster

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"onitama/communication"
	"onitama/experiments/metrics"
	"onitama/game"
	"onitama/searcher"
	"onitama/searcher/agent"

	"github.com/stretchr/testify/require"
)

type failingAgent struct{}

func (failingAgent) FindMove(game.GameState) (game.Move, metrics.SearchMetric, error) {
	return nil, metrics.SearchMetric{}, errors.New("boom")
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func TestGameMasterRunGame(t *testing.T) {
	t.Run("ending the game on a capture", func(t *testing.T) {
		referee, err := NewReferee(newState(master(game.Player1, 2, 2), master(game.Player2, 1, 3)))
		require.NoError(t, err)
		seat1, done1 := Connect(agent.NewMinimaxAgent(searcher.NewMinimax(2)))
		seat2, done2 := Connect(agent.NewRandomAgent(1))

		winner, err := NewGameMaster(referee, seat1, seat2, 10).RunGame()

		require.NoError(t, err)
		require.Equal(t, game.Player1, winner)
		require.Len(t, referee.Moves(), 1, "Player1 should capture at once")
		require.NoError(t, <-done1)
		require.NoError(t, <-done2)
	})

	t.Run("playing a full game between bots", func(t *testing.T) {
		referee, err := NewReferee(startingState())
		require.NoError(t, err)
		seat1, done1 := Connect(agent.NewRandomAgent(1))
		seat2, done2 := Connect(agent.NewRandomAgent(2))

		winner, err := NewGameMaster(referee, seat1, seat2, 200).RunGame()

		require.NoError(t, err)
		require.NoError(t, <-done1)
		require.NoError(t, <-done2)
		require.LessOrEqual(t, len(referee.Moves()), 200)
		refereeWinner, over := referee.Winner()
		if over {
			require.Equal(t, refereeWinner, winner)
		} else {
			require.Equal(t, game.NoPlayer, winner)
		}
	})

	t.Run("stopping on an illegal move", func(t *testing.T) {
		referee, err := NewReferee(startingState())
		require.NoError(t, err)
		illegal, err := communication.EncodeMove(game.Play{UsedCard: game.Dragon, From: game.Position{X: 2, Y: 0}, To: game.Position{X: 2, Y: 1}})
		require.NoError(t, err)
		seat1 := Seat{In: strings.NewReader(illegal + "\n"), Out: nopWriteCloser{io.Discard}}
		seat2 := Seat{In: strings.NewReader(""), Out: nopWriteCloser{io.Discard}}

		_, err = NewGameMaster(referee, seat1, seat2, 10).RunGame()

		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("stopping when a bot hangs up", func(t *testing.T) {
		referee, err := NewReferee(startingState())
		require.NoError(t, err)
		seat1 := Seat{In: strings.NewReader(""), Out: nopWriteCloser{io.Discard}}
		seat2 := Seat{In: strings.NewReader(""), Out: nopWriteCloser{io.Discard}}

		_, err = NewGameMaster(referee, seat1, seat2, 10).RunGame()

		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("stopping when a bot fails to find a move", func(t *testing.T) {
		referee, err := NewReferee(startingState())
		require.NoError(t, err)
		seat1, done1 := Connect(failingAgent{})
		seat2, done2 := Connect(failingAgent{})

		result := make(chan error, 1)
		go func() {
			_, err := NewGameMaster(referee, seat1, seat2, 10).RunGame()
			result <- err
		}()

		select {
		case err := <-result:
			require.ErrorContains(t, err, "boom")
		case <-time.After(5 * time.Second):
			t.Fatal("RunGame kept waiting after the bot stopped")
		}
		require.ErrorContains(t, <-done1, "boom")
		require.NoError(t, <-done2)
		require.Empty(t, referee.Moves())
	})
}
