package gamemaster

import (
	"testing"

	"onitama/game"

	"github.com/stretchr/testify/require"
)

func TestNewReferee(t *testing.T) {
	t.Run("keeping the state from the first player's view", func(t *testing.T) {
		view := startingState()
		view.Me = game.Player2
		view.MyHand, view.OpponentsHand = view.OpponentsHand, view.MyHand

		referee, err := NewReferee(view)

		require.NoError(t, err)
		require.Equal(t, startingState(), referee.State())
	})

	t.Run("rejecting a malformed state", func(t *testing.T) {
		state := startingState()
		state.FifthCard = state.MyHand[0]

		_, err := NewReferee(state)

		require.ErrorIs(t, err, game.ErrMalformedState)
	})
}

func TestRefereeView(t *testing.T) {
	referee, err := NewReferee(startingState())
	require.NoError(t, err)

	t.Run("showing the first player its cards", func(t *testing.T) {
		view := referee.View(game.Player1)

		require.Equal(t, game.Player1, view.Me)
		require.Equal(t, []game.CardType{game.Monkey, game.Elephant}, cardTypes(view.MyHand))
	})

	t.Run("swapping hands for the second player", func(t *testing.T) {
		view := referee.View(game.Player2)

		require.Equal(t, game.Player2, view.Me)
		require.Equal(t, []game.CardType{game.Dragon, game.Rooster}, cardTypes(view.MyHand))
		require.Equal(t, []game.CardType{game.Monkey, game.Elephant}, cardTypes(view.OpponentsHand))
		require.NoError(t, view.Validate())
	})

	t.Run("handing out copies", func(t *testing.T) {
		view := referee.View(game.Player1)
		view.Pieces[0] = master(game.Player2, 0, 0)

		require.Equal(t, startingState().Pieces, referee.State().Pieces)
	})
}

func TestRefereePlay(t *testing.T) {
	t.Run("applying a legal move", func(t *testing.T) {
		referee, err := NewReferee(startingState())
		require.NoError(t, err)
		move := game.Play{UsedCard: game.Monkey, From: game.Position{X: 2, Y: 0}, To: game.Position{X: 1, Y: 1}}

		err = referee.Play(move)

		require.NoError(t, err)
		require.Equal(t, startingState().Play(move), referee.State())
		require.Equal(t, []game.Move{move}, referee.Moves())
	})

	t.Run("rejecting a move out of turn", func(t *testing.T) {
		referee, err := NewReferee(startingState())
		require.NoError(t, err)

		err = referee.Play(game.Play{UsedCard: game.Dragon, From: game.Position{X: 2, Y: 4}, To: game.Position{X: 0, Y: 3}})

		require.ErrorIs(t, err, ErrIllegalMove)
		require.Equal(t, startingState(), referee.State(), "Rejected moves should not change the state")
	})

	t.Run("rejecting a capture of an own piece", func(t *testing.T) {
		referee, err := NewReferee(startingState())
		require.NoError(t, err)

		err = referee.Play(game.Play{UsedCard: game.Elephant, From: game.Position{X: 2, Y: 0}, To: game.Position{X: 1, Y: 0}})

		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("rejecting a pass while a piece can move", func(t *testing.T) {
		referee, err := NewReferee(startingState())
		require.NoError(t, err)

		require.ErrorIs(t, referee.Play(game.Pass{UsedCard: game.Monkey}), ErrIllegalMove)
		require.ErrorIs(t, referee.Play(nil), ErrIllegalMove)
	})

	t.Run("rejecting moves after the game is over", func(t *testing.T) {
		referee, err := NewReferee(newState(master(game.Player1, 2, 2), master(game.Player2, 1, 3)))
		require.NoError(t, err)

		require.NoError(t, referee.Play(game.Play{UsedCard: game.Monkey, From: game.Position{X: 2, Y: 2}, To: game.Position{X: 1, Y: 3}}))
		winner, over := referee.Winner()
		require.True(t, over)
		require.Equal(t, game.Player1, winner)

		err = referee.Play(game.Play{UsedCard: game.Dragon, From: game.Position{X: 1, Y: 3}, To: game.Position{X: 2, Y: 4}})
		require.ErrorIs(t, err, ErrGameOver)
	})
}

func cardTypes(cards []game.Card) []game.CardType {
	types := make([]game.CardType, len(cards))
	for i, card := range cards {
		types[i] = card.Type
	}
	return types
}
